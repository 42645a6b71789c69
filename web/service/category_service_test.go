package service

import (
	"testing"
	"time"

	"github.com/DivyaGovardhan/design-ui/database"
	"github.com/DivyaGovardhan/design-ui/database/model"

	"github.com/stretchr/testify/assert"
)

func TestCategoryServiceCRUD(t *testing.T) {
	setup()
	defer teardown()

	service := CategoryService{}

	category := &model.Category{Title: "3D-дизайн"}
	assert.NoError(t, service.Create(category))
	assert.NotZero(t, category.Id)

	got, err := service.Get(category.Id)
	assert.NoError(t, err)
	assert.Equal(t, "3D-дизайн", got.Title)

	got.Title = "3D-визуализация"
	assert.NoError(t, service.Update(got))
	updated, _ := service.Get(category.Id)
	assert.Equal(t, "3D-визуализация", updated.Title)

	assert.NoError(t, service.Delete(category.Id))
	_, err = service.Get(category.Id)
	assert.Error(t, err)
}

func TestCategoryServiceGetAllOrdered(t *testing.T) {
	setup()
	defer teardown()

	service := CategoryService{}

	assert.NoError(t, service.Create(&model.Category{Title: "Ремонт"}))
	assert.NoError(t, service.Create(&model.Category{Title: "Освещение"}))

	categories, err := service.GetAll()
	assert.NoError(t, err)
	assert.Len(t, categories, 2)
	assert.Equal(t, "Освещение", categories[0].Title)
	assert.Equal(t, "Ремонт", categories[1].Title)
}

func TestCategoryServiceDeleteDetachesApplications(t *testing.T) {
	setup()
	defer teardown()

	categoryService := CategoryService{}
	applicationService := ApplicationService{}

	category := &model.Category{Title: "Ремонт"}
	assert.NoError(t, categoryService.Create(category))

	app := newApplication(&applicationService, t, 1, "Кухня", time.Now(), []int{category.Id})

	assert.NoError(t, categoryService.Delete(category.Id))

	// The application survives with the category reference gone.
	got, err := applicationService.Get(app.Id)
	assert.NoError(t, err)
	assert.Empty(t, got.Categories)

	var joinRows int64
	err = database.GetDB().Table("application_categories").Count(&joinRows).Error
	assert.NoError(t, err)
	assert.Zero(t, joinRows)
}
