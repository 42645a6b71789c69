package service

import (
	"github.com/DivyaGovardhan/design-ui/database"
	"github.com/DivyaGovardhan/design-ui/database/model"

	"gorm.io/gorm"
)

type CategoryService struct{}

func (s *CategoryService) GetAll() ([]model.Category, error) {
	db := database.GetDB()
	var categories []model.Category
	err := db.Order("title").Find(&categories).Error
	return categories, err
}

func (s *CategoryService) Get(id int) (*model.Category, error) {
	db := database.GetDB()
	var category model.Category
	err := db.First(&category, id).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *CategoryService) Create(category *model.Category) error {
	db := database.GetDB()
	return db.Create(category).Error
}

func (s *CategoryService) Update(category *model.Category) error {
	db := database.GetDB()
	return db.Save(category).Error
}

// Delete removes the category and its join-table references in one
// transaction. Applications tagged with it simply lose the reference; no
// orphaned foreign key survives.
func (s *CategoryService) Delete(id int) error {
	db := database.GetDB()
	return db.Transaction(func(tx *gorm.DB) error {
		category := &model.Category{Id: id}
		if err := tx.Exec("DELETE FROM application_categories WHERE category_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(category).Error
	})
}
