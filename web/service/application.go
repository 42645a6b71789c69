package service

import (
	"github.com/DivyaGovardhan/design-ui/database"
	"github.com/DivyaGovardhan/design-ui/database/model"

	"gorm.io/gorm"
)

type ApplicationService struct {
	storageService StorageService
}

// Create persists the application row and its category associations in a
// single transaction, so a failed association write leaves no orphan row.
func (s *ApplicationService) Create(app *model.DesignApplication, categoryIds []int) error {
	db := database.GetDB()
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(app).Error; err != nil {
			return err
		}
		if len(categoryIds) == 0 {
			return nil
		}
		var categories []model.Category
		if err := tx.Find(&categories, categoryIds).Error; err != nil {
			return err
		}
		return tx.Model(app).Association("Categories").Replace(categories)
	})
}

func (s *ApplicationService) Get(id int) (*model.DesignApplication, error) {
	db := database.GetDB()
	app := &model.DesignApplication{}
	err := db.Preload("Categories").Preload("Creator").First(app, id).Error
	if err != nil {
		return nil, err
	}
	return app, nil
}

// ListByCreator returns the user's applications, newest first. An empty
// status selects all rows.
func (s *ApplicationService) ListByCreator(creatorId int, status model.AppStatus) ([]model.DesignApplication, error) {
	db := database.GetDB()
	query := db.Preload("Categories").
		Where("creator_id = ?", creatorId).
		Order("created_at DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	var apps []model.DesignApplication
	err := query.Find(&apps).Error
	return apps, err
}

// ListAll returns every application, newest first, optionally filtered by
// status. Staff only; the permission gate lives in the controller layer.
func (s *ApplicationService) ListAll(status model.AppStatus) ([]model.DesignApplication, error) {
	db := database.GetDB()
	query := db.Preload("Categories").Preload("Creator").Order("created_at DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	var apps []model.DesignApplication
	err := query.Find(&apps).Error
	return apps, err
}

// Redact persists the target status plus whichever resolution fields were
// supplied, and reassigns categories when the staff edit changed them.
func (s *ApplicationService) Redact(id int, status model.AppStatus, comment string, designPhoto string, categoryIds []int) error {
	db := database.GetDB()
	return db.Transaction(func(tx *gorm.DB) error {
		app := &model.DesignApplication{}
		if err := tx.First(app, id).Error; err != nil {
			return err
		}

		oldPhoto := app.DesignPhoto

		app.Status = status
		app.DesignComment = comment
		if designPhoto != "" {
			app.DesignPhoto = designPhoto
		}
		if err := tx.Save(app).Error; err != nil {
			return err
		}

		if categoryIds != nil {
			var categories []model.Category
			if len(categoryIds) > 0 {
				if err := tx.Find(&categories, categoryIds).Error; err != nil {
					return err
				}
			}
			if err := tx.Model(app).Association("Categories").Replace(categories); err != nil {
				return err
			}
		}

		if designPhoto != "" && oldPhoto != "" && oldPhoto != designPhoto {
			s.storageService.RemovePhoto(oldPhoto)
		}
		return nil
	})
}

// Delete removes the application row, its category associations and its
// stored photo files.
func (s *ApplicationService) Delete(id int) error {
	db := database.GetDB()
	app := &model.DesignApplication{}
	if err := db.First(app, id).Error; err != nil {
		return err
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(app).Association("Categories").Clear(); err != nil {
			return err
		}
		return tx.Delete(app).Error
	})
	if err != nil {
		return err
	}

	s.storageService.RemovePhoto(app.Photo)
	s.storageService.RemovePhoto(app.DesignPhoto)
	return nil
}

// LatestDone returns the n most recent finished applications for the
// homepage showcase.
func (s *ApplicationService) LatestDone(n int) ([]model.DesignApplication, error) {
	db := database.GetDB()
	var apps []model.DesignApplication
	err := db.Preload("Categories").
		Where("status = ?", model.StatusDone).
		Order("created_at DESC").
		Limit(n).
		Find(&apps).Error
	return apps, err
}

func (s *ApplicationService) CountInProgress() (int64, error) {
	db := database.GetDB()
	var count int64
	err := db.Model(model.DesignApplication{}).
		Where("status = ?", model.StatusInProgress).
		Count(&count).Error
	return count, err
}

// ReferencedPhotos collects every stored filename still referenced by an
// application row. Used by the orphan-upload sweep.
func (s *ApplicationService) ReferencedPhotos() (map[string]bool, error) {
	db := database.GetDB()
	var apps []model.DesignApplication
	if err := db.Select("photo", "design_photo").Find(&apps).Error; err != nil {
		return nil, err
	}
	referenced := make(map[string]bool, len(apps)*2)
	for _, app := range apps {
		if app.Photo != "" {
			referenced[app.Photo] = true
		}
		if app.DesignPhoto != "" {
			referenced[app.DesignPhoto] = true
		}
	}
	return referenced, nil
}
