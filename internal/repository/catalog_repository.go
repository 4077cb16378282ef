package repository

import (
	"pizzeria/internal/models"

	"gorm.io/gorm"
)

// CatalogRepository persists the catalog collections. Saves replace the whole
// collection, mirroring the catalog's replace-whole-collection mutation model.
type CatalogRepository interface {
	LoadMenuItems() ([]models.MenuItem, error)
	LoadPromotions() ([]models.Promotion, error)
	SaveMenuItems(items []models.MenuItem) error
	SavePromotions(promotions []models.Promotion) error
}

type catalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) LoadMenuItems() ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := r.db.Order("id").Find(&items).Error
	return items, err
}

func (r *catalogRepository) LoadPromotions() ([]models.Promotion, error) {
	var promotions []models.Promotion
	err := r.db.Order("id").Find(&promotions).Error
	return promotions, err
}

func (r *catalogRepository) SaveMenuItems(items []models.MenuItem) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.MenuItem{}).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
		return tx.Create(&items).Error
	})
}

func (r *catalogRepository) SavePromotions(promotions []models.Promotion) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Promotion{}).Error; err != nil {
			return err
		}
		if len(promotions) == 0 {
			return nil
		}
		return tx.Create(&promotions).Error
	})
}
