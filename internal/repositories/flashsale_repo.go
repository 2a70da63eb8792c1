package repositories

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"storefront/internal/models"
)

// FlashSaleConfigRepository defines the interface for promotional event data
// access. Line items are snapshots owned by their config and are replaced
// wholesale on update.
type FlashSaleConfigRepository interface {
	Create(config *models.FlashSaleConfig) error
	// GetActive returns currently active configs with nested product
	// relations, newest first.
	GetActive() ([]models.FlashSaleConfig, error)
	GetByID(id string) (*models.FlashSaleConfig, error)
	// Update writes the scalar fields and replaces the whole line-item set
	// in one transaction.
	Update(config *models.FlashSaleConfig, items []models.FlashSaleProduct) error
	Delete(id string) error
}

// GORMFlashSaleConfigRepository is a GORM implementation of
// FlashSaleConfigRepository.
type GORMFlashSaleConfigRepository struct {
	db *gorm.DB
}

func NewGORMFlashSaleConfigRepository(db *gorm.DB) *GORMFlashSaleConfigRepository {
	return &GORMFlashSaleConfigRepository{db: db}
}

func (r *GORMFlashSaleConfigRepository) Create(config *models.FlashSaleConfig) error {
	if err := r.db.Create(config).Error; err != nil {
		return fmt.Errorf("failed to create flash sale config: %w", err)
	}
	return nil
}

func (r *GORMFlashSaleConfigRepository) GetActive() ([]models.FlashSaleConfig, error) {
	var configs []models.FlashSaleConfig
	err := r.db.
		Where("is_active = ? AND end_time > ?", true, time.Now()).
		Preload("Products", func(db *gorm.DB) *gorm.DB { return db.Order("display_order asc") }).
		Preload("Products.Product").
		Preload("Products.Product.Category").
		Preload("Products.Product.Images", func(db *gorm.DB) *gorm.DB { return db.Order("display_order asc") }).
		Preload("Products.Product.Variations").
		Order("created_at desc").
		Find(&configs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get flash sale configs: %w", err)
	}
	return configs, nil
}

func (r *GORMFlashSaleConfigRepository) GetByID(id string) (*models.FlashSaleConfig, error) {
	var config models.FlashSaleConfig
	err := r.db.
		Preload("Products", func(db *gorm.DB) *gorm.DB { return db.Order("display_order asc") }).
		Preload("Products.Product").
		First(&config, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("flash sale config %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get flash sale config %s: %w", id, err)
	}
	return &config, nil
}

func (r *GORMFlashSaleConfigRepository) Update(config *models.FlashSaleConfig, items []models.FlashSaleProduct) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.FlashSaleConfig{}).Where("id = ?", config.ID).Updates(map[string]interface{}{
			"title":        config.Title,
			"subtitle":     config.Subtitle,
			"description":  config.Description,
			"start_time":   config.StartTime,
			"end_time":     config.EndTime,
			"banner_image": config.BannerImage,
			"is_active":    config.IsActive,
		})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("flash sale config %s: %w", config.ID, ErrNotFound)
		}

		if err := tx.Where("config_id = ?", config.ID).Delete(&models.FlashSaleProduct{}).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].ConfigID = config.ID
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to update flash sale config %s: %w", config.ID, err)
	}
	return nil
}

func (r *GORMFlashSaleConfigRepository) Delete(id string) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("config_id = ?", id).Delete(&models.FlashSaleProduct{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.FlashSaleConfig{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("flash sale config %s: %w", id, ErrNotFound)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete flash sale config %s: %w", id, err)
	}
	return nil
}
