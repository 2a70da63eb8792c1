package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"storefront/internal/models"
)

// CategoryRepository defines the interface for category data access.
type CategoryRepository interface {
	GetAll() ([]models.Category, error)
	GetByID(id string) (*models.Category, error)
	Upsert(category *models.Category) error
	UpsertSizeGuide(guide *models.SizeGuide) error
}

// GORMCategoryRepository is a GORM implementation of CategoryRepository.
type GORMCategoryRepository struct {
	db *gorm.DB
}

func NewGORMCategoryRepository(db *gorm.DB) *GORMCategoryRepository {
	return &GORMCategoryRepository{db: db}
}

func (r *GORMCategoryRepository) GetAll() ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.Order("name asc").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}
	return categories, nil
}

func (r *GORMCategoryRepository) GetByID(id string) (*models.Category, error) {
	var category models.Category
	if err := r.db.First(&category, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("category %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get category %s: %w", id, err)
	}
	return &category, nil
}

// Upsert creates the category if no row with the same name exists. Used by
// seeding; existing rows are left untouched.
func (r *GORMCategoryRepository) Upsert(category *models.Category) error {
	var existing models.Category
	err := r.db.First(&existing, "name = ?", category.Name).Error
	if err == nil {
		*category = existing
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		return fmt.Errorf("failed to look up category %s: %w", category.Name, err)
	}
	if err := r.db.Create(category).Error; err != nil {
		return fmt.Errorf("failed to create category %s: %w", category.Name, err)
	}
	return nil
}

// UpsertSizeGuide creates the guide if the category has none yet.
func (r *GORMCategoryRepository) UpsertSizeGuide(guide *models.SizeGuide) error {
	var existing models.SizeGuide
	err := r.db.First(&existing, "category_id = ?", guide.CategoryID).Error
	if err == nil {
		*guide = existing
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		return fmt.Errorf("failed to look up size guide for category %s: %w", guide.CategoryID, err)
	}
	if err := r.db.Create(guide).Error; err != nil {
		return fmt.Errorf("failed to create size guide for category %s: %w", guide.CategoryID, err)
	}
	return nil
}
