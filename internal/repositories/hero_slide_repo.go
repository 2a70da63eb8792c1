package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"storefront/internal/models"
)

// SlideOrder is one entry of a bulk reorder request.
type SlideOrder struct {
	ID    string `json:"id" validate:"required"`
	Order int    `json:"order"`
}

// HeroSlideRepository defines the interface for hero slide data access.
type HeroSlideRepository interface {
	Create(slide *models.HeroSlide) error
	GetActive() ([]models.HeroSlide, error)
	GetAll() ([]models.HeroSlide, error)
	GetByID(id string) (*models.HeroSlide, error)
	Update(slide *models.HeroSlide) error
	// Reorder applies every order update in one transaction; either all
	// slides move or none do.
	Reorder(updates []SlideOrder) error
	SetActive(id string, active bool) (*models.HeroSlide, error)
	Delete(id string) error
}

// GORMHeroSlideRepository is a GORM implementation of HeroSlideRepository.
type GORMHeroSlideRepository struct {
	db *gorm.DB
}

func NewGORMHeroSlideRepository(db *gorm.DB) *GORMHeroSlideRepository {
	return &GORMHeroSlideRepository{db: db}
}

func (r *GORMHeroSlideRepository) Create(slide *models.HeroSlide) error {
	if err := r.db.Create(slide).Error; err != nil {
		return fmt.Errorf("failed to create hero slide: %w", err)
	}
	return nil
}

func (r *GORMHeroSlideRepository) GetActive() ([]models.HeroSlide, error) {
	var slides []models.HeroSlide
	if err := r.db.Where("is_active = ?", true).Order("display_order asc").Find(&slides).Error; err != nil {
		return nil, fmt.Errorf("failed to get hero slides: %w", err)
	}
	return slides, nil
}

// GetAll returns every slide for the admin view, active or not.
func (r *GORMHeroSlideRepository) GetAll() ([]models.HeroSlide, error) {
	var slides []models.HeroSlide
	if err := r.db.Order("display_order asc").Find(&slides).Error; err != nil {
		return nil, fmt.Errorf("failed to get all hero slides: %w", err)
	}
	return slides, nil
}

func (r *GORMHeroSlideRepository) GetByID(id string) (*models.HeroSlide, error) {
	var slide models.HeroSlide
	if err := r.db.First(&slide, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("hero slide %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get hero slide %s: %w", id, err)
	}
	return &slide, nil
}

func (r *GORMHeroSlideRepository) Update(slide *models.HeroSlide) error {
	res := r.db.Save(slide)
	if res.Error != nil {
		return fmt.Errorf("failed to update hero slide: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("hero slide %s: %w", slide.ID, ErrNotFound)
	}
	return nil
}

func (r *GORMHeroSlideRepository) Reorder(updates []SlideOrder) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		for _, u := range updates {
			res := tx.Model(&models.HeroSlide{}).Where("id = ?", u.ID).
				Update("display_order", u.Order)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return fmt.Errorf("hero slide %s: %w", u.ID, ErrNotFound)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to reorder hero slides: %w", err)
	}
	return nil
}

// SetActive toggles only the active flag, leaving the rest of the row alone.
func (r *GORMHeroSlideRepository) SetActive(id string, active bool) (*models.HeroSlide, error) {
	res := r.db.Model(&models.HeroSlide{}).Where("id = ?", id).Update("is_active", active)
	if res.Error != nil {
		return nil, fmt.Errorf("failed to toggle hero slide %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("hero slide %s: %w", id, ErrNotFound)
	}
	return r.GetByID(id)
}

func (r *GORMHeroSlideRepository) Delete(id string) error {
	res := r.db.Delete(&models.HeroSlide{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete hero slide %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("hero slide %s: %w", id, ErrNotFound)
	}
	return nil
}
