package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"storefront/internal/models"
)

// HomePageConfigRepository owns the config singleton. The row id is fixed;
// writes upsert, never duplicate.
type HomePageConfigRepository interface {
	// GetOrCreate returns the singleton, creating the default row when
	// none exists yet.
	GetOrCreate(updatedBy string) (*models.HomePageConfig, error)
	Upsert(config *models.HomePageConfig) error
}

// GORMHomePageConfigRepository is a GORM implementation of
// HomePageConfigRepository.
type GORMHomePageConfigRepository struct {
	db *gorm.DB
}

func NewGORMHomePageConfigRepository(db *gorm.DB) *GORMHomePageConfigRepository {
	return &GORMHomePageConfigRepository{db: db}
}

func (r *GORMHomePageConfigRepository) GetOrCreate(updatedBy string) (*models.HomePageConfig, error) {
	var config models.HomePageConfig
	err := r.db.First(&config).Error
	if err == nil {
		return &config, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("failed to get homepage config: %w", err)
	}

	config = defaultHomePageConfig(updatedBy)
	if err := r.db.Create(&config).Error; err != nil {
		return nil, fmt.Errorf("failed to create default homepage config: %w", err)
	}
	return &config, nil
}

func (r *GORMHomePageConfigRepository) Upsert(config *models.HomePageConfig) error {
	config.ID = models.HomePageConfigID

	var existing models.HomePageConfig
	err := r.db.First(&existing, "id = ?", config.ID).Error
	if err == gorm.ErrRecordNotFound {
		if err := r.db.Create(config).Error; err != nil {
			return fmt.Errorf("failed to create homepage config: %w", err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to look up homepage config: %w", err)
	}

	config.CreatedAt = existing.CreatedAt
	if err := r.db.Save(config).Error; err != nil {
		return fmt.Errorf("failed to update homepage config: %w", err)
	}
	return nil
}

func defaultHomePageConfig(updatedBy string) models.HomePageConfig {
	return models.HomePageConfig{
		ID:                        models.HomePageConfigID,
		HeroSectionEnabled:        true,
		TrustSignalsEnabled:       true,
		FeaturedCategoriesEnabled: true,
		TrendingProductsEnabled:   true,
		PromotionalBannersEnabled: true,
		PersonalizedRecsEnabled:   true,
		FlashSalesEnabled:         true,
		BlogSectionEnabled:        true,
		TrendingProductsTitle:     "Trending Now",
		FeaturedCategoriesTitle:   "Featured Products",
		PersonalizedRecsTitle:     "Recommended For You",
		BlogSectionTitle:          "From Our Blog",
		TrendingProductsLimit:     8,
		FeaturedCategoriesLimit:   8,
		FlashSaleProductsLimit:    8,
		BlogPostsLimit:            3,
		UpdatedBy:                 updatedBy,
	}
}
