package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"storefront/internal/models"
)

// TrustSignalRepository defines the interface for trust signal data access.
type TrustSignalRepository interface {
	Create(signal *models.TrustSignal) error
	GetActive() ([]models.TrustSignal, error)
	GetByID(id string) (*models.TrustSignal, error)
	Update(signal *models.TrustSignal) error
	Delete(id string) error
}

// PromotionalBannerRepository defines the interface for banner data access.
type PromotionalBannerRepository interface {
	Create(banner *models.PromotionalBanner) error
	GetActive() ([]models.PromotionalBanner, error)
	GetByID(id string) (*models.PromotionalBanner, error)
	Update(banner *models.PromotionalBanner) error
	Delete(id string) error
}

// BlogPostFilter narrows the blog listing.
type BlogPostFilter struct {
	Featured  bool
	Published bool
}

// BlogPostRepository defines the interface for blog post data access.
type BlogPostRepository interface {
	Create(post *models.BlogPost) error
	Find(filter BlogPostFilter) ([]models.BlogPost, error)
	GetByID(id string) (*models.BlogPost, error)
	Update(post *models.BlogPost) error
	Delete(id string) error
}

// GORMTrustSignalRepository is a GORM implementation of TrustSignalRepository.
type GORMTrustSignalRepository struct {
	db *gorm.DB
}

func NewGORMTrustSignalRepository(db *gorm.DB) *GORMTrustSignalRepository {
	return &GORMTrustSignalRepository{db: db}
}

func (r *GORMTrustSignalRepository) Create(signal *models.TrustSignal) error {
	if err := r.db.Create(signal).Error; err != nil {
		return fmt.Errorf("failed to create trust signal: %w", err)
	}
	return nil
}

func (r *GORMTrustSignalRepository) GetActive() ([]models.TrustSignal, error) {
	var signals []models.TrustSignal
	if err := r.db.Where("is_active = ?", true).Order("display_order asc").Find(&signals).Error; err != nil {
		return nil, fmt.Errorf("failed to get trust signals: %w", err)
	}
	return signals, nil
}

func (r *GORMTrustSignalRepository) GetByID(id string) (*models.TrustSignal, error) {
	var signal models.TrustSignal
	if err := r.db.First(&signal, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("trust signal %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get trust signal %s: %w", id, err)
	}
	return &signal, nil
}

func (r *GORMTrustSignalRepository) Update(signal *models.TrustSignal) error {
	res := r.db.Save(signal)
	if res.Error != nil {
		return fmt.Errorf("failed to update trust signal: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("trust signal %s: %w", signal.ID, ErrNotFound)
	}
	return nil
}

func (r *GORMTrustSignalRepository) Delete(id string) error {
	res := r.db.Delete(&models.TrustSignal{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete trust signal %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("trust signal %s: %w", id, ErrNotFound)
	}
	return nil
}

// GORMPromotionalBannerRepository is a GORM implementation of
// PromotionalBannerRepository.
type GORMPromotionalBannerRepository struct {
	db *gorm.DB
}

func NewGORMPromotionalBannerRepository(db *gorm.DB) *GORMPromotionalBannerRepository {
	return &GORMPromotionalBannerRepository{db: db}
}

func (r *GORMPromotionalBannerRepository) Create(banner *models.PromotionalBanner) error {
	if err := r.db.Create(banner).Error; err != nil {
		return fmt.Errorf("failed to create promotional banner: %w", err)
	}
	return nil
}

func (r *GORMPromotionalBannerRepository) GetActive() ([]models.PromotionalBanner, error) {
	var banners []models.PromotionalBanner
	if err := r.db.Where("is_active = ?", true).Order("display_order asc").Find(&banners).Error; err != nil {
		return nil, fmt.Errorf("failed to get promotional banners: %w", err)
	}
	return banners, nil
}

func (r *GORMPromotionalBannerRepository) GetByID(id string) (*models.PromotionalBanner, error) {
	var banner models.PromotionalBanner
	if err := r.db.First(&banner, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("promotional banner %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get promotional banner %s: %w", id, err)
	}
	return &banner, nil
}

func (r *GORMPromotionalBannerRepository) Update(banner *models.PromotionalBanner) error {
	res := r.db.Save(banner)
	if res.Error != nil {
		return fmt.Errorf("failed to update promotional banner: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("promotional banner %s: %w", banner.ID, ErrNotFound)
	}
	return nil
}

func (r *GORMPromotionalBannerRepository) Delete(id string) error {
	res := r.db.Delete(&models.PromotionalBanner{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete promotional banner %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("promotional banner %s: %w", id, ErrNotFound)
	}
	return nil
}

// GORMBlogPostRepository is a GORM implementation of BlogPostRepository.
type GORMBlogPostRepository struct {
	db *gorm.DB
}

func NewGORMBlogPostRepository(db *gorm.DB) *GORMBlogPostRepository {
	return &GORMBlogPostRepository{db: db}
}

func (r *GORMBlogPostRepository) Create(post *models.BlogPost) error {
	if err := r.db.Create(post).Error; err != nil {
		return fmt.Errorf("failed to create blog post: %w", err)
	}
	return nil
}

func (r *GORMBlogPostRepository) Find(filter BlogPostFilter) ([]models.BlogPost, error) {
	query := r.db.Model(&models.BlogPost{})
	if filter.Featured {
		query = query.Where("is_featured = ?", true)
	}
	if filter.Published {
		query = query.Where("is_published = ?", true)
	}

	var posts []models.BlogPost
	if err := query.Order("created_at desc").Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("failed to get blog posts: %w", err)
	}
	return posts, nil
}

func (r *GORMBlogPostRepository) GetByID(id string) (*models.BlogPost, error) {
	var post models.BlogPost
	if err := r.db.First(&post, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("blog post %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get blog post %s: %w", id, err)
	}
	return &post, nil
}

func (r *GORMBlogPostRepository) Update(post *models.BlogPost) error {
	res := r.db.Save(post)
	if res.Error != nil {
		return fmt.Errorf("failed to update blog post: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("blog post %s: %w", post.ID, ErrNotFound)
	}
	return nil
}

func (r *GORMBlogPostRepository) Delete(id string) error {
	res := r.db.Delete(&models.BlogPost{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete blog post %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("blog post %s: %w", id, ErrNotFound)
	}
	return nil
}
