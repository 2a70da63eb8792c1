package repositories

import (
	"errors"

	"storefront/internal/models"
)

// ErrNotFound is returned when the requested row does not exist. Handlers
// translate it to a 404.
var ErrNotFound = errors.New("record not found")

// ProductFilter narrows the public product listing.
type ProductFilter struct {
	Page       int
	Limit      int
	CategoryID string
	Type       models.CategoryType
	MinPrice   int64
	MaxPrice   int64
	Featured   bool
	Trending   bool
	NewArrival bool
	SortBy     string
	SortOrder  string
}

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	// Create persists the product together with its images, variations,
	// specifications and optional flash sale in one write.
	Create(product *models.Product) error
	// GetByID loads a product with all relations, images ordered.
	GetByID(id string) (*models.Product, error)
	GetAllForAdmin() ([]models.Product, error)
	GetPublished() ([]models.Product, error)
	// FindForClient returns one page of published products plus the total
	// count matching the filter.
	FindForClient(filter ProductFilter) ([]models.Product, int64, error)
	// Update replaces scalar fields and swaps the variation and
	// specification sets wholesale, all inside one transaction.
	Update(product *models.Product, variations []models.ProductVariation, specs []models.ProductSpec) error
	// Delete removes the product and every dependent row atomically.
	Delete(id string) error
	// SetFeatured clears the flag everywhere and sets it for ids, in one
	// transaction.
	SetFeatured(ids []string) error
	SetTrending(ids []string) error
	GetFeatured(limit int) ([]models.Product, error)
	GetTrending(limit int) ([]models.Product, error)
}
