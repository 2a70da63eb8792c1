package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/pkg/cache"
	"storefront/pkg/media"
	"storefront/pkg/rabbitmq"
)

// ErrValidation marks a request the caller got wrong. Handlers translate it
// to a 400.
var ErrValidation = errors.New("validation failed")

const (
	productCacheTTL    = 3600 * time.Second
	productImageFolder = "ecommerce/products"
	maxFlaggedProducts = 8
	defaultClientLimit = 10
	defaultClientPage  = 1
)

// VariationInput is one purchasable configuration supplied on create/update.
type VariationInput struct {
	Type  string `json:"type"`
	Size  string `json:"size"`
	Color string `json:"color"`
	Stock int    `json:"stock"`
}

// SpecInput is one specification entry supplied on create/update.
type SpecInput struct {
	Key   string `json:"key"`
	Value string `json:"value"`
	Group string `json:"group"`
	Order int    `json:"order"`
}

// FlashSaleInput optionally attaches a product-level flash sale at creation.
type FlashSaleInput struct {
	Enabled            bool      `json:"enabled"`
	DiscountPercentage float64   `json:"discountPercentage"`
	StartTime          time.Time `json:"startTime"`
	EndTime            time.Time `json:"endTime"`
}

// CreateProductInput carries the parsed multipart form of a creation request.
type CreateProductInput struct {
	Name           string
	Brand          string
	Description    string
	Price          int64
	BaseStock      int
	CategoryID     string
	IsTrending     bool
	IsNewArrival   bool
	SKU            string
	Variations     []VariationInput
	Specifications []SpecInput
	FlashSale      *FlashSaleInput
	ImagePaths     []string
}

// UpdateProductInput carries a product update. Nil Variations or
// Specifications leave the corresponding set untouched; non-nil replaces it
// wholesale.
type UpdateProductInput struct {
	Name           string           `json:"name"`
	Brand          string           `json:"brand"`
	Description    string           `json:"description"`
	Price          int64            `json:"price"`
	BaseStock      int              `json:"baseStock"`
	CategoryID     string           `json:"categoryId"`
	IsTrending     bool             `json:"isTrending"`
	IsNewArrival   bool             `json:"isNewArrival"`
	Variations     []VariationInput `json:"variations"`
	Specifications []SpecInput      `json:"specifications"`
}

// ProductPage is one page of the public catalog listing.
type ProductPage struct {
	Products      []models.Product
	CurrentPage   int
	TotalPages    int
	TotalProducts int64
}

// ProductService handles catalog business logic: variation validation, slug
// generation, media uploads, cache interaction and catalog event publishing.
type ProductService struct {
	repo       repositories.ProductRepository
	categories repositories.CategoryRepository
	cache      cache.Store
	uploader   media.Uploader
	events     rabbitmq.Publisher
}

// NewProductService creates a new ProductService. events may be nil; catalog
// events are then skipped.
func NewProductService(
	repo repositories.ProductRepository,
	categories repositories.CategoryRepository,
	store cache.Store,
	uploader media.Uploader,
	events rabbitmq.Publisher,
) *ProductService {
	return &ProductService{
		repo:       repo,
		categories: categories,
		cache:      store,
		uploader:   uploader,
		events:     events,
	}
}

var slugStrip = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases the name and collapses every non-alphanumeric run into a
// single hyphen.
func Slugify(name string) string {
	slug := slugStrip.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(slug, "-")
}

// uniqueSlug appends the creation timestamp so two products with the same
// name never collide.
func uniqueSlug(name string) string {
	return fmt.Sprintf("%s-%d", Slugify(name), time.Now().UnixMilli())
}

// validateVariations applies the category-dependent rules: stock must never
// be negative, and FASHION "clothes" variations need a size while "shoes"
// variations need size and color. One bad entry rejects the whole set.
func validateVariations(variations []VariationInput, categoryType models.CategoryType) error {
	for _, v := range variations {
		if v.Stock < 0 {
			return fmt.Errorf("%w: variation stock must not be negative", ErrValidation)
		}
		if categoryType != models.CategoryFashion {
			continue
		}
		switch v.Type {
		case models.VariationClothes:
			if v.Size == "" {
				return fmt.Errorf("%w: clothes variation requires a size", ErrValidation)
			}
		case models.VariationShoes:
			if v.Size == "" || v.Color == "" {
				return fmt.Errorf("%w: shoes variation requires size and color", ErrValidation)
			}
		}
	}
	return nil
}

// CreateProduct validates the request, uploads the images and persists the
// product with all relations in one write. New products always start in
// DRAFT. On success the whole product cache is invalidated.
func (s *ProductService) CreateProduct(ctx context.Context, input CreateProductInput) (*models.Product, error) {
	if len(input.ImagePaths) == 0 {
		return nil, fmt.Errorf("%w: at least one image is required", ErrValidation)
	}

	category, err := s.categories.GetByID(input.CategoryID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid category ID", ErrValidation)
		}
		return nil, err
	}

	if err := validateVariations(input.Variations, category.Type); err != nil {
		return nil, err
	}

	specs := input.Specifications
	if input.SKU != "" {
		specs = append(specs, SpecInput{Key: "SKU", Value: input.SKU, Group: "General", Order: 0})
	}

	images := make([]models.ProductImage, 0, len(input.ImagePaths))
	for i, path := range input.ImagePaths {
		result, err := s.uploader.UploadImage(ctx, path, productImageFolder)
		if err != nil {
			return nil, fmt.Errorf("failed to upload image: %w", err)
		}
		images = append(images, models.ProductImage{
			URL:          result.URL,
			PublicID:     result.PublicID,
			Width:        result.Width,
			Height:       result.Height,
			Format:       result.Format,
			Size:         result.Size,
			ThumbnailURL: result.ThumbnailURL,
			MediumURL:    result.MediumURL,
			Order:        i,
		})
	}

	product := &models.Product{
		Name:         input.Name,
		Brand:        input.Brand,
		Description:  input.Description,
		Price:        input.Price,
		BaseStock:    input.BaseStock,
		CategoryID:   input.CategoryID,
		Status:       models.StatusDraft,
		Slug:         uniqueSlug(input.Name),
		IsTrending:   input.IsTrending,
		IsNewArrival: input.IsNewArrival,
		Images:       images,
	}
	for _, v := range input.Variations {
		product.Variations = append(product.Variations, models.ProductVariation{
			Type: v.Type, Size: v.Size, Color: v.Color, Stock: v.Stock,
		})
	}
	for _, sp := range specs {
		product.Specifications = append(product.Specifications, models.ProductSpec{
			Key: sp.Key, Value: sp.Value, Group: sp.Group, Order: sp.Order,
		})
	}
	if fs := input.FlashSale; fs != nil && fs.Enabled {
		product.FlashSale = &models.FlashSale{
			Discount:  fs.DiscountPercentage,
			StartTime: fs.StartTime,
			EndTime:   fs.EndTime,
			IsActive:  true,
		}
	}

	if err := s.repo.Create(product); err != nil {
		return nil, err
	}

	s.cache.Clear(ctx)
	s.publish(rabbitmq.EventProductCreated, map[string]interface{}{"id": product.ID, "slug": product.Slug})
	return product, nil
}

// GetProductByID is a cache-first read: a warm entry short-circuits the
// persistence layer entirely; a miss reads through and writes back with a
// one-hour expiry. A missing product never creates a cache entry.
func (s *ProductService) GetProductByID(ctx context.Context, id string) (*models.Product, error) {
	key := cache.ProductKey(id)

	var cached models.Product
	if s.cache.Get(ctx, key, &cached) {
		return &cached, nil
	}

	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	s.cache.Set(ctx, key, product, productCacheTTL)
	return product, nil
}

// GetAllForAdmin returns the unfiltered catalog for the admin UI.
func (s *ProductService) GetAllForAdmin() ([]models.Product, error) {
	return s.repo.GetAllForAdmin()
}

// GetPublished returns every published product for selection UIs.
func (s *ProductService) GetPublished() ([]models.Product, error) {
	return s.repo.GetPublished()
}

// ListForClient returns one page of the filtered public catalog.
func (s *ProductService) ListForClient(filter repositories.ProductFilter) (*ProductPage, error) {
	if filter.Page < 1 {
		filter.Page = defaultClientPage
	}
	if filter.Limit < 1 {
		filter.Limit = defaultClientLimit
	}

	products, total, err := s.repo.FindForClient(filter)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(filter.Limit) - 1) / int64(filter.Limit))
	return &ProductPage{
		Products:      products,
		CurrentPage:   filter.Page,
		TotalPages:    totalPages,
		TotalProducts: total,
	}, nil
}

// UpdateProduct writes the scalar fields and replaces the variation and
// specification sets wholesale, then evicts the product's cache entry.
func (s *ProductService) UpdateProduct(ctx context.Context, id string, input UpdateProductInput) (*models.Product, error) {
	// When the update does not move the product to a new category, the
	// stored one governs validation and stays on the row.
	categoryID := input.CategoryID
	if categoryID == "" {
		existing, err := s.repo.GetByID(id)
		if err != nil {
			return nil, err
		}
		categoryID = existing.CategoryID
	}

	if input.Variations != nil {
		category, err := s.categories.GetByID(categoryID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return nil, fmt.Errorf("%w: invalid category ID", ErrValidation)
			}
			return nil, err
		}
		if err := validateVariations(input.Variations, category.Type); err != nil {
			return nil, err
		}
	}

	product := &models.Product{
		Base:         models.Base{ID: id},
		Name:         input.Name,
		Brand:        input.Brand,
		Description:  input.Description,
		Price:        input.Price,
		BaseStock:    input.BaseStock,
		CategoryID:   categoryID,
		IsTrending:   input.IsTrending,
		IsNewArrival: input.IsNewArrival,
	}

	var variations []models.ProductVariation
	if input.Variations != nil {
		variations = make([]models.ProductVariation, 0, len(input.Variations))
		for _, v := range input.Variations {
			variations = append(variations, models.ProductVariation{
				Type: v.Type, Size: v.Size, Color: v.Color, Stock: v.Stock,
			})
		}
	}
	var specs []models.ProductSpec
	if input.Specifications != nil {
		specs = make([]models.ProductSpec, 0, len(input.Specifications))
		for _, sp := range input.Specifications {
			specs = append(specs, models.ProductSpec{
				Key: sp.Key, Value: sp.Value, Group: sp.Group, Order: sp.Order,
			})
		}
	}

	if err := s.repo.Update(product, variations, specs); err != nil {
		return nil, err
	}

	s.cache.Delete(ctx, cache.ProductKey(id))
	s.publish(rabbitmq.EventProductUpdated, map[string]interface{}{"id": id})
	return s.repo.GetByID(id)
}

// DeleteProduct removes the product and its dependents atomically and evicts
// its cache entry.
func (s *ProductService) DeleteProduct(ctx context.Context, id string) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.cache.Delete(ctx, cache.ProductKey(id))
	s.publish(rabbitmq.EventProductDeleted, map[string]interface{}{"id": id})
	return nil
}

// ClearCache flushes the entire cache store.
func (s *ProductService) ClearCache(ctx context.Context) {
	s.cache.Clear(ctx)
	s.publish(rabbitmq.EventCacheCleared, nil)
}

// SetFeaturedProducts replaces the featured selection with ids, capped at 8,
// in one atomic swap, and returns the newly flagged products.
func (s *ProductService) SetFeaturedProducts(ids []string) ([]models.Product, error) {
	if len(ids) > maxFlaggedProducts {
		return nil, fmt.Errorf("%w: too many products (maximum %d allowed)", ErrValidation, maxFlaggedProducts)
	}
	if err := s.repo.SetFeatured(ids); err != nil {
		return nil, err
	}
	return s.repo.GetFeatured(maxFlaggedProducts)
}

// SetTrendingProducts mirrors SetFeaturedProducts for the trending flag.
func (s *ProductService) SetTrendingProducts(ids []string) ([]models.Product, error) {
	if len(ids) > maxFlaggedProducts {
		return nil, fmt.Errorf("%w: too many products (maximum %d allowed)", ErrValidation, maxFlaggedProducts)
	}
	if err := s.repo.SetTrending(ids); err != nil {
		return nil, err
	}
	return s.repo.GetTrending(maxFlaggedProducts)
}

// GetFeaturedProducts returns the current featured selection.
func (s *ProductService) GetFeaturedProducts() ([]models.Product, error) {
	return s.repo.GetFeatured(maxFlaggedProducts)
}

// GetTrendingProducts returns the current trending selection.
func (s *ProductService) GetTrendingProducts() ([]models.Product, error) {
	return s.repo.GetTrending(maxFlaggedProducts)
}

func (s *ProductService) publish(event string, payload map[string]interface{}) {
	if s.events == nil {
		return
	}
	if err := s.events.PublishCatalogEvent(event, payload); err != nil {
		log.Printf("failed to publish %s: %v", event, err)
	}
}
