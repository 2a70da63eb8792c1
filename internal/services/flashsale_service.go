package services

import (
	"errors"
	"fmt"
	"time"

	"storefront/internal/models"
	"storefront/internal/repositories"
)

// FlashSaleItemInput is one product entry of a flash sale campaign request.
type FlashSaleItemInput struct {
	ProductID          string              `json:"productId"`
	DiscountType       models.DiscountType `json:"discountType"`
	DiscountPercentage float64             `json:"discountPercentage"`
	FixedDiscount      int64               `json:"fixedDiscount"`
	Stock              int                 `json:"stock"`
	Order              int                 `json:"order"`
}

// FlashSaleConfigInput carries a campaign create or update request.
type FlashSaleConfigInput struct {
	Title       string               `json:"title"`
	Subtitle    string               `json:"subtitle"`
	Description string               `json:"description"`
	StartTime   time.Time            `json:"startTime"`
	EndTime     time.Time            `json:"endTime"`
	BannerImage string               `json:"bannerImage"`
	IsActive    bool                 `json:"isActive"`
	Products    []FlashSaleItemInput `json:"products"`
}

// FlashSaleService manages flash sale campaigns. Sale prices are computed
// once, when the campaign is written, from the product's price at that
// moment; later catalog price changes never move a running sale.
type FlashSaleService struct {
	configs  repositories.FlashSaleConfigRepository
	products repositories.ProductRepository
}

// NewFlashSaleService creates a new FlashSaleService.
func NewFlashSaleService(configs repositories.FlashSaleConfigRepository, products repositories.ProductRepository) *FlashSaleService {
	return &FlashSaleService{configs: configs, products: products}
}

// snapshotItems resolves each requested product and freezes its sale price.
func (s *FlashSaleService) snapshotItems(inputs []FlashSaleItemInput) ([]models.FlashSaleProduct, error) {
	items := make([]models.FlashSaleProduct, 0, len(inputs))
	for _, in := range inputs {
		product, err := s.products.GetByID(in.ProductID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return nil, fmt.Errorf("%w: product %s not found", ErrValidation, in.ProductID)
			}
			return nil, err
		}

		var price int64
		switch in.DiscountType {
		case models.DiscountPercentage:
			if in.DiscountPercentage <= 0 || in.DiscountPercentage >= 100 {
				return nil, fmt.Errorf("%w: discount percentage must be between 0 and 100", ErrValidation)
			}
			price = int64(float64(product.Price) * (1 - in.DiscountPercentage/100))
		case models.DiscountFixed:
			if in.FixedDiscount <= 0 || in.FixedDiscount >= product.Price {
				return nil, fmt.Errorf("%w: fixed discount must be positive and below the product price", ErrValidation)
			}
			price = product.Price - in.FixedDiscount
		default:
			return nil, fmt.Errorf("%w: unknown discount type %q", ErrValidation, in.DiscountType)
		}

		items = append(items, models.FlashSaleProduct{
			ProductID:          in.ProductID,
			DiscountPrice:      price,
			DiscountPercentage: in.DiscountPercentage,
			FixedDiscount:      in.FixedDiscount,
			DiscountType:       in.DiscountType,
			OriginalPrice:      product.Price,
			Stock:              in.Stock,
			Order:              in.Order,
		})
	}
	return items, nil
}

// CreateCampaign persists a new campaign with frozen line item prices.
func (s *FlashSaleService) CreateCampaign(input FlashSaleConfigInput) (*models.FlashSaleConfig, error) {
	if !input.EndTime.After(input.StartTime) {
		return nil, fmt.Errorf("%w: end time must be after start time", ErrValidation)
	}
	items, err := s.snapshotItems(input.Products)
	if err != nil {
		return nil, err
	}

	config := &models.FlashSaleConfig{
		Title:       input.Title,
		Subtitle:    input.Subtitle,
		Description: input.Description,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
		BannerImage: input.BannerImage,
		IsActive:    input.IsActive,
		Products:    items,
	}
	if err := s.configs.Create(config); err != nil {
		return nil, err
	}
	return s.configs.GetByID(config.ID)
}

// UpdateCampaign replaces a campaign's fields and its line items wholesale.
// Prices are re-frozen from the products' current catalog prices.
func (s *FlashSaleService) UpdateCampaign(id string, input FlashSaleConfigInput) (*models.FlashSaleConfig, error) {
	if !input.EndTime.After(input.StartTime) {
		return nil, fmt.Errorf("%w: end time must be after start time", ErrValidation)
	}
	if _, err := s.configs.GetByID(id); err != nil {
		return nil, err
	}
	items, err := s.snapshotItems(input.Products)
	if err != nil {
		return nil, err
	}

	config := &models.FlashSaleConfig{
		Base:        models.Base{ID: id},
		Title:       input.Title,
		Subtitle:    input.Subtitle,
		Description: input.Description,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
		BannerImage: input.BannerImage,
		IsActive:    input.IsActive,
	}
	if err := s.configs.Update(config, items); err != nil {
		return nil, err
	}
	return s.configs.GetByID(id)
}

// GetActiveCampaigns returns every currently running campaign, newest first.
// The slice is empty, never nil, when no campaign is live.
func (s *FlashSaleService) GetActiveCampaigns() ([]models.FlashSaleConfig, error) {
	configs, err := s.configs.GetActive()
	if err != nil {
		return nil, err
	}
	if configs == nil {
		configs = []models.FlashSaleConfig{}
	}
	return configs, nil
}

// GetCampaign returns one campaign by ID.
func (s *FlashSaleService) GetCampaign(id string) (*models.FlashSaleConfig, error) {
	return s.configs.GetByID(id)
}

// DeleteCampaign removes a campaign and its line items.
func (s *FlashSaleService) DeleteCampaign(id string) error {
	return s.configs.Delete(id)
}
