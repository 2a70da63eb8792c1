package services_test

import (
	"testing"
	"time"

	"storefront/internal/models"
	"storefront/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockFlashSaleConfigRepository is a mock implementation of
// repositories.FlashSaleConfigRepository
type MockFlashSaleConfigRepository struct {
	mock.Mock
}

func (m *MockFlashSaleConfigRepository) Create(config *models.FlashSaleConfig) error {
	args := m.Called(config)
	return args.Error(0)
}

func (m *MockFlashSaleConfigRepository) GetActive() ([]models.FlashSaleConfig, error) {
	args := m.Called()
	return args.Get(0).([]models.FlashSaleConfig), args.Error(1)
}

func (m *MockFlashSaleConfigRepository) GetByID(id string) (*models.FlashSaleConfig, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FlashSaleConfig), args.Error(1)
}

func (m *MockFlashSaleConfigRepository) Update(config *models.FlashSaleConfig, items []models.FlashSaleProduct) error {
	args := m.Called(config, items)
	return args.Error(0)
}

func (m *MockFlashSaleConfigRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func campaignInput(items []services.FlashSaleItemInput) services.FlashSaleConfigInput {
	return services.FlashSaleConfigInput{
		Title:     "Weekend Deals",
		StartTime: time.Now(),
		EndTime:   time.Now().Add(48 * time.Hour),
		IsActive:  true,
		Products:  items,
	}
}

func TestFlashSaleService_CreateCampaign_Snapshots(t *testing.T) {
	configs := new(MockFlashSaleConfigRepository)
	products := new(MockProductRepository)
	service := services.NewFlashSaleService(configs, products)

	products.On("GetByID", "p1").Return(&models.Product{Base: models.Base{ID: "p1"}, Price: 100000}, nil)
	products.On("GetByID", "p2").Return(&models.Product{Base: models.Base{ID: "p2"}, Price: 50000}, nil)

	var created *models.FlashSaleConfig
	configs.On("Create", mock.Anything).Run(func(args mock.Arguments) {
		created = args.Get(0).(*models.FlashSaleConfig)
	}).Return(nil).Once()
	configs.On("GetByID", mock.Anything).Return(&models.FlashSaleConfig{}, nil).Once()

	_, err := service.CreateCampaign(campaignInput([]services.FlashSaleItemInput{
		{ProductID: "p1", DiscountType: models.DiscountPercentage, DiscountPercentage: 25},
		{ProductID: "p2", DiscountType: models.DiscountFixed, FixedDiscount: 10000},
	}))
	assert.NoError(t, err)

	if assert.Len(t, created.Products, 2) {
		assert.EqualValues(t, 75000, created.Products[0].DiscountPrice)
		assert.EqualValues(t, 100000, created.Products[0].OriginalPrice)
		assert.EqualValues(t, 40000, created.Products[1].DiscountPrice)
		assert.EqualValues(t, 50000, created.Products[1].OriginalPrice)
	}
}

func TestFlashSaleService_CreateCampaign_Rejections(t *testing.T) {
	configs := new(MockFlashSaleConfigRepository)
	products := new(MockProductRepository)
	service := services.NewFlashSaleService(configs, products)

	products.On("GetByID", "p1").Return(&models.Product{Base: models.Base{ID: "p1"}, Price: 100000}, nil)

	// Discount percentage out of range.
	_, err := service.CreateCampaign(campaignInput([]services.FlashSaleItemInput{
		{ProductID: "p1", DiscountType: models.DiscountPercentage, DiscountPercentage: 150},
	}))
	assert.ErrorIs(t, err, services.ErrValidation)

	// Fixed discount must stay below the product price.
	_, err = service.CreateCampaign(campaignInput([]services.FlashSaleItemInput{
		{ProductID: "p1", DiscountType: models.DiscountFixed, FixedDiscount: 100000},
	}))
	assert.ErrorIs(t, err, services.ErrValidation)

	// Unknown discount types never pass.
	_, err = service.CreateCampaign(campaignInput([]services.FlashSaleItemInput{
		{ProductID: "p1", DiscountType: "BOGOF"},
	}))
	assert.ErrorIs(t, err, services.ErrValidation)

	// The window has to be forward in time.
	input := campaignInput(nil)
	input.EndTime = input.StartTime.Add(-time.Hour)
	_, err = service.CreateCampaign(input)
	assert.ErrorIs(t, err, services.ErrValidation)

	configs.AssertNotCalled(t, "Create", mock.Anything)
}
