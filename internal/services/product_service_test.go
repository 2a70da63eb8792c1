package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/internal/services"
	"storefront/pkg/cache"
	"storefront/pkg/media"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockProductRepository is a mock implementation of repositories.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) GetByID(id string) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) GetAllForAdmin() ([]models.Product, error) {
	args := m.Called()
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) GetPublished() ([]models.Product, error) {
	args := m.Called()
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) FindForClient(filter repositories.ProductFilter) ([]models.Product, int64, error) {
	args := m.Called(filter)
	return args.Get(0).([]models.Product), args.Get(1).(int64), args.Error(2)
}

func (m *MockProductRepository) Update(product *models.Product, variations []models.ProductVariation, specs []models.ProductSpec) error {
	args := m.Called(product, variations, specs)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockProductRepository) SetFeatured(ids []string) error {
	args := m.Called(ids)
	return args.Error(0)
}

func (m *MockProductRepository) SetTrending(ids []string) error {
	args := m.Called(ids)
	return args.Error(0)
}

func (m *MockProductRepository) GetFeatured(limit int) ([]models.Product, error) {
	args := m.Called(limit)
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) GetTrending(limit int) ([]models.Product, error) {
	args := m.Called(limit)
	return args.Get(0).([]models.Product), args.Error(1)
}

// MockCategoryRepository is a mock implementation of repositories.CategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) GetAll() ([]models.Category, error) {
	args := m.Called()
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *MockCategoryRepository) GetByID(id string) (*models.Category, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryRepository) Upsert(category *models.Category) error {
	args := m.Called(category)
	return args.Error(0)
}

func (m *MockCategoryRepository) UpsertSizeGuide(guide *models.SizeGuide) error {
	args := m.Called(guide)
	return args.Error(0)
}

// MockUploader is a mock implementation of media.Uploader
type MockUploader struct {
	mock.Mock
}

func (m *MockUploader) UploadImage(ctx context.Context, localPath, folder string) (*media.UploadResult, error) {
	args := m.Called(ctx, localPath, folder)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*media.UploadResult), args.Error(1)
}

type serviceMocks struct {
	repo       *MockProductRepository
	categories *MockCategoryRepository
	uploader   *MockUploader
	store      *cache.MemoryStore
}

func newProductService() (*services.ProductService, *serviceMocks) {
	m := &serviceMocks{
		repo:       new(MockProductRepository),
		categories: new(MockCategoryRepository),
		uploader:   new(MockUploader),
		store:      cache.NewMemoryStore(),
	}
	return services.NewProductService(m.repo, m.categories, m.store, m.uploader, nil), m
}

func fashionCategory() *models.Category {
	return &models.Category{Base: models.Base{ID: "cat-fashion"}, Name: "Fashion", Type: models.CategoryFashion}
}

func createInput(variations []services.VariationInput) services.CreateProductInput {
	return services.CreateProductInput{
		Name:       "Summer Shirt",
		Price:      49900,
		CategoryID: "cat-fashion",
		Variations: variations,
		ImagePaths: []string{"/tmp/image.jpg"},
	}
}

func TestProductService_CreateProduct_VariationRules(t *testing.T) {
	cases := []struct {
		name       string
		category   *models.Category
		variations []services.VariationInput
		wantErr    bool
	}{
		{
			name:       "clothes without size rejected",
			category:   fashionCategory(),
			variations: []services.VariationInput{{Type: "clothes", Stock: 5}},
			wantErr:    true,
		},
		{
			name:       "shoes without color rejected",
			category:   fashionCategory(),
			variations: []services.VariationInput{{Type: "shoes", Size: "42", Stock: 5}},
			wantErr:    true,
		},
		{
			name:       "negative stock rejected",
			category:   fashionCategory(),
			variations: []services.VariationInput{{Type: "clothes", Size: "M", Stock: -1}},
			wantErr:    true,
		},
		{
			name:       "one bad entry rejects the whole set",
			category:   fashionCategory(),
			variations: []services.VariationInput{{Type: "clothes", Size: "M", Stock: 5}, {Type: "clothes", Stock: 5}},
			wantErr:    true,
		},
		{
			name:       "complete fashion variations accepted",
			category:   fashionCategory(),
			variations: []services.VariationInput{{Type: "shoes", Size: "42", Color: "black", Stock: 5}},
			wantErr:    false,
		},
		{
			name:       "non-fashion skips size rules",
			category:   &models.Category{Base: models.Base{ID: "cat-fashion"}, Name: "Electronics", Type: models.CategoryElectronics},
			variations: []services.VariationInput{{Type: "clothes", Stock: 5}},
			wantErr:    false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			service, m := newProductService()
			m.categories.On("GetByID", "cat-fashion").Return(tc.category, nil).Once()
			if !tc.wantErr {
				m.uploader.On("UploadImage", mock.Anything, "/tmp/image.jpg", mock.Anything).
					Return(&media.UploadResult{URL: "https://res.example.com/i.jpg"}, nil).Once()
				m.repo.On("Create", mock.Anything).Return(nil).Once()
			}

			_, err := service.CreateProduct(context.Background(), createInput(tc.variations))
			if tc.wantErr {
				assert.ErrorIs(t, err, services.ErrValidation)
			} else {
				assert.NoError(t, err)
			}
			m.repo.AssertExpectations(t)
			m.uploader.AssertExpectations(t)
		})
	}
}

func TestProductService_CreateProduct_RequiresImage(t *testing.T) {
	service, _ := newProductService()
	input := createInput(nil)
	input.ImagePaths = nil

	_, err := service.CreateProduct(context.Background(), input)
	assert.ErrorIs(t, err, services.ErrValidation)
}

func TestProductService_CreateProduct_Defaults(t *testing.T) {
	service, m := newProductService()
	m.categories.On("GetByID", "cat-fashion").Return(fashionCategory(), nil).Once()
	m.uploader.On("UploadImage", mock.Anything, mock.Anything, "ecommerce/products").
		Return(&media.UploadResult{URL: "https://res.example.com/i.jpg", PublicID: "i"}, nil).Once()

	var created *models.Product
	m.repo.On("Create", mock.Anything).Run(func(args mock.Arguments) {
		created = args.Get(0).(*models.Product)
	}).Return(nil).Once()

	input := createInput(nil)
	input.SKU = "SHIRT-001"
	_, err := service.CreateProduct(context.Background(), input)
	assert.NoError(t, err)

	// New products always enter the catalog as drafts under a timestamped slug.
	assert.Equal(t, models.StatusDraft, created.Status)
	assert.Regexp(t, `^summer-shirt-\d+$`, created.Slug)

	// The sku form value rides along as a specification.
	if assert.Len(t, created.Specifications, 1) {
		assert.Equal(t, "SKU", created.Specifications[0].Key)
		assert.Equal(t, "SHIRT-001", created.Specifications[0].Value)
		assert.Equal(t, "General", created.Specifications[0].Group)
	}
}

func TestProductService_GetProductByID_CacheHit(t *testing.T) {
	service, m := newProductService()

	warm := models.Product{Base: models.Base{ID: "p1"}, Name: "Warm Shirt"}
	m.store.Set(context.Background(), cache.ProductKey("p1"), warm, time.Hour)

	// No repo expectation is registered: a warm cache entry must not touch it.
	product, err := service.GetProductByID(context.Background(), "p1")
	assert.NoError(t, err)
	assert.Equal(t, "Warm Shirt", product.Name)
	m.repo.AssertNotCalled(t, "GetByID", "p1")
}

func TestProductService_GetProductByID_MissWritesBack(t *testing.T) {
	service, m := newProductService()
	m.repo.On("GetByID", "p1").Return(&models.Product{Base: models.Base{ID: "p1"}, Name: "Cold Shirt"}, nil).Once()

	product, err := service.GetProductByID(context.Background(), "p1")
	assert.NoError(t, err)
	assert.Equal(t, "Cold Shirt", product.Name)

	var cached models.Product
	assert.True(t, m.store.Get(context.Background(), cache.ProductKey("p1"), &cached))
	assert.Equal(t, "Cold Shirt", cached.Name)
}

func TestProductService_GetProductByID_NotFoundSkipsCache(t *testing.T) {
	service, m := newProductService()
	m.repo.On("GetByID", "ghost").Return(nil, fmt.Errorf("product ghost: %w", repositories.ErrNotFound)).Once()

	_, err := service.GetProductByID(context.Background(), "ghost")
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	var cached models.Product
	assert.False(t, m.store.Get(context.Background(), cache.ProductKey("ghost"), &cached))
}

func TestProductService_UpdateProduct_EvictsCacheEntry(t *testing.T) {
	service, m := newProductService()
	m.store.Set(context.Background(), cache.ProductKey("p1"), models.Product{Name: "Stale"}, time.Hour)

	m.repo.On("Update", mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	m.repo.On("GetByID", "p1").Return(&models.Product{Base: models.Base{ID: "p1"}, Name: "Fresh"}, nil)

	_, err := service.UpdateProduct(context.Background(), "p1", services.UpdateProductInput{Name: "Fresh"})
	assert.NoError(t, err)

	var cached models.Product
	assert.False(t, m.store.Get(context.Background(), cache.ProductKey("p1"), &cached))
}

func TestProductService_UpdateProduct_ValidatesAgainstStoredCategory(t *testing.T) {
	service, m := newProductService()

	m.repo.On("GetByID", "p1").Return(&models.Product{
		Base: models.Base{ID: "p1"}, CategoryID: "cat-fashion",
	}, nil)
	m.categories.On("GetByID", "cat-fashion").Return(fashionCategory(), nil)

	// Variation rules apply even when the update omits the category ID.
	_, err := service.UpdateProduct(context.Background(), "p1", services.UpdateProductInput{
		Variations: []services.VariationInput{{Type: "clothes", Size: "M", Stock: -5}},
	})
	assert.ErrorIs(t, err, services.ErrValidation)
	m.repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestProductService_SetFeaturedProducts_Cap(t *testing.T) {
	service, m := newProductService()

	ids := make([]string, 9)
	for i := range ids {
		ids[i] = fmt.Sprintf("p%d", i)
	}

	_, err := service.SetFeaturedProducts(ids)
	assert.ErrorIs(t, err, services.ErrValidation)
	m.repo.AssertNotCalled(t, "SetFeatured", mock.Anything)

	m.repo.On("SetFeatured", ids[:8]).Return(nil).Once()
	m.repo.On("GetFeatured", 8).Return([]models.Product{}, nil).Once()
	_, err = service.SetFeaturedProducts(ids[:8])
	assert.NoError(t, err)
	m.repo.AssertExpectations(t)
}

func TestProductService_ListForClient_Defaults(t *testing.T) {
	service, m := newProductService()

	m.repo.On("FindForClient", mock.MatchedBy(func(f repositories.ProductFilter) bool {
		return f.Page == 1 && f.Limit == 10
	})).Return([]models.Product{{Name: "A"}}, int64(23), nil).Once()

	page, err := service.ListForClient(repositories.ProductFilter{})
	assert.NoError(t, err)
	assert.Equal(t, 1, page.CurrentPage)
	assert.Equal(t, 3, page.TotalPages)
	assert.EqualValues(t, 23, page.TotalProducts)
	m.repo.AssertExpectations(t)
}
