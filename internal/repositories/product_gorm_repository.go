package repositories

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"storefront/internal/models"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{db: db}
}

// Create persists the product and its associations in one write. GORM
// cascades the child slices through the association rows.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if err := r.db.Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// GetByID retrieves a single product with all relations.
func (r *GORMProductRepository) GetByID(id string) (*models.Product, error) {
	var product models.Product
	err := r.db.
		Preload("Category").
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("display_order asc") }).
		Preload("Variations").
		Preload("Specifications", func(db *gorm.DB) *gorm.DB { return db.Order("display_order asc") }).
		Preload("FlashSale").
		First(&product, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("product %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get product %s: %w", id, err)
	}
	return &product, nil
}

// GetAllForAdmin retrieves every product regardless of status.
func (r *GORMProductRepository) GetAllForAdmin() ([]models.Product, error) {
	var products []models.Product
	err := r.db.
		Preload("Category").
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("display_order asc") }).
		Preload("Variations").
		Preload("Specifications").
		Preload("FlashSale").
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get admin products: %w", err)
	}
	return products, nil
}

// GetPublished retrieves all PUBLISHED products, newest first, with only the
// currently live flash sale attached.
func (r *GORMProductRepository) GetPublished() ([]models.Product, error) {
	var products []models.Product
	err := r.db.
		Where("status = ?", models.StatusPublished).
		Preload("Category").
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("display_order asc") }).
		Preload("Variations").
		Preload("FlashSale", "is_active = ? AND end_time > ?", true, time.Now()).
		Order("created_at desc").
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get published products: %w", err)
	}
	return products, nil
}

// FindForClient returns one page of published products and the total match
// count for the filter.
func (r *GORMProductRepository) FindForClient(filter ProductFilter) ([]models.Product, int64, error) {
	query := r.db.Model(&models.Product{}).Where("status = ?", models.StatusPublished)

	if filter.CategoryID != "" {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	if filter.Type != "" {
		query = query.Joins("JOIN categories ON categories.id = products.category_id").
			Where("categories.type = ?", filter.Type)
	}
	if filter.MinPrice > 0 {
		query = query.Where("price >= ?", filter.MinPrice)
	}
	if filter.MaxPrice > 0 {
		query = query.Where("price <= ?", filter.MaxPrice)
	}
	if filter.Featured {
		query = query.Where("is_featured = ?", true)
	}
	if filter.Trending {
		query = query.Where("is_trending = ?", true)
	}
	if filter.NewArrival {
		query = query.Where("is_new_arrival = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	sortBy := filter.SortBy
	switch sortBy {
	case "price", "name", "created_at":
	default:
		sortBy = "created_at"
	}
	sortOrder := "desc"
	if filter.SortOrder == "asc" {
		sortOrder = "asc"
	}

	var products []models.Product
	err := query.
		Preload("Category").
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("display_order asc") }).
		Preload("Variations").
		Preload("FlashSale", "is_active = ? AND end_time > ?", true, time.Now()).
		Order(fmt.Sprintf("products.%s %s", sortBy, sortOrder)).
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Find(&products).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}
	return products, total, nil
}

// Update writes the scalar fields and replaces the variation and
// specification sets wholesale, in one transaction.
func (r *GORMProductRepository) Update(product *models.Product, variations []models.ProductVariation, specs []models.ProductSpec) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Product{}).Where("id = ?", product.ID).Updates(map[string]interface{}{
			"name":           product.Name,
			"brand":          product.Brand,
			"description":    product.Description,
			"price":          product.Price,
			"base_stock":     product.BaseStock,
			"category_id":    product.CategoryID,
			"is_trending":    product.IsTrending,
			"is_new_arrival": product.IsNewArrival,
		})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("product %s: %w", product.ID, ErrNotFound)
		}

		if variations != nil {
			if err := tx.Where("product_id = ?", product.ID).Delete(&models.ProductVariation{}).Error; err != nil {
				return err
			}
			for i := range variations {
				variations[i].ProductID = product.ID
			}
			if len(variations) > 0 {
				if err := tx.Create(&variations).Error; err != nil {
					return err
				}
			}
		}

		if specs != nil {
			if err := tx.Where("product_id = ?", product.ID).Delete(&models.ProductSpec{}).Error; err != nil {
				return err
			}
			for i := range specs {
				specs[i].ProductID = product.ID
			}
			if len(specs) > 0 {
				if err := tx.Create(&specs).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to update product %s: %w", product.ID, err)
	}
	return nil
}

// Delete removes the product and all dependent rows in one transaction, so
// either every row disappears or none do.
func (r *GORMProductRepository) Delete(id string) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", id).Delete(&models.ProductImage{}).Error; err != nil {
			return err
		}
		if err := tx.Where("product_id = ?", id).Delete(&models.ProductVariation{}).Error; err != nil {
			return err
		}
		if err := tx.Where("product_id = ?", id).Delete(&models.ProductSpec{}).Error; err != nil {
			return err
		}
		if err := tx.Where("product_id = ?", id).Delete(&models.FlashSale{}).Error; err != nil {
			return err
		}
		if err := tx.Where("product_id = ?", id).Delete(&models.FlashSaleProduct{}).Error; err != nil {
			return err
		}

		res := tx.Delete(&models.Product{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("product %s: %w", id, ErrNotFound)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete product %s: %w", id, err)
	}
	return nil
}

// SetFeatured clears every featured flag and raises it for ids inside one
// transaction, so a crash cannot leave the catalog half-flagged.
func (r *GORMProductRepository) SetFeatured(ids []string) error {
	return r.replaceFlag("is_featured", ids)
}

// SetTrending mirrors SetFeatured for the trending flag.
func (r *GORMProductRepository) SetTrending(ids []string) error {
	return r.replaceFlag("is_trending", ids)
}

func (r *GORMProductRepository) replaceFlag(column string, ids []string) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Product{}).Where(column+" = ?", true).
			Update(column, false).Error; err != nil {
			return err
		}
		if len(ids) == 0 {
			return nil
		}
		return tx.Model(&models.Product{}).Where("id IN ?", ids).
			Update(column, true).Error
	})
	if err != nil {
		return fmt.Errorf("failed to replace %s selection: %w", column, err)
	}
	return nil
}

// GetFeatured retrieves flagged products with their live flash sale, newest
// first.
func (r *GORMProductRepository) GetFeatured(limit int) ([]models.Product, error) {
	return r.getFlagged("is_featured", limit)
}

// GetTrending mirrors GetFeatured for the trending flag.
func (r *GORMProductRepository) GetTrending(limit int) ([]models.Product, error) {
	return r.getFlagged("is_trending", limit)
}

func (r *GORMProductRepository) getFlagged(column string, limit int) ([]models.Product, error) {
	var products []models.Product
	err := r.db.
		Where(column+" = ?", true).
		Preload("Category").
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("display_order asc") }).
		Preload("Variations").
		Preload("FlashSale", "is_active = ? AND end_time > ?", true, time.Now()).
		Order("created_at desc").
		Limit(limit).
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get %s products: %w", column, err)
	}
	return products, nil
}
