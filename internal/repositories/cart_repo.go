package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"storefront/internal/models"
)

// CartRepository defines the interface for cart data access. Items are
// scoped to one user; adding an existing product merges quantities.
type CartRepository interface {
	GetByUser(userID string) ([]models.CartItem, error)
	AddItem(userID, productID string, quantity int) (*models.CartItem, error)
	UpdateQuantity(userID, itemID string, quantity int) (*models.CartItem, error)
	RemoveItem(userID, itemID string) error
	Clear(userID string) error
}

// GORMCartRepository is a GORM implementation of CartRepository.
type GORMCartRepository struct {
	db *gorm.DB
}

func NewGORMCartRepository(db *gorm.DB) *GORMCartRepository {
	return &GORMCartRepository{db: db}
}

func (r *GORMCartRepository) GetByUser(userID string) ([]models.CartItem, error) {
	var items []models.CartItem
	err := r.db.
		Where("user_id = ?", userID).
		Preload("Product").
		Preload("Product.Images", func(db *gorm.DB) *gorm.DB { return db.Order("display_order asc") }).
		Order("created_at asc").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get cart for user %s: %w", userID, err)
	}
	return items, nil
}

func (r *GORMCartRepository) AddItem(userID, productID string, quantity int) (*models.CartItem, error) {
	var item models.CartItem
	err := r.db.First(&item, "user_id = ? AND product_id = ?", userID, productID).Error
	switch err {
	case nil:
		item.Quantity += quantity
		if err := r.db.Save(&item).Error; err != nil {
			return nil, fmt.Errorf("failed to merge cart item: %w", err)
		}
	case gorm.ErrRecordNotFound:
		item = models.CartItem{UserID: userID, ProductID: productID, Quantity: quantity}
		if err := r.db.Create(&item).Error; err != nil {
			return nil, fmt.Errorf("failed to add cart item: %w", err)
		}
	default:
		return nil, fmt.Errorf("failed to look up cart item: %w", err)
	}
	return &item, nil
}

func (r *GORMCartRepository) UpdateQuantity(userID, itemID string, quantity int) (*models.CartItem, error) {
	var item models.CartItem
	if err := r.db.First(&item, "id = ? AND user_id = ?", itemID, userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("cart item %s: %w", itemID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get cart item %s: %w", itemID, err)
	}
	item.Quantity = quantity
	if err := r.db.Save(&item).Error; err != nil {
		return nil, fmt.Errorf("failed to update cart item %s: %w", itemID, err)
	}
	return &item, nil
}

func (r *GORMCartRepository) RemoveItem(userID, itemID string) error {
	res := r.db.Delete(&models.CartItem{}, "id = ? AND user_id = ?", itemID, userID)
	if res.Error != nil {
		return fmt.Errorf("failed to remove cart item %s: %w", itemID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("cart item %s: %w", itemID, ErrNotFound)
	}
	return nil
}

func (r *GORMCartRepository) Clear(userID string) error {
	if err := r.db.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error; err != nil {
		return fmt.Errorf("failed to clear cart for user %s: %w", userID, err)
	}
	return nil
}
