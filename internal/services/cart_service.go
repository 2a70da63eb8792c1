package services

import (
	"errors"
	"fmt"

	"storefront/internal/models"
	"storefront/internal/repositories"
)

// CartService handles shopping cart logic for authenticated users.
type CartService struct {
	carts    repositories.CartRepository
	products repositories.ProductRepository
}

// NewCartService creates a new CartService.
func NewCartService(carts repositories.CartRepository, products repositories.ProductRepository) *CartService {
	return &CartService{carts: carts, products: products}
}

// GetCart returns the user's cart items with their products attached.
func (s *CartService) GetCart(userID string) ([]models.CartItem, error) {
	return s.carts.GetByUser(userID)
}

// AddToCart adds quantity of a product to the user's cart. Adding a product
// already in the cart increases its quantity instead of creating a second
// line.
func (s *CartService) AddToCart(userID, productID string, quantity int) (*models.CartItem, error) {
	if quantity < 1 {
		return nil, fmt.Errorf("%w: quantity must be at least 1", ErrValidation)
	}
	if _, err := s.products.GetByID(productID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: product not found", ErrValidation)
		}
		return nil, err
	}
	return s.carts.AddItem(userID, productID, quantity)
}

// UpdateQuantity sets the quantity of one cart item.
func (s *CartService) UpdateQuantity(userID, itemID string, quantity int) (*models.CartItem, error) {
	if quantity < 1 {
		return nil, fmt.Errorf("%w: quantity must be at least 1", ErrValidation)
	}
	return s.carts.UpdateQuantity(userID, itemID, quantity)
}

// RemoveItem deletes one item from the user's cart.
func (s *CartService) RemoveItem(userID, itemID string) error {
	return s.carts.RemoveItem(userID, itemID)
}

// ClearCart empties the user's cart.
func (s *CartService) ClearCart(userID string) error {
	return s.carts.Clear(userID)
}
