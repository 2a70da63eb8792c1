package handlers

import (
	"errors"
	"log"

	"storefront/internal/middleware"
	"storefront/internal/repositories"
	"storefront/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CartHandler handles HTTP requests for the shopping cart. Every route is
// scoped to the authenticated user.
type CartHandler struct {
	cartService *services.CartService
	authService *services.AuthService
	validate    *validator.Validate
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(cartService *services.CartService, authService *services.AuthService) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		authService: authService,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the cart routes with the Fiber app.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	cart := router.Group("/cart", middleware.AuthRequired(h.authService))
	cart.Get("/fetch-cart", h.HandleFetchCart)
	cart.Post("/add-to-cart", h.HandleAddToCart)
	cart.Put("/update/:id", h.HandleUpdateQuantity)
	cart.Delete("/remove/:id", h.HandleRemoveItem)
	cart.Post("/clear-cart", h.HandleClearCart)
}

// HandleFetchCart returns the user's cart with products attached.
func (h *CartHandler) HandleFetchCart(c *fiber.Ctx) error {
	items, err := h.cartService.GetCart(middleware.UserID(c))
	if err != nil {
		return cartError(c, err, "Failed to fetch cart")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    items,
	})
}

// AddToCartRequest is the body of an add-to-cart request.
type AddToCartRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

// HandleAddToCart adds a product to the cart, merging quantities when the
// product is already there.
func (h *CartHandler) HandleAddToCart(c *fiber.Ctx) error {
	var req AddToCartRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Validation failed",
			"errors":  validationMessages(err),
		})
	}

	item, err := h.cartService.AddToCart(middleware.UserID(c), req.ProductID, req.Quantity)
	if err != nil {
		return cartError(c, err, "Failed to add to cart")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    item,
	})
}

// UpdateQuantityRequest is the body of a quantity update.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity" validate:"required,gt=0"`
}

// HandleUpdateQuantity sets the quantity of one cart item.
func (h *CartHandler) HandleUpdateQuantity(c *fiber.Ctx) error {
	var req UpdateQuantityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Validation failed",
			"errors":  validationMessages(err),
		})
	}

	item, err := h.cartService.UpdateQuantity(middleware.UserID(c), c.Params("id"), req.Quantity)
	if err != nil {
		return cartError(c, err, "Failed to update cart item")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    item,
	})
}

// HandleRemoveItem deletes one cart item.
func (h *CartHandler) HandleRemoveItem(c *fiber.Ctx) error {
	if err := h.cartService.RemoveItem(middleware.UserID(c), c.Params("id")); err != nil {
		return cartError(c, err, "Failed to remove cart item")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Item removed",
	})
}

// HandleClearCart empties the user's cart.
func (h *CartHandler) HandleClearCart(c *fiber.Ctx) error {
	if err := h.cartService.ClearCart(middleware.UserID(c)); err != nil {
		return cartError(c, err, "Failed to clear cart")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Cart cleared",
	})
}

// cartError maps service errors onto the cart envelope.
func cartError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, services.ErrValidation):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	case errors.Is(err, repositories.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Cart item not found",
		})
	default:
		log.Printf("%s: %v", fallback, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": fallback,
		})
	}
}
