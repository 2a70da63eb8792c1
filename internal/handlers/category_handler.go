package handlers

import (
	"log"

	"storefront/internal/repositories"

	"github.com/gofiber/fiber/v2"
)

// CategoryHandler handles HTTP requests for product categories.
type CategoryHandler struct {
	categories repositories.CategoryRepository
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(categories repositories.CategoryRepository) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

// RegisterRoutes registers the category routes with the Fiber app.
func (h *CategoryHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/categories", h.HandleGetCategories)
}

// HandleGetCategories lists every category.
func (h *CategoryHandler) HandleGetCategories(c *fiber.Ctx) error {
	categories, err := h.categories.GetAll()
	if err != nil {
		log.Printf("Error fetching categories: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to fetch categories",
		})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    categories,
	})
}
