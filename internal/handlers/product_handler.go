package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"storefront/internal/middleware"
	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ProductHandler handles HTTP requests for the product catalog.
type ProductHandler struct {
	productService *services.ProductService
	authService    *services.AuthService
	validate       *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(productService *services.ProductService, authService *services.AuthService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		authService:    authService,
		validate:       validator.New(),
	}
}

// RegisterRoutes registers the product routes with the Fiber app. The /:id
// routes go last so the named routes match first.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	auth := middleware.AuthRequired(h.authService)
	adminOnly := middleware.SuperAdminRequired()
	optional := middleware.AuthOptional(h.authService)

	products := router.Group("/products")
	products.Post("/create-new-product", auth, adminOnly, h.HandleCreateProduct)
	products.Get("/fetch-admin-products", auth, adminOnly, h.HandleFetchAdminProducts)
	products.Get("/fetch-client-products", optional, h.HandleFetchClientProducts)
	products.Post("/clear-cache", auth, adminOnly, h.HandleClearCache)
	products.Get("/:id", optional, h.HandleGetProduct)
	products.Put("/:id", auth, adminOnly, h.HandleUpdateProduct)
	products.Delete("/:id", auth, adminOnly, h.HandleDeleteProduct)
}

// HandleCreateProduct handles the multipart product creation form. Uploaded
// files are staged in the OS temp dir and always removed afterwards.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid multipart form",
		})
	}

	input := services.CreateProductInput{
		Name:        c.FormValue("name"),
		Brand:       c.FormValue("brand"),
		Description: c.FormValue("description"),
		CategoryID:  c.FormValue("categoryId"),
		SKU:         c.FormValue("sku"),
	}
	if input.Name == "" || input.CategoryID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "name and categoryId are required",
		})
	}

	input.Price, _ = strconv.ParseInt(c.FormValue("price"), 10, 64)
	input.BaseStock, _ = strconv.Atoi(c.FormValue("baseStock"))
	input.IsTrending = c.FormValue("isTrending") == "true"
	input.IsNewArrival = c.FormValue("isNewArrival") == "true"

	if raw := c.FormValue("variations"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &input.Variations); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "variations must be a JSON array",
			})
		}
	}
	if raw := c.FormValue("specifications"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &input.Specifications); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "specifications must be a JSON array",
			})
		}
	}
	if raw := c.FormValue("flashSale"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &input.FlashSale); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "flashSale must be a JSON object",
			})
		}
	}

	for _, file := range form.File["images"] {
		path := filepath.Join(os.TempDir(), fmt.Sprintf("%s%s", uuid.NewString(), filepath.Ext(file.Filename)))
		if err := c.SaveFile(file, path); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"message": "Failed to stage uploaded image",
			})
		}
		defer os.Remove(path)
		input.ImagePaths = append(input.ImagePaths, path)
	}

	product, err := h.productService.CreateProduct(c.Context(), input)
	if err != nil {
		return productError(c, err, "Failed to create product")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Product created successfully",
		"product": product,
	})
}

// HandleFetchAdminProducts returns the full catalog as a raw array.
func (h *ProductHandler) HandleFetchAdminProducts(c *fiber.Ctx) error {
	products, err := h.productService.GetAllForAdmin()
	if err != nil {
		log.Printf("Error fetching admin products: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to fetch products",
		})
	}
	return c.JSON(products)
}

// HandleFetchClientProducts returns one filtered, paginated page of the
// published catalog.
func (h *ProductHandler) HandleFetchClientProducts(c *fiber.Ctx) error {
	filter := repositories.ProductFilter{
		Page:       c.QueryInt("page", 1),
		Limit:      c.QueryInt("limit", 10),
		CategoryID: c.Query("categoryId"),
		Type:       models.CategoryType(c.Query("type")),
		SortBy:     c.Query("sortBy"),
		SortOrder:  c.Query("sortOrder"),
		Featured:   c.Query("featured") == "true",
		Trending:   c.Query("trending") == "true",
		NewArrival: c.Query("newArrival") == "true",
	}
	filter.MinPrice, _ = strconv.ParseInt(c.Query("minPrice"), 10, 64)
	filter.MaxPrice, _ = strconv.ParseInt(c.Query("maxPrice"), 10, 64)

	page, err := h.productService.ListForClient(filter)
	if err != nil {
		log.Printf("Error fetching client products: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to fetch products",
		})
	}

	return c.JSON(fiber.Map{
		"success":       true,
		"products":      page.Products,
		"currentPage":   page.CurrentPage,
		"totalPages":    page.TotalPages,
		"totalProducts": page.TotalProducts,
	})
}

// HandleGetProduct returns one product by ID, cache-first.
func (h *ProductHandler) HandleGetProduct(c *fiber.Ctx) error {
	product, err := h.productService.GetProductByID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"message": "Product not found",
			})
		}
		log.Printf("Error fetching product: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to fetch product",
		})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"product": product,
	})
}

// HandleUpdateProduct applies a JSON product update.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	var input services.UpdateProductInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}

	product, err := h.productService.UpdateProduct(c.Context(), c.Params("id"), input)
	if err != nil {
		return productError(c, err, "Failed to update product")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Product updated successfully",
		"product": product,
	})
}

// HandleDeleteProduct removes a product and all its dependent rows.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	if err := h.productService.DeleteProduct(c.Context(), c.Params("id")); err != nil {
		return productError(c, err, "Failed to delete product")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Product deleted successfully",
	})
}

// HandleClearCache flushes the product cache.
func (h *ProductHandler) HandleClearCache(c *fiber.Ctx) error {
	h.productService.ClearCache(c.Context())
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Cache cleared successfully",
	})
}

// productError maps service errors onto the response envelope.
func productError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, services.ErrValidation):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	case errors.Is(err, repositories.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Product not found",
		})
	default:
		log.Printf("%s: %v", fallback, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": fallback,
		})
	}
}
