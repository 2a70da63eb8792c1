package handlers

import (
	"errors"
	"log"

	"storefront/internal/middleware"
	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/internal/services"
	"storefront/pkg/media"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// HomepageHandler handles the homepage content management surface: hero
// slides, trust signals, promotional banners, blog posts, flash sale
// campaigns, featured/trending selection and the layout config singleton.
type HomepageHandler struct {
	slides           repositories.HeroSlideRepository
	signals          repositories.TrustSignalRepository
	banners          repositories.PromotionalBannerRepository
	posts            repositories.BlogPostRepository
	config           repositories.HomePageConfigRepository
	productService   *services.ProductService
	flashSaleService *services.FlashSaleService
	authService      *services.AuthService
	uploader         media.Uploader
	validate         *validator.Validate
}

// NewHomepageHandler creates a new HomepageHandler.
func NewHomepageHandler(
	slides repositories.HeroSlideRepository,
	signals repositories.TrustSignalRepository,
	banners repositories.PromotionalBannerRepository,
	posts repositories.BlogPostRepository,
	config repositories.HomePageConfigRepository,
	productService *services.ProductService,
	flashSaleService *services.FlashSaleService,
	authService *services.AuthService,
	uploader media.Uploader,
) *HomepageHandler {
	return &HomepageHandler{
		slides:           slides,
		signals:          signals,
		banners:          banners,
		posts:            posts,
		config:           config,
		productService:   productService,
		flashSaleService: flashSaleService,
		authService:      authService,
		uploader:         uploader,
		validate:         validator.New(),
	}
}

// RegisterRoutes registers the homepage routes with the Fiber app.
func (h *HomepageHandler) RegisterRoutes(router fiber.Router) {
	auth := middleware.AuthRequired(h.authService)
	adminOnly := middleware.SuperAdminRequired()

	homepage := router.Group("/homepage")

	homepage.Post("/hero-slides", auth, adminOnly, h.HandleCreateHeroSlide)
	homepage.Get("/hero-slides", h.HandleGetHeroSlides)
	homepage.Get("/admin/hero-slides", auth, adminOnly, h.HandleGetAdminHeroSlides)
	homepage.Put("/admin/hero-slides/order", auth, adminOnly, h.HandleReorderHeroSlides)
	homepage.Patch("/admin/hero-slides/:id/status", auth, adminOnly, h.HandleToggleHeroSlideStatus)
	homepage.Put("/hero-slides/:id", auth, adminOnly, h.HandleUpdateHeroSlide)
	homepage.Delete("/hero-slides/:id", auth, adminOnly, h.HandleDeleteHeroSlide)

	homepage.Post("/trust-signals", auth, adminOnly, h.HandleCreateTrustSignal)
	homepage.Get("/trust-signals", h.HandleGetTrustSignals)
	homepage.Put("/trust-signals/:id", auth, adminOnly, h.HandleUpdateTrustSignal)
	homepage.Delete("/trust-signals/:id", auth, adminOnly, h.HandleDeleteTrustSignal)

	homepage.Post("/promotional-banners", auth, adminOnly, h.HandleCreateBanner)
	homepage.Get("/promotional-banners", h.HandleGetBanners)
	homepage.Put("/promotional-banners/:id", auth, adminOnly, h.HandleUpdateBanner)
	homepage.Delete("/promotional-banners/:id", auth, adminOnly, h.HandleDeleteBanner)

	homepage.Post("/blog-posts", auth, adminOnly, h.HandleCreateBlogPost)
	homepage.Get("/blog-posts", h.HandleGetBlogPosts)
	homepage.Put("/blog-posts/:id", auth, adminOnly, h.HandleUpdateBlogPost)
	homepage.Delete("/blog-posts/:id", auth, adminOnly, h.HandleDeleteBlogPost)

	homepage.Post("/flash-sales", auth, adminOnly, h.HandleCreateFlashSale)
	homepage.Get("/flash-sales", h.HandleGetActiveFlashSale)
	homepage.Put("/flash-sales/:id", auth, adminOnly, h.HandleUpdateFlashSale)
	homepage.Delete("/flash-sales/:id", auth, adminOnly, h.HandleDeleteFlashSale)

	homepage.Post("/featured-categories", auth, adminOnly, h.HandleSetFeaturedProducts)
	homepage.Get("/get-featured-categories", h.HandleGetFeaturedProducts)
	homepage.Post("/trending-products", auth, adminOnly, h.HandleSetTrendingProducts)
	homepage.Get("/get-trending-products", h.HandleGetTrendingProducts)
	homepage.Get("/products", auth, adminOnly, h.HandleGetPublishedProducts)

	homepage.Get("/config", h.HandleGetConfig)
	homepage.Put("/config", auth, adminOnly, h.HandleUpdateConfig)
}

// ProductIDsRequest is the body for the featured/trending selection routes.
type ProductIDsRequest struct {
	ProductIDs *[]string `json:"productIds"`
}

// HandleSetFeaturedProducts replaces the featured selection atomically.
func (h *HomepageHandler) HandleSetFeaturedProducts(c *fiber.Ctx) error {
	var req ProductIDsRequest
	if err := c.BodyParser(&req); err != nil || req.ProductIDs == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "productIds must be an array",
		})
	}

	products, err := h.productService.SetFeaturedProducts(*req.ProductIDs)
	if err != nil {
		return contentError(c, err, "Failed to set featured products")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    products,
	})
}

// HandleGetFeaturedProducts returns the current featured selection.
func (h *HomepageHandler) HandleGetFeaturedProducts(c *fiber.Ctx) error {
	products, err := h.productService.GetFeaturedProducts()
	if err != nil {
		return contentError(c, err, "Failed to fetch featured products")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    products,
	})
}

// HandleSetTrendingProducts replaces the trending selection atomically.
func (h *HomepageHandler) HandleSetTrendingProducts(c *fiber.Ctx) error {
	var req ProductIDsRequest
	if err := c.BodyParser(&req); err != nil || req.ProductIDs == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "productIds must be an array",
		})
	}

	products, err := h.productService.SetTrendingProducts(*req.ProductIDs)
	if err != nil {
		return contentError(c, err, "Failed to set trending products")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    products,
	})
}

// HandleGetTrendingProducts returns the current trending selection.
func (h *HomepageHandler) HandleGetTrendingProducts(c *fiber.Ctx) error {
	products, err := h.productService.GetTrendingProducts()
	if err != nil {
		return contentError(c, err, "Failed to fetch trending products")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    products,
	})
}

// HandleGetPublishedProducts lists PUBLISHED products for the admin selection
// UI.
func (h *HomepageHandler) HandleGetPublishedProducts(c *fiber.Ctx) error {
	products, err := h.productService.GetPublished()
	if err != nil {
		return contentError(c, err, "Failed to fetch products")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    products,
	})
}

// HandleGetConfig returns the homepage layout config, creating the default
// row on first read.
func (h *HomepageHandler) HandleGetConfig(c *fiber.Ctx) error {
	config, err := h.config.GetOrCreate("system")
	if err != nil {
		return contentError(c, err, "Failed to fetch homepage config")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    config,
	})
}

// HandleUpdateConfig applies a partial update to the homepage layout config
// singleton and stamps the editor's identity. Fields absent from the body
// keep their stored values.
func (h *HomepageHandler) HandleUpdateConfig(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	config, err := h.config.GetOrCreate(userID)
	if err != nil {
		return contentError(c, err, "Failed to update homepage config")
	}
	if err := c.BodyParser(config); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}
	config.ID = models.HomePageConfigID
	if userID != "" {
		config.UpdatedBy = userID
	}

	if err := h.config.Upsert(config); err != nil {
		return contentError(c, err, "Failed to update homepage config")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    config,
	})
}

// contentError maps repository and service errors onto the homepage envelope.
func contentError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, services.ErrValidation):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	case errors.Is(err, repositories.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Not found",
		})
	default:
		log.Printf("%s: %v", fallback, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": fallback,
		})
	}
}
