package handlers

import (
	"strconv"

	"storefront/internal/models"
	"storefront/internal/repositories"

	"github.com/gofiber/fiber/v2"
)

// HandleCreateHeroSlide creates a carousel slide from a multipart form. The
// image is mandatory.
func (h *HomepageHandler) HandleCreateHeroSlide(c *fiber.Ctx) error {
	result, err := uploadFormImage(c, h.uploader, "image", heroSlideFolder)
	if err != nil {
		return contentError(c, err, "Failed to upload slide image")
	}
	if result == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "An image is required",
		})
	}

	order, _ := strconv.Atoi(c.FormValue("order"))
	slide := &models.HeroSlide{
		Title:       c.FormValue("title"),
		Subtitle:    c.FormValue("subtitle"),
		Description: c.FormValue("description"),
		Image:       result.URL,
		CtaText:     c.FormValue("ctaText"),
		CtaLink:     c.FormValue("ctaLink"),
		Order:       order,
		IsActive:    c.FormValue("isActive") != "false",
	}
	if slide.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "title is required",
		})
	}

	if err := h.slides.Create(slide); err != nil {
		return contentError(c, err, "Failed to create hero slide")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    slide,
	})
}

// HandleGetHeroSlides returns the active slides in display order.
func (h *HomepageHandler) HandleGetHeroSlides(c *fiber.Ctx) error {
	slides, err := h.slides.GetActive()
	if err != nil {
		return contentError(c, err, "Failed to fetch hero slides")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    slides,
	})
}

// HandleGetAdminHeroSlides returns every slide, active or not.
func (h *HomepageHandler) HandleGetAdminHeroSlides(c *fiber.Ctx) error {
	slides, err := h.slides.GetAll()
	if err != nil {
		return contentError(c, err, "Failed to fetch hero slides")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    slides,
	})
}

// HandleUpdateHeroSlide updates a slide; a new image in the form replaces the
// current one.
func (h *HomepageHandler) HandleUpdateHeroSlide(c *fiber.Ctx) error {
	slide, err := h.slides.GetByID(c.Params("id"))
	if err != nil {
		return contentError(c, err, "Failed to fetch hero slide")
	}

	result, err := uploadFormImage(c, h.uploader, "image", heroSlideFolder)
	if err != nil {
		return contentError(c, err, "Failed to upload slide image")
	}
	if result != nil {
		slide.Image = result.URL
	}

	if v := c.FormValue("title"); v != "" {
		slide.Title = v
	}
	if v := c.FormValue("subtitle"); v != "" {
		slide.Subtitle = v
	}
	if v := c.FormValue("description"); v != "" {
		slide.Description = v
	}
	if v := c.FormValue("ctaText"); v != "" {
		slide.CtaText = v
	}
	if v := c.FormValue("ctaLink"); v != "" {
		slide.CtaLink = v
	}
	if v := c.FormValue("order"); v != "" {
		slide.Order, _ = strconv.Atoi(v)
	}
	if v := c.FormValue("isActive"); v != "" {
		slide.IsActive = v == "true"
	}

	if err := h.slides.Update(slide); err != nil {
		return contentError(c, err, "Failed to update hero slide")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    slide,
	})
}

// ReorderRequest is the body of a bulk slide reorder.
type ReorderRequest struct {
	Slides []repositories.SlideOrder `json:"slides" validate:"required,dive"`
}

// HandleReorderHeroSlides applies a bulk reorder in one transaction and
// returns the slides in their new order.
func (h *HomepageHandler) HandleReorderHeroSlides(c *fiber.Ctx) error {
	var req ReorderRequest
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

	if err := h.slides.Reorder(req.Slides); err != nil {
		return contentError(c, err, "Failed to reorder hero slides")
	}

	slides, err := h.slides.GetAll()
	if err != nil {
		return contentError(c, err, "Failed to fetch hero slides")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    slides,
	})
}

// HandleToggleHeroSlideStatus flips only the IsActive flag of one slide.
func (h *HomepageHandler) HandleToggleHeroSlideStatus(c *fiber.Ctx) error {
	var req struct {
		IsActive bool `json:"isActive"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}

	slide, err := h.slides.SetActive(c.Params("id"), req.IsActive)
	if err != nil {
		return contentError(c, err, "Failed to update hero slide status")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    slide,
	})
}

// HandleDeleteHeroSlide removes one slide.
func (h *HomepageHandler) HandleDeleteHeroSlide(c *fiber.Ctx) error {
	if err := h.slides.Delete(c.Params("id")); err != nil {
		return contentError(c, err, "Failed to delete hero slide")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Hero slide deleted",
	})
}
