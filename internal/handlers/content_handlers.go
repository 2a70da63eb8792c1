package handlers

import (
	"strconv"
	"time"

	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/internal/services"

	"github.com/gofiber/fiber/v2"
)

// HandleCreateTrustSignal creates an icon-only reassurance block from a JSON
// body.
func (h *HomepageHandler) HandleCreateTrustSignal(c *fiber.Ctx) error {
	var signal models.TrustSignal
	if err := c.BodyParser(&signal); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}
	if err := h.validate.Struct(signal); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Validation failed",
			"errors":  validationMessages(err),
		})
	}

	if err := h.signals.Create(&signal); err != nil {
		return contentError(c, err, "Failed to create trust signal")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    signal,
	})
}

// HandleGetTrustSignals returns the active trust signals in display order.
func (h *HomepageHandler) HandleGetTrustSignals(c *fiber.Ctx) error {
	signals, err := h.signals.GetActive()
	if err != nil {
		return contentError(c, err, "Failed to fetch trust signals")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    signals,
	})
}

// HandleUpdateTrustSignal overwrites one trust signal from a JSON body.
func (h *HomepageHandler) HandleUpdateTrustSignal(c *fiber.Ctx) error {
	signal, err := h.signals.GetByID(c.Params("id"))
	if err != nil {
		return contentError(c, err, "Failed to fetch trust signal")
	}

	if err := c.BodyParser(signal); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}
	signal.ID = c.Params("id")

	if err := h.signals.Update(signal); err != nil {
		return contentError(c, err, "Failed to update trust signal")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    signal,
	})
}

// HandleDeleteTrustSignal removes one trust signal.
func (h *HomepageHandler) HandleDeleteTrustSignal(c *fiber.Ctx) error {
	if err := h.signals.Delete(c.Params("id")); err != nil {
		return contentError(c, err, "Failed to delete trust signal")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Trust signal deleted",
	})
}

// HandleCreateBanner creates a promotional banner from a multipart form. The
// image is mandatory.
func (h *HomepageHandler) HandleCreateBanner(c *fiber.Ctx) error {
	result, err := uploadFormImage(c, h.uploader, "image", bannerFolder)
	if err != nil {
		return contentError(c, err, "Failed to upload banner image")
	}
	if result == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "An image is required",
		})
	}

	order, _ := strconv.Atoi(c.FormValue("order"))
	banner := &models.PromotionalBanner{
		Title:       c.FormValue("title"),
		Subtitle:    c.FormValue("subtitle"),
		Description: c.FormValue("description"),
		ButtonText:  c.FormValue("buttonText"),
		Href:        c.FormValue("href"),
		Image:       result.URL,
		Position:    c.FormValue("position"),
		Order:       order,
		IsActive:    c.FormValue("isActive") != "false",
	}
	if banner.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "title is required",
		})
	}

	if err := h.banners.Create(banner); err != nil {
		return contentError(c, err, "Failed to create banner")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    banner,
	})
}

// HandleGetBanners returns the active banners in display order.
func (h *HomepageHandler) HandleGetBanners(c *fiber.Ctx) error {
	banners, err := h.banners.GetActive()
	if err != nil {
		return contentError(c, err, "Failed to fetch banners")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    banners,
	})
}

// HandleUpdateBanner updates a banner; a new image in the form replaces the
// current one.
func (h *HomepageHandler) HandleUpdateBanner(c *fiber.Ctx) error {
	banner, err := h.banners.GetByID(c.Params("id"))
	if err != nil {
		return contentError(c, err, "Failed to fetch banner")
	}

	result, err := uploadFormImage(c, h.uploader, "image", bannerFolder)
	if err != nil {
		return contentError(c, err, "Failed to upload banner image")
	}
	if result != nil {
		banner.Image = result.URL
	}

	if v := c.FormValue("title"); v != "" {
		banner.Title = v
	}
	if v := c.FormValue("subtitle"); v != "" {
		banner.Subtitle = v
	}
	if v := c.FormValue("description"); v != "" {
		banner.Description = v
	}
	if v := c.FormValue("buttonText"); v != "" {
		banner.ButtonText = v
	}
	if v := c.FormValue("href"); v != "" {
		banner.Href = v
	}
	if v := c.FormValue("position"); v != "" {
		banner.Position = v
	}
	if v := c.FormValue("order"); v != "" {
		banner.Order, _ = strconv.Atoi(v)
	}
	if v := c.FormValue("isActive"); v != "" {
		banner.IsActive = v == "true"
	}

	if err := h.banners.Update(banner); err != nil {
		return contentError(c, err, "Failed to update banner")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    banner,
	})
}

// HandleDeleteBanner removes one banner.
func (h *HomepageHandler) HandleDeleteBanner(c *fiber.Ctx) error {
	if err := h.banners.Delete(c.Params("id")); err != nil {
		return contentError(c, err, "Failed to delete banner")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Banner deleted",
	})
}

// HandleCreateBlogPost creates a published article from a multipart form. The
// slug is derived from the title and the publish timestamp is set on create.
func (h *HomepageHandler) HandleCreateBlogPost(c *fiber.Ctx) error {
	result, err := uploadFormImage(c, h.uploader, "image", blogFolder)
	if err != nil {
		return contentError(c, err, "Failed to upload blog image")
	}
	if result == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "An image is required",
		})
	}

	title := c.FormValue("title")
	if title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "title is required",
		})
	}

	now := time.Now()
	post := &models.BlogPost{
		Title:       title,
		Slug:        services.Slugify(title),
		Excerpt:     c.FormValue("excerpt"),
		Content:     c.FormValue("content"),
		Image:       result.URL,
		Category:    c.FormValue("category"),
		Author:      c.FormValue("author"),
		IsFeatured:  c.FormValue("isFeatured") == "true",
		IsPublished: true,
		PublishedAt: &now,
	}

	if err := h.posts.Create(post); err != nil {
		return contentError(c, err, "Failed to create blog post")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    post,
	})
}

// HandleGetBlogPosts lists articles, optionally filtered by the featured and
// published query flags, newest first.
func (h *HomepageHandler) HandleGetBlogPosts(c *fiber.Ctx) error {
	filter := repositories.BlogPostFilter{
		Featured:  c.Query("featured") == "true",
		Published: c.Query("published") == "true",
	}
	posts, err := h.posts.Find(filter)
	if err != nil {
		return contentError(c, err, "Failed to fetch blog posts")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    posts,
	})
}

// HandleUpdateBlogPost updates an article; republishing refreshes the publish
// timestamp.
func (h *HomepageHandler) HandleUpdateBlogPost(c *fiber.Ctx) error {
	post, err := h.posts.GetByID(c.Params("id"))
	if err != nil {
		return contentError(c, err, "Failed to fetch blog post")
	}

	result, err := uploadFormImage(c, h.uploader, "image", blogFolder)
	if err != nil {
		return contentError(c, err, "Failed to upload blog image")
	}
	if result != nil {
		post.Image = result.URL
	}

	if v := c.FormValue("title"); v != "" {
		post.Title = v
		post.Slug = services.Slugify(v)
	}
	if v := c.FormValue("excerpt"); v != "" {
		post.Excerpt = v
	}
	if v := c.FormValue("content"); v != "" {
		post.Content = v
	}
	if v := c.FormValue("category"); v != "" {
		post.Category = v
	}
	if v := c.FormValue("author"); v != "" {
		post.Author = v
	}
	if v := c.FormValue("isFeatured"); v != "" {
		post.IsFeatured = v == "true"
	}
	if v := c.FormValue("isPublished"); v != "" {
		wasPublished := post.IsPublished
		post.IsPublished = v == "true"
		if post.IsPublished && !wasPublished {
			now := time.Now()
			post.PublishedAt = &now
		}
	}

	if err := h.posts.Update(post); err != nil {
		return contentError(c, err, "Failed to update blog post")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    post,
	})
}

// HandleDeleteBlogPost removes one article.
func (h *HomepageHandler) HandleDeleteBlogPost(c *fiber.Ctx) error {
	if err := h.posts.Delete(c.Params("id")); err != nil {
		return contentError(c, err, "Failed to delete blog post")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Blog post deleted",
	})
}
