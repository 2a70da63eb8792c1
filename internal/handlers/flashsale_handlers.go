package handlers

import (
	"encoding/json"
	"strings"
	"time"

	"storefront/internal/services"

	"github.com/gofiber/fiber/v2"
)

// parseFlashSaleInput reads a campaign payload. Plain JSON bodies parse
// directly; multipart forms carry the scalar fields plus a "products" JSON
// string and an optional "banner" file.
func (h *HomepageHandler) parseFlashSaleInput(c *fiber.Ctx) (*services.FlashSaleConfigInput, error) {
	var input services.FlashSaleConfigInput

	if !strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		if err := c.BodyParser(&input); err != nil {
			return nil, err
		}
		return &input, nil
	}

	input.Title = c.FormValue("title")
	input.Subtitle = c.FormValue("subtitle")
	input.Description = c.FormValue("description")
	input.IsActive = c.FormValue("isActive") != "false"

	var err error
	if input.StartTime, err = time.Parse(time.RFC3339, c.FormValue("startTime")); err != nil {
		return nil, err
	}
	if input.EndTime, err = time.Parse(time.RFC3339, c.FormValue("endTime")); err != nil {
		return nil, err
	}
	if raw := c.FormValue("products"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &input.Products); err != nil {
			return nil, err
		}
	}

	result, err := uploadFormImage(c, h.uploader, "banner", flashSaleFolder)
	if err != nil {
		return nil, err
	}
	if result != nil {
		input.BannerImage = result.URL
	}
	return &input, nil
}

// HandleCreateFlashSale creates a campaign with frozen line item prices.
func (h *HomepageHandler) HandleCreateFlashSale(c *fiber.Ctx) error {
	input, err := h.parseFlashSaleInput(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid flash sale payload",
		})
	}
	if input.Title == "" || input.StartTime.IsZero() || input.EndTime.IsZero() || len(input.Products) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "title, startTime, endTime and products are required",
		})
	}

	config, err := h.flashSaleService.CreateCampaign(*input)
	if err != nil {
		return contentError(c, err, "Failed to create flash sale")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    config,
	})
}

// HandleGetActiveFlashSale lists the currently running campaigns with their
// products, newest first. The list is empty when none is live.
func (h *HomepageHandler) HandleGetActiveFlashSale(c *fiber.Ctx) error {
	configs, err := h.flashSaleService.GetActiveCampaigns()
	if err != nil {
		return contentError(c, err, "Failed to fetch flash sales")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    configs,
	})
}

// HandleUpdateFlashSale replaces a campaign and its line items wholesale.
func (h *HomepageHandler) HandleUpdateFlashSale(c *fiber.Ctx) error {
	input, err := h.parseFlashSaleInput(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid flash sale payload",
		})
	}

	config, err := h.flashSaleService.UpdateCampaign(c.Params("id"), *input)
	if err != nil {
		return contentError(c, err, "Failed to update flash sale")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    config,
	})
}

// HandleDeleteFlashSale removes a campaign and its line items.
func (h *HomepageHandler) HandleDeleteFlashSale(c *fiber.Ctx) error {
	if err := h.flashSaleService.DeleteCampaign(c.Params("id")); err != nil {
		return contentError(c, err, "Failed to delete flash sale")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Flash sale deleted",
	})
}
