package handlers

import (
	"fmt"
	"os"
	"path/filepath"

	"storefront/pkg/media"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	heroSlideFolder = "ecommerce/hero-slides"
	bannerFolder    = "ecommerce/banners"
	blogFolder      = "ecommerce/blog"
	flashSaleFolder = "ecommerce/flash-sales"
)

// uploadFormImage stages the named multipart file in the OS temp dir, uploads
// it and removes the staged copy. A missing file returns (nil, nil) so
// callers can treat the image as optional.
func uploadFormImage(c *fiber.Ctx, uploader media.Uploader, field, folder string) (*media.UploadResult, error) {
	file, err := c.FormFile(field)
	if err != nil {
		return nil, nil
	}

	path := filepath.Join(os.TempDir(), fmt.Sprintf("%s%s", uuid.NewString(), filepath.Ext(file.Filename)))
	if err := c.SaveFile(file, path); err != nil {
		return nil, fmt.Errorf("failed to stage uploaded image: %w", err)
	}
	defer os.Remove(path)

	result, err := uploader.UploadImage(c.Context(), path, folder)
	if err != nil {
		return nil, fmt.Errorf("failed to upload image: %w", err)
	}
	return result, nil
}
