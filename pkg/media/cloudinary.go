package media

import (
	"context"
	"fmt"
	"log"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// Transformations applied at upload time and for derived renditions.
const (
	productTransformation   = "c_fill,h_800,w_800/q_auto/f_auto"
	thumbnailTransformation = "c_fill,h_100,w_100"
	mediumTransformation    = "c_fill,h_400,w_400"
)

// UploadResult describes a stored image plus its derived rendition URLs.
type UploadResult struct {
	URL          string
	PublicID     string
	Width        int
	Height       int
	Format       string
	Size         int64
	ThumbnailURL string
	MediumURL    string
}

// Uploader is the media-service capability used by the handlers. The
// application only uploads and builds URLs; everything else lives in the CDN.
type Uploader interface {
	UploadImage(ctx context.Context, localPath, folder string) (*UploadResult, error)
}

// CloudinaryUploader implements Uploader against Cloudinary.
type CloudinaryUploader struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinary initializes the uploader from a cloudinary:// URL.
func NewCloudinary(url string) (*CloudinaryUploader, error) {
	cld, err := cloudinary.NewFromURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to init cloudinary: %w", err)
	}
	return &CloudinaryUploader{cld: cld}, nil
}

// UploadImage pushes a local file into the given folder with the standard
// 800x800 fill transformation and derives thumbnail and medium URLs from the
// returned public id.
func (u *CloudinaryUploader) UploadImage(ctx context.Context, localPath, folder string) (*UploadResult, error) {
	resp, err := u.cld.Upload.Upload(ctx, localPath, uploader.UploadParams{
		Folder:         folder,
		Transformation: productTransformation,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload %s: %w", localPath, err)
	}

	return &UploadResult{
		URL:          resp.SecureURL,
		PublicID:     resp.PublicID,
		Width:        resp.Width,
		Height:       resp.Height,
		Format:       resp.Format,
		Size:         int64(resp.Bytes),
		ThumbnailURL: u.transformedURL(resp.PublicID, thumbnailTransformation),
		MediumURL:    u.transformedURL(resp.PublicID, mediumTransformation),
	}, nil
}

func (u *CloudinaryUploader) transformedURL(publicID, transformation string) string {
	img, err := u.cld.Image(publicID)
	if err != nil {
		log.Printf("media: build asset for %s: %v", publicID, err)
		return ""
	}
	img.Transformation = transformation
	url, err := img.String()
	if err != nil {
		log.Printf("media: build url for %s: %v", publicID, err)
		return ""
	}
	return url
}
