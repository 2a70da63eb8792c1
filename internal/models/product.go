package models

import "time"

// ProductStatus is the publication lifecycle of a product.
type ProductStatus string

const (
	StatusDraft     ProductStatus = "DRAFT"
	StatusPublished ProductStatus = "PUBLISHED"
	StatusArchived  ProductStatus = "ARCHIVED"
)

// Variation type labels used by FASHION-category validation.
const (
	VariationClothes = "clothes"
	VariationShoes   = "shoes"
)

// Product is the catalog aggregate root. It exclusively owns its images,
// variations, specifications and flash sale; those rows are removed together
// with the product.
type Product struct {
	Base
	Name         string        `json:"name" gorm:"type:varchar(200);not null" validate:"required,min=3,max=200"`
	Brand        string        `json:"brand" gorm:"type:varchar(100)"`
	Description  string        `json:"description" gorm:"type:text"`
	Price        int64         `json:"price" gorm:"not null" validate:"required,gt=0"` // minor currency units
	BaseStock    int           `json:"baseStock" gorm:"default:0" validate:"gte=0"`
	Status       ProductStatus `json:"status" gorm:"type:varchar(20);default:DRAFT"`
	Slug         string        `json:"slug" gorm:"uniqueIndex;type:varchar(255)"`
	IsFeatured   bool          `json:"isFeatured" gorm:"default:false"`
	IsTrending   bool          `json:"isTrending" gorm:"default:false"`
	IsNewArrival bool          `json:"isNewArrival" gorm:"default:false"`

	CategoryID string    `json:"categoryId" gorm:"type:varchar(36);index;not null" validate:"required"`
	Category   *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`

	Images         []ProductImage     `json:"productImages,omitempty" gorm:"foreignKey:ProductID"`
	Variations     []ProductVariation `json:"variations,omitempty" gorm:"foreignKey:ProductID"`
	Specifications []ProductSpec      `json:"specifications,omitempty" gorm:"foreignKey:ProductID"`
	FlashSale      *FlashSale         `json:"flashSale,omitempty" gorm:"foreignKey:ProductID"`
}

// ProductVariation is a purchasable configuration with its own stock.
type ProductVariation struct {
	Base
	ProductID string `json:"productId" gorm:"type:varchar(36);index;not null"`
	Type      string `json:"type" gorm:"type:varchar(20)"`
	Size      string `json:"size" gorm:"type:varchar(20)"`
	Color     string `json:"color,omitempty" gorm:"type:varchar(50)"`
	Stock     int    `json:"stock" gorm:"default:0"`
}

// ProductSpec is a key/value attribute grouped for display.
type ProductSpec struct {
	Base
	ProductID string `json:"productId" gorm:"type:varchar(36);index;not null"`
	Key       string `json:"key" gorm:"type:varchar(100);not null"`
	Value     string `json:"value" gorm:"type:varchar(500)"`
	Group     string `json:"group" gorm:"column:spec_group;type:varchar(100)"`
	Order     int    `json:"order" gorm:"column:display_order;default:0"`
}

// ProductImage records a media-service upload plus its derived renditions.
type ProductImage struct {
	Base
	ProductID    string `json:"productId" gorm:"type:varchar(36);index;not null"`
	URL          string `json:"url" gorm:"type:varchar(500);not null"`
	PublicID     string `json:"publicId" gorm:"type:varchar(255)"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	Format       string `json:"format" gorm:"type:varchar(10)"`
	Size         int64  `json:"size"`
	ThumbnailURL string `json:"thumbnailUrl" gorm:"type:varchar(500)"`
	MediumURL    string `json:"mediumUrl" gorm:"type:varchar(500)"`
	Order        int    `json:"order" gorm:"column:display_order;default:0"`
}

// FlashSale is a time-boxed discount attached directly to one product.
// It is live only while IsActive and before EndTime; expiry is evaluated at
// query time, there is no background job.
type FlashSale struct {
	Base
	ProductID string    `json:"productId" gorm:"type:varchar(36);index;not null"`
	Discount  float64   `json:"discount"` // percentage
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	IsActive  bool      `json:"isActive" gorm:"default:true"`
}
