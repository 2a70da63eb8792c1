package models

import "time"

// DiscountType selects how a flash-sale line item's discount was computed.
type DiscountType string

const (
	DiscountPercentage DiscountType = "PERCENTAGE"
	DiscountFixed      DiscountType = "FIXED"
)

// FlashSaleConfig is a named promotional event grouping multiple products.
// It exclusively owns its line items; updates replace the whole set.
type FlashSaleConfig struct {
	Base
	Title       string             `json:"title" gorm:"type:varchar(200);not null" validate:"required"`
	Subtitle    string             `json:"subtitle" gorm:"type:varchar(300)"`
	Description string             `json:"description" gorm:"type:text"`
	StartTime   time.Time          `json:"startTime" validate:"required"`
	EndTime     time.Time          `json:"endTime" validate:"required"`
	BannerImage string             `json:"bannerImage" gorm:"type:varchar(500)"`
	IsActive    bool               `json:"isActive" gorm:"default:true"`
	Products    []FlashSaleProduct `json:"products,omitempty" gorm:"foreignKey:ConfigID"`
}

// FlashSaleProduct is a promotion-time price snapshot for one product. The
// discount fields are frozen at creation and must never be recomputed from
// the live Product.Price.
type FlashSaleProduct struct {
	Base
	ConfigID           string       `json:"flashSaleId" gorm:"type:varchar(36);index;not null"`
	ProductID          string       `json:"productId" gorm:"type:varchar(36);index;not null"`
	Product            *Product     `json:"product,omitempty" gorm:"foreignKey:ProductID"`
	DiscountPrice      int64        `json:"discountPrice"`
	DiscountPercentage float64      `json:"discountPercentage"`
	FixedDiscount      int64        `json:"fixedDiscount"`
	DiscountType       DiscountType `json:"discountType" gorm:"type:varchar(20)"`
	OriginalPrice      int64        `json:"originalPrice"`
	Stock              int          `json:"stock"`
	Order              int          `json:"order" gorm:"column:display_order;default:0"`
}
