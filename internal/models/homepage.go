package models

import "time"

// HeroSlide is a carousel entry on the storefront landing page.
type HeroSlide struct {
	Base
	Title       string `json:"title" gorm:"type:varchar(200);not null" validate:"required"`
	Subtitle    string `json:"subtitle" gorm:"type:varchar(300)"`
	Description string `json:"description" gorm:"type:text"`
	Image       string `json:"image" gorm:"type:varchar(500);not null"`
	CtaText     string `json:"ctaText" gorm:"type:varchar(100)"`
	CtaLink     string `json:"ctaLink" gorm:"type:varchar(300)"`
	Order       int    `json:"order" gorm:"column:display_order;default:0"`
	IsActive    bool   `json:"isActive" gorm:"default:true"`
}

// PromotionalBanner is a positioned marketing block.
type PromotionalBanner struct {
	Base
	Title       string `json:"title" gorm:"type:varchar(200);not null" validate:"required"`
	Subtitle    string `json:"subtitle" gorm:"type:varchar(300)"`
	Description string `json:"description" gorm:"type:text"`
	ButtonText  string `json:"buttonText" gorm:"type:varchar(100)"`
	Href        string `json:"href" gorm:"type:varchar(300)"`
	Image       string `json:"image" gorm:"type:varchar(500);not null"`
	Position    string `json:"position" gorm:"type:varchar(50)"`
	Order       int    `json:"order" gorm:"column:display_order;default:0"`
	IsActive    bool   `json:"isActive" gorm:"default:true"`
}

// TrustSignal is an icon-only reassurance block (free shipping, returns, ...).
type TrustSignal struct {
	Base
	Icon        string `json:"icon" gorm:"type:varchar(100);not null" validate:"required"`
	Title       string `json:"title" gorm:"type:varchar(200);not null" validate:"required"`
	Description string `json:"description" gorm:"type:varchar(500)"`
	Order       int    `json:"order" gorm:"column:display_order;default:0"`
	IsActive    bool   `json:"isActive" gorm:"default:true"`
}

// BlogPost is an article surfaced in the homepage blog section.
type BlogPost struct {
	Base
	Title       string     `json:"title" gorm:"type:varchar(200);not null" validate:"required"`
	Slug        string     `json:"slug" gorm:"index;type:varchar(255)"`
	Excerpt     string     `json:"excerpt" gorm:"type:varchar(500)"`
	Content     string     `json:"content" gorm:"type:text"`
	Image       string     `json:"image" gorm:"type:varchar(500)"`
	Category    string     `json:"category" gorm:"type:varchar(100)"`
	Author      string     `json:"author" gorm:"type:varchar(100)"`
	IsFeatured  bool       `json:"isFeatured" gorm:"default:false"`
	IsPublished bool       `json:"isPublished" gorm:"default:false"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
}

// HomePageConfigID is the fixed row identifier of the config singleton.
const HomePageConfigID = "default"

// HomePageConfig is the singleton of section toggles, titles and limits.
// It is upserted on the fixed id, never duplicated.
type HomePageConfig struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	HeroSectionEnabled        bool `json:"heroSectionEnabled" gorm:"default:true"`
	TrustSignalsEnabled       bool `json:"trustSignalsEnabled" gorm:"default:true"`
	FeaturedCategoriesEnabled bool `json:"featuredCategoriesEnabled" gorm:"default:true"`
	TrendingProductsEnabled   bool `json:"trendingProductsEnabled" gorm:"default:true"`
	PromotionalBannersEnabled bool `json:"promotionalBannersEnabled" gorm:"default:true"`
	PersonalizedRecsEnabled   bool `json:"personalizedRecsEnabled" gorm:"default:true"`
	FlashSalesEnabled         bool `json:"flashSalesEnabled" gorm:"default:true"`
	BlogSectionEnabled        bool `json:"blogSectionEnabled" gorm:"default:true"`

	TrendingProductsTitle      string `json:"trendingProductsTitle" gorm:"type:varchar(200);default:'Trending Now'"`
	TrendingProductsSubtitle   string `json:"trendingProductsSubtitle" gorm:"type:varchar(300)"`
	FeaturedCategoriesTitle    string `json:"featuredCategoriesTitle" gorm:"type:varchar(200);default:'Featured Products'"`
	FeaturedCategoriesSubtitle string `json:"featuredCategoriesSubtitle" gorm:"type:varchar(300)"`
	PersonalizedRecsTitle      string `json:"personalizedRecsTitle" gorm:"type:varchar(200);default:'Recommended For You'"`
	PersonalizedRecsSubtitle   string `json:"personalizedRecsSubtitle" gorm:"type:varchar(300)"`
	BlogSectionTitle           string `json:"blogSectionTitle" gorm:"type:varchar(200);default:'From Our Blog'"`
	BlogSectionSubtitle        string `json:"blogSectionSubtitle" gorm:"type:varchar(300)"`

	TrendingProductsLimit   int `json:"trendingProductsLimit" gorm:"default:8"`
	FeaturedCategoriesLimit int `json:"featuredCategoriesLimit" gorm:"default:8"`
	FlashSaleProductsLimit  int `json:"flashSaleProductsLimit" gorm:"default:8"`
	BlogPostsLimit          int `json:"blogPostsLimit" gorm:"default:3"`

	UpdatedBy string `json:"updatedBy" gorm:"type:varchar(36)"`
}
