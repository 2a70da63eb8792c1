package models

// CartItem is one line of a user's cart. One row per (user, product); adding
// the same product again merges quantities.
type CartItem struct {
	Base
	UserID    string   `json:"userId" gorm:"type:varchar(36);index;not null"`
	ProductID string   `json:"productId" gorm:"type:varchar(36);index;not null" validate:"required"`
	Product   *Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
	Quantity  int      `json:"quantity" gorm:"default:1" validate:"required,gt=0"`
}
