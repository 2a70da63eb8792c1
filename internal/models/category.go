package models

// CategoryType classifies a category for variation validation and filtering.
type CategoryType string

const (
	CategoryFashion     CategoryType = "FASHION"
	CategoryShoes       CategoryType = "SHOES"
	CategoryElectronics CategoryType = "ELECTRONICS"
	CategoryBeauty      CategoryType = "BEAUTY"
	CategoryHomeDecor   CategoryType = "HOME_DECOR"
	CategoryAccessories CategoryType = "ACCESSORIES"
	CategoryBooks       CategoryType = "BOOKS"
)

// Category groups products and carries an optional size guide.
type Category struct {
	Base
	Name        string       `json:"name" gorm:"uniqueIndex;type:varchar(100);not null" validate:"required"`
	Type        CategoryType `json:"type" gorm:"type:varchar(20);not null" validate:"required"`
	Description string       `json:"description" gorm:"type:varchar(500)"`
	Products    []Product    `json:"products,omitempty" gorm:"foreignKey:CategoryID"`
	SizeGuide   *SizeGuide   `json:"sizeGuide,omitempty" gorm:"foreignKey:CategoryID"`
}

// SizeGuide stores a category's size chart as serialized JSON.
type SizeGuide struct {
	Base
	CategoryID   string `json:"categoryId" gorm:"type:varchar(36);index"`
	Type         string `json:"type" gorm:"type:varchar(20)"`
	Measurements string `json:"measurements" gorm:"type:text"`
	SizeChart    string `json:"sizeChart" gorm:"type:text"`
}
