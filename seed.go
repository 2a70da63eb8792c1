package main

import (
	"log"

	"github.com/spf13/viper"

	"storefront/internal/models"
	"storefront/internal/repositories"
)

// seed creates the base categories with their size guides, the homepage
// config row and the first admin account. Existing rows are never
// overwritten, so it is safe to run on every boot.
func seed(
	categories repositories.CategoryRepository,
	users repositories.UserRepository,
	config repositories.HomePageConfigRepository,
) error {
	baseCategories := []models.Category{
		{Name: "Fashion", Type: models.CategoryFashion, Description: "Clothing and footwear"},
		{Name: "Shoes", Type: models.CategoryShoes, Description: "Footwear for every occasion"},
		{Name: "Electronics", Type: models.CategoryElectronics, Description: "Gadgets and devices"},
		{Name: "Beauty", Type: models.CategoryBeauty, Description: "Cosmetics and personal care"},
		{Name: "Home Decor", Type: models.CategoryHomeDecor, Description: "Furniture and decoration"},
		{Name: "Accessories", Type: models.CategoryAccessories, Description: "Bags, watches and jewelry"},
		{Name: "Books", Type: models.CategoryBooks, Description: "Fiction and non-fiction"},
	}
	for i := range baseCategories {
		if err := categories.Upsert(&baseCategories[i]); err != nil {
			return err
		}
	}

	sizeGuides := []models.SizeGuide{
		{
			CategoryID:   baseCategories[0].ID,
			Type:         "clothes",
			Measurements: `["chest","waist","hips"]`,
			SizeChart:    `{"S":{"chest":"86-91","waist":"71-76"},"M":{"chest":"96-101","waist":"81-86"},"L":{"chest":"106-111","waist":"91-96"},"XL":{"chest":"116-121","waist":"101-106"}}`,
		},
		{
			CategoryID:   baseCategories[1].ID,
			Type:         "shoes",
			Measurements: `["footLength"]`,
			SizeChart:    `{"39":{"footLength":"24.5"},"40":{"footLength":"25.0"},"41":{"footLength":"25.5"},"42":{"footLength":"26.0"},"43":{"footLength":"26.5"}}`,
		},
	}
	for i := range sizeGuides {
		if err := categories.UpsertSizeGuide(&sizeGuides[i]); err != nil {
			return err
		}
	}

	if _, err := config.GetOrCreate("system"); err != nil {
		return err
	}

	adminEmail := viper.GetString("ADMIN_EMAIL")
	adminPassword := viper.GetString("ADMIN_PASSWORD")
	if adminEmail == "" || adminPassword == "" {
		return nil
	}
	if _, err := users.GetByEmail(adminEmail); err == nil {
		return nil
	}

	admin := &models.User{
		Name:  "Store Admin",
		Email: adminEmail,
		Role:  models.RoleSuperAdmin,
	}
	if err := admin.SetPassword(adminPassword); err != nil {
		return err
	}
	if err := users.Create(admin); err != nil {
		return err
	}
	log.Printf("Seeded admin account %s", adminEmail)
	return nil
}
