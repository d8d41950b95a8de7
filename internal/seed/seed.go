package seed

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/spicekitchen/backend/internal/logging"
	"github.com/spicekitchen/backend/internal/models"
)

// Run populates the sample catalog and reviews once, only when the catalog is
// empty. Running it again is a no-op.
func Run(ctx context.Context, db *gorm.DB) error {
	var count int64
	if err := db.WithContext(ctx).Model(&models.MenuItem{}).Count(&count).Error; err != nil {
		return fmt.Errorf("seed: count menu items: %w", err)
	}
	if count > 0 {
		return nil
	}

	logging.FromContext(ctx).Info("seeding database with menu items")

	items := []models.MenuItem{
		{
			Name:         "Regular Veg Thali",
			Description:  "Dal, Seasonal Veg, 2 Roti, Rice, Salad, Pickle",
			Price:        120,
			Category:     models.CategoryThali,
			ImageURL:     "https://images.unsplash.com/photo-1546833999-b9f581a1996d?w=800&q=80",
			IsVegetarian: true,
			Available:    true,
		},
		{
			Name:         "Special Paneer Thali",
			Description:  "Paneer Butter Masala, Dal Makhani, 2 Butter Naan, Jeera Rice, Sweet, Salad",
			Price:        180,
			Category:     models.CategoryThali,
			ImageURL:     "https://images.unsplash.com/photo-1546833999-b9f581a1996d?w=800&q=80",
			IsVegetarian: true,
			Available:    true,
		},
		{
			Name:         "Gulab Jamun (2 pcs)",
			Description:  "Soft homemade khoya jamuns in cardamom syrup",
			Price:        50,
			Category:     models.CategorySweets,
			ImageURL:     "https://images.unsplash.com/photo-1564093497595-593b96d80180?w=800&q=80",
			IsVegetarian: true,
			Available:    true,
		},
		{
			Name:         "Gajar Ka Halwa (250g)",
			Description:  "Seasonal winter special made with fresh red carrots and ghee",
			Price:        120,
			Category:     models.CategorySweets,
			ImageURL:     "https://images.unsplash.com/photo-1564093497595-593b96d80180?w=800&q=80",
			IsVegetarian: true,
			Available:    true,
		},
		{
			Name:         "Homemade Mango Pickle",
			Description:  "Traditional grandmother's recipe, sun-dried (250g jar)",
			Price:        150,
			Category:     models.CategoryAchar,
			ImageURL:     "https://images.unsplash.com/photo-1512621776951-a57141f2eefd?w=800&q=80",
			IsVegetarian: true,
			Available:    true,
		},
		{
			Name:         "Small Party Catering Box",
			Description:  "Complete meal solution for 5-10 people. Call for customization.",
			Price:        1500,
			Category:     models.CategoryCatering,
			ImageURL:     "https://images.unsplash.com/photo-1555244162-803834f70033?w=800&q=80",
			IsVegetarian: true,
			Available:    true,
		},
	}
	if err := db.WithContext(ctx).Create(&items).Error; err != nil {
		return fmt.Errorf("seed: create menu items: %w", err)
	}

	reviews := []models.Review{
		{
			Name:    "Priya Sharma",
			Rating:  5,
			Comment: "Best ghar ka khana in Ghaziabad! The Paneer Thali is amazing.",
			Date:    "2 days ago",
		},
		{
			Name:    "Rahul Verma",
			Rating:  4,
			Comment: "Very hygienic and fresh. Delivery was on time via Porter.",
			Date:    "1 week ago",
		},
	}
	if err := db.WithContext(ctx).Create(&reviews).Error; err != nil {
		return fmt.Errorf("seed: create reviews: %w", err)
	}

	return nil
}
