package models

type MenuItem struct {
	ID           uint   `gorm:"primaryKey;autoIncrement"  json:"id"`
	Name         string `gorm:"not null"                  json:"name"`
	Description  string `gorm:"not null"                  json:"description"`
	Price        int64  `gorm:"not null"                  json:"price"`
	Category     string `gorm:"not null;index"            json:"category"`
	ImageURL     string `gorm:"not null"                  json:"imageUrl"`
	IsVegetarian bool   `json:"isVegetarian"`
	Available    bool   `json:"available"`
}

type Review struct {
	ID      uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name    string `gorm:"not null"                 json:"name"`
	Rating  int    `gorm:"not null"                 json:"rating"`
	Comment string `gorm:"not null"                 json:"comment"`
	Date    string `gorm:"not null"                 json:"date"`
}

const (
	CategoryAll      = "All"
	CategoryThali    = "Thali"
	CategorySweets   = "Sweets"
	CategoryAchar    = "Achar"
	CategoryCatering = "Catering"
	CategoryChinese  = "Chinese"
)

// Categories are the orderable menu categories, without the "All" pseudo-category.
var Categories = []string{CategoryThali, CategorySweets, CategoryAchar, CategoryCatering, CategoryChinese}

func ValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}
