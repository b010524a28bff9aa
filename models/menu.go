package models

import "time"

// Menu categories form a closed set; the storefront groups the catalog by
// these and the admin form only offers them.
const (
	CategoryRice     = "Rice"
	CategoryDry      = "Dry"
	CategoryGravy    = "Gravy"
	CategoryStarters = "Starters"
)

// Categories lists every valid menu category.
var Categories = []string{CategoryRice, CategoryDry, CategoryGravy, CategoryStarters}

// IsValidCategory reports whether c is one of the known menu categories.
func IsValidCategory(c string) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

type MenuItem struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"not null"`
	Price       float64   `json:"price" gorm:"not null"`
	Category    string    `json:"category" gorm:"not null"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	IsAvailable bool      `json:"is_available" gorm:"default:true"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
