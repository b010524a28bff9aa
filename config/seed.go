package config

import (
	"log"

	"github.com/thanushwork/dhaloesh-fastfood-api/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// defaultMenu is the opening catalog, inserted only when the table is empty.
var defaultMenu = []models.MenuItem{
	{Name: "Chicken Rice", Price: 120, Category: models.CategoryRice, Description: "Flavorful chicken rice with aromatic spices"},
	{Name: "1/2 Chicken Rice", Price: 140, Category: models.CategoryRice, Description: "Half portion chicken rice - perfect for sharing"},
	{Name: "Beef Rice", Price: 120, Category: models.CategoryRice, Description: "Tender beef rice with traditional spices"},
	{Name: "1/2 Beef Rice", Price: 140, Category: models.CategoryRice, Description: "Half portion beef rice - ideal for sharing"},
	{Name: "Chilli Beef Dry", Price: 120, Category: models.CategoryDry, Description: "Spicy dry beef with bell peppers and onions"},
	{Name: "Chilli Chicken Dry", Price: 120, Category: models.CategoryDry, Description: "Crispy chicken with spicy dry masala"},
	{Name: "Chilli Beef Gravy", Price: 130, Category: models.CategoryGravy, Description: "Rich beef curry with thick gravy"},
	{Name: "Chilli Chicken Gravy", Price: 130, Category: models.CategoryGravy, Description: "Succulent chicken in spicy gravy"},
	{Name: "Chicken 65", Price: 120, Category: models.CategoryStarters, Description: "Famous South Indian spicy chicken starter"},
	{Name: "Chicken Lollipop", Price: 120, Category: models.CategoryStarters, Description: "Crispy chicken lollipops with spicy coating"},
	{Name: "Chicken Leg", Price: 120, Category: models.CategoryStarters, Description: "Marinated chicken leg grilled to perfection"},
}

// Seed ensures the bootstrap admin account exists and loads the opening
// catalog into an empty menu table.
func Seed(db *gorm.DB) error {
	if err := SeedAdmin(db); err != nil {
		return err
	}

	var count int64
	if err := db.Model(&models.MenuItem{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		items := make([]models.MenuItem, len(defaultMenu))
		copy(items, defaultMenu)
		for i := range items {
			items[i].IsAvailable = true
		}
		if err := db.Create(&items).Error; err != nil {
			return err
		}
		log.Printf("Seeded %d menu items", len(items))
	}
	return nil
}

// SeedAdmin creates the admin account if no user with AdminEmail exists.
func SeedAdmin(db *gorm.DB) error {
	var existing models.User
	err := db.Where("email = ?", AdminEmail).First(&existing).Error
	if err == nil {
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := models.User{
		Name:         "Dhaloesh Admin",
		Email:        AdminEmail,
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
	}
	return db.Create(&admin).Error
}
