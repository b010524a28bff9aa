package handlers

import (
	"log/slog"
	"net/http"

	"github.com/thanushwork/dhaloesh-fastfood-api/config"
	"github.com/thanushwork/dhaloesh-fastfood-api/models"

	"github.com/gin-gonic/gin"
)

// GetMenu returns every available menu item, grouped for display (public)
func GetMenu(c *gin.Context) {
	var items []models.MenuItem
	query := config.DB.Where("is_available = ?", true)
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if err := query.Order("category, name").Find(&items).Error; err != nil {
		slog.Error("menu fetch failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": items})
}

type MenuItemRequest struct {
	Name        string  `json:"name" binding:"required"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Category    string  `json:"category" binding:"required"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
}

// CreateMenuItem adds a catalog entry (admin only)
func CreateMenuItem(c *gin.Context) {
	var req MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	if !models.IsValidCategory(req.Category) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid category"})
		return
	}

	item := models.MenuItem{
		Name:        req.Name,
		Price:       req.Price,
		Category:    req.Category,
		Description: req.Description,
		Image:       req.Image,
		IsAvailable: true,
	}
	if err := config.DB.Create(&item).Error; err != nil {
		slog.Error("menu create failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": item})
}

// UpdateMenuItem replaces a catalog entry's editable fields (admin only)
func UpdateMenuItem(c *gin.Context) {
	var item models.MenuItem
	if err := config.DB.First(&item, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Menu item not found"})
		return
	}

	var req MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	if !models.IsValidCategory(req.Category) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid category"})
		return
	}

	updates := map[string]interface{}{
		"name":        req.Name,
		"price":       req.Price,
		"category":    req.Category,
		"description": req.Description,
		"image":       req.Image,
	}
	if err := config.DB.Model(&item).Updates(updates).Error; err != nil {
		slog.Error("menu update failed", "error", err, "item_id", item.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Menu item updated successfully"})
}

// DeleteMenuItem soft-deletes a catalog entry by clearing its availability
// flag; rows are never hard-deleted so old orders keep valid references.
func DeleteMenuItem(c *gin.Context) {
	var item models.MenuItem
	if err := config.DB.First(&item, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Menu item not found"})
		return
	}
	if err := config.DB.Model(&item).Update("is_available", false).Error; err != nil {
		slog.Error("menu delete failed", "error", err, "item_id", item.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Menu item deleted successfully"})
}
