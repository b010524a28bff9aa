package handlers

import (
	"log/slog"
	"net/http"

	"github.com/thanushwork/dhaloesh-fastfood-api/config"
	"github.com/thanushwork/dhaloesh-fastfood-api/middleware"
	"github.com/thanushwork/dhaloesh-fastfood-api/models"

	"github.com/gin-gonic/gin"
)

// CartItemRequest mirrors the storefront cart shape. The SPA historically
// sent either {id, name} or {menuItemId, itemName}, so both spellings are
// accepted.
type CartItemRequest struct {
	ID         uint    `json:"id"`
	MenuItemID uint    `json:"menuItemId"`
	Name       string  `json:"name"`
	ItemName   string  `json:"itemName"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
}

func (r CartItemRequest) menuItemID() uint {
	if r.MenuItemID != 0 {
		return r.MenuItemID
	}
	return r.ID
}

func (r CartItemRequest) name() string {
	if r.ItemName != "" {
		return r.ItemName
	}
	return r.Name
}

// valid reports whether the line carries every required field.
func (r CartItemRequest) valid() bool {
	return r.menuItemID() != 0 && r.Quantity > 0 && r.Price > 0 && r.name() != ""
}

type CustomerInfo struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone" binding:"required"`
	Email string `json:"email"`
}

type CreateOrderRequest struct {
	Items        []CartItemRequest `json:"items" binding:"required,min=1"`
	Total        float64           `json:"total" binding:"required,gt=0"`
	CustomerInfo CustomerInfo      `json:"customerInfo" binding:"required"`
}

// CreateOrder persists an order header plus its valid line items in a single
// transaction. Lines missing a required field are excluded and enumerated in
// the response instead of failing the whole order; an order with no valid
// line at all is rejected.
func CreateOrder(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	var lines []models.OrderItem
	var skipped []CartItemRequest
	for _, item := range req.Items {
		if !item.valid() {
			slog.Warn("skipping invalid order item",
				"menu_item_id", item.menuItemID(), "name", item.name(),
				"quantity", item.Quantity, "price", item.Price)
			skipped = append(skipped, item)
			continue
		}
		lines = append(lines, models.OrderItem{
			MenuItemID: item.menuItemID(),
			Quantity:   item.Quantity,
			Price:      item.Price,
			ItemName:   item.name(),
		})
	}
	if len(lines) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "No valid items in order"})
		return
	}

	// Payment completion precedes this call in the checkout flow, so the
	// order is persisted as already paid.
	order := models.Order{
		UserID:        userID,
		Total:         req.Total,
		CustomerName:  req.CustomerInfo.Name,
		CustomerPhone: req.CustomerInfo.Phone,
		CustomerEmail: req.CustomerInfo.Email,
		Status:        models.StatusPending,
		PaymentStatus: models.PaymentPaid,
		Items:         lines,
	}

	// Nested create writes header and lines as one transaction; a failure
	// rolls back everything, so partial orders cannot be persisted.
	if err := config.DB.Create(&order).Error; err != nil {
		slog.Error("order creation failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
		return
	}

	data := gin.H{
		"id":            order.ID,
		"total":         order.Total,
		"status":        order.Status,
		"paymentStatus": order.PaymentStatus,
	}
	if len(skipped) > 0 {
		data["skippedItems"] = skipped
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

// GetUserOrders returns the caller's orders newest-first with line items and
// their catalog metadata attached
func GetUserOrders(c *gin.Context) {
	var orders []models.Order
	err := config.DB.Preload("Items.MenuItem").
		Where("user_id = ?", middleware.GetUserID(c)).
		Order("created_at desc").
		Find(&orders).Error
	if err != nil {
		slog.Error("user orders fetch failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": orders})
}

// adminOrderLimit caps the back-office order list; there is no pagination.
const adminOrderLimit = 50

// GetAllOrders returns the most recent orders with lines (admin only)
func GetAllOrders(c *gin.Context) {
	var orders []models.Order
	err := config.DB.Preload("Items").
		Order("created_at desc").
		Limit(adminOrderLimit).
		Find(&orders).Error
	if err != nil {
		slog.Error("orders fetch failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": orders})
}

type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

// UpdateOrderStatus sets an order's fulfillment status (admin only). The new
// value must be in the closed status set; any valid value may be set from
// any other, and every change is recorded in the status history.
func UpdateOrderStatus(c *gin.Context) {
	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	if !req.Status.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid status"})
		return
	}

	var order models.Order
	if err := config.DB.First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Order not found"})
		return
	}

	prev := order.Status
	if err := config.DB.Model(&order).Update("status", req.Status).Error; err != nil {
		slog.Error("order status update failed", "error", err, "order_id", order.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
		return
	}

	history := models.OrderStatusHistory{
		OrderID:    order.ID,
		FromStatus: prev,
		ToStatus:   req.Status,
		ChangedBy:  middleware.GetUserID(c),
	}
	if err := config.DB.Create(&history).Error; err != nil {
		slog.Warn("status history write failed", "error", err, "order_id", order.ID)
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Order status updated successfully"})
}
