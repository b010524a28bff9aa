package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/thanushwork/dhaloesh-fastfood-api/config"

	"github.com/gin-gonic/gin"
)

type NotificationItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type OrderNotificationRequest struct {
	OrderID         uint               `json:"orderId" binding:"required"`
	CustomerName    string             `json:"customerName" binding:"required"`
	CustomerPhone   string             `json:"customerPhone" binding:"required"`
	Items           []NotificationItem `json:"items" binding:"required,min=1"`
	Total           float64            `json:"total" binding:"required"`
	RestaurantPhone string             `json:"restaurantPhone"`
}

// ComposeOrderMessage renders the WhatsApp text for a new order.
func ComposeOrderMessage(req *OrderNotificationRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "NEW ORDER #%d\n\n", req.OrderID)
	fmt.Fprintf(&b, "Customer: %s\n", req.CustomerName)
	fmt.Fprintf(&b, "Phone: %s\n\n", req.CustomerPhone)
	b.WriteString("Items:\n")
	for _, item := range req.Items {
		fmt.Fprintf(&b, "- %s x%d - ₹%.0f\n", item.Name, item.Quantity, item.Price*float64(item.Quantity))
	}
	fmt.Fprintf(&b, "\nTotal: ₹%.0f\n", req.Total)
	b.WriteString("Payment: Paid\n\n")
	b.WriteString("Estimated time: 15-20 minutes\n")
	fmt.Fprintf(&b, "Customer contact: %s", req.CustomerPhone)
	return b.String()
}

// SendOrderNotification composes the WhatsApp order message. There is no
// WhatsApp Business API integration yet; the message is logged for the
// restaurant console.
func SendOrderNotification(c *gin.Context) {
	var req OrderNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	message := ComposeOrderMessage(&req)
	slog.Info("whatsapp order notification",
		"order_id", req.OrderID,
		"restaurant_phone", req.RestaurantPhone,
		"message", message)

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Notification sent"})
}

// UPILink builds the UPI deep link and QR image URL for an amount so the
// storefront does not hardcode the payee.
func UPILink(c *gin.Context) {
	amount, ok := parseAmount(c.Query("amount"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid amount"})
		return
	}

	params := url.Values{}
	params.Set("pa", config.UPIAddress)
	params.Set("pn", config.UPIPayee)
	params.Set("am", fmt.Sprintf("%.2f", amount))
	params.Set("cu", "INR")
	params.Set("tn", "DHALOESH Order Payment")
	link := "upi://pay?" + params.Encode()

	qr := "https://api.qrserver.com/v1/create-qr-code/?size=200x200&data=" + url.QueryEscape(link)

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"upiLink": link, "qrCode": qr}})
}

func parseAmount(s string) (float64, bool) {
	amount, err := strconv.ParseFloat(s, 64)
	if err != nil || amount <= 0 {
		return 0, false
	}
	return amount, true
}
