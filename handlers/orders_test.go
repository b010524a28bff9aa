package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/thanushwork/dhaloesh-fastfood-api/config"
	"github.com/thanushwork/dhaloesh-fastfood-api/models"
)

func TestCreateOrderCheckoutScenario(t *testing.T) {
	r := setupTest(t)
	user, token := createUser(t, "hungry@example.com", models.RoleCustomer)

	w := doRequest(t, r, http.MethodPost, "/api/orders", token, map[string]interface{}{
		"items": []map[string]interface{}{
			{"id": 1, "name": "Chicken Rice", "price": 120, "quantity": 2},
		},
		"total": 240,
		"customerInfo": map[string]string{
			"name":  "Hungry Customer",
			"phone": "9000000002",
			"email": "hungry@example.com",
		},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("order status = %d, body: %s", w.Code, w.Body.String())
	}

	var data struct {
		ID            uint                 `json:"id"`
		Total         float64              `json:"total"`
		Status        models.OrderStatus   `json:"status"`
		PaymentStatus models.PaymentStatus `json:"paymentStatus"`
	}
	decodeData(t, w, &data)
	if data.ID == 0 {
		t.Error("order id missing from response")
	}
	if data.Status != models.StatusPending {
		t.Errorf("status = %q, want pending", data.Status)
	}
	if data.PaymentStatus != models.PaymentPaid {
		t.Errorf("paymentStatus = %q, want paid", data.PaymentStatus)
	}
	if data.Total != 240 {
		t.Errorf("total = %v, want 240", data.Total)
	}

	// Order history shows exactly one order with one line of quantity 2
	w = doRequest(t, r, http.MethodGet, "/api/orders/user", token, nil)
	var orders []models.Order
	decodeData(t, w, &orders)
	if len(orders) != 1 {
		t.Fatalf("user orders = %d, want 1", len(orders))
	}
	if orders[0].UserID != user.ID {
		t.Errorf("order user = %d, want %d", orders[0].UserID, user.ID)
	}
	if len(orders[0].Items) != 1 {
		t.Fatalf("order lines = %d, want 1", len(orders[0].Items))
	}
	if orders[0].Items[0].Quantity != 2 {
		t.Errorf("line quantity = %d, want 2", orders[0].Items[0].Quantity)
	}
	if orders[0].Items[0].Price != 120 {
		t.Errorf("line price = %v, want snapshot 120", orders[0].Items[0].Price)
	}
}

func TestCreateOrderSkipsInvalidItems(t *testing.T) {
	r := setupTest(t)
	_, token := createUser(t, "partial@example.com", models.RoleCustomer)

	w := doRequest(t, r, http.MethodPost, "/api/orders", token, map[string]interface{}{
		"items": []map[string]interface{}{
			{"id": 1, "name": "Chicken Rice", "price": 120, "quantity": 1},
			{"id": 2, "name": "No Price", "quantity": 1},        // missing price
			{"id": 3, "name": "Chicken 65", "price": 120, "quantity": 1},
			{"name": "No ID", "price": 50, "quantity": 1},        // missing item reference
		},
		"total": 290,
		"customerInfo": map[string]string{
			"name": "Partial", "phone": "9000000003",
		},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("order status = %d, body: %s", w.Code, w.Body.String())
	}

	var data struct {
		ID           uint                     `json:"id"`
		SkippedItems []map[string]interface{} `json:"skippedItems"`
	}
	decodeData(t, w, &data)
	if len(data.SkippedItems) != 2 {
		t.Errorf("skippedItems = %d, want 2", len(data.SkippedItems))
	}

	var lines int64
	if err := config.DB.Model(&models.OrderItem{}).Where("order_id = ?", data.ID).Count(&lines).Error; err != nil {
		t.Fatalf("count lines: %v", err)
	}
	if lines != 2 {
		t.Errorf("persisted lines = %d, want 2 (valid items only)", lines)
	}
}

func TestCreateOrderAllItemsInvalid(t *testing.T) {
	r := setupTest(t)
	_, token := createUser(t, "invalid@example.com", models.RoleCustomer)

	w := doRequest(t, r, http.MethodPost, "/api/orders", token, map[string]interface{}{
		"items": []map[string]interface{}{
			{"name": "No ID", "price": 50, "quantity": 1},
		},
		"total": 50,
		"customerInfo": map[string]string{
			"name": "Nope", "phone": "9000000004",
		},
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 when no item is valid", w.Code)
	}
	var count int64
	config.DB.Model(&models.Order{}).Count(&count)
	if count != 0 {
		t.Errorf("orders persisted = %d, want 0", count)
	}
}

func TestCreateOrderRequiresAuth(t *testing.T) {
	r := setupTest(t)
	w := doRequest(t, r, http.MethodPost, "/api/orders", "", map[string]interface{}{})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func placeOrder(t *testing.T, userID uint) *models.Order {
	t.Helper()
	order := models.Order{
		UserID:        userID,
		Total:         120,
		CustomerName:  "Walk In",
		CustomerPhone: "9000000005",
		Status:        models.StatusPending,
		PaymentStatus: models.PaymentPaid,
		Items: []models.OrderItem{
			{MenuItemID: 1, Quantity: 1, Price: 120, ItemName: "Chicken Rice"},
		},
	}
	if err := config.DB.Create(&order).Error; err != nil {
		t.Fatalf("create order: %v", err)
	}
	return &order
}

func TestUpdateOrderStatus(t *testing.T) {
	r := setupTest(t)
	user, _ := createUser(t, "buyer@example.com", models.RoleCustomer)
	_, adminToken := createUser(t, "boss@example.com", models.RoleAdmin)
	order := placeOrder(t, user.ID)

	path := fmt.Sprintf("/api/orders/%d/status", order.ID)

	w := doRequest(t, r, http.MethodPut, path, adminToken, map[string]string{"status": "preparing"})
	if w.Code != http.StatusOK {
		t.Fatalf("status update = %d, body: %s", w.Code, w.Body.String())
	}

	var stored models.Order
	config.DB.First(&stored, order.ID)
	if stored.Status != models.StatusPreparing {
		t.Errorf("stored status = %q, want preparing", stored.Status)
	}

	var history []models.OrderStatusHistory
	config.DB.Where("order_id = ?", order.ID).Find(&history)
	if len(history) != 1 {
		t.Fatalf("history rows = %d, want 1", len(history))
	}
	if history[0].FromStatus != models.StatusPending || history[0].ToStatus != models.StatusPreparing {
		t.Errorf("history = %q -> %q, want pending -> preparing", history[0].FromStatus, history[0].ToStatus)
	}
}

func TestUpdateOrderStatusRejectsUnknownValue(t *testing.T) {
	r := setupTest(t)
	user, _ := createUser(t, "buyer2@example.com", models.RoleCustomer)
	_, adminToken := createUser(t, "boss2@example.com", models.RoleAdmin)
	order := placeOrder(t, user.ID)

	path := fmt.Sprintf("/api/orders/%d/status", order.ID)
	for _, bad := range []string{"delivered", "PENDING", "cancelled", ""} {
		w := doRequest(t, r, http.MethodPut, path, adminToken, map[string]string{"status": bad})
		if w.Code != http.StatusBadRequest {
			t.Errorf("status %q: code = %d, want 400", bad, w.Code)
		}
	}

	var stored models.Order
	config.DB.First(&stored, order.ID)
	if stored.Status != models.StatusPending {
		t.Errorf("stored status changed to %q after rejected updates", stored.Status)
	}
}

func TestUpdateOrderStatusRequiresAdmin(t *testing.T) {
	r := setupTest(t)
	user, token := createUser(t, "sneaky@example.com", models.RoleCustomer)
	order := placeOrder(t, user.ID)

	path := fmt.Sprintf("/api/orders/%d/status", order.ID)
	w := doRequest(t, r, http.MethodPut, path, token, map[string]string{"status": "completed"})
	if w.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", w.Code)
	}
}

func TestGetAllOrdersCappedNewestFirst(t *testing.T) {
	r := setupTest(t)
	user, _ := createUser(t, "bulk@example.com", models.RoleCustomer)
	_, adminToken := createUser(t, "boss3@example.com", models.RoleAdmin)

	for i := 0; i < 55; i++ {
		placeOrder(t, user.ID)
	}

	w := doRequest(t, r, http.MethodGet, "/api/orders", adminToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("admin orders status = %d", w.Code)
	}
	var orders []models.Order
	decodeData(t, w, &orders)
	if len(orders) != 50 {
		t.Errorf("admin order list = %d, want capped at 50", len(orders))
	}
	for i := 1; i < len(orders); i++ {
		if orders[i].CreatedAt.After(orders[i-1].CreatedAt) {
			t.Errorf("orders not newest-first at index %d", i)
			break
		}
	}
}
