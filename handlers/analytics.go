package handlers

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/thanushwork/dhaloesh-fastfood-api/config"
	"github.com/thanushwork/dhaloesh-fastfood-api/models"

	"github.com/gin-gonic/gin"
)

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func countOrdersSince(since time.Time) (int64, error) {
	var n int64
	err := config.DB.Model(&models.Order{}).Where("created_at >= ?", since).Count(&n).Error
	return n, err
}

// GetOrderStats returns cumulative order counts (admin only). The windows
// overlap: today ⊆ thisWeek ⊆ thisMonth ⊆ thisYear ⊆ allTime.
func GetOrderStats(c *gin.Context) {
	now := time.Now()
	windows := []struct {
		key   string
		since time.Time
	}{
		{"today", startOfDay(now)},
		{"thisWeek", now.AddDate(0, 0, -7)},
		{"thisMonth", time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())},
		{"thisYear", time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())},
	}

	data := gin.H{}
	for _, w := range windows {
		n, err := countOrdersSince(w.since)
		if err != nil {
			slog.Error("order stats failed", "error", err, "window", w.key)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
			return
		}
		data[w.key] = n
	}

	var allTime int64
	if err := config.DB.Model(&models.Order{}).Count(&allTime).Error; err != nil {
		slog.Error("order stats failed", "error", err, "window", "allTime")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
		return
	}
	data["allTime"] = allTime

	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

type trendPoint struct {
	Name   string `json:"name"`
	Orders int    `json:"orders"`
}

// GetTrends returns order counts over time (admin only). period=1 gives 24
// hourly buckets for the current day; otherwise one bucket per calendar day
// over the trailing period. Both branches zero-fill the whole window.
// Bucketing happens in Go so the query stays portable across sqlite and
// postgres.
func GetTrends(c *gin.Context) {
	days, err := strconv.Atoi(c.DefaultQuery("period", "7"))
	if err != nil || days < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid period"})
		return
	}

	now := time.Now()
	var windowStart time.Time
	if days == 1 {
		windowStart = startOfDay(now)
	} else {
		windowStart = startOfDay(now).AddDate(0, 0, -(days - 1))
	}

	var createdAt []time.Time
	err = config.DB.Model(&models.Order{}).
		Where("created_at >= ?", windowStart).
		Pluck("created_at", &createdAt).Error
	if err != nil {
		slog.Error("trends query failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
		return
	}

	var points []trendPoint
	if days == 1 {
		points = make([]trendPoint, 24)
		for h := range points {
			points[h] = trendPoint{Name: fmt.Sprintf("%d:00", h)}
		}
		for _, t := range createdAt {
			points[t.In(now.Location()).Hour()].Orders++
		}
	} else {
		points = make([]trendPoint, days)
		for i := range points {
			points[i] = trendPoint{Name: windowStart.AddDate(0, 0, i).Format("Jan 2")}
		}
		for _, t := range createdAt {
			i := int(startOfDay(t.In(now.Location())).Sub(windowStart).Hours() / 24)
			if i >= 0 && i < days {
				points[i].Orders++
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": points})
}

// categoryColors is cycled by rank position, not keyed by category identity.
var categoryColors = []string{"#f97316", "#dc2626", "#7c3aed", "#059669", "#0ea5e9"}

// GetCategoryBreakdown returns line-item counts per catalog category for the
// trailing 30 days, ranked descending (admin only)
func GetCategoryBreakdown(c *gin.Context) {
	since := time.Now().AddDate(0, 0, -30)

	var rows []struct {
		Category string
		Count    int
	}
	err := config.DB.Table("order_items").
		Select("menu_items.category AS category, COUNT(order_items.id) AS count").
		Joins("JOIN menu_items ON menu_items.id = order_items.menu_item_id").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.created_at >= ?", since).
		Group("menu_items.category").
		Order("count DESC").
		Scan(&rows).Error
	if err != nil {
		slog.Error("category breakdown failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
		return
	}

	data := make([]gin.H, 0, len(rows))
	for i, row := range rows {
		data = append(data, gin.H{
			"name":  row.Category,
			"value": row.Count,
			"color": categoryColors[i%len(categoryColors)],
		})
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

type ExportRequest struct {
	ReportType string `json:"reportType"`
	DateRange  struct {
		Start string `json:"start" binding:"required"`
		End   string `json:"end" binding:"required"`
	} `json:"dateRange" binding:"required"`
}

func parseExportDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02", s, time.Local)
}

// ExportOrdersCSV writes the orders in a date range as a CSV attachment,
// one row per order with its items flattened into a display string (admin
// only). encoding/csv handles quoting, so embedded quotes in customer names
// survive round-tripping.
func ExportOrdersCSV(c *gin.Context) {
	var req ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	start, err := parseExportDate(req.DateRange.Start)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid start date"})
		return
	}
	end, err := parseExportDate(req.DateRange.End)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid end date"})
		return
	}

	var orders []models.Order
	err = config.DB.Preload("Items").
		Where("created_at BETWEEN ? AND ?", start, end).
		Order("created_at desc").
		Find(&orders).Error
	if err != nil {
		slog.Error("export query failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
		return
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"Order ID", "Customer Name", "Customer Phone", "Items", "Total", "Status", "Payment Status", "Created At"})
	for _, o := range orders {
		names := make([]string, 0, len(o.Items))
		for _, item := range o.Items {
			names = append(names, fmt.Sprintf("%s x%d", item.ItemName, item.Quantity))
		}
		_ = w.Write([]string{
			strconv.FormatUint(uint64(o.ID), 10),
			o.CustomerName,
			o.CustomerPhone,
			strings.Join(names, ", "),
			strconv.FormatFloat(o.Total, 'f', 2, 64),
			string(o.Status),
			string(o.PaymentStatus),
			o.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
	w.Flush()

	c.Header("Content-Disposition", `attachment; filename="orders-report.csv"`)
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}
