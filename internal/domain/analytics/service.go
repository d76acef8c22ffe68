// internal/domain/analytics/service.go
package analytics

import (
	"fmt"
	"time"

	"github.com/your-org/snackshop-backend/internal/domain/order"
	"github.com/your-org/snackshop-backend/internal/domain/user"
	"gorm.io/gorm"
)

// Service computes the admin dashboard statistics
type Service struct {
	db *gorm.DB
}

// NewService creates a new analytics service
func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// DashboardStats summarizes shop activity for the admin dashboard.
// Revenue figures only count completed orders.
type DashboardStats struct {
	TotalOrders     int64            `json:"total_orders"`
	OrdersToday     int64            `json:"orders_today"`
	PendingOrders   int64            `json:"pending_orders"`
	TotalRevenue    int64            `json:"total_revenue"`
	RevenueToday    int64            `json:"revenue_today"`
	TotalCustomers  int64            `json:"total_customers"`
	OrdersByStatus  map[string]int64 `json:"orders_by_status"`
	TopProducts     []TopProduct     `json:"top_products"`
	AverageOrderVal int64            `json:"average_order_value"`
}

// TopProduct is a best-seller entry
type TopProduct struct {
	ProductID uint   `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int64  `json:"quantity"`
	Revenue   int64  `json:"revenue"`
}

// GetDashboardStats computes the current dashboard numbers
func (s *Service) GetDashboardStats() (*DashboardStats, error) {
	stats := &DashboardStats{
		OrdersByStatus: make(map[string]int64),
	}

	today := startOfDay(time.Now())

	if err := s.db.Model(&order.Order{}).Count(&stats.TotalOrders).Error; err != nil {
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}

	if err := s.db.Model(&order.Order{}).
		Where("created_at >= ?", today).
		Count(&stats.OrdersToday).Error; err != nil {
		return nil, fmt.Errorf("failed to count today's orders: %w", err)
	}

	if err := s.db.Model(&order.Order{}).
		Where("status = ?", order.StatusPending).
		Count(&stats.PendingOrders).Error; err != nil {
		return nil, fmt.Errorf("failed to count pending orders: %w", err)
	}

	type statusRow struct {
		Status string
		Count  int64
	}
	var rows []statusRow
	if err := s.db.Model(&order.Order{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to group orders by status: %w", err)
	}
	for _, row := range rows {
		stats.OrdersByStatus[row.Status] = row.Count
	}

	if err := s.db.Model(&order.Order{}).
		Where("status = ?", order.StatusCompleted).
		Select("COALESCE(SUM(total), 0)").
		Scan(&stats.TotalRevenue).Error; err != nil {
		return nil, fmt.Errorf("failed to sum revenue: %w", err)
	}

	if err := s.db.Model(&order.Order{}).
		Where("status = ? AND created_at >= ?", order.StatusCompleted, today).
		Select("COALESCE(SUM(total), 0)").
		Scan(&stats.RevenueToday).Error; err != nil {
		return nil, fmt.Errorf("failed to sum today's revenue: %w", err)
	}

	if err := s.db.Model(&user.User{}).
		Where("role = ?", user.RoleCustomer).
		Count(&stats.TotalCustomers).Error; err != nil {
		return nil, fmt.Errorf("failed to count customers: %w", err)
	}

	var completed int64
	if err := s.db.Model(&order.Order{}).
		Where("status = ?", order.StatusCompleted).
		Count(&completed).Error; err != nil {
		return nil, fmt.Errorf("failed to count completed orders: %w", err)
	}
	if completed > 0 {
		stats.AverageOrderVal = stats.TotalRevenue / completed
	}

	topProducts, err := s.topProducts(5)
	if err != nil {
		return nil, err
	}
	stats.TopProducts = topProducts

	return stats, nil
}

// startOfDay returns midnight of t's day in t's location, so the
// "today" figures roll over at local midnight rather than UTC midnight
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func (s *Service) topProducts(limit int) ([]TopProduct, error) {
	var top []TopProduct
	err := s.db.Model(&order.OrderItem{}).
		Select("order_items.product_id, order_items.name, SUM(order_items.quantity) AS quantity, SUM(order_items.line_total) AS revenue").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.status = ? AND orders.deleted_at IS NULL", order.StatusCompleted).
		Group("order_items.product_id, order_items.name").
		Order("quantity DESC").
		Limit(limit).
		Scan(&top).Error
	if err != nil {
		return nil, fmt.Errorf("failed to compute top products: %w", err)
	}
	return top, nil
}
