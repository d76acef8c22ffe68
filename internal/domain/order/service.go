// internal/domain/order/service.go
package order

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/your-org/snackshop-backend/internal/domain/notification"
	"gorm.io/gorm"
)

// Service handles order business logic
type Service struct {
	db     *gorm.DB
	logger *logrus.Logger
}

// NewService creates a new order service
func NewService(db *gorm.DB, logger *logrus.Logger) *Service {
	return &Service{
		db:     db,
		logger: logger,
	}
}

// OrderListRequest represents order list query parameters
type OrderListRequest struct {
	Page   int    `form:"page,default=1"`
	Limit  int    `form:"limit,default=20"`
	Status string `form:"status"`
}

// OrderListResponse represents paginated order results
type OrderListResponse struct {
	Orders     []Order    `json:"orders"`
	Pagination Pagination `json:"pagination"`
}

// Pagination represents pagination information
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
}

// StatusUpdateRequest represents an admin status change
type StatusUpdateRequest struct {
	Status OrderStatus `json:"status" binding:"required"`
}

// GenerateOrderNumber creates a unique human-readable order number
func GenerateOrderNumber() string {
	suffix := strings.ToUpper(uuid.New().String()[:8])
	return fmt.Sprintf("ORD-%s-%s", time.Now().Format("20060102"), suffix)
}

// GetUserOrders retrieves a user's orders, newest first
func (s *Service) GetUserOrders(userID uint, req *OrderListRequest) (*OrderListResponse, error) {
	return s.listOrders(s.db.Where("user_id = ?", userID), req)
}

// GetOrders retrieves all orders for the admin dashboard
func (s *Service) GetOrders(req *OrderListRequest) (*OrderListResponse, error) {
	return s.listOrders(s.db, req)
}

func (s *Service) listOrders(scope *gorm.DB, req *OrderListRequest) (*OrderListResponse, error) {
	var orders []Order
	var total int64

	query := scope.Model(&Order{}).Preload("Items")

	if req.Status != "" {
		status := OrderStatus(req.Status)
		if !status.IsValid() {
			return nil, fmt.Errorf("invalid status filter: %s", req.Status)
		}
		query = query.Where("status = ?", status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}

	if req.Page < 1 {
		req.Page = 1
	}
	if req.Limit < 1 || req.Limit > 100 {
		req.Limit = 20
	}
	offset := (req.Page - 1) * req.Limit

	if err := query.Order("created_at DESC").Offset(offset).Limit(req.Limit).Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve orders: %w", err)
	}

	totalPages := int((total + int64(req.Limit) - 1) / int64(req.Limit))
	return &OrderListResponse{
		Orders: orders,
		Pagination: Pagination{
			Page:       req.Page,
			Limit:      req.Limit,
			Total:      total,
			TotalPages: totalPages,
			HasNext:    req.Page < totalPages,
			HasPrev:    req.Page > 1,
		},
	}, nil
}

// GetOrder retrieves an order by ID
func (s *Service) GetOrder(id uint) (*Order, error) {
	var order Order
	result := s.db.Preload("Items").First(&order, id)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("order not found")
		}
		return nil, fmt.Errorf("failed to retrieve order: %w", result.Error)
	}
	return &order, nil
}

// GetUserOrder retrieves an order and verifies ownership
func (s *Service) GetUserOrder(userID, orderID uint) (*Order, error) {
	order, err := s.GetOrder(orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, fmt.Errorf("order not found")
	}
	return order, nil
}

// UpdateStatus moves an order to a new status, enforcing the allowed
// transitions. A status change also enqueues a customer notification.
func (s *Service) UpdateStatus(orderID uint, target OrderStatus) (*Order, error) {
	if !target.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", target)
	}

	var order Order
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if result := tx.Preload("Items").First(&order, orderID); result.Error != nil {
			if result.Error == gorm.ErrRecordNotFound {
				return fmt.Errorf("order not found")
			}
			return fmt.Errorf("failed to retrieve order: %w", result.Error)
		}

		if !order.Status.CanTransitionTo(target) {
			return fmt.Errorf("cannot change status from %s to %s", order.Status, target)
		}

		updates := map[string]interface{}{"status": target}
		if target == StatusCompleted {
			now := time.Now()
			updates["delivered_at"] = &now
		}
		if err := tx.Model(&order).Updates(updates).Error; err != nil {
			return fmt.Errorf("failed to update order status: %w", err)
		}
		order.Status = target

		msg := notification.NewStatusChangeMessage(order.OrderNumber, order.Email, string(target))
		if err := notification.Enqueue(tx, msg); err != nil {
			return fmt.Errorf("failed to enqueue status notification: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"order_number": order.OrderNumber,
		"status":       target,
	}).Info("Order status updated")

	return &order, nil
}

// CancelOrder cancels an order on behalf of its owner. Customers may
// only cancel while the order is still pending; later cancellations
// go through the shop.
func (s *Service) CancelOrder(userID, orderID uint) (*Order, error) {
	order, err := s.GetUserOrder(userID, orderID)
	if err != nil {
		return nil, err
	}
	if order.Status != StatusPending {
		return nil, fmt.Errorf("order in status %s cannot be cancelled", order.Status)
	}
	return s.UpdateStatus(orderID, StatusCancelled)
}
