// internal/domain/checkout/service.go
package checkout

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/your-org/snackshop-backend/internal/config"
	"github.com/your-org/snackshop-backend/internal/domain/cart"
	"github.com/your-org/snackshop-backend/internal/domain/catalog"
	"github.com/your-org/snackshop-backend/internal/domain/delivery"
	"github.com/your-org/snackshop-backend/internal/domain/notification"
	"github.com/your-org/snackshop-backend/internal/domain/order"
	"gorm.io/gorm"
)

// Service handles checkout: it validates the delivery constraints,
// recomputes all amounts from live product data, and turns the cart
// into a persisted order.
type Service struct {
	db     *gorm.DB
	carts  *cart.Service
	policy *delivery.Policy
	logger *logrus.Logger
	config *config.Config

	// now is swappable for tests
	now func() time.Time
}

// NewService creates a new checkout service
func NewService(db *gorm.DB, carts *cart.Service, policy *delivery.Policy, logger *logrus.Logger, cfg *config.Config) *Service {
	return &Service{
		db:     db,
		carts:  carts,
		policy: policy,
		logger: logger,
		config: cfg,
		now:    time.Now,
	}
}

// CheckoutRequest represents the delivery details submitted at checkout
type CheckoutRequest struct {
	CustomerName  string `json:"customer_name" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	Phone         string `json:"phone" binding:"required"`
	Address       string `json:"address" binding:"required"`
	City          string `json:"city" binding:"required"`
	PostalCode    string `json:"postal_code"`
	Notes         string `json:"notes"`
	PaymentMethod string `json:"payment_method"`
}

// ValidationError carries a checkout rejection reason the client can
// show to the user
type ValidationError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return e.Message
}

// PlaceOrder validates the cart and delivery details and creates the
// order. Validation short-circuits on the first failure, in the order
// minimum amount, delivery window, required fields, serviced city.
// Nothing is written unless every check passes.
func (s *Service) PlaceOrder(ctx context.Context, userID uint, req *CheckoutRequest) (*order.Order, error) {
	userCart, err := s.carts.GetCart(ctx, userID)
	if err != nil {
		return nil, err
	}
	if userCart.IsEmpty() {
		return nil, &ValidationError{Code: "empty_cart", Message: "Der Warenkorb ist leer"}
	}

	// Recompute amounts from live product data. Cart snapshots may be
	// stale after an admin price change.
	items, subtotal, err := s.priceItems(userCart.Items)
	if err != nil {
		return nil, err
	}

	if verr := s.validate(subtotal, req); verr != nil {
		return nil, verr
	}

	payment := order.PaymentMethod(req.PaymentMethod)
	if req.PaymentMethod == "" {
		payment = order.PaymentCash
	}

	total := s.policy.Total(subtotal)
	newOrder := &order.Order{
		OrderNumber:   order.GenerateOrderNumber(),
		UserID:        userID,
		Status:        order.StatusPending,
		Subtotal:      subtotal,
		DeliveryFee:   s.policy.DeliveryFee(),
		Total:         total,
		PaymentMethod: payment,
		CustomerName:  strings.TrimSpace(req.CustomerName),
		Email:         strings.TrimSpace(req.Email),
		Phone:         strings.TrimSpace(req.Phone),
		Address:       strings.TrimSpace(req.Address),
		City:          strings.TrimSpace(req.City),
		PostalCode:    strings.TrimSpace(req.PostalCode),
		Notes:         strings.TrimSpace(req.Notes),
		Items:         items,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(newOrder).Error; err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}

		summary := s.buildSummary(newOrder)
		if err := notification.Enqueue(tx, notification.NewOrderConfirmation(summary)); err != nil {
			return err
		}
		alert := notification.NewOperatorAlert(summary, s.config.Notification.OperatorEmail)
		if err := notification.Enqueue(tx, alert); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Clearing the cart is best effort. A leftover cart is only a
	// cosmetic problem, the order already exists.
	if err := s.carts.ClearCart(ctx, userID); err != nil {
		s.logger.WithError(err).WithField("user_id", userID).
			Warn("Failed to clear cart after checkout")
	}

	s.logger.WithFields(logrus.Fields{
		"order_number": newOrder.OrderNumber,
		"user_id":      userID,
		"total":        newOrder.Total,
	}).Info("Order placed")

	return newOrder, nil
}

// priceItems resolves cart lines against live products and returns
// the order items with recomputed prices plus the subtotal
func (s *Service) priceItems(cartItems []cart.CartItem) ([]order.OrderItem, int64, error) {
	items := make([]order.OrderItem, 0, len(cartItems))
	var subtotal int64

	for _, line := range cartItems {
		var product catalog.Product
		if result := s.db.First(&product, line.ProductID); result.Error != nil {
			if result.Error == gorm.ErrRecordNotFound {
				return nil, 0, &ValidationError{
					Code:    "product_unavailable",
					Message: fmt.Sprintf("Artikel %q ist nicht mehr verfügbar", line.Name),
				}
			}
			return nil, 0, fmt.Errorf("failed to retrieve product: %w", result.Error)
		}

		unitPrice := product.DiscountedPrice()
		lineTotal := unitPrice * int64(line.Quantity)
		subtotal += lineTotal

		items = append(items, order.OrderItem{
			ProductID: product.ID,
			Name:      product.Name,
			UnitPrice: unitPrice,
			Quantity:  line.Quantity,
			LineTotal: lineTotal,
		})
	}
	return items, subtotal, nil
}

func (s *Service) validate(subtotal int64, req *CheckoutRequest) *ValidationError {
	if !s.policy.IsMinimumOrderReached(subtotal) {
		return &ValidationError{
			Code: "minimum_order",
			Message: fmt.Sprintf("Mindestbestellwert %s nicht erreicht, es fehlen noch %s",
				notification.FormatEuro(s.policy.MinOrderAmount()),
				notification.FormatEuro(s.policy.RemainingAmount(subtotal))),
		}
	}

	if !s.policy.IsDeliveryTime(s.now()) {
		start, end := s.policy.Window()
		return &ValidationError{
			Code:    "outside_delivery_hours",
			Message: fmt.Sprintf("Lieferung nur zwischen %s und %s Uhr möglich", start, end),
		}
	}

	required := []struct {
		field string
		value string
	}{
		{"customer_name", req.CustomerName},
		{"email", req.Email},
		{"phone", req.Phone},
		{"address", req.Address},
		{"city", req.City},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return &ValidationError{
				Code:    "missing_field",
				Message: fmt.Sprintf("Pflichtfeld fehlt: %s", r.field),
			}
		}
	}

	if !s.policy.IsAllowedCity(req.City) {
		return &ValidationError{
			Code: "city_not_serviced",
			Message: fmt.Sprintf("Lieferung nach %q nicht möglich. Wir liefern nach: %s",
				strings.TrimSpace(req.City), strings.Join(s.policy.AllowedCities(), ", ")),
		}
	}

	if req.PaymentMethod != "" && !order.PaymentMethod(req.PaymentMethod).IsValid() {
		return &ValidationError{
			Code:    "invalid_payment_method",
			Message: fmt.Sprintf("Zahlungsart %q wird nicht unterstützt", req.PaymentMethod),
		}
	}

	return nil
}

func (s *Service) buildSummary(o *order.Order) *notification.OrderSummary {
	lines := make([]notification.OrderLine, 0, len(o.Items))
	for _, item := range o.Items {
		lines = append(lines, notification.OrderLine{
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			LineTotal: item.LineTotal,
		})
	}
	return &notification.OrderSummary{
		OrderNumber:  o.OrderNumber,
		CustomerName: o.CustomerName,
		Email:        o.Email,
		Phone:        o.Phone,
		Address:      o.Address,
		City:         o.City,
		PostalCode:   o.PostalCode,
		Notes:        o.Notes,
		Items:        lines,
		Subtotal:     o.Subtotal,
		DeliveryFee:  o.DeliveryFee,
		Total:        o.Total,
	}
}
