// internal/domain/order/entity.go
package order

import (
	"time"

	"gorm.io/gorm"
)

// OrderStatus represents the lifecycle state of an order
type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusProcessing OrderStatus = "processing"
	StatusDelivering OrderStatus = "delivering"
	StatusCompleted  OrderStatus = "completed"
	StatusCancelled  OrderStatus = "cancelled"
)

// statusTransitions defines the allowed status changes. Cancellation
// is only possible before the order is out for delivery.
var statusTransitions = map[OrderStatus][]OrderStatus{
	StatusPending:    {StatusProcessing, StatusCancelled},
	StatusProcessing: {StatusDelivering, StatusCancelled},
	StatusDelivering: {StatusCompleted},
	StatusCompleted:  {},
	StatusCancelled:  {},
}

// IsValid reports whether the status is a known order status
func (s OrderStatus) IsValid() bool {
	_, ok := statusTransitions[s]
	return ok
}

// CanTransitionTo reports whether the status change is allowed
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transitions are possible
func (s OrderStatus) IsTerminal() bool {
	return len(statusTransitions[s]) == 0
}

// PaymentMethod is how the customer pays on delivery
type PaymentMethod string

const (
	PaymentCash PaymentMethod = "cash"
	PaymentCard PaymentMethod = "card"
)

// IsValid reports whether the payment method is known
func (m PaymentMethod) IsValid() bool {
	return m == PaymentCash || m == PaymentCard
}

// Order represents a placed order. All amounts are in cents (EUR).
type Order struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	OrderNumber string      `gorm:"uniqueIndex;not null;size:64" json:"order_number"`
	UserID      uint        `gorm:"not null;index" json:"user_id"`
	Status      OrderStatus `gorm:"not null;size:20;default:'pending';index" json:"status"`

	Subtotal    int64 `gorm:"not null" json:"subtotal"`
	DeliveryFee int64 `gorm:"not null" json:"delivery_fee"`
	Total       int64 `gorm:"not null" json:"total"`

	// Payment is settled at the door, no gateway involved
	PaymentMethod PaymentMethod `gorm:"not null;size:10;default:'cash'" json:"payment_method"`

	// Delivery details captured at checkout
	CustomerName string     `gorm:"not null;size:255" json:"customer_name"`
	Email        string     `gorm:"not null;size:255" json:"email"`
	Phone        string     `gorm:"not null;size:50" json:"phone"`
	Address      string     `gorm:"not null;size:500" json:"address"`
	City         string     `gorm:"not null;size:255" json:"city"`
	PostalCode   string     `gorm:"size:20" json:"postal_code"`
	Notes        string     `gorm:"type:text" json:"notes,omitempty"`
	DeliveredAt  *time.Time `json:"delivered_at,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
}

// OrderItem represents a line of a placed order. Prices are snapshots
// taken at checkout and never change afterwards.
type OrderItem struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	OrderID   uint   `gorm:"not null;index" json:"order_id"`
	ProductID uint   `gorm:"not null;index" json:"product_id"`
	Name      string `gorm:"not null;size:255" json:"name"`
	UnitPrice int64  `gorm:"not null" json:"unit_price"`
	Quantity  int    `gorm:"not null" json:"quantity"`
	LineTotal int64  `gorm:"not null" json:"line_total"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName overrides
func (Order) TableName() string     { return "orders" }
func (OrderItem) TableName() string { return "order_items" }

// CanBeCancelled reports whether the order may still be cancelled
func (o *Order) CanBeCancelled() bool {
	return o.Status.CanTransitionTo(StatusCancelled)
}
