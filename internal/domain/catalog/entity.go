// internal/domain/catalog/entity.go
package catalog

import (
	"time"

	"gorm.io/gorm"
)

// Product represents the product entity. Prices are in cents (EUR).
type Product struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"not null;size:255" json:"name"`
	Description string         `gorm:"type:text" json:"description"`
	Price       int64          `gorm:"not null" json:"price"`
	Image       string         `gorm:"size:500" json:"image,omitempty"`
	CategoryID  uint           `gorm:"not null;index" json:"category_id"`
	Discount    int            `gorm:"default:0" json:"discount"` // Percentage, 0-100
	Featured    bool           `gorm:"default:false" json:"featured"`
	Stock       int            `gorm:"default:0" json:"stock"`
	Rating      float64        `gorm:"default:0" json:"rating"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Category Category `gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"category"`
	Reviews  []Review `gorm:"foreignKey:ProductID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"reviews,omitempty"`
}

// Category represents product categories
type Category struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"uniqueIndex;not null;size:255" json:"name"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Products []Product `gorm:"foreignKey:CategoryID" json:"products,omitempty"`
}

// Review represents customer product reviews
type Review struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ProductID uint      `gorm:"not null;index" json:"product_id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Rating    int       `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Comment   string    `gorm:"type:text" json:"comment"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName overrides
func (Product) TableName() string  { return "products" }
func (Category) TableName() string { return "categories" }
func (Review) TableName() string   { return "reviews" }

// Business methods for Product

// DiscountedPrice returns the effective unit price after applying the
// product discount percentage. The result is never negative.
func (p *Product) DiscountedPrice() int64 {
	if p.Discount <= 0 {
		return p.Price
	}
	if p.Discount >= 100 {
		return 0
	}
	return p.Price * int64(100-p.Discount) / 100
}

// HasDiscount reports whether a discount applies to the product
func (p *Product) HasDiscount() bool {
	return p.Discount > 0
}

// IsInStock reports whether the product can currently be ordered.
// Stock is advisory only, it is not decremented at checkout.
func (p *Product) IsInStock() bool {
	return p.Stock > 0
}

// GetFormattedPrice returns the price in euros
func (p *Product) GetFormattedPrice() float64 {
	return float64(p.Price) / 100
}
