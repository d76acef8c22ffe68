// internal/domain/cart/entity.go
package cart

import "time"

// Cart represents a user's shopping cart. Carts live in the session
// store, not in the relational database.
type Cart struct {
	UserID    uint       `json:"user_id"`
	Items     []CartItem `json:"items"`
	ItemCount int        `json:"item_count"`
	Subtotal  int64      `json:"subtotal"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// CartItem represents a line in the cart. Price and Discount are
// snapshots taken when the item was added; the effective unit price
// is recomputed at checkout from the live product.
type CartItem struct {
	ProductID uint   `json:"product_id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Image     string `json:"image,omitempty"`
	Discount  int    `json:"discount"`
	Quantity  int    `json:"quantity"`
}

// UnitPrice returns the discounted unit price of the line
func (i *CartItem) UnitPrice() int64 {
	if i.Discount <= 0 {
		return i.Price
	}
	if i.Discount >= 100 {
		return 0
	}
	return i.Price * int64(100-i.Discount) / 100
}

// LineTotal returns the line total in cents
func (i *CartItem) LineTotal() int64 {
	return i.UnitPrice() * int64(i.Quantity)
}

// Recalculate refreshes the derived item count and subtotal
func (c *Cart) Recalculate() {
	count := 0
	var subtotal int64
	for i := range c.Items {
		count += c.Items[i].Quantity
		subtotal += c.Items[i].LineTotal()
	}
	c.ItemCount = count
	c.Subtotal = subtotal
}

// IsEmpty reports whether the cart has no items
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}
