// internal/domain/cart/service.go
package cart

import (
	"context"
	"fmt"
	"time"

	"github.com/your-org/snackshop-backend/internal/domain/catalog"
	"gorm.io/gorm"
)

// Service handles cart business logic
type Service struct {
	db    *gorm.DB
	store Store

	// findProduct is swappable for tests
	findProduct func(id uint) (*catalog.Product, error)
}

// NewService creates a new cart service
func NewService(db *gorm.DB, store Store) *Service {
	s := &Service{
		db:    db,
		store: store,
	}
	s.findProduct = s.findProductDB
	return s
}

func (s *Service) findProductDB(id uint) (*catalog.Product, error) {
	var product catalog.Product
	if result := s.db.First(&product, id); result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("product not found")
		}
		return nil, fmt.Errorf("failed to retrieve product: %w", result.Error)
	}
	return &product, nil
}

// AddItemRequest represents an add-to-cart request
type AddItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"min=1"`
}

// UpdateQuantityRequest represents a quantity change request
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

// GetCart returns the user's cart, creating an empty one if none exists
func (s *Service) GetCart(ctx context.Context, userID uint) (*Cart, error) {
	return s.store.Get(ctx, userID)
}

// AddItem adds a product to the cart. Adding a product already in the
// cart increments its quantity.
func (s *Service) AddItem(ctx context.Context, userID uint, req *AddItemRequest) (*Cart, error) {
	quantity := req.Quantity
	if quantity < 1 {
		quantity = 1
	}

	product, err := s.findProduct(req.ProductID)
	if err != nil {
		return nil, err
	}

	cart, err := s.store.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range cart.Items {
		if cart.Items[i].ProductID == req.ProductID {
			cart.Items[i].Quantity += quantity
			found = true
			break
		}
	}
	if !found {
		cart.Items = append(cart.Items, CartItem{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Image:     product.Image,
			Discount:  product.Discount,
			Quantity:  quantity,
		})
	}

	return s.persist(ctx, cart)
}

// UpdateQuantity sets the quantity of a cart line. Quantities below one
// are ignored and the cart is returned unchanged; use RemoveItem to
// take a line out of the cart.
func (s *Service) UpdateQuantity(ctx context.Context, userID, productID uint, quantity int) (*Cart, error) {
	cart, err := s.store.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if quantity < 1 {
		cart.Recalculate()
		return cart, nil
	}

	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			cart.Items[i].Quantity = quantity
			return s.persist(ctx, cart)
		}
	}

	return nil, fmt.Errorf("item not found in cart")
}

// RemoveItem removes a product line from the cart
func (s *Service) RemoveItem(ctx context.Context, userID, productID uint) (*Cart, error) {
	cart, err := s.store.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	items := cart.Items[:0]
	removed := false
	for _, item := range cart.Items {
		if item.ProductID == productID {
			removed = true
			continue
		}
		items = append(items, item)
	}
	if !removed {
		return nil, fmt.Errorf("item not found in cart")
	}
	cart.Items = items

	return s.persist(ctx, cart)
}

// ClearCart removes all items from the user's cart
func (s *Service) ClearCart(ctx context.Context, userID uint) error {
	return s.store.Delete(ctx, userID)
}

func (s *Service) persist(ctx context.Context, cart *Cart) (*Cart, error) {
	cart.Recalculate()
	cart.UpdatedAt = time.Now()
	if err := s.store.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}
