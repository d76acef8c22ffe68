// internal/domain/cart/service_test.go
package cart

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/snackshop-backend/internal/domain/catalog"
)

func newTestService(store Store, products ...catalog.Product) *Service {
	svc := NewService(nil, store)
	svc.findProduct = func(id uint) (*catalog.Product, error) {
		for i := range products {
			if products[i].ID == id {
				return &products[i], nil
			}
		}
		return nil, fmt.Errorf("product not found")
	}
	return svc
}

func seedCart(t *testing.T, store Store, userID uint, items ...CartItem) {
	t.Helper()
	c := &Cart{UserID: userID, Items: items}
	c.Recalculate()
	require.NoError(t, store.Save(context.Background(), c))
}

func TestGetCartReturnsEmptyCartForNewUser(t *testing.T) {
	svc := NewService(nil, NewMemoryStore())

	cart, err := svc.GetCart(context.Background(), 42)
	require.NoError(t, err)

	assert.Equal(t, uint(42), cart.UserID)
	assert.Empty(t, cart.Items)
	assert.True(t, cart.IsEmpty())
	assert.Zero(t, cart.Subtotal)
}

func TestAddItemInsertsNewLine(t *testing.T) {
	store := NewMemoryStore()
	svc := newTestService(store, catalog.Product{ID: 7, Name: "Cola", Price: 250})

	cart, err := svc.AddItem(context.Background(), 1, &AddItemRequest{ProductID: 7, Quantity: 2})
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, uint(7), cart.Items[0].ProductID)
	assert.Equal(t, "Cola", cart.Items[0].Name)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.Equal(t, int64(500), cart.Subtotal)
}

func TestAddItemSameProductIncrementsQuantity(t *testing.T) {
	store := NewMemoryStore()
	svc := newTestService(store, catalog.Product{ID: 7, Name: "Cola", Price: 250})

	_, err := svc.AddItem(context.Background(), 1, &AddItemRequest{ProductID: 7, Quantity: 1})
	require.NoError(t, err)

	cart, err := svc.AddItem(context.Background(), 1, &AddItemRequest{ProductID: 7, Quantity: 1})
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.Equal(t, int64(500), cart.Subtotal)
}

func TestAddItemSnapshotsDiscountedPrice(t *testing.T) {
	store := NewMemoryStore()
	svc := newTestService(store, catalog.Product{ID: 3, Name: "Chips", Price: 1000, Discount: 10})

	cart, err := svc.AddItem(context.Background(), 1, &AddItemRequest{ProductID: 3, Quantity: 1})
	require.NoError(t, err)

	assert.Equal(t, int64(900), cart.Items[0].UnitPrice())
	assert.Equal(t, int64(900), cart.Subtotal)
}

func TestAddItemUnknownProduct(t *testing.T) {
	store := NewMemoryStore()
	svc := newTestService(store)

	_, err := svc.AddItem(context.Background(), 1, &AddItemRequest{ProductID: 404, Quantity: 1})
	assert.Error(t, err)

	cart, err := svc.GetCart(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}

func TestUpdateQuantitySetsNewQuantity(t *testing.T) {
	store := NewMemoryStore()
	svc := NewService(nil, store)
	seedCart(t, store, 1, CartItem{ProductID: 7, Name: "Cola", Price: 250, Quantity: 2})

	cart, err := svc.UpdateQuantity(context.Background(), 1, 7, 5)
	require.NoError(t, err)

	assert.Equal(t, 5, cart.Items[0].Quantity)
	assert.Equal(t, int64(1250), cart.Subtotal)
	assert.Equal(t, 5, cart.ItemCount)
}

func TestUpdateQuantityBelowOneIsIgnored(t *testing.T) {
	store := NewMemoryStore()
	svc := NewService(nil, store)
	seedCart(t, store, 1, CartItem{ProductID: 7, Name: "Cola", Price: 250, Quantity: 2})

	cart, err := svc.UpdateQuantity(context.Background(), 1, 7, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, cart.Items[0].Quantity)

	cart, err = svc.UpdateQuantity(context.Background(), 1, 7, -3)
	require.NoError(t, err)
	assert.Equal(t, 2, cart.Items[0].Quantity)
}

func TestUpdateQuantityUnknownItem(t *testing.T) {
	store := NewMemoryStore()
	svc := NewService(nil, store)
	seedCart(t, store, 1, CartItem{ProductID: 7, Name: "Cola", Price: 250, Quantity: 2})

	_, err := svc.UpdateQuantity(context.Background(), 1, 999, 3)
	assert.Error(t, err)
}

func TestRemoveItem(t *testing.T) {
	store := NewMemoryStore()
	svc := NewService(nil, store)
	seedCart(t, store, 1,
		CartItem{ProductID: 7, Name: "Cola", Price: 250, Quantity: 2},
		CartItem{ProductID: 8, Name: "Chips", Price: 199, Quantity: 1},
	)

	cart, err := svc.RemoveItem(context.Background(), 1, 7)
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, uint(8), cart.Items[0].ProductID)
	assert.Equal(t, int64(199), cart.Subtotal)
}

func TestRemoveItemNotInCart(t *testing.T) {
	store := NewMemoryStore()
	svc := NewService(nil, store)
	seedCart(t, store, 1, CartItem{ProductID: 7, Name: "Cola", Price: 250, Quantity: 2})

	_, err := svc.RemoveItem(context.Background(), 1, 999)
	assert.Error(t, err)
}

func TestClearCart(t *testing.T) {
	store := NewMemoryStore()
	svc := NewService(nil, store)
	seedCart(t, store, 1, CartItem{ProductID: 7, Name: "Cola", Price: 250, Quantity: 2})

	require.NoError(t, svc.ClearCart(context.Background(), 1))

	cart, err := svc.GetCart(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}

func TestCartSubtotalSampleBasket(t *testing.T) {
	c := &Cart{
		UserID: 1,
		Items: []CartItem{
			{ProductID: 1, Price: 299, Quantity: 2},
			{ProductID: 2, Price: 199, Quantity: 1},
		},
	}
	c.Recalculate()

	assert.Equal(t, int64(797), c.Subtotal)
	assert.Equal(t, 3, c.ItemCount)
}

func TestCartSubtotalUsesDiscountedPrices(t *testing.T) {
	c := &Cart{
		UserID: 1,
		Items: []CartItem{
			{ProductID: 1, Price: 1000, Discount: 10, Quantity: 2}, // 900 each
			{ProductID: 2, Price: 250, Quantity: 3},
		},
	}
	c.Recalculate()

	assert.Equal(t, int64(2550), c.Subtotal)
	assert.Equal(t, 5, c.ItemCount)
}

func TestCartItemUnitPrice(t *testing.T) {
	assert.Equal(t, int64(299), (&CartItem{Price: 299}).UnitPrice())
	assert.Equal(t, int64(269), (&CartItem{Price: 299, Discount: 10}).UnitPrice())
	assert.Equal(t, int64(0), (&CartItem{Price: 299, Discount: 100}).UnitPrice())
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	store := NewMemoryStore()
	seedCart(t, store, 1, CartItem{ProductID: 7, Price: 100, Quantity: 1})

	first, err := store.Get(context.Background(), 1)
	require.NoError(t, err)
	first.Items[0].Quantity = 99

	second, err := store.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, second.Items[0].Quantity)
}
