// internal/domain/catalog/entity_test.go
package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProductDiscountedPrice(t *testing.T) {
	tests := []struct {
		name     string
		price    int64
		discount int
		want     int64
	}{
		{"no discount", 299, 0, 299},
		{"ten percent", 1000, 10, 900},
		{"rounds down", 299, 10, 269},
		{"half price", 500, 50, 250},
		{"full discount", 500, 100, 0},
		{"over full discount", 500, 120, 0},
		{"negative treated as none", 500, -5, 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Product{Price: tt.price, Discount: tt.discount}
			assert.Equal(t, tt.want, p.DiscountedPrice())
		})
	}
}

func TestProductHasDiscount(t *testing.T) {
	assert.False(t, (&Product{Discount: 0}).HasDiscount())
	assert.True(t, (&Product{Discount: 15}).HasDiscount())
}

func TestProductIsInStock(t *testing.T) {
	assert.True(t, (&Product{Stock: 3}).IsInStock())
	assert.False(t, (&Product{Stock: 0}).IsInStock())
}

func TestProductGetFormattedPrice(t *testing.T) {
	p := Product{Price: 1999}
	assert.InDelta(t, 19.99, p.GetFormattedPrice(), 0.001)
}
