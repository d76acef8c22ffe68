// internal/domain/delivery/policy_test.go
package delivery

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/your-org/snackshop-backend/internal/config"
)

func testPolicy() *Policy {
	cfg := &config.Config{}
	cfg.Delivery.MinOrderAmount = 1999
	cfg.Delivery.DeliveryFee = 500
	cfg.Delivery.WindowStart = "08:30"
	cfg.Delivery.WindowEnd = "23:00"
	cfg.Delivery.AllowedCities = []string{"Cuxhaven", "Wurster Nordseeküste"}
	return NewPolicy(cfg)
}

func at(hour, minute int) time.Time {
	return time.Date(2025, 6, 15, hour, minute, 0, 0, time.Local)
}

func TestIsMinimumOrderReached(t *testing.T) {
	p := testPolicy()

	assert.False(t, p.IsMinimumOrderReached(1998))
	assert.True(t, p.IsMinimumOrderReached(1999))
	assert.True(t, p.IsMinimumOrderReached(5000))
}

func TestRemainingAmount(t *testing.T) {
	p := testPolicy()

	assert.Equal(t, int64(1), p.RemainingAmount(1998))
	assert.Equal(t, int64(0), p.RemainingAmount(1999))
	assert.Equal(t, int64(0), p.RemainingAmount(3000))
	assert.Equal(t, int64(1999), p.RemainingAmount(0))
}

func TestIsDeliveryTimeInclusiveBounds(t *testing.T) {
	p := testPolicy()

	assert.False(t, p.IsDeliveryTime(at(8, 29)))
	assert.True(t, p.IsDeliveryTime(at(8, 30)))
	assert.True(t, p.IsDeliveryTime(at(14, 0)))
	assert.True(t, p.IsDeliveryTime(at(23, 0)))
	assert.False(t, p.IsDeliveryTime(at(23, 1)))
	assert.False(t, p.IsDeliveryTime(at(2, 0)))
}

func TestIsDeliveryTimeWindowAcrossMidnight(t *testing.T) {
	cfg := &config.Config{}
	cfg.Delivery.WindowStart = "20:00"
	cfg.Delivery.WindowEnd = "02:00"
	p := NewPolicy(cfg)

	assert.True(t, p.IsDeliveryTime(at(21, 0)))
	assert.True(t, p.IsDeliveryTime(at(1, 30)))
	assert.False(t, p.IsDeliveryTime(at(12, 0)))
}

func TestIsAllowedCity(t *testing.T) {
	p := testPolicy()

	assert.True(t, p.IsAllowedCity("Cuxhaven"))
	assert.True(t, p.IsAllowedCity("cuxhaven"))
	assert.True(t, p.IsAllowedCity("  Cuxhaven  "))
	assert.True(t, p.IsAllowedCity("Wurster Nordseeküste"))
	assert.False(t, p.IsAllowedCity("Bremerhaven"))
	assert.False(t, p.IsAllowedCity(""))
}

func TestTotalAddsDeliveryFee(t *testing.T) {
	p := testPolicy()
	assert.Equal(t, int64(2499), p.Total(1999))
}

func TestTotalForSampleBasket(t *testing.T) {
	p := testPolicy()

	// 2 × 2,99 € + 1 × 1,99 € = 7,97 €, plus 5,00 € delivery
	subtotal := int64(299)*2 + int64(199)
	assert.Equal(t, int64(797), subtotal)
	assert.Equal(t, int64(1297), p.Total(subtotal))
}
