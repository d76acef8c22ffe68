// internal/domain/delivery/policy.go
package delivery

import (
	"fmt"
	"strings"
	"time"

	"github.com/your-org/snackshop-backend/internal/config"
)

// Policy evaluates the delivery constraints for an order: minimum
// order amount, delivery time window, and serviced cities.
type Policy struct {
	minOrderAmount int64
	deliveryFee    int64
	windowStart    string
	windowEnd      string
	allowedCities  []string
}

// NewPolicy creates a delivery policy from configuration
func NewPolicy(cfg *config.Config) *Policy {
	return &Policy{
		minOrderAmount: cfg.Delivery.MinOrderAmount,
		deliveryFee:    cfg.Delivery.DeliveryFee,
		windowStart:    cfg.Delivery.WindowStart,
		windowEnd:      cfg.Delivery.WindowEnd,
		allowedCities:  cfg.Delivery.AllowedCities,
	}
}

// MinOrderAmount returns the minimum order subtotal in cents
func (p *Policy) MinOrderAmount() int64 {
	return p.minOrderAmount
}

// DeliveryFee returns the flat delivery fee in cents
func (p *Policy) DeliveryFee() int64 {
	return p.deliveryFee
}

// Window returns the delivery window bounds as HH:MM strings
func (p *Policy) Window() (start, end string) {
	return p.windowStart, p.windowEnd
}

// AllowedCities returns the serviced city names
func (p *Policy) AllowedCities() []string {
	return p.allowedCities
}

// IsMinimumOrderReached reports whether the subtotal meets the
// minimum order amount
func (p *Policy) IsMinimumOrderReached(subtotal int64) bool {
	return subtotal >= p.minOrderAmount
}

// RemainingAmount returns how many cents are missing to reach the
// minimum order amount, zero if it is already met
func (p *Policy) RemainingAmount(subtotal int64) int64 {
	if subtotal >= p.minOrderAmount {
		return 0
	}
	return p.minOrderAmount - subtotal
}

// IsDeliveryTime reports whether the given time falls inside the
// delivery window. Both bounds are inclusive.
func (p *Policy) IsDeliveryTime(t time.Time) bool {
	start, err := minutesOfDay(p.windowStart)
	if err != nil {
		return false
	}
	end, err := minutesOfDay(p.windowEnd)
	if err != nil {
		return false
	}

	now := t.Hour()*60 + t.Minute()
	if start <= end {
		return now >= start && now <= end
	}
	// Window crosses midnight
	return now >= start || now <= end
}

// IsAllowedCity reports whether the city is serviced. The comparison
// ignores case and surrounding whitespace.
func (p *Policy) IsAllowedCity(city string) bool {
	city = strings.TrimSpace(city)
	for _, allowed := range p.allowedCities {
		if strings.EqualFold(city, allowed) {
			return true
		}
	}
	return false
}

// Total returns the order total for a subtotal that passed validation
func (p *Policy) Total(subtotal int64) int64 {
	return subtotal + p.deliveryFee
}

func minutesOfDay(hhmm string) (int, error) {
	parsed, err := time.Parse("15:04", hhmm)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", hhmm, err)
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}
