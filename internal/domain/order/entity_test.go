// internal/domain/order/entity_test.go
package order

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusTransitions(t *testing.T) {
	tests := []struct {
		from    OrderStatus
		to      OrderStatus
		allowed bool
	}{
		{StatusPending, StatusProcessing, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusDelivering, false},
		{StatusPending, StatusCompleted, false},
		{StatusProcessing, StatusDelivering, true},
		{StatusProcessing, StatusCancelled, true},
		{StatusProcessing, StatusCompleted, false},
		{StatusDelivering, StatusCompleted, true},
		{StatusDelivering, StatusCancelled, false},
		{StatusDelivering, StatusPending, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCancelled, StatusPending, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"_to_"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestStatusIsValid(t *testing.T) {
	for _, s := range []OrderStatus{StatusPending, StatusProcessing, StatusDelivering, StatusCompleted, StatusCancelled} {
		assert.True(t, s.IsValid(), string(s))
	}
	assert.False(t, OrderStatus("shipped").IsValid())
	assert.False(t, OrderStatus("").IsValid())
}

func TestStatusIsTerminal(t *testing.T) {
	assert.True(t, StatusCompleted.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusDelivering.IsTerminal())
}

func TestOrderCanBeCancelled(t *testing.T) {
	assert.True(t, (&Order{Status: StatusPending}).CanBeCancelled())
	assert.True(t, (&Order{Status: StatusProcessing}).CanBeCancelled())
	assert.False(t, (&Order{Status: StatusDelivering}).CanBeCancelled())
	assert.False(t, (&Order{Status: StatusCompleted}).CanBeCancelled())
	assert.False(t, (&Order{Status: StatusCancelled}).CanBeCancelled())
}

func TestPaymentMethodIsValid(t *testing.T) {
	assert.True(t, PaymentCash.IsValid())
	assert.True(t, PaymentCard.IsValid())
	assert.False(t, PaymentMethod("paypal").IsValid())
	assert.False(t, PaymentMethod("").IsValid())
}

func TestGenerateOrderNumber(t *testing.T) {
	first := GenerateOrderNumber()
	second := GenerateOrderNumber()

	assert.True(t, strings.HasPrefix(first, "ORD-"))
	assert.NotEqual(t, first, second)

	parts := strings.Split(first, "-")
	assert.Len(t, parts, 3)
	assert.Len(t, parts[1], 8)
	assert.Len(t, parts[2], 8)
}
