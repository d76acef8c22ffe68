// internal/domain/checkout/service_test.go
package checkout

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/snackshop-backend/internal/config"
	"github.com/your-org/snackshop-backend/internal/domain/delivery"
)

func testService(now time.Time) *Service {
	cfg := &config.Config{}
	cfg.Delivery.MinOrderAmount = 1999
	cfg.Delivery.DeliveryFee = 500
	cfg.Delivery.WindowStart = "08:30"
	cfg.Delivery.WindowEnd = "23:00"
	cfg.Delivery.AllowedCities = []string{"Cuxhaven", "Wurster Nordseeküste"}

	return &Service{
		policy: delivery.NewPolicy(cfg),
		config: cfg,
		now:    func() time.Time { return now },
	}
}

func validRequest() *CheckoutRequest {
	return &CheckoutRequest{
		CustomerName: "Max Mustermann",
		Email:        "max@example.com",
		Phone:        "+4915112345678",
		Address:      "Deichstraße 1",
		City:         "Cuxhaven",
		PostalCode:   "27472",
	}
}

func insideWindow() time.Time {
	return time.Date(2025, 6, 15, 14, 0, 0, 0, time.Local)
}

func outsideWindow() time.Time {
	return time.Date(2025, 6, 15, 7, 0, 0, 0, time.Local)
}

func TestValidatePassesForValidOrder(t *testing.T) {
	svc := testService(insideWindow())
	assert.Nil(t, svc.validate(2500, validRequest()))
}

func TestValidateRejectsBelowMinimum(t *testing.T) {
	svc := testService(insideWindow())

	verr := svc.validate(1998, validRequest())
	require.NotNil(t, verr)
	assert.Equal(t, "minimum_order", verr.Code)
	assert.Contains(t, verr.Message, "0,01 €")
}

func TestValidateAcceptsExactMinimum(t *testing.T) {
	svc := testService(insideWindow())
	assert.Nil(t, svc.validate(1999, validRequest()))
}

func TestValidateRejectsOutsideDeliveryWindow(t *testing.T) {
	svc := testService(outsideWindow())

	verr := svc.validate(2500, validRequest())
	require.NotNil(t, verr)
	assert.Equal(t, "outside_delivery_hours", verr.Code)
}

func TestValidateRejectsMissingFields(t *testing.T) {
	svc := testService(insideWindow())

	req := validRequest()
	req.Address = "   "

	verr := svc.validate(2500, req)
	require.NotNil(t, verr)
	assert.Equal(t, "missing_field", verr.Code)
}

func TestValidateRejectsUnservicedCity(t *testing.T) {
	svc := testService(insideWindow())

	req := validRequest()
	req.City = "Bremerhaven"

	verr := svc.validate(2500, req)
	require.NotNil(t, verr)
	assert.Equal(t, "city_not_serviced", verr.Code)
	assert.Contains(t, verr.Message, "Cuxhaven")
}

func TestValidateCityIsCaseInsensitive(t *testing.T) {
	svc := testService(insideWindow())

	req := validRequest()
	req.City = "  cuxhaven "
	assert.Nil(t, svc.validate(2500, req))
}

// Minimum amount is checked before the delivery window, so a cart
// that fails both reports the minimum first.
func TestValidateMinimumCheckedBeforeWindow(t *testing.T) {
	svc := testService(outsideWindow())

	verr := svc.validate(100, validRequest())
	require.NotNil(t, verr)
	assert.Equal(t, "minimum_order", verr.Code)
}

// The window is checked before field presence.
func TestValidateWindowCheckedBeforeFields(t *testing.T) {
	svc := testService(outsideWindow())

	req := validRequest()
	req.Phone = ""

	verr := svc.validate(2500, req)
	require.NotNil(t, verr)
	assert.Equal(t, "outside_delivery_hours", verr.Code)
}

func TestValidateRejectsUnknownPaymentMethod(t *testing.T) {
	svc := testService(insideWindow())

	req := validRequest()
	req.PaymentMethod = "paypal"

	verr := svc.validate(2500, req)
	require.NotNil(t, verr)
	assert.Equal(t, "invalid_payment_method", verr.Code)
}

func TestValidateAcceptsCashAndCard(t *testing.T) {
	svc := testService(insideWindow())

	for _, method := range []string{"", "cash", "card"} {
		req := validRequest()
		req.PaymentMethod = method
		assert.Nil(t, svc.validate(2500, req), method)
	}
}

// Field presence is checked before the city allow-list.
func TestValidateFieldsCheckedBeforeCity(t *testing.T) {
	svc := testService(insideWindow())

	req := validRequest()
	req.Phone = ""
	req.City = "Bremerhaven"

	verr := svc.validate(2500, req)
	require.NotNil(t, verr)
	assert.Equal(t, "missing_field", verr.Code)
}
