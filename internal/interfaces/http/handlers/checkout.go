// internal/interfaces/http/handlers/checkout.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/snackshop-backend/internal/domain/checkout"
	"github.com/your-org/snackshop-backend/internal/domain/delivery"
	"github.com/your-org/snackshop-backend/internal/interfaces/http/middleware"
)

// CheckoutHandler handles order placement
type CheckoutHandler struct {
	checkout *checkout.Service
	policy   *delivery.Policy
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(checkoutService *checkout.Service, policy *delivery.Policy) *CheckoutHandler {
	return &CheckoutHandler{
		checkout: checkoutService,
		policy:   policy,
	}
}

// DeliveryInfo handles GET /checkout/delivery-info. It exposes the
// delivery rules so the storefront can show them before checkout.
func (h *CheckoutHandler) DeliveryInfo(c *gin.Context) {
	start, end := h.policy.Window()
	c.JSON(http.StatusOK, gin.H{
		"min_order_amount": h.policy.MinOrderAmount(),
		"delivery_fee":     h.policy.DeliveryFee(),
		"window_start":     start,
		"window_end":       end,
		"allowed_cities":   h.policy.AllowedCities(),
	})
}

// PlaceOrder handles POST /checkout
func (h *CheckoutHandler) PlaceOrder(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req checkout.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	placedOrder, err := h.checkout.PlaceOrder(c.Request.Context(), userID, &req)
	if err != nil {
		var verr *checkout.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": verr.Message,
				"code":  verr.Code,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"order": placedOrder})
}
