package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"cosmetics-catalog/internal/repository"
	"cosmetics-catalog/internal/service"
)

type CheckoutHandler struct {
	checkout *service.CheckoutService
}

func NewCheckoutHandler(checkout *service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{
		checkout: checkout,
	}
}

type checkoutRequest struct {
	CartID string `json:"cart_id" binding:"required"`
	Email  string `json:"email"`
}

// Checkout convierte el carrito en orden. POST /api/checkout
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	orderID, err := h.checkout.Checkout(c.Request.Context(), req.CartID, req.Email)
	if err != nil {
		if errors.Is(err, service.ErrCartEmpty) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "cart is empty"})
			return
		}
		if errors.Is(err, repository.ErrStoreUnavailable) {
			c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "store unavailable"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to checkout"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "order_id": orderID})
}
