package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"cosmetics-catalog/internal/repository"
	"cosmetics-catalog/internal/service"
)

type CartHandler struct {
	carts *service.CartService
}

func NewCartHandler(carts *service.CartService) *CartHandler {
	return &CartHandler{
		carts: carts,
	}
}

type addItemRequest struct {
	CartID    string `json:"cart_id" binding:"required"`
	ProductID int    `json:"product_id" binding:"required"`
	Qty       int    `json:"qty"`
}

// StartCart reparte un cart_id nuevo. POST /api/cart/start
func (h *CartHandler) StartCart(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"cart_id": h.carts.Start()})
}

// AddItem agrega una línea al carrito. POST /api/cart/add
func (h *CartHandler) AddItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.carts.Add(c.Request.Context(), req.CartID, req.ProductID, req.Qty); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Product not found"})
			return
		}
		if errors.Is(err, repository.ErrStoreUnavailable) {
			c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "store unavailable"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to add item"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "cart_id": req.CartID})
}

// ViewCart devuelve las líneas resueltas y el total. GET /api/cart/:cart_id
func (h *CartHandler) ViewCart(c *gin.Context) {
	view, err := h.carts.View(c.Request.Context(), c.Param("cart_id"))
	if err != nil {
		if errors.Is(err, repository.ErrStoreUnavailable) {
			c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "store unavailable"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to view cart"})
		return
	}

	c.JSON(http.StatusOK, view)
}
