package handlers

import (
	"errors"
	"net/http"

	"fitpulse/models"
	"fitpulse/services/shop"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ShopHandler serves the product catalog and checkout endpoints.
type ShopHandler struct {
	Service shop.ShopService
}

// ProductsHandler handles GET /api/shop/products.
func (h *ShopHandler) ProductsHandler(c *gin.Context) {
	logger := getLogger(c)

	products, err := h.Service.Products(c.Request.Context())
	if err != nil {
		logger.Error("Failed to load products", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load products"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

// CheckoutHandler handles POST /api/shop/checkout.
func (h *ShopHandler) CheckoutHandler(c *gin.Context) {
	logger := getLogger(c)

	userID := c.GetString("userID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := h.Service.Checkout(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, shop.ErrEmptyCart):
			c.JSON(http.StatusBadRequest, gin.H{"error": "No purchasable products in cart"})
		case errors.Is(err, shop.ErrOutOfStock):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			logger.Error("Checkout failed", zap.String("userID", userID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Checkout failed"})
		}
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ConfirmOrderHandler handles POST /api/shop/orders/:id/confirm.
func (h *ShopHandler) ConfirmOrderHandler(c *gin.Context) {
	logger := getLogger(c)

	userID := c.GetString("userID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	orderID := c.Param("id")

	order, err := h.Service.ConfirmOrder(c.Request.Context(), userID, orderID)
	if err != nil {
		switch {
		case errors.Is(err, shop.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		case errors.Is(err, shop.ErrPaymentIncomplete):
			c.JSON(http.StatusConflict, gin.H{"error": "Payment has not completed"})
		default:
			logger.Error("Order confirmation failed", zap.String("orderID", orderID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Order confirmation failed"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

// OrdersHandler handles GET /api/shop/orders.
func (h *ShopHandler) OrdersHandler(c *gin.Context) {
	logger := getLogger(c)

	userID := c.GetString("userID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	orders, err := h.Service.OrdersForUser(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to load orders", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load orders"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}
