package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// IndexHandler serves the API description document.
type IndexHandler struct{}

// NewIndexHandler constructs IndexHandler.
func NewIndexHandler() *IndexHandler {
	return &IndexHandler{}
}

// Home handles GET /.
func (h *IndexHandler) Home(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "E-commerce Product Ordering System API",
		"version": "1.0",
		"endpoints": gin.H{
			"/api/products":          "GET - List all products",
			"/api/order":             "POST - Place new order",
			"/api/track/:order_id":   "GET - Track order",
			"/api/payment/:order_id": "POST - Process payment",
			"/api/orders":            "GET - Get all orders",
		},
	})
}
