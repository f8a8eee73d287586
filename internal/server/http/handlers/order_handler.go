package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/shopfront/internal/domain/errors"
	"github.com/polkiloo/shopfront/internal/server/http/dto"
)

// OrderHandler manages order placement, tracking and listing.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Place handles POST /api/order.
func (h *OrderHandler) Place(c *gin.Context) {
	var req dto.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	order, err := h.facade.PlaceOrder(c.Request.Context(), req.ProductID, quantity, req.CustomerName)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrProductNotFound):
			respondError(c, http.StatusNotFound, "Product not found")
		case errors.Is(err, domainErrors.ErrInsufficientStock):
			respondError(c, http.StatusBadRequest, "Insufficient stock")
		case errors.Is(err, domainErrors.ErrInvalidQuantity):
			respondError(c, http.StatusBadRequest, "Quantity must be a positive integer")
		default:
			respondError(c, http.StatusInternalServerError, "Failed to place order")
		}
		return
	}

	c.JSON(http.StatusCreated, dto.OrderEnvelope{
		Success: true,
		Message: "Order placed successfully",
		Order:   toOrderResponse(*order),
	})
}

// Track handles GET /api/track/:order_id.
func (h *OrderHandler) Track(c *gin.Context) {
	order, err := h.facade.TrackOrder(c.Request.Context(), c.Param("order_id"))
	if err != nil {
		if errors.Is(err, domainErrors.ErrOrderNotFound) {
			respondError(c, http.StatusNotFound, "Order not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to track order")
		return
	}

	c.JSON(http.StatusOK, dto.OrderEnvelope{Success: true, Order: toOrderResponse(*order)})
}

// List handles GET /api/orders.
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.facade.Orders(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to list orders")
		return
	}

	response := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, toOrderResponse(o))
	}

	c.JSON(http.StatusOK, dto.OrderListResponse{Success: true, Orders: response})
}
