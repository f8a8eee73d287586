package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/shopfront/internal/domain/errors"
	"github.com/polkiloo/shopfront/internal/server/http/dto"
)

// PaymentHandler manages the payment endpoint.
type PaymentHandler struct {
	facade PaymentFacade
}

// NewPaymentHandler constructs PaymentHandler.
func NewPaymentHandler(facade PaymentFacade) *PaymentHandler {
	return &PaymentHandler{facade: facade}
}

// Process handles POST /api/payment/:order_id. The body is optional; an
// absent or empty payload selects the default payment method.
func (h *PaymentHandler) Process(c *gin.Context) {
	var req dto.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		respondError(c, http.StatusBadRequest, "Malformed payment payload")
		return
	}

	order, err := h.facade.ProcessPayment(c.Request.Context(), c.Param("order_id"), req.PaymentMethod)
	if err != nil {
		if errors.Is(err, domainErrors.ErrOrderNotFound) {
			respondError(c, http.StatusNotFound, "Order not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to process payment")
		return
	}

	c.JSON(http.StatusOK, dto.OrderEnvelope{
		Success: true,
		Message: "Payment processed successfully",
		Order:   toOrderResponse(*order),
	})
}
