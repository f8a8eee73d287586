package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/polkiloo/shopfront/internal/domain/model"
	"github.com/polkiloo/shopfront/internal/server/http/dto"
)

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, dto.ErrorResponse{Success: false, Message: message})
}

func toOrderResponse(order model.Order) dto.OrderResponse {
	return dto.OrderResponse{
		OrderID:       order.ID,
		ProductID:     order.ProductID,
		ProductName:   order.ProductName,
		Quantity:      order.Quantity,
		CustomerName:  order.CustomerName,
		TotalAmount:   order.TotalAmount,
		Status:        order.Status.Display(),
		PaymentStatus: order.PaymentStatus.Display(),
		PaymentMethod: order.PaymentMethod,
		PlacedAt:      order.PlacedAt,
		PaidAt:        order.PaidAt,
	}
}

func toProductResponse(product model.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:    product.ID,
		Name:  product.Name,
		Price: product.Price,
		Stock: product.Stock,
	}
}
