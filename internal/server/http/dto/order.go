package dto

import "time"

// PlaceOrderRequest describes the order placement payload. Quantity is a
// pointer so an omitted field can default to one while zero and negatives
// are rejected.
type PlaceOrderRequest struct {
	ProductID    int64  `json:"product_id" binding:"required"`
	Quantity     *int   `json:"quantity" binding:"omitempty,gt=0"`
	CustomerName string `json:"customer_name" binding:"required"`
}

// OrderResponse describes an order as exposed to API clients. Status fields
// carry the human-readable display strings.
type OrderResponse struct {
	OrderID       string     `json:"order_id"`
	ProductID     int64      `json:"product_id"`
	ProductName   string     `json:"product_name"`
	Quantity      int        `json:"quantity"`
	CustomerName  string     `json:"customer_name"`
	TotalAmount   int64      `json:"total_amount"`
	Status        string     `json:"status"`
	PaymentStatus string     `json:"payment_status"`
	PaymentMethod string     `json:"payment_method,omitempty"`
	PlacedAt      time.Time  `json:"placed_at"`
	PaidAt        *time.Time `json:"paid_at,omitempty"`
}

// OrderEnvelope wraps a single order with the success flag and optional message.
type OrderEnvelope struct {
	Success bool          `json:"success"`
	Message string        `json:"message,omitempty"`
	Order   OrderResponse `json:"order"`
}

// OrderListResponse wraps the full order listing.
type OrderListResponse struct {
	Success bool            `json:"success"`
	Orders  []OrderResponse `json:"orders"`
}
