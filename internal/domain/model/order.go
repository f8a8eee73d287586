package model

import "time"

// OrderStatus describes order fulfilment lifecycle.
type OrderStatus string

const (
	OrderStatusPlaced           OrderStatus = "PLACED"
	OrderStatusPaymentConfirmed OrderStatus = "PAYMENT_CONFIRMED"
)

// Display returns the human-readable form shown to API clients.
func (s OrderStatus) Display() string {
	switch s {
	case OrderStatusPlaced:
		return "Order Placed"
	case OrderStatusPaymentConfirmed:
		return "Payment Confirmed - Preparing for Shipment"
	default:
		return string(s)
	}
}

// PaymentStatus describes payment lifecycle of an order.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusCompleted PaymentStatus = "COMPLETED"
)

// Display returns the human-readable form shown to API clients.
func (s PaymentStatus) Display() string {
	switch s {
	case PaymentStatusPending:
		return "Pending"
	case PaymentStatusCompleted:
		return "Completed"
	default:
		return string(s)
	}
}

// Order describes a customer's purchase of a quantity of one product.
// TotalAmount is captured at placement time and never re-derived from the
// catalog, so later price changes leave existing orders untouched.
type Order struct {
	ID            string
	ProductID     int64
	ProductName   string
	Quantity      int
	CustomerName  string
	TotalAmount   int64
	Status        OrderStatus
	PaymentStatus PaymentStatus
	PaymentMethod string
	PlacedAt      time.Time
	PaidAt        *time.Time
}
