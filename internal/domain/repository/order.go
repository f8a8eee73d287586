package repository

import (
	"context"
	"time"

	"github.com/polkiloo/shopfront/internal/domain/model"
)

// OrderRepository describes the order store.
type OrderRepository interface {
	// Create allocates the next order identifier, stores the order and
	// returns the stored copy.
	Create(ctx context.Context, order model.Order) (*model.Order, error)
	GetByID(ctx context.Context, id string) (*model.Order, error)
	// List returns all orders in creation order.
	List(ctx context.Context) ([]model.Order, error)
	// UpdatePayment applies the payment transition to a stored order.
	UpdatePayment(ctx context.Context, id string, status model.OrderStatus, paymentStatus model.PaymentStatus, method string, paidAt time.Time) (*model.Order, error)
}
