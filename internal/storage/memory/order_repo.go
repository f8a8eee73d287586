package memory

import (
	"context"
	"time"

	domainErrors "github.com/polkiloo/shopfront/internal/domain/errors"
	"github.com/polkiloo/shopfront/internal/domain/model"
)

// Create allocates the next order id and inserts the order in one critical
// section. The incoming ID field is ignored.
func (r *orderRepository) Create(ctx context.Context, order model.Order) (*model.Order, error) {
	s := r.storage
	s.mu.Lock()
	defer s.mu.Unlock()

	order.ID = s.nextOrderID()
	if _, exists := s.orders[order.ID]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}

	stored := order
	s.orders[order.ID] = &stored
	s.orderSeq = append(s.orderSeq, order.ID)

	result := stored
	return &result, nil
}

// GetByID returns a copy of the order or ErrOrderNotFound.
func (r *orderRepository) GetByID(ctx context.Context, id string) (*model.Order, error) {
	s := r.storage
	s.mu.RLock()
	defer s.mu.RUnlock()

	order, ok := s.orders[id]
	if !ok {
		return nil, domainErrors.ErrOrderNotFound
	}
	result := *order
	return &result, nil
}

// List returns copies of all orders in creation order.
func (r *orderRepository) List(ctx context.Context) ([]model.Order, error) {
	s := r.storage
	s.mu.RLock()
	defer s.mu.RUnlock()

	orders := make([]model.Order, 0, len(s.orderSeq))
	for _, id := range s.orderSeq {
		orders = append(orders, *s.orders[id])
	}
	return orders, nil
}

// UpdatePayment applies the payment transition to the stored order.
func (r *orderRepository) UpdatePayment(ctx context.Context, id string, status model.OrderStatus, paymentStatus model.PaymentStatus, method string, paidAt time.Time) (*model.Order, error) {
	s := r.storage
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[id]
	if !ok {
		return nil, domainErrors.ErrOrderNotFound
	}

	order.Status = status
	order.PaymentStatus = paymentStatus
	order.PaymentMethod = method
	order.PaidAt = &paidAt

	result := *order
	return &result, nil
}
