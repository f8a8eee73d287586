package usecase

import (
	"context"
	"time"

	domainErrors "github.com/polkiloo/shopfront/internal/domain/errors"
	"github.com/polkiloo/shopfront/internal/domain/model"
	"github.com/polkiloo/shopfront/internal/domain/repository"
)

// OrderUseCase encapsulates order placement and tracking.
type OrderUseCase struct {
	catalog repository.CatalogRepository
	orders  repository.OrderRepository
	now     func() time.Time
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(catalog repository.CatalogRepository, orders repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{catalog: catalog, orders: orders, now: time.Now}
}

// Place creates a new order and reserves catalog stock. The stock
// reservation happens first as an atomic check-and-decrement; if the insert
// then fails the reservation is rolled back, so neither effect survives a
// failed placement.
func (u *OrderUseCase) Place(ctx context.Context, productID int64, quantity int, customerName string) (*model.Order, error) {
	if quantity <= 0 {
		return nil, domainErrors.ErrInvalidQuantity
	}

	product, err := u.catalog.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if err := u.catalog.DecrementStock(ctx, productID, quantity); err != nil {
		return nil, err
	}

	order, err := u.orders.Create(ctx, model.Order{
		ProductID:     product.ID,
		ProductName:   product.Name,
		Quantity:      quantity,
		CustomerName:  customerName,
		TotalAmount:   product.Price * int64(quantity),
		Status:        model.OrderStatusPlaced,
		PaymentStatus: model.PaymentStatusPending,
		PlacedAt:      u.now(),
	})
	if err != nil {
		_ = u.catalog.RestoreStock(ctx, productID, quantity)
		return nil, err
	}

	return order, nil
}

// Track returns the order by id. Read-only.
func (u *OrderUseCase) Track(ctx context.Context, orderID string) (*model.Order, error) {
	return u.orders.GetByID(ctx, orderID)
}

// List returns all orders in creation order.
func (u *OrderUseCase) List(ctx context.Context) ([]model.Order, error) {
	return u.orders.List(ctx)
}
