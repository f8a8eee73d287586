package app

import (
	"context"

	"github.com/polkiloo/shopfront/internal/domain/model"
	"github.com/polkiloo/shopfront/internal/usecase"
)

// CommerceFacade aggregates catalog, order and payment use cases behind the
// surface the HTTP layer and the stock monitor consume.
type CommerceFacade struct {
	catalog  *usecase.CatalogUseCase
	orders   *usecase.OrderUseCase
	payments *usecase.PaymentUseCase
}

// NewCommerceFacade constructs CommerceFacade.
func NewCommerceFacade(catalog *usecase.CatalogUseCase, orders *usecase.OrderUseCase, payments *usecase.PaymentUseCase) *CommerceFacade {
	return &CommerceFacade{catalog: catalog, orders: orders, payments: payments}
}

func (f *CommerceFacade) Products(ctx context.Context) ([]model.Product, error) {
	return f.catalog.List(ctx)
}

func (f *CommerceFacade) PlaceOrder(ctx context.Context, productID int64, quantity int, customerName string) (*model.Order, error) {
	return f.orders.Place(ctx, productID, quantity, customerName)
}

func (f *CommerceFacade) TrackOrder(ctx context.Context, orderID string) (*model.Order, error) {
	return f.orders.Track(ctx, orderID)
}

func (f *CommerceFacade) ProcessPayment(ctx context.Context, orderID, method string) (*model.Order, error) {
	return f.payments.Process(ctx, orderID, method)
}

func (f *CommerceFacade) Orders(ctx context.Context) ([]model.Order, error) {
	return f.orders.List(ctx)
}
