package handlers

import (
	"context"

	"github.com/polkiloo/shopfront/internal/domain/model"
)

// CatalogFacade describes catalog reads required by handlers.
type CatalogFacade interface {
	Products(ctx context.Context) ([]model.Product, error)
}

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	PlaceOrder(ctx context.Context, productID int64, quantity int, customerName string) (*model.Order, error)
	TrackOrder(ctx context.Context, orderID string) (*model.Order, error)
	Orders(ctx context.Context) ([]model.Order, error)
}

// PaymentFacade provides the payment transition.
type PaymentFacade interface {
	ProcessPayment(ctx context.Context, orderID, method string) (*model.Order, error)
}

// CommerceFacade aggregates the full set of operations used across handlers.
type CommerceFacade interface {
	CatalogFacade
	OrderFacade
	PaymentFacade
}
