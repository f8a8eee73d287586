package test

import (
	"context"
	"time"

	"github.com/polkiloo/shopfront/internal/domain/model"
	"github.com/polkiloo/shopfront/internal/usecase"
)

// CatalogFacadeStub provides controllable behaviour for catalog endpoints
// and the stock monitor.
type CatalogFacadeStub struct {
	ProductsFn func(context.Context) ([]model.Product, error)
}

// Products delegates to provided function or returns a default catalog.
func (s CatalogFacadeStub) Products(ctx context.Context) ([]model.Product, error) {
	if s.ProductsFn != nil {
		return s.ProductsFn(ctx)
	}
	return []model.Product{{ID: 1, Name: "Laptop", Price: 80000, Stock: 15}}, nil
}

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	PlaceFn func(context.Context, int64, int, string) (*model.Order, error)
	TrackFn func(context.Context, string) (*model.Order, error)
	ListFn  func(context.Context) ([]model.Order, error)
}

// PlaceOrder delegates to provided function or returns a default order.
func (s OrderFacadeStub) PlaceOrder(ctx context.Context, productID int64, quantity int, customerName string) (*model.Order, error) {
	if s.PlaceFn != nil {
		return s.PlaceFn(ctx, productID, quantity, customerName)
	}
	return &model.Order{
		ID:            "ORD00001",
		ProductID:     productID,
		Quantity:      quantity,
		CustomerName:  customerName,
		Status:        model.OrderStatusPlaced,
		PaymentStatus: model.PaymentStatusPending,
	}, nil
}

// TrackOrder returns predefined order for given id.
func (s OrderFacadeStub) TrackOrder(ctx context.Context, orderID string) (*model.Order, error) {
	if s.TrackFn != nil {
		return s.TrackFn(ctx, orderID)
	}
	return &model.Order{ID: orderID, Status: model.OrderStatusPlaced, PaymentStatus: model.PaymentStatusPending}, nil
}

// Orders returns predefined order listing.
func (s OrderFacadeStub) Orders(ctx context.Context) ([]model.Order, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	return []model.Order{{ID: "ORD00001"}}, nil
}

// PaymentFacadeStub simulates the payment transition.
type PaymentFacadeStub struct {
	ProcessFn func(context.Context, string, string) (*model.Order, error)
}

// ProcessPayment executes configured handler or returns a paid order.
func (s PaymentFacadeStub) ProcessPayment(ctx context.Context, orderID, method string) (*model.Order, error) {
	if s.ProcessFn != nil {
		return s.ProcessFn(ctx, orderID, method)
	}
	paidAt := time.Unix(0, 0)
	return &model.Order{
		ID:            orderID,
		Status:        model.OrderStatusPaymentConfirmed,
		PaymentStatus: model.PaymentStatusCompleted,
		PaymentMethod: method,
		PaidAt:        &paidAt,
	}, nil
}

// CommerceFacadeStub aggregates all facade stubs for router-level tests.
type CommerceFacadeStub struct {
	CatalogFacadeStub
	OrderFacadeStub
	PaymentFacadeStub
}

// ChargerStub fakes the payment processor.
type ChargerStub struct {
	ChargeFn func(context.Context, string, int64, string) (*usecase.Receipt, error)
	Charges  []ChargeCall
	Err      error
}

// ChargeCall records a Charge invocation.
type ChargeCall struct {
	OrderID string
	Amount  int64
	Method  string
}

// Charge records the call and returns a stub receipt.
func (s *ChargerStub) Charge(ctx context.Context, orderID string, amount int64, method string) (*usecase.Receipt, error) {
	s.Charges = append(s.Charges, ChargeCall{OrderID: orderID, Amount: amount, Method: method})
	if s.ChargeFn != nil {
		return s.ChargeFn(ctx, orderID, amount, method)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	return &usecase.Receipt{Reference: "stub-reference", Method: method, Amount: amount, ChargedAt: time.Unix(0, 0)}, nil
}
