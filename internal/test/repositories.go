package test

import (
	"context"
	"fmt"
	"time"

	domainErrors "github.com/polkiloo/shopfront/internal/domain/errors"
	"github.com/polkiloo/shopfront/internal/domain/model"
)

// CatalogRepositoryStub allows tests to customize catalog behaviour.
type CatalogRepositoryStub struct {
	ListFn           func(context.Context) ([]model.Product, error)
	GetByIDFn        func(context.Context, int64) (*model.Product, error)
	DecrementStockFn func(context.Context, int64, int) error
	RestoreStockFn   func(context.Context, int64, int) error

	Products   []model.Product
	Decrements []StockCall
	Restores   []StockCall
}

// StockCall records a stock mutation request.
type StockCall struct {
	ProductID int64
	Quantity  int
}

// List returns configured products.
func (s *CatalogRepositoryStub) List(ctx context.Context) ([]model.Product, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	return s.Products, nil
}

// GetByID returns matched product either via override or stored slice.
func (s *CatalogRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	for _, p := range s.Products {
		if p.ID == id {
			product := p
			return &product, nil
		}
	}
	return nil, domainErrors.ErrProductNotFound
}

// DecrementStock records the reservation and applies it to the stored slice.
func (s *CatalogRepositoryStub) DecrementStock(ctx context.Context, id int64, quantity int) error {
	s.Decrements = append(s.Decrements, StockCall{ProductID: id, Quantity: quantity})
	if s.DecrementStockFn != nil {
		return s.DecrementStockFn(ctx, id, quantity)
	}
	for i := range s.Products {
		if s.Products[i].ID != id {
			continue
		}
		if s.Products[i].Stock < quantity {
			return domainErrors.ErrInsufficientStock
		}
		s.Products[i].Stock -= quantity
		return nil
	}
	return domainErrors.ErrProductNotFound
}

// RestoreStock records the compensation and applies it to the stored slice.
func (s *CatalogRepositoryStub) RestoreStock(ctx context.Context, id int64, quantity int) error {
	s.Restores = append(s.Restores, StockCall{ProductID: id, Quantity: quantity})
	if s.RestoreStockFn != nil {
		return s.RestoreStockFn(ctx, id, quantity)
	}
	for i := range s.Products {
		if s.Products[i].ID == id {
			s.Products[i].Stock += quantity
			return nil
		}
	}
	return domainErrors.ErrProductNotFound
}

// OrderRepositoryStub stores orders in-memory for tests.
type OrderRepositoryStub struct {
	CreateFn        func(context.Context, model.Order) (*model.Order, error)
	GetByIDFn       func(context.Context, string) (*model.Order, error)
	ListFn          func(context.Context) ([]model.Order, error)
	UpdatePaymentFn func(context.Context, string, model.OrderStatus, model.PaymentStatus, string, time.Time) (*model.Order, error)

	Orders      []model.Order
	Next        int64
	UpdateCalls []PaymentUpdateCall
}

// PaymentUpdateCall stores information about UpdatePayment invocations.
type PaymentUpdateCall struct {
	OrderID       string
	Status        model.OrderStatus
	PaymentStatus model.PaymentStatus
	Method        string
}

// Create assigns a sequential id and stores the order.
func (s *OrderRepositoryStub) Create(ctx context.Context, order model.Order) (*model.Order, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, order)
	}
	s.Next++
	order.ID = fmt.Sprintf("ORD%05d", s.Next)
	s.Orders = append(s.Orders, order)
	stored := order
	return &stored, nil
}

// GetByID returns matched order either via override or stored slice.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, id string) (*model.Order, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	for _, o := range s.Orders {
		if o.ID == id {
			order := o
			return &order, nil
		}
	}
	return nil, domainErrors.ErrOrderNotFound
}

// List returns orders from configured slice.
func (s *OrderRepositoryStub) List(ctx context.Context) ([]model.Order, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	return s.Orders, nil
}

// UpdatePayment records the call and mutates the stored order.
func (s *OrderRepositoryStub) UpdatePayment(ctx context.Context, id string, status model.OrderStatus, paymentStatus model.PaymentStatus, method string, paidAt time.Time) (*model.Order, error) {
	if s.UpdatePaymentFn != nil {
		return s.UpdatePaymentFn(ctx, id, status, paymentStatus, method, paidAt)
	}
	s.UpdateCalls = append(s.UpdateCalls, PaymentUpdateCall{OrderID: id, Status: status, PaymentStatus: paymentStatus, Method: method})
	for i := range s.Orders {
		if s.Orders[i].ID != id {
			continue
		}
		s.Orders[i].Status = status
		s.Orders[i].PaymentStatus = paymentStatus
		s.Orders[i].PaymentMethod = method
		s.Orders[i].PaidAt = &paidAt
		order := s.Orders[i]
		return &order, nil
	}
	return nil, domainErrors.ErrOrderNotFound
}
