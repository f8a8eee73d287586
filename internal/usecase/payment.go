package usecase

import (
	"context"
	"time"

	"github.com/polkiloo/shopfront/internal/domain/model"
	"github.com/polkiloo/shopfront/internal/domain/repository"
)

// DefaultPaymentMethod is applied when the client omits a payment method.
const DefaultPaymentMethod = "Credit Card"

// Receipt confirms a charge accepted by the payment processor.
type Receipt struct {
	Reference string
	Method    string
	Amount    int64
	ChargedAt time.Time
}

// Charger describes the payment processor the use case settles through.
type Charger interface {
	Charge(ctx context.Context, orderID string, amount int64, method string) (*Receipt, error)
}

// PaymentUseCase applies the payment transition to an order.
type PaymentUseCase struct {
	orders  repository.OrderRepository
	charger Charger
}

// NewPaymentUseCase constructs PaymentUseCase.
func NewPaymentUseCase(orders repository.OrderRepository, charger Charger) *PaymentUseCase {
	return &PaymentUseCase{orders: orders, charger: charger}
}

// Process charges the order and marks it paid. Re-processing an already
// paid order re-sets the same fields and records the latest method.
func (u *PaymentUseCase) Process(ctx context.Context, orderID, method string) (*model.Order, error) {
	if method == "" {
		method = DefaultPaymentMethod
	}

	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	receipt, err := u.charger.Charge(ctx, order.ID, order.TotalAmount, method)
	if err != nil {
		return nil, err
	}

	return u.orders.UpdatePayment(ctx, order.ID, model.OrderStatusPaymentConfirmed, model.PaymentStatusCompleted, method, receipt.ChargedAt)
}
