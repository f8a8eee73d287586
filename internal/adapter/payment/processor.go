package payment

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/polkiloo/shopfront/internal/usecase"
)

// Processor settles charges for placed orders.
type Processor interface {
	Charge(ctx context.Context, orderID string, amount int64, method string) (*usecase.Receipt, error)
}

// Simulator implements Processor without an external payment system. Every
// charge is accepted and receives a unique receipt reference.
type Simulator struct {
	logger *slog.Logger
	now    func() time.Time
}

// NewSimulator creates the simulated processor.
func NewSimulator(logger *slog.Logger) *Simulator {
	return &Simulator{logger: logger, now: time.Now}
}

// Charge accepts the payment and issues a receipt.
func (s *Simulator) Charge(ctx context.Context, orderID string, amount int64, method string) (*usecase.Receipt, error) {
	if amount < 0 {
		return nil, fmt.Errorf("charge amount must not be negative: %d", amount)
	}

	receipt := &usecase.Receipt{
		Reference: uuid.NewString(),
		Method:    method,
		Amount:    amount,
		ChargedAt: s.now(),
	}

	s.logger.Info("payment charged",
		slog.String("order_id", orderID),
		slog.String("reference", receipt.Reference),
		slog.String("method", method),
		slog.Int64("amount", amount),
	)

	return receipt, nil
}
