package payment

import (
	"log/slog"

	"go.uber.org/fx"
)

// Module exposes payment processor implementation to fx graph.
var Module = fx.Provide(newProcessor)

type processorParams struct {
	fx.In

	Logger *slog.Logger
}

func newProcessor(p processorParams) Processor {
	return NewSimulator(p.Logger)
}
