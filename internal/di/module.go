package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/shopfront/internal/adapter/payment"
	"github.com/polkiloo/shopfront/internal/app"
	"github.com/polkiloo/shopfront/internal/config"
	"github.com/polkiloo/shopfront/internal/logger"
	"github.com/polkiloo/shopfront/internal/server/http/handlers"
	"github.com/polkiloo/shopfront/internal/server/http/router"
	"github.com/polkiloo/shopfront/internal/storage/memory"
	"github.com/polkiloo/shopfront/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		memory.Module,
		payment.Module,
		usecase.Module,
		fx.Provide(func(p payment.Processor) usecase.Charger { return p }),
		fx.Provide(func(f *app.CommerceFacade) handlers.CommerceFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
