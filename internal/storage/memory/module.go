package memory

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/shopfront/internal/config"
	"github.com/polkiloo/shopfront/internal/domain/repository"
)

// Module wires in-memory storage and repository adapters.
var Module = fx.Options(
	fx.Provide(newStorage),
	fx.Provide(
		func(s *Storage) repository.CatalogRepository { return s.Catalog() },
		func(s *Storage) repository.OrderRepository { return s.Orders() },
	),
)

type storageParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newStorage(p storageParams) (*Storage, error) {
	if p.Config.CatalogFile != "" {
		return NewFromFile(p.Config.CatalogFile, p.Logger)
	}
	return New(SeedCatalog(), p.Logger), nil
}
