package usecase

import (
	"context"

	"github.com/polkiloo/shopfront/internal/domain/model"
	"github.com/polkiloo/shopfront/internal/domain/repository"
)

// CatalogUseCase exposes product catalog reads.
type CatalogUseCase struct {
	catalog repository.CatalogRepository
}

// NewCatalogUseCase constructs CatalogUseCase.
func NewCatalogUseCase(catalog repository.CatalogRepository) *CatalogUseCase {
	return &CatalogUseCase{catalog: catalog}
}

// List returns all products in catalog order.
func (u *CatalogUseCase) List(ctx context.Context) ([]model.Product, error) {
	return u.catalog.List(ctx)
}

// Get returns a single product by id.
func (u *CatalogUseCase) Get(ctx context.Context, id int64) (*model.Product, error) {
	return u.catalog.GetByID(ctx, id)
}
