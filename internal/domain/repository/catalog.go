package repository

import (
	"context"

	"github.com/polkiloo/shopfront/internal/domain/model"
)

// CatalogRepository describes access to the product catalog.
type CatalogRepository interface {
	// List returns all products in stable insertion order.
	List(ctx context.Context) ([]model.Product, error)
	GetByID(ctx context.Context, id int64) (*model.Product, error)
	// DecrementStock atomically checks and reserves stock for a placement.
	// Fails with ErrInsufficientStock when quantity exceeds current stock.
	DecrementStock(ctx context.Context, id int64, quantity int) error
	// RestoreStock returns previously reserved stock after a failed placement.
	RestoreStock(ctx context.Context, id int64, quantity int) error
}
