package memory

import (
	"context"
	"log/slog"

	domainErrors "github.com/polkiloo/shopfront/internal/domain/errors"
	"github.com/polkiloo/shopfront/internal/domain/model"
)

// List returns a copy of the catalog in insertion order.
func (r *catalogRepository) List(ctx context.Context) ([]model.Product, error) {
	s := r.storage
	s.mu.RLock()
	defer s.mu.RUnlock()

	products := make([]model.Product, len(s.products))
	copy(products, s.products)
	return products, nil
}

// GetByID returns a copy of the product or ErrProductNotFound.
func (r *catalogRepository) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	s := r.storage
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.products {
		if s.products[i].ID == id {
			product := s.products[i]
			return &product, nil
		}
	}
	return nil, domainErrors.ErrProductNotFound
}

// DecrementStock checks and reserves stock inside one critical section.
func (r *catalogRepository) DecrementStock(ctx context.Context, id int64, quantity int) error {
	if quantity <= 0 {
		return domainErrors.ErrInvalidQuantity
	}

	s := r.storage
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID != id {
			continue
		}
		if s.products[i].Stock < quantity {
			return domainErrors.ErrInsufficientStock
		}
		s.products[i].Stock -= quantity
		return nil
	}
	return domainErrors.ErrProductNotFound
}

// RestoreStock compensates a reservation after a failed placement.
func (r *catalogRepository) RestoreStock(ctx context.Context, id int64, quantity int) error {
	if quantity <= 0 {
		return domainErrors.ErrInvalidQuantity
	}

	s := r.storage
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID != id {
			continue
		}
		s.products[i].Stock += quantity
		return nil
	}
	s.logger.Warn("restore stock for unknown product", slog.Int64("product_id", id))
	return domainErrors.ErrProductNotFound
}
