package memory

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/polkiloo/shopfront/internal/domain/model"
	"github.com/polkiloo/shopfront/internal/domain/repository"
)

// Storage acts as repository facade backed by process memory. A single
// mutex guards the catalog, the order map and the order counter, so
// check-then-decrement and allocate-then-insert are each one critical
// section.
type Storage struct {
	mu        sync.RWMutex
	products  []model.Product
	orders    map[string]*model.Order
	orderSeq  []string
	nextOrder int64
	logger    *slog.Logger
}

type catalogRepository struct {
	storage *Storage
}

type orderRepository struct {
	storage *Storage
}

// SeedCatalog is the catalog installed when no catalog file is configured.
func SeedCatalog() []model.Product {
	return []model.Product{
		{ID: 1, Name: "Laptop", Price: 80000, Stock: 15},
		{ID: 2, Name: "Wireless Mouse", Price: 1200, Stock: 50},
		{ID: 3, Name: "Mechanical Keyboard", Price: 4500, Stock: 30},
		{ID: 4, Name: "USB-C Hub", Price: 2500, Stock: 25},
		{ID: 5, Name: "Headphones", Price: 3000, Stock: 40},
	}
}

// New creates storage seeded with the given catalog.
func New(catalog []model.Product, logger *slog.Logger) *Storage {
	products := make([]model.Product, len(catalog))
	copy(products, catalog)

	return &Storage{
		products: products,
		orders:   make(map[string]*model.Order),
		logger:   logger,
	}
}

// NewFromFile creates storage whose catalog is loaded from a JSON file.
func NewFromFile(path string, logger *slog.Logger) (*Storage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var entries []struct {
		ID    int64  `json:"id"`
		Name  string `json:"name"`
		Price int64  `json:"price"`
		Stock int    `json:"stock"`
	}
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse catalog file: %w", err)
	}

	catalog := make([]model.Product, 0, len(entries))
	for _, e := range entries {
		catalog = append(catalog, model.Product{ID: e.ID, Name: e.Name, Price: e.Price, Stock: e.Stock})
	}
	return New(catalog, logger), nil
}

var _ repository.Factory = (*Storage)(nil)

// Factory methods for domain repositories.
func (s *Storage) Catalog() repository.CatalogRepository {
	return &catalogRepository{storage: s}
}

func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

// nextOrderID yields the next identifier. Caller must hold the write lock.
// The format is ORD plus a zero-padded five digit counter; beyond 99999 the
// field widens, ids stay unique and monotonic.
func (s *Storage) nextOrderID() string {
	s.nextOrder++
	return fmt.Sprintf("ORD%05d", s.nextOrder)
}
