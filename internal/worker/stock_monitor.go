package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/polkiloo/shopfront/internal/domain/model"
)

// CatalogFacade exposes the subset of application functionality required by the monitor.
type CatalogFacade interface {
	Products(ctx context.Context) ([]model.Product, error)
}

// StockMonitor periodically scans the catalog and reports products whose
// stock has fallen to the configured threshold. It only reads and logs;
// catalog state is never mutated here.
type StockMonitor struct {
	facade       CatalogFacade
	pollInterval time.Duration
	threshold    int
	workers      int
	logger       *slog.Logger

	jobs   chan model.Product
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewStockMonitor constructs the low-stock monitor worker pool.
func NewStockMonitor(facade CatalogFacade, pollInterval time.Duration, threshold, workers int, logger *slog.Logger) *StockMonitor {
	if workers <= 0 {
		workers = 1
	}
	if threshold < 0 {
		threshold = 0
	}
	return &StockMonitor{
		facade:       facade,
		pollInterval: pollInterval,
		threshold:    threshold,
		workers:      workers,
		logger:       logger,
		jobs:         make(chan model.Product, workers*4),
	}
}

// Start launches background scanning.
func (m *StockMonitor) Start(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	m.cancel = cancel

	for i := 0; i < m.workers; i++ {
		m.wg.Add(1)
		go m.worker(runCtx)
	}

	m.wg.Add(1)
	go m.dispatch(runCtx)
}

// Stop waits for all workers to finish.
func (m *StockMonitor) Stop() {
	m.mu.Lock()
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	m.mu.Unlock()

	m.wg.Wait()
}

func (m *StockMonitor) dispatch(ctx context.Context) {
	defer m.wg.Done()
	defer close(m.jobs)
	ticker := time.NewTicker(m.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.scanAndDispatch(ctx)
		}
	}
}

func (m *StockMonitor) scanAndDispatch(ctx context.Context) {
	products, err := m.facade.Products(ctx)
	if err != nil {
		m.logger.Error("catalog scan failed", slog.String("error", err.Error()))
		return
	}
	for _, product := range products {
		if product.Stock > m.threshold {
			continue
		}
		select {
		case <-ctx.Done():
			return
		case m.jobs <- product:
		}
	}
}

func (m *StockMonitor) worker(ctx context.Context) {
	defer m.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case product, ok := <-m.jobs:
			if !ok {
				return
			}
			m.report(product)
		}
	}
}

func (m *StockMonitor) report(product model.Product) {
	m.logger.Warn("low stock",
		slog.Int64("product_id", product.ID),
		slog.String("name", product.Name),
		slog.Int("stock", product.Stock),
		slog.Int("threshold", m.threshold),
	)
}
