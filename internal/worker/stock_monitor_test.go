package worker

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/polkiloo/shopfront/internal/domain/model"
	testhelpers "github.com/polkiloo/shopfront/internal/test"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestNewStockMonitorDefaults(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	monitor := NewStockMonitor(testhelpers.CatalogFacadeStub{}, time.Second, -1, 0, logger)
	if monitor.workers != 1 {
		t.Fatalf("expected workers default to 1, got %d", monitor.workers)
	}
	if monitor.threshold != 0 {
		t.Fatalf("expected threshold clamped to 0, got %d", monitor.threshold)
	}
}

func TestStockMonitorReportsLowStock(t *testing.T) {
	buf := &syncBuffer{}
	logger := slog.New(slog.NewJSONHandler(buf, nil))
	facade := testhelpers.CatalogFacadeStub{ProductsFn: func(context.Context) ([]model.Product, error) {
		return []model.Product{
			{ID: 1, Name: "Laptop", Price: 80000, Stock: 2},
			{ID: 2, Name: "Wireless Mouse", Price: 1200, Stock: 50},
		}, nil
	}}
	monitor := NewStockMonitor(facade, 10*time.Millisecond, 5, 2, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	monitor.Start(ctx)

	deadline := time.After(500 * time.Millisecond)
	for !strings.Contains(buf.String(), "low stock") {
		select {
		case <-deadline:
			t.Fatal("timeout waiting for low stock report")
		case <-time.After(10 * time.Millisecond):
		}
	}

	monitor.Stop()

	logged := buf.String()
	if !strings.Contains(logged, `"name":"Laptop"`) {
		t.Fatalf("expected laptop in low stock report, got %s", logged)
	}
	if strings.Contains(logged, "Wireless Mouse") {
		t.Fatalf("did not expect healthy product in report, got %s", logged)
	}
}

func TestStockMonitorLogsScanFailures(t *testing.T) {
	buf := &syncBuffer{}
	logger := slog.New(slog.NewJSONHandler(buf, nil))
	facade := testhelpers.CatalogFacadeStub{ProductsFn: func(context.Context) ([]model.Product, error) {
		return nil, context.DeadlineExceeded
	}}
	monitor := NewStockMonitor(facade, 10*time.Millisecond, 5, 1, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	monitor.Start(ctx)

	deadline := time.After(500 * time.Millisecond)
	for !strings.Contains(buf.String(), "catalog scan failed") {
		select {
		case <-deadline:
			t.Fatal("timeout waiting for scan failure log")
		case <-time.After(10 * time.Millisecond):
		}
	}

	monitor.Stop()
}

func TestStockMonitorStopWithoutStart(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	monitor := NewStockMonitor(testhelpers.CatalogFacadeStub{}, time.Second, 5, 1, logger)
	monitor.Stop()
}
