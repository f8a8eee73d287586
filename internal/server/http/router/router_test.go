package router

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/shopfront/internal/adapter/payment"
	"github.com/polkiloo/shopfront/internal/app"
	"github.com/polkiloo/shopfront/internal/server/http/dto"
	"github.com/polkiloo/shopfront/internal/server/http/handlers"
	"github.com/polkiloo/shopfront/internal/storage/memory"
	testhelpers "github.com/polkiloo/shopfront/internal/test"
	"github.com/polkiloo/shopfront/internal/usecase"
)

func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	storage := memory.New(memory.SeedCatalog(), logger)
	catalogUC := usecase.NewCatalogUseCase(storage.Catalog())
	orderUC := usecase.NewOrderUseCase(storage.Catalog(), storage.Orders())
	paymentUC := usecase.NewPaymentUseCase(storage.Orders(), payment.NewSimulator(logger))
	facade := app.NewCommerceFacade(catalogUC, orderUC, paymentUC)

	return Setup(facade, logger)
}

func doJSON(t *testing.T, engine *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	return resp
}

func TestOrderLifecycleThroughRouter(t *testing.T) {
	engine := newTestEngine(t)

	// Catalog is served with the seed data.
	resp := doJSON(t, engine, http.MethodGet, "/api/products", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for products, got %d", resp.Code)
	}
	var productList dto.ProductListResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &productList); err != nil {
		t.Fatalf("decode products: %v", err)
	}
	if len(productList.Products) != 5 || productList.Products[0].Stock != 15 {
		t.Fatalf("unexpected seed catalog %+v", productList.Products)
	}

	// Placing two laptops captures total 160000 and reserves stock.
	resp = doJSON(t, engine, http.MethodPost, "/api/order", map[string]any{
		"product_id": 1, "quantity": 2, "customer_name": "Alice",
	})
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201 for placement, got %d: %s", resp.Code, resp.Body.String())
	}
	var placed dto.OrderEnvelope
	if err := json.Unmarshal(resp.Body.Bytes(), &placed); err != nil {
		t.Fatalf("decode order: %v", err)
	}
	if placed.Order.OrderID != "ORD00001" {
		t.Fatalf("expected ORD00001, got %s", placed.Order.OrderID)
	}
	if placed.Order.TotalAmount != 160000 {
		t.Fatalf("expected total 160000, got %d", placed.Order.TotalAmount)
	}
	if placed.Order.Status != "Order Placed" {
		t.Fatalf("expected status display, got %q", placed.Order.Status)
	}

	resp = doJSON(t, engine, http.MethodGet, "/api/products", nil)
	_ = json.Unmarshal(resp.Body.Bytes(), &productList)
	if productList.Products[0].Stock != 13 {
		t.Fatalf("expected stock 13 after placement, got %d", productList.Products[0].Stock)
	}

	// Tracking returns the stored order without side effects.
	resp = doJSON(t, engine, http.MethodGet, "/api/track/ORD00001", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for track, got %d", resp.Code)
	}
	var tracked dto.OrderEnvelope
	_ = json.Unmarshal(resp.Body.Bytes(), &tracked)
	if tracked.Order.PaymentStatus != "Pending" {
		t.Fatalf("expected pending payment before pay, got %q", tracked.Order.PaymentStatus)
	}

	// Payment with UPI confirms the order.
	resp = doJSON(t, engine, http.MethodPost, "/api/payment/ORD00001", map[string]string{"payment_method": "UPI"})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for payment, got %d", resp.Code)
	}
	var paid dto.OrderEnvelope
	_ = json.Unmarshal(resp.Body.Bytes(), &paid)
	if paid.Order.PaymentMethod != "UPI" {
		t.Fatalf("expected UPI, got %q", paid.Order.PaymentMethod)
	}
	if paid.Order.Status != "Payment Confirmed - Preparing for Shipment" {
		t.Fatalf("unexpected status display %q", paid.Order.Status)
	}
	if paid.Order.PaymentStatus != "Completed" {
		t.Fatalf("expected completed display, got %q", paid.Order.PaymentStatus)
	}

	// The listing shows the single paid order.
	resp = doJSON(t, engine, http.MethodGet, "/api/orders", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for orders, got %d", resp.Code)
	}
	var listing dto.OrderListResponse
	_ = json.Unmarshal(resp.Body.Bytes(), &listing)
	if len(listing.Orders) != 1 || listing.Orders[0].PaymentMethod != "UPI" {
		t.Fatalf("unexpected listing %+v", listing.Orders)
	}
}

func TestRouterFailureScenarios(t *testing.T) {
	engine := newTestEngine(t)

	resp := doJSON(t, engine, http.MethodPost, "/api/order", map[string]any{
		"product_id": 99, "quantity": 1, "customer_name": "Bob",
	})
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404 for unknown product, got %d", resp.Code)
	}

	resp = doJSON(t, engine, http.MethodPost, "/api/order", map[string]any{
		"product_id": 1, "quantity": 1000, "customer_name": "Carl",
	})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for oversize order, got %d", resp.Code)
	}

	// Failed placements leave the catalog untouched.
	resp = doJSON(t, engine, http.MethodGet, "/api/products", nil)
	var productList dto.ProductListResponse
	_ = json.Unmarshal(resp.Body.Bytes(), &productList)
	if productList.Products[0].Stock != 15 {
		t.Fatalf("expected stock unchanged at 15, got %d", productList.Products[0].Stock)
	}

	resp = doJSON(t, engine, http.MethodGet, "/api/track/ORD00042", nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404 for unknown order, got %d", resp.Code)
	}

	resp = doJSON(t, engine, http.MethodPost, "/api/payment/ORD00042", nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404 for paying unknown order, got %d", resp.Code)
	}
}

func TestRouterRepaymentUpdatesOnlyTargetOrder(t *testing.T) {
	engine := newTestEngine(t)

	for _, customer := range []string{"Alice", "Dora"} {
		resp := doJSON(t, engine, http.MethodPost, "/api/order", map[string]any{
			"product_id": 1, "quantity": 1, "customer_name": customer,
		})
		if resp.Code != http.StatusCreated {
			t.Fatalf("expected status 201, got %d", resp.Code)
		}
	}

	// Pay the first order twice with different methods.
	doJSON(t, engine, http.MethodPost, "/api/payment/ORD00001", nil)
	resp := doJSON(t, engine, http.MethodPost, "/api/payment/ORD00001", map[string]string{"payment_method": "UPI"})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for re-payment, got %d", resp.Code)
	}

	var listing dto.OrderListResponse
	resp = doJSON(t, engine, http.MethodGet, "/api/orders", nil)
	_ = json.Unmarshal(resp.Body.Bytes(), &listing)
	if len(listing.Orders) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(listing.Orders))
	}
	if listing.Orders[0].PaymentMethod != "UPI" {
		t.Fatalf("expected latest method UPI, got %q", listing.Orders[0].PaymentMethod)
	}
	if listing.Orders[1].PaymentStatus != "Pending" {
		t.Fatalf("expected second order untouched, got %q", listing.Orders[1].PaymentStatus)
	}
}

func TestRouterDefaultPaymentMethod(t *testing.T) {
	engine := newTestEngine(t)

	doJSON(t, engine, http.MethodPost, "/api/order", map[string]any{
		"product_id": 2, "customer_name": "Eve",
	})
	resp := doJSON(t, engine, http.MethodPost, "/api/payment/ORD00001", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var paid dto.OrderEnvelope
	_ = json.Unmarshal(resp.Body.Bytes(), &paid)
	if paid.Order.PaymentMethod != usecase.DefaultPaymentMethod {
		t.Fatalf("expected default method, got %q", paid.Order.PaymentMethod)
	}
}

func TestRouterAllowsAnyOrigin(t *testing.T) {
	engine := newTestEngine(t)

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	req.Header.Set("Origin", "https://shop.example.com")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)

	if got := resp.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("expected wildcard CORS header, got %q", got)
	}
}

func TestRouterServesHome(t *testing.T) {
	engine := newTestEngine(t)

	resp := doJSON(t, engine, http.MethodGet, "/", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for home, got %d", resp.Code)
	}
	var payload map[string]any
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode home document: %v", err)
	}
	if payload["version"] != "1.0" {
		t.Fatalf("unexpected home document %v", payload)
	}
}

var _ handlers.CommerceFacade = (*testhelpers.CommerceFacadeStub)(nil)
