package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/rl1809/stock-cache/internal/core/domain"
	"github.com/rl1809/stock-cache/internal/core/service"
)

type fakeStore struct {
	mu   sync.Mutex
	data map[string]int64
}

func (f *fakeStore) Init(ctx context.Context) error { return nil }

func (f *fakeStore) Get(ctx context.Context, productID string) (int64, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	stock, found := f.data[productID]
	return stock, found, nil
}

func (f *fakeStore) Put(ctx context.Context, productID string, stock int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data[productID] = stock
	return nil
}

func (f *fakeStore) ListAll(ctx context.Context) ([]domain.StockEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	entries := make([]domain.StockEntry, 0, len(f.data))
	for id, stock := range f.data {
		entries = append(entries, domain.StockEntry{ProductID: id, Stock: stock})
	}
	return entries, nil
}

type fakeWarehouse struct {
	baselines   map[string]int64
	baselineErr error
}

func (f *fakeWarehouse) GetBaselineStock(ctx context.Context, productID string) (int64, error) {
	if f.baselineErr != nil {
		return 0, f.baselineErr
	}
	return f.baselines[productID], nil
}

func (f *fakeWarehouse) PushStock(ctx context.Context, productID string, stock int64) error {
	return nil
}

func newTestHandler(store *fakeStore, wh *fakeWarehouse) (*HTTPHandler, func()) {
	logger := zerolog.Nop()
	reconciler := service.NewReconciler(store, wh, 64, logger)
	reconciler.Start(1)
	cache := service.NewStockCache(store, wh, reconciler, logger)
	return NewHTTPHandler(cache), reconciler.Close
}

func TestGetStock_ReturnsCachedValue(t *testing.T) {
	store := &fakeStore{data: map[string]int64{"item-1": 12}}
	h, done := newTestHandler(store, &fakeWarehouse{baselines: map[string]int64{}})
	defer done()

	req := httptest.NewRequest(http.MethodGet, "/api/stock?product_id=item-1", nil)
	w := httptest.NewRecorder()
	h.GetStock(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp StockResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.ProductID != "item-1" || resp.Stock != 12 {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestGetStock_MissingProductID(t *testing.T) {
	store := &fakeStore{data: map[string]int64{}}
	h, done := newTestHandler(store, &fakeWarehouse{baselines: map[string]int64{}})
	defer done()

	req := httptest.NewRequest(http.MethodGet, "/api/stock", nil)
	w := httptest.NewRecorder()
	h.GetStock(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestGetStock_WarehouseDown(t *testing.T) {
	store := &fakeStore{data: map[string]int64{}}
	wh := &fakeWarehouse{baselineErr: errors.New("unreachable")}
	h, done := newTestHandler(store, wh)
	defer done()

	req := httptest.NewRequest(http.MethodGet, "/api/stock?product_id=item-1", nil)
	w := httptest.NewRecorder()
	h.GetStock(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503, got %d", w.Code)
	}
}

func TestRetrieveStock_Success(t *testing.T) {
	store := &fakeStore{data: map[string]int64{"item-1": 10}}
	h, done := newTestHandler(store, &fakeWarehouse{baselines: map[string]int64{}})
	defer done()

	body := strings.NewReader(`{"product_id":"item-1","quantity":4}`)
	req := httptest.NewRequest(http.MethodPost, "/api/retrieve", body)
	w := httptest.NewRecorder()
	h.RetrieveStock(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	stock, _, _ := store.Get(context.Background(), "item-1")
	if stock != 6 {
		t.Errorf("expected stock 6, got %d", stock)
	}
}

func TestRetrieveStock_Insufficient(t *testing.T) {
	store := &fakeStore{data: map[string]int64{"item-1": 3}}
	h, done := newTestHandler(store, &fakeWarehouse{baselines: map[string]int64{}})
	defer done()

	body := strings.NewReader(`{"product_id":"item-1","quantity":5}`)
	req := httptest.NewRequest(http.MethodPost, "/api/retrieve", body)
	w := httptest.NewRecorder()
	h.RetrieveStock(w, req)

	if w.Code != http.StatusConflict {
		t.Errorf("expected 409, got %d", w.Code)
	}

	var resp MutationResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Success {
		t.Error("expected success=false")
	}
}

func TestRetrieveStock_InvalidQuantity(t *testing.T) {
	store := &fakeStore{data: map[string]int64{"item-1": 3}}
	h, done := newTestHandler(store, &fakeWarehouse{baselines: map[string]int64{}})
	defer done()

	body := strings.NewReader(`{"product_id":"item-1","quantity":0}`)
	req := httptest.NewRequest(http.MethodPost, "/api/retrieve", body)
	w := httptest.NewRecorder()
	h.RetrieveStock(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestRetrieveStock_MethodNotAllowed(t *testing.T) {
	store := &fakeStore{data: map[string]int64{}}
	h, done := newTestHandler(store, &fakeWarehouse{baselines: map[string]int64{}})
	defer done()

	req := httptest.NewRequest(http.MethodGet, "/api/retrieve", nil)
	w := httptest.NewRecorder()
	h.RetrieveStock(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", w.Code)
	}
}

func TestAddStock_Success(t *testing.T) {
	store := &fakeStore{data: map[string]int64{"item-1": 10}}
	h, done := newTestHandler(store, &fakeWarehouse{baselines: map[string]int64{}})
	defer done()

	body := strings.NewReader(`{"product_id":"item-1","quantity":5}`)
	req := httptest.NewRequest(http.MethodPost, "/api/add", body)
	w := httptest.NewRecorder()
	h.AddStock(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	stock, _, _ := store.Get(context.Background(), "item-1")
	if stock != 15 {
		t.Errorf("expected stock 15, got %d", stock)
	}
}

func TestAddStock_InvalidBody(t *testing.T) {
	store := &fakeStore{data: map[string]int64{}}
	h, done := newTestHandler(store, &fakeWarehouse{baselines: map[string]int64{}})
	defer done()

	req := httptest.NewRequest(http.MethodPost, "/api/add", strings.NewReader("{not json"))
	w := httptest.NewRecorder()
	h.AddStock(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestHealthCheck(t *testing.T) {
	store := &fakeStore{data: map[string]int64{}}
	h, done := newTestHandler(store, &fakeWarehouse{baselines: map[string]int64{}})
	defer done()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	h.HealthCheck(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}
