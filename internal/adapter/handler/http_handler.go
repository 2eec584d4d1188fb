package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rl1809/stock-cache/internal/core/service"
)

type HTTPHandler struct {
	cache *service.StockCache
}

type StockResponse struct {
	ProductID string `json:"product_id"`
	Stock     int64  `json:"stock"`
}

type MutationRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
}

type MutationResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func NewHTTPHandler(cache *service.StockCache) *HTTPHandler {
	return &HTTPHandler{cache: cache}
}

func (h *HTTPHandler) GetStock(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	productID := r.URL.Query().Get("product_id")
	if productID == "" {
		writeJSON(w, http.StatusBadRequest, MutationResponse{
			Success: false,
			Message: "missing product_id",
		})
		return
	}

	stock, err := h.cache.GetStock(r.Context(), productID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, StockResponse{ProductID: productID, Stock: stock})
}

func (h *HTTPHandler) RetrieveStock(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeMutation(w, r)
	if !ok {
		return
	}

	applied, err := h.cache.TryRetrieveStock(r.Context(), req.ProductID, req.Quantity)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if !applied {
		writeJSON(w, http.StatusConflict, MutationResponse{
			Success: false,
			Message: "insufficient stock",
		})
		return
	}

	writeJSON(w, http.StatusOK, MutationResponse{
		Success: true,
		Message: "stock retrieved",
	})
}

func (h *HTTPHandler) AddStock(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeMutation(w, r)
	if !ok {
		return
	}

	if err := h.cache.AddStock(r.Context(), req.ProductID, req.Quantity); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, MutationResponse{
		Success: true,
		Message: "stock added",
	})
}

func (h *HTTPHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func decodeMutation(w http.ResponseWriter, r *http.Request) (MutationRequest, bool) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return MutationRequest{}, false
	}

	var req MutationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, MutationResponse{
			Success: false,
			Message: "invalid request body",
		})
		return MutationRequest{}, false
	}

	if req.ProductID == "" {
		writeJSON(w, http.StatusBadRequest, MutationResponse{
			Success: false,
			Message: "missing product_id",
		})
		return MutationRequest{}, false
	}

	return req, true
}

func writeServiceError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	message := "internal error"

	if errors.Is(err, service.ErrInvalidQuantity) {
		status = http.StatusBadRequest
		message = "quantity must be positive"
	} else if errors.Is(err, service.ErrWarehouseUnavailable) {
		status = http.StatusServiceUnavailable
		message = "warehouse unavailable"
	}

	writeJSON(w, status, MutationResponse{Success: false, Message: message})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
