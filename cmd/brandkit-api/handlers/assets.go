// Package handlers provides HTTP handlers for the brandkit API.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/b-ciq/brandkit/internal/inventory"
	"github.com/b-ciq/brandkit/internal/match"
	"github.com/b-ciq/brandkit/internal/observability"
)

// AssetsHandler handles brand-asset lookup requests.
type AssetsHandler struct {
	logger  *observability.Logger
	service *match.Service
}

// NewAssetsHandler creates a new assets handler.
func NewAssetsHandler(logger *observability.Logger, service *match.Service) *AssetsHandler {
	return &AssetsHandler{
		logger:  logger,
		service: service,
	}
}

// QueryRequestDTO represents the API request for an asset lookup.
type QueryRequestDTO struct {
	Request    string `json:"request"`
	Background string `json:"background,omitempty"`
}

// Query handles POST /api/v1/assets/query.
func (h *AssetsHandler) Query(w http.ResponseWriter, r *http.Request) {
	var reqDTO QueryRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&reqDTO); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if reqDTO.Request == "" {
		h.writeError(w, http.StatusBadRequest, "request is required", "")
		return
	}
	if reqDTO.Background != "" && reqDTO.Background != "light" && reqDTO.Background != "dark" {
		h.writeError(w, http.StatusBadRequest, "background must be light or dark", "")
		return
	}

	// Every outcome, including an unreachable inventory, is a 200 payload.
	resp := h.service.GetBrandAsset(r.Context(), reqDTO.Request, reqDTO.Background)
	h.writeJSON(w, http.StatusOK, resp)
}

// List handles GET /api/v1/assets.
func (h *AssetsHandler) List(w http.ResponseWriter, r *http.Request) {
	listing, err := h.service.ListAssets(r.Context())
	if err != nil {
		h.writeUnavailable(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, listing)
}

// Products handles GET /api/v1/products.
func (h *AssetsHandler) Products(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.Products(r.Context())
	if err != nil {
		h.writeUnavailable(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"products": products})
}

// Guidelines handles GET /api/v1/guidelines.
func (h *AssetsHandler) Guidelines(w http.ResponseWriter, r *http.Request) {
	g, err := h.service.Guidelines(r.Context())
	if err != nil {
		h.writeUnavailable(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, g)
}

// Refresh handles POST /api/v1/refresh.
func (h *AssetsHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Refresh(r.Context()); err != nil {
		h.writeUnavailable(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "refreshed"})
}

func (h *AssetsHandler) writeUnavailable(w http.ResponseWriter, err error) {
	if errors.Is(err, inventory.ErrUnavailable) {
		h.writeError(w, http.StatusServiceUnavailable, "asset inventory unavailable", "")
		return
	}
	h.logger.Error().Err(err).Msg("Request failed")
	h.writeError(w, http.StatusInternalServerError, "internal error", "")
}

func (h *AssetsHandler) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error().Err(err).Msg("Failed to encode response")
	}
}

func (h *AssetsHandler) writeError(w http.ResponseWriter, status int, message, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	resp := map[string]string{"error": message}
	if detail != "" {
		resp["detail"] = detail
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error().Err(err).Msg("Failed to encode error response")
	}
}
