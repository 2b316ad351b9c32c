package handler

import (
	"context"
	"net/http"

	"github.com/GuglielmoCerri/Backoffice-WebApp/internal/model"
)

type analyticsProvider interface {
	ProductsByCategory(ctx context.Context) ([]model.CategorySummary, error)
	ProductsByPriceRange(ctx context.Context) ([]model.PriceRangeBucket, error)
	CustomersByLocation(ctx context.Context) ([]model.LocationShare, error)
	TopSelledProducts(ctx context.Context) ([]model.ProductSales, error)
	Trend(ctx context.Context) ([]model.TrendPoint, error)
}

type AnalyticsHandler struct {
	service analyticsProvider
}

func NewAnalyticsHandler(service analyticsProvider) *AnalyticsHandler {
	return &AnalyticsHandler{service: service}
}

func (h *AnalyticsHandler) ProductsByCategory(w http.ResponseWriter, r *http.Request) {
	out, err := h.service.ProductsByCategory(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *AnalyticsHandler) ProductsByPriceRange(w http.ResponseWriter, r *http.Request) {
	out, err := h.service.ProductsByPriceRange(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *AnalyticsHandler) CustomersByLocation(w http.ResponseWriter, r *http.Request) {
	out, err := h.service.CustomersByLocation(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *AnalyticsHandler) TopSelledProducts(w http.ResponseWriter, r *http.Request) {
	out, err := h.service.TopSelledProducts(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *AnalyticsHandler) Trend(w http.ResponseWriter, r *http.Request) {
	out, err := h.service.Trend(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}
