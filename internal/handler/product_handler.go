package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/GuglielmoCerri/Backoffice-WebApp/internal/model"
	"github.com/GuglielmoCerri/Backoffice-WebApp/pkg/apierror"
)

type productStore interface {
	List(ctx context.Context) ([]model.Product, error)
	FindByID(ctx context.Context, id int64) (model.Product, error)
	Create(ctx context.Context, req model.ProductRequest) (model.Product, error)
	Update(ctx context.Context, id int64, req model.ProductRequest) (model.Product, error)
	Delete(ctx context.Context, id int64) error
}

type ProductHandler struct {
	store productStore
}

func NewProductHandler(store productStore) *ProductHandler {
	return &ProductHandler{store: store}
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.store.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, products)
}

func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	product, err := h.store.FindByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	req, err := decodeProductRequest(r)
	if err != nil {
		writeError(w, err)
		return
	}

	product, err := h.store.Create(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, product)
}

func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	req, err := decodeProductRequest(r)
	if err != nil {
		writeError(w, err)
		return
	}

	product, err := h.store.Update(r.Context(), id, req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.store.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func decodeProductRequest(r *http.Request) (model.ProductRequest, error) {
	var req model.ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return model.ProductRequest{}, apierror.New("BAD_REQUEST", "invalid JSON body", "", http.StatusBadRequest)
	}
	if strings.TrimSpace(req.Name) == "" {
		return model.ProductRequest{}, apierror.New("BAD_REQUEST", "name is required", "name", http.StatusBadRequest)
	}
	if req.Price < 0 {
		return model.ProductRequest{}, apierror.New("BAD_REQUEST", "price cannot be negative", "price", http.StatusBadRequest)
	}
	return req, nil
}
