package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/GuglielmoCerri/Backoffice-WebApp/internal/model"
	"github.com/GuglielmoCerri/Backoffice-WebApp/pkg/apierror"
)

type categoryStore interface {
	List(ctx context.Context) ([]model.Category, error)
	FindByID(ctx context.Context, id int64) (model.Category, error)
	Create(ctx context.Context, name string, description string) (model.Category, error)
	Update(ctx context.Context, id int64, req model.CategoryRequest) (model.Category, error)
	Delete(ctx context.Context, id int64) error
}

type CategoryHandler struct {
	store categoryStore
}

func NewCategoryHandler(store categoryStore) *CategoryHandler {
	return &CategoryHandler{store: store}
}

func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.store.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, categories)
}

func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	category, err := h.store.FindByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, category)
}

func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	req, err := decodeCategoryRequest(r)
	if err != nil {
		writeError(w, err)
		return
	}

	category, err := h.store.Create(r.Context(), req.Name, req.Description)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, category)
}

func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	req, err := decodeCategoryRequest(r)
	if err != nil {
		writeError(w, err)
		return
	}

	category, err := h.store.Update(r.Context(), id, req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, category)
}

func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

func decodeCategoryRequest(r *http.Request) (model.CategoryRequest, error) {
	var req model.CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return model.CategoryRequest{}, apierror.New("BAD_REQUEST", "invalid JSON body", "", http.StatusBadRequest)
	}
	if strings.TrimSpace(req.Name) == "" {
		return model.CategoryRequest{}, apierror.New("BAD_REQUEST", "name is required", "name", http.StatusBadRequest)
	}
	return req, nil
}
