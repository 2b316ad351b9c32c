package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/GuglielmoCerri/Backoffice-WebApp/internal/model"
	"github.com/GuglielmoCerri/Backoffice-WebApp/internal/repository"
	"github.com/GuglielmoCerri/Backoffice-WebApp/pkg/apierror"
)

type customerStore interface {
	List(ctx context.Context, params repository.ListParams) ([]model.Customer, error)
	FindByID(ctx context.Context, id int64) (model.Customer, error)
	Create(ctx context.Context, req model.CustomerRequest) (model.Customer, error)
	Update(ctx context.Context, id int64, req model.CustomerRequest) (model.Customer, error)
	Delete(ctx context.Context, id int64) error
}

type CustomerHandler struct {
	store customerStore
}

func NewCustomerHandler(store customerStore) *CustomerHandler {
	return &CustomerHandler{store: store}
}

func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	params := repository.ParseListParams(r.URL.Query(), repository.CustomerFields)

	customers, err := h.store.List(r.Context(), params)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, customers)
}

func (h *CustomerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	customer, err := h.store.FindByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, customer)
}

func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	req, err := decodeCustomerRequest(r)
	if err != nil {
		writeError(w, err)
		return
	}

	customer, err := h.store.Create(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, customer)
}

func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	req, err := decodeCustomerRequest(r)
	if err != nil {
		writeError(w, err)
		return
	}

	customer, err := h.store.Update(r.Context(), id, req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, customer)
}

func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

func decodeCustomerRequest(r *http.Request) (model.CustomerRequest, error) {
	var req model.CustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return model.CustomerRequest{}, apierror.New("BAD_REQUEST", "invalid JSON body", "", http.StatusBadRequest)
	}
	if strings.TrimSpace(req.Name) == "" {
		return model.CustomerRequest{}, apierror.New("BAD_REQUEST", "name is required", "name", http.StatusBadRequest)
	}
	return req, nil
}

func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, apierror.New("BAD_REQUEST", "invalid id", chi.URLParam(r, "id"), http.StatusBadRequest)
	}
	return id, nil
}
