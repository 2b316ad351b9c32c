package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/GuglielmoCerri/Backoffice-WebApp/internal/model"
	"github.com/GuglielmoCerri/Backoffice-WebApp/pkg/apierror"
)

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

// writeError maps internal errors onto the boundary surface. The four token
// errors deliberately share one response: the client learns the request was
// unauthorized, not which check failed.
func writeError(w http.ResponseWriter, err error) {
	var apiErr *apierror.APIError
	if errors.As(err, &apiErr) {
		writeMessage(w, apiErr.HTTPStatus, apiErr.Message)
		return
	}

	switch {
	case errors.Is(err, model.ErrMissingField):
		writeMessage(w, http.StatusBadRequest, "Username and password are both required")
	case errors.Is(err, model.ErrInvalidCredentials):
		writeMessage(w, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, model.ErrDuplicateUsername):
		writeMessage(w, http.StatusConflict, "Username already exists")
	case errors.Is(err, model.ErrTokenMalformed),
		errors.Is(err, model.ErrBadSignature),
		errors.Is(err, model.ErrTokenExpired),
		errors.Is(err, model.ErrWrongClass):
		writeMessage(w, http.StatusUnauthorized, "Invalid or expired token")
	case errors.Is(err, model.ErrCustomerNotFound),
		errors.Is(err, model.ErrProductNotFound),
		errors.Is(err, model.ErrCategoryNotFound):
		writeMessage(w, http.StatusNotFound, err.Error())
	case errors.Is(err, model.ErrInvalidInput):
		writeMessage(w, http.StatusBadRequest, "Invalid input")
	default:
		slog.Error("unhandled error in writeError", "error", err.Error())
		writeMessage(w, http.StatusInternalServerError, "Unexpected server error")
	}
}
