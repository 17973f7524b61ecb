package httperr

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dulceria/order-svc/internal/service/errs"
)

type errorResponse struct {
	Error string `json:"error"`
}

// Write maps service errors onto HTTP status codes: validation and stock
// failures are 400, unknown entities are 404, everything else is 500.
func Write(w http.ResponseWriter, err error) {
	var (
		validationErr *errs.ValidationError
		notFoundErr   *errs.NotFoundError
		stockErr      *errs.InsufficientStockError
	)

	status := http.StatusInternalServerError
	switch {
	case errors.As(err, &validationErr), errors.As(err, &stockErr):
		status = http.StatusBadRequest
	case errors.As(err, &notFoundErr):
		status = http.StatusNotFound
	}

	if status == http.StatusInternalServerError {
		slog.Error("Unhandled service error", "error", err)
	}

	WriteJSON(w, status, errorResponse{Error: err.Error()})
}

// WriteJSON encodes v with the given status code.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Error encoding response", "error", err)
	}
}
