package setstatus

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/dulceria/order-svc/internal/service/errs"
	"github.com/dulceria/order-svc/internal/transport/http/httperr"
)

type service interface {
	SetStatus(ctx context.Context, orderID int64, rawStatus string) (string, error)
}

type setStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// Validate validates the set status request.
func (r *setStatusRequest) Validate() error {
	return validator.New().Struct(r)
}

type setStatusResponse struct {
	Message string `json:"message"`
}

// SetStatus handles the admin decision on an order: approve (deducts stock,
// all-or-nothing), reject, or a same-status no-op.
func SetStatus(w http.ResponseWriter, r *http.Request, service service) {
	orderID, err := strconv.ParseInt(chi.URLParam(r, "orderID"), 10, 64)
	if err != nil {
		httperr.Write(w, errs.NewValidation("invalid order id"))

		return
	}

	req := setStatusRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		slog.Error("Error decoding request body for set status", "error", err)

		return
	}

	if err := req.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		slog.Error("Error validating request body for set status", "error", err)

		return
	}

	message, err := service.SetStatus(r.Context(), orderID, req.Status)
	if err != nil {
		httperr.Write(w, err)

		return
	}

	httperr.WriteJSON(w, http.StatusOK, setStatusResponse{Message: message})
}
