package createorder

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/dulceria/order-svc/internal/service/models/order"
	"github.com/dulceria/order-svc/internal/service/services/ordersvc"
	"github.com/dulceria/order-svc/internal/transport/http/httperr"
)

// service is an interface for the service layer.
type service interface {
	Create(ctx context.Context, customerID int64, lines []ordersvc.LineRequest) (*order.Order, error)
}

// itemInCreateOrderRequest represents one requested line. Item id and
// quantity are deliberately unvalidated here: malformed lines are skipped by
// the service, not rejected.
type itemInCreateOrderRequest struct {
	CatalogItemID int64 `json:"catalogItemId"`
	Quantity      int   `json:"quantity"`
}

// createOrderRequest represents a create order request.
type createOrderRequest struct {
	CustomerID int64                      `json:"customerId" validate:"gt=0"`
	Items      []itemInCreateOrderRequest `json:"items"      validate:"required,min=1"`
}

// Validate validates the create order request.
func (r *createOrderRequest) Validate() error {
	return validator.New().Struct(r)
}

type createOrderResponse struct {
	ID         int64  `json:"id"`
	TotalCents int64  `json:"totalCents"`
	Currency   string `json:"currency"`
	Status     string `json:"status"`
}

// CreateOrder handles the order creation request.
func CreateOrder(w http.ResponseWriter, r *http.Request, service service) {
	req := createOrderRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		slog.Error("Error decoding request body for create order", "error", err)

		return
	}

	if err := req.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		slog.Error("Error validating request body for create order", "error", err)

		return
	}

	lines := make([]ordersvc.LineRequest, len(req.Items))
	for i, it := range req.Items {
		lines[i] = ordersvc.LineRequest{
			CatalogItemID: it.CatalogItemID,
			Quantity:      it.Quantity,
		}
	}

	created, err := service.Create(r.Context(), req.CustomerID, lines)
	if err != nil {
		httperr.Write(w, err)

		return
	}

	httperr.WriteJSON(w, http.StatusCreated, createOrderResponse{
		ID:         created.ID,
		TotalCents: created.TotalCents,
		Currency:   created.TotalCurrency.String(),
		Status:     created.Status.String(),
	})
}
