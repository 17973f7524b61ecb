package listorders

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/schema"

	"github.com/dulceria/order-svc/internal/service/errs"
	"github.com/dulceria/order-svc/internal/service/models/order"
	"github.com/dulceria/order-svc/internal/transport/http/httperr"
)

type service interface {
	List(ctx context.Context, limit, offset int) ([]order.Order, error)
	ListForCustomer(ctx context.Context, customerID int64, limit, offset int) ([]order.Order, error)
}

type listOrdersRequest struct {
	Limit  int `schema:"limit,omitempty"`
	Offset int `schema:"offset,omitempty"`
}

// ListOrders handles the admin view: all orders, most recent first.
func ListOrders(w http.ResponseWriter, r *http.Request, service service) {
	query := &listOrdersRequest{}
	if err := schema.NewDecoder().Decode(query, r.URL.Query()); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		slog.Error("Error decoding list orders query", "error", err)

		return
	}

	orders, err := service.List(r.Context(), query.Limit, query.Offset)
	if err != nil {
		httperr.Write(w, err)

		return
	}

	httperr.WriteJSON(w, http.StatusOK, orders)
}

// ListOrdersForUser handles the customer view: only owned orders.
func ListOrdersForUser(w http.ResponseWriter, r *http.Request, service service) {
	customerID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil {
		httperr.Write(w, errs.NewValidation("invalid user id"))

		return
	}

	query := &listOrdersRequest{}
	if err := schema.NewDecoder().Decode(query, r.URL.Query()); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		slog.Error("Error decoding list orders query", "error", err)

		return
	}

	orders, err := service.ListForCustomer(r.Context(), customerID, query.Limit, query.Offset)
	if err != nil {
		httperr.Write(w, err)

		return
	}

	httperr.WriteJSON(w, http.StatusOK, orders)
}
