package deleteorder

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/dulceria/order-svc/internal/service/errs"
	"github.com/dulceria/order-svc/internal/transport/http/httperr"
)

type service interface {
	Delete(ctx context.Context, orderID int64) error
}

type deleteOrderResponse struct {
	Message string `json:"message"`
}

// DeleteOrder handles the unconditional delete of an order and its items.
// Stock is never restored, even for approved orders.
func DeleteOrder(w http.ResponseWriter, r *http.Request, service service) {
	orderID, err := strconv.ParseInt(chi.URLParam(r, "orderID"), 10, 64)
	if err != nil {
		httperr.Write(w, errs.NewValidation("invalid order id"))

		return
	}

	if err := service.Delete(r.Context(), orderID); err != nil {
		httperr.Write(w, err)

		return
	}

	httperr.WriteJSON(w, http.StatusOK, deleteOrderResponse{Message: "order deleted"})
}
