package getorder

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/dulceria/order-svc/internal/service/errs"
	"github.com/dulceria/order-svc/internal/service/models/order"
	"github.com/dulceria/order-svc/internal/transport/http/httperr"
)

type service interface {
	GetWithItems(ctx context.Context, orderID int64) (*order.Order, error)
}

// GetOrder handles the order detail request: the order plus its full
// line-item breakdown.
func GetOrder(w http.ResponseWriter, r *http.Request, service service) {
	orderID, err := strconv.ParseInt(chi.URLParam(r, "orderID"), 10, 64)
	if err != nil {
		httperr.Write(w, errs.NewValidation("invalid order id"))

		return
	}

	o, err := service.GetWithItems(r.Context(), orderID)
	if err != nil {
		httperr.Write(w, err)

		return
	}

	httperr.WriteJSON(w, http.StatusOK, o)
}
