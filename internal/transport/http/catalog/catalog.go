package catalog

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/dulceria/order-svc/internal/service/errs"
	"github.com/dulceria/order-svc/internal/service/models/catalogitem"
	"github.com/dulceria/order-svc/internal/service/models/currency"
	"github.com/dulceria/order-svc/internal/transport/http/httperr"
)

type service interface {
	List(ctx context.Context) ([]catalogitem.CatalogItem, error)
	Get(ctx context.Context, id int64) (*catalogitem.CatalogItem, error)
	Create(ctx context.Context, item catalogitem.CatalogItem) (*catalogitem.CatalogItem, error)
	Update(ctx context.Context, item catalogitem.CatalogItem) error
	Delete(ctx context.Context, id int64) error
}

// catalogItemRequest represents a create or update request for a dessert.
type catalogItemRequest struct {
	Name          string `json:"name"          validate:"required"`
	Description   string `json:"description"`
	ImageURL      string `json:"imageUrl"`
	PriceCents    int64  `json:"priceCents"    validate:"gte=0"`
	PriceCurrency string `json:"priceCurrency"`
	AvailableQty  int    `json:"availableQty"  validate:"gte=0"`
}

// Validate validates the catalog item request.
func (r *catalogItemRequest) Validate() error {
	return validator.New().Struct(r)
}

// toModel converts catalogItemRequest to a CatalogItem model.
func (r *catalogItemRequest) toModel() (*catalogitem.CatalogItem, error) {
	cur := currency.CurrencyMXN
	if r.PriceCurrency != "" {
		parsed, err := currency.ParseCurrency(r.PriceCurrency)
		if err != nil {
			return nil, err
		}
		cur = parsed
	}

	return &catalogitem.CatalogItem{
		Name:          r.Name,
		Description:   r.Description,
		ImageURL:      r.ImageURL,
		PriceCents:    r.PriceCents,
		PriceCurrency: cur,
		AvailableQty:  r.AvailableQty,
	}, nil
}

type messageResponse struct {
	Message string `json:"message"`
}

// List handles the catalog listing request.
func List(w http.ResponseWriter, r *http.Request, service service) {
	items, err := service.List(r.Context())
	if err != nil {
		httperr.Write(w, err)

		return
	}

	httperr.WriteJSON(w, http.StatusOK, items)
}

// Get handles a single catalog item request.
func Get(w http.ResponseWriter, r *http.Request, service service) {
	id, err := strconv.ParseInt(chi.URLParam(r, "itemID"), 10, 64)
	if err != nil {
		httperr.Write(w, errs.NewValidation("invalid catalog item id"))

		return
	}

	item, err := service.Get(r.Context(), id)
	if err != nil {
		httperr.Write(w, err)

		return
	}

	httperr.WriteJSON(w, http.StatusOK, item)
}

// Create handles the catalog item creation request.
func Create(w http.ResponseWriter, r *http.Request, service service) {
	req := catalogItemRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		slog.Error("Error decoding request body for create catalog item", "error", err)

		return
	}

	if err := req.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		slog.Error("Error validating request body for create catalog item", "error", err)

		return
	}

	model, err := req.toModel()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)

		return
	}

	created, err := service.Create(r.Context(), *model)
	if err != nil {
		httperr.Write(w, err)

		return
	}

	httperr.WriteJSON(w, http.StatusCreated, created)
}

// Update handles the catalog item update request.
func Update(w http.ResponseWriter, r *http.Request, service service) {
	id, err := strconv.ParseInt(chi.URLParam(r, "itemID"), 10, 64)
	if err != nil {
		httperr.Write(w, errs.NewValidation("invalid catalog item id"))

		return
	}

	req := catalogItemRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		slog.Error("Error decoding request body for update catalog item", "error", err)

		return
	}

	if err := req.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		slog.Error("Error validating request body for update catalog item", "error", err)

		return
	}

	model, err := req.toModel()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)

		return
	}
	model.ID = id

	if err := service.Update(r.Context(), *model); err != nil {
		httperr.Write(w, err)

		return
	}

	httperr.WriteJSON(w, http.StatusOK, messageResponse{Message: "catalog item updated"})
}

// Delete handles the catalog item delete request.
func Delete(w http.ResponseWriter, r *http.Request, service service) {
	id, err := strconv.ParseInt(chi.URLParam(r, "itemID"), 10, 64)
	if err != nil {
		httperr.Write(w, errs.NewValidation("invalid catalog item id"))

		return
	}

	if err := service.Delete(r.Context(), id); err != nil {
		httperr.Write(w, err)

		return
	}

	httperr.WriteJSON(w, http.StatusOK, messageResponse{Message: "catalog item deleted"})
}
