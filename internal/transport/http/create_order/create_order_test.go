package createorder

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dulceria/order-svc/internal/service/errs"
	"github.com/dulceria/order-svc/internal/service/models/currency"
	"github.com/dulceria/order-svc/internal/service/models/order"
	"github.com/dulceria/order-svc/internal/service/services/ordersvc"
)

type stubService struct {
	gotCustomerID int64
	gotLines      []ordersvc.LineRequest
	result        *order.Order
	err           error
}

func (s *stubService) Create(_ context.Context, customerID int64, lines []ordersvc.LineRequest) (*order.Order, error) {
	s.gotCustomerID = customerID
	s.gotLines = lines
	return s.result, s.err
}

func TestCreateOrder(t *testing.T) {
	stub := &stubService{result: &order.Order{
		ID:            12,
		CustomerID:    7,
		Status:        order.StatusPending,
		TotalCents:    3000,
		TotalCurrency: currency.CurrencyMXN,
	}}

	body := `{"customerId": 7, "items": [{"catalogItemId": 1, "quantity": 3}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
	rec := httptest.NewRecorder()

	CreateOrder(rec, req, stub)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, int64(7), stub.gotCustomerID)
	require.Len(t, stub.gotLines, 1)
	assert.Equal(t, ordersvc.LineRequest{CatalogItemID: 1, Quantity: 3}, stub.gotLines[0])

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, float64(12), resp["id"])
	assert.Equal(t, float64(3000), resp["totalCents"])
	assert.Equal(t, "MXN", resp["currency"])
	assert.Equal(t, "pending", resp["status"])
}

func TestCreateOrder_MissingItems(t *testing.T) {
	stub := &stubService{}

	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(`{"customerId": 7}`))
	rec := httptest.NewRecorder()

	CreateOrder(rec, req, stub)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, stub.gotLines)
}

func TestCreateOrder_BadJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(`{`))
	rec := httptest.NewRecorder()

	CreateOrder(rec, req, &stubService{})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateOrder_ServiceErrors(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{
			name:       "insufficient stock",
			err:        &errs.InsufficientStockError{CatalogItemID: 1},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown catalog item",
			err:        &errs.NotFoundError{Entity: "catalog item", ID: 99},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			body := `{"customerId": 7, "items": [{"catalogItemId": 1, "quantity": 3}]}`
			req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
			rec := httptest.NewRecorder()

			CreateOrder(rec, req, &stubService{err: tc.err})

			assert.Equal(t, tc.wantStatus, rec.Code)

			var resp map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp["error"])
		})
	}
}
