package setstatus

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dulceria/order-svc/internal/service/errs"
	"github.com/dulceria/order-svc/internal/service/services/ordersvc"
)

type stubService struct {
	gotOrderID int64
	gotStatus  string
	message    string
	err        error
}

func (s *stubService) SetStatus(_ context.Context, orderID int64, rawStatus string) (string, error) {
	s.gotOrderID = orderID
	s.gotStatus = rawStatus
	return s.message, s.err
}

func newRequest(orderID, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPatch, "/api/orders/"+orderID+"/status", strings.NewReader(body))

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("orderID", orderID)

	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestSetStatus(t *testing.T) {
	stub := &stubService{message: ordersvc.MsgStatusUpdated}
	rec := httptest.NewRecorder()

	SetStatus(rec, newRequest("5", `{"status": "approved"}`), stub)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(5), stub.gotOrderID)
	assert.Equal(t, "approved", stub.gotStatus)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, ordersvc.MsgStatusUpdated, resp["message"])
}

func TestSetStatus_NoChanges(t *testing.T) {
	stub := &stubService{message: ordersvc.MsgNoChanges}
	rec := httptest.NewRecorder()

	SetStatus(rec, newRequest("5", `{"status": "pending"}`), stub)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, ordersvc.MsgNoChanges, resp["message"])
}

func TestSetStatus_InvalidOrderID(t *testing.T) {
	rec := httptest.NewRecorder()

	SetStatus(rec, newRequest("abc", `{"status": "approved"}`), &stubService{})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSetStatus_MissingStatus(t *testing.T) {
	rec := httptest.NewRecorder()

	SetStatus(rec, newRequest("5", `{}`), &stubService{})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSetStatus_ServiceErrors(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{
			name:       "unknown order",
			err:        &errs.NotFoundError{Entity: "order", ID: 999},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "insufficient stock at approval",
			err:        &errs.InsufficientStockError{CatalogItemID: 3},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid transition",
			err:        errs.NewValidation("order 5 is rejected and cannot become approved"),
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			SetStatus(rec, newRequest("5", `{"status": "approved"}`), &stubService{err: tc.err})

			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}
