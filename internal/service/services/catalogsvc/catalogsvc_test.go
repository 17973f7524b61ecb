package catalogsvc

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dulceria/order-svc/internal/service/errs"
	"github.com/dulceria/order-svc/internal/service/models/catalogitem"
	"github.com/dulceria/order-svc/internal/service/models/currency"
)

type stubRepo struct {
	inserted *catalogitem.CatalogItem
	updated  *catalogitem.CatalogItem
}

func (r *stubRepo) GetByID(context.Context, int64) (*catalogitem.CatalogItem, error) {
	return nil, nil
}

func (r *stubRepo) List(context.Context) ([]catalogitem.CatalogItem, error) { return nil, nil }

func (r *stubRepo) Insert(_ context.Context, item catalogitem.CatalogItem) (*catalogitem.CatalogItem, error) {
	r.inserted = &item
	return &item, nil
}

func (r *stubRepo) Update(_ context.Context, item catalogitem.CatalogItem) error {
	r.updated = &item
	return nil
}

func (r *stubRepo) Delete(context.Context, int64) error { return nil }

func (r *stubRepo) DecrementIfSufficient(context.Context, int64, int) (int, error) {
	return 0, nil
}

func TestCreate_SetsTimestamps(t *testing.T) {
	repo := &stubRepo{}
	svc := MustNewCatalogService(WithRepository(repo))

	created, err := svc.Create(context.Background(), catalogitem.CatalogItem{
		Name:          "tres leches",
		PriceCents:    4500,
		PriceCurrency: currency.CurrencyMXN,
		AvailableQty:  12,
	})
	require.NoError(t, err)

	require.NotNil(t, repo.inserted)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)
}

func TestCreate_RejectsNegativeValues(t *testing.T) {
	svc := MustNewCatalogService(WithRepository(&stubRepo{}))

	cases := []struct {
		name string
		item catalogitem.CatalogItem
	}{
		{name: "negative price", item: catalogitem.CatalogItem{Name: "flan", PriceCents: -1}},
		{name: "negative quantity", item: catalogitem.CatalogItem{Name: "flan", AvailableQty: -1}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tc.item)

			var validationErr *errs.ValidationError
			require.ErrorAs(t, err, &validationErr)
		})
	}
}

func TestUpdate_RejectsNegativeValues(t *testing.T) {
	repo := &stubRepo{}
	svc := MustNewCatalogService(WithRepository(repo))

	err := svc.Update(context.Background(), catalogitem.CatalogItem{ID: 1, PriceCents: -5})

	var validationErr *errs.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Nil(t, repo.updated)
}

func TestUpdate_BumpsUpdatedAt(t *testing.T) {
	repo := &stubRepo{}
	svc := MustNewCatalogService(WithRepository(repo))

	err := svc.Update(context.Background(), catalogitem.CatalogItem{
		ID:         1,
		Name:       "flan",
		PriceCents: 3000,
	})
	require.NoError(t, err)

	require.NotNil(t, repo.updated)
	assert.False(t, repo.updated.UpdatedAt.IsZero())
}
