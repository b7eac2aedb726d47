package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBulkAddRequestsKeepsOrderAndDuplicates(t *testing.T) {
	t.Parallel()

	requests := BulkAddRequests([]Product{
		{ID: 1, Name: "Tote"},
		{ID: 2, Name: "Mug"},
		{ID: 1, Name: "Tote"},
	})

	assert.Equal(t, []LineItemRequest{
		{ProductID: 1, Quantity: 1},
		{ProductID: 2, Quantity: 1},
		{ProductID: 1, Quantity: 1},
	}, requests)
}

func TestBulkAddRequestsEmptyCatalog(t *testing.T) {
	t.Parallel()

	requests := BulkAddRequests(nil)
	require.NotNil(t, requests)
	assert.Empty(t, requests)
}

func TestCartSnapshotEmpty(t *testing.T) {
	t.Parallel()

	var snapshot CartSnapshot
	assert.True(t, snapshot.Empty())
	assert.Equal(t, "", snapshot.CartID())
	assert.Equal(t, 0, snapshot.ItemCount())
	assert.False(t, snapshot.HasLineItems())
	assert.Nil(t, snapshot.RemovalTargets())
}

func TestCartSnapshotRemovalTargetsUsesPhysicalItemsOnly(t *testing.T) {
	t.Parallel()

	snapshot := CartSnapshot{Cart: &Cart{
		ID: "cart-1",
		LineItems: LineItems{
			Physical: []LineItem{{ID: "99", ProductID: 1}, {ID: "100", ProductID: 2}},
			Digital:  []LineItem{{ID: "d-1", ProductID: 3}},
		},
	}}

	assert.Equal(t, "cart-1", snapshot.CartID())
	assert.Equal(t, 3, snapshot.ItemCount())
	assert.True(t, snapshot.HasLineItems())
	assert.Equal(t, []RemovalTarget{{ItemID: "99"}, {ItemID: "100"}}, snapshot.RemovalTargets())
}

func TestCartSnapshotExistingCartWithoutItems(t *testing.T) {
	t.Parallel()

	snapshot := CartSnapshot{Cart: &Cart{ID: "cart-1"}}
	assert.False(t, snapshot.Empty())
	assert.False(t, snapshot.HasLineItems())
	assert.Empty(t, snapshot.RemovalTargets())
}

func TestProductValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		product Product
		wantErr string
	}{
		{name: "valid", product: Product{ID: 111, Name: "Tote"}},
		{name: "zero id", product: Product{Name: "Tote"}, wantErr: "must be positive"},
		{name: "negative id", product: Product{ID: -4, Name: "Tote"}, wantErr: "must be positive"},
		{name: "blank name", product: Product{ID: 1, Name: "  "}, wantErr: "name is required"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := tc.product.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestTransportErrorFormatsAndUnwraps(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection reset")
	err := fmt.Errorf("read cart: %w", &TransportError{
		Op:     "read cart",
		Method: "GET",
		URL:    "https://shop.example.com/api/storefront/carts",
		Err:    cause,
	})

	assert.True(t, IsTransportError(err))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "GET https://shop.example.com/api/storefront/carts")
	assert.Contains(t, err.Error(), "connection reset")
}

func TestTransportErrorIncludesStatusAndBody(t *testing.T) {
	t.Parallel()

	err := &TransportError{Op: "delete item", StatusCode: 404, Body: " {\"status\":404} "}
	assert.Equal(t, "delete item: status 404: {\"status\":404}", err.Error())
	assert.False(t, IsTransportError(errors.New("plain")))
}

func TestSessionSecretKey(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		host    string
		want    string
		wantErr string
	}{
		{name: "plain host", host: "shop.example.com", want: "mcart/session/shop.example.com"},
		{name: "normalizes case and space", host: "  Shop.Example.COM ", want: "mcart/session/shop.example.com"},
		{name: "keeps port", host: "localhost:8080", want: "mcart/session/localhost:8080"},
		{name: "empty", host: " ", wantErr: "session host is required"},
		{name: "path separator", host: "shop/../../etc", wantErr: "invalid session host"},
		{name: "traversal", host: "..", wantErr: "invalid session host"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := SessionSecretKey(tc.host)
			if tc.wantErr != "" {
				require.Error(t, err)
				assert.ErrorContains(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
