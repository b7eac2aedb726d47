package application

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/multicart-cli/internal/domain"
	"github.com/bnema/multicart-cli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCatalogServiceProducts(t *testing.T) {
	repo := mocks.NewMockCatalogRepository(t)
	service := NewCatalogService(repo)

	products := []domain.Product{{ID: 1, Name: "Tote"}, {ID: 2, Name: "Mug"}}
	repo.EXPECT().List(mockAnyContext()).Return(products, nil).Once()

	got, err := service.Products(context.Background())
	require.NoError(t, err)
	assert.Equal(t, products, got)
}

func TestCatalogServiceProductsWrapsError(t *testing.T) {
	repo := mocks.NewMockCatalogRepository(t)
	service := NewCatalogService(repo)

	repo.EXPECT().List(mockAnyContext()).Return(nil, errors.New("decode catalog file: bad toml")).Once()

	_, err := service.Products(context.Background())
	require.EqualError(t, err, "list catalog products: decode catalog file: bad toml")
}

func TestCatalogServiceAddProduct(t *testing.T) {
	repo := mocks.NewMockCatalogRepository(t)
	service := NewCatalogService(repo)

	repo.EXPECT().Save(mockAnyContext(), domain.Product{ID: 111, Name: "Sample tote"}).Return(nil).Once()

	product, err := service.AddProduct(context.Background(), AddProductCommand{ID: 111, Name: "Sample tote"})
	require.NoError(t, err)
	assert.Equal(t, domain.Product{ID: 111, Name: "Sample tote"}, product)
}

func TestCatalogServiceAddProductRejectsInvalidProduct(t *testing.T) {
	repo := mocks.NewMockCatalogRepository(t)
	service := NewCatalogService(repo)

	_, err := service.AddProduct(context.Background(), AddProductCommand{ID: 0, Name: "Nope"})
	require.EqualError(t, err, "product id must be positive, got 0")

	_, err = service.AddProduct(context.Background(), AddProductCommand{ID: 4, Name: "  "})
	require.EqualError(t, err, "product 4: name is required")

	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestCatalogServiceRemoveProduct(t *testing.T) {
	repo := mocks.NewMockCatalogRepository(t)
	service := NewCatalogService(repo)

	repo.EXPECT().Delete(mockAnyContext(), domain.ProductID(7)).Return(domain.ErrProductNotFound).Once()

	err := service.RemoveProduct(context.Background(), RemoveProductCommand{ID: 7})
	require.ErrorIs(t, err, domain.ErrProductNotFound)
	assert.EqualError(t, err, "delete catalog product 7: product not found")
}
