package ports

import (
	"context"

	"github.com/bnema/multicart-cli/internal/domain"
)

type CatalogRepository interface {
	List(ctx context.Context) ([]domain.Product, error)
	Save(ctx context.Context, product domain.Product) error
	Delete(ctx context.Context, id domain.ProductID) error
}
