package application

import (
	"context"
	"fmt"

	"github.com/bnema/multicart-cli/internal/domain"
	"github.com/bnema/multicart-cli/internal/ports"
)

type CatalogService struct {
	repo ports.CatalogRepository
}

func NewCatalogService(repo ports.CatalogRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

func (s *CatalogService) Products(ctx context.Context) ([]domain.Product, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list catalog products: %w", err)
	}

	return products, nil
}

func (s *CatalogService) AddProduct(ctx context.Context, cmd AddProductCommand) (domain.Product, error) {
	product := domain.Product{ID: cmd.ID, Name: cmd.Name}
	if err := product.Validate(); err != nil {
		return domain.Product{}, err
	}

	if err := s.repo.Save(ctx, product); err != nil {
		return domain.Product{}, fmt.Errorf("save catalog product: %w", err)
	}

	return product, nil
}

func (s *CatalogService) RemoveProduct(ctx context.Context, cmd RemoveProductCommand) error {
	if err := s.repo.Delete(ctx, cmd.ID); err != nil {
		return fmt.Errorf("delete catalog product %d: %w", cmd.ID, err)
	}

	return nil
}
