package application

import "github.com/bnema/multicart-cli/internal/domain"

type AddProductCommand struct {
	ID   domain.ProductID
	Name string
}

type RemoveProductCommand struct {
	ID domain.ProductID
}
