package ports

import (
	"context"

	"github.com/bnema/multicart-cli/internal/domain"
)

// CartTransport issues create/read/append/delete calls against the remote
// session cart. Failures are reported as *domain.TransportError.
type CartTransport interface {
	ReadCart(ctx context.Context) (domain.CartSnapshot, error)
	ReadCartSummary(ctx context.Context) (domain.CartSnapshot, error)
	CreateCart(ctx context.Context, items []domain.LineItemRequest) (domain.CartSnapshot, error)
	AppendItems(ctx context.Context, cartID string, items []domain.LineItemRequest) (domain.CartSnapshot, error)
	DeleteItem(ctx context.Context, cartID string, itemID string) error
}
