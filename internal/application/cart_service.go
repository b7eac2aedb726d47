package application

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/bnema/multicart-cli/internal/domain"
	"github.com/bnema/multicart-cli/internal/ports"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	OperationAddAll    = "add_all"
	OperationRemoveAll = "remove_all"
)

type CartOption func(*CartService)

func WithLogger(logger *zap.Logger) CartOption {
	return func(s *CartService) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithDeleteConcurrency caps the number of in-flight item deletions during
// RemoveAll. Zero or less means unlimited.
func WithDeleteConcurrency(limit int) CartOption {
	return func(s *CartService) {
		s.deleteLimit = limit
	}
}

func WithOperationIDs(next func() string) CartOption {
	return func(s *CartService) {
		if next != nil {
			s.nextOperationID = next
		}
	}
}

// CartService reconciles the local product catalog with the session cart and
// reports every bulk outcome through the feedback presenter. Only one bulk
// operation runs at a time.
type CartService struct {
	transport       ports.CartTransport
	presenter       ports.FeedbackPresenter
	logger          *zap.Logger
	deleteLimit     int
	nextOperationID func() string
	inFlight        atomic.Bool
}

func NewCartService(transport ports.CartTransport, presenter ports.FeedbackPresenter, opts ...CartOption) *CartService {
	s := &CartService{
		transport:       transport,
		presenter:       presenter,
		logger:          zap.NewNop(),
		nextOperationID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.Named("cart")

	return s
}

// InFlight reports whether a bulk operation is pending.
func (s *CartService) InFlight() bool {
	return s.inFlight.Load()
}

// AddAll reads the cart once, then either creates it with one quantity-1 line
// per product or appends the same list to the existing cart.
func (s *CartService) AddAll(ctx context.Context, products []domain.Product) error {
	release, err := s.acquire(OperationAddAll)
	if err != nil {
		return err
	}
	defer release()

	logger := s.operationLogger(OperationAddAll)
	items := domain.BulkAddRequests(products)
	logger.Debug("bulk add requested", zap.Int64s("product_ids", productIDs(items)))

	if err := s.finish(logger, s.addAll(ctx, logger, items), domain.MessageAddedAll); err != nil {
		return err
	}

	// Refresh failures are logged by RefreshOccupancy and do not undo the add.
	_, _ = s.RefreshOccupancy(ctx)

	return nil
}

func (s *CartService) addAll(ctx context.Context, logger *zap.Logger, items []domain.LineItemRequest) error {
	snapshot, err := s.transport.ReadCart(ctx)
	if err != nil {
		return fmt.Errorf("read cart: %w", err)
	}

	if snapshot.Empty() {
		created, err := s.transport.CreateCart(ctx, items)
		if err != nil {
			return fmt.Errorf("create cart: %w", err)
		}
		logger.Debug("cart created", zap.String("cart_id", created.CartID()), zap.Int("line_items", created.ItemCount()))
		return nil
	}

	cartID := snapshot.CartID()
	updated, err := s.transport.AppendItems(ctx, cartID, items)
	if err != nil {
		return fmt.Errorf("append items to cart %s: %w", cartID, err)
	}
	logger.Debug("items appended", zap.String("cart_id", cartID), zap.Int("line_items", updated.ItemCount()))

	return nil
}

// RemoveAll deletes every physical line item of the current cart. Deletions
// run concurrently and the outcome is reported once all of them settle. An
// absent cart is a silent no-op.
func (s *CartService) RemoveAll(ctx context.Context) error {
	release, err := s.acquire(OperationRemoveAll)
	if err != nil {
		return err
	}
	defer release()

	logger := s.operationLogger(OperationRemoveAll)

	snapshot, err := s.transport.ReadCart(ctx)
	if err != nil {
		return s.finish(logger, fmt.Errorf("read cart: %w", err), domain.MessageRemovedAll)
	}
	if snapshot.Empty() {
		logger.Debug("no cart to clear")
		return nil
	}

	cartID := snapshot.CartID()
	targets := snapshot.RemovalTargets()
	logger.Debug("bulk remove requested", zap.String("cart_id", cartID), zap.Strings("item_ids", itemIDs(targets)))

	err = s.deleteAll(ctx, cartID, targets)
	if err == nil {
		s.presenter.SetRemoveAllVisible(false)
	}

	return s.finish(logger, err, domain.MessageRemovedAll)
}

func (s *CartService) deleteAll(ctx context.Context, cartID string, targets []domain.RemovalTarget) error {
	var group errgroup.Group
	if s.deleteLimit > 0 {
		group.SetLimit(s.deleteLimit)
	}

	for _, target := range targets {
		group.Go(func() error {
			if err := s.transport.DeleteItem(ctx, cartID, target.ItemID); err != nil {
				return fmt.Errorf("delete item %s from cart %s: %w", target.ItemID, cartID, err)
			}
			return nil
		})
	}

	return group.Wait()
}

// RefreshOccupancy probes the cart without expansions and toggles the
// remove-all control on whether any line items remain.
func (s *CartService) RefreshOccupancy(ctx context.Context) (Occupancy, error) {
	snapshot, err := s.transport.ReadCartSummary(ctx)
	if err != nil {
		s.logger.Warn("refresh cart occupancy failed", zap.Error(err))
		return Occupancy{}, fmt.Errorf("read cart summary: %w", err)
	}

	occupancy := Occupancy{
		CartID:    snapshot.CartID(),
		LineItems: snapshot.ItemCount(),
		Occupied:  snapshot.HasLineItems(),
	}
	s.logger.Debug("cart occupancy refreshed", zap.String("cart_id", occupancy.CartID), zap.Bool("occupied", occupancy.Occupied))
	s.presenter.SetRemoveAllVisible(occupancy.Occupied)

	return occupancy, nil
}

func (s *CartService) Snapshot(ctx context.Context) (domain.CartSnapshot, error) {
	snapshot, err := s.transport.ReadCart(ctx)
	if err != nil {
		return domain.CartSnapshot{}, fmt.Errorf("read cart: %w", err)
	}

	return snapshot, nil
}

func (s *CartService) acquire(operation string) (func(), error) {
	if !s.inFlight.CompareAndSwap(false, true) {
		s.logger.Warn("bulk operation rejected", zap.String("op", operation), zap.Error(domain.ErrOperationInFlight))
		return nil, domain.ErrOperationInFlight
	}

	return func() { s.inFlight.Store(false) }, nil
}

func (s *CartService) operationLogger(operation string) *zap.Logger {
	return s.logger.With(zap.String("op", operation), zap.String("op_id", s.nextOperationID()))
}

// finish is the single outcome boundary of a bulk operation.
func (s *CartService) finish(logger *zap.Logger, err error, successMessage string) error {
	if err != nil {
		logger.Warn("bulk operation failed", zap.Bool("remote", domain.IsTransportError(err)), zap.Error(err))
		s.presenter.Show(domain.ToneError, domain.MessageFailure)
		return err
	}

	logger.Debug("bulk operation succeeded")
	s.presenter.Show(domain.ToneSuccess, successMessage)
	return nil
}

func productIDs(items []domain.LineItemRequest) []int64 {
	ids := make([]int64, 0, len(items))
	for _, item := range items {
		ids = append(ids, int64(item.ProductID))
	}
	return ids
}

func itemIDs(targets []domain.RemovalTarget) []string {
	ids := make([]string, 0, len(targets))
	for _, target := range targets {
		ids = append(ids, target.ItemID)
	}
	return ids
}
