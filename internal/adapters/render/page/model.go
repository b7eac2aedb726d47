package page

import (
	"context"
	"errors"

	"github.com/bnema/multicart-cli/internal/application"
	"github.com/bnema/multicart-cli/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

type CartOperations interface {
	AddAll(ctx context.Context, products []domain.Product) error
	RemoveAll(ctx context.Context) error
	RefreshOccupancy(ctx context.Context) (application.Occupancy, error)
	InFlight() bool
}

type FeedbackSource interface {
	State() domain.FeedbackState
	RemoveAllVisible() bool
	Subscribe() <-chan struct{}
}

type Options struct {
	Cart     CartOperations
	Feedback FeedbackSource
	Products []domain.Product
	Logger   *zap.Logger
}

type feedbackChangedMsg struct{}

type operationDoneMsg struct {
	op  string
	err error
}

const opRefresh = "refresh"

// Model binds the bulk cart controls to keys: a adds the catalog, r clears
// the cart while the remove-all control is shown, g re-probes occupancy.
type Model struct {
	ctx      context.Context
	cart     CartOperations
	feedback FeedbackSource
	products []domain.Product
	logger   *zap.Logger
	changes  <-chan struct{}
	styles   styles
	width    int
}

func NewModel(ctx context.Context, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return Model{
		ctx:      ctx,
		cart:     opts.Cart,
		feedback: opts.Feedback,
		products: opts.Products,
		logger:   logger.Named("page"),
		changes:  opts.Feedback.Subscribe(),
		styles:   newStyles(),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.refresh(), waitForChange(m.changes))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case feedbackChangedMsg:
		return m, waitForChange(m.changes)
	case operationDoneMsg:
		switch {
		case msg.err == nil:
		case errors.Is(msg.err, domain.ErrOperationInFlight):
			m.logger.Debug("operation skipped while another is pending", zap.String("op", msg.op))
		default:
			m.logger.Debug("operation finished with error", zap.String("op", msg.op), zap.Error(msg.err))
		}
		return m, nil
	default:
		return m, nil
	}
}

func (m Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "q", "ctrl+c":
		return tea.Quit
	case "a":
		return m.addAll()
	case "r":
		if !m.feedback.RemoveAllVisible() {
			return nil
		}
		return m.removeAll()
	case "g":
		return m.refresh()
	default:
		return nil
	}
}

func (m Model) addAll() tea.Cmd {
	products := m.products
	return func() tea.Msg {
		return operationDoneMsg{op: application.OperationAddAll, err: m.cart.AddAll(m.ctx, products)}
	}
}

func (m Model) removeAll() tea.Cmd {
	return func() tea.Msg {
		return operationDoneMsg{op: application.OperationRemoveAll, err: m.cart.RemoveAll(m.ctx)}
	}
}

func (m Model) refresh() tea.Cmd {
	return func() tea.Msg {
		_, err := m.cart.RefreshOccupancy(m.ctx)
		return operationDoneMsg{op: opRefresh, err: err}
	}
}

func waitForChange(changes <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return nil
		}
		return feedbackChangedMsg{}
	}
}
