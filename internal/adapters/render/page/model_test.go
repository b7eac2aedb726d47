package page

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/bnema/multicart-cli/internal/adapters/render/banner"
	"github.com/bnema/multicart-cli/internal/application"
	"github.com/bnema/multicart-cli/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCart struct {
	mu          sync.Mutex
	presenter   *banner.Presenter
	occupied    bool
	addCalls    [][]domain.Product
	removeCalls int
	refreshes   int
	addErr      error
	inFlight    bool
}

func (f *fakeCart) AddAll(_ context.Context, products []domain.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.addCalls = append(f.addCalls, products)
	if f.addErr != nil {
		f.presenter.Show(domain.ToneError, domain.MessageFailure)
		return f.addErr
	}
	f.occupied = true
	f.presenter.Show(domain.ToneSuccess, domain.MessageAddedAll)
	f.presenter.SetRemoveAllVisible(true)
	return nil
}

func (f *fakeCart) RemoveAll(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.removeCalls++
	f.occupied = false
	f.presenter.SetRemoveAllVisible(false)
	f.presenter.Show(domain.ToneSuccess, domain.MessageRemovedAll)
	return nil
}

func (f *fakeCart) RefreshOccupancy(context.Context) (application.Occupancy, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.refreshes++
	f.presenter.SetRemoveAllVisible(f.occupied)
	return application.Occupancy{Occupied: f.occupied}, nil
}

func (f *fakeCart) InFlight() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.inFlight
}

func newTestModel(t *testing.T, occupied bool, products []domain.Product) (Model, *fakeCart, *banner.Presenter) {
	t.Helper()

	presenter := banner.NewPresenter(banner.WithAfterFunc(func(time.Duration, func()) banner.Timer {
		return time.NewTimer(time.Hour)
	}))
	t.Cleanup(presenter.Close)

	cart := &fakeCart{presenter: presenter, occupied: occupied}
	model := NewModel(context.Background(), Options{
		Cart:     cart,
		Feedback: presenter,
		Products: products,
	})
	return model, cart, presenter
}

func keyPress(key string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
}

func press(t *testing.T, m Model, key string) (Model, tea.Msg) {
	t.Helper()

	next, cmd := m.Update(keyPress(key))
	model, ok := next.(Model)
	require.True(t, ok)
	if cmd == nil {
		return model, nil
	}
	return model, cmd()
}

func TestInitRefreshesOccupancyOnce(t *testing.T) {
	model, cart, presenter := newTestModel(t, true, nil)

	msg := model.Init()()
	batch, ok := msg.(tea.BatchMsg)
	require.True(t, ok)
	require.Len(t, batch, 2)

	done := batch[0]()
	assert.Equal(t, operationDoneMsg{op: opRefresh}, done)
	assert.Equal(t, 1, cart.refreshes)
	assert.True(t, presenter.RemoveAllVisible())

	assert.Equal(t, feedbackChangedMsg{}, batch[1]())
}

func TestAddAllKeyDispatchesCatalog(t *testing.T) {
	products := []domain.Product{{ID: 1, Name: "Tote"}, {ID: 2, Name: "Mug"}}
	model, cart, presenter := newTestModel(t, false, products)

	model, msg := press(t, model, "a")
	assert.Equal(t, operationDoneMsg{op: application.OperationAddAll}, msg)
	require.Len(t, cart.addCalls, 1)
	assert.Equal(t, products, cart.addCalls[0])

	_, _ = model.Update(msg)
	view := model.View()
	assert.Contains(t, view, domain.MessageAddedAll)
	assert.Contains(t, view, "Remove all from cart")
	assert.True(t, presenter.RemoveAllVisible())
}

func TestRemoveAllKeyIgnoredWhileControlHidden(t *testing.T) {
	model, cart, _ := newTestModel(t, false, nil)

	_, msg := press(t, model, "r")
	assert.Nil(t, msg)
	assert.Equal(t, 0, cart.removeCalls)
	assert.NotContains(t, model.View(), "Remove all from cart")
}

func TestRemoveAllKeyClearsCartWhenControlShown(t *testing.T) {
	model, cart, presenter := newTestModel(t, true, nil)
	presenter.SetRemoveAllVisible(true)

	model, msg := press(t, model, "r")
	assert.Equal(t, operationDoneMsg{op: application.OperationRemoveAll}, msg)
	assert.Equal(t, 1, cart.removeCalls)

	view := model.View()
	assert.Contains(t, view, domain.MessageRemovedAll)
	assert.NotContains(t, view, "Remove all from cart")
}

func TestRefreshKey(t *testing.T) {
	model, cart, _ := newTestModel(t, false, nil)

	_, msg := press(t, model, "g")
	assert.Equal(t, operationDoneMsg{op: opRefresh}, msg)
	assert.Equal(t, 1, cart.refreshes)
}

func TestQuitKeys(t *testing.T) {
	model, _, _ := newTestModel(t, false, nil)

	_, cmd := model.Update(keyPress("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())

	_, cmd = model.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestFailedAddAllShowsErrorBanner(t *testing.T) {
	model, cart, _ := newTestModel(t, false, []domain.Product{{ID: 9, Name: "Pin"}})
	cart.addErr = errors.New("status 500")

	model, msg := press(t, model, "a")
	done, ok := msg.(operationDoneMsg)
	require.True(t, ok)
	require.Error(t, done.err)

	next, cmd := model.Update(msg)
	assert.Nil(t, cmd)
	assert.Contains(t, next.View(), domain.MessageFailure)
}

func TestFeedbackChangeKeepsListening(t *testing.T) {
	model, _, presenter := newTestModel(t, false, nil)

	_, cmd := model.Update(feedbackChangedMsg{})
	require.NotNil(t, cmd)

	presenter.Show(domain.ToneSuccess, "ok")
	assert.Equal(t, feedbackChangedMsg{}, cmd())

	presenter.Close()
	assert.Nil(t, cmd())
}

func TestViewShowsCatalogSizeAndBusyState(t *testing.T) {
	model, cart, _ := newTestModel(t, false, []domain.Product{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}, {ID: 3, Name: "C"}})
	cart.inFlight = true

	next, _ := model.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	view := next.View()

	assert.Contains(t, view, "catalog: 3 products")
	assert.Contains(t, view, "Add all to cart")
	assert.Contains(t, view, "working...")
	assert.NotContains(t, view, "Remove all from cart")
}
