package banner

import (
	"sync"
	"time"

	"github.com/bnema/multicart-cli/internal/domain"
	"github.com/bnema/multicart-cli/internal/ports"
)

const DefaultDuration = 3 * time.Second

type Timer interface {
	Stop() bool
}

// AfterFunc schedules f after d. It matches time.AfterFunc so tests can swap
// in a manual scheduler.
type AfterFunc func(d time.Duration, f func()) Timer

type Option func(*Presenter)

func WithDuration(d time.Duration) Option {
	return func(p *Presenter) {
		if d > 0 {
			p.duration = d
		}
	}
}

func WithAfterFunc(fn AfterFunc) Option {
	return func(p *Presenter) {
		if fn != nil {
			p.afterFunc = fn
		}
	}
}

// Presenter owns the status banner and the visibility of the remove-all
// control. A new Show supersedes the pending dismissal of the previous one.
type Presenter struct {
	mu               sync.Mutex
	state            domain.FeedbackState
	last             domain.FeedbackState
	removeAllVisible bool
	duration         time.Duration
	afterFunc        AfterFunc
	timer            Timer
	generation       uint64
	subscribers      []chan struct{}
	closed           bool
}

var _ ports.FeedbackPresenter = (*Presenter)(nil)

func NewPresenter(opts ...Option) *Presenter {
	p := &Presenter{
		duration:  DefaultDuration,
		afterFunc: systemAfterFunc,
	}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

func systemAfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

func (p *Presenter) Show(tone domain.Tone, message string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.timer != nil {
		p.timer.Stop()
		p.timer = nil
	}

	p.generation++
	generation := p.generation
	p.state = domain.FeedbackState{Visible: true, Tone: tone, Message: message}
	p.last = p.state
	if !p.closed {
		p.timer = p.afterFunc(p.duration, func() { p.hide(generation) })
	}
	p.notifyLocked()
}

func (p *Presenter) hide(generation uint64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if generation != p.generation || !p.state.Visible {
		return
	}

	p.state.Visible = false
	p.timer = nil
	p.notifyLocked()
}

func (p *Presenter) SetRemoveAllVisible(visible bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.removeAllVisible == visible {
		return
	}

	p.removeAllVisible = visible
	p.notifyLocked()
}

func (p *Presenter) RemoveAllVisible() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.removeAllVisible
}

func (p *Presenter) State() domain.FeedbackState {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.state
}

// LastShown returns the most recent banner as it was shown, even after it
// has been dismissed. ok is false when nothing was shown yet.
func (p *Presenter) LastShown() (state domain.FeedbackState, ok bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.last, p.last.Visible
}

// Subscribe returns a channel that receives a value after state changes.
// Bursts of changes coalesce into one pending notification. The channel is
// closed by Close.
func (p *Presenter) Subscribe() <-chan struct{} {
	p.mu.Lock()
	defer p.mu.Unlock()

	ch := make(chan struct{}, 1)
	if p.closed {
		close(ch)
		return ch
	}

	p.subscribers = append(p.subscribers, ch)
	return ch
}

// Close stops the pending dismissal and releases subscribers.
func (p *Presenter) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}
	p.closed = true

	if p.timer != nil {
		p.timer.Stop()
		p.timer = nil
	}
	for _, ch := range p.subscribers {
		close(ch)
	}
	p.subscribers = nil
}

func (p *Presenter) notifyLocked() {
	for _, ch := range p.subscribers {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
