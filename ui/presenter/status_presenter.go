package presenter

import (
	"time"

	"github.com/soocke/circle-shot-go/domain/capture"
)

// StateView sets the state label in the view.
type StateView interface{ SetStateLabel(string) }

// StateUnavailable is shown when the source could not be opened.
const StateUnavailable = "unavailable"

// StatusPresenter reflects playback signals in the state label. Signals are
// queued and the most recent one is shown on the next Tick.
type StatusPresenter struct {
	view    StateView
	latest  string // last reflected state
	pending []capture.Signal
}

func NewStatusPresenter(view StateView) *StatusPresenter {
	return &StatusPresenter{view: view}
}

// OnSignal queues a playback signal.
func (p *StatusPresenter) OnSignal(s capture.Signal) {
	if p == nil {
		return
	}
	p.pending = append(p.pending, s)
}

// SetUnavailable shows the unavailable state immediately and drops anything
// queued.
func (p *StatusPresenter) SetUnavailable() {
	if p == nil {
		return
	}
	p.pending = p.pending[:0]
	p.show(StateUnavailable)
}

// Tick flushes queued signals, showing only the latest.
func (p *StatusPresenter) Tick(now time.Time) {
	if p == nil || len(p.pending) == 0 {
		return
	}
	last := p.pending[len(p.pending)-1]
	p.pending = p.pending[:0]
	p.show(last.String())
}

// Latest returns the state currently shown.
func (p *StatusPresenter) Latest() string {
	if p == nil {
		return ""
	}
	return p.latest
}

func (p *StatusPresenter) show(state string) {
	if state == p.latest {
		return
	}
	p.latest = state
	if p.view != nil {
		p.view.SetStateLabel("State: " + state)
	}
}
