package presenter

import (
	"time"

	"github.com/soocke/circle-shot-go/ui/model"
)

// PlayingSource reports whether playback is running.
type PlayingSource interface{ Playing() bool }

// SessionView displays formatted session and total durations.
type SessionView interface {
	SetSession(session, total time.Duration)
}

// SessionPresenter formats session and total durations from the model to the view.
type SessionPresenter struct {
	sess *model.SessionModel
	src  PlayingSource
	view SessionView
}

// NewSessionPresenter returns a new SessionPresenter.
func NewSessionPresenter(sess *model.SessionModel, src PlayingSource, view SessionView) *SessionPresenter {
	return &SessionPresenter{sess: sess, src: src, view: view}
}

// Tick advances the session model with the source state and pushes values to the view.
func (p *SessionPresenter) Tick(now time.Time) {
	if p == nil || p.sess == nil || p.src == nil || p.view == nil {
		return
	}
	p.sess.OnTick(p.src.Playing(), now)
	s, t := p.sess.Values()
	p.view.SetSession(s, t)
}
