package model

import (
	"time"
)

// SessionModel tracks how long playback has been running in the current
// session and in total, plus how many sessions there were. The zero value is
// ready to use. Not safe for concurrent use; it is driven from the UI thread.
type SessionModel struct {
	playing  bool
	started  time.Time
	current  time.Duration
	total    time.Duration
	sessions int
}

// NewSessionModel returns a pointer to a ready-to-use SessionModel.
func NewSessionModel() *SessionModel { return &SessionModel{} }

// OnTick folds the playback state observed at now into the durations.
func (m *SessionModel) OnTick(playing bool, now time.Time) {
	if m == nil {
		return
	}
	switch {
	case playing && !m.playing: // paused -> playing
		m.playing = true
		m.started = now
		m.current = 0
		m.sessions++
	case playing:
		m.current = now.Sub(m.started)
	case m.playing: // playing -> paused
		m.current = now.Sub(m.started)
		m.total += m.current
		m.playing = false
	}
}

// Values returns the current session duration and the total, which includes
// the ongoing session while playing.
func (m *SessionModel) Values() (session, total time.Duration) {
	if m == nil {
		return 0, 0
	}
	session = m.current
	total = m.total
	if m.playing {
		total += session
	}
	return
}

// Sessions reports how many times playback has started.
func (m *SessionModel) Sessions() int {
	if m == nil {
		return 0
	}
	return m.sessions
}
