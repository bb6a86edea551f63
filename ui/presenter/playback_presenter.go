package presenter

import (
	"github.com/soocke/circle-shot-go/domain/capture"
)

// PlaybackControl narrows what the presenter needs from capture.Player.
type PlaybackControl interface {
	Play()
	Pause()
	Playing() bool
	State() capture.PlaybackState
}

// PlaybackView updates UI elements affected by play/pause.
// State label updates are owned by StatusPresenter.
type PlaybackView interface {
	ConfigEditable(bool)
	SetToggleLabel(string)
	PreviewReset()
}

// PlaybackPresenter owns presentation logic for the play/pause control.
type PlaybackPresenter struct {
	player PlaybackControl
	view   PlaybackView
}

func NewPlaybackPresenter(player PlaybackControl, view PlaybackView) *PlaybackPresenter {
	return &PlaybackPresenter{player: player, view: view}
}

// Play starts or resumes playback and locks the config form. Idempotent.
func (p *PlaybackPresenter) Play() {
	if p == nil || p.player == nil || p.view == nil {
		return
	}
	if p.player.Playing() {
		return
	}
	p.player.Play()
	if !p.player.Playing() { // idle or ended
		return
	}
	p.view.ConfigEditable(false)
	p.view.SetToggleLabel("Pause")
}

// Pause suspends playback and unlocks the config form. Idempotent.
func (p *PlaybackPresenter) Pause() {
	if p == nil || p.player == nil || p.view == nil {
		return
	}
	if !p.player.Playing() {
		return
	}
	p.player.Pause()
	p.view.ConfigEditable(true)
	p.view.SetToggleLabel("Play")
}

// Toggle flips playback delegating to Play/Pause.
func (p *PlaybackPresenter) Toggle() {
	if p == nil || p.player == nil {
		return
	}
	if p.player.Playing() {
		p.Pause()
		return
	}
	p.Play()
}

// OnSignal unlocks the form when the source ends on its own.
func (p *PlaybackPresenter) OnSignal(s capture.Signal) {
	if p == nil || p.view == nil || s != capture.SignalEnded {
		return
	}
	p.view.ConfigEditable(true)
	p.view.SetToggleLabel("Ended")
	p.view.PreviewReset()
}
