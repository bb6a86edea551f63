package theme

// Widget styles for the circle-shot window. Accent colours come from the
// overlay so the controls match what is drawn on the frame: the toggle uses
// the FPS label blue, exit the circle red and the state badge a darkened trail
// yellow.

import (
	"github.com/lucasb-eyer/go-colorful"
	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"

	"github.com/soocke/circle-shot-go/domain/overlay"
)

// Style names used with Style(...).
const (
	StylePrimaryButton = "primary.TButton"
	StyleDangerButton  = "danger.TButton"
	StyleStatsLabel    = "stats.TLabel"
	StyleStateLabel    = "state.TLabel"
)

var (
	paper = colorful.Color{R: 0.97, G: 0.98, B: 0.98}
	ink   = colorful.Color{R: 0.12, G: 0.16, B: 0.23}
)

// Palette holds resolved Tk colour strings.
type Palette struct {
	Background string
	Surface    string
	Text       string
	Muted      string
	Primary    string
	Danger     string
	State      string
}

// NewPalette derives the widget colours.
func NewPalette() Palette {
	return Palette{
		Background: paper.Hex(),
		Surface:    "#ffffff",
		Text:       ink.Hex(),
		Muted:      ink.BlendLab(paper, 0.45).Clamped().Hex(),
		Primary:    overlay.Blue.BlendLab(ink, 0.15).Clamped().Hex(),
		Danger:     overlay.Red.BlendLab(ink, 0.15).Clamped().Hex(),
		State:      overlay.Yellow.BlendLab(ink, 0.2).Clamped().Hex(),
	}
}

// InitStyles activates the base theme and configures the named styles.
func InitStyles() {
	p := NewPalette()
	_ = ActivateTheme("azure light")
	App.Configure(Background(p.Background))

	for _, b := range []struct{ name, bg string }{
		{StylePrimaryButton, p.Primary},
		{StyleDangerButton, p.Danger},
	} {
		StyleConfigure(b.name,
			Background(b.bg),
			Foreground("white"),
			Padding("4p 3p"),
			Borderwidth(1),
			Relief("ridge"),
		)
	}
	StyleConfigure(StyleStatsLabel,
		Foreground(p.Muted),
		Background(p.Surface),
		Padding("2p 1p"),
	)
	// Dark text on the yellow badge.
	StyleConfigure(StyleStateLabel,
		Foreground(p.Text),
		Background(p.State),
		Padding("4p 2p"),
		Borderwidth(1),
		Relief("groove"),
	)
}
