// Package theme owns the light/dark flag. The flag is read from the
// preference store at startup, applied to the page body and persisted on
// every toggle.
package theme

import (
	"github.com/five82/floorboard/internal/logging"
	"github.com/five82/floorboard/internal/logsink"
	"github.com/five82/floorboard/internal/prefs"
	"github.com/five82/floorboard/internal/state"
)

// Mode is the active color scheme.
type Mode string

const (
	Light Mode = "light"
	Dark  Mode = "dark"
)

// Element ids, class and preference key the preference touches.
const (
	BodyID    = "body"
	ToggleID  = "theme-toggle"
	DarkClass = "dark-mode"
	PrefKey   = "theme"
)

// Toggle labels name the mode a press switches to.
const (
	DayLabel   = "☀ Day mode"
	NightLabel = "☾ Night mode"
)

// Next returns the opposite mode.
func (m Mode) Next() Mode {
	if m == Dark {
		return Light
	}
	return Dark
}

// Label returns the toggle label shown while m is active.
func (m Mode) Label() string {
	if m == Dark {
		return DayLabel
	}
	return NightLabel
}

// Preference applies and persists the theme flag.
type Preference struct {
	target state.Target
	store  prefs.Store
	sink   logsink.Sink
	diag   *logging.Logger

	mode Mode
}

// New returns a Preference in light mode. Call Initialize to load the stored
// value. diag may be nil.
func New(target state.Target, store prefs.Store, sink logsink.Sink, diag *logging.Logger) *Preference {
	if diag == nil {
		diag = logging.NopLogger()
	}
	return &Preference{target: target, store: store, sink: sink, diag: diag, mode: Light}
}

// Initialize reads the stored flag and applies it. Anything other than "dark"
// means light.
func (p *Preference) Initialize() {
	p.mode = Light
	if p.store != nil {
		if v, ok := p.store.Get(PrefKey); ok && Mode(v) == Dark {
			p.mode = Dark
		}
	}
	p.apply()
}

// Toggle flips the mode, applies and persists it and logs the change. A
// failed write keeps the in-memory mode.
func (p *Preference) Toggle() Mode {
	p.mode = p.mode.Next()
	p.apply()

	if p.store != nil {
		if err := p.store.Set(PrefKey, string(p.mode)); err != nil {
			p.diag.Warn("persist theme", "error", err, "mode", string(p.mode))
		}
	}

	if p.sink != nil {
		msg := "Light mode enabled"
		if p.mode == Dark {
			msg = "Night mode enabled"
		}
		p.sink.Log(logsink.SeverityInfo, msg)
	}
	return p.mode
}

// Mode returns the active mode.
func (p *Preference) Mode() Mode {
	return p.mode
}

func (p *Preference) apply() {
	p.target.SetClass(BodyID, DarkClass, p.mode == Dark)
	p.target.SetText(ToggleID, p.mode.Label())
}
