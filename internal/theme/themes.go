// Package theme computes which visual themes are unlocked from the lifetime
// gifts-received counter and manages the active theme plus auto-mode. It is
// a pure client-local state machine; no network calls.
package theme

import "github.com/charmbracelet/lipgloss"

// Palette is the set of colors a theme contributes to the TUI.
type Palette struct {
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Background lipgloss.Color
	Surface    lipgloss.Color
	Text       lipgloss.Color
	TextMuted  lipgloss.Color
	Border     lipgloss.Color
	Highlight  lipgloss.Color
}

// Definition is one theme: identifier, display name, the gift threshold that
// unlocks it (0 = baseline, always unlocked), and its palette.
type Definition struct {
	ID        string
	Name      string
	Threshold int
	Dark      bool
	Palette   Palette
}

// Theme identifiers.
const (
	Light        = "light"
	Dark         = "dark"
	MidnightRose = "midnight-rose"
	GoldenHour   = "golden-hour"
	Aurora       = "aurora"
)

// DefaultTheme is applied when nothing is persisted.
const DefaultTheme = Light

// themes lists every theme in unlock order. The two baselines carry a zero
// threshold; each tier names the lifetime gift count that unlocks it.
var themes = []Definition{
	{
		ID: Light, Name: "Light", Threshold: 0, Dark: false,
		Palette: Palette{
			Primary:    lipgloss.Color("#5A67D8"),
			Secondary:  lipgloss.Color("#718096"),
			Background: lipgloss.Color("#FFFFFF"),
			Surface:    lipgloss.Color("#EDF2F7"),
			Text:       lipgloss.Color("#1A202C"),
			TextMuted:  lipgloss.Color("#A0AEC0"),
			Border:     lipgloss.Color("#CBD5E0"),
			Highlight:  lipgloss.Color("#5A67D8"),
		},
	},
	{
		ID: Dark, Name: "Dark", Threshold: 0, Dark: true,
		Palette: Palette{
			Primary:    lipgloss.Color("#4ECDC4"),
			Secondary:  lipgloss.Color("#6C757D"),
			Background: lipgloss.Color("#1a1a2e"),
			Surface:    lipgloss.Color("#16213e"),
			Text:       lipgloss.Color("#FFFFFF"),
			TextMuted:  lipgloss.Color("#888888"),
			Border:     lipgloss.Color("#333333"),
			Highlight:  lipgloss.Color("#4ECDC4"),
		},
	},
	{
		ID: MidnightRose, Name: "Midnight Rose", Threshold: 50, Dark: true,
		Palette: Palette{
			Primary:    lipgloss.Color("#E84393"),
			Secondary:  lipgloss.Color("#B2BEC3"),
			Background: lipgloss.Color("#190A14"),
			Surface:    lipgloss.Color("#2D1220"),
			Text:       lipgloss.Color("#FFEAF4"),
			TextMuted:  lipgloss.Color("#9E7B8D"),
			Border:     lipgloss.Color("#4A1F35"),
			Highlight:  lipgloss.Color("#FD79A8"),
		},
	},
	{
		ID: GoldenHour, Name: "Golden Hour", Threshold: 150, Dark: true,
		Palette: Palette{
			Primary:    lipgloss.Color("#FFB347"),
			Secondary:  lipgloss.Color("#A89984"),
			Background: lipgloss.Color("#1C1408"),
			Surface:    lipgloss.Color("#2E2210"),
			Text:       lipgloss.Color("#FFF4DB"),
			TextMuted:  lipgloss.Color("#A08C5B"),
			Border:     lipgloss.Color("#4D3A18"),
			Highlight:  lipgloss.Color("#FFD700"),
		},
	},
	{
		ID: Aurora, Name: "Aurora", Threshold: 400, Dark: true,
		Palette: Palette{
			Primary:    lipgloss.Color("#00E5A0"),
			Secondary:  lipgloss.Color("#7F8FA6"),
			Background: lipgloss.Color("#060D1A"),
			Surface:    lipgloss.Color("#0E1B30"),
			Text:       lipgloss.Color("#E6FFF7"),
			TextMuted:  lipgloss.Color("#5C7A8F"),
			Border:     lipgloss.Color("#14324A"),
			Highlight:  lipgloss.Color("#64FFDA"),
		},
	},
}

// All returns every theme definition in unlock order.
func All() []Definition {
	out := make([]Definition, len(themes))
	copy(out, themes)
	return out
}

// Lookup returns a theme definition by id.
func Lookup(id string) (Definition, bool) {
	for _, def := range themes {
		if def.ID == id {
			return def, true
		}
	}
	return Definition{}, false
}

// UnlockedSet returns the ids unlocked at the given lifetime gift count:
// both baselines unconditionally, plus every tier whose threshold is met.
func UnlockedSet(giftsReceived int) map[string]bool {
	unlocked := make(map[string]bool)
	for _, def := range themes {
		if def.Threshold == 0 || giftsReceived >= def.Threshold {
			unlocked[def.ID] = true
		}
	}
	return unlocked
}
