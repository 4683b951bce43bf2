package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/confideapp/confide/internal/theme"
)

// Styles is the render set for the current theme. It is rebuilt whenever the
// theme resolver applies a new palette.
type Styles struct {
	Header       lipgloss.Style
	Feed         lipgloss.Style
	Item         lipgloss.Style
	ItemSelected lipgloss.Style
	ItemMine     lipgloss.Style
	Mood         lipgloss.Style
	Muted        lipgloss.Style
	Border       lipgloss.Style
	StatusBar    lipgloss.Style
	Modal        lipgloss.Style
	Help         lipgloss.Style
	Badge        lipgloss.Style
}

// NewStyles builds the style set from a theme definition.
func NewStyles(def theme.Definition) Styles {
	p := def.Palette
	return Styles{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary).
			Padding(0, 1),

		Feed: lipgloss.NewStyle().
			Padding(1, 2),

		Item: lipgloss.NewStyle().
			Foreground(p.Text).
			Padding(0, 1),

		ItemSelected: lipgloss.NewStyle().
			Foreground(p.Text).
			Padding(0, 1).
			Background(p.Surface).
			Bold(true),

		ItemMine: lipgloss.NewStyle().
			Foreground(p.Highlight).
			Padding(0, 1),

		Mood: lipgloss.NewStyle().
			Foreground(p.Primary).
			Bold(true),

		Muted: lipgloss.NewStyle().
			Foreground(p.TextMuted),

		Border: lipgloss.NewStyle().
			Foreground(p.Border),

		StatusBar: lipgloss.NewStyle().
			Foreground(p.TextMuted).
			Padding(0, 1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(p.Border),

		Modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Primary).
			Padding(1, 2),

		Help: lipgloss.NewStyle().
			Foreground(p.TextMuted),

		Badge: lipgloss.NewStyle().
			Foreground(p.Background).
			Background(p.Highlight).
			Padding(0, 1).
			Bold(true),
	}
}

// moodGlyphs decorate feed items per mood.
var moodGlyphs = map[string]string{
	"joy":     "☀",
	"sadness": "☂",
	"anger":   "⚡",
	"fear":    "◎",
	"love":    "♥",
	"neutral": "·",
}

func moodGlyph(mood string) string {
	if g, ok := moodGlyphs[mood]; ok {
		return g
	}
	return "·"
}
