package tui

import "github.com/confideapp/confide/internal/model"

// truncate cuts a string to width runes, appending an ellipsis when
// anything was dropped.
func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 1 {
		return "…"
	}
	return string(runes[:width-1]) + "…"
}

func currentMood(index int) string {
	if index < 0 || index >= len(model.Moods) {
		return model.MoodNeutral
	}
	return model.Moods[index]
}
