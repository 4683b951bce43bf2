package tui

import (
	"testing"

	"github.com/confideapp/confide/internal/model"
)

func TestTruncate(t *testing.T) {
	cases := []struct {
		in    string
		width int
		want  string
	}{
		{"short", 10, "short"},
		{"exactly ten", 11, "exactly ten"},
		{"this one is definitely too long", 10, "this one …"},
		{"héllo wörld", 7, "héllo …"},
		{"anything", 1, "…"},
	}
	for _, tc := range cases {
		if got := truncate(tc.in, tc.width); got != tc.want {
			t.Fatalf("truncate(%q, %d) = %q, want %q", tc.in, tc.width, got, tc.want)
		}
	}
}

func TestNextMoodFilterCyclesThroughAllMoods(t *testing.T) {
	current := ""
	seen := map[string]bool{}
	for range model.Moods {
		current = nextMoodFilter(current)
		if current == "" {
			t.Fatalf("filter returned to all-moods before visiting every mood")
		}
		if seen[current] {
			t.Fatalf("mood %q visited twice", current)
		}
		seen[current] = true
	}
	if next := nextMoodFilter(current); next != "" {
		t.Fatalf("expected cycle back to all-moods, got %q", next)
	}
}

func TestNextMoodFilterUnknownResetsToAll(t *testing.T) {
	if got := nextMoodFilter("not-a-mood"); got != "" {
		t.Fatalf("expected reset to all-moods, got %q", got)
	}
}
