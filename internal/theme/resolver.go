package theme

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/confideapp/confide/internal/kv"
	"github.com/confideapp/confide/internal/logger"
)

// Persistence keys within the kv port.
const (
	activeKey = "theme"
	autoKey   = "theme_auto"
)

// ErrLocked is returned when switching to a theme whose gift threshold has
// not been reached. The active theme is left unchanged.
var ErrLocked = errors.New("theme is locked")

// Options configures a Resolver.
type Options struct {
	Store kv.Store
	// Apply receives the effective theme on every change. It must be a
	// synchronous, purely local side effect (restyling the TUI).
	Apply func(Definition)
	// SystemDark probes the system/terminal light-dark preference. Defaults
	// to lipgloss background detection.
	SystemDark func() bool
}

// Resolver is the theme state machine: manual(themeID) or auto. The active
// theme and the auto flag are persisted; the unlocked set never is, it is
// recomputed from the gift counter.
type Resolver struct {
	store      kv.Store
	apply      func(Definition)
	systemDark func() bool

	active   string
	auto     bool
	unlocked map[string]bool
}

// NewResolver restores the persisted selection and applies the effective
// theme. Before the first profile load the unlocked set covers baselines
// only.
func NewResolver(opts Options) *Resolver {
	r := &Resolver{
		store:      opts.Store,
		apply:      opts.Apply,
		systemDark: opts.SystemDark,
		unlocked:   UnlockedSet(0),
	}
	if r.store == nil {
		r.store = kv.NewMemoryStore()
	}
	if r.apply == nil {
		r.apply = func(Definition) {}
	}
	if r.systemDark == nil {
		r.systemDark = lipgloss.HasDarkBackground
	}

	r.active = DefaultTheme
	if v, ok, err := r.store.Get(activeKey); err == nil && ok {
		if _, known := Lookup(v); known {
			r.active = v
		}
	}
	if v, ok, err := r.store.Get(autoKey); err == nil && ok && v == "true" {
		r.auto = true
		r.active = r.systemPreferred()
	}

	r.applyActive()
	return r
}

func (r *Resolver) systemPreferred() string {
	if r.systemDark() {
		return Dark
	}
	return Light
}

func (r *Resolver) applyActive() {
	if def, ok := Lookup(r.active); ok {
		r.apply(def)
	}
}

// Active returns the effective theme definition.
func (r *Resolver) Active() Definition {
	def, _ := Lookup(r.active)
	return def
}

// AutoMode reports whether the resolver follows the system preference.
func (r *Resolver) AutoMode() bool {
	return r.auto
}

// Unlocked returns the currently unlocked theme definitions in unlock order.
func (r *Resolver) Unlocked() []Definition {
	var out []Definition
	for _, def := range All() {
		if r.unlocked[def.ID] {
			out = append(out, def)
		}
	}
	return out
}

// IsUnlocked reports whether the theme may be switched to.
func (r *Resolver) IsUnlocked(id string) bool {
	return r.unlocked[id]
}

// Switch selects a theme manually. A locked or unknown id is a no-op that
// reports failure; otherwise auto-mode is cleared, both values are
// persisted, and the palette is applied immediately.
func (r *Resolver) Switch(id string) error {
	def, ok := Lookup(id)
	if !ok {
		return fmt.Errorf("unknown theme %q", id)
	}
	if !r.unlocked[id] {
		return fmt.Errorf("%s needs %d gifts: %w", def.Name, def.Threshold, ErrLocked)
	}

	r.active = id
	r.auto = false
	if err := r.store.Set(activeKey, id); err != nil {
		logger.Warn("failed to persist theme", logger.F("error", err))
	}
	if err := r.store.Set(autoKey, "false"); err != nil {
		logger.Warn("failed to persist auto flag", logger.F("error", err))
	}
	r.applyActive()
	return nil
}

// SetAuto flips auto-mode. Turning it on recomputes and applies the
// system-preferred baseline immediately; turning it off stays on whatever
// theme was last applied.
func (r *Resolver) SetAuto(on bool) {
	r.auto = on
	if err := r.store.Set(autoKey, fmt.Sprint(on)); err != nil {
		logger.Warn("failed to persist auto flag", logger.F("error", err))
	}
	if on {
		r.active = r.systemPreferred()
		if err := r.store.Set(activeKey, r.active); err != nil {
			logger.Warn("failed to persist theme", logger.F("error", err))
		}
		r.applyActive()
	}
}

// SystemChanged handles a system light/dark preference change: reapply in
// auto state, no-op in manual state.
func (r *Resolver) SystemChanged() {
	if !r.auto {
		return
	}
	r.active = r.systemPreferred()
	if err := r.store.Set(activeKey, r.active); err != nil {
		logger.Warn("failed to persist theme", logger.F("error", err))
	}
	r.applyActive()
}

// SetGiftCount recomputes the unlocked set from a fresh lifetime
// gifts-received counter. The set only gates switching; an active theme
// that falls below its threshold stays active.
func (r *Resolver) SetGiftCount(giftsReceived int) {
	r.unlocked = UnlockedSet(giftsReceived)
}
