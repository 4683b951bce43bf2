package theme

import (
	"errors"
	"testing"

	"github.com/confideapp/confide/internal/kv"
)

func newTestResolver(t *testing.T, store kv.Store, dark bool) (*Resolver, *string) {
	t.Helper()
	var applied string
	r := NewResolver(Options{
		Store:      store,
		Apply:      func(d Definition) { applied = d.ID },
		SystemDark: func() bool { return dark },
	})
	return r, &applied
}

func TestUnlockedSetThresholds(t *testing.T) {
	cases := []struct {
		gifts int
		want  []string
	}{
		{0, []string{Light, Dark}},
		{49, []string{Light, Dark}},
		{50, []string{Light, Dark, MidnightRose}},
		{150, []string{Light, Dark, MidnightRose, GoldenHour}},
		{399, []string{Light, Dark, MidnightRose, GoldenHour}},
		{400, []string{Light, Dark, MidnightRose, GoldenHour, Aurora}},
	}
	for _, tc := range cases {
		got := UnlockedSet(tc.gifts)
		if len(got) != len(tc.want) {
			t.Fatalf("gifts=%d: unlocked %v, want %v", tc.gifts, got, tc.want)
		}
		for _, id := range tc.want {
			if !got[id] {
				t.Fatalf("gifts=%d: %s should be unlocked", tc.gifts, id)
			}
		}
	}
}

func TestSwitchToLockedThemeIsNoOp(t *testing.T) {
	r, applied := newTestResolver(t, kv.NewMemoryStore(), false)

	err := r.Switch(MidnightRose)
	if !errors.Is(err, ErrLocked) {
		t.Fatalf("expected ErrLocked, got %v", err)
	}
	if r.Active().ID != Light {
		t.Fatalf("active = %s, want light to remain", r.Active().ID)
	}
	if *applied != Light {
		t.Fatalf("applied = %s, locked switch must not restyle", *applied)
	}
}

func TestSwitchToUnknownThemeFails(t *testing.T) {
	r, _ := newTestResolver(t, kv.NewMemoryStore(), false)

	if err := r.Switch("neon-void"); err == nil {
		t.Fatalf("unknown theme must be rejected")
	}
	if r.Active().ID != Light {
		t.Fatalf("active changed on unknown theme")
	}
}

func TestGiftProgressionUnlocksSwitch(t *testing.T) {
	store := kv.NewMemoryStore()
	r, applied := newTestResolver(t, store, false)

	if err := r.Switch(MidnightRose); !errors.Is(err, ErrLocked) {
		t.Fatalf("at 0 gifts expected ErrLocked, got %v", err)
	}
	if r.Active().ID != Light {
		t.Fatalf("active = %s, want light", r.Active().ID)
	}

	r.SetGiftCount(60)
	if err := r.Switch(MidnightRose); err != nil {
		t.Fatalf("at 60 gifts Switch failed: %v", err)
	}
	if r.Active().ID != MidnightRose || *applied != MidnightRose {
		t.Fatalf("active = %s, applied = %s; want midnight-rose", r.Active().ID, *applied)
	}

	// Selection persisted: a fresh resolver over the same store restores it.
	r2, _ := newTestResolver(t, store, false)
	if r2.Active().ID != MidnightRose {
		t.Fatalf("restored active = %s, want midnight-rose", r2.Active().ID)
	}
}

func TestAutoModeFollowsSystemPreference(t *testing.T) {
	store := kv.NewMemoryStore()
	r, applied := newTestResolver(t, store, true)
	r.SetGiftCount(500)

	if err := r.Switch(Aurora); err != nil {
		t.Fatalf("Switch: %v", err)
	}

	// Turning auto on must apply the system-preferred baseline immediately,
	// regardless of the previous manual theme.
	r.SetAuto(true)
	if !r.AutoMode() {
		t.Fatalf("auto mode should be on")
	}
	if r.Active().ID != Dark || *applied != Dark {
		t.Fatalf("active = %s, applied = %s; want dark under a dark system", r.Active().ID, *applied)
	}

	// Turning auto off stays on whatever was last applied.
	r.SetAuto(false)
	if r.Active().ID != Dark {
		t.Fatalf("active = %s, want dark after auto off", r.Active().ID)
	}
}

func TestSystemChangedOnlyActsInAuto(t *testing.T) {
	dark := false
	var applied string
	r := NewResolver(Options{
		Store:      kv.NewMemoryStore(),
		Apply:      func(d Definition) { applied = d.ID },
		SystemDark: func() bool { return dark },
	})

	// Manual state: preference changes are ignored.
	dark = true
	r.SystemChanged()
	if r.Active().ID != Light {
		t.Fatalf("manual state must ignore system changes, active = %s", r.Active().ID)
	}

	r.SetAuto(true)
	if r.Active().ID != Dark {
		t.Fatalf("auto on under dark system: active = %s", r.Active().ID)
	}

	dark = false
	r.SystemChanged()
	if r.Active().ID != Light || applied != Light {
		t.Fatalf("auto state must follow system change, active = %s", r.Active().ID)
	}
}

func TestAutoFlagPersistsAcrossRestart(t *testing.T) {
	store := kv.NewMemoryStore()
	r, _ := newTestResolver(t, store, false)
	r.SetAuto(true)

	// Restart with a dark system: auto state resolves from the preference,
	// not from the persisted theme id.
	r2, applied := newTestResolver(t, store, true)
	if !r2.AutoMode() {
		t.Fatalf("auto flag should persist")
	}
	if r2.Active().ID != Dark || *applied != Dark {
		t.Fatalf("restored active = %s, want dark", r2.Active().ID)
	}
}

func TestSwitchClearsAutoMode(t *testing.T) {
	r, _ := newTestResolver(t, kv.NewMemoryStore(), true)
	r.SetAuto(true)

	if err := r.Switch(Light); err != nil {
		t.Fatalf("Switch: %v", err)
	}
	if r.AutoMode() {
		t.Fatalf("manual switch must clear auto mode")
	}
}

func TestActiveThemeSurvivesLosingItsTier(t *testing.T) {
	r, _ := newTestResolver(t, kv.NewMemoryStore(), false)
	r.SetGiftCount(200)
	if err := r.Switch(GoldenHour); err != nil {
		t.Fatalf("Switch: %v", err)
	}

	// A lower counter (fresh account data) only gates future switches.
	r.SetGiftCount(0)
	if r.Active().ID != GoldenHour {
		t.Fatalf("active theme must not be revoked, got %s", r.Active().ID)
	}
	if err := r.Switch(MidnightRose); !errors.Is(err, ErrLocked) {
		t.Fatalf("expected ErrLocked after recompute, got %v", err)
	}
}
