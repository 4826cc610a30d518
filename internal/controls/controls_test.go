package controls

import (
	"reflect"
	"testing"

	"github.com/atomicstack/popup-settings/internal/section"
	"github.com/atomicstack/popup-settings/internal/settings"
	"github.com/atomicstack/popup-settings/internal/state"
)

func TestCheckboxToggles(t *testing.T) {
	store := state.NewSettingsStore(nil)
	cb := NewCheckbox(store, "audio.muted", "Mute", false)

	if cb.Value() != "off" {
		t.Fatalf("expected default off, got %q", cb.Value())
	}
	if !cb.Activate() || !store.Bool("audio.muted") {
		t.Fatal("expected activate to turn the checkbox on")
	}
	if cb.Adjust(1) {
		t.Fatal("expected adjust towards current value to be a no-op")
	}
	if !cb.Adjust(-1) || cb.Checked() {
		t.Fatal("expected negative adjust to turn the checkbox off")
	}
}

func TestSliderClampsAndWraps(t *testing.T) {
	store := state.NewSettingsStore(settings.Values{"audio.master_volume": int64(95)})
	s := NewSlider(store, "audio.master_volume", "Master volume", 0, 100, 10, 80, "%")

	if s.Value() != "95%" {
		t.Fatalf("expected stored value to win over default, got %q", s.Value())
	}
	if !s.Adjust(1) || s.Current() != 100 {
		t.Fatalf("expected clamp to max, got %d", s.Current())
	}
	if s.Adjust(1) {
		t.Fatal("expected adjust past max to report no change")
	}
	if !s.Activate() || s.Current() != 0 {
		t.Fatalf("expected activate to wrap to min, got %d", s.Current())
	}
	if s.Fraction() != 0 {
		t.Fatalf("expected fraction 0 at min, got %v", s.Fraction())
	}
}

func TestEnumCycles(t *testing.T) {
	store := state.NewSettingsStore(nil)
	e := NewEnum(store, "graphics.renderer", "Renderer", []string{"opengl", "vulkan", "metal"}, "vulkan")

	if e.Index() != 1 {
		t.Fatalf("expected default index 1, got %d", e.Index())
	}
	e.Activate()
	if e.Value() != "metal" {
		t.Fatalf("expected metal after activate, got %q", e.Value())
	}
	e.Adjust(1)
	if e.Value() != "opengl" {
		t.Fatalf("expected wrap to opengl, got %q", e.Value())
	}
	e.Adjust(-1)
	if e.Value() != "metal" {
		t.Fatalf("expected wrap back to metal, got %q", e.Value())
	}
}

func TestControlFilterTerms(t *testing.T) {
	store := state.NewSettingsStore(nil)
	e := NewEnum(store, "graphics.renderer", "Renderer", []string{"opengl", "vulkan"}, "opengl", "backend")

	want := []string{"Renderer", "backend", "opengl", "vulkan"}
	if got := e.FilterTerms(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected terms %v, got %v", want, got)
	}
	if !section.MatchesFilter(e.FilterTerms(), "VULK") {
		t.Fatal("expected option names to be searchable")
	}
	section.ApplyFilter(e, "zzz")
	if e.Visible() {
		t.Fatal("expected control hidden after non-matching filter")
	}
	if !e.FilteringActive() {
		t.Fatal("expected filtering flag set")
	}
}
