package sections

import (
	"strings"
	"testing"

	"github.com/atomicstack/popup-settings/internal/section"
	"github.com/atomicstack/popup-settings/internal/state"
)

type stubPanel struct {
	binding *section.Binding
}

func (p *stubPanel) CurrentSection() section.ReadOnlyBinding { return p.binding }
func (p *stubPanel) ScrollTo(s *section.Section)            { p.binding.Set(s) }

func TestBuildCreatesSectionsInOrder(t *testing.T) {
	panel := &stubPanel{binding: section.NewBinding()}
	store := state.NewSettingsStore(nil)
	built := Build(panel, store, nil)

	want := []string{"General", "Audio", "Graphics", "Input", "Maintenance"}
	if len(built) != len(want) {
		t.Fatalf("expected %d sections, got %d", len(want), len(built))
	}
	for i, s := range built {
		if s.Header() != want[i] {
			t.Fatalf("expected section %d to be %q, got %q", i, want[i], s.Header())
		}
		if s.Icon().Glyph == "" {
			t.Fatalf("expected %s to carry an icon", s.Header())
		}
		if len(s.Controls()) == 0 {
			t.Fatalf("expected %s to have controls", s.Header())
		}
	}
	if panel.binding.Subscribers() != len(want) {
		t.Fatalf("expected every section to observe the binding, got %d", panel.binding.Subscribers())
	}
}

func TestControlKeysAreScopedToTable(t *testing.T) {
	store := state.NewSettingsStore(nil)
	for _, v := range All() {
		v.Controls(store)
	}
	snap := store.Snapshot()
	if len(snap) == 0 {
		t.Fatal("expected controls to register defaults")
	}
	tables := map[string]bool{}
	for _, v := range All() {
		tables[v.Table()] = true
	}
	for key := range snap {
		table, _, ok := strings.Cut(key, ".")
		if !ok || !tables[table] {
			t.Fatalf("unexpected settings key %q", key)
		}
	}
}

func TestGraphicsMatchesDisplayKeyword(t *testing.T) {
	panel := &stubPanel{binding: section.NewBinding()}
	s := New(Graphics{}, panel, state.NewSettingsStore(nil), nil)
	if !section.ApplyFilter(s, "display") {
		t.Fatal("expected graphics section to match its display keyword")
	}
	for _, c := range s.Controls() {
		if !c.Visible() {
			t.Fatalf("expected %q kept visible under a matching section", c.Label())
		}
	}
}

func TestAudioHeaderOnlyTerms(t *testing.T) {
	panel := &stubPanel{binding: section.NewBinding()}
	s := New(Audio{}, panel, state.NewSettingsStore(nil), nil)
	terms := s.FilterTerms()
	if len(terms) != 1 || terms[0] != "Audio" {
		t.Fatalf("expected header-only terms, got %v", terms)
	}
}
