package state

import "testing"

func TestViewportClampsOffset(t *testing.T) {
	v := Viewport{Height: 5, Content: 12}
	if v.MaxOffset() != 7 {
		t.Fatalf("expected max offset 7, got %d", v.MaxOffset())
	}
	if !v.ScrollToRow(10) || v.Offset != 7 {
		t.Fatalf("expected offset clamped to 7, got %d", v.Offset)
	}
	if v.ScrollBy(3) {
		t.Fatal("expected scroll past the end to report no change")
	}
	if !v.ScrollBy(-20) || v.Offset != 0 {
		t.Fatalf("expected offset clamped to 0, got %d", v.Offset)
	}
}

func TestViewportShortContent(t *testing.T) {
	v := Viewport{Height: 10, Content: 4, Offset: 3}
	v.Clamp()
	if v.Offset != 0 {
		t.Fatalf("expected short content to pin offset at 0, got %d", v.Offset)
	}
	if !v.Visible(3) || v.Visible(10) {
		t.Fatal("unexpected row visibility")
	}
}

func TestViewportUnboundedHeight(t *testing.T) {
	v := Viewport{Content: 40}
	if v.MaxOffset() != 0 || !v.Visible(39) {
		t.Fatal("expected an unsized viewport to show everything")
	}
}
