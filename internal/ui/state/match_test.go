package state

import "testing"

func TestBestMatchIndexPrefersExactThenPrefix(t *testing.T) {
	labels := []string{"General", "Audio", "Graphics", "Input"}
	cases := []struct {
		query string
		want  int
	}{
		{"", 0},
		{"audio", 1},
		{"gr", 2},
		{"put", 3},
		{"grphcs", 2},
		{"zzz", -1},
	}
	for _, tc := range cases {
		if got := BestMatchIndex(labels, tc.query); got != tc.want {
			t.Fatalf("query %q: expected %d, got %d", tc.query, tc.want, got)
		}
	}
}

func TestBestMatchIndexEmpty(t *testing.T) {
	if got := BestMatchIndex(nil, "x"); got != -1 {
		t.Fatalf("expected -1 for no labels, got %d", got)
	}
}
