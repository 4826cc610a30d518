package section

import "strings"

// Filterable is implemented by anything that takes part in a filter pass.
// Leaves return no children.
type Filterable interface {
	// FilterTerms returns the text fragments a query is matched against.
	FilterTerms() []string
	// FilterableChildren returns the direct children that take part too.
	FilterableChildren() []Filterable
	// SetMatchingFilter shows or hides the item after a filter pass.
	SetMatchingFilter(matching bool)
	// SetFilteringActive records whether a non-empty query is applied.
	SetFilteringActive(active bool)
}

// MatchesFilter reports whether any term contains query, ignoring case. The
// query is matched as given; an empty query matches everything.
func MatchesFilter(terms []string, query string) bool {
	needle := strings.ToLower(query)
	if needle == "" {
		return true
	}
	for _, term := range terms {
		if strings.Contains(strings.ToLower(term), needle) {
			return true
		}
	}
	return false
}

// CollectTerms returns the terms of f and, recursively, of its children,
// without duplicates and in discovery order.
func CollectTerms(f Filterable) []string {
	seen := make(map[string]struct{})
	var out []string
	var walk func(Filterable)
	walk = func(node Filterable) {
		for _, term := range node.FilterTerms() {
			if _, ok := seen[term]; ok {
				continue
			}
			seen[term] = struct{}{}
			out = append(out, term)
		}
		for _, child := range node.FilterableChildren() {
			walk(child)
		}
	}
	walk(f)
	return out
}

// ApplyFilter runs a filter pass over f and its descendants and reports
// whether f matched. A node matches when its own terms match, when a
// descendant matches, or when an ancestor matched on its own terms (a
// matching section keeps all of its controls).
func ApplyFilter(f Filterable, query string) bool {
	active := query != ""
	return applyFilter(f, query, active, false)
}

func applyFilter(f Filterable, query string, active, ancestorMatched bool) bool {
	self := MatchesFilter(f.FilterTerms(), query)
	childMatched := false
	for _, child := range f.FilterableChildren() {
		if applyFilter(child, query, active, ancestorMatched || self) {
			childMatched = true
		}
	}
	matching := ancestorMatched || self || childMatched
	f.SetFilteringActive(active)
	f.SetMatchingFilter(matching)
	return matching
}
