package jsontree

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// SearchResult lists the nodes matching a query and the branches that must
// be open for every match to be visible.
type SearchResult struct {
	Matches []string
	Expand  []string
	// Fuzzy is set when no node contained the query and the matches come
	// from subsequence matching instead.
	Fuzzy bool
}

// Search finds nodes whose name or scalar value contains query, ignoring
// case. When nothing matches that way, it falls back to fuzzy subsequence
// matching. An empty query matches nothing and expands every branch.
func (t *Tree) Search(query string) SearchResult {
	query = strings.TrimSpace(query)
	if query == "" {
		return SearchResult{Expand: t.BranchIDs()}
	}

	lower := strings.ToLower(query)
	matches := t.collect(func(candidate string) bool {
		return strings.Contains(strings.ToLower(candidate), lower)
	})
	fuzzyUsed := false
	if len(matches) == 0 {
		matches = t.collect(func(candidate string) bool {
			return fuzzy.MatchFold(query, candidate)
		})
		fuzzyUsed = len(matches) > 0
	}

	return SearchResult{
		Matches: matches,
		Expand:  t.expansionFor(matches),
		Fuzzy:   fuzzyUsed,
	}
}

func (t *Tree) collect(match func(candidate string) bool) []string {
	var ids []string
	for _, n := range t.order {
		if n.ParentID == "" {
			continue
		}
		if (n.Index < 0 && match(n.Key)) || (n.searchText() != "" && match(n.searchText())) {
			ids = append(ids, n.ID)
		}
	}
	return ids
}

func (t *Tree) expansionFor(matches []string) []string {
	need := make(map[string]bool)
	for _, id := range matches {
		for _, a := range t.Ancestors(id) {
			need[a] = true
		}
	}

	ids := make([]string, 0, len(need))
	for _, n := range t.order {
		if need[n.ID] {
			ids = append(ids, n.ID)
		}
	}
	return ids
}
