package query

import (
	"iter"
	"strings"

	"github.com/roach88/skillbridge/internal/catalog"
)

// CategoryAll is the sentinel category that matches every skill.
const CategoryAll = "all"

// FilterSkills returns the skills matching a category and a free-text
// search term, in the store's insertion order.
//
// The category predicate matches case-insensitively against the skill's
// category; CategoryAll (or an empty category) matches everything. The
// search term, when non-empty, must be a case-insensitive substring of
// the title OR the description. Both predicates are ANDed.
//
// The returned sequence is lazy and restartable: ranging over it twice
// yields the same skills in the same order.
func FilterSkills(s *catalog.Store, category, term string) iter.Seq[*catalog.Skill] {
	wantCategory := foldKey(category)
	needle := foldKey(strings.TrimSpace(term))

	return func(yield func(*catalog.Skill) bool) {
		for _, sk := range s.Skills() {
			if wantCategory != "" && wantCategory != CategoryAll && foldKey(sk.Category) != wantCategory {
				continue
			}
			if needle != "" &&
				!strings.Contains(foldKey(sk.Title), needle) &&
				!strings.Contains(foldKey(sk.Description), needle) {
				continue
			}
			if !yield(sk) {
				return
			}
		}
	}
}

// CategoryCount is one facet entry: a category and how many skills it holds.
type CategoryCount struct {
	Category *catalog.Category `json:"category"`
	Count    int               `json:"count"`
}

// CategoryCounts returns skills-per-category facets in the category
// set's declaration order. Categories with zero skills are included.
func CategoryCounts(s *catalog.Store) []CategoryCount {
	byName := make(map[string]int)
	for _, sk := range s.Skills() {
		byName[foldKey(sk.Category)]++
	}

	categories := s.Categories()
	counts := make([]CategoryCount, 0, len(categories))
	for _, c := range categories {
		counts = append(counts, CategoryCount{Category: c, Count: byName[foldKey(c.Name)]})
	}
	return counts
}
