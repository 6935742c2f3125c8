package query

import (
	"slices"

	"github.com/roach88/skillbridge/internal/catalog"
)

// RecentSkills returns the n skills with the greatest CreatedAt,
// newest first. The sort is stable: skills sharing a timestamp keep
// their insertion order. The store is never mutated; sorting happens
// on a copy.
func RecentSkills(s *catalog.Store, n int) []*catalog.Skill {
	if n <= 0 {
		return nil
	}
	skills := s.Skills()
	slices.SortStableFunc(skills, func(a, b *catalog.Skill) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	if n < len(skills) {
		skills = skills[:n]
	}
	return skills
}

// FeaturedSkills returns up to n featured skills in store order.
func FeaturedSkills(s *catalog.Store, n int) []*catalog.Skill {
	if n <= 0 {
		return nil
	}
	var out []*catalog.Skill
	for _, sk := range s.Skills() {
		if !sk.Featured {
			continue
		}
		out = append(out, sk)
		if len(out) == n {
			break
		}
	}
	return out
}

// RequestsByPopularity returns all requests sorted by upvote count,
// highest first. Ties keep insertion order (stable sort, not arbitrary).
func RequestsByPopularity(s *catalog.Store) []*catalog.Request {
	requests := s.Requests()
	slices.SortStableFunc(requests, func(a, b *catalog.Request) int {
		return b.Upvotes - a.Upvotes
	})
	return requests
}
