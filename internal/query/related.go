package query

import "github.com/roach88/skillbridge/internal/catalog"

// RelatedSkills returns up to n other skills sharing the given skill's
// category, excluding the skill itself, in store order.
// Returns a not-found error when skillID does not resolve.
func RelatedSkills(s *catalog.Store, skillID string, n int) ([]*catalog.Skill, error) {
	sk, err := s.Skill(skillID)
	if err != nil {
		return nil, err
	}
	if n <= 0 {
		return nil, nil
	}
	var out []*catalog.Skill
	for _, other := range s.Skills() {
		if other.ID == sk.ID || other.Category != sk.Category {
			continue
		}
		out = append(out, other)
		if len(out) == n {
			break
		}
	}
	return out, nil
}

// CommentsForSkill returns all comments on the given skill in append
// order (append order = chronological order; no re-sorting).
// An unknown skill yields an empty result, not an error.
func CommentsForSkill(s *catalog.Store, skillID string) []*catalog.Comment {
	var out []*catalog.Comment
	for _, c := range s.Comments() {
		if c.SkillID == skillID {
			out = append(out, c)
		}
	}
	return out
}

// SkillsByCreator returns all skills created by the given user in store
// order. An unknown user yields an empty result.
func SkillsByCreator(s *catalog.Store, userID string) []*catalog.Skill {
	var out []*catalog.Skill
	for _, sk := range s.Skills() {
		if sk.CreatorID == userID {
			out = append(out, sk)
		}
	}
	return out
}
