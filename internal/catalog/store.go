package catalog

import "strings"

// Store is the canonical in-memory entity container.
//
// Collections are indexed by id for O(1) lookup and additionally kept in
// insertion order so that iteration is stable: ties are never reordered.
//
// The Store performs referential checks at insert time (a dangling
// Comment.SkillID or Skill.CreatorID is a programming error surfaced
// immediately), but no filtering or derived logic lives here.
//
// Thread-safety: the Store itself is not locked. There is exactly one
// logical writer (the interact.Engine, which serializes its mutations);
// reads are safe against a quiescent store.
type Store struct {
	categories []*Category
	users      []*User
	skills     []*Skill
	comments   []*Comment
	requests   []*Request

	categoryByID   map[string]*Category
	userByID       map[string]*User
	userByUsername map[string]*User
	skillByID      map[string]*Skill
	commentByID    map[string]*Comment
	requestByID    map[string]*Request
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{
		categoryByID:   make(map[string]*Category),
		userByID:       make(map[string]*User),
		userByUsername: make(map[string]*User),
		skillByID:      make(map[string]*Skill),
		commentByID:    make(map[string]*Comment),
		requestByID:    make(map[string]*Request),
	}
}

// AddCategory registers a category in the closed category set.
func (s *Store) AddCategory(c *Category) error {
	if c.ID == "" || c.Name == "" {
		return NewValidation("category id and name are required")
	}
	if _, ok := s.categoryByID[c.ID]; ok {
		return NewValidation("duplicate category id %q", c.ID)
	}
	s.categories = append(s.categories, c)
	s.categoryByID[c.ID] = c
	return nil
}

// AddUser inserts a user. Usernames must be unique.
func (s *Store) AddUser(u *User) error {
	if u.ID == "" || u.Username == "" {
		return NewValidation("user id and username are required")
	}
	if _, ok := s.userByID[u.ID]; ok {
		return NewValidation("duplicate user id %q", u.ID)
	}
	if _, ok := s.userByUsername[u.Username]; ok {
		return NewValidation("duplicate username %q", u.Username)
	}
	s.users = append(s.users, u)
	s.userByID[u.ID] = u
	s.userByUsername[u.Username] = u
	return nil
}

// AddSkill inserts a skill. The creator must already exist.
func (s *Store) AddSkill(sk *Skill) error {
	if sk.ID == "" || sk.Title == "" {
		return NewValidation("skill id and title are required")
	}
	if _, ok := s.skillByID[sk.ID]; ok {
		return NewValidation("duplicate skill id %q", sk.ID)
	}
	if sk.Duration <= 0 {
		return NewValidation("skill %q: duration must be positive", sk.ID)
	}
	if sk.Rating < 0 || sk.Rating > 5 {
		return NewValidation("skill %q: rating must be within 0.0-5.0", sk.ID)
	}
	if sk.Learners < 0 {
		return NewValidation("skill %q: learner count must be non-negative", sk.ID)
	}
	if _, ok := s.userByID[sk.CreatorID]; !ok {
		return NewValidation("skill %q: unknown creator %q", sk.ID, sk.CreatorID)
	}
	s.skills = append(s.skills, sk)
	s.skillByID[sk.ID] = sk
	return nil
}

// AddComment appends a comment. The referenced skill must already exist;
// every comment belongs to exactly one skill. Append order is preserved
// (append order = chronological order).
func (s *Store) AddComment(c *Comment) error {
	if c.ID == "" {
		return NewValidation("comment id is required")
	}
	if _, ok := s.commentByID[c.ID]; ok {
		return NewValidation("duplicate comment id %q", c.ID)
	}
	if strings.TrimSpace(c.Content) == "" {
		return NewValidation("comment content must not be blank")
	}
	if c.Likes < 0 {
		return NewValidation("comment %q: like count must be non-negative", c.ID)
	}
	if _, ok := s.skillByID[c.SkillID]; !ok {
		return NewValidation("comment %q: unknown skill %q", c.ID, c.SkillID)
	}
	if c.AuthorID != "" {
		if _, ok := s.userByID[c.AuthorID]; !ok {
			return NewValidation("comment %q: unknown author %q", c.ID, c.AuthorID)
		}
	}
	s.comments = append(s.comments, c)
	s.commentByID[c.ID] = c
	return nil
}

// AddRequest inserts a skill request. The requesting user must exist.
func (s *Store) AddRequest(r *Request) error {
	if r.ID == "" {
		return NewValidation("request id is required")
	}
	if _, ok := s.requestByID[r.ID]; ok {
		return NewValidation("duplicate request id %q", r.ID)
	}
	if !r.Status.Valid() {
		return NewValidation("request %q: unknown status %q", r.ID, r.Status)
	}
	if r.Upvotes < 0 {
		return NewValidation("request %q: upvote count must be non-negative", r.ID)
	}
	if _, ok := s.userByID[r.RequestedBy]; !ok {
		return NewValidation("request %q: unknown requester %q", r.ID, r.RequestedBy)
	}
	if r.FulfilledBy != "" {
		if _, ok := s.userByID[r.FulfilledBy]; !ok {
			return NewValidation("request %q: unknown fulfiller %q", r.ID, r.FulfilledBy)
		}
	}
	s.requests = append(s.requests, r)
	s.requestByID[r.ID] = r
	return nil
}

// Skill returns the skill with the given id.
func (s *Store) Skill(id string) (*Skill, error) {
	sk, ok := s.skillByID[id]
	if !ok {
		return nil, NewNotFound("skill", id)
	}
	return sk, nil
}

// User returns the user with the given id.
func (s *Store) User(id string) (*User, error) {
	u, ok := s.userByID[id]
	if !ok {
		return nil, NewNotFound("user", id)
	}
	return u, nil
}

// UserByUsername returns the user with the given username.
func (s *Store) UserByUsername(username string) (*User, error) {
	u, ok := s.userByUsername[username]
	if !ok {
		return nil, NewNotFound("user", username)
	}
	return u, nil
}

// Comment returns the comment with the given id.
func (s *Store) Comment(id string) (*Comment, error) {
	c, ok := s.commentByID[id]
	if !ok {
		return nil, NewNotFound("comment", id)
	}
	return c, nil
}

// Request returns the request with the given id.
func (s *Store) Request(id string) (*Request, error) {
	r, ok := s.requestByID[id]
	if !ok {
		return nil, NewNotFound("request", id)
	}
	return r, nil
}

// Categories returns the closed category set in declaration order.
func (s *Store) Categories() []*Category {
	return append([]*Category(nil), s.categories...)
}

// Users returns all users in insertion order.
func (s *Store) Users() []*User {
	return append([]*User(nil), s.users...)
}

// Skills returns all skills in insertion order.
// The returned slice is a copy; reordering it does not affect the store.
func (s *Store) Skills() []*Skill {
	return append([]*Skill(nil), s.skills...)
}

// Comments returns all comments in append order.
func (s *Store) Comments() []*Comment {
	return append([]*Comment(nil), s.comments...)
}

// Requests returns all requests in insertion order.
func (s *Store) Requests() []*Request {
	return append([]*Request(nil), s.requests...)
}

// PatchUser merges a partial profile update into the stored user.
// Nil patch fields are left untouched (merge, not replace).
func (s *Store) PatchUser(id string, patch UserPatch) (*User, error) {
	u, ok := s.userByID[id]
	if !ok {
		return nil, NewNotFound("user", id)
	}
	if patch.Name != nil {
		u.Name = *patch.Name
	}
	if patch.Bio != nil {
		u.Bio = *patch.Bio
	}
	if patch.Email != nil {
		u.Email = *patch.Email
	}
	if patch.Avatar != nil {
		u.Avatar = *patch.Avatar
	}
	if patch.Skills != nil {
		u.Skills = append([]string(nil), (*patch.Skills)...)
	}
	return u, nil
}

// AdvanceRequest moves a request along its lifecycle:
// open -> in-progress -> completed, with same-state no-ops allowed.
// Backward transitions return an invalid-state error.
// fulfilledBy is recorded when the request leaves the open state.
func (s *Store) AdvanceRequest(id string, next Status, fulfilledBy string) (*Request, error) {
	r, ok := s.requestByID[id]
	if !ok {
		return nil, NewNotFound("request", id)
	}
	if !next.Valid() {
		return nil, NewValidation("unknown status %q", next)
	}
	if !r.Status.CanAdvanceTo(next) {
		return nil, NewInvalidState("request %s cannot move from %s to %s", id, r.Status, next)
	}
	if fulfilledBy != "" {
		if _, ok := s.userByID[fulfilledBy]; !ok {
			return nil, NewNotFound("user", fulfilledBy)
		}
	}
	r.Status = next
	if next != StatusOpen && fulfilledBy != "" {
		r.FulfilledBy = fulfilledBy
	}
	return r, nil
}
