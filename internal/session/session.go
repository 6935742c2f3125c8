// Package session identifies the current user and holds the per-user
// toggle relation the interact package layers on top of entities.
//
// Toggle state is deliberately not stored on the entities themselves:
// a bookmark or an upvote mark is a (user, entity) fact with session
// lifetime, owned here rather than hidden in view-local state.
package session

// Context identifies the current user. Authentication is out of scope;
// the engine only needs a stable identifier for the session's actor.
type Context struct {
	UserID string
}

// toggleKey scopes a boolean flag to one user and one entity.
type toggleKey struct {
	userID   string
	entityID string
}

// State is the per-user toggle relation: bookmark(user, skill) and
// upvoted(user, request). Zero-value lookups return false; only true
// flags occupy memory.
//
// State is not locked; the interact.Engine serializes all writes.
type State struct {
	bookmarks map[toggleKey]bool
	upvotes   map[toggleKey]bool
}

// NewState creates an empty toggle relation.
func NewState() *State {
	return &State{
		bookmarks: make(map[toggleKey]bool),
		upvotes:   make(map[toggleKey]bool),
	}
}

// Bookmarked reports whether the user has bookmarked the skill.
func (s *State) Bookmarked(userID, skillID string) bool {
	return s.bookmarks[toggleKey{userID, skillID}]
}

// SetBookmark records the user's bookmark flag for the skill.
// Setting an already-set flag to the same value is a no-op.
func (s *State) SetBookmark(userID, skillID string, v bool) {
	k := toggleKey{userID, skillID}
	if v {
		s.bookmarks[k] = true
		return
	}
	delete(s.bookmarks, k)
}

// Upvoted reports whether the user has upvoted the request.
func (s *State) Upvoted(userID, requestID string) bool {
	return s.upvotes[toggleKey{userID, requestID}]
}

// SetUpvote records the user's upvote flag for the request.
func (s *State) SetUpvote(userID, requestID string, v bool) {
	k := toggleKey{userID, requestID}
	if v {
		s.upvotes[k] = true
		return
	}
	delete(s.upvotes, k)
}
