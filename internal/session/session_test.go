package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestState_BookmarkDefaultsFalse(t *testing.T) {
	s := NewState()
	assert.False(t, s.Bookmarked("u1", "skill-1"))
}

func TestState_SetBookmark(t *testing.T) {
	s := NewState()

	s.SetBookmark("u1", "skill-1", true)
	assert.True(t, s.Bookmarked("u1", "skill-1"))

	// Scoped per user and per entity.
	assert.False(t, s.Bookmarked("u2", "skill-1"))
	assert.False(t, s.Bookmarked("u1", "skill-2"))

	s.SetBookmark("u1", "skill-1", false)
	assert.False(t, s.Bookmarked("u1", "skill-1"))
}

func TestState_SetBookmark_Idempotent(t *testing.T) {
	s := NewState()

	s.SetBookmark("u1", "skill-1", true)
	s.SetBookmark("u1", "skill-1", true)
	assert.True(t, s.Bookmarked("u1", "skill-1"))

	s.SetBookmark("u1", "skill-1", false)
	s.SetBookmark("u1", "skill-1", false)
	assert.False(t, s.Bookmarked("u1", "skill-1"))
}

func TestState_Upvotes(t *testing.T) {
	s := NewState()

	assert.False(t, s.Upvoted("u1", "req-1"))
	s.SetUpvote("u1", "req-1", true)
	assert.True(t, s.Upvoted("u1", "req-1"))
	assert.False(t, s.Upvoted("u2", "req-1"))

	s.SetUpvote("u1", "req-1", false)
	assert.False(t, s.Upvoted("u1", "req-1"))
}
