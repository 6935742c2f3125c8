package interact

import (
	"context"

	"github.com/roach88/skillbridge/internal/catalog"
	"github.com/roach88/skillbridge/internal/journal"
)

// VoteResult is the outcome of an upvote toggle.
type VoteResult struct {
	// Voted is the user's vote flag after the toggle.
	Voted bool `json:"voted"`

	// Count is the request's upvote count after the toggle.
	Count int `json:"count"`
}

// ToggleBookmark flips the user's bookmark flag for a skill and returns
// the new flag. The skill entity itself is untouched - bookmark counts
// are not tracked in this system.
//
// Calling twice returns to the original state; calling once flips it.
func (e *Engine) ToggleBookmark(ctx context.Context, userID, skillID string) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, err := e.store.Skill(skillID); err != nil {
		return false, err
	}

	next := !e.state.Bookmarked(userID, skillID)
	if err := e.record(ctx, journal.KindBookmarkToggled, userID, skillID,
		journal.BookmarkPayload{Bookmarked: next}, e.now()); err != nil {
		return false, err
	}
	e.state.SetBookmark(userID, skillID, next)
	return next, nil
}

// ToggleUpvote flips the user's vote flag for a request and moves the
// request's upvote count by the delta the flip implies: +1 on vote, -1
// on unvote. The count change is edge-triggered - it happens only at the
// moment of the state transition, never twice for the same transition.
//
// Returns an invalid-state error if an unvote would take the count below
// zero. That cannot happen when toggles are paired correctly, but the
// invariant is guarded regardless.
func (e *Engine) ToggleUpvote(ctx context.Context, userID, requestID string) (VoteResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	r, err := e.store.Request(requestID)
	if err != nil {
		return VoteResult{}, err
	}

	voted := e.state.Upvoted(userID, requestID)
	count := r.Upvotes
	if voted {
		count--
	} else {
		count++
	}
	if count < 0 {
		return VoteResult{}, catalog.NewInvalidState("request %s upvote count cannot go below zero", requestID)
	}

	result := VoteResult{Voted: !voted, Count: count}
	if err := e.record(ctx, journal.KindUpvoteToggled, userID, requestID,
		journal.UpvotePayload{Voted: result.Voted, Count: result.Count}, e.now()); err != nil {
		return VoteResult{}, err
	}
	e.state.SetUpvote(userID, requestID, result.Voted)
	r.Upvotes = count
	return result, nil
}

// LikeComment increments a comment's like count by one and returns the
// new count. There is no per-user toggle guard: every call adds one
// like, with no de-duplication. This mirrors the product's "+1 per
// click" counter exactly; see DESIGN.md for the open question around it.
func (e *Engine) LikeComment(ctx context.Context, commentID string) (int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	c, err := e.store.Comment(commentID)
	if err != nil {
		return 0, err
	}

	count := c.Likes + 1
	if err := e.record(ctx, journal.KindCommentLiked, "", commentID,
		journal.LikePayload{Count: count}, e.now()); err != nil {
		return 0, err
	}
	c.Likes = count
	return count, nil
}

// ToggleHelpful flips a comment's helpful flag and returns the new flag.
func (e *Engine) ToggleHelpful(ctx context.Context, commentID string) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	c, err := e.store.Comment(commentID)
	if err != nil {
		return false, err
	}

	next := !c.Helpful
	if err := e.record(ctx, journal.KindHelpfulToggled, "", commentID,
		journal.HelpfulPayload{Helpful: next}, e.now()); err != nil {
		return false, err
	}
	c.Helpful = next
	return next, nil
}
