package journal

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/roach88/skillbridge/internal/catalog"
	"github.com/roach88/skillbridge/internal/session"
)

// Replay re-applies every journal entry, in seq order, to a freshly
// seeded catalog and an empty toggle state. Because entries record the
// post-mutation values, replay is deterministic: the same journal over
// the same seed always reproduces the same store and state.
//
// Returns the last applied sequence number so the engine's clock can
// resume past it.
func Replay(ctx context.Context, l *Log, store *catalog.Store, state *session.State) (int64, error) {
	entries, err := l.Entries(ctx)
	if err != nil {
		return 0, fmt.Errorf("replay: %w", err)
	}

	var last int64
	for _, e := range entries {
		if err := apply(e, store, state); err != nil {
			return last, fmt.Errorf("replay entry %d: %w", e.Seq, err)
		}
		last = e.Seq
	}
	return last, nil
}

// apply dispatches one entry to the store/state. Entries carry the
// values observed after the original mutation, so application is a
// plain write, never a recomputation.
func apply(e Entry, store *catalog.Store, state *session.State) error {
	switch e.Kind {
	case KindBookmarkToggled:
		var p BookmarkPayload
		if err := json.Unmarshal(e.Payload, &p); err != nil {
			return err
		}
		state.SetBookmark(e.UserID, e.EntityID, p.Bookmarked)
		return nil

	case KindUpvoteToggled:
		var p UpvotePayload
		if err := json.Unmarshal(e.Payload, &p); err != nil {
			return err
		}
		r, err := store.Request(e.EntityID)
		if err != nil {
			return err
		}
		state.SetUpvote(e.UserID, e.EntityID, p.Voted)
		r.Upvotes = p.Count
		return nil

	case KindCommentLiked:
		var p LikePayload
		if err := json.Unmarshal(e.Payload, &p); err != nil {
			return err
		}
		c, err := store.Comment(e.EntityID)
		if err != nil {
			return err
		}
		c.Likes = p.Count
		return nil

	case KindHelpfulToggled:
		var p HelpfulPayload
		if err := json.Unmarshal(e.Payload, &p); err != nil {
			return err
		}
		c, err := store.Comment(e.EntityID)
		if err != nil {
			return err
		}
		c.Helpful = p.Helpful
		return nil

	case KindCommentAdded:
		var c catalog.Comment
		if err := json.Unmarshal(e.Payload, &c); err != nil {
			return err
		}
		return store.AddComment(&c)

	case KindRequestSubmitted:
		var r catalog.Request
		if err := json.Unmarshal(e.Payload, &r); err != nil {
			return err
		}
		return store.AddRequest(&r)

	case KindRequestAdvanced:
		var p AdvancePayload
		if err := json.Unmarshal(e.Payload, &p); err != nil {
			return err
		}
		r, err := store.Request(e.EntityID)
		if err != nil {
			return err
		}
		r.Status = catalog.Status(p.Status)
		r.FulfilledBy = p.FulfilledBy
		return nil

	case KindProfileEdited:
		var patch catalog.UserPatch
		if err := json.Unmarshal(e.Payload, &patch); err != nil {
			return err
		}
		_, err := store.PatchUser(e.EntityID, patch)
		return err

	default:
		return fmt.Errorf("unknown entry kind %q", e.Kind)
	}
}
