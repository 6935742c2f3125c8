package journal

import (
	"encoding/json"
	"fmt"
	"time"
)

// Kind categorizes journal entries.
type Kind string

const (
	KindBookmarkToggled  Kind = "bookmark_toggled"
	KindUpvoteToggled    Kind = "upvote_toggled"
	KindCommentLiked     Kind = "comment_liked"
	KindHelpfulToggled   Kind = "helpful_toggled"
	KindCommentAdded     Kind = "comment_added"
	KindRequestSubmitted Kind = "request_submitted"
	KindRequestAdvanced  Kind = "request_advanced"
	KindProfileEdited    Kind = "profile_edited"
)

// Entry is one recorded interaction event.
type Entry struct {
	// Seq is the engine's logical clock value; strictly increasing.
	Seq int64 `json:"seq"`

	// Kind identifies the event category.
	Kind Kind `json:"kind"`

	// UserID is the acting user. Empty for guest actions.
	UserID string `json:"user_id,omitempty"`

	// EntityID is the affected entity (skill, request, comment, or user).
	EntityID string `json:"entity_id"`

	// Payload carries the kind-specific event data as JSON.
	Payload []byte `json:"payload"`

	// CreatedAt is the wall-clock time of the mutation.
	CreatedAt time.Time `json:"created_at"`
}

// NewEntry builds an Entry, serializing the kind-specific payload.
func NewEntry(seq int64, kind Kind, userID, entityID string, payload any, at time.Time) (Entry, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Entry{}, fmt.Errorf("marshal %s payload: %w", kind, err)
	}
	return Entry{
		Seq:       seq,
		Kind:      kind,
		UserID:    userID,
		EntityID:  entityID,
		Payload:   data,
		CreatedAt: at,
	}, nil
}

// BookmarkPayload records the post-toggle bookmark flag.
type BookmarkPayload struct {
	Bookmarked bool `json:"bookmarked"`
}

// UpvotePayload records the post-toggle vote flag and the resulting count.
type UpvotePayload struct {
	Voted bool `json:"voted"`
	Count int  `json:"count"`
}

// LikePayload records the like count after an unguarded +1.
type LikePayload struct {
	Count int `json:"count"`
}

// HelpfulPayload records the post-toggle helpful flag.
type HelpfulPayload struct {
	Helpful bool `json:"helpful"`
}

// AdvancePayload records a request's post-transition status and
// fulfiller.
type AdvancePayload struct {
	Status      string `json:"status"`
	FulfilledBy string `json:"fulfilled_by,omitempty"`
}
