package interact

import (
	"context"
	"strings"

	"github.com/roach88/skillbridge/internal/catalog"
	"github.com/roach88/skillbridge/internal/journal"
)

// GuestAuthorName labels comments posted without a resolved user.
const GuestAuthorName = "Guest"

// AddComment appends a new comment to a skill's discussion.
//
// Fails with a validation error when the content is blank or the skill
// id does not resolve. authorID may be empty for a guest comment; a
// known author's display name is denormalized onto the comment.
//
// The comment starts with zero likes and helpful unset, and lands in the
// store in call order (append order = chronological order).
func (e *Engine) AddComment(ctx context.Context, skillID, authorID, content string) (*catalog.Comment, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if strings.TrimSpace(content) == "" {
		return nil, catalog.NewValidation("comment content must not be blank")
	}
	if _, err := e.store.Skill(skillID); err != nil {
		return nil, catalog.NewValidation("unknown skill %q", skillID)
	}

	authorName := GuestAuthorName
	if authorID != "" {
		u, err := e.store.User(authorID)
		if err != nil {
			return nil, err
		}
		authorName = u.Name
	}

	c := &catalog.Comment{
		ID:         e.ids.NewID(),
		SkillID:    skillID,
		AuthorID:   authorID,
		AuthorName: authorName,
		Content:    content,
		CreatedAt:  e.now(),
	}
	if err := e.record(ctx, journal.KindCommentAdded, authorID, c.ID, c, c.CreatedAt); err != nil {
		return nil, err
	}
	if err := e.store.AddComment(c); err != nil {
		return nil, err
	}
	return c, nil
}

// SubmitRequest creates a new community skill request.
//
// Fails with a validation error when title, description, or category is
// blank. The request starts open with zero upvotes.
func (e *Engine) SubmitRequest(ctx context.Context, title, description, category, requestedBy string) (*catalog.Request, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if strings.TrimSpace(title) == "" {
		return nil, catalog.NewValidation("request title must not be blank")
	}
	if strings.TrimSpace(description) == "" {
		return nil, catalog.NewValidation("request description must not be blank")
	}
	if strings.TrimSpace(category) == "" {
		return nil, catalog.NewValidation("request category must not be blank")
	}
	if _, err := e.store.User(requestedBy); err != nil {
		return nil, err
	}

	r := &catalog.Request{
		ID:          e.ids.NewID(),
		Title:       title,
		Description: description,
		Category:    category,
		RequestedBy: requestedBy,
		CreatedAt:   e.now(),
		Status:      catalog.StatusOpen,
	}
	if err := e.record(ctx, journal.KindRequestSubmitted, requestedBy, r.ID, r, r.CreatedAt); err != nil {
		return nil, err
	}
	if err := e.store.AddRequest(r); err != nil {
		return nil, err
	}
	return r, nil
}

// AdvanceRequest moves a request forward through its status lifecycle
// (open, in-progress, completed; same-state calls are no-ops). Backward
// transitions fail with an invalid-state error. fulfilledBy may name the
// user taking the request; it is kept only once the request leaves open.
func (e *Engine) AdvanceRequest(ctx context.Context, userID, requestID string, next catalog.Status, fulfilledBy string) (*catalog.Request, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	r, err := e.store.Request(requestID)
	if err != nil {
		return nil, err
	}
	if !next.Valid() {
		return nil, catalog.NewValidation("unknown status %q", next)
	}
	if !r.Status.CanAdvanceTo(next) {
		return nil, catalog.NewInvalidState("request %s cannot move from %s to %s", requestID, r.Status, next)
	}
	if fulfilledBy != "" {
		if _, err := e.store.User(fulfilledBy); err != nil {
			return nil, err
		}
	}

	// The payload carries the post-transition values so replay is a
	// plain write.
	p := journal.AdvancePayload{Status: string(next), FulfilledBy: r.FulfilledBy}
	if next != catalog.StatusOpen && fulfilledBy != "" {
		p.FulfilledBy = fulfilledBy
	}
	if err := e.record(ctx, journal.KindRequestAdvanced, userID, requestID, p, e.now()); err != nil {
		return nil, err
	}
	return e.store.AdvanceRequest(requestID, next, fulfilledBy)
}

// EditProfile merges a partial update into an existing user profile.
// Nil patch fields are left untouched. Fails with a not-found error when
// the user id does not resolve.
func (e *Engine) EditProfile(ctx context.Context, userID string, patch catalog.UserPatch) (*catalog.User, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, err := e.store.User(userID); err != nil {
		return nil, err
	}
	if err := e.record(ctx, journal.KindProfileEdited, userID, userID, patch, e.now()); err != nil {
		return nil, err
	}
	return e.store.PatchUser(userID, patch)
}
