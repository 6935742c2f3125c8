// Package testutil provides shared fixtures for package tests:
// a deterministic seeded catalog and helpers for stable timestamps.
package testutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/roach88/skillbridge/internal/catalog"
)

// Day returns a fixed UTC timestamp on the given day of March 2024.
// Fixture ordering in tests leans on these being deterministic.
func Day(d int) time.Time {
	return time.Date(2024, 3, d, 12, 0, 0, 0, time.UTC)
}

// NewStore builds the standard fixture catalog used across package tests.
//
// Layout worth knowing when asserting:
//   - skill-git-undo and skill-box-breathing share a CreatedAt (Day 10),
//     exercising stable-sort tie behavior
//   - requests are inserted with upvotes [5, 2, 9]
//   - skill-git-undo and skill-keyboard-shortcuts share the Technology category
func NewStore(t *testing.T) *catalog.Store {
	t.Helper()

	s := catalog.NewStore()

	for _, c := range []*catalog.Category{
		{ID: "productivity", Name: "Productivity"},
		{ID: "technology", Name: "Technology"},
		{ID: "cooking", Name: "Cooking"},
		{ID: "wellness", Name: "Wellness"},
	} {
		require.NoError(t, s.AddCategory(c))
	}

	for _, u := range []*catalog.User{
		{ID: "user-1", Username: "johndoe", Name: "John Doe", Bio: "Productivity nerd", Email: "john@example.com", JoinedAt: Day(1)},
		{ID: "user-2", Username: "sarasmith", Name: "Sara Smith", Bio: "Engineer and cook", JoinedAt: Day(2)},
		{ID: "user-3", Username: "mchen", Name: "Ming Chen", JoinedAt: Day(3)},
	} {
		require.NoError(t, s.AddUser(u))
	}

	for _, sk := range []*catalog.Skill{
		{ID: "skill-inbox-zero", Title: "Inbox Zero in Five Minutes", Description: "Tame your email for good", Category: "Productivity", Tags: []string{"email", "habits"}, Duration: 5, Rating: 4.7, Learners: 1200, CreatorID: "user-1", CreatedAt: Day(1), Featured: true},
		{ID: "skill-git-undo", Title: "Undo Anything in Git", Description: "Reflog, reset, and revert without fear", Category: "Technology", Tags: []string{"git"}, Duration: 4, Rating: 4.9, Learners: 2100, CreatorID: "user-2", CreatedAt: Day(10)},
		{ID: "skill-knife-skills", Title: "Chef Knife Basics", Description: "Cut faster and safer", Category: "Cooking", Tags: []string{"kitchen"}, Duration: 5, Rating: 4.5, Learners: 800, CreatorID: "user-2", CreatedAt: Day(5), Featured: true},
		{ID: "skill-box-breathing", Title: "Box Breathing for Focus", Description: "A four-step calm-down you can do anywhere", Category: "Wellness", Duration: 3, Rating: 4.2, Learners: 650, CreatorID: "user-3", CreatedAt: Day(10)},
		{ID: "skill-keyboard-shortcuts", Title: "Master Your Editor Shortcuts", Description: "Stop reaching for the mouse", Category: "Technology", Tags: []string{"editor"}, Duration: 5, Rating: 4.4, Learners: 980, CreatorID: "user-1", CreatedAt: Day(15), Featured: true},
	} {
		require.NoError(t, s.AddSkill(sk))
	}

	for _, c := range []*catalog.Comment{
		{ID: "cm-1", SkillID: "skill-git-undo", AuthorID: "user-1", AuthorName: "John Doe", Content: "This saved my branch today.", CreatedAt: Day(11), Likes: 3},
		{ID: "cm-2", SkillID: "skill-git-undo", AuthorName: "Guest", Content: "reflog is magic", CreatedAt: Day(12), Helpful: true},
		{ID: "cm-3", SkillID: "skill-inbox-zero", AuthorID: "user-2", AuthorName: "Sara Smith", Content: "Two weeks in and it still works.", CreatedAt: Day(13), Likes: 1},
	} {
		require.NoError(t, s.AddComment(c))
	}

	for _, r := range []*catalog.Request{
		{ID: "req-budget", Title: "Personal Budget in a Spreadsheet", Description: "Track spending without an app", Category: "Productivity", RequestedBy: "user-3", CreatedAt: Day(4), Upvotes: 5, Status: catalog.StatusOpen},
		{ID: "req-sourdough", Title: "Sourdough Starter Care", Description: "Keep it alive between bakes", Category: "Cooking", RequestedBy: "user-1", CreatedAt: Day(6), Upvotes: 2, Status: catalog.StatusInProgress, FulfilledBy: "user-2"},
		{ID: "req-regex", Title: "Regex Without Tears", Description: "The 20% of regex you actually need", Category: "Technology", RequestedBy: "user-2", CreatedAt: Day(8), Upvotes: 9, Status: catalog.StatusOpen},
	} {
		require.NoError(t, s.AddRequest(r))
	}

	return s
}
