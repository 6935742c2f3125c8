package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s := NewStore()
	require.NoError(t, s.AddCategory(&Category{ID: "productivity", Name: "Productivity"}))
	require.NoError(t, s.AddUser(&User{
		ID:       "user-1",
		Username: "johndoe",
		Name:     "John Doe",
		JoinedAt: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
	}))
	return s
}

func TestStore_AddSkill_LookupByID(t *testing.T) {
	s := newTestStore(t)

	err := s.AddSkill(&Skill{
		ID:        "skill-1",
		Title:     "Speed Reading Basics",
		Category:  "Productivity",
		Duration:  5,
		Rating:    4.5,
		CreatorID: "user-1",
		CreatedAt: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	got, err := s.Skill("skill-1")
	require.NoError(t, err)
	assert.Equal(t, "Speed Reading Basics", got.Title)
}

func TestStore_Skill_NotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Skill("missing")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestStore_AddSkill_UnknownCreator(t *testing.T) {
	s := newTestStore(t)

	err := s.AddSkill(&Skill{
		ID:        "skill-1",
		Title:     "Speed Reading Basics",
		Duration:  5,
		CreatorID: "ghost",
	})
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestStore_AddSkill_RejectsBadFields(t *testing.T) {
	s := newTestStore(t)

	tests := []struct {
		name  string
		skill *Skill
	}{
		{"zero duration", &Skill{ID: "s1", Title: "t", Duration: 0, CreatorID: "user-1"}},
		{"rating above five", &Skill{ID: "s2", Title: "t", Duration: 5, Rating: 5.1, CreatorID: "user-1"}},
		{"negative learners", &Skill{ID: "s3", Title: "t", Duration: 5, Learners: -1, CreatorID: "user-1"}},
		{"missing title", &Skill{ID: "s4", Duration: 5, CreatorID: "user-1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.AddSkill(tt.skill)
			require.Error(t, err)
			assert.True(t, IsValidation(err))
		})
	}
}

func TestStore_AddSkill_DuplicateID(t *testing.T) {
	s := newTestStore(t)

	sk := &Skill{ID: "skill-1", Title: "t", Duration: 5, CreatorID: "user-1"}
	require.NoError(t, s.AddSkill(sk))

	err := s.AddSkill(&Skill{ID: "skill-1", Title: "other", Duration: 3, CreatorID: "user-1"})
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestStore_Skills_InsertionOrderStable(t *testing.T) {
	s := newTestStore(t)

	for _, id := range []string{"c", "a", "b"} {
		require.NoError(t, s.AddSkill(&Skill{ID: id, Title: id, Duration: 5, CreatorID: "user-1"}))
	}

	skills := s.Skills()
	require.Len(t, skills, 3)
	assert.Equal(t, "c", skills[0].ID)
	assert.Equal(t, "a", skills[1].ID)
	assert.Equal(t, "b", skills[2].ID)
}

func TestStore_Skills_ReturnsCopy(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.AddSkill(&Skill{ID: "a", Title: "a", Duration: 5, CreatorID: "user-1"}))
	require.NoError(t, s.AddSkill(&Skill{ID: "b", Title: "b", Duration: 5, CreatorID: "user-1"}))

	first := s.Skills()
	first[0], first[1] = first[1], first[0]

	again := s.Skills()
	assert.Equal(t, "a", again[0].ID, "reordering the returned slice must not affect the store")
}

func TestStore_AddComment_RequiresExistingSkill(t *testing.T) {
	s := newTestStore(t)

	err := s.AddComment(&Comment{ID: "cm-1", SkillID: "missing", AuthorName: "Guest", Content: "hi"})
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestStore_AddComment_BlankContent(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.AddSkill(&Skill{ID: "skill-1", Title: "t", Duration: 5, CreatorID: "user-1"}))

	err := s.AddComment(&Comment{ID: "cm-1", SkillID: "skill-1", AuthorName: "Guest", Content: "   "})
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestStore_UserByUsername(t *testing.T) {
	s := newTestStore(t)

	u, err := s.UserByUsername("johndoe")
	require.NoError(t, err)
	assert.Equal(t, "user-1", u.ID)

	_, err = s.UserByUsername("nobody")
	assert.True(t, IsNotFound(err))
}

func TestStore_AddUser_DuplicateUsername(t *testing.T) {
	s := newTestStore(t)

	err := s.AddUser(&User{ID: "user-2", Username: "johndoe"})
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestStore_PatchUser_MergesOnlyProvidedFields(t *testing.T) {
	s := newTestStore(t)
	u, err := s.User("user-1")
	require.NoError(t, err)
	u.Bio = "old bio"
	u.Email = "john@example.com"

	bio := "new bio"
	patched, err := s.PatchUser("user-1", UserPatch{Bio: &bio})
	require.NoError(t, err)

	assert.Equal(t, "new bio", patched.Bio)
	assert.Equal(t, "John Doe", patched.Name, "name must be untouched")
	assert.Equal(t, "john@example.com", patched.Email, "email must be untouched")
}

func TestStore_PatchUser_NotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.PatchUser("missing", UserPatch{})
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestStore_AdvanceRequest_ForwardOnly(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.AddRequest(&Request{
		ID:          "req-1",
		Title:       "Budgeting in Excel",
		Description: "d",
		Category:    "Productivity",
		RequestedBy: "user-1",
		Status:      StatusOpen,
	}))

	r, err := s.AdvanceRequest("req-1", StatusInProgress, "user-1")
	require.NoError(t, err)
	assert.Equal(t, StatusInProgress, r.Status)
	assert.Equal(t, "user-1", r.FulfilledBy)

	// Same-state no-op is allowed.
	_, err = s.AdvanceRequest("req-1", StatusInProgress, "")
	require.NoError(t, err)

	// Backward transition is rejected.
	_, err = s.AdvanceRequest("req-1", StatusOpen, "")
	require.Error(t, err)
	assert.True(t, IsInvalidState(err))
}
