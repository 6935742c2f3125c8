package seed_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/skillbridge/internal/catalog"
	"github.com/roach88/skillbridge/internal/seed"
)

const minimalSeed = `
current_user: ada
categories:
  - id: technology
    name: Technology
users:
  - id: user-1
    username: ada
    name: Ada Lovelace
    joined_at: "2023-06-12T09:00:00Z"
skills:
  - id: skill-1
    title: Reading a Stack Trace
    description: Bottom up, not top down.
    category: Technology
    duration: 5
    rating: 4.2
    learners: 10
    creator_id: user-1
    created_at: "2024-02-18T10:00:00Z"
`

func TestParse_MinimalSeed(t *testing.T) {
	f, err := seed.Parse([]byte(minimalSeed))
	require.NoError(t, err)

	assert.Equal(t, "ada", f.CurrentUser)
	require.Len(t, f.Skills, 1)
	assert.Equal(t, "Reading a Stack Trace", f.Skills[0].Title)
}

func TestParse_RejectsUnknownField(t *testing.T) {
	_, err := seed.Parse([]byte(`
categorys:
  - id: technology
    name: Technology
`))
	require.Error(t, err, "typo'd top-level key must be rejected")
}

func TestParse_RejectsUnknownSkillField(t *testing.T) {
	bad := minimalSeed + `    durration: 5
`
	_, err := seed.Parse([]byte(bad))
	require.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := seed.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestDefault_AppliesCleanly(t *testing.T) {
	f, err := seed.Default()
	require.NoError(t, err)
	assert.Equal(t, "johndoe", f.CurrentUser)

	store, err := f.Apply()
	require.NoError(t, err)

	assert.Len(t, store.Categories(), 4)
	assert.Len(t, store.Skills(), 8)
	assert.NotEmpty(t, store.Comments())
	assert.NotEmpty(t, store.Requests())

	u, err := store.UserByUsername("johndoe")
	require.NoError(t, err)
	assert.Equal(t, "John Doe", u.Name)
}

func TestApply_ParsesTimestamps(t *testing.T) {
	f, err := seed.Parse([]byte(minimalSeed))
	require.NoError(t, err)

	store, err := f.Apply()
	require.NoError(t, err)

	sk, err := store.Skill("skill-1")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 18, 10, 0, 0, 0, time.UTC), sk.CreatedAt)
}

func TestApply_RejectsBadTimestamp(t *testing.T) {
	f, err := seed.Parse([]byte(`
categories:
  - id: technology
    name: Technology
users:
  - id: user-1
    username: ada
    name: Ada Lovelace
    joined_at: "last summer"
skills: []
`))
	require.NoError(t, err, "timestamp format is checked at apply time, not parse time")

	_, err = f.Apply()
	require.Error(t, err)
	assert.True(t, catalog.IsValidation(err))
}

func TestApply_RejectsUnknownCreator(t *testing.T) {
	f, err := seed.Parse([]byte(`
categories:
  - id: technology
    name: Technology
users:
  - id: user-1
    username: ada
    name: Ada Lovelace
    joined_at: "2023-06-12T09:00:00Z"
skills:
  - id: skill-1
    title: Reading a Stack Trace
    description: Bottom up, not top down.
    category: Technology
    duration: 5
    rating: 4.2
    learners: 10
    creator_id: user-99
    created_at: "2024-02-18T10:00:00Z"
`))
	require.NoError(t, err, "referential checks live in the store, not the schema")

	_, err = f.Apply()
	require.Error(t, err)
	assert.True(t, catalog.IsValidation(err))
}
