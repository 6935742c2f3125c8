package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/skillbridge/internal/catalog"
)

func validFile() *File {
	return &File{
		CurrentUser: "ada",
		Categories:  []Category{{ID: "technology", Name: "Technology"}},
		Users: []User{{
			ID: "user-1", Username: "ada", Name: "Ada Lovelace",
			JoinedAt: "2023-06-12T09:00:00Z",
		}},
		Skills: []Skill{{
			ID: "skill-1", Title: "Reading a Stack Trace",
			Description: "Bottom up, not top down.",
			Category:    "Technology", Duration: 5, Rating: 4.2,
			Learners: 10, CreatorID: "user-1",
			CreatedAt: "2024-02-18T10:00:00Z",
		}},
	}
}

func TestValidate_AcceptsValidFile(t *testing.T) {
	require.NoError(t, Validate(validFile()))
}

func TestValidate_SchemaViolations(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*File)
	}{
		{
			name:   "blank category id",
			mutate: func(f *File) { f.Categories[0].ID = "" },
		},
		{
			name:   "no users",
			mutate: func(f *File) { f.Users = nil },
		},
		{
			name:   "no categories",
			mutate: func(f *File) { f.Categories = nil },
		},
		{
			name:   "zero duration",
			mutate: func(f *File) { f.Skills[0].Duration = 0 },
		},
		{
			name:   "rating above five",
			mutate: func(f *File) { f.Skills[0].Rating = 5.1 },
		},
		{
			name:   "negative learners",
			mutate: func(f *File) { f.Skills[0].Learners = -1 },
		},
		{
			name: "unknown request status",
			mutate: func(f *File) {
				f.Requests = []Request{{
					ID: "request-1", Title: "t", Description: "d",
					Category: "Technology", RequestedBy: "user-1",
					CreatedAt: "2024-03-04T12:00:00Z", Status: "done",
				}}
			},
		},
		{
			name: "negative upvotes",
			mutate: func(f *File) {
				f.Requests = []Request{{
					ID: "request-1", Title: "t", Description: "d",
					Category: "Technology", RequestedBy: "user-1",
					CreatedAt: "2024-03-04T12:00:00Z", Status: "open",
					Upvotes: -2,
				}}
			},
		},
		{
			name: "comment without content",
			mutate: func(f *File) {
				f.Comments = []Comment{{
					ID: "comment-1", SkillID: "skill-1", AuthorName: "Guest",
					CreatedAt: "2024-03-04T12:00:00Z",
				}}
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validFile()
			tt.mutate(f)
			err := Validate(f)
			require.Error(t, err)
			assert.True(t, catalog.IsValidation(err))
		})
	}
}
