package seed

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/roach88/skillbridge/internal/catalog"
)

//go:embed default.yaml
var defaultSeed []byte

// File is the decoded shape of a seed YAML file. Field names mirror the
// catalog entity tags; timestamps are RFC 3339 strings and are parsed
// during Apply.
type File struct {
	// CurrentUser is the username acting in the session (optional).
	CurrentUser string `yaml:"current_user,omitempty" json:"current_user,omitempty"`

	Categories []Category `yaml:"categories" json:"categories"`
	Users      []User     `yaml:"users" json:"users"`
	Skills     []Skill    `yaml:"skills" json:"skills"`
	Comments   []Comment  `yaml:"comments,omitempty" json:"comments,omitempty"`
	Requests   []Request  `yaml:"requests,omitempty" json:"requests,omitempty"`
}

// Category declares one entry of the closed category set.
type Category struct {
	ID   string `yaml:"id" json:"id"`
	Name string `yaml:"name" json:"name"`
}

// User declares a community member.
type User struct {
	ID       string   `yaml:"id" json:"id"`
	Username string   `yaml:"username" json:"username"`
	Name     string   `yaml:"name" json:"name"`
	Bio      string   `yaml:"bio,omitempty" json:"bio,omitempty"`
	Email    string   `yaml:"email,omitempty" json:"email,omitempty"`
	Avatar   string   `yaml:"avatar,omitempty" json:"avatar,omitempty"`
	Skills   []string `yaml:"skills,omitempty" json:"skills,omitempty"`
	JoinedAt string   `yaml:"joined_at" json:"joined_at"`
}

// Skill declares a micro-lesson.
type Skill struct {
	ID          string   `yaml:"id" json:"id"`
	Title       string   `yaml:"title" json:"title"`
	Description string   `yaml:"description" json:"description"`
	Content     string   `yaml:"content,omitempty" json:"content,omitempty"`
	Category    string   `yaml:"category" json:"category"`
	Tags        []string `yaml:"tags,omitempty" json:"tags,omitempty"`
	Duration    int      `yaml:"duration" json:"duration"`
	Rating      float64  `yaml:"rating" json:"rating"`
	Learners    int      `yaml:"learners" json:"learners"`
	CreatorID   string   `yaml:"creator_id" json:"creator_id"`
	CreatedAt   string   `yaml:"created_at" json:"created_at"`
	Featured    bool     `yaml:"featured,omitempty" json:"featured,omitempty"`
	ImageURL    string   `yaml:"image_url,omitempty" json:"image_url,omitempty"`
}

// Comment declares a pre-existing discussion entry.
type Comment struct {
	ID         string `yaml:"id" json:"id"`
	SkillID    string `yaml:"skill_id" json:"skill_id"`
	AuthorID   string `yaml:"author_id,omitempty" json:"author_id,omitempty"`
	AuthorName string `yaml:"author_name" json:"author_name"`
	Content    string `yaml:"content" json:"content"`
	CreatedAt  string `yaml:"created_at" json:"created_at"`
	Likes      int    `yaml:"likes" json:"likes"`
	Helpful    bool   `yaml:"helpful,omitempty" json:"helpful,omitempty"`
}

// Request declares a pre-existing skill request.
type Request struct {
	ID          string `yaml:"id" json:"id"`
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
	Category    string `yaml:"category" json:"category"`
	RequestedBy string `yaml:"requested_by" json:"requested_by"`
	CreatedAt   string `yaml:"created_at" json:"created_at"`
	Upvotes     int    `yaml:"upvotes" json:"upvotes"`
	Status      string `yaml:"status" json:"status"`
	FulfilledBy string `yaml:"fulfilled_by,omitempty" json:"fulfilled_by,omitempty"`
}

// Parse decodes seed YAML and validates it against the embedded schema.
func Parse(data []byte) (*File, error) {
	var f File
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // reject unknown fields (catches typos)
	if err := decoder.Decode(&f); err != nil {
		return nil, fmt.Errorf("parse seed: %w", err)
	}
	if err := Validate(&f); err != nil {
		return nil, err
	}
	return &f, nil
}

// Load reads and parses a seed YAML file from disk.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Default returns the embedded seed shipped with the binary.
func Default() (*File, error) {
	return Parse(defaultSeed)
}

// Apply builds a catalog.Store from the seed file. Entities are added in
// declaration order, so seed order is iteration order. The store's own
// referential checks run here; a seed referencing an unknown creator or
// skill fails with a validation error.
func (f *File) Apply() (*catalog.Store, error) {
	store := catalog.NewStore()

	for _, c := range f.Categories {
		if err := store.AddCategory(&catalog.Category{ID: c.ID, Name: c.Name}); err != nil {
			return nil, err
		}
	}
	for _, u := range f.Users {
		joined, err := parseTime("user "+u.ID, "joined_at", u.JoinedAt)
		if err != nil {
			return nil, err
		}
		if err := store.AddUser(&catalog.User{
			ID:       u.ID,
			Username: u.Username,
			Name:     u.Name,
			Bio:      u.Bio,
			Email:    u.Email,
			Avatar:   u.Avatar,
			Skills:   u.Skills,
			JoinedAt: joined,
		}); err != nil {
			return nil, err
		}
	}
	for _, sk := range f.Skills {
		created, err := parseTime("skill "+sk.ID, "created_at", sk.CreatedAt)
		if err != nil {
			return nil, err
		}
		if err := store.AddSkill(&catalog.Skill{
			ID:          sk.ID,
			Title:       sk.Title,
			Description: sk.Description,
			Content:     sk.Content,
			Category:    sk.Category,
			Tags:        sk.Tags,
			Duration:    sk.Duration,
			Rating:      sk.Rating,
			Learners:    sk.Learners,
			CreatorID:   sk.CreatorID,
			CreatedAt:   created,
			Featured:    sk.Featured,
			ImageURL:    sk.ImageURL,
		}); err != nil {
			return nil, err
		}
	}
	for _, c := range f.Comments {
		created, err := parseTime("comment "+c.ID, "created_at", c.CreatedAt)
		if err != nil {
			return nil, err
		}
		if err := store.AddComment(&catalog.Comment{
			ID:         c.ID,
			SkillID:    c.SkillID,
			AuthorID:   c.AuthorID,
			AuthorName: c.AuthorName,
			Content:    c.Content,
			CreatedAt:  created,
			Likes:      c.Likes,
			Helpful:    c.Helpful,
		}); err != nil {
			return nil, err
		}
	}
	for _, r := range f.Requests {
		created, err := parseTime("request "+r.ID, "created_at", r.CreatedAt)
		if err != nil {
			return nil, err
		}
		if err := store.AddRequest(&catalog.Request{
			ID:          r.ID,
			Title:       r.Title,
			Description: r.Description,
			Category:    r.Category,
			RequestedBy: r.RequestedBy,
			CreatedAt:   created,
			Upvotes:     r.Upvotes,
			Status:      catalog.Status(r.Status),
			FulfilledBy: r.FulfilledBy,
		}); err != nil {
			return nil, err
		}
	}
	return store, nil
}

func parseTime(entity, field, value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, catalog.NewValidation("%s: %s: %v", entity, field, err)
	}
	return t, nil
}
