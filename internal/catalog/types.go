package catalog

import "time"

// Skill is a single micro-lesson.
type Skill struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Content     string    `json:"content"`
	Category    string    `json:"category"`
	Tags        []string  `json:"tags"`
	Duration    int       `json:"duration"` // minutes, always positive
	Rating      float64   `json:"rating"`   // 0.0-5.0
	Learners    int       `json:"learners"`
	CreatorID   string    `json:"creator_id"`
	CreatedAt   time.Time `json:"created_at"`
	Featured    bool      `json:"featured"`
	ImageURL    string    `json:"image_url,omitempty"`
}

// User is a member of the community. A user may be the creator of zero or
// more skills, referenced by CreatorID.
type User struct {
	ID       string    `json:"id"`
	Username string    `json:"username"` // unique, stable
	Name     string    `json:"name"`
	Bio      string    `json:"bio,omitempty"`
	Email    string    `json:"email,omitempty"`
	Avatar   string    `json:"avatar,omitempty"`
	Skills   []string  `json:"skills,omitempty"` // areas of expertise
	JoinedAt time.Time `json:"joined_at"`
}

// UserPatch is a partial profile update. Nil fields are left untouched.
type UserPatch struct {
	Name   *string   `json:"name,omitempty"`
	Bio    *string   `json:"bio,omitempty"`
	Email  *string   `json:"email,omitempty"`
	Avatar *string   `json:"avatar,omitempty"`
	Skills *[]string `json:"skills,omitempty"`
}

// Comment is a discussion entry on a skill. AuthorID may be empty for
// guest comments; AuthorName is the display label either way.
type Comment struct {
	ID         string    `json:"id"`
	SkillID    string    `json:"skill_id"`
	AuthorID   string    `json:"author_id,omitempty"`
	AuthorName string    `json:"author_name"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
	Likes      int       `json:"likes"`
	Helpful    bool      `json:"helpful"`
}

// Request is a community-submitted suggestion for a skill not yet created.
type Request struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	RequestedBy string    `json:"requested_by"`
	CreatedAt   time.Time `json:"created_at"`
	Upvotes     int       `json:"upvotes"`
	Status      Status    `json:"status"`
	FulfilledBy string    `json:"fulfilled_by,omitempty"` // only meaningful when in-progress/completed
}

// Category is one entry in the closed category set.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Status is the request lifecycle state.
type Status string

const (
	StatusOpen       Status = "open"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
)

// statusRank orders the forward-only lifecycle: open -> in-progress -> completed.
var statusRank = map[Status]int{
	StatusOpen:       0,
	StatusInProgress: 1,
	StatusCompleted:  2,
}

// Valid reports whether s is a known status value.
func (s Status) Valid() bool {
	_, ok := statusRank[s]
	return ok
}

// CanAdvanceTo reports whether the transition s -> next is allowed.
// Same-state transitions are no-ops and allowed; backward transitions are not.
func (s Status) CanAdvanceTo(next Status) bool {
	a, ok := statusRank[s]
	if !ok {
		return false
	}
	b, ok := statusRank[next]
	if !ok {
		return false
	}
	return b >= a
}
