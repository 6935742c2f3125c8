package cli

import (
	"fmt"
	"strings"

	"github.com/roach88/skillbridge/internal/catalog"
	"github.com/roach88/skillbridge/internal/query"
)

// Text renderers shared across commands. Output is deterministic so it
// can be compared against golden files.

func writeSkillList(b *strings.Builder, skills []*catalog.Skill) {
	if len(skills) == 0 {
		b.WriteString("  (none)\n")
		return
	}
	for _, sk := range skills {
		fmt.Fprintf(b, "  %s  %s [%s] %dm, %.1f stars, %d learners\n",
			sk.ID, sk.Title, sk.Category, sk.Duration, sk.Rating, sk.Learners)
	}
}

func writeCategoryCounts(b *strings.Builder, counts []query.CategoryCount) {
	for _, c := range counts {
		fmt.Fprintf(b, "  %s (%d)\n", c.Category.Name, c.Count)
	}
}

func writeComments(b *strings.Builder, comments []*catalog.Comment) {
	if len(comments) == 0 {
		b.WriteString("  (none)\n")
		return
	}
	for _, c := range comments {
		marker := ""
		if c.Helpful {
			marker = " [helpful]"
		}
		fmt.Fprintf(b, "  %s  %s (%d likes)%s: %s\n",
			c.ID, c.AuthorName, c.Likes, marker, c.Content)
	}
}

func writeRequests(b *strings.Builder, requests []*catalog.Request) {
	if len(requests) == 0 {
		b.WriteString("  (none)\n")
		return
	}
	for _, r := range requests {
		fmt.Fprintf(b, "  %s  %s [%s] %d upvotes, %s\n",
			r.ID, r.Title, r.Category, r.Upvotes, r.Status)
	}
}

func renderUser(u *catalog.User) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (@%s)\n", u.Name, u.Username)
	if u.Bio != "" {
		fmt.Fprintf(&b, "  %s\n", u.Bio)
	}
	if u.Email != "" {
		fmt.Fprintf(&b, "  %s\n", u.Email)
	}
	if len(u.Skills) > 0 {
		fmt.Fprintf(&b, "  Knows: %s\n", strings.Join(u.Skills, ", "))
	}
	fmt.Fprintf(&b, "  Joined %s\n", u.JoinedAt.Format("Jan 2006"))
	return b.String()
}
