package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/skillbridge/internal/catalog"
	"github.com/roach88/skillbridge/internal/query"
)

const relatedCount = 3

type lessonView struct {
	Skill      *catalog.Skill     `json:"skill"`
	Creator    *catalog.User      `json:"creator,omitempty"`
	Related    []*catalog.Skill   `json:"related"`
	Comments   []*catalog.Comment `json:"comments"`
	Bookmarked bool               `json:"bookmarked"`
}

// NewLessonCommand creates the lesson command.
func NewLessonCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "lesson <skill-id>",
		Short:         "Show a skill with its related skills and discussion",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := NewApp(cmd.Context(), rootOpts.Config)
			if err != nil {
				return err
			}
			defer app.Close()
			return runLesson(app, args[0], rootOpts.Formatter(cmd))
		},
	}
}

func runLesson(app *App, skillID string, f *OutputFormatter) error {
	sk, err := app.Store.Skill(skillID)
	if err != nil {
		return f.Fail(err)
	}
	related, err := query.RelatedSkills(app.Store, skillID, relatedCount)
	if err != nil {
		return f.Fail(err)
	}

	view := lessonView{
		Skill:    sk,
		Related:  related,
		Comments: query.CommentsForSkill(app.Store, skillID),
	}
	// Creator lookup is best-effort for display; the store guarantees
	// the reference at insert time.
	if creator, err := app.Store.User(sk.CreatorID); err == nil {
		view.Creator = creator
	}
	if app.CurrentUser != nil {
		view.Bookmarked = app.State.Bookmarked(app.CurrentUser.ID, skillID)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s [%s]\n", sk.Title, sk.Category)
	if view.Creator != nil {
		fmt.Fprintf(&b, "by %s, %dm, %.1f stars, %d learners\n",
			view.Creator.Name, sk.Duration, sk.Rating, sk.Learners)
	}
	if len(sk.Tags) > 0 {
		fmt.Fprintf(&b, "Tags: %s\n", strings.Join(sk.Tags, ", "))
	}
	if view.Bookmarked {
		b.WriteString("Bookmarked\n")
	}
	fmt.Fprintf(&b, "\n%s\n", sk.Description)
	if sk.Content != "" {
		fmt.Fprintf(&b, "\n%s\n", strings.TrimRight(sk.Content, "\n"))
	}
	b.WriteString("\nRelated\n")
	writeSkillList(&b, related)
	fmt.Fprintf(&b, "\nComments (%d)\n", len(view.Comments))
	writeComments(&b, view.Comments)
	return f.Success(view, strings.TrimRight(b.String(), "\n"))
}
