package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/skillbridge/internal/catalog"
	"github.com/roach88/skillbridge/internal/query"
)

// ExploreOptions holds flags for the explore command.
type ExploreOptions struct {
	*RootOptions
	Category string
	Search   string
}

type exploreView struct {
	Category   string                `json:"category"`
	Search     string                `json:"search,omitempty"`
	Skills     []*catalog.Skill      `json:"skills"`
	Categories []query.CategoryCount `json:"categories"`
}

// NewExploreCommand creates the explore command.
func NewExploreCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ExploreOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "explore",
		Short: "Browse the catalog with category and search filters",
		Long: `Browse the catalog with category and search filters.

The category filter matches case-insensitively; "all" (the default)
matches everything. The search term matches as a case-insensitive
substring of the title or description. Both filters combine.

Example:
  skillbridge explore --category technology --search git`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := NewApp(cmd.Context(), rootOpts.Config)
			if err != nil {
				return err
			}
			defer app.Close()
			return runExplore(app, opts, rootOpts.Formatter(cmd))
		},
	}

	cmd.Flags().StringVar(&opts.Category, "category", query.CategoryAll, "category filter")
	cmd.Flags().StringVar(&opts.Search, "search", "", "search term (title or description)")

	return cmd
}

func runExplore(app *App, opts *ExploreOptions, f *OutputFormatter) error {
	skills := slices.Collect(query.FilterSkills(app.Store, opts.Category, opts.Search))

	view := exploreView{
		Category:   opts.Category,
		Search:     opts.Search,
		Skills:     skills,
		Categories: query.CategoryCounts(app.Store),
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d skill(s)\n", len(skills))
	writeSkillList(&b, skills)
	b.WriteString("\nCategories\n")
	writeCategoryCounts(&b, view.Categories)
	return f.Success(view, strings.TrimRight(b.String(), "\n"))
}
