package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/skillbridge/internal/catalog"
	"github.com/roach88/skillbridge/internal/query"
)

const (
	homeFeaturedCount = 4
	homeRecentCount   = 5
)

type homeView struct {
	Featured   []*catalog.Skill      `json:"featured"`
	Recent     []*catalog.Skill      `json:"recent"`
	Categories []query.CategoryCount `json:"categories"`
}

// NewHomeCommand creates the home command.
func NewHomeCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "home",
		Short:         "Show featured skills, new arrivals, and category counts",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := NewApp(cmd.Context(), rootOpts.Config)
			if err != nil {
				return err
			}
			defer app.Close()
			return runHome(app, rootOpts.Formatter(cmd))
		},
	}
}

func runHome(app *App, f *OutputFormatter) error {
	view := homeView{
		Featured:   query.FeaturedSkills(app.Store, homeFeaturedCount),
		Recent:     query.RecentSkills(app.Store, homeRecentCount),
		Categories: query.CategoryCounts(app.Store),
	}

	var b strings.Builder
	b.WriteString("Featured\n")
	writeSkillList(&b, view.Featured)
	b.WriteString("\nRecently added\n")
	writeSkillList(&b, view.Recent)
	b.WriteString("\nCategories\n")
	writeCategoryCounts(&b, view.Categories)
	return f.Success(view, strings.TrimRight(b.String(), "\n"))
}
