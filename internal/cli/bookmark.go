package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewBookmarkCommand creates the bookmark command.
func NewBookmarkCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "bookmark <skill-id>",
		Short:         "Toggle a bookmark on a skill",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := NewApp(cmd.Context(), rootOpts.Config)
			if err != nil {
				return err
			}
			defer app.Close()
			return runBookmark(cmd, app, args[0], rootOpts.Formatter(cmd))
		},
	}
}

func runBookmark(cmd *cobra.Command, app *App, skillID string, f *OutputFormatter) error {
	u, err := app.RequireUser()
	if err != nil {
		return err
	}

	on, err := app.Engine.ToggleBookmark(cmd.Context(), u.ID, skillID)
	if err != nil {
		return f.Fail(err)
	}
	text := fmt.Sprintf("Bookmark removed from %s", skillID)
	if on {
		text = fmt.Sprintf("Bookmarked %s", skillID)
	}
	data := map[string]bool{"bookmarked": on}
	return f.Success(data, text)
}
