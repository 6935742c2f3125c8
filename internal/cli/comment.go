package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// CommentAddOptions holds flags for comment add.
type CommentAddOptions struct {
	*RootOptions
	Content string
	Guest   bool
}

// NewCommentCommand creates the comment command with its add, like, and
// helpful subcommands.
func NewCommentCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "comment",
		Short: "Discuss a skill: add, like, or mark comments helpful",
	}
	cmd.AddCommand(newCommentAddCommand(rootOpts))
	cmd.AddCommand(newCommentLikeCommand(rootOpts))
	cmd.AddCommand(newCommentHelpfulCommand(rootOpts))
	return cmd
}

func newCommentAddCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CommentAddOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:           "add <skill-id>",
		Short:         "Add a comment to a skill's discussion",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := NewApp(cmd.Context(), rootOpts.Config)
			if err != nil {
				return err
			}
			defer app.Close()
			return runCommentAdd(cmd, app, args[0], opts, rootOpts.Formatter(cmd))
		},
	}

	cmd.Flags().StringVar(&opts.Content, "content", "", "comment text")
	cmd.Flags().BoolVar(&opts.Guest, "guest", false, "post as guest even when a user is set")

	return cmd
}

func runCommentAdd(cmd *cobra.Command, app *App, skillID string, opts *CommentAddOptions, f *OutputFormatter) error {
	authorID := ""
	if !opts.Guest && app.CurrentUser != nil {
		authorID = app.CurrentUser.ID
	}

	c, err := app.Engine.AddComment(cmd.Context(), skillID, authorID, opts.Content)
	if err != nil {
		return f.Fail(err)
	}
	return f.Success(c, fmt.Sprintf("Comment %s added by %s", c.ID, c.AuthorName))
}

func newCommentLikeCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "like <comment-id>",
		Short:         "Like a comment",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := NewApp(cmd.Context(), rootOpts.Config)
			if err != nil {
				return err
			}
			defer app.Close()

			f := rootOpts.Formatter(cmd)
			count, err := app.Engine.LikeComment(cmd.Context(), args[0])
			if err != nil {
				return f.Fail(err)
			}
			data := map[string]int{"likes": count}
			return f.Success(data, fmt.Sprintf("Comment %s now has %d like(s)", args[0], count))
		},
	}
}

func newCommentHelpfulCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "helpful <comment-id>",
		Short:         "Toggle a comment's helpful mark",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := NewApp(cmd.Context(), rootOpts.Config)
			if err != nil {
				return err
			}
			defer app.Close()

			f := rootOpts.Formatter(cmd)
			helpful, err := app.Engine.ToggleHelpful(cmd.Context(), args[0])
			if err != nil {
				return f.Fail(err)
			}
			text := fmt.Sprintf("Comment %s unmarked as helpful", args[0])
			if helpful {
				text = fmt.Sprintf("Comment %s marked as helpful", args[0])
			}
			data := map[string]bool{"helpful": helpful}
			return f.Success(data, text)
		},
	}
}
