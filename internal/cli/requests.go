package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/skillbridge/internal/catalog"
	"github.com/roach88/skillbridge/internal/query"
)

type requestsView struct {
	Requests []*catalog.Request `json:"requests"`
}

// NewRequestsCommand creates the requests command (list view).
func NewRequestsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "requests",
		Short:         "List community skill requests, most upvoted first",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := NewApp(cmd.Context(), rootOpts.Config)
			if err != nil {
				return err
			}
			defer app.Close()
			return runRequests(app, rootOpts.Formatter(cmd))
		},
	}
}

func runRequests(app *App, f *OutputFormatter) error {
	view := requestsView{Requests: query.RequestsByPopularity(app.Store)}

	var b strings.Builder
	fmt.Fprintf(&b, "%d request(s)\n", len(view.Requests))
	writeRequests(&b, view.Requests)
	return f.Success(view, strings.TrimRight(b.String(), "\n"))
}

// RequestSubmitOptions holds flags for request submit.
type RequestSubmitOptions struct {
	*RootOptions
	Title       string
	Description string
	Category    string
}

// NewRequestCommand creates the request command with its submit and
// upvote subcommands.
func NewRequestCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "request",
		Short: "Submit or upvote a skill request",
	}
	cmd.AddCommand(newRequestSubmitCommand(rootOpts))
	cmd.AddCommand(newRequestUpvoteCommand(rootOpts))
	cmd.AddCommand(newRequestAdvanceCommand(rootOpts))
	return cmd
}

func newRequestSubmitCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RequestSubmitOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:           "submit",
		Short:         "Submit a new skill request",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := NewApp(cmd.Context(), rootOpts.Config)
			if err != nil {
				return err
			}
			defer app.Close()
			return runRequestSubmit(cmd, app, opts, rootOpts.Formatter(cmd))
		},
	}

	cmd.Flags().StringVar(&opts.Title, "title", "", "request title")
	cmd.Flags().StringVar(&opts.Description, "description", "", "what the skill should cover")
	cmd.Flags().StringVar(&opts.Category, "category", "", "category name")

	return cmd
}

func runRequestSubmit(cmd *cobra.Command, app *App, opts *RequestSubmitOptions, f *OutputFormatter) error {
	u, err := app.RequireUser()
	if err != nil {
		return err
	}

	r, err := app.Engine.SubmitRequest(cmd.Context(),
		opts.Title, opts.Description, opts.Category, u.ID)
	if err != nil {
		return f.Fail(err)
	}
	return f.Success(r, fmt.Sprintf("Submitted %s: %s [%s]", r.ID, r.Title, r.Category))
}

func newRequestUpvoteCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "upvote <request-id>",
		Short:         "Toggle your upvote on a skill request",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := NewApp(cmd.Context(), rootOpts.Config)
			if err != nil {
				return err
			}
			defer app.Close()
			return runRequestUpvote(cmd, app, args[0], rootOpts.Formatter(cmd))
		},
	}
}

// RequestAdvanceOptions holds flags for request advance.
type RequestAdvanceOptions struct {
	*RootOptions
	Status string
	By     string
}

func newRequestAdvanceCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RequestAdvanceOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:           "advance <request-id>",
		Short:         "Move a skill request forward in its lifecycle",
		Long:          "Move a skill request forward: open, in-progress, completed.\nBackward transitions are rejected.",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := NewApp(cmd.Context(), rootOpts.Config)
			if err != nil {
				return err
			}
			defer app.Close()
			return runRequestAdvance(cmd, app, args[0], opts, rootOpts.Formatter(cmd))
		},
	}

	cmd.Flags().StringVar(&opts.Status, "status", "", "target status (in-progress or completed)")
	cmd.Flags().StringVar(&opts.By, "by", "", "username of the user fulfilling the request (defaults to you)")

	return cmd
}

func runRequestAdvance(cmd *cobra.Command, app *App, requestID string, opts *RequestAdvanceOptions, f *OutputFormatter) error {
	u, err := app.RequireUser()
	if err != nil {
		return err
	}

	fulfiller := u
	if opts.By != "" {
		fulfiller, err = app.Store.UserByUsername(opts.By)
		if err != nil {
			return f.Fail(err)
		}
	}

	r, err := app.Engine.AdvanceRequest(cmd.Context(),
		u.ID, requestID, catalog.Status(opts.Status), fulfiller.ID)
	if err != nil {
		return f.Fail(err)
	}

	text := fmt.Sprintf("Request %s is now %s", r.ID, r.Status)
	if r.FulfilledBy != "" {
		text += fmt.Sprintf(", fulfilled by %s", r.FulfilledBy)
	}
	return f.Success(r, text)
}

func runRequestUpvote(cmd *cobra.Command, app *App, requestID string, f *OutputFormatter) error {
	u, err := app.RequireUser()
	if err != nil {
		return err
	}

	result, err := app.Engine.ToggleUpvote(cmd.Context(), u.ID, requestID)
	if err != nil {
		return f.Fail(err)
	}

	text := fmt.Sprintf("Upvote removed from %s (%d upvotes)", requestID, result.Count)
	if result.Voted {
		text = fmt.Sprintf("Upvoted %s (%d upvotes)", requestID, result.Count)
	}
	return f.Success(result, text)
}
