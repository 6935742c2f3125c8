package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/skillbridge/internal/catalog"
	"github.com/roach88/skillbridge/internal/query"
)

type profileView struct {
	User    *catalog.User    `json:"user"`
	Created []*catalog.Skill `json:"created"`
}

// NewProfileCommand creates the profile command and its edit subcommand.
func NewProfileCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "profile [username]",
		Short:         "Show a user profile and the skills they created",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := NewApp(cmd.Context(), rootOpts.Config)
			if err != nil {
				return err
			}
			defer app.Close()

			username := ""
			if len(args) == 1 {
				username = args[0]
			}
			return runProfile(app, username, rootOpts.Formatter(cmd))
		},
	}

	cmd.AddCommand(NewProfileEditCommand(rootOpts))
	return cmd
}

func runProfile(app *App, username string, f *OutputFormatter) error {
	var u *catalog.User
	if username == "" {
		var err error
		u, err = app.RequireUser()
		if err != nil {
			return err
		}
	} else {
		var err error
		u, err = app.Store.UserByUsername(username)
		if err != nil {
			return f.Fail(err)
		}
	}

	view := profileView{
		User:    u,
		Created: query.SkillsByCreator(app.Store, u.ID),
	}

	var b strings.Builder
	b.WriteString(renderUser(u))
	b.WriteString("\nCreated skills\n")
	writeSkillList(&b, view.Created)
	return f.Success(view, strings.TrimRight(b.String(), "\n"))
}

// ProfileEditOptions holds flags for profile edit.
type ProfileEditOptions struct {
	*RootOptions
	Name   string
	Bio    string
	Email  string
	Avatar string
	Skills []string
}

// NewProfileEditCommand creates the profile edit subcommand.
func NewProfileEditCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ProfileEditOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:           "edit",
		Short:         "Update fields of the acting user's profile",
		Long:          "Update fields of the acting user's profile. Only flags you pass are changed.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := NewApp(cmd.Context(), rootOpts.Config)
			if err != nil {
				return err
			}
			defer app.Close()
			return runProfileEdit(cmd, app, opts, rootOpts.Formatter(cmd))
		},
	}

	cmd.Flags().StringVar(&opts.Name, "name", "", "display name")
	cmd.Flags().StringVar(&opts.Bio, "bio", "", "short bio")
	cmd.Flags().StringVar(&opts.Email, "email", "", "contact email")
	cmd.Flags().StringVar(&opts.Avatar, "avatar", "", "avatar URL")
	cmd.Flags().StringSliceVar(&opts.Skills, "skills", nil, "areas of expertise")

	return cmd
}

func runProfileEdit(cmd *cobra.Command, app *App, opts *ProfileEditOptions, f *OutputFormatter) error {
	u, err := app.RequireUser()
	if err != nil {
		return err
	}

	// Only flags the user actually passed become patch fields, so an
	// empty --bio clears the bio while an omitted one leaves it alone.
	var patch catalog.UserPatch
	if cmd.Flags().Changed("name") {
		patch.Name = &opts.Name
	}
	if cmd.Flags().Changed("bio") {
		patch.Bio = &opts.Bio
	}
	if cmd.Flags().Changed("email") {
		patch.Email = &opts.Email
	}
	if cmd.Flags().Changed("avatar") {
		patch.Avatar = &opts.Avatar
	}
	if cmd.Flags().Changed("skills") {
		patch.Skills = &opts.Skills
	}

	updated, err := app.Engine.EditProfile(cmd.Context(), u.ID, patch)
	if err != nil {
		return f.Fail(err)
	}
	return f.Success(updated, strings.TrimRight(renderUser(updated), "\n"))
}
