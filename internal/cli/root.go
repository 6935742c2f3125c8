package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/skillbridge/internal/config"
	"github.com/roach88/skillbridge/internal/logger"
)

// RootOptions holds resolved global settings for all commands.
type RootOptions struct {
	Verbose bool
	Config  *config.Config
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the SkillBridge CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "skillbridge",
		Short: "SkillBridge - bite-sized skill sharing",
		Long:  "Browse, discuss, and request bite-sized skills from a community catalog.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd)
			if err != nil {
				return WrapExitError(ExitCommandError, "load configuration", err)
			}
			if !isValidFormat(cfg.Format) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid format %q: must be one of %v", cfg.Format, ValidFormats))
			}
			level := cfg.LogLevel
			if opts.Verbose {
				level = "debug"
			}
			logger.Setup(level)
			opts.Config = cfg
			return nil
		},
	}

	// Global flags. String flags feed the config layer via posflag, so
	// their names match config keys.
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().String("format", config.DefaultFormat, "output format (json|text)")
	cmd.PersistentFlags().String("config", "", "path to config YAML")
	cmd.PersistentFlags().String("seed", "", "path to seed YAML (default: embedded catalog)")
	cmd.PersistentFlags().String("journal", "", "path to interaction journal database")
	cmd.PersistentFlags().String("user", "", "acting username (default: seed's current_user)")

	cmd.AddCommand(NewHomeCommand(opts))
	cmd.AddCommand(NewExploreCommand(opts))
	cmd.AddCommand(NewLessonCommand(opts))
	cmd.AddCommand(NewProfileCommand(opts))
	cmd.AddCommand(NewRequestsCommand(opts))
	cmd.AddCommand(NewRequestCommand(opts))
	cmd.AddCommand(NewCommentCommand(opts))
	cmd.AddCommand(NewBookmarkCommand(opts))

	return cmd
}

// Formatter builds the output formatter for the executing command.
func (o *RootOptions) Formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    o.Config.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   o.Verbose,
	}
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
