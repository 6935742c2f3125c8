// Package config resolves runtime settings from defaults, an optional
// YAML config file, SKILLBRIDGE_* environment variables, and CLI flags,
// in that order of precedence (later sources win).
package config

import (
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
)

// Config holds the resolved runtime settings.
type Config struct {
	// Seed is the path to a seed YAML file. Empty means the embedded
	// default catalog.
	Seed string `koanf:"seed"`

	// Journal is the path to the interaction journal database. Empty
	// means in-memory only (interactions are lost on exit).
	Journal string `koanf:"journal"`

	// User is the acting username. Empty defers to the seed file's
	// current_user.
	User string `koanf:"user"`

	LogLevel string `koanf:"log_level"`

	// Format selects CLI output: "text" or "json".
	Format string `koanf:"format"`
}

const (
	DefaultLogLevel = "info"
	DefaultFormat   = "text"

	envPrefix = "SKILLBRIDGE_"
)

// Load resolves configuration for the given command. cmd may be nil in
// tests; flag and config-file sources are then skipped.
func Load(cmd *cobra.Command) (*Config, error) {
	k := koanf.New(".")

	defaults := map[string]interface{}{
		"seed":      "",
		"journal":   "",
		"user":      "",
		"log_level": DefaultLogLevel,
		"format":    DefaultFormat,
	}
	for key, value := range defaults {
		k.Set(key, value)
	}

	configPath := ""
	if cmd != nil {
		if flag := cmd.Flags().Lookup("config"); flag != nil {
			configPath = strings.TrimSpace(flag.Value.String())
		}
	}
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	// Double underscore separates nesting levels so flat keys like
	// log_level stay addressable (SKILLBRIDGE_LOG_LEVEL).
	k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "__", ".", -1)
	}), nil)

	if cmd != nil {
		k.Load(posflag.Provider(cmd.Flags(), ".", k), nil)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
