package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/roach88/skillbridge/internal/catalog"
	"github.com/roach88/skillbridge/internal/config"
	"github.com/roach88/skillbridge/internal/interact"
	"github.com/roach88/skillbridge/internal/journal"
	"github.com/roach88/skillbridge/internal/seed"
	"github.com/roach88/skillbridge/internal/session"
)

// App wires the loaded catalog, session state, journal, and engine for
// one command invocation.
type App struct {
	Store  *catalog.Store
	State  *session.State
	Engine *interact.Engine
	Log    *journal.Log // nil when no journal is configured

	// CurrentUser is the acting user, nil for a guest session.
	CurrentUser *catalog.User
}

// NewApp loads the seed, opens and replays the journal if one is
// configured, and builds the interaction engine on top.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	var (
		f   *seed.File
		err error
	)
	if cfg.Seed != "" {
		f, err = seed.Load(cfg.Seed)
	} else {
		f, err = seed.Default()
	}
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "load seed", err)
	}

	store, err := f.Apply()
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "apply seed", err)
	}
	state := session.NewState()

	var opts []interact.Option
	var log *journal.Log
	if cfg.Journal != "" {
		log, err = journal.Open(cfg.Journal)
		if err != nil {
			return nil, WrapExitError(ExitCommandError, "open journal", err)
		}
		last, err := journal.Replay(ctx, log, store, state)
		if err != nil {
			log.Close()
			return nil, WrapExitError(ExitCommandError, "replay journal", err)
		}
		slog.Debug("journal replayed", "path", cfg.Journal, "entries", last)
		opts = append(opts, interact.WithJournal(log), interact.WithClockAt(last))
	}

	app := &App{
		Store:  store,
		State:  state,
		Engine: interact.New(store, state, opts...),
		Log:    log,
	}

	username := cfg.User
	if username == "" {
		username = f.CurrentUser
	}
	if username != "" {
		u, err := store.UserByUsername(username)
		if err != nil {
			app.Close()
			return nil, WrapExitError(ExitCommandError,
				fmt.Sprintf("unknown user %q", username), err)
		}
		app.CurrentUser = u
	}
	return app, nil
}

// Close releases the journal handle, if any.
func (a *App) Close() error {
	if a.Log == nil {
		return nil
	}
	return a.Log.Close()
}

// RequireUser returns the acting user or an error for guest sessions.
// Commands that write per-user state (bookmarks, upvotes, profile)
// need a resolved user.
func (a *App) RequireUser() (*catalog.User, error) {
	if a.CurrentUser == nil {
		return nil, NewExitError(ExitCommandError,
			"no acting user: set --user or current_user in the seed file")
	}
	return a.CurrentUser, nil
}
