// Package app wires the CLI together: configuration, credential store,
// API client and session manager, constructed explicitly per invocation
// rather than living in package globals.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/fec-analyzer/cli/internal/api"
	"github.com/fec-analyzer/cli/internal/config"
	"github.com/fec-analyzer/cli/internal/credentials"
	"github.com/fec-analyzer/cli/internal/logging"
	"github.com/fec-analyzer/cli/internal/session"
)

// App holds the assembled collaborators for one command invocation.
type App struct {
	Config  *config.Config
	Log     logging.Logger
	Store   credentials.Store
	Client  *api.Client
	Session *session.Manager
}

// New assembles the application from the loaded configuration. navigate
// may be nil; navigation events are then only logged.
func New(navigate session.Navigator) *App {
	cfg := config.Get()
	log := logging.New(config.IsDebug())

	store := credentials.NewStore(log)

	timeout := api.DefaultTimeout
	if cfg.Server.Timeout != "" {
		if d, err := time.ParseDuration(cfg.Server.Timeout); err == nil {
			timeout = d
		} else {
			log.Warn("invalid server.timeout, using default", "value", cfg.Server.Timeout)
		}
	}

	client := api.NewClient(cfg.Server.URL, store, log, api.WithTimeout(timeout))

	nav := func(n session.Navigation) {
		log.Debug("navigation event", "target", n)
		if navigate != nil {
			navigate(n)
		}
	}

	return &App{
		Config:  cfg,
		Log:     log,
		Store:   store,
		Client:  client,
		Session: session.NewManager(client, store, log, nav),
	}
}

// RequireAuth is the CLI side of the protected-route gate: it runs the
// startup check, then either hands back the authenticated session or
// fails with a redirect-to-login error.
func (a *App) RequireAuth(ctx context.Context) (*session.Manager, error) {
	a.Session.Check(ctx)

	switch session.Decide(a.Session.Current()) {
	case session.RenderContent:
		return a.Session, nil
	case session.RedirectLogin:
		return nil, fmt.Errorf("not logged in, run 'fec-cli auth login' first")
	default:
		return nil, fmt.Errorf("session check did not complete")
	}
}
