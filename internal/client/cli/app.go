// Package cli implements the interactive editor console: login, content
// publishing, media upload, preview overrides, and a live watch mode that
// runs the sync loop.
package cli

import (
	"bufio"
	"context"
	"os"
	"time"

	"livecontent/internal/client/api"
	"livecontent/internal/client/config"
	"livecontent/internal/client/sync"
)

type App struct {
	config      *config.Config
	apiClient   *api.Client
	override    *sync.Override
	broadcaster *sync.Broadcaster
	sessionExp  time.Time
	reader      *bufio.Reader
}

func NewApp(c *config.Config) *App {
	return &App{
		config:      c,
		apiClient:   api.NewClient(c.ServerURL, c.RequestTimeout),
		override:    sync.NewOverride(c.OverridePath),
		broadcaster: sync.NewBroadcaster(),
		reader:      bufio.NewReader(os.Stdin),
	}
}

// filenameArg returns the first positional argument, prompting for one
// interactively when the command was given none.
func (a *App) filenameArg(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	return getSimpleText(a.reader, "Enter file path", os.Stdout)
}

func (a *App) isLoggedIn() bool {
	return a.apiClient.Token() != "" && time.Now().Before(a.sessionExp)
}

func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}
