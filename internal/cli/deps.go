package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/confideapp/confide/internal/api"
	"github.com/confideapp/confide/internal/config"
	"github.com/confideapp/confide/internal/kv"
	"github.com/confideapp/confide/internal/session"
)

const requestTimeout = 30 * time.Second

// newSessionStore opens the token store backed by ~/.confide/state.json.
func newSessionStore() (*session.Store, error) {
	path, err := kv.DefaultStatePath()
	if err != nil {
		return nil, fmt.Errorf("failed to locate state file: %w", err)
	}
	return session.NewStore(kv.NewFileStore(path)), nil
}

// newClient builds the API client wired to the session store.
func newClient() (*api.Client, *session.Store, error) {
	sessions, err := newSessionStore()
	if err != nil {
		return nil, nil, err
	}

	cfg, err := config.Load()
	if err != nil {
		cfg = config.DefaultConfig()
	}

	client := api.NewClient(api.Options{
		BaseURL: cfg.ServerURL,
		Tokens:  sessions,
	})
	return client, sessions, nil
}

// requestContext returns the bounded context every one-shot CLI call uses.
func requestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), requestTimeout)
}
