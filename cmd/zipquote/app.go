package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kaosom/zipquote/internal/adapter/persistence/local"
	"github.com/kaosom/zipquote/internal/adapter/remote"
	"github.com/kaosom/zipquote/internal/adapter/renderer"
	"github.com/kaosom/zipquote/internal/domain/entities"
	"github.com/kaosom/zipquote/internal/infrastructure/session"
	"github.com/kaosom/zipquote/internal/usecase"

	"github.com/spf13/cobra"
)

const defaultAPIURL = "http://localhost:8080"

type globalOptions struct {
	home   string
	apiURL string
}

// app is the per-invocation wiring: session file, device store, API client
// and the sync orchestrator on top of them.
type app struct {
	home     string
	provider *session.FileProvider
	sessions *usecase.SessionResolver
	store    *local.SQLiteEstimateStore
	sync     *usecase.EstimateSyncUseCase
}

func openApp(opts *globalOptions) (*app, error) {
	home := strings.TrimSpace(opts.home)
	if home == "" {
		home = session.DefaultHome()
	}
	if err := os.MkdirAll(home, 0o700); err != nil {
		return nil, fmt.Errorf("create %s: %w", home, err)
	}

	apiURL := strings.TrimSpace(opts.apiURL)
	if apiURL == "" {
		apiURL = strings.TrimSpace(os.Getenv("ZIPQUOTE_API_URL"))
	}
	if apiURL == "" {
		apiURL = defaultAPIURL
	}

	provider := session.NewFileProvider(home)
	client, err := remote.NewHTTPEstimateClient(apiURL, nil, provider.AccessToken)
	if err != nil {
		return nil, err
	}
	store, err := local.NewSQLiteEstimateStore(filepath.Join(home, "estimates.db"))
	if err != nil {
		return nil, err
	}

	resolver := usecase.NewSessionResolver(provider)
	return &app{
		home:     home,
		provider: provider,
		sessions: resolver,
		store:    store,
		sync:     usecase.NewEstimateSyncUseCase(resolver, store, client, renderer.NewHTMLRenderer()),
	}, nil
}

func (a *app) Close() error {
	return a.store.Close()
}

// withApp opens the wiring for one command run and closes it afterwards.
func withApp(opts *globalOptions, run func(ctx context.Context, cmd *cobra.Command, a *app, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a, err := openApp(opts)
		if err != nil {
			return err
		}
		defer a.Close()
		return userError(run(cmd.Context(), cmd, a, args))
	}
}

// userError rewrites errors that have a friendlier message for the terminal.
func userError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, entities.ErrFreeQuotaExceeded):
		return errors.New(entities.QuotaExceededMessage)
	case errors.Is(err, usecase.ErrNotAuthenticated):
		return errors.New("not signed in, run `zipquote login` first")
	case entities.IsRemoteKind(err, entities.RemoteUnreachable):
		return fmt.Errorf("zipquote API unreachable: %w", err)
	case entities.IsRemoteKind(err, entities.RemoteUnauthorized):
		return fmt.Errorf("session rejected by the API, sign in again: %w", err)
	}
	return err
}
