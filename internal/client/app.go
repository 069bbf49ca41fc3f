// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-snippet-box/internal/client/state"
	"github.com/MKhiriev/go-snippet-box/internal/logger"
	"github.com/MKhiriev/go-snippet-box/internal/tui"
)

type App struct {
	ui     UI
	store  *state.Store
	logger *logger.Logger
}

func NewApp(ui UI, store *state.Store, logger *logger.Logger) (*App, error) {
	if ui == nil {
		return nil, errors.New("client: ui is required")
	}
	if store == nil {
		return nil, errors.New("client: state store is required")
	}
	return &App{ui: ui, store: store, logger: logger}, nil
}

// Run blocks until the UI exits. Leaving with ctrl+c or a termination
// signal is a normal exit.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	unsubscribe := a.store.Subscribe(a.sessionLogger())
	defer unsubscribe()

	a.logger.Info().Msg("client started")

	err := a.ui.Run(ctx)
	switch {
	case err == nil, errors.Is(err, tui.ErrUserQuit):
		a.logger.Info().Msg("client stopped")
		return nil
	default:
		return fmt.Errorf("client ui: %w", err)
	}
}

// sessionLogger logs sign-ins and sign-outs as they reach the store.
func (a *App) sessionLogger() func(state.State) {
	current := a.store.State().User
	return func(s state.State) {
		switch {
		case current == nil && s.User != nil:
			a.logger.Info().Str("account_id", s.User.AccountID).Msg("signed in")
		case current != nil && s.User == nil:
			a.logger.Info().Str("account_id", current.AccountID).Msg("signed out")
		}
		current = s.User
	}
}
