// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-snippet-box/internal/client/state"
	"github.com/MKhiriev/go-snippet-box/internal/config"
	"github.com/MKhiriev/go-snippet-box/internal/logger"
	"github.com/MKhiriev/go-snippet-box/internal/service"
	"github.com/MKhiriev/go-snippet-box/models"
)

// TUI runs the terminal interface over the client services.
type TUI struct {
	services  *service.ClientServices
	store     *state.Store
	cfg       config.Client
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(
	services *service.ClientServices,
	store *state.Store,
	cfg config.Client,
	buildInfo models.AppBuildInfo,
	logger *logger.Logger,
) (*TUI, error) {
	if services == nil || store == nil {
		return nil, errors.New("tui: services and store are required")
	}
	return &TUI{
		services:  services,
		store:     store,
		cfg:       cfg,
		buildInfo: buildInfo,
		logger:    logger,
	}, nil
}

// Run blocks until the user quits or ctx is cancelled. Quitting with ctrl+c
// returns ErrUserQuit.
func (t *TUI) Run(ctx context.Context) error {
	// Debounced searches finish outside the Bubble Tea loop, so their
	// results are sent to the program once it exists.
	var program atomic.Pointer[tea.Program]
	list := service.NewListController(t.services.Lister, t.cfg, func(err error) {
		if p := program.Load(); p != nil {
			p.Send(listChangedMsg{err: err})
		}
	}, t.logger)
	defer list.Close()

	root := t.newRootModel(ctx, list)

	p := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx))
	program.Store(p)

	finalModel, err := p.Run()
	if err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("run tui: %w", err)
	}

	if result, ok := finalModel.(RootModel); ok && result.quitByUser {
		return ErrUserQuit
	}
	return nil
}

func (t *TUI) newRootModel(ctx context.Context, list Lister) RootModel {
	auth := t.services.AuthService
	snippets := t.services.SnippetService

	pages := map[string]tea.Model{
		pageList:   NewListModel(ctx, t.store, list, auth, snippets),
		pageDetail: NewDetailModel(ctx, t.store, snippets),
		pageEditor: NewEditorModel(ctx, t.store, snippets),
		pageLogin:  NewLoginModel(ctx, t.store, auth),
		pageSignup: NewSignupModel(ctx, auth),
	}

	return NewRootModel(ctx, t.store, auth, snippets, pages, pageList, t.buildInfo, t.logger)
}
