// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-snippet-box/internal/adapter"
	"github.com/MKhiriev/go-snippet-box/internal/logger"
	"github.com/MKhiriev/go-snippet-box/internal/validators"
	"github.com/MKhiriev/go-snippet-box/models"
)

type clientAuthService struct {
	adapter   adapter.ServerAdapter
	validator validators.Validator
	logger    *logger.Logger
}

func NewClientAuthService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{
		adapter:   serverAdapter,
		validator: validators.NewCredentialsValidator(),
		logger:    logger,
	}
}

func (a *clientAuthService) Signup(ctx context.Context, creds models.Credentials, confirm string) error {
	if err := a.validator.Validate(ctx, creds); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	if creds.Password != confirm {
		return ErrPasswordsDoNotMatch
	}

	if err := a.adapter.Signup(ctx, creds); err != nil {
		a.logger.Err(err).Str("func", "*clientAuthService.Signup").Msg("signup failed")
		return mapAdapterError(err)
	}
	return nil
}

func (a *clientAuthService) Login(ctx context.Context, creds models.Credentials) (models.PublicUser, error) {
	if err := a.validator.Validate(ctx, creds, validators.FieldAccountIDPresence, validators.FieldPasswordPresence); err != nil {
		return models.PublicUser{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	if err := a.adapter.Login(ctx, creds); err != nil {
		a.logger.Err(err).Str("func", "*clientAuthService.Login").Msg("login failed")
		return models.PublicUser{}, mapLoginError(err)
	}

	user, err := a.adapter.Me(ctx)
	if err != nil {
		return models.PublicUser{}, mapAdapterError(err)
	}
	if user == nil {
		// the server accepted the credentials but did not recognise the session
		return models.PublicUser{}, ErrUnauthenticated
	}
	return *user, nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	return mapAdapterError(a.adapter.Logout(ctx))
}

func (a *clientAuthService) CurrentUser(ctx context.Context) (*models.PublicUser, error) {
	user, err := a.adapter.Me(ctx)
	if err != nil {
		return nil, mapAdapterError(err)
	}
	return user, nil
}
