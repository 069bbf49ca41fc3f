// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-snippet-box/internal/config"
	"github.com/MKhiriev/go-snippet-box/internal/logger"
	"github.com/MKhiriev/go-snippet-box/internal/store"
	"github.com/MKhiriev/go-snippet-box/internal/utils"
	"github.com/MKhiriev/go-snippet-box/internal/validators"
	"github.com/MKhiriev/go-snippet-box/models"
)

// authService implements AuthService on top of a UserRepository.
// Secrets are stored as bcrypt hashes; sessions are stateless HS256 JWTs.
type authService struct {
	userRepository store.UserRepository
	validator      validators.Validator

	tokenSignKey  string
	tokenIssuer   string
	tokenDuration time.Duration

	// hashCost is the bcrypt work factor.
	hashCost int

	logger *logger.Logger
}

// NewAuthService constructs an AuthService with the token parameters from cfg.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		validator:      validators.NewCredentialsValidator(),
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		hashCost:       bcrypt.DefaultCost,
		logger:         logger,
	}
}

// NormalizeCredentials trims the account id. The password is kept as typed.
func NormalizeCredentials(creds models.Credentials) models.Credentials {
	creds.AccountID = strings.TrimSpace(creds.AccountID)
	return creds
}

// Register validates creds, hashes the password and creates the account.
func (a *authService) Register(ctx context.Context, creds models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)
	creds = NormalizeCredentials(creds)

	if err := a.validator.Validate(ctx, creds); err != nil {
		log.Debug().Err(err).Str("accountId", creds.AccountID).Msg("signup rejected")
		return models.User{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), a.hashCost)
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Msg("error hashing password")
		return models.User{}, fmt.Errorf("error hashing password: %w", err)
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		AccountID:  creds.AccountID,
		SecretHash: string(hash),
		CreatedAt:  time.Now().UTC(),
	})
	if err != nil {
		if !errors.Is(err, store.ErrAccountAlreadyExists) {
			log.Err(err).Str("accountId", creds.AccountID).Msg("user creation ended with error")
		}
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return user, nil
}

// VerifyCredential looks the account up and compares the secret with its
// stored hash. An unknown account and a wrong password are both reported
// as ErrWrongCredentials.
func (a *authService) VerifyCredential(ctx context.Context, creds models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)
	creds = NormalizeCredentials(creds)

	if err := a.validator.Validate(ctx, creds, validators.FieldAccountIDPresence, validators.FieldPasswordPresence); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	user, err := a.userRepository.FindUserByAccountID(ctx, creds.AccountID)
	switch {
	case errors.Is(err, store.ErrNoUserWasFound):
		return models.User{}, ErrWrongCredentials
	case err != nil:
		log.Err(err).Str("accountId", creds.AccountID).Msg("user search by account id failed")
		return models.User{}, fmt.Errorf("user search by account id failed: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.SecretHash), []byte(creds.Password)); err != nil {
		log.Debug().Str("accountId", creds.AccountID).Msg("wrong password")
		return models.User{}, ErrWrongCredentials
	}

	return user, nil
}

func (a *authService) IssueSession(ctx context.Context, accountID string) (models.Token, error) {
	if accountID == "" {
		return models.Token{}, ErrInvalidDataProvided
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, accountID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

func (a *authService) ResolveCaller(ctx context.Context, tokenString string) (string, bool) {
	if tokenString == "" {
		return "", false
	}

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("session token rejected")
		return "", false
	}

	accountID, err := token.GetAccountID()
	if err != nil {
		return "", false
	}

	return accountID, true
}
