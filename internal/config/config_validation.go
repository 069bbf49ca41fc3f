// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// validate checks the settings the server needs at startup.
func (cfg *StructuredConfig) validate() error {
	if err := validation.ValidateStruct(&cfg.App,
		validation.Field(&cfg.App.TokenSignKey, validation.Required),
		validation.Field(&cfg.App.TokenIssuer, validation.Required),
		validation.Field(&cfg.App.TokenDuration, validation.Required, validation.Min(1)),
	); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
	}

	if err := validation.ValidateStruct(&cfg.Storage.DB,
		validation.Field(&cfg.Storage.DB.DSN, validation.Required),
		validation.Field(&cfg.Storage.DB.Driver, validation.Required, validation.In(DriverPostgres, DriverSQLite)),
	); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidStorageConfigs, err)
	}

	if err := validation.ValidateStruct(&cfg.Server,
		validation.Field(&cfg.Server.HTTPAddress, validation.Required),
		validation.Field(&cfg.Server.RequestTimeout, validation.Required, validation.Min(1)),
		validation.Field(&cfg.Server.AllowedOrigins, validation.Each(is.URL)),
	); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidServerConfigs, err)
	}

	if err := validation.ValidateStruct(&cfg.Preview,
		validation.Field(&cfg.Preview.CacheSize, validation.Required, validation.Min(1)),
	); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPreviewConfigs, err)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if err := validation.ValidateStruct(&cfg.Adapter,
		validation.Field(&cfg.Adapter.HTTPAddress, validation.Required, is.URL),
		validation.Field(&cfg.Adapter.RequestTimeout, validation.Required, validation.Min(1)),
	); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAdapterConfigs, err)
	}

	if err := validation.ValidateStruct(&cfg.Client,
		validation.Field(&cfg.Client.SearchDebounce, validation.Required, validation.Min(1)),
		validation.Field(&cfg.Client.PageSize, validation.Required, validation.Min(1), validation.Max(50)),
	); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidClientConfigs, err)
	}

	return nil
}
