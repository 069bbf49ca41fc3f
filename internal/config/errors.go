// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors, each wrapping the ozzo-validation field errors.
var (
	ErrInvalidAppConfigs     = errors.New("invalid app configuration")
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	ErrInvalidServerConfigs  = errors.New("invalid server configuration")
	ErrInvalidPreviewConfigs = errors.New("invalid preview configuration")
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	ErrInvalidClientConfigs  = errors.New("invalid client configuration")
)
