// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Domain errors returned by repositories. Match with [errors.Is].
var (
	// ErrAccountAlreadyExists is returned when signup hits an existing account id.
	ErrAccountAlreadyExists = errors.New("account already exists")

	// ErrNoUserWasFound is returned when no account matches the id.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrSnippetNotFound is returned when no snippet matches the lookup
	// predicate. For owned updates and deletes this covers both
	// "absent" and "owned by someone else".
	ErrSnippetNotFound = errors.New("snippet was not found")

	// ErrUnsupportedDriver is returned by [NewDB] for an unknown driver.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// Low-level database operation errors.
var (
	ErrBuildingSQLQuery   = errors.New("error building sql query")
	ErrExecutingQuery     = errors.New("error executing sql query")
	ErrExecutingStatement = errors.New("failed to execute statement")
	ErrScanningRow        = errors.New("failed to scan row")
	ErrScanningRows       = errors.New("failed to scan rows")
)
