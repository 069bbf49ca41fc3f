// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-snippet-box/internal/config"
	"github.com/MKhiriev/go-snippet-box/internal/logger"
	"github.com/MKhiriev/go-snippet-box/migrations"
)

// DB is a database/sql handle bound to one SQL dialect.
type DB struct {
	*sql.DB
	dialect            dialect
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// dialect captures the differences between the supported backends.
type dialect struct {
	// name is the goose dialect name.
	name        string
	placeholder sq.PlaceholderFormat
	// titleMatch is a case-insensitive LIKE predicate on the title with
	// one placeholder for the pattern.
	titleMatch string
	// foldPattern, when set, lowers the pattern to match a folded column.
	foldPattern func(string) string
}

var (
	postgresDialect = dialect{
		name:        migrations.DialectPostgres,
		placeholder: sq.Dollar,
		titleMatch:  "title ILIKE ? ESCAPE '\\'",
	}
	// sqlite's LIKE folds ASCII only, so both sides go through casefold.
	sqliteDialect = dialect{
		name:        migrations.DialectSQLite,
		placeholder: sq.Question,
		titleMatch:  sqliteCasefoldFunc + "(title) LIKE ? ESCAPE '\\'",
		foldPattern: strings.ToLower,
	}
)

// NewDB connects to the backend selected by cfg.Driver.
func NewDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	case config.DriverPostgres, "":
		return NewConnectPostgres(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
}

// Migrate applies the embedded migrations for the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect.name)
}

// builder returns a squirrel statement builder using the dialect's placeholders.
func (db *DB) builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(db.dialect.placeholder)
}

// classify maps a driver error to an [ErrorClassification].
func (db *DB) classify(err error) ErrorClassification {
	if db.errorClassificator == nil {
		return NonRetryable
	}
	return db.errorClassificator.Classify(err)
}
