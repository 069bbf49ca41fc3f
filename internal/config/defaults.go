// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Built-in defaults, applied to fields no other source has set.
const (
	DefaultHTTPAddress     = ":8080"
	DefaultDriver          = DriverPostgres
	DefaultTokenIssuer     = "snippet-box"
	DefaultTokenDuration   = time.Hour
	DefaultLogLevel        = "info"
	DefaultRequestTimeout  = 15 * time.Second
	DefaultShutdownTimeout = 10 * time.Second
	DefaultPreviewCache    = 256
	DefaultServerURL       = "http://localhost:8080"
	DefaultAdapterTimeout  = 10 * time.Second
	DefaultSearchDebounce  = 300 * time.Millisecond
	DefaultClientPageSize  = 12
)

// Supported database drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite3"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: DefaultTokenDuration,
			LogLevel:      DefaultLogLevel,
		},
		Storage: Storage{
			DB: DB{Driver: DefaultDriver},
		},
		Server: Server{
			HTTPAddress:     DefaultHTTPAddress,
			RequestTimeout:  DefaultRequestTimeout,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
		Preview: Preview{CacheSize: DefaultPreviewCache},
		Adapter: Adapter{
			HTTPAddress:    DefaultServerURL,
			RequestTimeout: DefaultAdapterTimeout,
		},
		Client: Client{
			SearchDebounce: DefaultSearchDebounce,
			PageSize:       DefaultClientPageSize,
		},
	}
}
