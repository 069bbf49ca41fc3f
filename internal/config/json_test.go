// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestParseJSON_Success(t *testing.T) {
	p := writeFile(t, `{
		"app": {
			"token_sign_key": "jwt_secret",
			"token_issuer": "test_issuer",
			"token_duration": "1h",
			"cookie_secure": true
		},
		"storage": { "db": { "dsn": "file:snippets.db", "driver": "sqlite3" } },
		"server": {
			"http_address": "localhost:8080",
			"request_timeout": "30s",
			"allowed_origins": ["http://localhost:3000"]
		},
		"preview": { "cache_size": 10 },
		"adapter": { "http_address": "http://localhost:8080", "request_timeout": 1000000000 },
		"client": { "search_debounce": "300ms", "page_size": 12 }
	}`)

	cfg, err := parseJSON(p)
	require.NoError(t, err)

	assert.Equal(t, "jwt_secret", cfg.App.TokenSignKey)
	assert.Equal(t, "test_issuer", cfg.App.TokenIssuer)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
	assert.True(t, cfg.App.CookieSecure)
	assert.Equal(t, "file:snippets.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "sqlite3", cfg.Storage.DB.Driver)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, 10, cfg.Preview.CacheSize)
	assert.Equal(t, time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 300*time.Millisecond, cfg.Client.SearchDebounce)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	_, err := parseJSON(writeFile(t, "{not valid json"))
	assert.Error(t, err)
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	_, err := parseJSON(writeFile(t, `{"app": {"token_duration": "soon"}}`))
	assert.Error(t, err)

	_, err = parseJSON(writeFile(t, `{"app": {"token_duration": true}}`))
	assert.Error(t, err)
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := Duration(90 * time.Second).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(b))
}
