// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-snippet-box/internal/config"
	"github.com/MKhiriev/go-snippet-box/internal/logger"
)

type mockPinger struct {
	err error
}

func (m *mockPinger) PingContext(context.Context) error { return m.err }

// ─────────────────────────────────────────────
// NewAppInfoService
// ─────────────────────────────────────────────

func TestNewAppInfoService_EmptyVersion_ReturnsError(t *testing.T) {
	svc, err := NewAppInfoService(config.App{}, &mockPinger{}, logger.Nop())

	assert.Nil(t, svc)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrVersionIsNotSpecified))
}

func TestGetAppVersion_ReturnsConfiguredVersion(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "3.1.4"}, &mockPinger{}, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, "3.1.4", svc.GetAppVersion(context.Background()))
}

// ─────────────────────────────────────────────
// Ping
// ─────────────────────────────────────────────

func TestPing(t *testing.T) {
	dbDown := errors.New("connection refused")

	tests := []struct {
		name    string
		pinger  *mockPinger
		wantErr error
	}{
		{name: "reachable", pinger: &mockPinger{}},
		{name: "unreachable", pinger: &mockPinger{err: dbDown}, wantErr: dbDown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := NewAppInfoService(config.App{Version: "1.0.0"}, tt.pinger, logger.Nop())
			require.NoError(t, err)

			err = svc.Ping(context.Background())
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
