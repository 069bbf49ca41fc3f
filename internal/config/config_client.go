// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
)

// ClientConfig is the terminal client's view of [StructuredConfig].
type ClientConfig struct {
	Adapter  Adapter
	Client   Client
	LogLevel string
}

// GetClientConfig loads the shared configuration, keeps the fields the
// client uses and validates them. Server-only settings are not required.
func GetClientConfig() (*ClientConfig, error) {
	return getClientConfig(os.Args[1:])
}

func getClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := loadStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter:  cfg.Adapter,
		Client:   cfg.Client,
		LogLevel: cfg.App.LogLevel,
	}

	return clientCfg, clientCfg.validate()
}
