// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

// NetAddress is a host:port pair usable as a flag.Value.
// An empty host means "all interfaces".
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses command-line flags shared by the server and client.
//
// Flags:
//
//	-a server listen address in format [host]:[port]
//	-d database DSN
//	-driver database driver (postgres, sqlite3)
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h")
//	-cookie-secure mark the session cookie Secure
//	-request-timeout request timeout (e.g., "15s")
//	-cors-origins comma separated allowed origins
//	-preview-cache preview bundle cache size
//	-log-level log level
//	-server server base URL used by the client
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet(programName(), flag.ContinueOnError)

	var (
		serverAddress  NetAddress
		databaseDSN    string
		databaseDriver string
		jsonConfigPath string
		tokenSignKey   string
		tokenIssuer    string
		tokenDuration  time.Duration
		cookieSecure   bool
		requestTimeout time.Duration
		corsOrigins    string
		previewCache   int
		logLevel       string
		serverURL      string
	)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&databaseDriver, "driver", "", "Database driver (postgres, sqlite3)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h)")
	fs.BoolVar(&cookieSecure, "cookie-secure", false, "Mark the session cookie Secure")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s)")
	fs.StringVar(&corsOrigins, "cors-origins", "", "Comma separated allowed CORS origins")
	fs.IntVar(&previewCache, "preview-cache", 0, "Preview bundle cache size")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&serverURL, "server", "", "Server base URL used by the client")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
			CookieSecure:  cookieSecure,
			LogLevel:      logLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN:    databaseDSN,
				Driver: databaseDriver,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
			AllowedOrigins: splitList(corsOrigins),
		},
		Preview: Preview{CacheSize: previewCache},
		Adapter: Adapter{
			HTTPAddress:    serverURL,
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

func programName() string {
	if len(os.Args) > 0 {
		return os.Args[0]
	}
	return "snippet-box"
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// String returns host:port, or "" when nothing was set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses host:port. The host may be empty, "localhost" or an IP.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
