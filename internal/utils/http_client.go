// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"net/http/cookiejar"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient embeds *resty.Client.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a resty client bound to baseURL with its own cookie
// jar, so a session cookie set by the server is replayed automatically.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json")

	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	if jar, err := cookiejar.New(nil); err == nil {
		client.SetCookieJar(jar)
	}

	return &HTTPClient{Client: client}
}
