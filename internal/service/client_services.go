// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-snippet-box/internal/adapter"
	"github.com/MKhiriev/go-snippet-box/internal/logger"
)

type ClientServices struct {
	AuthService    ClientAuthService
	SnippetService ClientSnippetService

	// Lister feeds a ListController; the client builds the controller
	// itself because it owns the change callback.
	Lister SnippetLister
}

func NewClientServices(serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		AuthService:    NewClientAuthService(serverAdapter, logger),
		SnippetService: NewClientSnippetService(serverAdapter, logger),
		Lister:         serverAdapter,
	}
}
