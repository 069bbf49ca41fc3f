// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-snippet-box/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo, serverVersion string) string {
	var b strings.Builder

	b.WriteString("Application: snippet box\n")
	b.WriteString("Version: ")
	b.WriteString(valueOrNA(info.Version()))
	b.WriteString("\n")
	b.WriteString("Date: ")
	b.WriteString(valueOrNA(info.Date()))
	b.WriteString("\n")
	b.WriteString("Commit: ")
	b.WriteString(valueOrNA(info.Commit()))
	b.WriteString("\n")
	b.WriteString("Server version: ")
	b.WriteString(valueOrNA(serverVersion))

	return renderPage("ABOUT", overlayBoxStyle.Render(b.String()), "esc: back")
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" || v == "N/A" {
		return "N/A"
	}
	return v
}
