// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// AppBuildInfo carries build metadata injected by linker flags.
// Empty values are reported as "N/A".
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

// NewAppBuildInfo constructs [AppBuildInfo] from linker-provided values.
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		version: orNA(version),
		date:    orNA(date),
		commit:  orNA(commit),
	}
}

func (a AppBuildInfo) Version() string { return a.version }
func (a AppBuildInfo) Date() string    { return a.date }
func (a AppBuildInfo) Commit() string  { return a.commit }

// String renders the build info as printed on startup.
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("Build version: %s\nBuild date: %s\nBuild commit: %s", a.version, a.date, a.commit)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
