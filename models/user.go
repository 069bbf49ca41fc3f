// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User is an account stored in the Credential Store.
// Users are created at signup and never updated or deleted afterwards.
type User struct {
	// AccountID is the unique, user-chosen account identifier.
	AccountID string `json:"accountId"`

	// SecretHash is the bcrypt hash of the account password.
	// It never leaves the server.
	SecretHash string `json:"-"`

	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Credentials is the signup/login request body.
type Credentials struct {
	AccountID string `json:"accountId"`
	Password  string `json:"password"`
}

// PublicUser is the part of a [User] that is safe to send to clients.
type PublicUser struct {
	AccountID string `json:"accountId"`
}

// MeResponse is returned by GET /auth/me. User is nil when there is no session.
type MeResponse struct {
	User *PublicUser `json:"user"`
}
