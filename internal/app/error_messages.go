// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing message strings shared by the server
// handlers and the terminal client.
//
// The server writes them as {"message": ...} bodies and the client matches
// on them to pick a business error, so both sides must agree on the wording.
package app

const (
	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "invalid JSON was passed"

	// MsgInvalidDataProvided is returned when required fields are missing or
	// out of bounds and no field detail is available.
	MsgInvalidDataProvided = "invalid data provided"

	MsgInvalidCredentials = "invalid account id or password"

	MsgAccountAlreadyExists = "account already exists"

	// MsgAuthenticationRequired is returned on any route that needs a
	// session when the request carries none or an invalid one.
	MsgAuthenticationRequired = "authentication required"

	MsgSnippetNotFound = "snippet not found"

	MsgInternalServerError = "internal server error"

	MsgServiceUnavailable = "service unavailable"

	MsgSignedUp  = "account created"
	MsgLoggedIn  = "logged in"
	MsgLoggedOut = "logged out"
	MsgDeleted   = "snippet deleted"
)
