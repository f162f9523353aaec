// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrNoUserInContext is reported when a protected handler runs without
	// the user id the auth middleware stores in the request context.
	ErrNoUserInContext = errors.New("no authenticated user in request context")
)

// Messages returned to API clients.
const (
	msgInternalServerError = "Internal Server Error."
	msgInvalidJSON         = "Invalid JSON was passed"
	msgRouteNotFound       = "Route not found."
	msgRequestTimeout      = "Request timed out."
	msgUserAlreadyExists   = "User already exists."
	msgUserDoesNotExist    = "User does not exist."
	msgNoteDoesNotExist    = "Note does not exist."
	msgInvalidCredentials  = "Invalid credentials"

	msgRegistrationSuccessful = "Registration Successful"
	msgLoginSuccessful        = "Login Successful"
	msgLoggedOut              = "Logged out successfully."
	msgUserFound              = "User found."
	msgNoteAdded              = "Note added successfully"
	msgNoteUpdated            = "Note updated successfully."
	msgAllNotesRetrieved      = "All notes retrieved successfully."
	msgNoteDeleted            = "Note deleted successfully."
	msgNotePinned             = "Note is Pinned."
	msgSearchRetrieved        = "Notes matching the search query retrieved successfully."
)
