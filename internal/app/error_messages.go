// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// user-admin handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// rendered pages, flash banners or log entries to describe the outcome of an
// operation. Keeping them in one place ensures consistent wording.
package app

const (
	// MsgUserCreated is flashed after a successful creation. The verb
	// receives the email of the created user.
	MsgUserCreated = "User %s created successfully!"

	// MsgFailedToCreateUser is shown on the redisplayed form when the data
	// API rejects a registration. The verb receives the API message.
	MsgFailedToCreateUser = "Failed to create user: %s"

	// MsgInvalidDataProvided is returned when the submitted form body cannot
	// be parsed at all.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgUserNotFound is returned when a detail page is requested for a user
	// that does not exist.
	MsgUserNotFound = "user not found"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"
)
