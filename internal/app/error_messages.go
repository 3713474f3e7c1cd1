// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// cosmic-brain server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies to describe the outcome of an operation. Keeping them
// in one place keeps the wording consistent throughout the API.
package app

const (
	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgRetry is shown when a change could not be persisted. The client
	// keeps its input so the user can try again.
	MsgRetry = "Something went wrong while saving. Please try again."

	// MsgUnknownCategory is returned for a category filter outside the
	// fixed category list.
	MsgUnknownCategory = "unknown category"

	// MsgSessionIDTooLong is returned for an X-Session-ID header longer than
	// the server accepts.
	MsgSessionIDTooLong = "session id is too long"

	// MsgNotFound answers unknown routes and unsupported methods.
	MsgNotFound = "not found"
)
