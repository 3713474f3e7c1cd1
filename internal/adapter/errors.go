// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

// Errors mapped from HTTP status codes of the cosmic-brain server.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
)

// Errors of the external providers.
var (
	// ErrProvider wraps every failure of the completion or moon-phase
	// provider: transport errors, non-2xx answers and malformed bodies.
	ErrProvider = errors.New("provider request failed")

	// ErrProviderNotConfigured is returned without any network call when the
	// provider has no API key or URL.
	ErrProviderNotConfigured = errors.New("provider is not configured")

	// ErrEmptyCompletion is returned when the provider answered without any
	// text content.
	ErrEmptyCompletion = errors.New("provider returned an empty completion")
)
