// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided   = errors.New("invalid data provided")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// ErrEmptyContent is returned when a note or message is blank after
	// trimming. Capturing blank text is a no-op, not a failure.
	ErrEmptyContent = errors.New("content is empty")

	ErrEmptyCollectionName = errors.New("collection name is empty")
	ErrInvalidCyclePhase   = errors.New("invalid cycle phase")
	ErrUnknownAction       = errors.New("unknown action type")

	ErrBuildingPrompt = errors.New("error building prompt")
)

// Client-side errors.
var (
	ErrServerUnavailable = errors.New("server is unavailable")
	ErrNoteNotFound      = errors.New("note not found")
	ErrCollectionExists  = errors.New("collection already exists")
)
