// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrInvalidNoteID is returned for a {id} path segment that is not a
	// positive integer.
	ErrInvalidNoteID = errors.New("invalid note id")

	// ErrInvalidLimit is returned for a limit query parameter that is not a
	// positive integer.
	ErrInvalidLimit = errors.New("invalid limit")
)
