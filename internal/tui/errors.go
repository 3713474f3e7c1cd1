// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/cosmic-brain/internal/service"
)

const (
	msgServerUnavailable = "No network connection or the server is unavailable"
	msgNoteNotFound      = "This note no longer exists"
	msgCollectionExists  = "A collection with this name already exists"
	msgNothingToSave     = "Nothing to save yet"
)

func humanizeServerUnavailableError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, service.ErrServerUnavailable):
		return msgServerUnavailable
	case errors.Is(err, service.ErrNoteNotFound):
		return msgNoteNotFound
	case errors.Is(err, service.ErrCollectionExists):
		return msgCollectionExists
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return msgServerUnavailable
	}

	return err.Error()
}
