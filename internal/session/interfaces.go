// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"context"

	"github.com/MKhiriev/cosmic-brain/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/session_store_mock.go -package=mock

// StateStore persists the durable part of a [State]. A missing key is not an
// error: LoadCycle reports found == false and LoadCollections returns an
// empty slice.
type StateStore interface {
	LoadCycle(ctx context.Context, sessionID string) (cycle models.CycleState, found bool, err error)
	SaveCycle(ctx context.Context, sessionID string, cycle models.CycleState) error
	LoadCollections(ctx context.Context, sessionID string) ([]models.Collection, error)
	SaveCollections(ctx context.Context, sessionID string, collections []models.Collection) error
}
