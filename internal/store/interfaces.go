// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/cosmic-brain/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// NoteRepository persists captured notes.
type NoteRepository interface {
	// Insert stores a note and returns it with the storage-assigned ID and
	// CreatedAt.
	Insert(ctx context.Context, note models.Note) (models.Note, error)
	// Get returns the note with id or ErrNoteNotFound.
	Get(ctx context.Context, id int64) (models.Note, error)
	// List returns the notes matching filter, newest first.
	List(ctx context.Context, filter models.NoteFilter) ([]models.Note, error)
	// Count returns the number of notes matching filter. Limit is ignored.
	Count(ctx context.Context, filter models.NoteFilter) (int, error)
	// CountByCategory groups the notes matching filter by category, largest
	// group first.
	CountByCategory(ctx context.Context, filter models.NoteFilter) ([]models.CategoryCount, error)
	SetProcessed(ctx context.Context, id int64, processed bool) error
	Delete(ctx context.Context, id int64) error
}

// RemoteStateRepository is the best-effort remote copy of session state.
type RemoteStateRepository interface {
	SaveCycle(ctx context.Context, sessionID string, cycle models.CycleState) error
	SaveCollection(ctx context.Context, sessionID string, collection models.Collection) error
}
