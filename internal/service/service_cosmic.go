package service

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/cosmic-brain/internal/adapter"
	"github.com/MKhiriev/cosmic-brain/internal/brain"
	"github.com/MKhiriev/cosmic-brain/internal/logger"
	"github.com/MKhiriev/cosmic-brain/models"
)

type cosmicService struct {
	moon adapter.MoonPhaseAdapter
	now  func() time.Time

	logger *logger.Logger
}

// NewCosmicService builds a CosmicService. With a nil moon adapter the
// snapshot is always calculated locally.
func NewCosmicService(moon adapter.MoonPhaseAdapter, logger *logger.Logger) CosmicService {
	return &cosmicService{moon: moon, now: time.Now, logger: logger}
}

// Snapshot asks the moon-phase provider for the current phase and falls back
// to the local calendar approximation on any error.
func (s *cosmicService) Snapshot(ctx context.Context) models.CosmicSnapshot {
	now := s.now()
	snapshot := brain.CosmicSnapshotAt(now)
	if s.moon == nil {
		return snapshot
	}

	phase, err := s.moon.MoonPhase(ctx, now)
	if err != nil {
		if !errors.Is(err, adapter.ErrProviderNotConfigured) {
			s.logger.Warn().Err(err).Str("func", "*cosmicService.Snapshot").Msg("moon phase provider failed, using local calculation")
		}
		return snapshot
	}

	snapshot.MoonPhase = phase
	return snapshot
}
