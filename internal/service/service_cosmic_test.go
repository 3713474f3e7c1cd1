package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/cosmic-brain/internal/adapter"
	"github.com/MKhiriev/cosmic-brain/internal/brain"
	"github.com/MKhiriev/cosmic-brain/internal/logger"
	"github.com/MKhiriev/cosmic-brain/internal/mock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newTestCosmicSvc(moon adapter.MoonPhaseAdapter) *cosmicService {
	svc := NewCosmicService(moon, logger.Nop()).(*cosmicService)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func TestCosmicService_LocalWithoutProvider(t *testing.T) {
	svc := newTestCosmicSvc(nil)

	assert.Equal(t, brain.CosmicSnapshotAt(fixedNow), svc.Snapshot(context.Background()))
}

func TestCosmicService_ProviderPhase(t *testing.T) {
	ctrl := gomock.NewController(t)
	moon := mock.NewMockMoonPhaseAdapter(ctrl)
	moon.EXPECT().MoonPhase(gomock.Any(), fixedNow).Return("Waxing Gibbous", nil)

	got := newTestCosmicSvc(moon).Snapshot(context.Background())

	assert.Equal(t, "Waxing Gibbous", got.MoonPhase)
	assert.Equal(t, brain.ZodiacSign(fixedNow), got.CurrentSign)
}

func TestCosmicService_ProviderErrorFallsBack(t *testing.T) {
	for _, err := range []error{adapter.ErrProvider, adapter.ErrProviderNotConfigured} {
		t.Run(err.Error(), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			moon := mock.NewMockMoonPhaseAdapter(ctrl)
			moon.EXPECT().MoonPhase(gomock.Any(), gomock.Any()).Return("", err)

			got := newTestCosmicSvc(moon).Snapshot(context.Background())

			assert.Equal(t, brain.MoonPhaseForDate(fixedNow), got.MoonPhase)
		})
	}
}
