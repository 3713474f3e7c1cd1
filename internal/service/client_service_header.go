package service

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/cosmic-brain/internal/adapter"
	"github.com/MKhiriev/cosmic-brain/models"
)

type clientHeaderService struct {
	serverAdapter adapter.ServerAdapter
	now           func() time.Time
}

func NewClientHeaderService(serverAdapter adapter.ServerAdapter) ClientHeaderService {
	return &clientHeaderService{serverAdapter: serverAdapter, now: time.Now}
}

func (s *clientHeaderService) Header(ctx context.Context) (models.HeaderSnapshot, error) {
	var snapshot models.HeaderSnapshot

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		cosmic, err := s.serverAdapter.Cosmic(gctx)
		snapshot.Cosmic = cosmic
		return err
	})
	g.Go(func() error {
		cycle, err := s.serverAdapter.Cycle(gctx)
		snapshot.Cycle = cycle
		return err
	})
	g.Go(func() error {
		collections, err := s.serverAdapter.Collections(gctx)
		snapshot.Collections = collections
		return err
	})

	if err := g.Wait(); err != nil {
		return models.HeaderSnapshot{}, mapAdapterError(err)
	}

	snapshot.FetchedAt = s.now()
	return snapshot, nil
}

func (s *clientHeaderService) SetCycleDay(ctx context.Context, day int) (models.CycleState, error) {
	cycle, err := s.serverAdapter.UpdateCycle(ctx, models.CycleUpdateRequest{CycleDay: day})
	return cycle, mapAdapterError(err)
}

func (s *clientHeaderService) CreateCollection(ctx context.Context, name, template string) (models.CollectionCreateResponse, error) {
	resp, err := s.serverAdapter.CreateCollection(ctx, models.CollectionCreateRequest{Name: name, Template: template})
	return resp, mapAdapterError(err)
}

func (s *clientHeaderService) Version(ctx context.Context) (string, error) {
	version, err := s.serverAdapter.Version(ctx)
	return version, mapAdapterError(err)
}
