package workers

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/cosmic-brain/internal/logger"
	"github.com/MKhiriev/cosmic-brain/internal/service"
	"github.com/MKhiriev/cosmic-brain/models"
)

const defaultRefreshInterval = time.Minute

// Refresh is the result of one refresh round. Err joins the errors of the
// header and recent-notes requests; the fields of a failed request are left
// zero.
type Refresh struct {
	Header models.HeaderSnapshot
	Recent []models.Note
	Err    error
}

// RefreshWorker periodically fetches the header snapshot and the recent
// notes of the session and hands the result to publish.
type RefreshWorker struct {
	header   service.ClientHeaderService
	notes    service.ClientNoteService
	interval time.Duration
	publish  func(Refresh)
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewRefreshWorker creates an idle RefreshWorker. A non-positive interval
// falls back to one minute.
func NewRefreshWorker(services *service.ClientServices, interval time.Duration, publish func(Refresh), log *logger.Logger) *RefreshWorker {
	if interval <= 0 {
		interval = defaultRefreshInterval
	}
	return &RefreshWorker{
		header:   services.HeaderService,
		notes:    services.NoteService,
		interval: interval,
		publish:  publish,
		logger:   log,
	}
}

// Start stops a running job, refreshes once right away and then on every
// tick until ctx is cancelled or Stop is called.
func (w *RefreshWorker) Start(ctx context.Context) {
	w.Stop()

	w.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()
		t := time.NewTicker(w.interval)
		defer t.Stop()

		w.publishRefresh(jobCtx)
		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				w.publishRefresh(jobCtx)
			}
		}
	}()
}

func (w *RefreshWorker) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}

func (w *RefreshWorker) publishRefresh(ctx context.Context) {
	r := w.Refresh(ctx)
	if ctx.Err() != nil {
		return
	}
	if r.Err != nil {
		w.logger.Err(r.Err).Str("func", "*RefreshWorker.publishRefresh").Msg("refresh failed")
	}
	w.publish(r)
}

// Refresh performs a single refresh round.
func (w *RefreshWorker) Refresh(ctx context.Context) Refresh {
	var r Refresh

	header, headerErr := w.header.Header(ctx)
	if headerErr == nil {
		r.Header = header
	}
	recent, recentErr := w.notes.Recent(ctx)
	if recentErr == nil {
		r.Recent = recent
	}

	r.Err = errors.Join(headerErr, recentErr)
	return r
}
