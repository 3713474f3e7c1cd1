// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/cosmic-brain/internal/brain"
	"github.com/MKhiriev/cosmic-brain/internal/logger"
	"github.com/MKhiriev/cosmic-brain/internal/utils"
	"github.com/MKhiriev/cosmic-brain/models"
)

// DefaultSessionLimit is the number of sessions a Manager keeps in memory.
const DefaultSessionLimit = 1024

// Manager hands out the [State] of every session. States are loaded from
// the [StateStore] on first use. Past the session limit the least recently
// used state is dropped; its cycle and registry are reloaded from the store
// on the next request while its chat histories are lost.
type Manager struct {
	store  StateStore
	logger *logger.Logger
	now    func() time.Time
	limit  int

	mu     sync.Mutex
	states map[string]*managedState
}

type managedState struct {
	state    *State
	lastUsed time.Time
}

// NewManager creates a Manager. store may be nil, in which case every
// session starts from defaults and nothing is persisted.
func NewManager(store StateStore, log *logger.Logger) *Manager {
	return &Manager{
		store:  store,
		logger: log,
		now:    time.Now,
		limit:  DefaultSessionLimit,
		states: make(map[string]*managedState),
	}
}

// Store returns the state store of the manager, possibly nil.
func (m *Manager) Store() StateStore {
	return m.store
}

// Get returns the State of sessionID, creating it on first use. An empty id
// selects the default session. Failures of the store are logged and the
// session starts from defaults.
func (m *Manager) Get(ctx context.Context, sessionID string) *State {
	if sessionID == "" {
		sessionID = utils.DefaultSessionID
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	if entry, ok := m.states[sessionID]; ok {
		entry.lastUsed = now
		return entry.state
	}

	if len(m.states) >= m.limit {
		m.evictOldest()
	}

	st := NewState(sessionID, m.loadCycle(ctx, sessionID), m.loadCollections(ctx, sessionID))
	m.states[sessionID] = &managedState{state: st, lastUsed: now}

	m.logger.Debug().Str("func", "*Manager.Get").Str("session_id", sessionID).Msg("session state created")
	return st
}

// Len returns the number of sessions held in memory.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.states)
}

func (m *Manager) evictOldest() {
	var oldestID string
	var oldest time.Time
	for id, entry := range m.states {
		if oldestID == "" || entry.lastUsed.Before(oldest) {
			oldestID, oldest = id, entry.lastUsed
		}
	}
	delete(m.states, oldestID)

	m.logger.Debug().Str("func", "*Manager.evictOldest").Str("session_id", oldestID).Msg("session state evicted")
}

// DefaultCycle is the cycle state of a session that never set one.
func DefaultCycle(now time.Time) models.CycleState {
	return models.CycleState{
		Day:       brain.DefaultCycleDay,
		Phase:     brain.CyclePhaseForDay(brain.DefaultCycleDay),
		UpdatedAt: now,
	}
}

func (m *Manager) loadCycle(ctx context.Context, sessionID string) models.CycleState {
	if m.store == nil {
		return DefaultCycle(m.now())
	}

	cycle, found, err := m.store.LoadCycle(ctx, sessionID)
	if err != nil {
		m.logger.Err(err).Str("func", "*Manager.loadCycle").Str("session_id", sessionID).Msg("error loading cycle state, using defaults")
		return DefaultCycle(m.now())
	}
	if !found {
		return DefaultCycle(m.now())
	}

	return cycle
}

func (m *Manager) loadCollections(ctx context.Context, sessionID string) []models.Collection {
	if m.store == nil {
		return nil
	}

	collections, err := m.store.LoadCollections(ctx, sessionID)
	if err != nil {
		m.logger.Err(err).Str("func", "*Manager.loadCollections").Str("session_id", sessionID).Msg("error loading collections, starting empty")
		return nil
	}

	return collections
}
