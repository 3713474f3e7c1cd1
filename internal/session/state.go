package session

import (
	"cmp"
	"slices"
	"sync"

	"github.com/MKhiriev/cosmic-brain/models"
)

// RecentWindow is the number of notes kept in the recent window.
const RecentWindow = 10

// State is the state of a single session. All methods are safe for
// concurrent use and return copies, never internal slices.
type State struct {
	id string

	mu          sync.Mutex
	cycle       models.CycleState
	collections []models.Collection
	recent      []models.Note
	chats       map[string][]models.ChatMessage

	// recentLoaded is set once the window was merged with stored notes.
	recentLoaded bool

	// chatMu serializes chat turns of the session.
	chatMu sync.Mutex
}

// NewState returns a State with the given cycle and registry.
func NewState(id string, cycle models.CycleState, collections []models.Collection) *State {
	return &State{
		id:          id,
		cycle:       cycle,
		collections: slices.Clone(collections),
		chats:       make(map[string][]models.ChatMessage),
	}
}

// ID returns the session identifier.
func (s *State) ID() string {
	return s.id
}

func (s *State) Cycle() models.CycleState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cycle
}

func (s *State) SetCycle(cycle models.CycleState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cycle = cycle
}

func (s *State) Collections() []models.Collection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.collections)
}

// AddCollection appends c to the registry and returns the resulting
// registry.
func (s *State) AddCollection(c models.Collection) []models.Collection {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.collections = append(s.collections, c)
	return slices.Clone(s.collections)
}

// PushRecent puts note at the front of the recent window, evicting the
// oldest entry once the window is full.
func (s *State) PushRecent(note models.Note) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.recent = slices.Insert(s.recent, 0, note)
	if len(s.recent) > RecentWindow {
		s.recent = s.recent[:RecentWindow]
	}
}

// Recent returns the recent window, most recent first.
func (s *State) Recent() []models.Note {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.recent)
}

// RecentLoaded reports whether MergeRecent has run.
func (s *State) RecentLoaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.recentLoaded
}

// MergeRecent combines stored notes with the notes already in the window,
// keeping the newest RecentWindow of them. Notes already in the window win
// over stored copies with the same ID.
func (s *State) MergeRecent(stored []models.Note) {
	s.mu.Lock()
	defer s.mu.Unlock()

	merged := slices.Clone(s.recent)
	for _, note := range stored {
		if !slices.ContainsFunc(merged, func(n models.Note) bool { return n.ID == note.ID }) {
			merged = append(merged, note)
		}
	}
	slices.SortStableFunc(merged, func(a, b models.Note) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})
	if len(merged) > RecentWindow {
		merged = merged[:RecentWindow]
	}

	s.recent = merged
	s.recentLoaded = true
}

// MarkRecentProcessed updates the processed flag of a note in the window.
func (s *State) MarkRecentProcessed(id int64, processed bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.recent {
		if s.recent[i].ID == id {
			s.recent[i].Processed = processed
		}
	}
}

// RemoveRecent drops the note from the window.
func (s *State) RemoveRecent(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.recent = slices.DeleteFunc(s.recent, func(n models.Note) bool { return n.ID == id })
}

// History returns the chat history stored under key, oldest first.
func (s *State) History(key string) []models.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.chats[key])
}

// Append adds messages to the chat under key.
func (s *State) Append(key string, messages ...models.ChatMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chats[key] = append(s.chats[key], messages...)
}

// Seed sets the chat under key to history when the chat is still empty and
// reports whether it did so.
func (s *State) Seed(key string, history []models.ChatMessage) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.chats[key]) > 0 || len(history) == 0 {
		return false
	}
	s.chats[key] = slices.Clone(history)
	return true
}

// ResetChat forgets the chat under key.
func (s *State) ResetChat(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.chats, key)
}

// LockChat blocks until no other chat turn of the session is running. The
// returned function releases the lock.
func (s *State) LockChat() (unlock func()) {
	s.chatMu.Lock()
	return s.chatMu.Unlock
}
