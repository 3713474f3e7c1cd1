package models

import (
	"strconv"
	"time"
)

// ChatRole identifies the author of a chat message.
type ChatRole string

const (
	RoleUser      ChatRole = "user"
	RoleAssistant ChatRole = "assistant"
)

// GeneralChatKey is the session key of ad-hoc chats not tied to a note.
const GeneralChatKey = "general"

// ChatMessage is one entry of an in-memory chat session.
// Actions is populated only on assistant messages.
type ChatMessage struct {
	Role      ChatRole  `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
	Actions   []Action  `json:"actions,omitempty"`
}

// UserContext is the snapshot of cosmic, cycle and recent-note data given to
// the completion provider alongside a chat turn.
type UserContext struct {
	Cosmic      *CosmicSnapshot `json:"cosmicData,omitempty"`
	Cycle       *CycleState     `json:"cycleData,omitempty"`
	RecentNotes []Note          `json:"recentNotes,omitempty"`
}

// ChatRequest is the body of POST /api/chat.
type ChatRequest struct {
	Message string `json:"message"`

	// ChatType is a free label of the chat ("general", "goals", ...). It is
	// used as the session key when NoteID is not set.
	ChatType string `json:"chatType,omitempty"`

	// NoteID ties the chat to a captured note.
	NoteID *int64 `json:"noteId,omitempty"`

	// ChatHistory seeds the server-side session when it is still empty.
	ChatHistory []ChatMessage `json:"chatHistory,omitempty"`

	// UserContext overrides the server-computed context when present.
	UserContext *UserContext `json:"userContext,omitempty"`
}

// ChatKey returns the session key the request belongs to.
func (r ChatRequest) ChatKey() string {
	if r.NoteID != nil {
		return NoteChatKey(*r.NoteID)
	}
	if r.ChatType != "" {
		return r.ChatType
	}
	return GeneralChatKey
}

// NoteChatKey returns the chat session key of the note with the given id.
func NoteChatKey(noteID int64) string {
	return strconv.FormatInt(noteID, 10)
}

// ChatResponse is returned by POST /api/chat.
type ChatResponse struct {
	Response  string    `json:"response"`
	Actions   []Action  `json:"actions"`
	Timestamp time.Time `json:"timestamp"`
}

// ProcessDumpRequest is the body of POST /api/process-dump.
type ProcessDumpRequest struct {
	Content     string       `json:"content"`
	Category    Category     `json:"category"`
	UserContext *UserContext `json:"userContext,omitempty"`
}

// ProcessDumpResponse carries either a provider reply with suggestions or,
// when the provider failed, a message with a category fallback text.
type ProcessDumpResponse struct {
	Response    string   `json:"response,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`

	Message  string `json:"message,omitempty"`
	Fallback string `json:"fallback,omitempty"`
}
