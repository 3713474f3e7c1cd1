package models

import "time"

// Note is a single captured free-text thought (a "brain dump").
//
// ID and CreatedAt are assigned by the persistence layer. Content and
// Category are fixed at capture time; only Processed may change afterwards.
type Note struct {
	// ID is the storage-assigned identifier.
	ID int64 `json:"id"`

	// Content is the trimmed, non-empty text typed by the user.
	Content string `json:"content"`

	// Category is assigned once by the categorizer when the note is captured.
	Category Category `json:"category"`

	// Processed is flipped only by an explicit user action.
	Processed bool `json:"processed"`

	// CreatedAt is the storage-assigned creation time.
	CreatedAt time.Time `json:"created_at"`
}

// CaptureRequest is the body of POST /api/notes.
type CaptureRequest struct {
	Content string `json:"content"`

	// OpenChat asks the server to seed a chat session for the new note with
	// a greeting from the assistant.
	OpenChat bool `json:"openChat,omitempty"`
}

// CaptureResponse is returned after a note was captured.
type CaptureResponse struct {
	Note    Note     `json:"note"`
	Actions []Action `json:"actions"`

	// Greeting is the first assistant message of the chat session opened for
	// the note, if one was requested.
	Greeting *ChatMessage `json:"greeting,omitempty"`
}

// ProcessedRequest is the body of PUT /api/notes/{id}/processed.
type ProcessedRequest struct {
	Processed bool `json:"processed"`
}
