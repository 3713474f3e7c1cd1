package service

import (
	"github.com/MKhiriev/cosmic-brain/internal/adapter"
)

type ClientServices struct {
	NoteService   ClientNoteService
	ChatService   ClientChatService
	HeaderService ClientHeaderService
}

func NewClientServices(serverAdapter adapter.ServerAdapter) *ClientServices {
	return &ClientServices{
		NoteService:   NewClientNoteService(serverAdapter),
		ChatService:   NewClientChatService(serverAdapter),
		HeaderService: NewClientHeaderService(serverAdapter),
	}
}
