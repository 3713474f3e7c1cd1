package tui

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/cosmic-brain/internal/adapter"
	"github.com/MKhiriev/cosmic-brain/models"
)

func (m appModel) cmdCapture(content string, openChat bool) tea.Cmd {
	ctx := m.ctx
	svc := m.services.NoteService
	return func() tea.Msg {
		resp, err := svc.Capture(ctx, content, openChat)
		return noteCapturedMsg{resp: resp, openChat: openChat, err: err}
	}
}

func (m appModel) cmdLoadRecent() tea.Cmd {
	ctx := m.ctx
	svc := m.services.NoteService
	return func() tea.Msg {
		items, err := svc.Recent(ctx)
		return recentLoadedMsg{items: items, err: err}
	}
}

func (m appModel) cmdSearch(query adapter.NotesQuery) tea.Cmd {
	ctx := m.ctx
	svc := m.services.NoteService
	return func() tea.Msg {
		notes, err := svc.Search(ctx, query)
		return notesFoundMsg{query: query, notes: notes, err: err}
	}
}

func (m appModel) cmdSetProcessed(id int64, processed bool) tea.Cmd {
	ctx := m.ctx
	svc := m.services.NoteService
	return func() tea.Msg {
		return noteChangedMsg{err: svc.SetProcessed(ctx, id, processed)}
	}
}

func (m appModel) cmdDeleteNote(id int64) tea.Cmd {
	ctx := m.ctx
	svc := m.services.NoteService
	return func() tea.Msg {
		return noteChangedMsg{err: svc.Delete(ctx, id)}
	}
}

func (m appModel) cmdLoadDashboard(timeframe models.Timeframe) tea.Cmd {
	ctx := m.ctx
	svc := m.services.NoteService
	return func() tea.Msg {
		stats, err := svc.Dashboard(ctx, timeframe)
		return dashboardLoadedMsg{timeframe: timeframe, stats: stats, err: err}
	}
}

func (m appModel) cmdSendChat(chatKey string, noteID *int64, message string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.ChatService
	return func() tea.Msg {
		resp, err := svc.Send(ctx, chatKey, noteID, message)
		return chatReplyMsg{key: chatKey, resp: resp, err: err}
	}
}

func (m appModel) cmdLoadHistory(chatKey string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.ChatService
	return func() tea.Msg {
		messages, err := svc.History(ctx, chatKey)
		return chatHistoryLoadedMsg{key: chatKey, messages: messages, err: err}
	}
}

func (m appModel) cmdResetChat(chatKey string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.ChatService
	return func() tea.Msg {
		return chatResetMsg{key: chatKey, err: svc.Reset(ctx, chatKey)}
	}
}

func (m appModel) cmdReflect(note models.Note) tea.Cmd {
	ctx := m.ctx
	svc := m.services.ChatService
	return func() tea.Msg {
		text, suggestions, err := svc.Reflect(ctx, note)
		return reflectDoneMsg{note: note, text: text, suggestions: suggestions, err: err}
	}
}

func (m appModel) cmdLoadHeader() tea.Cmd {
	ctx := m.ctx
	svc := m.services.HeaderService
	return func() tea.Msg {
		header, err := svc.Header(ctx)
		return headerLoadedMsg{header: header, err: err}
	}
}

func (m appModel) cmdSetCycleDay(day int) tea.Cmd {
	ctx := m.ctx
	svc := m.services.HeaderService
	return func() tea.Msg {
		cycle, err := svc.SetCycleDay(ctx, day)
		return cycleUpdatedMsg{cycle: cycle, err: err}
	}
}

func (m appModel) cmdCreateCollection(name string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.HeaderService
	return func() tea.Msg {
		resp, err := svc.CreateCollection(ctx, name, "")
		return collectionCreatedMsg{resp: resp, err: err}
	}
}

func (m appModel) cmdLoadVersion() tea.Cmd {
	ctx := m.ctx
	svc := m.services.HeaderService
	return func() tea.Msg {
		version, err := svc.Version(ctx)
		return versionLoadedMsg{version: version, err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
