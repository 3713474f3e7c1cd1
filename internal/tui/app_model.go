package tui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/cosmic-brain/internal/logger"
	"github.com/MKhiriev/cosmic-brain/internal/service"
	"github.com/MKhiriev/cosmic-brain/models"
)

type screen int

const (
	screenCapture screen = iota
	screenRecent
	screenChat
	screenDashboard
	screenSearch
	screenAbout
)

var screenOrder = []screen{screenCapture, screenRecent, screenChat, screenDashboard, screenSearch, screenAbout}

func (s screen) String() string {
	switch s {
	case screenCapture:
		return "Dump"
	case screenRecent:
		return "Recent"
	case screenChat:
		return "Chat"
	case screenDashboard:
		return "Dashboard"
	case screenSearch:
		return "Search"
	case screenAbout:
		return "About"
	default:
		return "?"
	}
}

type appModel struct {
	ctx       context.Context
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
	now       func() time.Time

	currentScreen screen
	header        models.HeaderSnapshot
	offline       bool
	serverVersion string

	capture   captureModel
	recent    recentModel
	chat      chatModel
	dashboard dashboardModel
	search    searchModel

	showError     bool
	errorOverlay  errorOverlayModel
	showConfirm   bool
	confirm       confirmModel
	pendingDelete int64
	reflection    *reflectionModel
}

func newAppModel(ctx context.Context, services *service.ClientServices, buildInfo models.AppBuildInfo, log *logger.Logger) appModel {
	return appModel{
		ctx:           ctx,
		services:      services,
		buildInfo:     buildInfo,
		logger:        log,
		now:           time.Now,
		currentScreen: screenCapture,
		capture:       newCaptureModel(),
		recent:        newRecentModel(),
		chat:          newChatModel(),
		dashboard:     newDashboardModel(),
		search:        newSearchModel(),
	}
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, m.cmdLoadRecent())
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			if key.Matches(msg, keys.yes) {
				m.showConfirm = false
				id := m.pendingDelete
				m.pendingDelete = 0
				return m, m.cmdDeleteNote(id)
			}
			if key.Matches(msg, keys.no) || key.Matches(msg, keys.esc) {
				m.showConfirm = false
				m.pendingDelete = 0
			}
			return m, nil
		}
		if m.reflection != nil {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.reflection = nil
			}
			return m, nil
		}
		switch {
		case key.Matches(msg, keys.quit):
			return m, tea.Quit
		case key.Matches(msg, keys.tab) && !m.dashboard.naming:
			return m.switchScreen(m.shiftScreen(1))
		case key.Matches(msg, keys.backtab) && !m.dashboard.naming:
			return m.switchScreen(m.shiftScreen(-1))
		}

	case refreshMsg:
		if !msg.Header.FetchedAt.IsZero() {
			m.header = msg.Header
		}
		if msg.Err == nil || msg.Recent != nil {
			m.recent.setItems(msg.Recent)
		}
		m.offline = msg.Err != nil
		return m, nil
	case headerLoadedMsg:
		if msg.err == nil {
			m.header = msg.header
		}
		m.offline = msg.err != nil
		return m, nil
	case noteCapturedMsg:
		return m.onNoteCaptured(msg)
	case recentLoadedMsg:
		if msg.err != nil {
			m.recent.loading = false
			m.showErrorf(humanizeServerUnavailableError(msg.err))
			return m, nil
		}
		m.recent.setItems(msg.items)
		return m, nil
	case notesFoundMsg:
		if msg.query != m.search.pending {
			return m, nil
		}
		if msg.err != nil {
			m.search.loading = false
			m.showErrorf(humanizeServerUnavailableError(msg.err))
			return m, nil
		}
		m.search.setResults(msg.notes)
		return m, nil
	case noteChangedMsg:
		if msg.err != nil {
			m.showErrorf(humanizeServerUnavailableError(msg.err))
		}
		return m, m.cmdLoadRecent()
	case chatHistoryLoadedMsg:
		if msg.key != m.chat.key {
			return m, nil
		}
		if msg.err != nil {
			m.showErrorf(humanizeServerUnavailableError(msg.err))
			return m, nil
		}
		m.chat.setMessages(msg.messages)
		return m, nil
	case chatReplyMsg:
		return m.onChatReply(msg)
	case chatResetMsg:
		if msg.err != nil {
			m.showErrorf(humanizeServerUnavailableError(msg.err))
			return m, nil
		}
		if msg.key == m.chat.key {
			m.chat.setMessages(nil)
			m.chat.status = "Chat cleared"
		}
		return m, cmdClearStatus()
	case reflectDoneMsg:
		m.recent.status = ""
		if msg.err != nil {
			m.showErrorf(humanizeServerUnavailableError(msg.err))
			return m, nil
		}
		m.reflection = &reflectionModel{note: msg.note, text: msg.text, suggestions: msg.suggestions}
		return m, nil
	case dashboardLoadedMsg:
		m.dashboard.loading = false
		if msg.err != nil {
			m.showErrorf(humanizeServerUnavailableError(msg.err))
			return m, nil
		}
		if msg.timeframe == m.dashboard.timeframe {
			m.dashboard.stats = msg.stats
			m.dashboard.loaded = true
		}
		return m, nil
	case cycleUpdatedMsg:
		if msg.err != nil {
			m.showErrorf(humanizeServerUnavailableError(msg.err))
			return m, nil
		}
		m.header.Cycle = msg.cycle
		return m, nil
	case collectionCreatedMsg:
		if msg.err != nil {
			m.showErrorf(humanizeServerUnavailableError(msg.err))
			return m, nil
		}
		m.header.Collections = append(m.header.Collections, msg.resp.Database)
		m.dashboard.status = msg.resp.Message
		return m, cmdClearStatus()
	case versionLoadedMsg:
		if msg.err != nil {
			m.serverVersion = ""
			return m, nil
		}
		m.serverVersion = msg.version
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.chat.status = "Copied!"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.capture.status = ""
		m.recent.status = ""
		m.chat.status = ""
		m.dashboard.status = ""
		return m, nil
	case spinner.TickMsg:
		if m.chat.waiting {
			var cmd tea.Cmd
			m.chat.spinner, cmd = m.chat.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	case tea.WindowSizeMsg:
		m.capture.input.SetWidth(max(msg.Width-8, 20))
		m.chat.resize(msg.Width, msg.Height)
		return m, nil
	}

	switch m.currentScreen {
	case screenCapture:
		return m.updateCapture(msg)
	case screenRecent:
		return m.updateRecent(msg)
	case screenChat:
		return m.updateChat(msg)
	case screenDashboard:
		return m.updateDashboard(msg)
	case screenSearch:
		return m.updateSearch(msg)
	case screenAbout:
		return m.updateAbout(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenCapture:
		body = m.capture.View()
	case screenRecent:
		body = m.recent.View()
	case screenChat:
		body = m.chat.View()
	case screenDashboard:
		body = m.dashboard.View(m.header)
	case screenSearch:
		body = m.search.View()
	case screenAbout:
		body = renderBuildInfoWindow(m.buildInfo, m.serverVersion)
	}

	top := renderHeader(m.header)
	if m.offline {
		top += "  " + errorStyle.Render("offline")
	}
	out := top + "\n" + renderTabs(m.currentScreen) + "\n\n" + body

	if m.reflection != nil {
		out += "\n\n" + m.reflection.View()
	}
	if m.showConfirm {
		out += "\n\n" + m.confirm.View()
	}
	if m.showError {
		out += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(out)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m appModel) shiftScreen(delta int) screen {
	n := len(screenOrder)
	return screenOrder[((int(m.currentScreen)+delta)%n+n)%n]
}

// switchScreen moves the focus to the text field of the target screen and
// loads the data the screen shows.
func (m appModel) switchScreen(to screen) (tea.Model, tea.Cmd) {
	m.currentScreen = to
	m.capture.input.Blur()
	m.chat.input.Blur()
	m.search.input.Blur()

	switch to {
	case screenCapture:
		cmd := m.capture.input.Focus()
		return m, cmd
	case screenChat:
		cmd := m.chat.input.Focus()
		return m, cmd
	case screenRecent:
		return m, m.cmdLoadRecent()
	case screenDashboard:
		m.dashboard.loading = true
		return m, m.cmdLoadDashboard(m.dashboard.timeframe)
	case screenSearch:
		focus := m.search.input.Focus()
		next, search := m.startSearch()
		return next, tea.Batch(focus, search)
	case screenAbout:
		return m, m.cmdLoadVersion()
	}
	return m, nil
}

func (m appModel) updateCapture(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.save), key.Matches(keyMsg, keys.saveChat):
			if m.capture.saving {
				return m, nil
			}
			if strings.TrimSpace(m.capture.input.Value()) == "" {
				m.capture.status = msgNothingToSave
				return m, cmdClearStatus()
			}
			m.capture.saving = true
			return m, m.cmdCapture(m.capture.input.Value(), key.Matches(keyMsg, keys.saveChat))
		case key.Matches(keyMsg, keys.template):
			m.capture.nextStarter()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.capture.input, cmd = m.capture.input.Update(msg)
	return m, cmd
}

func (m appModel) onNoteCaptured(msg noteCapturedMsg) (tea.Model, tea.Cmd) {
	m.capture.saving = false
	if msg.err != nil {
		if errors.Is(msg.err, service.ErrEmptyContent) {
			m.capture.status = msgNothingToSave
			return m, cmdClearStatus()
		}
		m.showErrorf(humanizeServerUnavailableError(msg.err))
		return m, nil
	}

	resp := msg.resp
	m.capture.input.Reset()
	m.capture.last = &resp
	m.capture.status = "Saved as " + resp.Note.Category.String()
	m.recent.setItems(append([]models.Note{resp.Note}, m.recent.items...))
	m.recent.idx = 0

	cmds := []tea.Cmd{cmdClearStatus()}
	if len(resp.Actions) > 0 {
		cmds = append(cmds, m.cmdLoadHeader())
	}
	if msg.openChat {
		id := resp.Note.ID
		m.chat.open(models.NoteChatKey(id), &id, fitText(oneLine(resp.Note.Content), 40))
		if resp.Greeting != nil {
			m.chat.setMessages([]models.ChatMessage{*resp.Greeting})
		}
		next, cmd := m.switchScreen(screenChat)
		return next, tea.Batch(append(cmds, cmd)...)
	}
	return m, tea.Batch(cmds...)
}

func (m appModel) updateRecent(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.recent.idx > 0 {
			m.recent.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.recent.idx < len(m.recent.items)-1 {
			m.recent.idx++
		}
	case key.Matches(keyMsg, keys.reload):
		m.recent.loading = true
		return m, m.cmdLoadRecent()
	case key.Matches(keyMsg, keys.processed):
		note, ok := m.recent.current()
		if !ok {
			return m, nil
		}
		return m, m.cmdSetProcessed(note.ID, !note.Processed)
	case key.Matches(keyMsg, keys.delete):
		note, ok := m.recent.current()
		if !ok {
			return m, nil
		}
		m.showConfirm = true
		m.confirm.message = fitText(oneLine(note.Content), 40)
		m.pendingDelete = note.ID
	case key.Matches(keyMsg, keys.chat), key.Matches(keyMsg, keys.enter):
		note, ok := m.recent.current()
		if !ok {
			return m, nil
		}
		id := note.ID
		m.chat.open(models.NoteChatKey(id), &id, fitText(oneLine(note.Content), 40))
		next, cmd := m.switchScreen(screenChat)
		return next, tea.Batch(cmd, m.cmdLoadHistory(m.chat.key))
	case key.Matches(keyMsg, keys.reflect):
		note, ok := m.recent.current()
		if !ok {
			return m, nil
		}
		m.recent.status = "Reflecting..."
		return m, m.cmdReflect(note)
	}

	return m, nil
}

func (m appModel) updateChat(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.enter):
			text := strings.TrimSpace(m.chat.input.Value())
			if text == "" || m.chat.waiting {
				return m, nil
			}
			m.chat.input.Reset()
			m.chat.appendMessage(models.ChatMessage{Role: models.RoleUser, Content: text, Timestamp: m.now()})
			m.chat.waiting = true
			return m, tea.Batch(m.chat.spinner.Tick, m.cmdSendChat(m.chat.key, m.chat.noteID, text))
		case key.Matches(keyMsg, keys.copy):
			reply, ok := m.chat.lastReply()
			if !ok {
				return m, nil
			}
			return m, cmdCopyToClipboard(reply)
		case key.Matches(keyMsg, keys.reset):
			return m, m.cmdResetChat(m.chat.key)
		case key.Matches(keyMsg, keys.reload):
			return m, m.cmdLoadHistory(m.chat.key)
		case key.Matches(keyMsg, keys.esc):
			if m.chat.key != models.GeneralChatKey {
				m.chat.open(models.GeneralChatKey, nil, "General")
				return m, m.cmdLoadHistory(models.GeneralChatKey)
			}
			return m, nil
		case key.Matches(keyMsg, keys.up), key.Matches(keyMsg, keys.down):
			var cmd tea.Cmd
			m.chat.viewport, cmd = m.chat.viewport.Update(msg)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.chat.input, cmd = m.chat.input.Update(msg)
	return m, cmd
}

func (m appModel) onChatReply(msg chatReplyMsg) (tea.Model, tea.Cmd) {
	if msg.key != m.chat.key {
		return m, nil
	}
	m.chat.waiting = false
	if msg.err != nil {
		if errors.Is(msg.err, service.ErrEmptyContent) {
			return m, nil
		}
		m.showErrorf(humanizeServerUnavailableError(msg.err))
		return m, nil
	}

	m.chat.appendMessage(models.ChatMessage{
		Role:      models.RoleAssistant,
		Content:   msg.resp.Response,
		Timestamp: msg.resp.Timestamp,
		Actions:   msg.resp.Actions,
	})
	if len(msg.resp.Actions) > 0 {
		return m, m.cmdLoadHeader()
	}
	return m, nil
}

func (m appModel) updateDashboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)

	if m.dashboard.naming {
		if ok {
			switch {
			case key.Matches(keyMsg, keys.esc):
				m.dashboard.naming = false
				m.dashboard.nameInput.Blur()
				m.dashboard.nameInput.Reset()
				return m, nil
			case key.Matches(keyMsg, keys.enter):
				name := strings.TrimSpace(m.dashboard.nameInput.Value())
				if name == "" {
					return m, nil
				}
				m.dashboard.naming = false
				m.dashboard.nameInput.Blur()
				m.dashboard.nameInput.Reset()
				return m, m.cmdCreateCollection(name)
			}
		}
		var cmd tea.Cmd
		m.dashboard.nameInput, cmd = m.dashboard.nameInput.Update(msg)
		return m, cmd
	}

	if !ok {
		return m, nil
	}

	timeframes := []struct {
		binding   key.Binding
		timeframe models.Timeframe
	}{
		{keys.today, models.TimeframeToday},
		{keys.week, models.TimeframeWeek},
		{keys.month, models.TimeframeMonth},
		{keys.all, models.TimeframeAll},
	}
	for _, tf := range timeframes {
		if key.Matches(keyMsg, tf.binding) {
			m.dashboard.timeframe = tf.timeframe
			m.dashboard.loading = true
			m.dashboard.loaded = false
			return m, m.cmdLoadDashboard(tf.timeframe)
		}
	}

	switch {
	case key.Matches(keyMsg, keys.reload):
		m.dashboard.loading = true
		return m, tea.Batch(m.cmdLoadDashboard(m.dashboard.timeframe), m.cmdLoadHeader())
	case key.Matches(keyMsg, keys.dayUp):
		return m, m.cmdSetCycleDay(m.header.Cycle.Day + 1)
	case key.Matches(keyMsg, keys.dayDown):
		if m.header.Cycle.Day <= 1 {
			return m, nil
		}
		return m, m.cmdSetCycleDay(m.header.Cycle.Day - 1)
	case key.Matches(keyMsg, keys.newItem):
		m.dashboard.naming = true
		cmd := m.dashboard.nameInput.Focus()
		return m, cmd
	}

	return m, nil
}

func (m appModel) updateAbout(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, keys.reload) {
		return m, m.cmdLoadVersion()
	}
	return m, nil
}

func (m appModel) startSearch() (appModel, tea.Cmd) {
	m.search.pending = m.search.query()
	m.search.loading = true
	return m, m.cmdSearch(m.search.pending)
}

func (m appModel) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.enter):
			return m.startSearch()
		case key.Matches(keyMsg, keys.category):
			m.search.nextCategory()
			return m.startSearch()
		case key.Matches(keyMsg, keys.arrowUp):
			if m.search.idx > 0 {
				m.search.idx--
			}
			return m, nil
		case key.Matches(keyMsg, keys.arrowDown):
			if m.search.idx < len(m.search.results)-1 {
				m.search.idx++
			}
			return m, nil
		case key.Matches(keyMsg, keys.openNote):
			note, ok := m.search.current()
			if !ok {
				return m, nil
			}
			id := note.ID
			m.chat.open(models.NoteChatKey(id), &id, fitText(oneLine(note.Content), 40))
			next, cmd := m.switchScreen(screenChat)
			return next, tea.Batch(cmd, m.cmdLoadHistory(m.chat.key))
		}
	}

	var cmd tea.Cmd
	m.search.input, cmd = m.search.input.Update(msg)
	return m, cmd
}
