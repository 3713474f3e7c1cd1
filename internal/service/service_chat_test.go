// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/cosmic-brain/internal/adapter"
	"github.com/MKhiriev/cosmic-brain/internal/brain"
	"github.com/MKhiriev/cosmic-brain/internal/logger"
	"github.com/MKhiriev/cosmic-brain/internal/mock"
	"github.com/MKhiriev/cosmic-brain/internal/session"
	"github.com/MKhiriev/cosmic-brain/internal/store"
	"github.com/MKhiriev/cosmic-brain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestChatSvc(t *testing.T, ctrl *gomock.Controller) (*chatService, *mock.MockCompletionAdapter, *mock.MockActionService, *mock.MockCosmicService) {
	t.Helper()
	completion := mock.NewMockCompletionAdapter(ctrl)
	actions := mock.NewMockActionService(ctrl)
	cosmic := mock.NewMockCosmicService(ctrl)

	svc := NewChatService(completion, actions, cosmic, nil, logger.Nop()).(*chatService)
	svc.now = func() time.Time { return fixedNow }
	return svc, completion, actions, cosmic
}

var testSnapshot = models.CosmicSnapshot{MoonPhase: "Full Moon", CurrentSign: "Pisces", LastUpdated: fixedNow}

func TestChatService_Send_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, completion, _, cosmic := newTestChatSvc(t, ctrl)
	state := newTestState()
	ctx := context.Background()

	cosmic.EXPECT().Snapshot(ctx).Return(testSnapshot)
	completion.EXPECT().Complete(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, req adapter.CompletionRequest) (string, error) {
		assert.Equal(t, chatMaxTokens, req.MaxTokens)
		assert.Contains(t, req.Prompt, `CURRENT MESSAGE: "how is my week looking?"`)
		assert.Contains(t, req.Prompt, "Moon: Full Moon, Sign: Pisces")
		assert.Contains(t, req.Prompt, "Day 14, ovulatory phase")
		return "Bright and busy.", nil
	})

	resp, err := svc.Send(ctx, state, models.ChatRequest{Message: "how is my week looking?"})

	require.NoError(t, err)
	assert.Equal(t, "Bright and busy.", resp.Response)
	assert.Empty(t, resp.Actions)
	assert.NotNil(t, resp.Actions)
	assert.Equal(t, fixedNow, resp.Timestamp)

	history := state.History(models.GeneralChatKey)
	require.Len(t, history, 2)
	assert.Equal(t, models.RoleUser, history[0].Role)
	assert.Equal(t, "how is my week looking?", history[0].Content)
	assert.Equal(t, models.RoleAssistant, history[1].Role)
	assert.Equal(t, "Bright and busy.", history[1].Content)
}

func TestChatService_Send_ProviderFailureUsesFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, completion, _, cosmic := newTestChatSvc(t, ctrl)
	state := newTestState()

	cosmic.EXPECT().Snapshot(gomock.Any()).Return(testSnapshot)
	completion.EXPECT().Complete(gomock.Any(), gomock.Any()).Return("", adapter.ErrProviderNotConfigured)

	resp, err := svc.Send(context.Background(), state, models.ChatRequest{Message: "hello"})

	require.NoError(t, err)
	assert.Equal(t, brain.ChatFallbackReply, resp.Response)
	history := state.History(models.GeneralChatKey)
	require.Len(t, history, 2)
	assert.Equal(t, brain.ChatFallbackReply, history[1].Content)
}

func TestChatService_Send_ActionsFromUserMessageOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, completion, actions, cosmic := newTestChatSvc(t, ctrl)
	state := newTestState()
	ctx := context.Background()

	cosmic.EXPECT().Snapshot(ctx).Return(testSnapshot)
	// the reply mentions a database, which must not become an action
	completion.EXPECT().Complete(ctx, gomock.Any()).Return("Sure! I could also create a herb database.", nil)
	actions.EXPECT().Apply(ctx, state, models.NewUpdateCycleAction(5)).Return(nil)

	resp, err := svc.Send(ctx, state, models.ChatRequest{Message: "I'm on day 5"})

	require.NoError(t, err)
	assert.Equal(t, []models.Action{models.NewUpdateCycleAction(5)}, resp.Actions)
	history := state.History(models.GeneralChatKey)
	assert.Equal(t, resp.Actions, history[1].Actions)
	assert.Empty(t, history[0].Actions)
}

func TestChatService_Send_ActionsAppliedOnFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, completion, actions, cosmic := newTestChatSvc(t, ctrl)
	state := newTestState()

	cosmic.EXPECT().Snapshot(gomock.Any()).Return(testSnapshot)
	completion.EXPECT().Complete(gomock.Any(), gomock.Any()).Return("", adapter.ErrProvider)
	gomock.InOrder(
		actions.EXPECT().Apply(gomock.Any(), state, models.NewUpdateCycleAction(3)).Return(nil),
		actions.EXPECT().Apply(gomock.Any(), state, models.NewCreateDatabaseAction("crystal")).Return(nil),
	)

	resp, err := svc.Send(context.Background(), state, models.ChatRequest{Message: "please create a crystal database and set my cycle day to 3"})

	require.NoError(t, err)
	assert.Equal(t, brain.ChatFallbackReply, resp.Response)
	assert.Len(t, resp.Actions, 2)
}

func TestChatService_Send_EmptyMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _, _ := newTestChatSvc(t, ctrl)
	state := newTestState()

	_, err := svc.Send(context.Background(), state, models.ChatRequest{Message: "  "})

	require.ErrorIs(t, err, ErrEmptyContent)
	assert.Empty(t, state.History(models.GeneralChatKey))
}

func TestChatService_Send_SeedsEmptySessionAndUsesProvidedContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, completion, _, _ := newTestChatSvc(t, ctrl)
	state := newTestState()

	seed := []models.ChatMessage{
		{Role: models.RoleUser, Content: "earlier question"},
		{Role: models.RoleAssistant, Content: "earlier answer"},
	}
	provided := &models.UserContext{Cycle: &models.CycleState{Day: 2, Phase: models.PhaseMenstrual}}

	// no Snapshot call: the provided context wins
	completion.EXPECT().Complete(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, req adapter.CompletionRequest) (string, error) {
		assert.Contains(t, req.Prompt, "user: earlier question")
		assert.Contains(t, req.Prompt, "assistant: earlier answer")
		assert.Contains(t, req.Prompt, "Day 2, menstrual phase")
		assert.Contains(t, req.Prompt, "COSMIC CONTEXT: Unknown")
		assert.Contains(t, req.Prompt, "CURRENT SESSION: goals chat")
		return "ok", nil
	})

	_, err := svc.Send(context.Background(), state, models.ChatRequest{
		Message:     "next question",
		ChatType:    "goals",
		ChatHistory: seed,
		UserContext: provided,
	})

	require.NoError(t, err)
	assert.Len(t, state.History("goals"), 4)
}

func TestChatService_Send_NoteChat(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, completion, _, cosmic := newTestChatSvc(t, ctrl)
	state := newTestState()
	note := models.Note{ID: 12, Content: "plant basil", Category: models.CategoryGarden}
	state.PushRecent(note)

	cosmic.EXPECT().Snapshot(gomock.Any()).Return(testSnapshot)
	completion.EXPECT().Complete(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, req adapter.CompletionRequest) (string, error) {
		assert.Equal(t, noteChatMaxTokens, req.MaxTokens)
		assert.Contains(t, req.Prompt, `ORIGINAL NOTE: "plant basil"`)
		assert.Contains(t, req.Prompt, "CATEGORY: garden")
		return "Waxing moon is best.", nil
	})

	id := note.ID
	_, err := svc.Send(context.Background(), state, models.ChatRequest{Message: "when?", NoteID: &id})

	require.NoError(t, err)
	assert.Len(t, state.History("12"), 2)
	assert.Empty(t, state.History(models.GeneralChatKey))
}

func TestChatService_Send_NoteChatOnFreshSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	completion := mock.NewMockCompletionAdapter(ctrl)
	cosmic := mock.NewMockCosmicService(ctrl)
	notes := mock.NewMockNoteRepository(ctrl)
	svc := NewChatService(completion, mock.NewMockActionService(ctrl), cosmic, notes, logger.Nop())

	state := newTestState()
	latest := models.Note{ID: 40, Content: "budget for march", Category: models.CategoryFinance, CreatedAt: fixedNow}
	old := models.Note{ID: 3, Content: "plant basil", Category: models.CategoryGarden, CreatedAt: fixedNow.AddDate(0, -1, 0)}

	cosmic.EXPECT().Snapshot(gomock.Any()).Return(testSnapshot)
	notes.EXPECT().List(gomock.Any(), models.NoteFilter{Limit: session.RecentWindow}).Return([]models.Note{latest}, nil)
	notes.EXPECT().Get(gomock.Any(), int64(3)).Return(old, nil)
	completion.EXPECT().Complete(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, req adapter.CompletionRequest) (string, error) {
		assert.Contains(t, req.Prompt, `ORIGINAL NOTE: "plant basil"`)
		assert.Contains(t, req.Prompt, "budget for march")
		return "Sow after the frost.", nil
	})

	id := old.ID
	resp, err := svc.Send(context.Background(), state, models.ChatRequest{Message: "when should I sow?", NoteID: &id})

	require.NoError(t, err)
	assert.Equal(t, "Sow after the frost.", resp.Response)
}

func TestChatService_Send_NoteChatUnknownNote(t *testing.T) {
	ctrl := gomock.NewController(t)
	completion := mock.NewMockCompletionAdapter(ctrl)
	cosmic := mock.NewMockCosmicService(ctrl)
	notes := mock.NewMockNoteRepository(ctrl)
	svc := NewChatService(completion, mock.NewMockActionService(ctrl), cosmic, notes, logger.Nop())

	state := newTestState()
	state.MergeRecent(nil)

	cosmic.EXPECT().Snapshot(gomock.Any()).Return(testSnapshot)
	notes.EXPECT().Get(gomock.Any(), int64(77)).Return(models.Note{}, store.ErrNoteNotFound)
	completion.EXPECT().Complete(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, req adapter.CompletionRequest) (string, error) {
		assert.NotContains(t, req.Prompt, "ORIGINAL NOTE")
		assert.Equal(t, noteChatMaxTokens, req.MaxTokens)
		return "ok", nil
	})

	id := int64(77)
	_, err := svc.Send(context.Background(), state, models.ChatRequest{Message: "still there?", NoteID: &id})
	require.NoError(t, err)
	assert.Len(t, state.History("77"), 2)
}

func TestChatService_Send_SerializedPerSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, completion, _, cosmic := newTestChatSvc(t, ctrl)
	state := newTestState()

	cosmic.EXPECT().Snapshot(gomock.Any()).Return(testSnapshot).AnyTimes()
	completion.EXPECT().Complete(gomock.Any(), gomock.Any()).Return("ok", nil).Times(10)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Send(context.Background(), state, models.ChatRequest{Message: "hi"})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	history := state.History(models.GeneralChatKey)
	require.Len(t, history, 20)
	for i := 0; i < len(history); i += 2 {
		assert.Equal(t, models.RoleUser, history[i].Role)
		assert.Equal(t, models.RoleAssistant, history[i+1].Role)
	}
}

func TestChatService_HistoryAndReset(t *testing.T) {
	svc := NewChatService(nil, nil, nil, nil, logger.Nop())
	state := newTestState()
	state.Append("7", models.ChatMessage{Role: models.RoleAssistant, Content: "hi"})

	assert.Len(t, svc.History(context.Background(), state, "7"), 1)
	svc.Reset(context.Background(), state, "7")
	assert.Empty(t, svc.History(context.Background(), state, "7"))
}

func TestChatService_Send_FailedActionNotReported(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, completion, actions, cosmic := newTestChatSvc(t, ctrl)
	state := newTestState()

	cosmic.EXPECT().Snapshot(gomock.Any()).Return(testSnapshot)
	completion.EXPECT().Complete(gomock.Any(), gomock.Any()).Return("ok", nil)
	actions.EXPECT().Apply(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("boom"))

	resp, err := svc.Send(context.Background(), state, models.ChatRequest{Message: "make a tarot database"})

	require.NoError(t, err)
	assert.Empty(t, resp.Actions)
}
