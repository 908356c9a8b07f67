package quests

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/homestayhq/loyalty/internal/domain"
	"github.com/homestayhq/loyalty/internal/dto"
	"github.com/homestayhq/loyalty/internal/service/questservice"
	"github.com/homestayhq/loyalty/pkg/auth"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*QuestHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func questRequest(method, target, questID, body string) *http.Request {
	var r *http.Request
	if body != "" {
		r = httptest.NewRequest(method, target, bytes.NewBufferString(body))
	} else {
		r = httptest.NewRequest(method, target, nil)
	}
	ctx := context.WithValue(r.Context(), auth.UserIDKey, 7)

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("questID", questID)
	ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	return r.WithContext(ctx)
}

func TestListQuestsHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().ActiveQuests(gomock.Any(), 7).Return([]questservice.QuestWithProgress{
		{
			Quest: domain.Quest{ID: 1, Title: "Write a review", TargetCount: 5, Cadence: domain.CadenceDaily, RewardPoints: 100},
			Progress: questservice.ProgressResult{
				QuestID: 1, CurrentCount: 2, TargetCount: 5, ProgressPercent: 40,
			},
		},
	}, nil)

	r := questRequest(http.MethodGet, "/api/loyalty/quests", "", "")
	w := httptest.NewRecorder()
	handler.ListQuests(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	var body []dto.QuestWithProgressDTO
	_ = json.NewDecoder(w.Body).Decode(&body)
	assert.Len(t, body, 1)
	assert.Equal(t, "DAILY", body[0].Quest.Cadence)
	assert.Equal(t, 2, body[0].Progress.CurrentCount)
}

func TestGetProgressHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Progress returned", func(t *testing.T) {
		service.EXPECT().Progress(gomock.Any(), 7, 1).Return(&questservice.ProgressResult{
			QuestID: 1, CurrentCount: 3, TargetCount: 5, ProgressPercent: 60,
		}, nil)

		r := questRequest(http.MethodGet, "/api/loyalty/quests/1", "1", "")
		w := httptest.NewRecorder()
		handler.GetProgress(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		var body dto.QuestProgressResponseDTO
		_ = json.NewDecoder(w.Body).Decode(&body)
		assert.Equal(t, 3, body.CurrentCount)
	})

	t.Run("Bad quest id", func(t *testing.T) {
		r := questRequest(http.MethodGet, "/api/loyalty/quests/abc", "abc", "")
		w := httptest.NewRecorder()
		handler.GetProgress(w, r)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Unknown quest", func(t *testing.T) {
		service.EXPECT().Progress(gomock.Any(), 7, 99).Return(nil, questservice.ErrQuestNotFound)

		r := questRequest(http.MethodGet, "/api/loyalty/quests/99", "99", "")
		w := httptest.NewRecorder()
		handler.GetProgress(w, r)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestRecordProgressHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Empty body defaults to one", func(t *testing.T) {
		service.EXPECT().RecordProgress(gomock.Any(), 7, 1, 1).Return(&questservice.ProgressResult{
			QuestID: 1, CurrentCount: 1, TargetCount: 5, ProgressPercent: 20,
		}, nil)

		r := questRequest(http.MethodPost, "/api/loyalty/quests/1/progress", "1", "")
		w := httptest.NewRecorder()
		handler.RecordProgress(w, r)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Completion payload includes the award", func(t *testing.T) {
		badgeID := 3
		completedPayload := &questservice.ProgressResult{
			QuestID: 1, CurrentCount: 5, TargetCount: 5, IsCompleted: true,
			ProgressPercent: 100, AwardedPoints: 100, AwardedBadgeID: &badgeID,
		}
		service.EXPECT().RecordProgress(gomock.Any(), 7, 1, 2).Return(completedPayload, nil)

		r := questRequest(http.MethodPost, "/api/loyalty/quests/1/progress", "1", `{"increment":2}`)
		w := httptest.NewRecorder()
		handler.RecordProgress(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		var body dto.QuestProgressResponseDTO
		_ = json.NewDecoder(w.Body).Decode(&body)
		assert.True(t, body.IsCompleted)
		assert.Equal(t, 100, body.AwardedPoints)
		assert.Equal(t, 3, *body.AwardedBadgeID)
	})

	t.Run("Inactive quest", func(t *testing.T) {
		service.EXPECT().RecordProgress(gomock.Any(), 7, 1, 1).Return(nil, questservice.ErrQuestInactive)

		r := questRequest(http.MethodPost, "/api/loyalty/quests/1/progress", "1", "")
		w := httptest.NewRecorder()
		handler.RecordProgress(w, r)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("Invalid increment", func(t *testing.T) {
		service.EXPECT().RecordProgress(gomock.Any(), 7, 1, -1).Return(nil, questservice.ErrInvalidIncrement)

		r := questRequest(http.MethodPost, "/api/loyalty/quests/1/progress", "1", `{"increment":-1}`)
		w := httptest.NewRecorder()
		handler.RecordProgress(w, r)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}
