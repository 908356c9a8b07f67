package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/homestayhq/loyalty/internal/domain"
	"github.com/homestayhq/loyalty/internal/dto"
	"github.com/homestayhq/loyalty/internal/service/ledgerservice"
	"github.com/homestayhq/loyalty/pkg/auth"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*LedgerHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func authed(r *http.Request) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), auth.UserIDKey, 1))
}

func TestGetBalanceHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedBody *dto.BalanceResponseDTO
	}{
		{
			name: "Successful retrieval with tier progress",
			prepareMock: func() {
				service.EXPECT().BalanceOf(gomock.Any(), 1).Return(&domain.Balance{
					UserID: 1, CurrentBalance: 3000, TotalEarned: 3500, TotalSpent: 500, Tier: domain.TierSilver,
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &dto.BalanceResponseDTO{
				Balance:     3000,
				TotalEarned: 3500,
				TotalSpent:  500,
				Tier:        "SILVER",
			},
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().BalanceOf(gomock.Any(), 1).Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := authed(httptest.NewRequest(http.MethodGet, "/api/loyalty/balance", nil))
			w := httptest.NewRecorder()
			handler.GetBalance(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedBody != nil {
				var body dto.BalanceResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, tt.expectedBody.Balance, body.Balance)
				assert.Equal(t, tt.expectedBody.Tier, body.Tier)
				assert.Equal(t, "GOLD", *body.NextTier)
				assert.Equal(t, 2000, body.PointsToNext)
				assert.InDelta(t, 50.0, body.ProgressPercent, 0.01)
			}
		})
	}
}

func TestGetHistoryHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Defaults and summary returned", func(t *testing.T) {
		service.EXPECT().History(gomock.Any(), 1, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ int, f ledgerservice.HistoryFilter) ([]domain.LedgerTransaction, *ledgerservice.Summary, int, error) {
				assert.Equal(t, 1, f.Page)
				assert.Equal(t, 20, f.Limit)
				return []domain.LedgerTransaction{{ID: 10, Amount: 500, Source: domain.SourceBooking, BalanceAfter: 500}},
					&ledgerservice.Summary{TotalEarned: 500, CurrentBalance: 500}, 1, nil
			})

		r := authed(httptest.NewRequest(http.MethodGet, "/api/loyalty/history", nil))
		w := httptest.NewRecorder()
		handler.GetHistory(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		var body dto.HistoryResponseDTO
		_ = json.NewDecoder(w.Body).Decode(&body)
		assert.Len(t, body.Transactions, 1)
		assert.Equal(t, "BOOKING", body.Transactions[0].Source)
		assert.Equal(t, 500, body.Summary.TotalEarned)
		assert.Equal(t, 1, body.Pagination.Page)
		assert.Equal(t, 1, body.Pagination.Total)
	})

	t.Run("Source filter forwarded", func(t *testing.T) {
		service.EXPECT().History(gomock.Any(), 1, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ int, f ledgerservice.HistoryFilter) ([]domain.LedgerTransaction, *ledgerservice.Summary, int, error) {
				assert.NotNil(t, f.Source)
				assert.Equal(t, domain.SourceQuest, *f.Source)
				return nil, &ledgerservice.Summary{}, 0, nil
			})

		r := authed(httptest.NewRequest(http.MethodGet, "/api/loyalty/history?source=QUEST", nil))
		w := httptest.NewRecorder()
		handler.GetHistory(w, r)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Malformed time bound rejected", func(t *testing.T) {
		r := authed(httptest.NewRequest(http.MethodGet, "/api/loyalty/history?from=yesterday", nil))
		w := httptest.NewRecorder()
		handler.GetHistory(w, r)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetTiersHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().BalanceOf(gomock.Any(), 1).Return(&domain.Balance{
		UserID: 1, CurrentBalance: 40000, Tier: domain.TierDiamond,
	}, nil)

	r := authed(httptest.NewRequest(http.MethodGet, "/api/loyalty/tiers", nil))
	w := httptest.NewRecorder()
	handler.GetTiers(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	var body dto.TiersResponseDTO
	_ = json.NewDecoder(w.Body).Decode(&body)
	assert.Len(t, body.Tiers, 5)
	assert.Equal(t, "DIAMOND", body.CurrentTier)
	assert.Nil(t, body.NextTier)
	assert.Equal(t, 100.0, body.ProgressPercent)
}
