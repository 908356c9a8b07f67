package membership

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/homestayhq/loyalty/internal/domain"
	"github.com/homestayhq/loyalty/internal/dto"
	"github.com/homestayhq/loyalty/internal/service/membershipservice"
	"github.com/homestayhq/loyalty/pkg/auth"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*MembershipHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func authed(r *http.Request) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), auth.UserIDKey, 1))
}

func TestActivateHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Successful activation", func(t *testing.T) {
		now := time.Now()
		service.EXPECT().Activate(gomock.Any(), 1, "gold", domain.CycleAnnual).Return(&membershipservice.MembershipState{
			PlanSlug:     "gold",
			Status:       domain.MembershipActive,
			BillingCycle: domain.CycleAnnual,
			StartedAt:    now,
			ExpiresAt:    now.AddDate(1, 0, 0),
			Tier:         domain.TierGold,
			BonusPoints:  2000,
			Features:     []string{"early_checkin", "late_checkout", "free_breakfast"},
		}, nil)

		body := `{"user_id":1,"plan_slug":"gold","billing_cycle":"ANNUAL"}`
		r := authed(httptest.NewRequest(http.MethodPost, "/api/loyalty/membership/activate", bytes.NewBufferString(body)))
		w := httptest.NewRecorder()
		handler.Activate(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp dto.MembershipResponseDTO
		_ = json.NewDecoder(w.Body).Decode(&resp)
		assert.Equal(t, "gold", resp.PlanSlug)
		assert.Equal(t, "ACTIVE", resp.Status)
		assert.Equal(t, "GOLD", resp.Tier)
		assert.Equal(t, 2000, resp.BonusPoints)
		assert.Len(t, resp.Features, 3)
	})

	t.Run("Malformed body", func(t *testing.T) {
		r := authed(httptest.NewRequest(http.MethodPost, "/api/loyalty/membership/activate", bytes.NewBufferString(`{`)))
		w := httptest.NewRecorder()
		handler.Activate(w, r)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Missing user id", func(t *testing.T) {
		r := authed(httptest.NewRequest(http.MethodPost, "/api/loyalty/membership/activate", bytes.NewBufferString(`{"plan_slug":"gold","billing_cycle":"ANNUAL"}`)))
		w := httptest.NewRecorder()
		handler.Activate(w, r)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Unknown plan", func(t *testing.T) {
		service.EXPECT().Activate(gomock.Any(), 1, "titanium", domain.CycleAnnual).Return(nil, membershipservice.ErrPlanNotFound)

		body := `{"user_id":1,"plan_slug":"titanium","billing_cycle":"ANNUAL"}`
		r := authed(httptest.NewRequest(http.MethodPost, "/api/loyalty/membership/activate", bytes.NewBufferString(body)))
		w := httptest.NewRecorder()
		handler.Activate(w, r)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Invalid billing cycle", func(t *testing.T) {
		service.EXPECT().Activate(gomock.Any(), 1, "gold", domain.BillingCycle("WEEKLY")).Return(nil, membershipservice.ErrInvalidBillingCycle)

		body := `{"user_id":1,"plan_slug":"gold","billing_cycle":"WEEKLY"}`
		r := authed(httptest.NewRequest(http.MethodPost, "/api/loyalty/membership/activate", bytes.NewBufferString(body)))
		w := httptest.NewRecorder()
		handler.Activate(w, r)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestGetMembershipHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Membership snapshot returned", func(t *testing.T) {
		now := time.Now()
		service.EXPECT().Current(gomock.Any(), 1).Return(&domain.Membership{
			UserID: 1, PlanSlug: "gold", Status: domain.MembershipExpired,
			BillingCycle: domain.CycleAnnual, StartedAt: now.AddDate(-1, 0, -1), ExpiresAt: now.AddDate(0, 0, -1),
			Tier: domain.TierGold, Features: []string{"early_checkin"},
		}, nil)

		r := authed(httptest.NewRequest(http.MethodGet, "/api/loyalty/membership", nil))
		w := httptest.NewRecorder()
		handler.GetMembership(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp dto.MembershipResponseDTO
		_ = json.NewDecoder(w.Body).Decode(&resp)
		assert.Equal(t, "EXPIRED", resp.Status)
	})

	t.Run("No membership", func(t *testing.T) {
		service.EXPECT().Current(gomock.Any(), 1).Return(nil, nil)

		r := authed(httptest.NewRequest(http.MethodGet, "/api/loyalty/membership", nil))
		w := httptest.NewRecorder()
		handler.GetMembership(w, r)
		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}
