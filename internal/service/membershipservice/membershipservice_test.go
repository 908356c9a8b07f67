package membershipservice

import (
	"context"
	"testing"
	"time"

	"github.com/homestayhq/loyalty/internal/domain"
	"github.com/homestayhq/loyalty/internal/pg"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockMembershipRepo, *MockLedger) {
	ctrl := gomock.NewController(t)
	membershipRepo := NewMockMembershipRepo(ctrl)
	ledger := NewMockLedger(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	).AnyTimes()
	service := New(membershipRepo, ledger, txManager)
	defer ctrl.Finish()
	return service, membershipRepo, ledger
}

func goldPlan() *domain.MembershipPlan {
	return &domain.MembershipPlan{
		ID:                2,
		Slug:              "gold",
		Name:              "Gold",
		Features:          []string{"early_checkin", "late_checkout"},
		ExclusiveFeatures: []string{"late_checkout", "free_breakfast"},
	}
}

func TestActivate(t *testing.T) {
	t.Run("Annual gold plan raises tier and credits the bonus", func(t *testing.T) {
		service, membershipRepo, ledger := NewMock(t)

		membershipRepo.EXPECT().GetPlanBySlug(gomock.Any(), "gold").Return(goldPlan(), nil)
		membershipRepo.EXPECT().GetUser(gomock.Any(), 1).Return(&domain.User{ID: 1, Email: "guest@example.com"}, nil)
		membershipRepo.EXPECT().UpsertMembership(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, m *domain.Membership) (*domain.Membership, error) {
				assert.Equal(t, 1, m.UserID)
				assert.Equal(t, "gold", m.PlanSlug)
				assert.Equal(t, domain.MembershipActive, m.Status)
				assert.Equal(t, domain.CycleAnnual, m.BillingCycle)
				assert.Equal(t, domain.TierGold, m.Tier)
				return m, nil
			})
		ledger.EXPECT().RaiseTierFloor(gomock.Any(), 1, domain.TierGold).Return(&domain.Balance{
			UserID: 1, CurrentBalance: 1000, Tier: domain.TierGold, TierFloor: domain.TierGold,
		}, nil)
		ledger.EXPECT().Credit(gomock.Any(), 1, 2000, domain.SourceMembership, "gold", gomock.Any()).Return(&domain.Balance{
			UserID: 1, CurrentBalance: 3000, Tier: domain.TierGold, TierFloor: domain.TierGold,
		}, nil)

		state, err := service.Activate(context.Background(), 1, "gold", domain.CycleAnnual)
		assert.NoError(t, err)
		assert.Equal(t, "gold", state.PlanSlug)
		assert.Equal(t, domain.MembershipActive, state.Status)
		assert.Equal(t, domain.TierGold, state.Tier)
		assert.Equal(t, 2000, state.BonusPoints)
		assert.Equal(t, []string{"early_checkin", "late_checkout", "free_breakfast"}, state.Features)
		assert.WithinDuration(t, state.StartedAt.AddDate(1, 0, 0), state.ExpiresAt, time.Second)
	})

	t.Run("Monthly cycle uses the monthly bonus and expiry", func(t *testing.T) {
		service, membershipRepo, ledger := NewMock(t)

		membershipRepo.EXPECT().GetPlanBySlug(gomock.Any(), "gold").Return(goldPlan(), nil)
		membershipRepo.EXPECT().GetUser(gomock.Any(), 1).Return(&domain.User{ID: 1}, nil)
		membershipRepo.EXPECT().UpsertMembership(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, m *domain.Membership) (*domain.Membership, error) {
				return m, nil
			})
		ledger.EXPECT().RaiseTierFloor(gomock.Any(), 1, domain.TierGold).Return(&domain.Balance{
			UserID: 1, Tier: domain.TierGold, TierFloor: domain.TierGold,
		}, nil)
		ledger.EXPECT().Credit(gomock.Any(), 1, 800, domain.SourceMembership, "gold", gomock.Any()).Return(&domain.Balance{
			UserID: 1, CurrentBalance: 800, Tier: domain.TierGold,
		}, nil)

		state, err := service.Activate(context.Background(), 1, "gold", domain.CycleMonthly)
		assert.NoError(t, err)
		assert.Equal(t, 800, state.BonusPoints)
		assert.WithinDuration(t, state.StartedAt.AddDate(0, 1, 0), state.ExpiresAt, time.Second)
	})

	t.Run("Unknown billing cycle rejected", func(t *testing.T) {
		service, _, _ := NewMock(t)

		_, err := service.Activate(context.Background(), 1, "gold", domain.BillingCycle("WEEKLY"))
		assert.ErrorIs(t, err, ErrInvalidBillingCycle)
	})

	t.Run("Unknown plan", func(t *testing.T) {
		service, membershipRepo, _ := NewMock(t)
		membershipRepo.EXPECT().GetPlanBySlug(gomock.Any(), "titanium").Return(nil, nil)

		_, err := service.Activate(context.Background(), 1, "titanium", domain.CycleAnnual)
		assert.ErrorIs(t, err, ErrPlanNotFound)
	})

	t.Run("Unknown user", func(t *testing.T) {
		service, membershipRepo, _ := NewMock(t)
		membershipRepo.EXPECT().GetPlanBySlug(gomock.Any(), "gold").Return(goldPlan(), nil)
		membershipRepo.EXPECT().GetUser(gomock.Any(), 99).Return(nil, nil)

		_, err := service.Activate(context.Background(), 99, "gold", domain.CycleAnnual)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestCurrent(t *testing.T) {
	t.Run("Active membership returned unchanged", func(t *testing.T) {
		service, membershipRepo, _ := NewMock(t)
		membershipRepo.EXPECT().GetMembership(gomock.Any(), 1).Return(&domain.Membership{
			UserID: 1, PlanSlug: "gold", Status: domain.MembershipActive,
			ExpiresAt: time.Now().Add(24 * time.Hour),
		}, nil)

		membership, err := service.Current(context.Background(), 1)
		assert.NoError(t, err)
		assert.Equal(t, domain.MembershipActive, membership.Status)
	})

	t.Run("Past expiry reported EXPIRED lazily", func(t *testing.T) {
		service, membershipRepo, _ := NewMock(t)
		membershipRepo.EXPECT().GetMembership(gomock.Any(), 1).Return(&domain.Membership{
			UserID: 1, PlanSlug: "gold", Status: domain.MembershipActive,
			ExpiresAt: time.Now().Add(-time.Hour),
		}, nil)

		membership, err := service.Current(context.Background(), 1)
		assert.NoError(t, err)
		assert.Equal(t, domain.MembershipExpired, membership.Status)
	})

	t.Run("No membership", func(t *testing.T) {
		service, membershipRepo, _ := NewMock(t)
		membershipRepo.EXPECT().GetMembership(gomock.Any(), 1).Return(nil, nil)

		membership, err := service.Current(context.Background(), 1)
		assert.NoError(t, err)
		assert.Nil(t, membership)
	})
}

func TestMergeFeatures(t *testing.T) {
	assert.Equal(t,
		[]string{"a", "b", "c"},
		mergeFeatures([]string{"a", "b"}, []string{"b", "c"}),
	)
	assert.Equal(t, []string{}, mergeFeatures(nil, nil))
}
