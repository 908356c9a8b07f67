package membershiprepo

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/homestayhq/loyalty/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()
	return repo, mockDB
}

func TestRepository_GetPlanBySlug(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("Existing plan returned", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`FROM membership_plans`)).
			WithArgs("gold").
			WillReturnRows(pgxmock.NewRows([]string{"id", "slug", "name", "features", "exclusive_features", "monthly_price", "annual_price", "color", "icon"}).
				AddRow(2, "gold", "Gold", []string{"early_checkin"}, []string{"free_breakfast"}, 999, 9990, "#FFD700", "crown"))

		plan, err := repo.GetPlanBySlug(context.Background(), "gold")
		assert.NoError(t, err)
		assert.Equal(t, "Gold", plan.Name)
		assert.Equal(t, []string{"early_checkin"}, plan.Features)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Missing plan returns nil", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`FROM membership_plans`)).
			WithArgs("titanium").
			WillReturnError(pgx.ErrNoRows)

		plan, err := repo.GetPlanBySlug(context.Background(), "titanium")
		assert.NoError(t, err)
		assert.Nil(t, plan)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_GetUser(t *testing.T) {
	repo, mock := NewMock(t)

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta(`FROM users`)).
		WithArgs(1).
		WillReturnRows(pgxmock.NewRows([]string{"id", "email", "created_at"}).
			AddRow(1, "guest@example.com", now))

	user, err := repo.GetUser(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, "guest@example.com", user.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetMembership(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("Existing membership returned", func(t *testing.T) {
		now := time.Now()
		mock.ExpectQuery(regexp.QuoteMeta(`FROM memberships`)).
			WithArgs(1).
			WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "plan_slug", "status", "billing_cycle", "started_at", "expires_at", "features", "tier"}).
				AddRow(4, 1, "gold", domain.MembershipActive, domain.CycleAnnual, now, now.AddDate(1, 0, 0), []string{"early_checkin"}, domain.TierGold))

		membership, err := repo.GetMembership(context.Background(), 1)
		assert.NoError(t, err)
		assert.Equal(t, "gold", membership.PlanSlug)
		assert.Equal(t, domain.TierGold, membership.Tier)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("No membership returns nil", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`FROM memberships`)).
			WithArgs(2).
			WillReturnError(pgx.ErrNoRows)

		membership, err := repo.GetMembership(context.Background(), 2)
		assert.NoError(t, err)
		assert.Nil(t, membership)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_UpsertMembership(t *testing.T) {
	repo, mock := NewMock(t)

	now := time.Now()
	m := &domain.Membership{
		UserID: 1, PlanSlug: "gold", Status: domain.MembershipActive,
		BillingCycle: domain.CycleAnnual, StartedAt: now, ExpiresAt: now.AddDate(1, 0, 0),
		Features: []string{"early_checkin"}, Tier: domain.TierGold,
	}

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO memberships`)).
		WithArgs(1, "gold", domain.MembershipActive, domain.CycleAnnual, now, m.ExpiresAt, m.Features, domain.TierGold).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(4))

	saved, err := repo.UpsertMembership(context.Background(), m)
	assert.NoError(t, err)
	assert.Equal(t, 4, saved.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
