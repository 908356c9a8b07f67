package membershiprepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/homestayhq/loyalty/internal/domain"
	"github.com/homestayhq/loyalty/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) GetPlanBySlug(ctx context.Context, slug string) (*domain.MembershipPlan, error) {
	query := `
        SELECT id, slug, name, features, exclusive_features, monthly_price, annual_price, color, icon
        FROM membership_plans
        WHERE slug = $1
    `
	var plan domain.MembershipPlan
	err := r.db.QueryRow(ctx, query, slug).Scan(
		&plan.ID, &plan.Slug, &plan.Name, &plan.Features, &plan.ExclusiveFeatures,
		&plan.MonthlyPrice, &plan.AnnualPrice, &plan.Color, &plan.Icon,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find membership plan", zap.Error(err))
		return nil, err
	}
	return &plan, nil
}

func (r *Repository) GetUser(ctx context.Context, userID int) (*domain.User, error) {
	query := `
        SELECT id, email, created_at
        FROM users
        WHERE id = $1
    `
	var user domain.User
	err := r.db.QueryRow(ctx, query, userID).Scan(&user.ID, &user.Email, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (r *Repository) GetMembership(ctx context.Context, userID int) (*domain.Membership, error) {
	query := `
        SELECT id, user_id, plan_slug, status, billing_cycle, started_at, expires_at, features, tier
        FROM memberships
        WHERE user_id = $1
    `
	var m domain.Membership
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&m.ID, &m.UserID, &m.PlanSlug, &m.Status, &m.BillingCycle,
		&m.StartedAt, &m.ExpiresAt, &m.Features, &m.Tier,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find membership", zap.Error(err))
		return nil, err
	}
	return &m, nil
}

func (r *Repository) UpsertMembership(ctx context.Context, m *domain.Membership) (*domain.Membership, error) {
	query := `
        INSERT INTO memberships (user_id, plan_slug, status, billing_cycle, started_at, expires_at, features, tier)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        ON CONFLICT (user_id) DO UPDATE
        SET plan_slug = EXCLUDED.plan_slug,
            status = EXCLUDED.status,
            billing_cycle = EXCLUDED.billing_cycle,
            started_at = EXCLUDED.started_at,
            expires_at = EXCLUDED.expires_at,
            features = EXCLUDED.features,
            tier = EXCLUDED.tier
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query,
		m.UserID, m.PlanSlug, m.Status, m.BillingCycle, m.StartedAt, m.ExpiresAt, m.Features, m.Tier,
	).Scan(&m.ID)
	if err != nil {
		zap.L().Error("can't upsert membership", zap.Error(err))
		return nil, err
	}
	return m, nil
}
