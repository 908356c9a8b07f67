package questrepo

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

func scanUserQuest(row pgx.Row) (*domain.UserQuest, error) {
	var uq domain.UserQuest
	err := row.Scan(&uq.ID, &uq.UserID, &uq.QuestID, &uq.CurrentCount, &uq.IsCompleted, &uq.CompletedAt, &uq.LastResetAt)
	if err != nil {
		return nil, err
	}
	return &uq, nil
}

func (r *Repository) GetQuest(ctx context.Context, questID int) (*domain.Quest, error) {
	query := `
        SELECT id, title, description, target_count, cadence, reward_points, reward_badge_id, is_active
        FROM quests
        WHERE id = $1
    `
	var q domain.Quest
	err := r.db.QueryRow(ctx, query, questID).Scan(
		&q.ID, &q.Title, &q.Description, &q.TargetCount, &q.Cadence, &q.RewardPoints, &q.RewardBadgeID, &q.IsActive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find quest", zap.Error(err))
		return nil, err
	}
	return &q, nil
}

func (r *Repository) FindActiveQuests(ctx context.Context) ([]domain.Quest, error) {
	query := `
        SELECT id, title, description, target_count, cadence, reward_points, reward_badge_id, is_active
        FROM quests
        WHERE is_active
        ORDER BY id ASC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get active quests", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var quests []domain.Quest
	for rows.Next() {
		var q domain.Quest
		err := rows.Scan(&q.ID, &q.Title, &q.Description, &q.TargetCount, &q.Cadence, &q.RewardPoints, &q.RewardBadgeID, &q.IsActive)
		if err != nil {
			zap.L().Error("can't scan quest row", zap.Error(err))
			return nil, err
		}
		quests = append(quests, q)
	}
	return quests, nil
}

func (r *Repository) GetUserQuest(ctx context.Context, userID, questID int) (*domain.UserQuest, error) {
	query := `
        SELECT id, user_id, quest_id, current_count, is_completed, completed_at, last_reset_at
        FROM user_quests
        WHERE user_id = $1 AND quest_id = $2
    `
	uq, err := scanUserQuest(r.db.QueryRow(ctx, query, userID, questID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find user quest", zap.Error(err))
		return nil, err
	}
	return uq, nil
}

// LockUserQuest reads the progress row under FOR UPDATE; callers must hold an
// open transaction.
func (r *Repository) LockUserQuest(ctx context.Context, userID, questID int) (*domain.UserQuest, error) {
	query := `
        SELECT id, user_id, quest_id, current_count, is_completed, completed_at, last_reset_at
        FROM user_quests
        WHERE user_id = $1 AND quest_id = $2
        FOR UPDATE
    `
	uq, err := scanUserQuest(r.db.QueryRow(ctx, query, userID, questID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't lock user quest", zap.Error(err))
		return nil, err
	}
	return uq, nil
}

func (r *Repository) CreateUserQuest(ctx context.Context, uq *domain.UserQuest) (*domain.UserQuest, error) {
	query := `
        INSERT INTO user_quests (user_id, quest_id, current_count, is_completed, completed_at, last_reset_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        ON CONFLICT (user_id, quest_id) DO UPDATE SET user_id = EXCLUDED.user_id
        RETURNING id, user_id, quest_id, current_count, is_completed, completed_at, last_reset_at
    `
	created, err := scanUserQuest(r.db.QueryRow(ctx, query,
		uq.UserID, uq.QuestID, uq.CurrentCount, uq.IsCompleted, uq.CompletedAt, uq.LastResetAt,
	))
	if err != nil {
		zap.L().Error("can't create user quest", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) UpdateUserQuest(ctx context.Context, uq *domain.UserQuest) error {
	query := `
        UPDATE user_quests
        SET current_count = $3, is_completed = $4, completed_at = $5, last_reset_at = $6
        WHERE user_id = $1 AND quest_id = $2
    `
	_, err := r.db.Exec(ctx, query, uq.UserID, uq.QuestID, uq.CurrentCount, uq.IsCompleted, uq.CompletedAt, uq.LastResetAt)
	if err != nil {
		zap.L().Error("failed to update user quest", zap.Error(err))
		return err
	}
	return nil
}

// AwardBadge upserts the (user, badge) pair. Returns false when the badge was
// already held; the award is idempotent.
func (r *Repository) AwardBadge(ctx context.Context, userID, badgeID int) (bool, error) {
	query := `
        INSERT INTO user_badges (user_id, badge_id)
        VALUES ($1, $2)
        ON CONFLICT (user_id, badge_id) DO NOTHING
    `
	tag, err := r.db.Exec(ctx, query, userID, badgeID)
	if err != nil {
		zap.L().Error("failed to award badge", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
