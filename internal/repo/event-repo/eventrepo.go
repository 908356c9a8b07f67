package eventrepo

import (
	"context"

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

// Save inserts an inbox row. The producer-supplied UUID is the primary key,
// so a duplicate delivery is a no-op; returns false for duplicates.
func (r *Repository) Save(ctx context.Context, event *domain.LoyaltyEvent) (bool, error) {
	query := `
        INSERT INTO loyalty_events (id, user_id, event_type, ref_id, status, occurred_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        ON CONFLICT (id) DO NOTHING
    `
	tag, err := r.db.Exec(ctx, query,
		event.ID, event.UserID, event.EventType, event.RefID, event.Status, event.OccurredAt,
	)
	if err != nil {
		zap.L().Error("can't save loyalty event", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) FindForProcessing(ctx context.Context, limit uint32) ([]domain.LoyaltyEvent, error) {
	query := `
        SELECT id, user_id, event_type, ref_id, status, occurred_at, processed_at
        FROM loyalty_events
        WHERE status = 'NEW'
        ORDER BY occurred_at ASC
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, int(limit))
	if err != nil {
		zap.L().Error("can't get events for processing", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var events []domain.LoyaltyEvent
	for rows.Next() {
		var e domain.LoyaltyEvent
		err := rows.Scan(&e.ID, &e.UserID, &e.EventType, &e.RefID, &e.Status, &e.OccurredAt, &e.ProcessedAt)
		if err != nil {
			zap.L().Error("can't scan event row", zap.Error(err))
			return nil, err
		}
		events = append(events, e)
	}
	return events, nil
}

// MarkProcessed flips an event out of NEW. Only NEW rows transition, so a
// duplicate dispatch attempt cannot double-credit; returns false when the
// event was already settled.
func (r *Repository) MarkProcessed(ctx context.Context, eventID string, status domain.EventStatus) (bool, error) {
	query := `
        UPDATE loyalty_events
        SET status = $2, processed_at = now()
        WHERE id = $1 AND status = 'NEW'
    `
	tag, err := r.db.Exec(ctx, query, eventID, status)
	if err != nil {
		zap.L().Error("failed to mark event processed", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
