package eventrepo

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/homestayhq/loyalty/internal/domain"
)

const eventID = "3e7c1f4e-9a2b-4c8d-b5e6-1f2a3b4c5d6e"

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()
	return repo, mockDB
}

func TestRepository_Save(t *testing.T) {
	repo, mock := NewMock(t)

	now := time.Now()
	event := &domain.LoyaltyEvent{
		ID: eventID, UserID: 1, EventType: domain.EventBookingCompleted,
		RefID: "booking-42", Status: domain.EventStatusNew, OccurredAt: now,
	}

	t.Run("Fresh id inserts", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO loyalty_events`)).
			WithArgs(eventID, 1, domain.EventBookingCompleted, "booking-42", domain.EventStatusNew, now).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		inserted, err := repo.Save(context.Background(), event)
		assert.NoError(t, err)
		assert.True(t, inserted)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Duplicate id is a no-op", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO loyalty_events`)).
			WithArgs(eventID, 1, domain.EventBookingCompleted, "booking-42", domain.EventStatusNew, now).
			WillReturnResult(pgxmock.NewResult("INSERT", 0))

		inserted, err := repo.Save(context.Background(), event)
		assert.NoError(t, err)
		assert.False(t, inserted)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_FindForProcessing(t *testing.T) {
	repo, mock := NewMock(t)

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta(`FROM loyalty_events`)).
		WithArgs(1000).
		WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "event_type", "ref_id", "status", "occurred_at", "processed_at"}).
			AddRow(eventID, 1, domain.EventBookingCompleted, "booking-42", domain.EventStatusNew, now, (*time.Time)(nil)))

	events, err := repo.FindForProcessing(context.Background(), 1000)
	assert.NoError(t, err)
	assert.Len(t, events, 1)
	assert.Equal(t, eventID, events[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_MarkProcessed(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("NEW row settles", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE loyalty_events`)).
			WithArgs(eventID, domain.EventStatusProcessed).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		settled, err := repo.MarkProcessed(context.Background(), eventID, domain.EventStatusProcessed)
		assert.NoError(t, err)
		assert.True(t, settled)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Already settled row does not transition", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE loyalty_events`)).
			WithArgs(eventID, domain.EventStatusProcessed).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		settled, err := repo.MarkProcessed(context.Background(), eventID, domain.EventStatusProcessed)
		assert.NoError(t, err)
		assert.False(t, settled)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
