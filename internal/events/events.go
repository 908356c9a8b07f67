package events

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/homestayhq/loyalty/internal/config"
	"github.com/homestayhq/loyalty/internal/domain"
	"github.com/homestayhq/loyalty/internal/pg"
	"github.com/homestayhq/loyalty/internal/service/tierservice"
)

//go:generate mockgen -source=events.go -destination=mock_contracts.go -package=events

type Repo interface {
	Save(ctx context.Context, event *domain.LoyaltyEvent) (bool, error)
	FindForProcessing(ctx context.Context, limit uint32) ([]domain.LoyaltyEvent, error)
	MarkProcessed(ctx context.Context, eventID string, status domain.EventStatus) (bool, error)
}

type Ledger interface {
	BalanceOf(ctx context.Context, userID int) (*domain.Balance, error)
	Credit(ctx context.Context, userID int, amount int, source domain.TxSource, relatedEntityID, description string) (*domain.Balance, error)
}

var (
	ErrInvalidEventID   = errors.New("event id must be a uuid")
	ErrUnknownEventType = errors.New("unknown event type")
)

// basePoints holds the fixed credit per lifecycle event type, before the tier
// multiplier is applied.
var basePoints = map[domain.EventType]int{
	domain.EventBookingCompleted: 500,
	domain.EventReviewWritten:    150,
	domain.EventReferral:         300,
	domain.EventProfileCompleted: 100,
}

var eventSources = map[domain.EventType]domain.TxSource{
	domain.EventBookingCompleted: domain.SourceBooking,
	domain.EventReviewWritten:    domain.SourceReview,
	domain.EventReferral:         domain.SourceReferral,
	domain.EventProfileCompleted: domain.SourceAdjustment,
}

var processingEvents sync.Map

// Dispatcher drains the lifecycle-event inbox and turns each NEW event into
// exactly one ledger credit.
type Dispatcher struct {
	repo           Repo
	ledger         Ledger
	txManager      pg.TXManager
	limit          uint32
	workerPool     WorkerPoolI
	updateInterval time.Duration
}

func New(cfg *config.Config, repo Repo, ledger Ledger, txManager pg.TXManager) *Dispatcher {
	return &Dispatcher{
		repo:           repo,
		ledger:         ledger,
		txManager:      txManager,
		limit:          1000,
		workerPool:     NewWorkerPool(cfg.EventWorkers),
		updateInterval: cfg.EventInterval,
	}
}

// Enqueue validates and stores an incoming lifecycle event. Returns false
// when the event id was already seen.
func (d *Dispatcher) Enqueue(ctx context.Context, id string, userID int, eventType domain.EventType, refID string, occurredAt time.Time) (bool, error) {
	if _, err := uuid.Parse(id); err != nil {
		return false, ErrInvalidEventID
	}
	if _, ok := basePoints[eventType]; !ok {
		return false, ErrUnknownEventType
	}
	if occurredAt.IsZero() {
		occurredAt = time.Now()
	}

	inserted, err := d.repo.Save(ctx, &domain.LoyaltyEvent{
		ID:         id,
		UserID:     userID,
		EventType:  eventType,
		RefID:      refID,
		Status:     domain.EventStatusNew,
		OccurredAt: occurredAt,
	})
	if err != nil {
		return false, err
	}
	if !inserted {
		zap.L().Info("duplicate event ignored", zap.String("eventID", id))
	}
	return inserted, nil
}

func (d *Dispatcher) Start(ctx context.Context) {
	zap.L().Info("Event dispatcher started")
	go d.run(ctx)
}

func (d *Dispatcher) run(ctx context.Context) {
	ticker := time.NewTicker(d.updateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping dispatcher")
			return
		case <-ticker.C:
			d.processEvents(ctx)
		}
	}
}

func (d *Dispatcher) processEvents(ctx context.Context) {
	events, err := d.repo.FindForProcessing(ctx, atomic.LoadUint32(&d.limit))
	if err != nil {
		zap.L().Error("Failed to fetch events for processing", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, event := range events {
		event := event

		if _, loaded := processingEvents.LoadOrStore(event.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := d.workerPool.AddTask(ctx, func() error {
				defer processingEvents.Delete(event.ID)
				return d.handleEvent(ctx, event)
			})
			if err != nil {
				processingEvents.Delete(event.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error processing events", zap.Error(err))
	}
}

// handleEvent settles one inbox row. The NEW→PROCESSED flip and the ledger
// credit share a transaction; a row that lost the flip race is skipped, so
// each event id credits at most once.
func (d *Dispatcher) handleEvent(ctx context.Context, event domain.LoyaltyEvent) error {
	base, ok := basePoints[event.EventType]
	if !ok {
		if _, err := d.repo.MarkProcessed(ctx, event.ID, domain.EventStatusInvalid); err != nil {
			return err
		}
		zap.L().Warn("Unrecognized event type", zap.String("eventID", event.ID), zap.String("type", string(event.EventType)))
		return nil
	}

	balance, err := d.ledger.BalanceOf(ctx, event.UserID)
	if err != nil {
		return fmt.Errorf("failed to resolve balance for user %d: %w", event.UserID, err)
	}
	multiplier := tierservice.Lookup(balance.Tier).BonusMultiplier
	amount := int(math.Round(float64(base) * multiplier))

	return d.txManager.Begin(ctx, func(ctx context.Context) error {
		settled, err := d.repo.MarkProcessed(ctx, event.ID, domain.EventStatusProcessed)
		if err != nil {
			return err
		}
		if !settled {
			return nil
		}

		description := fmt.Sprintf("Points for %s", event.EventType)
		if _, err := d.ledger.Credit(ctx, event.UserID, amount, eventSources[event.EventType], event.RefID, description); err != nil {
			return fmt.Errorf("failed to credit user %d for event %s: %w", event.UserID, event.ID, err)
		}

		zap.L().Info("Event credited",
			zap.String("eventID", event.ID),
			zap.Int("userID", event.UserID),
			zap.Int("amount", amount),
		)
		return nil
	})
}
