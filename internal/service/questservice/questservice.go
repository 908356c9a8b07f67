package questservice

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/homestayhq/loyalty/internal/domain"
	"github.com/homestayhq/loyalty/internal/pg"
	"go.uber.org/zap"
)

//go:generate mockgen -source=questservice.go -destination=mock_contracts.go -package=questservice

type QuestRepo interface {
	GetQuest(ctx context.Context, questID int) (*domain.Quest, error)
	FindActiveQuests(ctx context.Context) ([]domain.Quest, error)
	GetUserQuest(ctx context.Context, userID, questID int) (*domain.UserQuest, error)
	LockUserQuest(ctx context.Context, userID, questID int) (*domain.UserQuest, error)
	CreateUserQuest(ctx context.Context, uq *domain.UserQuest) (*domain.UserQuest, error)
	UpdateUserQuest(ctx context.Context, uq *domain.UserQuest) error
	AwardBadge(ctx context.Context, userID, badgeID int) (bool, error)
}

type Ledger interface {
	Credit(ctx context.Context, userID int, amount int, source domain.TxSource, relatedEntityID, description string) (*domain.Balance, error)
}

type Service struct {
	questRepo QuestRepo
	ledger    Ledger
	txManager pg.TXManager
	now       func() time.Time
}

func New(questRepo QuestRepo, ledger Ledger, txManager pg.TXManager) *Service {
	return &Service{
		questRepo: questRepo,
		ledger:    ledger,
		txManager: txManager,
		now:       time.Now,
	}
}

var (
	ErrQuestNotFound    = errors.New("quest not found")
	ErrQuestInactive    = errors.New("quest inactive")
	ErrInvalidIncrement = errors.New("increment must be positive")
	ErrInvalidCadence   = errors.New("invalid quest cadence")
)

const (
	dailyWindow  = 24 * time.Hour
	weeklyWindow = 168 * time.Hour
)

type ProgressResult struct {
	QuestID         int
	CurrentCount    int
	TargetCount     int
	IsCompleted     bool
	CompletedAt     *time.Time
	ProgressPercent float64
	AwardedPoints   int
	AwardedBadgeID  *int
}

func progressPercent(count, target int) float64 {
	percent := float64(count) / float64(target) * 100
	if percent > 100 {
		percent = 100
	}
	return percent
}

// resetWindow returns the cadence window, or 0 for one-shot quests.
func resetWindow(cadence domain.Cadence) (time.Duration, error) {
	switch cadence {
	case domain.CadenceDaily:
		return dailyWindow, nil
	case domain.CadenceWeekly:
		return weeklyWindow, nil
	case domain.CadenceNone:
		return 0, nil
	default:
		return 0, ErrInvalidCadence
	}
}

// RecordProgress advances a user's progress toward a quest. Completion pays
// out exactly once per cycle: the completed flag is read and flipped under a
// row lock in the same transaction as the ledger credit, so two concurrent
// calls cannot both trigger the payout.
func (s *Service) RecordProgress(ctx context.Context, userID, questID, increment int) (*ProgressResult, error) {
	if increment <= 0 {
		return nil, ErrInvalidIncrement
	}

	quest, err := s.questRepo.GetQuest(ctx, questID)
	if err != nil {
		return nil, err
	}
	if quest == nil {
		return nil, ErrQuestNotFound
	}
	if !quest.IsActive {
		return nil, ErrQuestInactive
	}
	window, err := resetWindow(quest.Cadence)
	if err != nil {
		return nil, err
	}

	var result *ProgressResult
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		now := s.now()

		uq, err := s.questRepo.LockUserQuest(ctx, userID, questID)
		if err != nil {
			return err
		}
		if uq == nil {
			uq, err = s.questRepo.CreateUserQuest(ctx, &domain.UserQuest{
				UserID:      userID,
				QuestID:     questID,
				LastResetAt: now,
			})
			if err != nil {
				return err
			}
		}

		shouldReset := window > 0 && now.Sub(uq.LastResetAt) >= window

		if uq.IsCompleted && !shouldReset {
			// Completed within the current cycle: idempotent no-op.
			result = &ProgressResult{
				QuestID:         questID,
				CurrentCount:    uq.CurrentCount,
				TargetCount:     quest.TargetCount,
				IsCompleted:     true,
				CompletedAt:     uq.CompletedAt,
				ProgressPercent: 100,
			}
			return nil
		}

		if shouldReset {
			// Stale progress does not carry over into the new cycle.
			uq.CurrentCount = increment
			uq.LastResetAt = now
			uq.IsCompleted = false
			uq.CompletedAt = nil
		} else {
			uq.CurrentCount += increment
		}

		completedNow := !uq.IsCompleted && uq.CurrentCount >= quest.TargetCount
		if completedNow {
			uq.IsCompleted = true
			uq.CompletedAt = &now
		}

		if err := s.questRepo.UpdateUserQuest(ctx, uq); err != nil {
			return err
		}

		result = &ProgressResult{
			QuestID:         questID,
			CurrentCount:    uq.CurrentCount,
			TargetCount:     quest.TargetCount,
			IsCompleted:     uq.IsCompleted,
			CompletedAt:     uq.CompletedAt,
			ProgressPercent: progressPercent(uq.CurrentCount, quest.TargetCount),
		}

		if !completedNow {
			return nil
		}

		if quest.RewardPoints > 0 {
			_, err := s.ledger.Credit(ctx, userID, quest.RewardPoints, domain.SourceQuest, strconv.Itoa(questID), "Quest completed: "+quest.Title)
			if err != nil {
				return err
			}
			result.AwardedPoints = quest.RewardPoints
		}
		if quest.RewardBadgeID != nil {
			awarded, err := s.questRepo.AwardBadge(ctx, userID, *quest.RewardBadgeID)
			if err != nil {
				return err
			}
			if awarded {
				result.AwardedBadgeID = quest.RewardBadgeID
			}
		}
		return nil
	})
	if err != nil {
		zap.L().Error("failed to record quest progress",
			zap.Int("userID", userID),
			zap.Int("questID", questID),
			zap.Error(err),
		)
		return nil, err
	}

	if result.AwardedPoints > 0 {
		zap.L().Info("quest completed",
			zap.Int("userID", userID),
			zap.Int("questID", questID),
			zap.Int("rewardPoints", result.AwardedPoints),
		)
	}
	return result, nil
}

// Progress returns the current cycle's progress without writing. An elapsed
// reset window is reported as a fresh cycle; the row itself resets on the
// next progress event.
func (s *Service) Progress(ctx context.Context, userID, questID int) (*ProgressResult, error) {
	quest, err := s.questRepo.GetQuest(ctx, questID)
	if err != nil {
		return nil, err
	}
	if quest == nil {
		return nil, ErrQuestNotFound
	}
	window, err := resetWindow(quest.Cadence)
	if err != nil {
		return nil, err
	}

	uq, err := s.questRepo.GetUserQuest(ctx, userID, questID)
	if err != nil {
		return nil, err
	}

	result := &ProgressResult{
		QuestID:     questID,
		TargetCount: quest.TargetCount,
	}
	if uq == nil {
		return result, nil
	}

	if window > 0 && s.now().Sub(uq.LastResetAt) >= window {
		return result, nil
	}

	result.CurrentCount = uq.CurrentCount
	result.IsCompleted = uq.IsCompleted
	result.CompletedAt = uq.CompletedAt
	result.ProgressPercent = progressPercent(uq.CurrentCount, quest.TargetCount)
	return result, nil
}

// QuestWithProgress pairs a quest definition with the caller's progress.
type QuestWithProgress struct {
	Quest    domain.Quest
	Progress ProgressResult
}

// ActiveQuests lists active quests annotated with the caller's progress.
func (s *Service) ActiveQuests(ctx context.Context, userID int) ([]QuestWithProgress, error) {
	quests, err := s.questRepo.FindActiveQuests(ctx)
	if err != nil {
		zap.L().Error("failed to fetch active quests", zap.Error(err))
		return nil, err
	}

	out := make([]QuestWithProgress, 0, len(quests))
	for _, quest := range quests {
		progress, err := s.Progress(ctx, userID, quest.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, QuestWithProgress{Quest: quest, Progress: *progress})
	}
	return out, nil
}
