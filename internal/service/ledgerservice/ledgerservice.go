package ledgerservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/homestayhq/loyalty/internal/domain"
	"github.com/homestayhq/loyalty/internal/pg"
	"github.com/homestayhq/loyalty/internal/service/tierservice"
	"go.uber.org/zap"
)

//go:generate mockgen -source=ledgerservice.go -destination=mock_repo.go -package=ledgerservice

type Repo interface {
	EnsureBalance(ctx context.Context, userID int) error
	GetBalance(ctx context.Context, userID int) (*domain.Balance, error)
	LockBalance(ctx context.Context, userID int) (*domain.Balance, error)
	ApplyDelta(ctx context.Context, userID int, delta int) (*domain.Balance, error)
	UpdateTier(ctx context.Context, userID int, tier domain.Tier) error
	SetTierFloor(ctx context.Context, userID int, floor domain.Tier) error
	SaveTransaction(ctx context.Context, tx *domain.LedgerTransaction) (*domain.LedgerTransaction, error)
	FindTransactions(ctx context.Context, userID int, f HistoryFilter) ([]domain.LedgerTransaction, int, error)
	SumTransactions(ctx context.Context, userID int) (int, error)
}

type Service struct {
	repo      Repo
	txManager pg.TXManager
}

func New(repo Repo, txManager pg.TXManager) *Service {
	return &Service{
		repo:      repo,
		txManager: txManager,
	}
}

var (
	ErrInvalidAmount = errors.New("amount must be positive")
)

// InsufficientBalanceError carries the amounts needed to render a precise
// user-facing message.
type InsufficientBalanceError struct {
	Required  int
	Available int
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance: required %d, available %d", e.Required, e.Available)
}

type HistoryFilter struct {
	Source *domain.TxSource
	From   *time.Time
	To     *time.Time
	Page   int
	Limit  int
}

type Summary struct {
	TotalEarned    int
	TotalSpent     int
	CurrentBalance int
}

// Credit appends a positive transaction and returns the updated balance.
func (s *Service) Credit(ctx context.Context, userID int, amount int, source domain.TxSource, relatedEntityID, description string) (*domain.Balance, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	return s.applyChange(ctx, userID, amount, source, relatedEntityID, description)
}

// Debit appends a negative transaction after checking sufficiency; the check
// and the append run in one transaction against the locked balance row, so
// two concurrent debits can never both succeed past the available balance.
func (s *Service) Debit(ctx context.Context, userID int, amount int, source domain.TxSource, relatedEntityID, description string) (*domain.Balance, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	return s.applyChange(ctx, userID, -amount, source, relatedEntityID, description)
}

func (s *Service) applyChange(ctx context.Context, userID int, delta int, source domain.TxSource, relatedEntityID, description string) (*domain.Balance, error) {
	var result *domain.Balance

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.repo.EnsureBalance(ctx, userID); err != nil {
			return err
		}

		balance, err := s.repo.LockBalance(ctx, userID)
		if err != nil {
			return err
		}
		if balance == nil {
			return fmt.Errorf("balance row missing for user %d", userID)
		}
		if balance.CurrentBalance+delta < 0 {
			return &InsufficientBalanceError{
				Required:  -delta,
				Available: balance.CurrentBalance,
			}
		}

		updated, err := s.repo.ApplyDelta(ctx, userID, delta)
		if err != nil {
			return err
		}
		if updated == nil {
			// Guard in SQL rejected the move despite the row lock.
			return &InsufficientBalanceError{
				Required:  -delta,
				Available: balance.CurrentBalance,
			}
		}

		tx := &domain.LedgerTransaction{
			UserID:          userID,
			Amount:          delta,
			Source:          source,
			BalanceAfter:    updated.CurrentBalance,
			RelatedEntityID: relatedEntityID,
			Description:     description,
			CreatedAt:       time.Now(),
		}
		if _, err := s.repo.SaveTransaction(ctx, tx); err != nil {
			return err
		}

		if next := tierservice.Effective(updated.CurrentBalance, updated.TierFloor); next != updated.Tier {
			if err := s.repo.UpdateTier(ctx, userID, next); err != nil {
				return err
			}
			updated.Tier = next
		}

		result = updated
		return nil
	})
	if err != nil {
		var insufficient *InsufficientBalanceError
		if !errors.As(err, &insufficient) && !errors.Is(err, ErrInvalidAmount) {
			zap.L().Error("ledger change failed",
				zap.Int("userID", userID),
				zap.Int("delta", delta),
				zap.Error(err),
			)
		}
		return nil, err
	}
	return result, nil
}

// BalanceOf returns the user's balance, creating a zero row on first use.
func (s *Service) BalanceOf(ctx context.Context, userID int) (*domain.Balance, error) {
	balance, err := s.repo.GetBalance(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get balance", zap.Error(err))
		return nil, err
	}
	if balance != nil {
		return balance, nil
	}

	if err := s.repo.EnsureBalance(ctx, userID); err != nil {
		return nil, err
	}
	balance, err = s.repo.GetBalance(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get balance after create", zap.Error(err))
		return nil, err
	}
	return balance, nil
}

// History returns the paginated reverse-chronological transaction list with a
// running summary.
func (s *Service) History(ctx context.Context, userID int, f HistoryFilter) ([]domain.LedgerTransaction, *Summary, int, error) {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 100 {
		f.Limit = 20
	}

	txs, total, err := s.repo.FindTransactions(ctx, userID, f)
	if err != nil {
		zap.L().Error("failed to fetch history", zap.Error(err))
		return nil, nil, 0, err
	}

	balance, err := s.BalanceOf(ctx, userID)
	if err != nil {
		return nil, nil, 0, err
	}

	summary := &Summary{
		TotalEarned:    balance.TotalEarned,
		TotalSpent:     balance.TotalSpent,
		CurrentBalance: balance.CurrentBalance,
	}
	return txs, summary, total, nil
}

// RaiseTierFloor lifts the membership tier override. The floor is monotonic:
// a lower-ranked floor leaves the row untouched.
func (s *Service) RaiseTierFloor(ctx context.Context, userID int, floor domain.Tier) (*domain.Balance, error) {
	var result *domain.Balance

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.repo.EnsureBalance(ctx, userID); err != nil {
			return err
		}
		balance, err := s.repo.LockBalance(ctx, userID)
		if err != nil {
			return err
		}
		if balance == nil {
			return fmt.Errorf("balance row missing for user %d", userID)
		}

		if floor.Rank() > balance.TierFloor.Rank() {
			if err := s.repo.SetTierFloor(ctx, userID, floor); err != nil {
				return err
			}
			balance.TierFloor = floor
		}

		if next := tierservice.Effective(balance.CurrentBalance, balance.TierFloor); next != balance.Tier {
			if err := s.repo.UpdateTier(ctx, userID, next); err != nil {
				return err
			}
			balance.Tier = next
		}

		result = balance
		return nil
	})
	if err != nil {
		zap.L().Error("failed to raise tier floor", zap.Int("userID", userID), zap.Error(err))
		return nil, err
	}
	return result, nil
}

// Reconcile recomputes the balance from the transaction log and reports a
// mismatch with the cached checkpoint.
func (s *Service) Reconcile(ctx context.Context, userID int) (bool, error) {
	balance, err := s.BalanceOf(ctx, userID)
	if err != nil {
		return false, err
	}
	sum, err := s.repo.SumTransactions(ctx, userID)
	if err != nil {
		return false, err
	}
	if sum != balance.CurrentBalance {
		zap.L().Error("ledger checkpoint mismatch",
			zap.Int("userID", userID),
			zap.Int("cached", balance.CurrentBalance),
			zap.Int("derived", sum),
		)
		return false, nil
	}
	return true, nil
}
