package ledgerservice

import (
	"context"
	"errors"
	"testing"

	"github.com/homestayhq/loyalty/internal/domain"
	"github.com/homestayhq/loyalty/internal/pg"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	).AnyTimes()
	service := New(repo, txManager)
	defer ctrl.Finish()
	return service, repo
}

func TestCredit(t *testing.T) {
	service, repo := NewMock(t)

	tests := []struct {
		name            string
		userID          int
		amount          int
		prepareMock     func()
		expectedBalance *domain.Balance
		expectedError   error
	}{
		{
			name:   "Credit within the same tier band",
			userID: 1,
			amount: 500,
			prepareMock: func() {
				repo.EXPECT().EnsureBalance(gomock.Any(), 1).Return(nil)
				repo.EXPECT().LockBalance(gomock.Any(), 1).Return(&domain.Balance{
					UserID: 1, CurrentBalance: 100, Tier: domain.TierBronze,
				}, nil)
				repo.EXPECT().ApplyDelta(gomock.Any(), 1, 500).Return(&domain.Balance{
					UserID: 1, CurrentBalance: 600, TotalEarned: 600, Tier: domain.TierBronze,
				}, nil)
				repo.EXPECT().SaveTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, tx *domain.LedgerTransaction) (*domain.LedgerTransaction, error) {
						assert.Equal(t, 500, tx.Amount)
						assert.Equal(t, domain.SourceBooking, tx.Source)
						assert.Equal(t, 600, tx.BalanceAfter)
						return tx, nil
					})
			},
			expectedBalance: &domain.Balance{
				UserID: 1, CurrentBalance: 600, TotalEarned: 600, Tier: domain.TierBronze,
			},
		},
		{
			name:   "Credit crossing a tier boundary updates the tier",
			userID: 1,
			amount: 200,
			prepareMock: func() {
				repo.EXPECT().EnsureBalance(gomock.Any(), 1).Return(nil)
				repo.EXPECT().LockBalance(gomock.Any(), 1).Return(&domain.Balance{
					UserID: 1, CurrentBalance: 900, Tier: domain.TierBronze,
				}, nil)
				repo.EXPECT().ApplyDelta(gomock.Any(), 1, 200).Return(&domain.Balance{
					UserID: 1, CurrentBalance: 1100, TotalEarned: 1100, Tier: domain.TierBronze,
				}, nil)
				repo.EXPECT().SaveTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, tx *domain.LedgerTransaction) (*domain.LedgerTransaction, error) {
						return tx, nil
					})
				repo.EXPECT().UpdateTier(gomock.Any(), 1, domain.TierSilver).Return(nil)
			},
			expectedBalance: &domain.Balance{
				UserID: 1, CurrentBalance: 1100, TotalEarned: 1100, Tier: domain.TierSilver,
			},
		},
		{
			name:          "Zero amount rejected",
			userID:        1,
			amount:        0,
			expectedError: ErrInvalidAmount,
		},
		{
			name:          "Negative amount rejected",
			userID:        1,
			amount:        -10,
			expectedError: ErrInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			balance, err := service.Credit(context.Background(), tt.userID, tt.amount, domain.SourceBooking, "42", "Points for booking")
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, balance)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedBalance, balance)
			}
		})
	}
}

func TestDebit(t *testing.T) {
	service, repo := NewMock(t)

	t.Run("Debit below zero fails with amounts attached", func(t *testing.T) {
		repo.EXPECT().EnsureBalance(gomock.Any(), 1).Return(nil)
		repo.EXPECT().LockBalance(gomock.Any(), 1).Return(&domain.Balance{
			UserID: 1, CurrentBalance: 100, Tier: domain.TierBronze,
		}, nil)

		balance, err := service.Debit(context.Background(), 1, 150, domain.SourceCatalogRedemption, "7", "Redeemed reward")
		assert.Nil(t, balance)

		var insufficient *InsufficientBalanceError
		assert.ErrorAs(t, err, &insufficient)
		assert.Equal(t, 150, insufficient.Required)
		assert.Equal(t, 100, insufficient.Available)
	})

	t.Run("Exact balance debits to zero", func(t *testing.T) {
		repo.EXPECT().EnsureBalance(gomock.Any(), 1).Return(nil)
		repo.EXPECT().LockBalance(gomock.Any(), 1).Return(&domain.Balance{
			UserID: 1, CurrentBalance: 100, TotalEarned: 100, Tier: domain.TierBronze,
		}, nil)
		repo.EXPECT().ApplyDelta(gomock.Any(), 1, -100).Return(&domain.Balance{
			UserID: 1, CurrentBalance: 0, TotalEarned: 100, TotalSpent: 100, Tier: domain.TierBronze,
		}, nil)
		repo.EXPECT().SaveTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, tx *domain.LedgerTransaction) (*domain.LedgerTransaction, error) {
				assert.Equal(t, -100, tx.Amount)
				assert.Equal(t, 0, tx.BalanceAfter)
				return tx, nil
			})

		balance, err := service.Debit(context.Background(), 1, 100, domain.SourceCatalogRedemption, "7", "Redeemed reward")
		assert.NoError(t, err)
		assert.Equal(t, 0, balance.CurrentBalance)
	})

	t.Run("Guard rejection surfaces as insufficient balance", func(t *testing.T) {
		repo.EXPECT().EnsureBalance(gomock.Any(), 1).Return(nil)
		repo.EXPECT().LockBalance(gomock.Any(), 1).Return(&domain.Balance{
			UserID: 1, CurrentBalance: 100, Tier: domain.TierBronze,
		}, nil)
		repo.EXPECT().ApplyDelta(gomock.Any(), 1, -50).Return(nil, nil)

		balance, err := service.Debit(context.Background(), 1, 50, domain.SourceCatalogRedemption, "7", "Redeemed reward")
		assert.Nil(t, balance)

		var insufficient *InsufficientBalanceError
		assert.ErrorAs(t, err, &insufficient)
	})
}

func TestBalanceOf(t *testing.T) {
	service, repo := NewMock(t)

	t.Run("Existing balance returned as is", func(t *testing.T) {
		repo.EXPECT().GetBalance(gomock.Any(), 1).Return(&domain.Balance{
			UserID: 1, CurrentBalance: 250, Tier: domain.TierBronze,
		}, nil)

		balance, err := service.BalanceOf(context.Background(), 1)
		assert.NoError(t, err)
		assert.Equal(t, 250, balance.CurrentBalance)
	})

	t.Run("Missing row created with zero balance", func(t *testing.T) {
		repo.EXPECT().GetBalance(gomock.Any(), 2).Return(nil, nil)
		repo.EXPECT().EnsureBalance(gomock.Any(), 2).Return(nil)
		repo.EXPECT().GetBalance(gomock.Any(), 2).Return(&domain.Balance{
			UserID: 2, CurrentBalance: 0, Tier: domain.TierBronze,
		}, nil)

		balance, err := service.BalanceOf(context.Background(), 2)
		assert.NoError(t, err)
		assert.Equal(t, 0, balance.CurrentBalance)
		assert.Equal(t, domain.TierBronze, balance.Tier)
	})

	t.Run("Repo error propagates", func(t *testing.T) {
		repo.EXPECT().GetBalance(gomock.Any(), 3).Return(nil, errors.New("db error"))

		balance, err := service.BalanceOf(context.Background(), 3)
		assert.Error(t, err)
		assert.Nil(t, balance)
	})
}

func TestHistory(t *testing.T) {
	service, repo := NewMock(t)

	t.Run("Pagination defaults applied", func(t *testing.T) {
		repo.EXPECT().FindTransactions(gomock.Any(), 1, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ int, f HistoryFilter) ([]domain.LedgerTransaction, int, error) {
				assert.Equal(t, 1, f.Page)
				assert.Equal(t, 20, f.Limit)
				return []domain.LedgerTransaction{{ID: 10, UserID: 1, Amount: 500}}, 1, nil
			})
		repo.EXPECT().GetBalance(gomock.Any(), 1).Return(&domain.Balance{
			UserID: 1, CurrentBalance: 400, TotalEarned: 500, TotalSpent: 100, Tier: domain.TierBronze,
		}, nil)

		txs, summary, total, err := service.History(context.Background(), 1, HistoryFilter{Page: 0, Limit: 0})
		assert.NoError(t, err)
		assert.Len(t, txs, 1)
		assert.Equal(t, 1, total)
		assert.Equal(t, &Summary{TotalEarned: 500, TotalSpent: 100, CurrentBalance: 400}, summary)
	})

	t.Run("Oversized limit clamped", func(t *testing.T) {
		repo.EXPECT().FindTransactions(gomock.Any(), 1, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ int, f HistoryFilter) ([]domain.LedgerTransaction, int, error) {
				assert.Equal(t, 20, f.Limit)
				return nil, 0, nil
			})
		repo.EXPECT().GetBalance(gomock.Any(), 1).Return(&domain.Balance{UserID: 1}, nil)

		_, _, _, err := service.History(context.Background(), 1, HistoryFilter{Page: 1, Limit: 1000})
		assert.NoError(t, err)
	})
}

func TestRaiseTierFloor(t *testing.T) {
	service, repo := NewMock(t)

	t.Run("Floor above balance tier raises the tier", func(t *testing.T) {
		repo.EXPECT().EnsureBalance(gomock.Any(), 1).Return(nil)
		repo.EXPECT().LockBalance(gomock.Any(), 1).Return(&domain.Balance{
			UserID: 1, CurrentBalance: 1000, Tier: domain.TierSilver,
		}, nil)
		repo.EXPECT().SetTierFloor(gomock.Any(), 1, domain.TierGold).Return(nil)
		repo.EXPECT().UpdateTier(gomock.Any(), 1, domain.TierGold).Return(nil)

		balance, err := service.RaiseTierFloor(context.Background(), 1, domain.TierGold)
		assert.NoError(t, err)
		assert.Equal(t, domain.TierGold, balance.Tier)
		assert.Equal(t, domain.TierGold, balance.TierFloor)
	})

	t.Run("Lower floor leaves the row untouched", func(t *testing.T) {
		repo.EXPECT().EnsureBalance(gomock.Any(), 1).Return(nil)
		repo.EXPECT().LockBalance(gomock.Any(), 1).Return(&domain.Balance{
			UserID: 1, CurrentBalance: 100, Tier: domain.TierPlatinum, TierFloor: domain.TierPlatinum,
		}, nil)

		balance, err := service.RaiseTierFloor(context.Background(), 1, domain.TierGold)
		assert.NoError(t, err)
		assert.Equal(t, domain.TierPlatinum, balance.Tier)
		assert.Equal(t, domain.TierPlatinum, balance.TierFloor)
	})
}

func TestReconcile(t *testing.T) {
	service, repo := NewMock(t)

	t.Run("Checkpoint matches the log", func(t *testing.T) {
		repo.EXPECT().GetBalance(gomock.Any(), 1).Return(&domain.Balance{
			UserID: 1, CurrentBalance: 750, Tier: domain.TierBronze,
		}, nil)
		repo.EXPECT().SumTransactions(gomock.Any(), 1).Return(750, nil)

		ok, err := service.Reconcile(context.Background(), 1)
		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("Checkpoint mismatch reported", func(t *testing.T) {
		repo.EXPECT().GetBalance(gomock.Any(), 1).Return(&domain.Balance{
			UserID: 1, CurrentBalance: 750, Tier: domain.TierBronze,
		}, nil)
		repo.EXPECT().SumTransactions(gomock.Any(), 1).Return(700, nil)

		ok, err := service.Reconcile(context.Background(), 1)
		assert.NoError(t, err)
		assert.False(t, ok)
	})
}
