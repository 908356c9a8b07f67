package ledgerrepo

import (
	"context"
	"errors"
	"strconv"

	"github.com/jackc/pgx/v5"

	"github.com/homestayhq/loyalty/internal/domain"
	"github.com/homestayhq/loyalty/internal/pg"
	"github.com/homestayhq/loyalty/internal/service/ledgerservice"
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

func scanBalance(row pgx.Row) (*domain.Balance, error) {
	var b domain.Balance
	err := row.Scan(&b.ID, &b.UserID, &b.CurrentBalance, &b.TotalEarned, &b.TotalSpent, &b.Tier, &b.TierFloor)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *Repository) EnsureBalance(ctx context.Context, userID int) error {
	query := `
        INSERT INTO balances (user_id)
        VALUES ($1)
        ON CONFLICT (user_id) DO NOTHING
    `
	_, err := r.db.Exec(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to ensure balance row", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) GetBalance(ctx context.Context, userID int) (*domain.Balance, error) {
	query := `
        SELECT id, user_id, current_balance, total_earned, total_spent, tier, tier_floor
        FROM balances
        WHERE user_id = $1
    `
	balance, err := scanBalance(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get balance", zap.Error(err))
		return nil, err
	}
	return balance, nil
}

// LockBalance reads the balance row under FOR UPDATE; callers must hold an
// open transaction.
func (r *Repository) LockBalance(ctx context.Context, userID int) (*domain.Balance, error) {
	query := `
        SELECT id, user_id, current_balance, total_earned, total_spent, tier, tier_floor
        FROM balances
        WHERE user_id = $1
        FOR UPDATE
    `
	balance, err := scanBalance(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to lock balance", zap.Error(err))
		return nil, err
	}
	return balance, nil
}

// ApplyDelta moves the balance by delta, guarded so it never drops below
// zero. Returns nil without error when the guard rejects the move.
func (r *Repository) ApplyDelta(ctx context.Context, userID int, delta int) (*domain.Balance, error) {
	query := `
        UPDATE balances
        SET current_balance = current_balance + $2,
            total_earned = total_earned + GREATEST($2, 0),
            total_spent = total_spent + GREATEST(-$2, 0)
        WHERE user_id = $1 AND current_balance + $2 >= 0
        RETURNING id, user_id, current_balance, total_earned, total_spent, tier, tier_floor
    `
	balance, err := scanBalance(r.db.QueryRow(ctx, query, userID, delta))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to apply balance delta", zap.Error(err))
		return nil, err
	}
	return balance, nil
}

func (r *Repository) UpdateTier(ctx context.Context, userID int, tier domain.Tier) error {
	query := `
        UPDATE balances
        SET tier = $2
        WHERE user_id = $1
    `
	_, err := r.db.Exec(ctx, query, userID, tier)
	if err != nil {
		zap.L().Error("failed to update tier", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) SetTierFloor(ctx context.Context, userID int, floor domain.Tier) error {
	query := `
        UPDATE balances
        SET tier_floor = $2
        WHERE user_id = $1
    `
	_, err := r.db.Exec(ctx, query, userID, floor)
	if err != nil {
		zap.L().Error("failed to set tier floor", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) SaveTransaction(ctx context.Context, tx *domain.LedgerTransaction) (*domain.LedgerTransaction, error) {
	query := `
        INSERT INTO ledger_transactions (user_id, amount, source, balance_after, related_entity_id, description, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query,
		tx.UserID, tx.Amount, tx.Source, tx.BalanceAfter, tx.RelatedEntityID, tx.Description, tx.CreatedAt,
	).Scan(&tx.ID)
	if err != nil {
		zap.L().Error("can't save ledger transaction", zap.Error(err))
		return nil, err
	}
	return tx, nil
}

func (r *Repository) FindTransactions(ctx context.Context, userID int, f ledgerservice.HistoryFilter) ([]domain.LedgerTransaction, int, error) {
	where := "WHERE user_id = $1"
	args := []any{userID}

	if f.Source != nil {
		args = append(args, *f.Source)
		where += " AND source = $2"
	}
	if f.From != nil {
		args = append(args, *f.From)
		where += " AND created_at >= $" + itoa(len(args))
	}
	if f.To != nil {
		args = append(args, *f.To)
		where += " AND created_at <= $" + itoa(len(args))
	}

	var total int
	countQuery := "SELECT COUNT(*) FROM ledger_transactions " + where
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		zap.L().Error("failed to count ledger transactions", zap.Error(err))
		return nil, 0, err
	}

	args = append(args, f.Limit, (f.Page-1)*f.Limit)
	query := `
        SELECT id, user_id, amount, source, balance_after, related_entity_id, description, created_at
        FROM ledger_transactions ` + where + `
        ORDER BY created_at DESC, id DESC
        LIMIT $` + itoa(len(args)-1) + ` OFFSET $` + itoa(len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("failed to fetch ledger transactions", zap.Error(err))
		return nil, 0, err
	}
	defer rows.Close()

	var txs []domain.LedgerTransaction
	for rows.Next() {
		var tx domain.LedgerTransaction
		err := rows.Scan(&tx.ID, &tx.UserID, &tx.Amount, &tx.Source, &tx.BalanceAfter, &tx.RelatedEntityID, &tx.Description, &tx.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan ledger transaction row", zap.Error(err))
			return nil, 0, err
		}
		txs = append(txs, tx)
	}
	return txs, total, nil
}

// SumTransactions recomputes the balance from the transaction log. Used to
// validate the cached checkpoint, which is an optimization and not the
// source of truth.
func (r *Repository) SumTransactions(ctx context.Context, userID int) (int, error) {
	query := `
        SELECT COALESCE(SUM(amount), 0)
        FROM ledger_transactions
        WHERE user_id = $1
    `
	var sum int
	if err := r.db.QueryRow(ctx, query, userID).Scan(&sum); err != nil {
		zap.L().Error("failed to sum ledger transactions", zap.Error(err))
		return 0, err
	}
	return sum, nil
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
