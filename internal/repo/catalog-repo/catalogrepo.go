package catalogrepo

import (
	"context"
	"errors"
	"strconv"

	"github.com/jackc/pgx/v5"

	"github.com/homestayhq/loyalty/internal/domain"
	"github.com/homestayhq/loyalty/internal/pg"
	"github.com/homestayhq/loyalty/internal/service/catalogservice"
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

func (r *Repository) GetItem(ctx context.Context, itemID int) (*domain.CatalogItem, error) {
	query := `
        SELECT id, name, description, category, points_cost, stock, required_tier, is_available, validity_days, created_at
        FROM reward_catalog_items
        WHERE id = $1
    `
	var item domain.CatalogItem
	err := r.db.QueryRow(ctx, query, itemID).Scan(
		&item.ID, &item.Name, &item.Description, &item.Category, &item.PointsCost,
		&item.Stock, &item.RequiredTier, &item.IsAvailable, &item.ValidityDays, &item.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find catalog item", zap.Error(err))
		return nil, err
	}
	return &item, nil
}

func (r *Repository) List(ctx context.Context, f catalogservice.CatalogFilter) ([]domain.CatalogItem, int, error) {
	where := "WHERE TRUE"
	args := []any{}

	if f.Category != "" {
		args = append(args, f.Category)
		where += " AND category = $" + strconv.Itoa(len(args))
	}
	if f.MinPoints != nil {
		args = append(args, *f.MinPoints)
		where += " AND points_cost >= $" + strconv.Itoa(len(args))
	}
	if f.MaxPoints != nil {
		args = append(args, *f.MaxPoints)
		where += " AND points_cost <= $" + strconv.Itoa(len(args))
	}
	if f.AvailableOnly {
		where += " AND is_available AND (stock IS NULL OR stock > 0)"
	}

	var total int
	countQuery := "SELECT COUNT(*) FROM reward_catalog_items " + where
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		zap.L().Error("failed to count catalog items", zap.Error(err))
		return nil, 0, err
	}

	args = append(args, f.Limit, (f.Page-1)*f.Limit)
	query := `
        SELECT id, name, description, category, points_cost, stock, required_tier, is_available, validity_days, created_at
        FROM reward_catalog_items ` + where + `
        ORDER BY points_cost ASC, id ASC
        LIMIT $` + strconv.Itoa(len(args)-1) + ` OFFSET $` + strconv.Itoa(len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("failed to list catalog items", zap.Error(err))
		return nil, 0, err
	}
	defer rows.Close()

	var items []domain.CatalogItem
	for rows.Next() {
		var item domain.CatalogItem
		err := rows.Scan(
			&item.ID, &item.Name, &item.Description, &item.Category, &item.PointsCost,
			&item.Stock, &item.RequiredTier, &item.IsAvailable, &item.ValidityDays, &item.CreatedAt,
		)
		if err != nil {
			zap.L().Error("failed to scan catalog item row", zap.Error(err))
			return nil, 0, err
		}
		items = append(items, item)
	}
	return items, total, nil
}

// DecrementStock takes quantity units off the shelf in one guarded statement;
// stock can never go below zero. Returns false when the guard rejects the
// decrement. Items with untracked stock are left untouched.
func (r *Repository) DecrementStock(ctx context.Context, itemID, quantity int) (bool, error) {
	query := `
        UPDATE reward_catalog_items
        SET stock = stock - $2
        WHERE id = $1 AND stock IS NOT NULL AND stock >= $2
    `
	tag, err := r.db.Exec(ctx, query, itemID, quantity)
	if err != nil {
		zap.L().Error("failed to decrement stock", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) SaveRedemption(ctx context.Context, redemption *domain.Redemption) (*domain.Redemption, error) {
	query := `
        INSERT INTO reward_redemptions (user_id, catalog_item_id, quantity, points_spent, status, redemption_code, expires_at, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query,
		redemption.UserID, redemption.CatalogItemID, redemption.Quantity, redemption.PointsSpent,
		redemption.Status, redemption.RedemptionCode, redemption.ExpiresAt, redemption.CreatedAt,
	).Scan(&redemption.ID)
	if err != nil {
		zap.L().Error("can't save redemption", zap.Error(err))
		return nil, err
	}
	return redemption, nil
}

func (r *Repository) FindRedemptionsByUserID(ctx context.Context, userID, page, limit int) ([]domain.Redemption, int, error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM reward_redemptions WHERE user_id = $1`
	if err := r.db.QueryRow(ctx, countQuery, userID).Scan(&total); err != nil {
		zap.L().Error("failed to count redemptions", zap.Error(err))
		return nil, 0, err
	}

	query := `
        SELECT id, user_id, catalog_item_id, quantity, points_spent, status, redemption_code, expires_at, created_at
        FROM reward_redemptions
        WHERE user_id = $1
        ORDER BY created_at DESC, id DESC
        LIMIT $2 OFFSET $3
    `
	rows, err := r.db.Query(ctx, query, userID, limit, (page-1)*limit)
	if err != nil {
		zap.L().Error("failed to fetch redemptions", zap.Error(err))
		return nil, 0, err
	}
	defer rows.Close()

	var redemptions []domain.Redemption
	for rows.Next() {
		var rd domain.Redemption
		err := rows.Scan(
			&rd.ID, &rd.UserID, &rd.CatalogItemID, &rd.Quantity, &rd.PointsSpent,
			&rd.Status, &rd.RedemptionCode, &rd.ExpiresAt, &rd.CreatedAt,
		)
		if err != nil {
			zap.L().Error("failed to scan redemption row", zap.Error(err))
			return nil, 0, err
		}
		redemptions = append(redemptions, rd)
	}
	return redemptions, total, nil
}
