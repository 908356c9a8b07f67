package catalogservice

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/ShiraazMoollatjie/goluhn"
	"github.com/homestayhq/loyalty/internal/domain"
	"github.com/homestayhq/loyalty/internal/pg"
	"go.uber.org/zap"
)

//go:generate mockgen -source=catalogservice.go -destination=mock_contracts.go -package=catalogservice

type CatalogRepo interface {
	GetItem(ctx context.Context, itemID int) (*domain.CatalogItem, error)
	List(ctx context.Context, f CatalogFilter) ([]domain.CatalogItem, int, error)
	DecrementStock(ctx context.Context, itemID, quantity int) (bool, error)
	SaveRedemption(ctx context.Context, redemption *domain.Redemption) (*domain.Redemption, error)
	FindRedemptionsByUserID(ctx context.Context, userID, page, limit int) ([]domain.Redemption, int, error)
}

type Ledger interface {
	BalanceOf(ctx context.Context, userID int) (*domain.Balance, error)
	Debit(ctx context.Context, userID int, amount int, source domain.TxSource, relatedEntityID, description string) (*domain.Balance, error)
}

type Service struct {
	catalogRepo CatalogRepo
	ledger      Ledger
	txManager   pg.TXManager
}

func New(catalogRepo CatalogRepo, ledger Ledger, txManager pg.TXManager) *Service {
	return &Service{
		catalogRepo: catalogRepo,
		ledger:      ledger,
		txManager:   txManager,
	}
}

// MaxQuantity bounds a single redemption order.
const MaxQuantity = 10

const redemptionCodeLength = 16

var (
	ErrRewardNotFound    = errors.New("reward not found")
	ErrRewardUnavailable = errors.New("reward unavailable")
	ErrInvalidQuantity   = errors.New("quantity must be between 1 and 10")
)

type InsufficientStockError struct {
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock: %d available", e.Available)
}

type TierRequirementError struct {
	Required domain.Tier
	Current  domain.Tier
}

func (e *TierRequirementError) Error() string {
	return fmt.Sprintf("tier requirement not met: required %s, current %s", e.Required, e.Current)
}

type CatalogFilter struct {
	Category      string
	MinPoints     *int
	MaxPoints     *int
	AvailableOnly bool
	Page          int
	Limit         int
}

// BrowseItem is a catalog item annotated for the calling user.
type BrowseItem struct {
	domain.CatalogItem
	CanAfford bool
}

// Browse lists catalog items annotated with CanAfford against the caller's
// current balance. Read-only.
func (s *Service) Browse(ctx context.Context, userID int, f CatalogFilter) ([]BrowseItem, *domain.Balance, int, error) {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 100 {
		f.Limit = 20
	}

	balance, err := s.ledger.BalanceOf(ctx, userID)
	if err != nil {
		return nil, nil, 0, err
	}

	items, total, err := s.catalogRepo.List(ctx, f)
	if err != nil {
		zap.L().Error("failed to list catalog", zap.Error(err))
		return nil, nil, 0, err
	}

	annotated := make([]BrowseItem, len(items))
	for i, item := range items {
		annotated[i] = BrowseItem{
			CatalogItem: item,
			CanAfford:   balance.CurrentBalance >= item.PointsCost,
		}
	}
	return annotated, balance, total, nil
}

// Redeem exchanges points for a catalog reward. The debit, stock decrement
// and redemption insert share one transaction: none of them can land without
// the others.
func (s *Service) Redeem(ctx context.Context, userID, itemID, quantity int) (*domain.Redemption, error) {
	if quantity < 1 || quantity > MaxQuantity {
		return nil, ErrInvalidQuantity
	}

	item, err := s.catalogRepo.GetItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrRewardNotFound
	}
	if !item.IsAvailable {
		return nil, ErrRewardUnavailable
	}
	if item.Stock != nil && *item.Stock < quantity {
		return nil, &InsufficientStockError{Available: *item.Stock}
	}

	totalCost := item.PointsCost * quantity

	balance, err := s.ledger.BalanceOf(ctx, userID)
	if err != nil {
		return nil, err
	}
	if item.RequiredTier != nil && balance.Tier.Rank() < item.RequiredTier.Rank() {
		return nil, &TierRequirementError{
			Required: *item.RequiredTier,
			Current:  balance.Tier,
		}
	}

	var redemption *domain.Redemption
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if item.Stock != nil {
			ok, err := s.catalogRepo.DecrementStock(ctx, itemID, quantity)
			if err != nil {
				return err
			}
			if !ok {
				// Lost the race to a concurrent sellout.
				current, err := s.catalogRepo.GetItem(ctx, itemID)
				if err != nil {
					return err
				}
				available := 0
				if current != nil && current.Stock != nil {
					available = *current.Stock
				}
				return &InsufficientStockError{Available: available}
			}
		}

		code := goluhn.Generate(redemptionCodeLength)

		now := time.Now()
		r := &domain.Redemption{
			UserID:         userID,
			CatalogItemID:  itemID,
			Quantity:       quantity,
			PointsSpent:    totalCost,
			Status:         domain.RedemptionPending,
			RedemptionCode: code,
			CreatedAt:      now,
		}
		if item.ValidityDays != nil {
			expires := now.AddDate(0, 0, *item.ValidityDays)
			r.ExpiresAt = &expires
		}
		saved, err := s.catalogRepo.SaveRedemption(ctx, r)
		if err != nil {
			return err
		}

		description := fmt.Sprintf("Redeemed %s x%d", item.Name, quantity)
		if _, err := s.ledger.Debit(ctx, userID, totalCost, domain.SourceCatalogRedemption, strconv.Itoa(saved.ID), description); err != nil {
			return err
		}

		redemption = saved
		return nil
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("reward redeemed",
		zap.Int("userID", userID),
		zap.Int("itemID", itemID),
		zap.Int("pointsSpent", totalCost),
		zap.String("code", redemption.RedemptionCode),
	)
	return redemption, nil
}

// Redemptions lists the caller's redemption orders, lazily reporting EXPIRED
// once expires_at has passed. Fulfilment transitions are driven externally.
func (s *Service) Redemptions(ctx context.Context, userID, page, limit int) ([]domain.Redemption, int, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	redemptions, total, err := s.catalogRepo.FindRedemptionsByUserID(ctx, userID, page, limit)
	if err != nil {
		zap.L().Error("failed to fetch redemptions", zap.Error(err))
		return nil, 0, err
	}

	now := time.Now()
	for i := range redemptions {
		r := &redemptions[i]
		if r.Status == domain.RedemptionPending && r.ExpiresAt != nil && r.ExpiresAt.Before(now) {
			r.Status = domain.RedemptionExpired
		}
	}
	return redemptions, total, nil
}
