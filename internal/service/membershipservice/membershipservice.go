package membershipservice

import (
	"context"
	"errors"
	"time"

	"github.com/homestayhq/loyalty/internal/domain"
	"github.com/homestayhq/loyalty/internal/pg"
	"go.uber.org/zap"
)

//go:generate mockgen -source=membershipservice.go -destination=mock_contracts.go -package=membershipservice

type MembershipRepo interface {
	GetPlanBySlug(ctx context.Context, slug string) (*domain.MembershipPlan, error)
	GetUser(ctx context.Context, userID int) (*domain.User, error)
	GetMembership(ctx context.Context, userID int) (*domain.Membership, error)
	UpsertMembership(ctx context.Context, m *domain.Membership) (*domain.Membership, error)
}

type Ledger interface {
	Credit(ctx context.Context, userID int, amount int, source domain.TxSource, relatedEntityID, description string) (*domain.Balance, error)
	RaiseTierFloor(ctx context.Context, userID int, floor domain.Tier) (*domain.Balance, error)
}

type Service struct {
	membershipRepo MembershipRepo
	ledger         Ledger
	txManager      pg.TXManager
}

func New(membershipRepo MembershipRepo, ledger Ledger, txManager pg.TXManager) *Service {
	return &Service{
		membershipRepo: membershipRepo,
		ledger:         ledger,
		txManager:      txManager,
	}
}

var (
	ErrPlanNotFound        = errors.New("membership plan not found")
	ErrUserNotFound        = errors.New("user not found")
	ErrInvalidBillingCycle = errors.New("invalid billing cycle")
)

const (
	annualBonusPoints  = 2000
	monthlyBonusPoints = 800
)

// planTiers maps plan slugs to the loyalty tier the plan grants. A plan can
// only raise the member's tier, never lower it.
var planTiers = map[string]domain.Tier{
	"silver":   domain.TierSilver,
	"gold":     domain.TierGold,
	"platinum": domain.TierPlatinum,
	"diamond":  domain.TierDiamond,
}

// MembershipState is the snapshot returned after activation.
type MembershipState struct {
	PlanSlug     string
	Status       domain.MembershipStatus
	BillingCycle domain.BillingCycle
	StartedAt    time.Time
	ExpiresAt    time.Time
	Tier         domain.Tier
	BonusPoints  int
	Features     []string
}

// mergeFeatures unions the plan's two feature lists, preserving order and
// dropping duplicates.
func mergeFeatures(features, exclusive []string) []string {
	seen := make(map[string]struct{}, len(features)+len(exclusive))
	merged := make([]string, 0, len(features)+len(exclusive))
	for _, f := range append(append([]string{}, features...), exclusive...) {
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		merged = append(merged, f)
	}
	return merged
}

// Activate binds the user to a plan, merges its entitlements, raises the tier
// floor and credits the signup bonus, all in one transaction.
func (s *Service) Activate(ctx context.Context, userID int, planSlug string, cycle domain.BillingCycle) (*MembershipState, error) {
	if cycle != domain.CycleMonthly && cycle != domain.CycleAnnual {
		return nil, ErrInvalidBillingCycle
	}

	plan, err := s.membershipRepo.GetPlanBySlug(ctx, planSlug)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, ErrPlanNotFound
	}

	user, err := s.membershipRepo.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	now := time.Now()
	var expiresAt time.Time
	bonusPoints := monthlyBonusPoints
	if cycle == domain.CycleAnnual {
		expiresAt = now.AddDate(1, 0, 0)
		bonusPoints = annualBonusPoints
	} else {
		expiresAt = now.AddDate(0, 1, 0)
	}

	features := mergeFeatures(plan.Features, plan.ExclusiveFeatures)
	planTier := planTiers[plan.Slug]

	var state *MembershipState
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		membership := &domain.Membership{
			UserID:       userID,
			PlanSlug:     plan.Slug,
			Status:       domain.MembershipActive,
			BillingCycle: cycle,
			StartedAt:    now,
			ExpiresAt:    expiresAt,
			Features:     features,
			Tier:         planTier,
		}
		if _, err := s.membershipRepo.UpsertMembership(ctx, membership); err != nil {
			return err
		}

		balance, err := s.ledger.RaiseTierFloor(ctx, userID, planTier)
		if err != nil {
			return err
		}

		if _, err := s.ledger.Credit(ctx, userID, bonusPoints, domain.SourceMembership, plan.Slug, "Membership activation bonus: "+plan.Name); err != nil {
			return err
		}

		state = &MembershipState{
			PlanSlug:     plan.Slug,
			Status:       domain.MembershipActive,
			BillingCycle: cycle,
			StartedAt:    now,
			ExpiresAt:    expiresAt,
			Tier:         balance.Tier,
			BonusPoints:  bonusPoints,
			Features:     features,
		}
		return nil
	})
	if err != nil {
		zap.L().Error("membership activation failed",
			zap.Int("userID", userID),
			zap.String("plan", planSlug),
			zap.Error(err),
		)
		return nil, err
	}

	zap.L().Info("membership activated",
		zap.Int("userID", userID),
		zap.String("plan", plan.Slug),
		zap.String("cycle", string(cycle)),
		zap.Int("bonusPoints", bonusPoints),
	)
	return state, nil
}

// Current returns the user's membership with lazily evaluated expiry: an
// ACTIVE row past its expires_at is reported EXPIRED without a write. The
// sweep that persists the flip is an external scheduling collaborator.
func (s *Service) Current(ctx context.Context, userID int) (*domain.Membership, error) {
	membership, err := s.membershipRepo.GetMembership(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch membership", zap.Error(err))
		return nil, err
	}
	if membership == nil {
		return nil, nil
	}
	if membership.Status == domain.MembershipActive && membership.ExpiresAt.Before(time.Now()) {
		membership.Status = domain.MembershipExpired
	}
	return membership, nil
}
