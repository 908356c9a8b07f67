package tierservice

import (
	"github.com/homestayhq/loyalty/internal/domain"
)

func intPtr(v int) *int { return &v }

// ladder partitions [0, inf) into ordered, non-overlapping bands:
// [MinPoints, MaxPoints) per tier, open-ended for DIAMOND.
var ladder = []domain.RewardTier{
	{
		Tier:            domain.TierBronze,
		MinPoints:       0,
		MaxPoints:       intPtr(1000),
		BonusMultiplier: 1.0,
		Benefits:        []string{"standard_support"},
	},
	{
		Tier:            domain.TierSilver,
		MinPoints:       1000,
		MaxPoints:       intPtr(5000),
		BonusMultiplier: 1.1,
		Benefits:        []string{"standard_support", "early_checkin"},
	},
	{
		Tier:            domain.TierGold,
		MinPoints:       5000,
		MaxPoints:       intPtr(15000),
		BonusMultiplier: 1.25,
		Benefits:        []string{"priority_support", "early_checkin", "late_checkout"},
	},
	{
		Tier:            domain.TierPlatinum,
		MinPoints:       15000,
		MaxPoints:       intPtr(30000),
		BonusMultiplier: 1.5,
		Benefits:        []string{"priority_support", "early_checkin", "late_checkout", "free_upgrade"},
	},
	{
		Tier:            domain.TierDiamond,
		MinPoints:       30000,
		MaxPoints:       nil,
		BonusMultiplier: 2.0,
		Benefits:        []string{"priority_support", "early_checkin", "late_checkout", "free_upgrade", "concierge"},
	},
}

// Tiers returns the full tier ladder in ascending order.
func Tiers() []domain.RewardTier {
	out := make([]domain.RewardTier, len(ladder))
	copy(out, ladder)
	return out
}

// Resolve returns the tier whose band contains the balance. Negative balances
// cannot occur in the ledger; they map to the bottom band.
func Resolve(balance int) domain.RewardTier {
	for _, t := range ladder {
		if balance >= t.MinPoints && (t.MaxPoints == nil || balance < *t.MaxPoints) {
			return t
		}
	}
	return ladder[0]
}

// Lookup returns the band for a named tier, falling back to BRONZE for an
// unknown name.
func Lookup(tier domain.Tier) domain.RewardTier {
	for _, t := range ladder {
		if t.Tier == tier {
			return t
		}
	}
	return ladder[0]
}

// Effective combines the balance-derived tier with a membership floor: the
// floor can raise the tier but never lower it.
func Effective(balance int, floor domain.Tier) domain.Tier {
	tier := Resolve(balance).Tier
	if floor.Rank() > tier.Rank() {
		return floor
	}
	return tier
}

type Progress struct {
	NextTier     *domain.Tier
	PointsToNext int
	Percent      float64
}

// ProgressToNext reports how far the balance is through its current band.
// At the top tier NextTier is nil and Percent is 100.
func ProgressToNext(balance int) Progress {
	current := Resolve(balance)
	if current.MaxPoints == nil {
		return Progress{Percent: 100}
	}

	var next domain.RewardTier
	for i, t := range ladder {
		if t.Tier == current.Tier {
			next = ladder[i+1]
			break
		}
	}

	span := next.MinPoints - current.MinPoints
	percent := float64(balance-current.MinPoints) / float64(span) * 100
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}

	nextTier := next.Tier
	return Progress{
		NextTier:     &nextTier,
		PointsToNext: next.MinPoints - balance,
		Percent:      percent,
	}
}
