package domain

import "time"

type Tier string

const (
	TierBronze   Tier = "BRONZE"
	TierSilver   Tier = "SILVER"
	TierGold     Tier = "GOLD"
	TierPlatinum Tier = "PLATINUM"
	TierDiamond  Tier = "DIAMOND"
)

var tierRanks = map[Tier]int{
	TierBronze:   0,
	TierSilver:   1,
	TierGold:     2,
	TierPlatinum: 3,
	TierDiamond:  4,
}

// Rank returns the position of the tier in the fixed ordering
// BRONZE < SILVER < GOLD < PLATINUM < DIAMOND. Unknown tiers rank below BRONZE.
func (t Tier) Rank() int {
	rank, ok := tierRanks[t]
	if !ok {
		return -1
	}
	return rank
}

type TxSource string

const (
	SourceBooking           TxSource = "BOOKING"
	SourceReview            TxSource = "REVIEW"
	SourceReferral          TxSource = "REFERRAL"
	SourceQuest             TxSource = "QUEST"
	SourceCatalogRedemption TxSource = "CATALOG_REDEMPTION"
	SourceMembership        TxSource = "MEMBERSHIP"
	SourceAdjustment        TxSource = "ADJUSTMENT"
)

type User struct {
	ID        int       `db:"id"`
	Email     string    `db:"email"`
	CreatedAt time.Time `db:"created_at"`
}

// Balance is the cached view over a user's ledger. CurrentBalance is always
// re-derivable as the sum of the user's transactions; Tier is recomputed on
// every balance change and never drops below TierFloor while a membership
// override is in effect.
type Balance struct {
	ID             int  `db:"id"`
	UserID         int  `db:"user_id"`
	CurrentBalance int  `db:"current_balance"`
	TotalEarned    int  `db:"total_earned"`
	TotalSpent     int  `db:"total_spent"`
	Tier           Tier `db:"tier"`
	TierFloor      Tier `db:"tier_floor"`
}

// LedgerTransaction is an immutable signed point movement. Adjustments are new
// transactions, never edits.
type LedgerTransaction struct {
	ID              int       `db:"id"`
	UserID          int       `db:"user_id"`
	Amount          int       `db:"amount"`
	Source          TxSource  `db:"source"`
	BalanceAfter    int       `db:"balance_after"`
	RelatedEntityID string    `db:"related_entity_id"`
	Description     string    `db:"description"`
	CreatedAt       time.Time `db:"created_at"`
}

// RewardTier is one band of the tier ladder. MaxPoints is nil for the
// open-ended top tier.
type RewardTier struct {
	Tier            Tier
	MinPoints       int
	MaxPoints       *int
	BonusMultiplier float64
	Benefits        []string
}

type CatalogItem struct {
	ID           int       `db:"id"`
	Name         string    `db:"name"`
	Description  string    `db:"description"`
	Category     string    `db:"category"`
	PointsCost   int       `db:"points_cost"`
	Stock        *int      `db:"stock"`
	RequiredTier *Tier     `db:"required_tier"`
	IsAvailable  bool      `db:"is_available"`
	ValidityDays *int      `db:"validity_days"`
	CreatedAt    time.Time `db:"created_at"`
}

type RedemptionStatus string

const (
	RedemptionPending   RedemptionStatus = "PENDING"
	RedemptionFulfilled RedemptionStatus = "FULFILLED"
	RedemptionCancelled RedemptionStatus = "CANCELLED"
	RedemptionExpired   RedemptionStatus = "EXPIRED"
)

type Redemption struct {
	ID             int              `db:"id"`
	UserID         int              `db:"user_id"`
	CatalogItemID  int              `db:"catalog_item_id"`
	Quantity       int              `db:"quantity"`
	PointsSpent    int              `db:"points_spent"`
	Status         RedemptionStatus `db:"status"`
	RedemptionCode string           `db:"redemption_code"`
	ExpiresAt      *time.Time       `db:"expires_at"`
	CreatedAt      time.Time        `db:"created_at"`
}

// Cadence is the reset window of a quest. NONE means one-shot: completion is
// permanent and progress never resets.
type Cadence string

const (
	CadenceNone   Cadence = "NONE"
	CadenceDaily  Cadence = "DAILY"
	CadenceWeekly Cadence = "WEEKLY"
)

type Quest struct {
	ID            int     `db:"id"`
	Title         string  `db:"title"`
	Description   string  `db:"description"`
	TargetCount   int     `db:"target_count"`
	Cadence       Cadence `db:"cadence"`
	RewardPoints  int     `db:"reward_points"`
	RewardBadgeID *int    `db:"reward_badge_id"`
	IsActive      bool    `db:"is_active"`
}

type UserQuest struct {
	ID           int        `db:"id"`
	UserID       int        `db:"user_id"`
	QuestID      int        `db:"quest_id"`
	CurrentCount int        `db:"current_count"`
	IsCompleted  bool       `db:"is_completed"`
	CompletedAt  *time.Time `db:"completed_at"`
	LastResetAt  time.Time  `db:"last_reset_at"`
}

type Badge struct {
	ID          int    `db:"id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	Icon        string `db:"icon"`
}

type UserBadge struct {
	ID        int       `db:"id"`
	UserID    int       `db:"user_id"`
	BadgeID   int       `db:"badge_id"`
	AwardedAt time.Time `db:"awarded_at"`
}

type BillingCycle string

const (
	CycleMonthly BillingCycle = "MONTHLY"
	CycleAnnual  BillingCycle = "ANNUAL"
)

type MembershipPlan struct {
	ID                int      `db:"id"`
	Slug              string   `db:"slug"`
	Name              string   `db:"name"`
	Features          []string `db:"features"`
	ExclusiveFeatures []string `db:"exclusive_features"`
	MonthlyPrice      int      `db:"monthly_price"`
	AnnualPrice       int      `db:"annual_price"`
	Color             string   `db:"color"`
	Icon              string   `db:"icon"`
}

type MembershipStatus string

const (
	MembershipActive  MembershipStatus = "ACTIVE"
	MembershipExpired MembershipStatus = "EXPIRED"
)

// Membership binds a user to a plan. Status is evaluated lazily by readers:
// an ACTIVE row whose ExpiresAt has passed is reported as EXPIRED.
type Membership struct {
	ID           int              `db:"id"`
	UserID       int              `db:"user_id"`
	PlanSlug     string           `db:"plan_slug"`
	Status       MembershipStatus `db:"status"`
	BillingCycle BillingCycle     `db:"billing_cycle"`
	StartedAt    time.Time        `db:"started_at"`
	ExpiresAt    time.Time        `db:"expires_at"`
	Features     []string         `db:"features"`
	Tier         Tier             `db:"tier"`
}

type EventType string

const (
	EventBookingCompleted EventType = "booking_completed"
	EventReviewWritten    EventType = "review_written"
	EventReferral         EventType = "referral_completed"
	EventProfileCompleted EventType = "profile_completed"
)

type EventStatus string

const (
	EventStatusNew       EventStatus = "NEW"
	EventStatusProcessed EventStatus = "PROCESSED"
	EventStatusInvalid   EventStatus = "INVALID"
)

// LoyaltyEvent is one row of the lifecycle-event inbox. ID is a producer
// supplied UUID and doubles as the idempotency key.
type LoyaltyEvent struct {
	ID          string      `db:"id"`
	UserID      int         `db:"user_id"`
	EventType   EventType   `db:"event_type"`
	RefID       string      `db:"ref_id"`
	Status      EventStatus `db:"status"`
	OccurredAt  time.Time   `db:"occurred_at"`
	ProcessedAt *time.Time  `db:"processed_at"`
}
