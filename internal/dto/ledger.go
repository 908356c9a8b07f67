package dto

import "time"

type BalanceResponseDTO struct {
	Balance         int      `json:"balance" example:"1500"`
	TotalEarned     int      `json:"total_earned" example:"2000"`
	TotalSpent      int      `json:"total_spent" example:"500"`
	Tier            string   `json:"tier" example:"SILVER"`
	NextTier        *string  `json:"next_tier,omitempty" example:"GOLD"`
	PointsToNext    int      `json:"points_to_next_tier,omitempty" example:"3500"`
	ProgressPercent float64  `json:"progress_percent" example:"12.5"`
	Benefits        []string `json:"benefits,omitempty"`
}

type TransactionDTO struct {
	ID              int       `json:"id" example:"42"`
	Amount          int       `json:"amount" example:"-800"`
	Source          string    `json:"source" example:"CATALOG_REDEMPTION"`
	BalanceAfter    int       `json:"balance_after" example:"700"`
	RelatedEntityID string    `json:"related_entity_id,omitempty" example:"17"`
	Description     string    `json:"description,omitempty" example:"Redeemed 10% discount code x1"`
	CreatedAt       time.Time `json:"created_at" example:"2024-12-09T16:09:57+03:00"`
}

type HistorySummaryDTO struct {
	TotalEarned    int `json:"total_earned" example:"2000"`
	TotalSpent     int `json:"total_spent" example:"500"`
	CurrentBalance int `json:"current_balance" example:"1500"`
}

type PaginationDTO struct {
	Page  int `json:"page" example:"1"`
	Limit int `json:"limit" example:"20"`
	Total int `json:"total" example:"57"`
}

type HistoryResponseDTO struct {
	Transactions []TransactionDTO  `json:"transactions"`
	Summary      HistorySummaryDTO `json:"summary"`
	Pagination   PaginationDTO     `json:"pagination"`
}

type TierDTO struct {
	Tier            string   `json:"tier" example:"GOLD"`
	MinPoints       int      `json:"min_points" example:"5000"`
	MaxPoints       *int     `json:"max_points,omitempty" example:"15000"`
	BonusMultiplier float64  `json:"bonus_multiplier" example:"1.25"`
	Benefits        []string `json:"benefits"`
}

type TiersResponseDTO struct {
	Tiers           []TierDTO `json:"tiers"`
	CurrentTier     string    `json:"current_tier" example:"SILVER"`
	CurrentBalance  int       `json:"current_balance" example:"1500"`
	NextTier        *string   `json:"next_tier,omitempty" example:"GOLD"`
	PointsToNext    int       `json:"points_to_next_tier,omitempty" example:"3500"`
	ProgressPercent float64   `json:"progress_percent" example:"12.5"`
}

type InsufficientBalanceDTO struct {
	Message   string `json:"message" example:"insufficient balance"`
	Required  int    `json:"required" example:"150"`
	Available int    `json:"available" example:"100"`
}
