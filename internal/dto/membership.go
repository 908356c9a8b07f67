package dto

import "time"

type MembershipActivateRequestDTO struct {
	UserID       int    `json:"user_id" example:"1"`
	PlanSlug     string `json:"plan_slug" example:"gold"`
	BillingCycle string `json:"billing_cycle" example:"ANNUAL"`
}

type MembershipResponseDTO struct {
	PlanSlug     string    `json:"plan_slug" example:"gold"`
	Status       string    `json:"status" example:"ACTIVE"`
	BillingCycle string    `json:"billing_cycle" example:"ANNUAL"`
	StartedAt    time.Time `json:"started_at"`
	ExpiresAt    time.Time `json:"expires_at"`
	Tier         string    `json:"tier" example:"GOLD"`
	BonusPoints  int       `json:"bonus_points,omitempty" example:"2000"`
	Features     []string  `json:"features"`
}
