package dto

import "time"

type CatalogItemDTO struct {
	ID           int     `json:"id" example:"1"`
	Name         string  `json:"name" example:"Free night voucher"`
	Description  string  `json:"description,omitempty"`
	Category     string  `json:"category" example:"voucher"`
	PointsCost   int     `json:"points_cost" example:"5000"`
	Stock        *int    `json:"stock,omitempty" example:"100"`
	RequiredTier *string `json:"required_tier,omitempty" example:"GOLD"`
	IsAvailable  bool    `json:"is_available" example:"true"`
	ValidityDays *int    `json:"validity_days,omitempty" example:"90"`
	CanAfford    bool    `json:"can_afford" example:"false"`
}

type CatalogResponseDTO struct {
	Items       []CatalogItemDTO `json:"items"`
	Pagination  PaginationDTO    `json:"pagination"`
	UserBalance int              `json:"user_balance" example:"1500"`
	UserTier    string           `json:"user_tier" example:"SILVER"`
}

type RedeemRequestDTO struct {
	CatalogItemID int `json:"catalog_item_id" example:"2"`
	Quantity      int `json:"quantity" example:"1"`
}

type RedemptionResponseDTO struct {
	RedemptionCode string     `json:"redemption_code" example:"4929887742085553"`
	Status         string     `json:"status" example:"PENDING"`
	PointsSpent    int        `json:"points_spent" example:"800"`
	Quantity       int        `json:"quantity" example:"1"`
	ExpiresAt      *time.Time `json:"expires_at,omitempty" example:"2025-01-09T16:09:57+03:00"`
}

type RedemptionsResponseDTO struct {
	Redemptions []RedemptionResponseDTO `json:"redemptions"`
	Pagination  PaginationDTO           `json:"pagination"`
}

type InsufficientStockDTO struct {
	Message   string `json:"message" example:"insufficient stock"`
	Available int    `json:"available" example:"0"`
}

type TierRequirementDTO struct {
	Message  string `json:"message" example:"tier requirement not met"`
	Required string `json:"required" example:"GOLD"`
	Current  string `json:"current" example:"SILVER"`
}
