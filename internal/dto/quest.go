package dto

import "time"

type QuestProgressRequestDTO struct {
	Increment int `json:"increment" example:"1"`
}

type QuestProgressResponseDTO struct {
	QuestID         int        `json:"quest_id" example:"1"`
	CurrentCount    int        `json:"current_count" example:"3"`
	TargetCount     int        `json:"target_count" example:"5"`
	IsCompleted     bool       `json:"is_completed" example:"false"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
	ProgressPercent float64    `json:"progress_percent" example:"60"`
	AwardedPoints   int        `json:"awarded_points,omitempty" example:"250"`
	AwardedBadgeID  *int       `json:"awarded_badge_id,omitempty" example:"3"`
}

type QuestDTO struct {
	ID           int    `json:"id" example:"1"`
	Title        string `json:"title" example:"Weekly reviewer"`
	Description  string `json:"description,omitempty"`
	TargetCount  int    `json:"target_count" example:"5"`
	Cadence      string `json:"cadence" example:"WEEKLY"`
	RewardPoints int    `json:"reward_points" example:"250"`
}

type QuestWithProgressDTO struct {
	Quest    QuestDTO                 `json:"quest"`
	Progress QuestProgressResponseDTO `json:"progress"`
}
