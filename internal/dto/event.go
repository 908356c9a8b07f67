package dto

import "time"

type EventRequestDTO struct {
	ID         string    `json:"id" example:"8f9dbd4f-9f62-4a2a-9df5-ef6ad7c2cd04"`
	UserID     int       `json:"user_id" example:"1"`
	EventType  string    `json:"event_type" example:"booking_completed"`
	RefID      string    `json:"ref_id,omitempty" example:"booking-381"`
	OccurredAt time.Time `json:"occurred_at,omitempty"`
}

type EventAcceptedDTO struct {
	ID        string `json:"id" example:"8f9dbd4f-9f62-4a2a-9df5-ef6ad7c2cd04"`
	Duplicate bool   `json:"duplicate" example:"false"`
}
