package events

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/homestayhq/loyalty/internal/domain"
	"github.com/homestayhq/loyalty/internal/dto"
	eventsvc "github.com/homestayhq/loyalty/internal/events"
	"github.com/homestayhq/loyalty/pkg/utils"
)

//go:generate mockgen -source=events.go -destination=mock_service.go -package=events

type Service interface {
	Enqueue(ctx context.Context, id string, userID int, eventType domain.EventType, refID string, occurredAt time.Time) (bool, error)
}

type EventHandler struct {
	eventService Service
}

func New(eventService Service) *EventHandler {
	return &EventHandler{
		eventService: eventService,
	}
}

// Enqueue godoc
//
//	@Summary		Submit a lifecycle event
//	@Description	Accepts a booking/review/referral/profile lifecycle event into the inbox. The event id is the idempotency key; duplicates are acknowledged without effect.
//	@Tags			Events
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.EventRequestDTO	true	"Lifecycle event"
//	@Success		202		{object}	dto.EventAcceptedDTO	"Event accepted"
//	@Failure		400		{object}	utils.Response			"Bad request"
//	@Failure		401		{object}	utils.Response			"User not authorized"
//	@Failure		403		{object}	utils.Response			"Admin role required"
//	@Failure		422		{object}	utils.Response			"Unknown event type or malformed id"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/loyalty/events [post]
func (h *EventHandler) Enqueue(w http.ResponseWriter, r *http.Request) {
	var req dto.EventRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.UserID <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	inserted, err := h.eventService.Enqueue(r.Context(), req.ID, req.UserID, domain.EventType(req.EventType), req.RefID, req.OccurredAt)
	if err != nil {
		switch {
		case errors.Is(err, eventsvc.ErrInvalidEventID),
			errors.Is(err, eventsvc.ErrUnknownEventType):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusAccepted, dto.EventAcceptedDTO{
		ID:        req.ID,
		Duplicate: !inserted,
	})
}
