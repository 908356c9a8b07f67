package quests

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/homestayhq/loyalty/internal/dto"
	"github.com/homestayhq/loyalty/internal/service/questservice"
	"github.com/homestayhq/loyalty/pkg/auth"
	"github.com/homestayhq/loyalty/pkg/utils"
)

//go:generate mockgen -source=quests.go -destination=mock_service.go -package=quests

type Service interface {
	RecordProgress(ctx context.Context, userID, questID, increment int) (*questservice.ProgressResult, error)
	Progress(ctx context.Context, userID, questID int) (*questservice.ProgressResult, error)
	ActiveQuests(ctx context.Context, userID int) ([]questservice.QuestWithProgress, error)
}

type QuestHandler struct {
	questService Service
}

func New(questService Service) *QuestHandler {
	return &QuestHandler{
		questService: questService,
	}
}

func toProgressDTO(p *questservice.ProgressResult) dto.QuestProgressResponseDTO {
	return dto.QuestProgressResponseDTO{
		QuestID:         p.QuestID,
		CurrentCount:    p.CurrentCount,
		TargetCount:     p.TargetCount,
		IsCompleted:     p.IsCompleted,
		CompletedAt:     p.CompletedAt,
		ProgressPercent: p.ProgressPercent,
		AwardedPoints:   p.AwardedPoints,
		AwardedBadgeID:  p.AwardedBadgeID,
	}
}

// ListQuests godoc
//
//	@Summary		List active quests
//	@Description	Active quests annotated with the caller's progress in the current cycle.
//	@Tags			Quests
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.QuestWithProgressDTO	"Active quests"
//	@Failure		401	{object}	utils.Response				"User not authorized"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/loyalty/quests [get]
func (h *QuestHandler) ListQuests(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	quests, err := h.questService.ActiveQuests(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch quests")
		return
	}

	resp := make([]dto.QuestWithProgressDTO, len(quests))
	for i, q := range quests {
		resp[i] = dto.QuestWithProgressDTO{
			Quest: dto.QuestDTO{
				ID:           q.Quest.ID,
				Title:        q.Quest.Title,
				Description:  q.Quest.Description,
				TargetCount:  q.Quest.TargetCount,
				Cadence:      string(q.Quest.Cadence),
				RewardPoints: q.Quest.RewardPoints,
			},
			Progress: toProgressDTO(&q.Progress),
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// GetProgress godoc
//
//	@Summary		Get quest progress
//	@Description	Progress toward one quest in the current cycle, without recording anything.
//	@Tags			Quests
//	@Security		BearerAuth
//	@Produce		json
//	@Param			questID	path		int	true	"Quest id"
//	@Success		200		{object}	dto.QuestProgressResponseDTO	"Current progress"
//	@Failure		401		{object}	utils.Response					"User not authorized"
//	@Failure		404		{object}	utils.Response					"Quest not found"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/loyalty/quests/{questID} [get]
func (h *QuestHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	questID, err := strconv.Atoi(chi.URLParam(r, "questID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid quest id")
		return
	}

	progress, err := h.questService.Progress(r.Context(), userID, questID)
	if err != nil {
		respondQuestError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toProgressDTO(progress))
}

// RecordProgress godoc
//
//	@Summary		Record quest progress
//	@Description	Advances progress by the increment. Completion pays out points and the badge exactly once per cycle.
//	@Tags			Quests
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			questID	path		int							true	"Quest id"
//	@Param			request	body		dto.QuestProgressRequestDTO	false	"Progress increment (defaults to 1)"
//	@Success		200		{object}	dto.QuestProgressResponseDTO	"Updated progress"
//	@Failure		400		{object}	utils.Response					"Bad request"
//	@Failure		401		{object}	utils.Response					"User not authorized"
//	@Failure		404		{object}	utils.Response					"Quest not found"
//	@Failure		422		{object}	utils.Response					"Quest inactive or invalid increment"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/loyalty/quests/{questID}/progress [post]
func (h *QuestHandler) RecordProgress(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	questID, err := strconv.Atoi(chi.URLParam(r, "questID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid quest id")
		return
	}

	req := dto.QuestProgressRequestDTO{Increment: 1}
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}

	progress, err := h.questService.RecordProgress(r.Context(), userID, questID, req.Increment)
	if err != nil {
		respondQuestError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toProgressDTO(progress))
}

func respondQuestError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, questservice.ErrQuestNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, questservice.ErrQuestInactive),
		errors.Is(err, questservice.ErrInvalidIncrement),
		errors.Is(err, questservice.ErrInvalidCadence):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
