package membership

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/homestayhq/loyalty/internal/domain"
	"github.com/homestayhq/loyalty/internal/dto"
	"github.com/homestayhq/loyalty/internal/service/membershipservice"
	"github.com/homestayhq/loyalty/pkg/auth"
	"github.com/homestayhq/loyalty/pkg/utils"
)

//go:generate mockgen -source=membership.go -destination=mock_service.go -package=membership

type Service interface {
	Activate(ctx context.Context, userID int, planSlug string, cycle domain.BillingCycle) (*membershipservice.MembershipState, error)
	Current(ctx context.Context, userID int) (*domain.Membership, error)
}

type MembershipHandler struct {
	membershipService Service
}

func New(membershipService Service) *MembershipHandler {
	return &MembershipHandler{
		membershipService: membershipService,
	}
}

// Activate godoc
//
//	@Summary		Activate a membership plan
//	@Description	Binds the user to a plan, merges its entitlements, raises the loyalty tier and credits the signup bonus. Triggered by payment confirmation or an admin.
//	@Tags			Membership
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.MembershipActivateRequestDTO	true	"Activation payload"
//	@Success		200		{object}	dto.MembershipResponseDTO	"Membership snapshot"
//	@Failure		400		{object}	utils.Response				"Bad request"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		403		{object}	utils.Response				"Admin role required"
//	@Failure		404		{object}	utils.Response				"Plan or user not found"
//	@Failure		422		{object}	utils.Response				"Invalid billing cycle"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/loyalty/membership/activate [post]
func (h *MembershipHandler) Activate(w http.ResponseWriter, r *http.Request) {
	var req dto.MembershipActivateRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.UserID <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	state, err := h.membershipService.Activate(r.Context(), req.UserID, req.PlanSlug, domain.BillingCycle(req.BillingCycle))
	if err != nil {
		switch {
		case errors.Is(err, membershipservice.ErrPlanNotFound),
			errors.Is(err, membershipservice.ErrUserNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, membershipservice.ErrInvalidBillingCycle):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.MembershipResponseDTO{
		PlanSlug:     state.PlanSlug,
		Status:       string(state.Status),
		BillingCycle: string(state.BillingCycle),
		StartedAt:    state.StartedAt,
		ExpiresAt:    state.ExpiresAt,
		Tier:         string(state.Tier),
		BonusPoints:  state.BonusPoints,
		Features:     state.Features,
	})
}

// GetMembership godoc
//
//	@Summary		Get current membership
//	@Description	The caller's membership snapshot; an expired plan is reported EXPIRED lazily.
//	@Tags			Membership
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.MembershipResponseDTO	"Membership snapshot"
//	@Success		204	{object}	utils.Response				"No membership"
//	@Failure		401	{object}	utils.Response				"User not authorized"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/loyalty/membership [get]
func (h *MembershipHandler) GetMembership(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	membership, err := h.membershipService.Current(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if membership == nil {
		utils.RespondWithError(w, http.StatusNoContent, "No membership")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.MembershipResponseDTO{
		PlanSlug:     membership.PlanSlug,
		Status:       string(membership.Status),
		BillingCycle: string(membership.BillingCycle),
		StartedAt:    membership.StartedAt,
		ExpiresAt:    membership.ExpiresAt,
		Tier:         string(membership.Tier),
		Features:     membership.Features,
	})
}
