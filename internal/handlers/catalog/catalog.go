package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/homestayhq/loyalty/internal/domain"
	"github.com/homestayhq/loyalty/internal/dto"
	"github.com/homestayhq/loyalty/internal/service/catalogservice"
	"github.com/homestayhq/loyalty/internal/service/ledgerservice"
	"github.com/homestayhq/loyalty/pkg/auth"
	"github.com/homestayhq/loyalty/pkg/utils"
)

//go:generate mockgen -source=catalog.go -destination=mock_service.go -package=catalog

type Service interface {
	Browse(ctx context.Context, userID int, f catalogservice.CatalogFilter) ([]catalogservice.BrowseItem, *domain.Balance, int, error)
	Redeem(ctx context.Context, userID, itemID, quantity int) (*domain.Redemption, error)
	Redemptions(ctx context.Context, userID, page, limit int) ([]domain.Redemption, int, error)
}

type CatalogHandler struct {
	catalogService Service
}

func New(catalogService Service) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

// Browse godoc
//
//	@Summary		Browse the rewards catalog
//	@Description	Catalog items annotated per caller with affordability against the current balance.
//	@Tags			Catalog
//	@Security		BearerAuth
//	@Produce		json
//	@Param			category		query		string	false	"Filter by category"
//	@Param			min_points		query		int		false	"Minimum cost"
//	@Param			max_points		query		int		false	"Maximum cost"
//	@Param			available_only	query		bool	false	"Hide unavailable and sold-out items"
//	@Param			page			query		int		false	"Page number"
//	@Param			limit			query		int		false	"Page size"
//	@Success		200				{object}	dto.CatalogResponseDTO	"Catalog page"
//	@Failure		401				{object}	utils.Response			"User not authorized"
//	@Failure		500				{object}	utils.Response			"Internal server error"
//	@Router			/api/loyalty/catalog [get]
func (h *CatalogHandler) Browse(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	f := parseCatalogFilter(r)
	items, balance, total, err := h.catalogService.Browse(r.Context(), userID, f)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch catalog")
		return
	}

	itemDTOs := make([]dto.CatalogItemDTO, len(items))
	for i, item := range items {
		itemDTOs[i] = dto.CatalogItemDTO{
			ID:           item.ID,
			Name:         item.Name,
			Description:  item.Description,
			Category:     item.Category,
			PointsCost:   item.PointsCost,
			Stock:        item.Stock,
			IsAvailable:  item.IsAvailable,
			ValidityDays: item.ValidityDays,
			CanAfford:    item.CanAfford,
		}
		if item.RequiredTier != nil {
			tier := string(*item.RequiredTier)
			itemDTOs[i].RequiredTier = &tier
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.CatalogResponseDTO{
		Items:       itemDTOs,
		Pagination:  dto.PaginationDTO{Page: f.Page, Limit: f.Limit, Total: total},
		UserBalance: balance.CurrentBalance,
		UserTier:    string(balance.Tier),
	})
}

// Redeem godoc
//
//	@Summary		Redeem a catalog reward
//	@Description	Exchanges points for a reward. The debit, stock decrement and redemption record are one atomic unit.
//	@Tags			Catalog
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RedeemRequestDTO	true	"Redemption request"
//	@Success		200		{object}	dto.RedemptionResponseDTO	"Redemption order"
//	@Failure		400		{object}	utils.Response				"Bad request"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		402		{object}	dto.InsufficientBalanceDTO	"Insufficient balance"
//	@Failure		403		{object}	dto.TierRequirementDTO		"Tier requirement not met"
//	@Failure		404		{object}	utils.Response				"Reward not found"
//	@Failure		409		{object}	dto.InsufficientStockDTO	"Insufficient stock"
//	@Failure		422		{object}	utils.Response				"Invalid quantity or unavailable reward"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/loyalty/catalog/redeem [post]
func (h *CatalogHandler) Redeem(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.RedeemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	redemption, err := h.catalogService.Redeem(r.Context(), userID, req.CatalogItemID, req.Quantity)
	if err != nil {
		respondRedeemError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.RedemptionResponseDTO{
		RedemptionCode: redemption.RedemptionCode,
		Status:         string(redemption.Status),
		PointsSpent:    redemption.PointsSpent,
		Quantity:       redemption.Quantity,
		ExpiresAt:      redemption.ExpiresAt,
	})
}

// GetRedemptions godoc
//
//	@Summary		Get redemption history
//	@Description	The caller's redemption orders, newest first. Pending orders past their expiry are reported EXPIRED.
//	@Tags			Catalog
//	@Security		BearerAuth
//	@Produce		json
//	@Param			page	query		int	false	"Page number"
//	@Param			limit	query		int	false	"Page size"
//	@Success		200		{object}	dto.RedemptionsResponseDTO	"Redemption history"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/loyalty/redemptions [get]
func (h *CatalogHandler) GetRedemptions(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	redemptions, total, err := h.catalogService.Redemptions(r.Context(), userID, page, limit)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch redemptions")
		return
	}

	items := make([]dto.RedemptionResponseDTO, len(redemptions))
	for i, rd := range redemptions {
		items[i] = dto.RedemptionResponseDTO{
			RedemptionCode: rd.RedemptionCode,
			Status:         string(rd.Status),
			PointsSpent:    rd.PointsSpent,
			Quantity:       rd.Quantity,
			ExpiresAt:      rd.ExpiresAt,
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.RedemptionsResponseDTO{
		Redemptions: items,
		Pagination:  dto.PaginationDTO{Page: page, Limit: limit, Total: total},
	})
}

func respondRedeemError(w http.ResponseWriter, err error) {
	var insufficientBalance *ledgerservice.InsufficientBalanceError
	var insufficientStock *catalogservice.InsufficientStockError
	var tierRequirement *catalogservice.TierRequirementError

	switch {
	case errors.Is(err, catalogservice.ErrRewardNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, catalogservice.ErrRewardUnavailable),
		errors.Is(err, catalogservice.ErrInvalidQuantity):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.As(err, &insufficientBalance):
		utils.RespondWithJSON(w, http.StatusPaymentRequired, dto.InsufficientBalanceDTO{
			Message:   "insufficient balance",
			Required:  insufficientBalance.Required,
			Available: insufficientBalance.Available,
		})
	case errors.As(err, &insufficientStock):
		utils.RespondWithJSON(w, http.StatusConflict, dto.InsufficientStockDTO{
			Message:   "insufficient stock",
			Available: insufficientStock.Available,
		})
	case errors.As(err, &tierRequirement):
		utils.RespondWithJSON(w, http.StatusForbidden, dto.TierRequirementDTO{
			Message:  "tier requirement not met",
			Required: string(tierRequirement.Required),
			Current:  string(tierRequirement.Current),
		})
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func parseCatalogFilter(r *http.Request) catalogservice.CatalogFilter {
	q := r.URL.Query()
	f := catalogservice.CatalogFilter{
		Category:      q.Get("category"),
		AvailableOnly: q.Get("available_only") == "true",
	}
	if v := q.Get("min_points"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			f.MinPoints = &n
		}
	}
	if v := q.Get("max_points"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			f.MaxPoints = &n
		}
	}
	f.Page, _ = strconv.Atoi(q.Get("page"))
	f.Limit, _ = strconv.Atoi(q.Get("limit"))
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 100 {
		f.Limit = 20
	}
	return f
}
