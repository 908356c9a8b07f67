package ledger

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/homestayhq/loyalty/internal/domain"
	"github.com/homestayhq/loyalty/internal/dto"
	"github.com/homestayhq/loyalty/internal/service/ledgerservice"
	"github.com/homestayhq/loyalty/internal/service/tierservice"
	"github.com/homestayhq/loyalty/pkg/auth"
	"github.com/homestayhq/loyalty/pkg/utils"
)

//go:generate mockgen -source=ledger.go -destination=mock_service.go -package=ledger

type Service interface {
	BalanceOf(ctx context.Context, userID int) (*domain.Balance, error)
	History(ctx context.Context, userID int, f ledgerservice.HistoryFilter) ([]domain.LedgerTransaction, *ledgerservice.Summary, int, error)
}

type LedgerHandler struct {
	ledgerService Service
}

func New(ledgerService Service) *LedgerHandler {
	return &LedgerHandler{
		ledgerService: ledgerService,
	}
}

// GetBalance godoc
//
//	@Summary		Get current loyalty balance
//	@Description	Current points balance, cached tier and progress toward the next tier for the authenticated user.
//	@Tags			Ledger
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.BalanceResponseDTO	"Balance and tier position"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/loyalty/balance [get]
func (h *LedgerHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	balance, err := h.ledgerService.BalanceOf(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	progress := tierservice.ProgressToNext(balance.CurrentBalance)
	resp := dto.BalanceResponseDTO{
		Balance:         balance.CurrentBalance,
		TotalEarned:     balance.TotalEarned,
		TotalSpent:      balance.TotalSpent,
		Tier:            string(balance.Tier),
		ProgressPercent: progress.Percent,
		Benefits:        tierservice.Lookup(balance.Tier).Benefits,
	}
	if progress.NextTier != nil {
		next := string(*progress.NextTier)
		resp.NextTier = &next
		resp.PointsToNext = progress.PointsToNext
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// GetHistory godoc
//
//	@Summary		Get ledger history
//	@Description	Paginated, reverse-chronological transaction list with a running earned/spent summary.
//	@Tags			Ledger
//	@Security		BearerAuth
//	@Produce		json
//	@Param			source	query		string	false	"Filter by transaction source"
//	@Param			from	query		string	false	"RFC3339 lower bound"
//	@Param			to		query		string	false	"RFC3339 upper bound"
//	@Param			page	query		int		false	"Page number"
//	@Param			limit	query		int		false	"Page size"
//	@Success		200		{object}	dto.HistoryResponseDTO	"Transaction history"
//	@Failure		400		{object}	utils.Response			"Malformed filter"
//	@Failure		401		{object}	utils.Response			"User not authorized"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/loyalty/history [get]
func (h *LedgerHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	filter, err := parseHistoryFilter(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	txs, summary, total, err := h.ledgerService.History(r.Context(), userID, filter)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch history")
		return
	}

	transactions := make([]dto.TransactionDTO, len(txs))
	for i, tx := range txs {
		transactions[i] = dto.TransactionDTO{
			ID:              tx.ID,
			Amount:          tx.Amount,
			Source:          string(tx.Source),
			BalanceAfter:    tx.BalanceAfter,
			RelatedEntityID: tx.RelatedEntityID,
			Description:     tx.Description,
			CreatedAt:       tx.CreatedAt,
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.HistoryResponseDTO{
		Transactions: transactions,
		Summary: dto.HistorySummaryDTO{
			TotalEarned:    summary.TotalEarned,
			TotalSpent:     summary.TotalSpent,
			CurrentBalance: summary.CurrentBalance,
		},
		Pagination: dto.PaginationDTO{
			Page:  filter.Page,
			Limit: filter.Limit,
			Total: total,
		},
	})
}

// GetTiers godoc
//
//	@Summary		Get the tier ladder
//	@Description	The full tier table plus the caller's current position and progress toward the next tier.
//	@Tags			Ledger
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.TiersResponseDTO	"Tier ladder"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/loyalty/tiers [get]
func (h *LedgerHandler) GetTiers(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	balance, err := h.ledgerService.BalanceOf(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	ladder := tierservice.Tiers()
	tiers := make([]dto.TierDTO, len(ladder))
	for i, t := range ladder {
		tiers[i] = dto.TierDTO{
			Tier:            string(t.Tier),
			MinPoints:       t.MinPoints,
			MaxPoints:       t.MaxPoints,
			BonusMultiplier: t.BonusMultiplier,
			Benefits:        t.Benefits,
		}
	}

	progress := tierservice.ProgressToNext(balance.CurrentBalance)
	resp := dto.TiersResponseDTO{
		Tiers:           tiers,
		CurrentTier:     string(balance.Tier),
		CurrentBalance:  balance.CurrentBalance,
		ProgressPercent: progress.Percent,
	}
	if progress.NextTier != nil {
		next := string(*progress.NextTier)
		resp.NextTier = &next
		resp.PointsToNext = progress.PointsToNext
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

func parseHistoryFilter(r *http.Request) (ledgerservice.HistoryFilter, error) {
	var f ledgerservice.HistoryFilter

	q := r.URL.Query()
	if source := q.Get("source"); source != "" {
		s := domain.TxSource(source)
		f.Source = &s
	}
	if from := q.Get("from"); from != "" {
		t, err := time.Parse(time.RFC3339, from)
		if err != nil {
			return f, err
		}
		f.From = &t
	}
	if to := q.Get("to"); to != "" {
		t, err := time.Parse(time.RFC3339, to)
		if err != nil {
			return f, err
		}
		f.To = &t
	}
	f.Page, _ = strconv.Atoi(q.Get("page"))
	f.Limit, _ = strconv.Atoi(q.Get("limit"))
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 100 {
		f.Limit = 20
	}
	return f, nil
}
