package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	_ "github.com/homestayhq/loyalty/docs"
	cataloghandlers "github.com/homestayhq/loyalty/internal/handlers/catalog"
	eventhandlers "github.com/homestayhq/loyalty/internal/handlers/events"
	ledgerhandlers "github.com/homestayhq/loyalty/internal/handlers/ledger"
	membershiphandlers "github.com/homestayhq/loyalty/internal/handlers/membership"
	questhandlers "github.com/homestayhq/loyalty/internal/handlers/quests"
	"github.com/homestayhq/loyalty/internal/service"
	"github.com/homestayhq/loyalty/pkg/auth"
	httpSwagger "github.com/swaggo/http-swagger"
)

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

type LedgerHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	GetHistory(w http.ResponseWriter, r *http.Request)
	GetTiers(w http.ResponseWriter, r *http.Request)
}

type CatalogHandler interface {
	Browse(w http.ResponseWriter, r *http.Request)
	Redeem(w http.ResponseWriter, r *http.Request)
	GetRedemptions(w http.ResponseWriter, r *http.Request)
}

type QuestHandler interface {
	ListQuests(w http.ResponseWriter, r *http.Request)
	GetProgress(w http.ResponseWriter, r *http.Request)
	RecordProgress(w http.ResponseWriter, r *http.Request)
}

type MembershipHandler interface {
	Activate(w http.ResponseWriter, r *http.Request)
	GetMembership(w http.ResponseWriter, r *http.Request)
}

type EventHandler interface {
	Enqueue(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	LedgerHandler     LedgerHandler
	CatalogHandler    CatalogHandler
	QuestHandler      QuestHandler
	MembershipHandler MembershipHandler
	EventHandler      EventHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		LedgerHandler:     ledgerhandlers.New(s.LedgerService),
		CatalogHandler:    cataloghandlers.New(s.CatalogService),
		QuestHandler:      questhandlers.New(s.QuestService),
		MembershipHandler: membershiphandlers.New(s.MembershipService),
		EventHandler:      eventhandlers.New(s.EventDispatcher),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api/loyalty", func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Get("/balance", h.LedgerHandler.GetBalance)
		r.Get("/history", h.LedgerHandler.GetHistory)
		r.Get("/tiers", h.LedgerHandler.GetTiers)

		r.Route("/catalog", func(r chi.Router) {
			r.Get("/", h.CatalogHandler.Browse)
			r.Post("/redeem", h.CatalogHandler.Redeem)
		})
		r.Get("/redemptions", h.CatalogHandler.GetRedemptions)

		r.Route("/quests", func(r chi.Router) {
			r.Get("/", h.QuestHandler.ListQuests)
			r.Get("/{questID}", h.QuestHandler.GetProgress)
			r.Post("/{questID}/progress", h.QuestHandler.RecordProgress)
		})

		r.Route("/membership", func(r chi.Router) {
			r.Get("/", h.MembershipHandler.GetMembership)
			r.With(auth.RequireRole(auth.RoleAdmin)).Post("/activate", h.MembershipHandler.Activate)
		})

		r.With(auth.RequireRole(auth.RoleAdmin)).Post("/events", h.EventHandler.Enqueue)
	})

	return r
}
