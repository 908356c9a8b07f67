package service

import (
	"github.com/homestayhq/loyalty/internal/config"
	"github.com/homestayhq/loyalty/internal/events"
	cataloghandlers "github.com/homestayhq/loyalty/internal/handlers/catalog"
	ledgerhandlers "github.com/homestayhq/loyalty/internal/handlers/ledger"
	membershiphandlers "github.com/homestayhq/loyalty/internal/handlers/membership"
	questhandlers "github.com/homestayhq/loyalty/internal/handlers/quests"
	"github.com/homestayhq/loyalty/internal/pg"
	"github.com/homestayhq/loyalty/internal/repo"
	catalogservice "github.com/homestayhq/loyalty/internal/service/catalogservice"
	ledgerservice "github.com/homestayhq/loyalty/internal/service/ledgerservice"
	membershipservice "github.com/homestayhq/loyalty/internal/service/membershipservice"
	questservice "github.com/homestayhq/loyalty/internal/service/questservice"
)

type Services struct {
	LedgerService     ledgerhandlers.Service
	CatalogService    cataloghandlers.Service
	QuestService      questhandlers.Service
	MembershipService membershiphandlers.Service
	EventDispatcher   *events.Dispatcher
}

func New(cfg *config.Config, repo *repo.Repositories, txManager pg.TXManager) *Services {
	ledgerService := ledgerservice.New(repo.LedgerRepo, txManager)
	catalogService := catalogservice.New(repo.CatalogRepo, ledgerService, txManager)
	questService := questservice.New(repo.QuestRepo, ledgerService, txManager)
	membershipService := membershipservice.New(repo.MembershipRepo, ledgerService, txManager)
	eventDispatcher := events.New(cfg, repo.EventRepo, ledgerService, txManager)

	return &Services{
		LedgerService:     ledgerService,
		CatalogService:    catalogService,
		QuestService:      questService,
		MembershipService: membershipService,
		EventDispatcher:   eventDispatcher,
	}
}
