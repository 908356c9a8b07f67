package repo

import (
	"github.com/homestayhq/loyalty/internal/events"
	"github.com/homestayhq/loyalty/internal/pg"
	catalogrepo "github.com/homestayhq/loyalty/internal/repo/catalog-repo"
	eventrepo "github.com/homestayhq/loyalty/internal/repo/event-repo"
	ledgerrepo "github.com/homestayhq/loyalty/internal/repo/ledger-repo"
	membershiprepo "github.com/homestayhq/loyalty/internal/repo/membership-repo"
	questrepo "github.com/homestayhq/loyalty/internal/repo/quest-repo"
	"github.com/homestayhq/loyalty/internal/service/catalogservice"
	"github.com/homestayhq/loyalty/internal/service/ledgerservice"
	"github.com/homestayhq/loyalty/internal/service/membershipservice"
	"github.com/homestayhq/loyalty/internal/service/questservice"
)

type Repositories struct {
	LedgerRepo     ledgerservice.Repo
	CatalogRepo    catalogservice.CatalogRepo
	QuestRepo      questservice.QuestRepo
	MembershipRepo membershipservice.MembershipRepo
	EventRepo      events.Repo
}

func New(conn pg.Database) *Repositories {
	ledgerRepo := ledgerrepo.New(conn)
	catalogRepo := catalogrepo.New(conn)
	questRepo := questrepo.New(conn)
	membershipRepo := membershiprepo.New(conn)
	eventRepo := eventrepo.New(conn)

	return &Repositories{
		LedgerRepo:     ledgerRepo,
		CatalogRepo:    catalogRepo,
		QuestRepo:      questRepo,
		MembershipRepo: membershipRepo,
		EventRepo:      eventRepo,
	}
}
