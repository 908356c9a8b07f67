package repo

import (
	"testing"

	catalogrepo "github.com/homestayhq/loyalty/internal/repo/catalog-repo"
	eventrepo "github.com/homestayhq/loyalty/internal/repo/event-repo"
	ledgerrepo "github.com/homestayhq/loyalty/internal/repo/ledger-repo"
	membershiprepo "github.com/homestayhq/loyalty/internal/repo/membership-repo"
	questrepo "github.com/homestayhq/loyalty/internal/repo/quest-repo"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestNew(t *testing.T) {
	repo, mock := NewMock(t)

	assert.NotNil(t, repo.LedgerRepo)
	assert.NotNil(t, repo.CatalogRepo)
	assert.NotNil(t, repo.QuestRepo)
	assert.NotNil(t, repo.MembershipRepo)
	assert.NotNil(t, repo.EventRepo)

	assert.IsType(t, &ledgerrepo.Repository{}, repo.LedgerRepo)
	assert.IsType(t, &catalogrepo.Repository{}, repo.CatalogRepo)
	assert.IsType(t, &questrepo.Repository{}, repo.QuestRepo)
	assert.IsType(t, &membershiprepo.Repository{}, repo.MembershipRepo)
	assert.IsType(t, &eventrepo.Repository{}, repo.EventRepo)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}
