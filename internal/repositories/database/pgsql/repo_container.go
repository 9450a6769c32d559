package pgsql

import (
	portsrepo "github.com/SscSPs/bizledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo: newPgxAccountRepository(dbPool),
		UserRepo:    newPgxUserRepository(dbPool),
		JournalRepo: newPgxJournalRepository(dbPool),
	}
}
