package services

import (
	"github.com/SscSPs/bizledger/internal/core/ports"
	portsrepo "github.com/SscSPs/bizledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bizledger/internal/core/ports/services"
	"github.com/SscSPs/bizledger/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// cache and publisher may be nil, in which case reports are not cached and
// postings are not announced.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, cache ports.ReportCache, publisher ports.JournalPublisher) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Account = NewAccountService(repos.AccountRepo)
	container.Journal = NewJournalService(
		repos.JournalRepo,
		repos.AccountRepo,
		WithJournalReportCache(cache),
		WithJournalPublisher(publisher),
	)
	container.Reporting = NewReportingService(
		repos.JournalRepo,
		repos.AccountRepo,
		WithReportCache(cache),
	)
	container.Auth = NewAuthService(cfg, repos.UserRepo)

	return container
}
