package services

import (
	"context"

	"github.com/SscSPs/bizledger/internal/core/domain"
)

// noopReportCache is used when no cache backend is configured. Every lookup misses.
type noopReportCache struct{}

func (noopReportCache) Generation(context.Context) (int64, error) {
	return 0, nil
}

func (noopReportCache) Get(context.Context, int64, string, string, any) (bool, error) {
	return false, nil
}

func (noopReportCache) Set(context.Context, int64, string, string, any) error {
	return nil
}

func (noopReportCache) Invalidate(context.Context) error {
	return nil
}

type noopJournalPublisher struct{}

func (noopJournalPublisher) PublishJournalPosted(context.Context, domain.JournalEntry) error {
	return nil
}
