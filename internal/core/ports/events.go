package ports

import (
	"context"

	"github.com/SscSPs/bizledger/internal/core/domain"
)

// ReportCache stores rendered reports. Keys are scoped by a generation, the
// report kind and a canonical encoding of the request parameters.
// Invalidate moves to a new generation, which drops every cached report at
// once. Callers read Generation before loading report data and pass it to
// both Get and Set, so a report built before an invalidation is never stored
// under the newer generation.
type ReportCache interface {
	Generation(ctx context.Context) (int64, error)
	Get(ctx context.Context, gen int64, kind, params string, dest any) (bool, error)
	Set(ctx context.Context, gen int64, kind, params string, value any) error
	Invalidate(ctx context.Context) error
}

// JournalPublisher announces posted journal entries to other consumers.
type JournalPublisher interface {
	PublishJournalPosted(ctx context.Context, entry domain.JournalEntry) error
}
