package redisstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/SscSPs/bizledger/internal/core/domain"
	"github.com/SscSPs/bizledger/internal/core/ports"
	"github.com/SscSPs/bizledger/internal/utils/accounting"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

const (
	JournalEventsChannel   = "bizledger.journal.posted"
	EventTypeJournalPosted = "journal.posted"
)

// JournalPostedEvent is the payload published for every posted entry.
type JournalPostedEvent struct {
	EventType       string          `json:"event_type"`
	EntryID         string          `json:"entry_id"`
	EntryDate       time.Time       `json:"entry_date"`
	ReferenceNumber string          `json:"reference_number"`
	ProjectID       *string         `json:"project_id,omitempty"`
	InvoiceID       *string         `json:"invoice_id,omitempty"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	LineCount       int             `json:"line_count"`
	RecordedBy      string          `json:"recorded_by"`
	Timestamp       time.Time       `json:"timestamp"`
}

// JournalPublisher publishes journal events on a redis pub/sub channel.
type JournalPublisher struct {
	rdb redis.UniversalClient
	now func() time.Time
}

func NewJournalPublisher(rdb redis.UniversalClient) *JournalPublisher {
	return &JournalPublisher{rdb: rdb, now: time.Now}
}

var _ ports.JournalPublisher = (*JournalPublisher)(nil)

// PublishJournalPosted announces entry on JournalEventsChannel.
func (p *JournalPublisher) PublishJournalPosted(ctx context.Context, entry domain.JournalEntry) error {
	totalDebit, _ := accounting.EntryTotals(entry.Lines)
	event := JournalPostedEvent{
		EventType:       EventTypeJournalPosted,
		EntryID:         entry.EntryID,
		EntryDate:       entry.EntryDate,
		ReferenceNumber: entry.ReferenceNumber,
		ProjectID:       entry.ProjectID,
		InvoiceID:       entry.InvoiceID,
		TotalAmount:     totalDebit,
		LineCount:       len(entry.Lines),
		RecordedBy:      entry.RecordedByUserID,
		Timestamp:       p.now().UTC(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}
	if err := p.rdb.Publish(ctx, JournalEventsChannel, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}
	return nil
}
