package pgsql

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/SscSPs/bizledger/internal/apperrors"
	"github.com/SscSPs/bizledger/internal/core/domain"
	portsrepo "github.com/SscSPs/bizledger/internal/core/ports/repositories"
	"github.com/SscSPs/bizledger/internal/models"
	"github.com/SscSPs/bizledger/internal/utils/mapping"
	"github.com/SscSPs/bizledger/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const entryColumns = `entry_id, entry_date, description, reference_number, project_id, invoice_id, recorded_by_user_id,
	created_at, created_by, last_updated_at, last_updated_by`

// Stable newest-first order; entry_id breaks ties between entries created in the same instant.
const entryOrder = ` ORDER BY entry_date DESC, created_at DESC, entry_id DESC`

type PgxJournalRepository struct {
	BaseRepository
}

func newPgxJournalRepository(pool *pgxpool.Pool) *PgxJournalRepository {
	return &PgxJournalRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.JournalRepositoryFacade = (*PgxJournalRepository)(nil)

// SaveJournalEntry inserts the entry header and all lines in one transaction.
func (r *PgxJournalRepository) SaveJournalEntry(ctx context.Context, entry domain.JournalEntry) error {
	m, lines := mapping.ToModelJournalEntry(entry)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) //nolint:errcheck

	_, err = tx.Exec(ctx, `INSERT INTO journal_entries (`+entryColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);`,
		m.EntryID,
		m.EntryDate,
		m.Description,
		m.ReferenceNumber,
		m.ProjectID,
		m.InvoiceID,
		m.RecordedByUserID,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: reference number %s already exists", apperrors.ErrDuplicate, m.ReferenceNumber)
		}
		return fmt.Errorf("failed to insert journal entry %s: %w", m.EntryID, err)
	}

	batch := &pgx.Batch{}
	for _, l := range lines {
		batch.Queue(`INSERT INTO journal_lines (line_id, entry_id, line_no, account_id, amount, is_debit)
			VALUES ($1, $2, $3, $4, $5, $6);`,
			l.LineID, l.EntryID, l.LineNo, l.AccountID, l.Amount, l.IsDebit)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to insert journal lines for entry %s: %w", m.EntryID, err)
	}

	return r.Commit(ctx, tx)
}

// FindJournalEntryByID retrieves a journal entry together with its lines.
func (r *PgxJournalRepository) FindJournalEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+entryColumns+` FROM journal_entries WHERE entry_id = $1;`, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal entry %s: %w", entryID, err)
	}
	entries, err := r.collectEntries(ctx, rows)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: journal entry %s", apperrors.ErrNotFound, entryID)
	}
	return &entries[0], nil
}

// ListJournalEntries returns one page of entries newest first. The page is
// fetched with one extra row to learn whether a next page exists.
func (r *PgxJournalRepository) ListJournalEntries(ctx context.Context, filter domain.JournalFilter, limit int, nextToken *string) ([]domain.JournalEntry, *string, error) {
	limit = pagination.NormalizeLimit(limit)

	var cursor *pagination.Cursor
	if nextToken != nil && *nextToken != "" {
		c, err := pagination.DecodeCursor(*nextToken)
		if err != nil {
			return nil, nil, err
		}
		cursor = &c
	}

	query, args := buildJournalListQuery(filter, cursor, limit+1)
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query journal entries", err)
	}
	entries, err := r.collectEntries(ctx, rows)
	if err != nil {
		return nil, nil, err
	}

	var nextTokenVal *string
	if len(entries) > limit {
		entries = entries[:limit]
		last := entries[limit-1]
		token := pagination.EncodeCursor(pagination.Cursor{
			EntryDate: last.EntryDate,
			CreatedAt: last.CreatedAt,
			EntryID:   last.EntryID,
		})
		nextTokenVal = &token
	}
	return entries, nextTokenVal, nil
}

// ListJournalEntriesInRange retrieves every entry dated inside period.
func (r *PgxJournalRepository) ListJournalEntriesInRange(ctx context.Context, period domain.Period) ([]domain.JournalEntry, error) {
	query, args := buildJournalListQuery(domain.JournalFilter{Period: period}, nil, 0)
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query journal entries in range", err)
	}
	return r.collectEntries(ctx, rows)
}

// buildJournalListQuery renders the entry header query for filter. A zero
// fetchLimit means no LIMIT clause.
func buildJournalListQuery(filter domain.JournalFilter, cursor *pagination.Cursor, fetchLimit int) (string, []any) {
	var conditions []string
	var args []any
	arg := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if filter.ProjectID != nil {
		conditions = append(conditions, "project_id = "+arg(*filter.ProjectID))
	}
	if filter.InvoiceID != nil {
		conditions = append(conditions, "invoice_id = "+arg(*filter.InvoiceID))
	}
	if !filter.Period.Start.IsZero() {
		conditions = append(conditions, "entry_date >= "+arg(filter.Period.Start))
	}
	if !filter.Period.End.IsZero() {
		conditions = append(conditions, "entry_date <= "+arg(filter.Period.End))
	}
	if cursor != nil {
		conditions = append(conditions, fmt.Sprintf("(entry_date, created_at, entry_id) < (%s, %s, %s)",
			arg(cursor.EntryDate), arg(cursor.CreatedAt), arg(cursor.EntryID)))
	}

	var sb strings.Builder
	sb.WriteString(`SELECT ` + entryColumns + ` FROM journal_entries`)
	if len(conditions) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(conditions, " AND "))
	}
	sb.WriteString(entryOrder)
	if fetchLimit > 0 {
		sb.WriteString(" LIMIT " + arg(fetchLimit))
	}
	sb.WriteString(";")
	return sb.String(), args
}

// collectEntries scans entry headers from rows, closes them, then attaches lines.
func (r *PgxJournalRepository) collectEntries(ctx context.Context, rows pgx.Rows) ([]domain.JournalEntry, error) {
	headers, err := scanEntryHeaders(rows)
	if err != nil {
		return nil, err
	}
	if len(headers) == 0 {
		return []domain.JournalEntry{}, nil
	}

	ids := make([]string, len(headers))
	for i, h := range headers {
		ids[i] = h.EntryID
	}
	linesByEntry, err := r.findLines(ctx, ids)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.JournalEntry, len(headers))
	for i, h := range headers {
		entries[i] = mapping.ToDomainJournalEntry(h, linesByEntry[h.EntryID])
	}
	return entries, nil
}

func scanEntryHeaders(rows pgx.Rows) ([]models.JournalEntry, error) {
	defer rows.Close()

	var headers []models.JournalEntry
	for rows.Next() {
		var m models.JournalEntry
		err := rows.Scan(
			&m.EntryID,
			&m.EntryDate,
			&m.Description,
			&m.ReferenceNumber,
			&m.ProjectID,
			&m.InvoiceID,
			&m.RecordedByUserID,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan journal entry row", err)
		}
		headers = append(headers, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating journal entry rows", err)
	}
	return headers, nil
}

func (r *PgxJournalRepository) findLines(ctx context.Context, entryIDs []string) (map[string][]models.JournalLine, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT line_id, entry_id, line_no, account_id, amount, is_debit
		FROM journal_lines
		WHERE entry_id = ANY($1)
		ORDER BY entry_id, line_no;`, entryIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query journal lines", err)
	}
	defer rows.Close()

	linesByEntry := make(map[string][]models.JournalLine, len(entryIDs))
	for rows.Next() {
		var l models.JournalLine
		if err := rows.Scan(&l.LineID, &l.EntryID, &l.LineNo, &l.AccountID, &l.Amount, &l.IsDebit); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan journal line row", err)
		}
		linesByEntry[l.EntryID] = append(linesByEntry[l.EntryID], l)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating journal line rows", err)
	}
	return linesByEntry, nil
}
