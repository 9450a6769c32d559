package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/bizledger/internal/apperrors"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100

	timeFormat = time.RFC3339Nano
	separator  = "|"
)

// Cursor marks the last journal entry of a page. Entries are listed newest
// first by (entry_date, created_at, entry_id), so the triple is a total order.
type Cursor struct {
	EntryDate time.Time
	CreatedAt time.Time
	EntryID   string
}

// EncodeCursor renders c as an opaque URL-safe token.
func EncodeCursor(c Cursor) string {
	raw := strings.Join([]string{
		c.EntryDate.UTC().Format(timeFormat),
		c.CreatedAt.UTC().Format(timeFormat),
		c.EntryID,
	}, separator)
	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

// DecodeCursor parses a token produced by EncodeCursor. Malformed tokens are
// validation errors since they come straight from the query string.
func DecodeCursor(token string) (Cursor, error) {
	decoded, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return Cursor{}, fmt.Errorf("%w: invalid pagination token (base64 decode): %v", apperrors.ErrValidation, err)
	}

	parts := strings.SplitN(string(decoded), separator, 3)
	if len(parts) != 3 || parts[2] == "" {
		return Cursor{}, fmt.Errorf("%w: invalid pagination token (split)", apperrors.ErrValidation)
	}

	entryDate, err := time.Parse(timeFormat, parts[0])
	if err != nil {
		return Cursor{}, fmt.Errorf("%w: invalid pagination token (entry date parse): %v", apperrors.ErrValidation, err)
	}
	createdAt, err := time.Parse(timeFormat, parts[1])
	if err != nil {
		return Cursor{}, fmt.Errorf("%w: invalid pagination token (created_at parse): %v", apperrors.ErrValidation, err)
	}

	return Cursor{EntryDate: entryDate, CreatedAt: createdAt, EntryID: parts[2]}, nil
}

// NormalizeLimit clamps a requested page size into [1, MaxLimit], using
// DefaultLimit when none was given.
func NormalizeLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultLimit
	case limit > MaxLimit:
		return MaxLimit
	default:
		return limit
	}
}
