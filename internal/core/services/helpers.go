package services

import (
	"strings"
	"time"

	"github.com/SscSPs/bizledger/internal/core/domain"
)

// normalizeOptionalID trims id and maps blank values to nil.
func normalizeOptionalID(id *string) *string {
	if id == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*id)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// entryDay keeps the calendar date of t as written by the caller and pins it
// to midnight UTC. Monthly buckets are then taken from the date the client
// posted, whatever its offset.
func entryDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// periodFromDates builds an inclusive period from optional calendar dates.
// toDate covers its whole day.
func periodFromDates(fromDate, toDate *time.Time) (domain.Period, error) {
	var period domain.Period
	if fromDate != nil {
		period.Start = *fromDate
	}
	if toDate != nil {
		period.End = toDate.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}
	if fromDate != nil && toDate != nil && fromDate.After(*toDate) {
		return domain.Period{}, ErrInvalidDateRange
	}
	return period, nil
}
