package domain

import "time"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // UserID Reference
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"` // UserID Reference
}

// Period is an inclusive date range. A zero bound means unbounded on that side.
type Period struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether t falls inside the period.
func (p Period) Contains(t time.Time) bool {
	if !p.Start.IsZero() && t.Before(p.Start) {
		return false
	}
	if !p.End.IsZero() && t.After(p.End) {
		return false
	}
	return true
}

// CalendarYear returns the period covering all of year in loc.
func CalendarYear(year int, loc *time.Location) Period {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
	return Period{
		Start: start,
		End:   start.AddDate(1, 0, 0).Add(-time.Nanosecond),
	}
}
