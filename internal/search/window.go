package search

import (
	"time"

	"github.com/iliyamo/performance-search/internal/model"
	"github.com/iliyamo/performance-search/internal/predicate"
)

const (
	dayLayout  = "20060102"
	timeLayout = "1504"
)

// StartFromWindow restricts a search to performances from t on.  It matches
// performances later on t's own day, and every performance on or after the
// day 24 hours from t.  Day and time codes are rendered in loc.  A nil t
// yields no predicate.
func StartFromWindow(t *time.Time, loc *time.Location) predicate.Predicate {
	if t == nil {
		return nil
	}
	if loc == nil {
		loc = time.UTC
	}
	now := t.In(loc)
	tomorrow := now.Add(24 * time.Hour)
	return predicate.Or{
		predicate.And{
			predicate.Eq{Field: model.PerformanceDay, Value: now.Format(dayLayout)},
			predicate.Gte{Field: model.PerformanceStartTime, Value: now.Format(timeLayout)},
		},
		predicate.Gte{Field: model.PerformanceDay, Value: tomorrow.Format(dayLayout)},
	}
}
