package search

import (
	"github.com/iliyamo/performance-search/internal/model"
	"github.com/iliyamo/performance-search/internal/predicate"
)

// FilmPredicate builds the catalog query for the section and free-word
// filters.  Each word must appear in the Japanese or the English title; any
// single word is enough.  It returns nil when neither filter is set, meaning
// the search is not narrowed by film at all.
func FilmPredicate(section string, words []string) predicate.Predicate {
	var and predicate.And
	if section != "" {
		and = append(and, predicate.Strings(model.FilmSectionCode, []string{section}))
	}
	if len(words) > 0 {
		or := make(predicate.Or, 0, 2*len(words))
		for _, w := range words {
			or = append(or,
				predicate.Contains{Field: model.FilmNameJa, Substr: w},
				predicate.Contains{Field: model.FilmNameEn, Substr: w},
			)
		}
		and = append(and, or)
	}
	if len(and) == 0 {
		return nil
	}
	return and
}

// Compose merges the filters into the performance query.  Canceled
// performances are always excluded.  window comes from StartFromWindow and
// may be nil.  filmIDs is nil when no film filter was requested; a non-nil
// empty slice restricts the search to no film at all.
func Compose(f FilterSet, window predicate.Predicate, filmIDs []string) predicate.And {
	and := predicate.And{
		predicate.Eq{Field: model.PerformanceCanceled, Value: false},
	}
	if f.Day != "" {
		and = append(and, predicate.Eq{Field: model.PerformanceDay, Value: f.Day})
	}
	if f.Theater != "" {
		and = append(and, predicate.Eq{Field: model.PerformanceTheater, Value: f.Theater})
	}
	if f.Screen != "" {
		and = append(and, predicate.Eq{Field: model.PerformanceScreen, Value: f.Screen})
	}
	if f.PerformanceID != "" {
		and = append(and, predicate.Eq{Field: model.PerformanceID, Value: f.PerformanceID})
	}
	if window != nil {
		and = append(and, window)
	}
	if filmIDs != nil {
		and = append(and, predicate.Strings(model.PerformanceFilm, filmIDs))
	}
	return and
}

// wheelchairPredicate selects wheelchair reservations for the given
// performances, optionally limited to one day.
func wheelchairPredicate(performanceIDs []string, day string) predicate.And {
	and := predicate.And{
		predicate.Strings(model.ReservationPerformance, performanceIDs),
		predicate.Eq{Field: model.ReservationTicketCategory, Value: model.TicketCategoryWheelchair},
	}
	if day != "" {
		and = append(and, predicate.Eq{Field: model.ReservationPerformanceDay, Value: day})
	}
	return and
}
