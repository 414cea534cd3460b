package search

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/iliyamo/performance-search/internal/model"
	"github.com/iliyamo/performance-search/internal/predicate"
)

// record is a flattened row the in-memory stores evaluate predicates on.
// Multi-valued fields hold a []string.
type record map[string]any

func match(p predicate.Predicate, r record) bool {
	switch n := p.(type) {
	case nil:
		return true
	case predicate.Eq:
		return equal(r[n.Field], n.Value)
	case predicate.Gte:
		got, ok := r[n.Field].(string)
		want, _ := n.Value.(string)
		return ok && got >= want
	case predicate.In:
		for _, v := range n.Values {
			if equal(r[n.Field], v) {
				return true
			}
		}
		return false
	case predicate.Contains:
		s, _ := r[n.Field].(string)
		return strings.Contains(s, n.Substr)
	case predicate.And:
		for _, c := range n {
			if !match(c, r) {
				return false
			}
		}
		return true
	case predicate.Or:
		for _, c := range n {
			if match(c, r) {
				return true
			}
		}
		return false
	}
	panic(fmt.Sprintf("unsupported predicate %T", p))
}

// equal compares a record value with a predicate value.  A []string record
// value matches when any element equals want.
func equal(got, want any) bool {
	if list, ok := got.([]string); ok {
		for _, s := range list {
			if s == want {
				return true
			}
		}
		return false
	}
	return got == want
}

func performanceRecord(p model.Performance) record {
	return record{
		model.PerformanceID:        p.ID,
		model.PerformanceDay:       p.Day,
		model.PerformanceStartTime: p.StartTime,
		model.PerformanceTheater:   p.TheaterID,
		model.PerformanceScreen:    p.ScreenID,
		model.PerformanceFilm:      p.Film.ID,
		model.PerformanceCanceled:  p.Canceled,
	}
}

type findCall struct{ skip, limit int }

type fakePerformances struct {
	mu    sync.Mutex
	rows  []model.Performance
	err   error
	finds []findCall
	where []predicate.Predicate
}

func (f *fakePerformances) matching(where predicate.Predicate) []model.Performance {
	f.mu.Lock()
	f.where = append(f.where, where)
	f.mu.Unlock()
	var out []model.Performance
	for _, p := range f.rows {
		if match(where, performanceRecord(p)) {
			out = append(out, p)
		}
	}
	return out
}

func (f *fakePerformances) Count(_ context.Context, where predicate.Predicate) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return int64(len(f.matching(where))), nil
}

func (f *fakePerformances) CountDistinctFilms(_ context.Context, where predicate.Predicate) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	films := map[string]bool{}
	for _, p := range f.matching(where) {
		films[p.Film.ID] = true
	}
	return int64(len(films)), nil
}

func (f *fakePerformances) Find(_ context.Context, where predicate.Predicate, skip, limit int) ([]model.Performance, error) {
	f.mu.Lock()
	f.finds = append(f.finds, findCall{skip, limit})
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	rows := f.matching(where)
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Day != rows[j].Day {
			return rows[i].Day < rows[j].Day
		}
		return rows[i].StartTime < rows[j].StartTime
	})
	if skip > len(rows) {
		skip = len(rows)
	}
	rows = rows[skip:]
	if limit > 0 && limit < len(rows) {
		rows = rows[:limit]
	}
	return rows, nil
}

type fakeFilms struct {
	films []model.Film
	err   error
	calls []predicate.Predicate
}

func (f *fakeFilms) DistinctIDs(_ context.Context, where predicate.Predicate) ([]string, error) {
	f.calls = append(f.calls, where)
	if f.err != nil {
		return nil, f.err
	}
	var ids []string
	for _, film := range f.films {
		codes := make([]string, 0, len(film.Sections))
		for _, s := range film.Sections {
			codes = append(codes, s.Code)
		}
		r := record{
			model.FilmID:          film.ID,
			model.FilmNameJa:      film.Name.Ja,
			model.FilmNameEn:      film.Name.En,
			model.FilmSectionCode: codes,
		}
		if match(where, r) {
			ids = append(ids, film.ID)
		}
	}
	return ids, nil
}

type fakeReservations struct {
	mu    sync.Mutex
	rows  []model.Reservation
	err   error
	calls int
}

func (f *fakeReservations) Find(_ context.Context, where predicate.Predicate) ([]model.Reservation, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	var out []model.Reservation
	for _, r := range f.rows {
		rec := record{
			model.ReservationPerformance:    r.PerformanceID,
			model.ReservationPerformanceDay: r.PerformanceDay,
			model.ReservationTicketCategory: r.TicketCategory,
		}
		if match(where, rec) {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeStatuses struct {
	snap *Snapshot
	err  error
}

func (f fakeStatuses) Snapshot(context.Context) (*Snapshot, error) {
	return f.snap, f.err
}

func performance(id, day, start, filmID string) model.Performance {
	return model.Performance{
		ID:          id,
		Day:         day,
		OpenTime:    start,
		StartTime:   start,
		EndTime:     start,
		TheaterID:   "001",
		TheaterName: "Tokyo Tower",
		ScreenID:    "00101",
		ScreenName:  "Screen 1",
		Film:        model.Film{ID: filmID, Name: model.LocalizedName{Ja: "作品" + filmID, En: "Film " + filmID}},
		Extension:   &model.PerformanceExtension{TourNumber: "T" + id},
	}
}
