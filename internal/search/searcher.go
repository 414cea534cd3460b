// Package search implements performance search: it turns request filters
// into a store query, runs it, and overlays seat status and wheelchair
// reservations on the results.
package search

import (
	"context"
	"time"

	"github.com/labstack/gommon/log"
	"golang.org/x/sync/errgroup"

	"github.com/iliyamo/performance-search/internal/model"
	"github.com/iliyamo/performance-search/internal/predicate"
)

// PerformanceStore answers performance queries.
type PerformanceStore interface {
	Count(ctx context.Context, where predicate.Predicate) (int64, error)
	CountDistinctFilms(ctx context.Context, where predicate.Predicate) (int64, error)
	// Find returns matches ordered by day and start time.  A limit of 0
	// returns every match after skip.
	Find(ctx context.Context, where predicate.Predicate, skip, limit int) ([]model.Performance, error)
}

// FilmStore resolves catalog queries to film ids.
type FilmStore interface {
	DistinctIDs(ctx context.Context, where predicate.Predicate) ([]string, error)
}

// ReservationStore finds reservations.
type ReservationStore interface {
	Find(ctx context.Context, where predicate.Predicate) ([]model.Reservation, error)
}

// SeatStatusProvider returns the current seat-status snapshot.  It may fail;
// search carries on without statuses when it does.
type SeatStatusProvider interface {
	Snapshot(ctx context.Context) (*Snapshot, error)
}

// Searcher runs performance searches.  All fields except Statuses and
// Logger are required.
type Searcher struct {
	Performances PerformanceStore
	Films        FilmStore
	Reservations ReservationStore
	Statuses     SeatStatusProvider // optional
	Location     *time.Location     // zone of day/time codes; UTC when nil
	ImageBaseURL string             // prefix for film_image
	Logger       *log.Logger        // optional
}

// NewSearcher returns a Searcher with a default logger.
func NewSearcher(perf PerformanceStore, films FilmStore, res ReservationStore, statuses SeatStatusProvider, loc *time.Location, imageBase string) *Searcher {
	return &Searcher{
		Performances: perf,
		Films:        films,
		Reservations: res,
		Statuses:     statuses,
		Location:     loc,
		ImageBaseURL: imageBase,
		Logger:       defaultLogger,
	}
}

// Search runs one search.  Store failures are returned as
// *StoreUnavailableError; a failing seat-status feed only blanks the
// statuses.
func (s *Searcher) Search(ctx context.Context, f FilterSet) (Response, error) {
	filmIDs, err := s.resolveFilms(ctx, f)
	if err != nil {
		return Response{}, err
	}
	where := Compose(f, StartFromWindow(f.StartFrom, s.Location), filmIDs)
	s.logger().Debugf("performance query: %#v", where)

	var (
		films, total int64
		performances []model.Performance
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := s.Performances.CountDistinctFilms(gctx, where)
		if err != nil {
			return storeErr("count films", err)
		}
		films = n
		return nil
	})
	g.Go(func() error {
		n, err := s.Performances.Count(gctx, where)
		if err != nil {
			return storeErr("count performances", err)
		}
		total = n
		return nil
	})
	g.Go(func() error {
		ps, err := s.Performances.Find(gctx, where, f.Skip(), f.Limit)
		if err != nil {
			return storeErr("find performances", err)
		}
		performances = ps
		return nil
	})
	if err := g.Wait(); err != nil {
		return Response{}, err
	}

	var (
		statuses   *Snapshot
		wheelchair map[string]bool
	)
	g, gctx = errgroup.WithContext(ctx)
	g.Go(func() error {
		statuses = s.seatStatuses(gctx)
		return nil
	})
	g.Go(func() error {
		w, err := s.wheelchairReserved(gctx, f, performances)
		if err != nil {
			return err
		}
		wheelchair = w
		return nil
	})
	if err := g.Wait(); err != nil {
		return Response{}, err
	}

	return Assemble(performances, total, films, statuses, wheelchair, s.ImageBaseURL), nil
}

// resolveFilms returns the ids of films matching the section and word
// filters, or nil when neither filter is set.
func (s *Searcher) resolveFilms(ctx context.Context, f FilterSet) ([]string, error) {
	where := FilmPredicate(f.Section, f.FreeWords)
	if where == nil {
		return nil, nil
	}
	ids, err := s.Films.DistinctIDs(ctx, where)
	if err != nil {
		return nil, storeErr("resolve films", err)
	}
	s.logger().Debugf("film filter matched %d films", len(ids))
	if ids == nil {
		ids = []string{}
	}
	return ids, nil
}

func (s *Searcher) seatStatuses(ctx context.Context) *Snapshot {
	if s.Statuses == nil {
		return nil
	}
	snap, err := s.Statuses.Snapshot(ctx)
	if err != nil {
		s.logger().Warnf("seat status snapshot: %v; continuing without statuses", err)
		return nil
	}
	return snap
}

// wheelchairReserved returns the ids of the given performances that already
// have a wheelchair reservation.  It does not query the store unless the
// request asked for the check.
func (s *Searcher) wheelchairReserved(ctx context.Context, f FilterSet, performances []model.Performance) (map[string]bool, error) {
	if !f.WantWheelchair || len(performances) == 0 {
		return nil, nil
	}
	ids := make([]string, 0, len(performances))
	for _, p := range performances {
		ids = append(ids, p.ID)
	}
	reservations, err := s.Reservations.Find(ctx, wheelchairPredicate(ids, f.Day))
	if err != nil {
		return nil, storeErr("find wheelchair reservations", err)
	}
	out := make(map[string]bool, len(reservations))
	for _, r := range reservations {
		out[r.PerformanceID] = true
	}
	return out, nil
}

var defaultLogger = log.New("search")

func (s *Searcher) logger() *log.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return defaultLogger
}
