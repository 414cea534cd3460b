// Package repository contains data access logic for performances, films
// and reservations.  Queries are composed from predicate trees rendered by
// Where; all statements are read-only.
package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/iliyamo/performance-search/internal/model"
	"github.com/iliyamo/performance-search/internal/predicate"
)

// performanceColumns maps performance fields onto the performances table
// (alias p).
var performanceColumns = Columns{
	model.PerformanceID:        {Expr: "p.id"},
	model.PerformanceDay:       {Expr: "p.day"},
	model.PerformanceStartTime: {Expr: "p.start_time"},
	model.PerformanceTheater:   {Expr: "p.theater_id"},
	model.PerformanceScreen:    {Expr: "p.screen_id"},
	model.PerformanceFilm:      {Expr: "p.film_id"},
	model.PerformanceCanceled:  {Expr: "p.canceled"},
}

// maxRows is MySQL's documented way of saying "no LIMIT" when only an
// OFFSET is wanted.
const maxRows = "18446744073709551615"

// listCapHint bounds the slice preallocated for a page of results.
const listCapHint = 100

// PerformanceRepo reads performances together with their films.
type PerformanceRepo struct {
	db *sql.DB
}

// NewPerformanceRepo constructs a PerformanceRepo with the given DB handle.
func NewPerformanceRepo(db *sql.DB) *PerformanceRepo {
	return &PerformanceRepo{db: db}
}

// Count returns the number of performances matching where.
func (r *PerformanceRepo) Count(ctx context.Context, where predicate.Predicate) (int64, error) {
	return r.scalar(ctx, "SELECT COUNT(*) FROM performances p WHERE ", where)
}

// CountDistinctFilms returns how many different films the matching
// performances show.
func (r *PerformanceRepo) CountDistinctFilms(ctx context.Context, where predicate.Predicate) (int64, error) {
	return r.scalar(ctx, "SELECT COUNT(DISTINCT p.film_id) FROM performances p WHERE ", where)
}

func (r *PerformanceRepo) scalar(ctx context.Context, prefix string, where predicate.Predicate) (int64, error) {
	cond, args, err := Where(where, performanceColumns)
	if err != nil {
		return 0, err
	}
	var n int64
	if err := r.db.QueryRowContext(ctx, prefix+cond, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// Find returns the performances matching where, ordered by day and start
// time, with the listing fields of their film.  Only the columns needed for
// listings are selected.  A limit of 0 returns every row after skip.
func (r *PerformanceRepo) Find(ctx context.Context, where predicate.Predicate, skip, limit int) ([]model.Performance, error) {
	cond, args, err := Where(where, performanceColumns)
	if err != nil {
		return nil, err
	}

	q := `SELECT
			p.id, p.day, p.open_time, p.start_time, p.end_time,
			p.theater_id, p.theater_name, p.screen_id, p.screen_name, p.extension,
			p.film_id,
			COALESCE(f.name_ja, ''), COALESCE(f.name_en, ''),
			COALESCE(f.minutes, 0), COALESCE(f.copyright, '')
		FROM performances p
		LEFT JOIN films f ON f.id = p.film_id
		WHERE ` + cond + `
		ORDER BY p.day ASC, p.start_time ASC`
	switch {
	case limit > 0:
		q += " LIMIT ? OFFSET ?"
		args = append(args, limit, skip)
	case skip > 0:
		q += " LIMIT " + maxRows + " OFFSET ?"
		args = append(args, skip)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Performance, 0, max(0, min(limit, listCapHint)))
	for rows.Next() {
		var (
			p   model.Performance
			ext sql.NullString
		)
		if err := rows.Scan(
			&p.ID, &p.Day, &p.OpenTime, &p.StartTime, &p.EndTime,
			&p.TheaterID, &p.TheaterName, &p.ScreenID, &p.ScreenName, &ext,
			&p.Film.ID,
			&p.Film.Name.Ja, &p.Film.Name.En,
			&p.Film.Minutes, &p.Film.Copyright,
		); err != nil {
			return nil, err
		}
		if ext.Valid && ext.String != "" {
			var e model.PerformanceExtension
			if err := json.Unmarshal([]byte(ext.String), &e); err != nil {
				return nil, fmt.Errorf("%w: performance %s: %v", ErrInvalidExtension, p.ID, err)
			}
			p.Extension = &e
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachSections(ctx, out); err != nil {
		return nil, err
	}
	return out, nil
}

// attachSections loads the sections of every film referenced by ps in one
// query and stores them on each performance's film.
func (r *PerformanceRepo) attachSections(ctx context.Context, ps []model.Performance) error {
	if len(ps) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(ps))
	args := make([]any, 0, len(ps))
	for _, p := range ps {
		if !seen[p.Film.ID] {
			seen[p.Film.ID] = true
			args = append(args, p.Film.ID)
		}
	}
	marks := strings.TrimSuffix(strings.Repeat("?, ", len(args)), ", ")
	q := `SELECT film_id, code, name
		FROM film_sections
		WHERE film_id IN (` + marks + `)
		ORDER BY film_id, position`

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	sections := make(map[string][]model.FilmSection, len(args))
	for rows.Next() {
		var (
			filmID string
			s      model.FilmSection
		)
		if err := rows.Scan(&filmID, &s.Code, &s.Name); err != nil {
			return err
		}
		sections[filmID] = append(sections[filmID], s)
	}
	if err := rows.Err(); err != nil {
		return err
	}
	for i := range ps {
		ps[i].Film.Sections = sections[ps[i].Film.ID]
	}
	return nil
}
