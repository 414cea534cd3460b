package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/performance-search/internal/model"
	"github.com/iliyamo/performance-search/internal/predicate"
)

// filmColumns maps film fields onto the films table (alias f).  Section
// codes live in film_sections, one row per membership.
var filmColumns = Columns{
	model.FilmID:     {Expr: "f.id"},
	model.FilmNameJa: {Expr: "f.name_ja"},
	model.FilmNameEn: {Expr: "f.name_en"},
	model.FilmSectionCode: {
		Expr:   "fs.code",
		Exists: "EXISTS (SELECT 1 FROM film_sections fs WHERE fs.film_id = f.id AND %s)",
	},
}

// FilmRepo reads the film catalog.
type FilmRepo struct {
	db *sql.DB
}

// NewFilmRepo constructs a FilmRepo with the given DB handle.
func NewFilmRepo(db *sql.DB) *FilmRepo {
	return &FilmRepo{db: db}
}

// DistinctIDs returns the ids of the films matching where.  It returns an
// empty slice when nothing matches.
func (r *FilmRepo) DistinctIDs(ctx context.Context, where predicate.Predicate) ([]string, error) {
	cond, args, err := Where(where, filmColumns)
	if err != nil {
		return nil, err
	}
	rows, err := r.db.QueryContext(ctx, "SELECT DISTINCT f.id FROM films f WHERE "+cond, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return ids, nil
}
