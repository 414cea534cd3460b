package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/performance-search/internal/model"
	"github.com/iliyamo/performance-search/internal/predicate"
)

// reservationColumns maps reservation fields onto the reservations table
// (alias r).
var reservationColumns = Columns{
	model.ReservationPerformance:    {Expr: "r.performance_id"},
	model.ReservationPerformanceDay: {Expr: "r.performance_day"},
	model.ReservationTicketCategory: {Expr: "r.ticket_category"},
}

// ReservationRepo reads reservations.  Reservations are created by the
// booking system; this repository never writes them.
type ReservationRepo struct {
	db *sql.DB
}

// NewReservationRepo returns a new ReservationRepo bound to the given database.
func NewReservationRepo(db *sql.DB) *ReservationRepo { return &ReservationRepo{db: db} }

// Find returns the reservations matching where.  Only the columns used for
// seat checks are loaded.
func (r *ReservationRepo) Find(ctx context.Context, where predicate.Predicate) ([]model.Reservation, error) {
	cond, args, err := Where(where, reservationColumns)
	if err != nil {
		return nil, err
	}
	q := `SELECT r.id, r.performance_id, r.performance_day, r.ticket_category
		FROM reservations r
		WHERE ` + cond
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Reservation
	for rows.Next() {
		var res model.Reservation
		if err := rows.Scan(&res.ID, &res.PerformanceID, &res.PerformanceDay, &res.TicketCategory); err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
