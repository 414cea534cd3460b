package model

// TicketCategoryWheelchair marks reservations that occupy wheelchair
// accessible seating.
const TicketCategoryWheelchair = "1"

// Reservation records a ticket booked for a performance.  Only the fields
// used for accessibility checks are mapped.
//
// Fields:
//  ID             – reservations.id.
//  PerformanceID  – performance the ticket is for.
//  PerformanceDay – day of that performance, denormalized (YYYYMMDD).
//  TicketCategory – ticket category; TicketCategoryWheelchair for
//                   wheelchair seats.
type Reservation struct {
	ID             string // reservations.id
	PerformanceID  string // reservations.performance_id
	PerformanceDay string // reservations.performance_day
	TicketCategory string // reservations.ticket_category
}
