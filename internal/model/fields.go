package model

// Logical field names used in query predicates.  Stores map each name to
// their own column or expression.
const (
	PerformanceID        = "id"
	PerformanceDay       = "day"
	PerformanceStartTime = "start_time"
	PerformanceTheater   = "theater"
	PerformanceScreen    = "screen"
	PerformanceFilm      = "film"
	PerformanceCanceled  = "canceled"

	FilmID          = "id"
	FilmSectionCode = "sections.code"
	FilmNameJa      = "name.ja"
	FilmNameEn      = "name.en"

	ReservationPerformance    = "performance"
	ReservationPerformanceDay = "performance_day"
	ReservationTicketCategory = "ticket_category"
)
