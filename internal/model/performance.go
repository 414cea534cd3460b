package model

// Performance represents one scheduled screening of a film on a screen of a
// theater.  Performances are written by the scheduling system; this service
// only reads them.
//
// Fields:
//  ID          – performances.id.
//  Day         – screening day as an 8-digit YYYYMMDD code.
//  OpenTime    – doors open, HHmm.
//  StartTime   – screening start, HHmm.
//  EndTime     – screening end, HHmm.
//  TheaterID   – theater where the screening takes place.
//  ScreenID    – screen inside the theater.
//  Film        – film shown; only the fields needed for listings are loaded.
//  Extension   – optional extension data.  Nil on legacy rows.
//  Canceled    – true when the performance was called off.
type Performance struct {
	ID          string                // performances.id
	Day         string                // performances.day
	OpenTime    string                // performances.open_time
	StartTime   string                // performances.start_time
	EndTime     string                // performances.end_time
	TheaterID   string                // performances.theater_id
	TheaterName string                // performances.theater_name
	ScreenID    string                // performances.screen_id
	ScreenName  string                // performances.screen_name
	Film        Film                  // joined from films via performances.film_id
	Extension   *PerformanceExtension // performances.extension (nullable JSON)
	Canceled    bool                  // performances.canceled
}

// PerformanceExtension holds the fields added to performances after the
// original schema shipped.  Rows created before that have no extension.
type PerformanceExtension struct {
	TourNumber string `json:"tour_number"`
}

// TourNumber returns the tour number of the performance, or an empty string
// for legacy rows without an extension.
func (p Performance) TourNumber() string {
	if p.Extension == nil {
		return ""
	}
	return p.Extension.TourNumber
}
