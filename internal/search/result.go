package search

import (
	"fmt"
	"strings"

	"github.com/iliyamo/performance-search/internal/model"
)

// Response is the JSON body of a performance search.
type Response struct {
	Meta Meta   `json:"meta"`
	Data []Item `json:"data"`
}

// Meta carries totals over all matches, not just the returned page.
type Meta struct {
	NumberOfPerformances int64 `json:"number_of_performances"`
	NumberOfFilms        int64 `json:"number_of_films"`
}

// Item is one performance in the result list.
type Item struct {
	Type       string     `json:"type"`
	ID         string     `json:"id"`
	Attributes Attributes `json:"attributes"`
}

// Attributes are the performance fields exposed to clients.
type Attributes struct {
	Day                string              `json:"day"`
	OpenTime           string              `json:"open_time"`
	StartTime          string              `json:"start_time"`
	EndTime            string              `json:"end_time"`
	SeatStatus         *string             `json:"seat_status"`
	TheaterName        string              `json:"theater_name"`
	ScreenName         string              `json:"screen_name"`
	Film               string              `json:"film"`
	FilmName           model.LocalizedName `json:"film_name"`
	FilmSections       []string            `json:"film_sections"`
	FilmMinutes        int                 `json:"film_minutes"`
	FilmCopyright      string              `json:"film_copyright"`
	FilmImage          string              `json:"film_image"`
	TourNumber         string              `json:"tour_number"`
	WheelchairReserved bool                `json:"wheelchair_reserved"`
}

// FilmImageURL returns the poster location of a film under base.
func FilmImageURL(base, filmID string) string {
	return fmt.Sprintf("%s/images/film/%s.jpg", strings.TrimRight(base, "/"), filmID)
}

// Assemble shapes fetched performances and their overlays into a Response.
// statuses may be nil; wheelchair holds the ids of performances that already
// have a wheelchair reservation.
func Assemble(performances []model.Performance, total, films int64, statuses *Snapshot, wheelchair map[string]bool, imageBase string) Response {
	data := make([]Item, 0, len(performances))
	for _, p := range performances {
		data = append(data, Item{
			Type: "performances",
			ID:   p.ID,
			Attributes: Attributes{
				Day:                p.Day,
				OpenTime:           p.OpenTime,
				StartTime:          p.StartTime,
				EndTime:            p.EndTime,
				SeatStatus:         statuses.Status(p.ID),
				TheaterName:        p.TheaterName,
				ScreenName:         p.ScreenName,
				Film:               p.Film.ID,
				FilmName:           p.Film.Name,
				FilmSections:       p.Film.SectionNames(),
				FilmMinutes:        p.Film.Minutes,
				FilmCopyright:      p.Film.Copyright,
				FilmImage:          FilmImageURL(imageBase, p.Film.ID),
				TourNumber:         p.TourNumber(),
				WheelchairReserved: wheelchair[p.ID],
			},
		})
	}
	return Response{
		Meta: Meta{NumberOfPerformances: total, NumberOfFilms: films},
		Data: data,
	}
}
