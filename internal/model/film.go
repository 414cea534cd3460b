package model

// Film is a catalog entry.  A film carries its title in two locales and
// belongs to one or more sections (categories such as "competition").
type Film struct {
	ID        string        // films.id
	Name      LocalizedName // films.name_ja / films.name_en
	Sections  []FilmSection // film_sections rows for the film
	Minutes   int           // films.minutes
	Copyright string        // films.copyright
}

// LocalizedName is a title rendered in Japanese and English.
type LocalizedName struct {
	Ja string `json:"ja"`
	En string `json:"en"`
}

// FilmSection is a film's membership in a section.
type FilmSection struct {
	Code string // film_sections.code
	Name string // film_sections.name
}

// SectionNames returns the display names of the film's sections in order.
func (f Film) SectionNames() []string {
	out := make([]string, 0, len(f.Sections))
	for _, s := range f.Sections {
		out = append(out, s.Name)
	}
	return out
}
