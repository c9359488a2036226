package normalizer

import (
	"github.com/akozadaev/go_hotel_search/internal/models"
)

var (
	latitudeKeys  = []string{"latitude", "lat"}
	longitudeKeys = []string{"longitude", "lng", "lon"}
)

type location struct {
	text      string
	latitude  *float64
	longitude *float64
}

// resolveLocation извлекает адрес и координаты.
// Структурированный location, затем address, city, destination, затем текст запроса.
// Координаты дополнительно ищутся на верхнем уровне и во вложенном coordinates.
func resolveLocation(r models.RawListing, queryText string) location {
	loc := location{text: queryText}

	switch {
	case present(r["location"]):
		if m, ok := object(r["location"]); ok {
			if s := firstText(m, "address"); s != "" {
				loc.text = s
			}
			loc.latitude = coordinate(m, latitudeKeys...)
			loc.longitude = coordinate(m, longitudeKeys...)
		} else if s, ok := text(r["location"]); ok {
			loc.text = s
		}
	case present(r["address"]):
		if m, ok := object(r["address"]); ok {
			if s := firstText(m, "address", "street"); s != "" {
				loc.text = s
			}
			loc.latitude = coordinate(m, latitudeKeys...)
			loc.longitude = coordinate(m, longitudeKeys...)
		} else if s, ok := text(r["address"]); ok {
			loc.text = s
		}
	case present(r["city"]):
		loc.text = namedPlace(r["city"], queryText)
	case present(r["destination"]):
		loc.text = namedPlace(r["destination"], queryText)
	}

	if loc.latitude == nil {
		loc.latitude = coordinate(r, latitudeKeys...)
	}
	if loc.longitude == nil {
		loc.longitude = coordinate(r, longitudeKeys...)
	}
	if coords, ok := object(r["coordinates"]); ok {
		if loc.latitude == nil {
			loc.latitude = coordinate(coords, latitudeKeys...)
		}
		if loc.longitude == nil {
			loc.longitude = coordinate(coords, longitudeKeys...)
		}
	}

	return loc
}

// namedPlace принимает строку или объект с полем name
func namedPlace(v any, fallback string) string {
	if s, ok := text(v); ok {
		return s
	}
	if m, ok := object(v); ok {
		if s := firstText(m, "name"); s != "" {
			return s
		}
	}
	return fallback
}
