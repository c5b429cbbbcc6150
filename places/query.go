package places

import (
	"fmt"
	"strings"

	"tripai/discovery"
	"tripai/models"
)

type categoryFilter struct {
	key    string
	values string
}

var categoryFilters = map[string][]categoryFilter{
	"restaurant": {{"amenity", "restaurant|cafe|fast_food"}},
	"medical":    {{"amenity", "hospital|clinic|pharmacy|doctors"}},
	"atm":        {{"amenity", "atm|bank"}},
	"fuel":       {{"amenity", "fuel|charging_station"}},
	"hotel":      {{"tourism", "hotel|hostel|guest_house"}},
}

var allFilters = []categoryFilter{
	{"amenity", "restaurant|cafe|fast_food|hospital|clinic|pharmacy|atm|bank|fuel|charging_station"},
	{"tourism", "hotel|hostel|guest_house"},
}

// BuildQuery returns the Overpass query for a category. Unknown or empty
// categories search everything.
func BuildQuery(category string, radius int, lat, lon float64) string {
	filters, ok := categoryFilters[category]
	if !ok {
		filters = allFilters
	}

	var b strings.Builder
	b.WriteString("[out:json];(")
	for _, kind := range []string{"node", "way"} {
		for _, f := range filters {
			fmt.Fprintf(&b, `%s["%s"~"%s"](around:%d,%f,%f);`, kind, f.key, f.values, radius, lat, lon)
		}
	}
	b.WriteString(");out center;")
	return b.String()
}

// Categorize maps OSM amenity and tourism tags onto the API's categories.
func Categorize(amenity, tourism string) string {
	switch amenity {
	case "restaurant", "cafe", "fast_food":
		return "restaurant"
	case "hospital", "clinic", "pharmacy", "doctors":
		return "medical"
	case "atm", "bank":
		return "atm"
	case "fuel", "charging_station":
		return "fuel"
	}
	switch tourism {
	case "hotel", "hostel", "guest_house":
		return "hotel"
	}
	return "other"
}

// ParseElement converts an Overpass element, dropping it when it has no
// name or no position.
func ParseElement(e discovery.Element) (models.Place, bool) {
	name := strings.TrimSpace(e.Tags["name"])
	if name == "" {
		return models.Place{}, false
	}
	pos, ok := e.Position()
	if !ok || pos.Lat == 0 || pos.Lon == 0 {
		return models.Place{}, false
	}

	var parts []string
	for _, key := range []string{"addr:street", "addr:housenumber", "addr:city"} {
		if v := e.Tags[key]; v != "" {
			parts = append(parts, v)
		}
	}
	address := "Address not available"
	if len(parts) > 0 {
		address = strings.Join(parts, ", ")
	}

	amenity, tourism := e.Tags["amenity"], e.Tags["tourism"]
	return models.Place{
		ID:       e.ID,
		Name:     name,
		Category: Categorize(amenity, tourism),
		Address:  address,
		Lat:      pos.Lat,
		Lon:      pos.Lon,
		Amenity:  amenity,
		Tourism:  tourism,
	}, true
}
