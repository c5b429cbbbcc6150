package discovery

import (
	"context"
	"fmt"
	"strings"

	"tripai/models"
)

const (
	amenityRadius = 5000
	amenityLimit  = 5
)

var amenityFilters = map[string]string{
	"restaurant": `node["amenity"~"restaurant|cafe|fast_food"]`,
	"atm":        `node["amenity"="atm"]`,
	"hospital":   `node["amenity"~"hospital|clinic"]`,
	"pharmacy":   `node["amenity"="pharmacy"]`,
}

// sample categories that stand in for each amenity kind
var amenitySampleCategory = map[string]string{
	"restaurant": "restaurant",
	"atm":        "atm",
	"hospital":   "medical",
	"pharmacy":   "medical",
}

// AmenityQuery returns the Overpass query for a kind, and false for kinds
// that are not supported.
func AmenityQuery(kind string, lat, lon float64) (string, bool) {
	filter, ok := amenityFilters[kind]
	if !ok {
		return "", false
	}
	return fmt.Sprintf("[out:json];%s(around:%d,%f,%f);out;", filter, amenityRadius, lat, lon), true
}

type AmenityClient struct {
	overpass *OverpassClient
}

func NewAmenityClient(overpass *OverpassClient) *AmenityClient {
	return &AmenityClient{overpass: overpass}
}

// Find lists up to five amenities of a kind within 5 km. Unknown kinds
// yield nothing.
func (c *AmenityClient) Find(ctx context.Context, kind string, lat, lon float64) Result[[]models.Amenity] {
	query, ok := AmenityQuery(kind, lat, lon)
	if !ok {
		return Live[[]models.Amenity](nil)
	}
	return Fetch(ctx, func(ctx context.Context) ([]models.Amenity, error) {
		elements, err := c.overpass.Query(ctx, query)
		if err != nil {
			return nil, err
		}
		return amenitiesFromElements(kind, elements), nil
	}, SampleAmenities(kind))
}

func amenitiesFromElements(kind string, elements []Element) []models.Amenity {
	out := make([]models.Amenity, 0, amenityLimit)
	for _, e := range elements {
		if len(out) == amenityLimit {
			break
		}
		pos, ok := e.Position()
		if !ok {
			continue
		}
		out = append(out, models.Amenity{
			ID:       e.ID,
			Name:     tagOr(e.Tags, "name", capitalize(kind)),
			Type:     kind,
			Distance: "Nearby",
			Address:  tagOr(e.Tags, "addr:street", "Address available"),
			Category: tagOr(e.Tags, "amenity", kind),
			Position: [2]float64{pos.Lat, pos.Lon},
		})
	}
	return out
}

// SampleAmenities converts the matching sample places.
func SampleAmenities(kind string) []models.Amenity {
	category, ok := amenitySampleCategory[kind]
	if !ok {
		return nil
	}
	var out []models.Amenity
	for _, p := range SamplePlaces() {
		if p.Category != category {
			continue
		}
		out = append(out, models.Amenity{
			ID:       p.ID,
			Name:     p.Name,
			Type:     kind,
			Distance: p.Distance,
			Address:  p.Address,
			Category: firstNonEmpty(p.Amenity, p.Tourism, p.Category),
			Position: [2]float64{p.Lat, p.Lon},
		})
	}
	return out
}

func tagOr(tags map[string]string, key, def string) string {
	if v := strings.TrimSpace(tags[key]); v != "" {
		return v
	}
	return def
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
