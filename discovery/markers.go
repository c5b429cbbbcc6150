package discovery

import "fmt"

// DefaultMarkerColor is used for categories missing from the table.
const DefaultMarkerColor = "blue"

var markerColors = map[string]string{
	"Temple":           "red",
	"Restaurant":       "orange",
	"Museum":           "blue",
	"Park":             "green",
	"Shopping":         "purple",
	"Palace":           "yellow",
	"Beach":            "cyan",
	"Viewpoint":        "pink",
	"Cafe":             "orange",
	"Market":           "purple",
	"Place Of Worship": "red",
	"Monument":         "violet",
	"Gallery":          "blue",
	"Zoo":              "green",
	"Castle":           "yellow",
}

// MarkerColor looks up the marker for a free-text activity category. The
// match is exact.
func MarkerColor(category string) string {
	if c, ok := markerColors[category]; ok {
		return c
	}
	return DefaultMarkerColor
}

// MarkerTable returns a copy of the category table.
func MarkerTable() map[string]string {
	out := make(map[string]string, len(markerColors))
	for k, v := range markerColors {
		out[k] = v
	}
	return out
}

func MarkerIconURL(color string) string {
	return fmt.Sprintf("https://raw.githubusercontent.com/pointhi/leaflet-color-markers/master/img/marker-icon-2x-%s.png", color)
}
