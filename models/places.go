package models

// LatLon is a WGS84 coordinate pair.
type LatLon struct {
	Lat float64 `json:"lat" bson:"lat"`
	Lon float64 `json:"lon" bson:"lon"`
}

// Place is a nearby-discovery result. Live results and sample data share
// this shape; provenance is reported separately.
type Place struct {
	ID       int64   `json:"id,omitempty"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Address  string  `json:"address"`
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
	Amenity  string  `json:"amenity,omitempty"`
	Tourism  string  `json:"tourism,omitempty"`
	Distance string  `json:"distance,omitempty"`
}

// NearbyQuery is the body of POST /api/nearby. Radius is in metres; a nil
// Category means all categories.
type NearbyQuery struct {
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
	Radius   int     `json:"radius"`
	Category *string `json:"category"`
}

// NearbyResponse is the payload served by the nearby places API.
type NearbyResponse struct {
	Status       string  `json:"status"`
	Count        int     `json:"count"`
	Places       []Place `json:"places"`
	UserLocation LatLon  `json:"user_location"`
	Source       string  `json:"source,omitempty"`
	Note         string  `json:"note,omitempty"`
	Error        string  `json:"error,omitempty"`

	// UsingMockData is set when Places is the sample set rather than a
	// live Overpass answer.
	UsingMockData bool `json:"usingMockData,omitempty"`
}

// Amenity is a point found around the map centre.
type Amenity struct {
	ID       int64      `json:"id"`
	Name     string     `json:"name"`
	Type     string     `json:"type"`
	Distance string     `json:"distance"`
	Address  string     `json:"address"`
	Category string     `json:"category"`
	Position [2]float64 `json:"position"`
}

type Weather struct {
	Temperature int    `json:"temperature"`
	Description string `json:"description"`
	Humidity    int    `json:"humidity"`
	Icon        string `json:"icon"`
}

// RoutePoint is one stop handed to the router.
type RoutePoint struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

type Route struct {
	TotalDistance string      `json:"totalDistance"`
	TotalDuration string      `json:"totalDuration"`
	Steps         []RouteStep `json:"steps"`
}

type RouteStep struct {
	Instruction string `json:"instruction"`
	Distance    string `json:"distance"`
	Duration    string `json:"duration"`
}
