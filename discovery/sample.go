package discovery

import "tripai/models"

// DefaultLocation is used whenever the caller's position is unknown.
var DefaultLocation = models.LatLon{Lat: 40.7128, Lon: -74.0060}

// SamplePlaces returns the fixed dataset shown when discovery is offline.
// A fresh slice is returned on every call.
func SamplePlaces() []models.Place {
	return []models.Place{
		{ID: 1, Name: "Central Park Restaurant", Category: "restaurant", Address: "123 Park Ave, New York", Lat: 40.7829, Lon: -73.9654, Amenity: "restaurant", Distance: "0.5 km"},
		{ID: 2, Name: "Grand Hotel", Category: "hotel", Address: "456 Broadway, New York", Lat: 40.7589, Lon: -73.9851, Tourism: "hotel", Distance: "1.2 km"},
		{ID: 3, Name: "City Medical Center", Category: "medical", Address: "789 Health St, New York", Lat: 40.7414, Lon: -73.9903, Amenity: "hospital", Distance: "0.8 km"},
		{ID: 4, Name: "Main Street Bank", Category: "atm", Address: "321 Main St, New York", Lat: 40.7505, Lon: -73.9934, Amenity: "bank", Distance: "1.5 km"},
		{ID: 5, Name: "Downtown Fuel Station", Category: "fuel", Address: "654 Fuel Ave, New York", Lat: 40.7639, Lon: -73.9724, Amenity: "fuel", Distance: "2.1 km"},
		{ID: 6, Name: "Pizza Palace", Category: "restaurant", Address: "987 Pizza St, New York", Lat: 40.7282, Lon: -73.9942, Amenity: "restaurant", Distance: "0.3 km"},
	}
}
