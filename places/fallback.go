package places

import (
	"tripai/discovery"
	"tripai/models"
)

// SourceSample marks a response built from the sample set.
const SourceSample = "sample"

// SampleResponse is served by /api/nearby/test and whenever Overpass fails.
// It is flagged so clients do not present it as live data.
func SampleResponse() models.NearbyResponse {
	places := discovery.SamplePlaces()
	return models.NearbyResponse{
		Status:        "success",
		Count:         len(places),
		Places:        places,
		UserLocation:  discovery.DefaultLocation,
		Source:        SourceSample,
		UsingMockData: true,
		Note:          "This is sample data from the Nearby Places API",
	}
}
