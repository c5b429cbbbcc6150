package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"tripai/discovery"
	"tripai/models"
	"tripai/wizard"
)

type fakeGateway struct {
	resp *wizard.GatewayResponse
	err  error
	got  models.TripRequest
}

func (f *fakeGateway) GenerateTrip(_ context.Context, req models.TripRequest) (*wizard.GatewayResponse, error) {
	f.got = req
	return f.resp, f.err
}

const kyotoPlan = `{"destination":"Kyoto","totalDays":3,"days":[
 {"day":1,"activities":[{"activity":"Fushimi Inari","time":"09:00"},{"activity":"Nishiki Market"}]},
 {"day":2,"activities":[{"activity":"Arashiyama"}]},
 {"day":3,"activities":[{"activity":"Gion walk"}]}]}`

func kyotoOptions() planOptions {
	return planOptions{
		Destination:   "Kyoto",
		StartDate:     "2026-03-10",
		EndDate:       "2026-03-12",
		Budget:        "900",
		Travelers:     2,
		Interests:     []string{"culture", "food", "history", "food"},
		Accommodation: models.AccommodationMidRange,
		TravelStyle:   models.StyleBalanced,
	}
}

func TestRunPlan(t *testing.T) {
	t.Run("prints the itinerary", func(t *testing.T) {
		gw := &fakeGateway{resp: &wizard.GatewayResponse{Success: true, Plan: kyotoPlan, TripID: "trip-1"}}
		var out bytes.Buffer

		require.NoError(t, runPlan(context.Background(), gw, kyotoOptions(), &out))

		assert.Contains(t, out.String(), "Kyoto: 3 days, $300.00 per day (Luxury Traveler)")
		assert.Contains(t, out.String(), "Trip id: trip-1")
		assert.Contains(t, out.String(), "09:00  Fushimi Inari")
		assert.Contains(t, out.String(), "Day 3")
		assert.Equal(t, []string{"culture", "food", "history"}, gw.got.Interests)
		require.NotNil(t, gw.got.Travelers)
		assert.Equal(t, 2, *gw.got.Travelers)
	})

	t.Run("writes the pdf", func(t *testing.T) {
		gw := &fakeGateway{resp: &wizard.GatewayResponse{Success: true, Plan: kyotoPlan}}
		opts := kyotoOptions()
		opts.PDFPath = filepath.Join(t.TempDir(), "kyoto.pdf")

		require.NoError(t, runPlan(context.Background(), gw, opts, &bytes.Buffer{}))

		data, err := os.ReadFile(opts.PDFPath)
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
	})

	t.Run("too few interests", func(t *testing.T) {
		gw := &fakeGateway{}
		opts := kyotoOptions()
		opts.Interests = []string{"food"}

		err := runPlan(context.Background(), gw, opts, &bytes.Buffer{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "at least 3 interests")
		assert.Empty(t, gw.got.Destination)
	})

	t.Run("missing basics", func(t *testing.T) {
		opts := kyotoOptions()
		opts.Budget = ""
		err := runPlan(context.Background(), &fakeGateway{}, opts, &bytes.Buffer{})
		assert.ErrorIs(t, err, wizard.ErrNotAllowed)
	})

	t.Run("gateway failure", func(t *testing.T) {
		gw := &fakeGateway{err: errors.New("AI trip generation failed")}
		err := runPlan(context.Background(), gw, kyotoOptions(), &bytes.Buffer{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "AI trip generation failed")
	})
}

func nearbyBackend(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"healthy"}`))
	})
	mux.HandleFunc("/api/nearby", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(models.NearbyResponse{
			Status: "success",
			Count:  2,
			Places: []models.Place{
				{Name: "Ichiran", Category: "restaurant", Address: "Shibuya", Lat: 35.66, Lon: 139.70},
				{Name: "Park Hyatt", Category: "hotel", Address: "Shinjuku", Lat: 35.68, Lon: 139.69},
			},
		})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestRunNearby(t *testing.T) {
	srv := nearbyBackend(t)
	prober := discovery.NewProber([]string{srv.URL}, time.Second, zap.NewNop())
	client := discovery.NewNearbyClient(prober, time.Second, zap.NewNop())

	t.Run("live results", func(t *testing.T) {
		var out bytes.Buffer
		opts := nearbyOptions{Lat: 35.6762, Lon: 139.6503, HasPos: true, RadiusKm: 2, Category: "restaurant"}

		require.NoError(t, runNearby(context.Background(), client, opts, &out))

		assert.Contains(t, out.String(), "Around 35.6762, 139.6503: 1 places")
		assert.Contains(t, out.String(), "Ichiran")
		assert.NotContains(t, out.String(), "Park Hyatt")
		assert.NotContains(t, out.String(), "sample data")
	})

	t.Run("no position uses the default sample", func(t *testing.T) {
		var out bytes.Buffer
		opts := nearbyOptions{RadiusKm: 5, Category: "all", Search: "pizza"}

		require.NoError(t, runNearby(context.Background(), client, opts, &out))

		assert.Contains(t, out.String(), "Around 40.7128, -74.0060: 1 places")
		assert.Contains(t, out.String(), "Showing sample data: location unavailable")
		assert.Contains(t, out.String(), "Pizza Palace")
	})
}
