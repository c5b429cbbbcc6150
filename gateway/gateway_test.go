package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"tripai/itinerary"
	"tripai/middleware"
	"tripai/models"
)

type MockCompleter struct {
	mock.Mock
}

func (m *MockCompleter) Complete(ctx context.Context, prompt string, temperature float32) (string, error) {
	args := m.Called(ctx, prompt, temperature)
	return args.String(0), args.Error(1)
}

func validRequest() models.TripRequest {
	budget := 2000.0
	travelers := 2
	return models.TripRequest{
		Destination:   "Jaipur",
		StartDate:     "2025-11-01",
		EndDate:       "2025-11-03",
		Budget:        &budget,
		Travelers:     &travelers,
		Interests:     []string{"history", "food", "shopping"},
		Accommodation: models.AccommodationLuxury,
		TravelStyle:   models.StylePacked,
	}
}

const structuredPlan = `{"destination":"Jaipur","totalDays":3,"days":[{"day":1,"activities":[{"activity":"Amber Fort","lat":26.98,"lon":75.85}]}]}`

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.TripRequest)
		want   error
	}{
		{"valid", func(*models.TripRequest) {}, nil},
		{"no destination", func(r *models.TripRequest) { r.Destination = " " }, ErrMissingFields},
		{"no start", func(r *models.TripRequest) { r.StartDate = "" }, ErrMissingFields},
		{"no end", func(r *models.TripRequest) { r.EndDate = "" }, ErrMissingFields},
		{"no budget", func(r *models.TripRequest) { r.Budget = nil }, ErrMissingFields},
		{"no travelers", func(r *models.TripRequest) { r.Travelers = nil }, ErrMissingFields},
		{"zero budget allowed", func(r *models.TripRequest) { v := 0.0; r.Budget = &v }, nil},
		{"negative budget", func(r *models.TripRequest) { v := -1.0; r.Budget = &v }, ErrInvalidFields},
		{"zero travelers", func(r *models.TripRequest) { v := 0; r.Travelers = &v }, ErrInvalidFields},
		{"bad date", func(r *models.TripRequest) { r.StartDate = "11/01/2025" }, ErrInvalidFields},
		{"reversed dates", func(r *models.TripRequest) { r.EndDate = "2025-10-01" }, ErrInvalidFields},
		{"unknown accommodation", func(r *models.TripRequest) { r.Accommodation = "castle" }, ErrInvalidFields},
		{"unknown style", func(r *models.TripRequest) { r.TravelStyle = "frantic" }, ErrInvalidFields},
		{"defaults allowed", func(r *models.TripRequest) { r.Accommodation, r.TravelStyle = "", "" }, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)
			err := Validate(req)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestBuildPrompt(t *testing.T) {
	prompt := BuildPrompt(validRequest())

	for _, want := range []string{
		"2 travelers to Jaipur",
		"from 2025-11-01 to 2025-11-03",
		"$2000.00",
		"Historical Sites, Food & Dining, Shopping",
		"Preferred accommodation: luxury",
		"Travel style: packed",
		`"estimatedTotalCost"`,
	} {
		assert.Contains(t, prompt, want)
	}

	req := validRequest()
	req.Interests = nil
	assert.Contains(t, BuildPrompt(req), "general travel")
}

func TestGenerate(t *testing.T) {
	ctx := context.Background()

	t.Run("missing fields never reach the completer", func(t *testing.T) {
		completer := new(MockCompleter)
		svc := NewService(completer, nil, 0.8, nil, zap.NewNop())

		req := validRequest()
		req.Budget = nil
		_, err := svc.Generate(ctx, req)
		assert.ErrorIs(t, err, ErrMissingFields)
		completer.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("structured completion is stored", func(t *testing.T) {
		completer := new(MockCompleter)
		completer.On("Complete", mock.Anything, mock.AnythingOfType("string"), float32(0.8)).Return(structuredPlan, nil)
		store := itinerary.NewMemoryStore(time.Minute)
		svc := NewService(completer, store, 0.8, nil, zap.NewNop())

		res, err := svc.Generate(ctx, validRequest())
		require.NoError(t, err)
		assert.Equal(t, structuredPlan, res.Plan)
		require.NotNil(t, res.Itinerary)
		assert.Equal(t, "Amber Fort", res.Itinerary.Days[0].Activities[0].Name)
		require.NotEmpty(t, res.TripID)

		stored, err := store.Get(ctx, res.TripID)
		require.NoError(t, err)
		assert.Equal(t, "Jaipur", stored.Request.Destination)
		completer.AssertExpectations(t)
	})

	t.Run("prose completion is forwarded verbatim", func(t *testing.T) {
		prose := "Day 1: visit the Hawa Mahal.\nDay 2: relax."
		completer := new(MockCompleter)
		completer.On("Complete", mock.Anything, mock.Anything, mock.Anything).Return(prose, nil)
		svc := NewService(completer, itinerary.NewMemoryStore(time.Minute), 0.8, nil, zap.NewNop())

		res, err := svc.Generate(ctx, validRequest())
		require.NoError(t, err)
		assert.Equal(t, prose, res.Plan)
		assert.Nil(t, res.Itinerary)
		assert.Empty(t, res.TripID)
	})

	t.Run("upstream failure", func(t *testing.T) {
		completer := new(MockCompleter)
		completer.On("Complete", mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("quota exceeded")).Once()
		svc := NewService(completer, nil, 0.8, nil, zap.NewNop())

		_, err := svc.Generate(ctx, validRequest())
		assert.ErrorIs(t, err, ErrUpstream)
		completer.AssertNumberOfCalls(t, "Complete", 1)
	})
}

func TestGenerateTripHandler(t *testing.T) {
	valid, err := json.Marshal(validRequest())
	require.NoError(t, err)

	tests := []struct {
		name       string
		body       string
		completion string
		llmErr     error
		wantStatus int
		check      func(t *testing.T, body map[string]any)
	}{
		{
			name:       "success",
			body:       string(valid),
			completion: structuredPlan,
			wantStatus: http.StatusOK,
			check: func(t *testing.T, body map[string]any) {
				assert.Equal(t, true, body["success"])
				assert.Equal(t, structuredPlan, body["plan"])
				assert.Contains(t, body, "itinerary")
				assert.Contains(t, body, "tripId")
			},
		},
		{
			name:       "missing fields",
			body:       `{"destination":"Jaipur"}`,
			wantStatus: http.StatusBadRequest,
			check: func(t *testing.T, body map[string]any) {
				assert.Equal(t, "Missing required fields", body["message"])
			},
		},
		{
			name:       "invalid fields",
			body:       strings.Replace(string(valid), `"travelers":2`, `"travelers":0`, 1),
			wantStatus: http.StatusBadRequest,
			check: func(t *testing.T, body map[string]any) {
				assert.Contains(t, body["message"], "travelers must be at least 1")
			},
		},
		{
			name:       "upstream failure",
			body:       string(valid),
			llmErr:     errors.New("timeout"),
			wantStatus: http.StatusInternalServerError,
			check: func(t *testing.T, body map[string]any) {
				assert.Equal(t, false, body["success"])
				assert.Equal(t, "AI trip generation failed", body["message"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			completer := new(MockCompleter)
			completer.On("Complete", mock.Anything, mock.Anything, mock.Anything).Return(tt.completion, tt.llmErr).Maybe()
			svc := NewService(completer, itinerary.NewMemoryStore(time.Minute), 0.8, nil, zap.NewNop())
			h := NewHandler(svc, zap.NewNop())

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/ai/generate-trip", bytes.NewBufferString(tt.body))
			h.GenerateTrip(rec, req, nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
			var body map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			tt.check(t, body)
		})
	}
}

func TestGenerateTripLogsRequestID(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	completer := new(MockCompleter)
	completer.On("Complete", mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("timeout"))
	h := NewHandler(NewService(completer, nil, 0.8, nil, zap.NewNop()), zap.New(core))

	handler := middleware.Logging(zap.NewNop(), nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.GenerateTrip(w, r, nil)
	}))
	valid, err := json.Marshal(validRequest())
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/ai/generate-trip", bytes.NewReader(valid))
	req.Header.Set(middleware.RequestIDHeader, "req-42")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	entries := logs.FilterMessage("trip generation failed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "req-42", entries[0].ContextMap()["requestID"])
}
