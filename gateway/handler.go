package gateway

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"tripai/middleware"
	"tripai/models"
	"tripai/utils"
)

type Handler struct {
	service *Service
	logger  *zap.Logger
}

func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

type generateResponse struct {
	Success   bool              `json:"success"`
	Plan      string            `json:"plan"`
	Itinerary *models.Itinerary `json:"itinerary,omitempty"`
	TripID    string            `json:"tripId,omitempty"`
}

// GenerateTrip handles POST /api/ai/generate-trip.
func (h *Handler) GenerateTrip(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req models.TripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithMessage(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	res, err := h.service.Generate(r.Context(), req)
	switch {
	case errors.Is(err, ErrMissingFields):
		utils.RespondWithMessage(w, http.StatusBadRequest, "Missing required fields")
		return
	case errors.Is(err, ErrInvalidFields):
		utils.RespondWithMessage(w, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		h.logger.Error("trip generation failed",
			middleware.RequestIDField(r.Context()),
			zap.String("destination", req.Destination),
			zap.Error(err),
		)
		utils.RespondWithJSON(w, http.StatusInternalServerError, utils.M{
			"success": false,
			"message": "AI trip generation failed",
		})
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, generateResponse{
		Success:   true,
		Plan:      res.Plan,
		Itinerary: res.Itinerary,
		TripID:    res.TripID,
	})
}
