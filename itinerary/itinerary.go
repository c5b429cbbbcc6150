package itinerary

import (
	"encoding/json"
	"mime"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"tripai/middleware"
	"tripai/models"
	"tripai/utils"
)

type Handler struct {
	store  Store
	logger *zap.Logger
}

func NewHandler(store Store, logger *zap.Logger) *Handler {
	return &Handler{store: store, logger: logger}
}

// GET /api/trips/:id
func (h *Handler) GetTrip(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	trip, err := h.store.Get(r.Context(), ps.ByName("id"))
	if errors.Is(err, ErrTripNotFound) {
		utils.RespondWithMessage(w, http.StatusNotFound, "Trip not found")
		return
	}
	if err != nil {
		h.logger.Error("load trip", middleware.RequestIDField(r.Context()), zap.Error(err))
		utils.RespondWithMessage(w, http.StatusInternalServerError, "Server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, trip)
}

// GET /api/trips/:id/pdf
func (h *Handler) ExportTrip(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	trip, err := h.store.Get(r.Context(), ps.ByName("id"))
	if errors.Is(err, ErrTripNotFound) {
		utils.RespondWithMessage(w, http.StatusNotFound, "Trip not found")
		return
	}
	if err != nil {
		h.logger.Error("load trip", middleware.RequestIDField(r.Context()), zap.Error(err))
		utils.RespondWithMessage(w, http.StatusInternalServerError, "Server error")
		return
	}
	h.writePDF(w, r, Document{Request: trip.Request, Itinerary: trip.Itinerary, Generated: time.Now()})
}

type exportInput struct {
	Request   models.TripRequest `json:"request"`
	Itinerary models.Itinerary   `json:"itinerary"`
}

// POST /api/trips/export
func (h *Handler) ExportPDF(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input exportInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithMessage(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	h.writePDF(w, r, Document{Request: input.Request, Itinerary: input.Itinerary, Generated: time.Now()})
}

func (h *Handler) writePDF(w http.ResponseWriter, r *http.Request, doc Document) {
	data, err := ExportPDF(doc)
	if err != nil {
		h.logger.Error("export pdf", middleware.RequestIDField(r.Context()), zap.Error(err))
		utils.RespondWithMessage(w, http.StatusInternalServerError, "Failed to generate PDF")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", ContentDisposition(DownloadName(doc)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		h.logger.Warn("write pdf", middleware.RequestIDField(r.Context()), zap.Error(err))
	}
}

// DownloadName is Trip-Itinerary-<Destination-With-Dashes>.pdf.
func DownloadName(doc Document) string {
	dest := firstNonEmpty(doc.Itinerary.Destination, doc.Request.Destination, "Trip")
	return "Trip-Itinerary-" + utils.Slugify(dest) + ".pdf"
}

// ContentDisposition builds an attachment header with the filename quoted
// or RFC 2231 encoded as needed.
func ContentDisposition(filename string) string {
	if v := mime.FormatMediaType("attachment", map[string]string{"filename": filename}); v != "" {
		return v
	}
	return "attachment"
}
