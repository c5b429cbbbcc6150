package auth

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"tripai/metrics"
	"tripai/middleware"
	"tripai/utils"
)

type Handler struct {
	service *Service
	metrics *metrics.Metrics
	logger  *zap.Logger
}

func NewHandler(service *Service, m *metrics.Metrics, logger *zap.Logger) *Handler {
	return &Handler{service: service, metrics: m, logger: logger}
}

type loginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles POST /api/users/login.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input loginInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithMessage(w, http.StatusBadRequest, "Email and password are required")
		return
	}
	if input.Email == "" || input.Password == "" {
		utils.RespondWithMessage(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	user, err := h.service.Login(r.Context(), input.Email, input.Password)
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		h.metrics.Login("invalid")
		utils.RespondWithMessage(w, http.StatusUnauthorized, "Invalid email or password")
		return
	case err != nil:
		h.metrics.Login("error")
		h.logger.Error("login failed", middleware.RequestIDField(r.Context()), zap.Error(err))
		utils.RespondWithJSON(w, http.StatusInternalServerError, utils.M{
			"message": "Server error",
			"error":   err.Error(),
		})
		return
	}

	h.metrics.Login("ok")
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"message": "Login successful",
		"user":    user,
	})
}
