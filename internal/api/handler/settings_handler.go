package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/jisook325/tracker/internal/api/validation"
	"github.com/jisook325/tracker/internal/domain"
	"github.com/jisook325/tracker/internal/service"
	"github.com/jisook325/tracker/pkg/problem"
)

type SettingsHandler struct {
	service service.SettingsService
	logger  *zap.Logger
}

func NewSettingsHandler(service service.SettingsService, logger *zap.Logger) *SettingsHandler {
	return &SettingsHandler{service: service, logger: logger}
}

// GetMoods handles GET /v1/settings/moods
// @Summary Mood options
// @Description The user's custom mood labels. Empty until set.
// @Tags settings
// @Produce json
// @Success 200 {object} domain.MoodSettings
// @Failure 401 {object} problem.Problem "Missing or invalid identity"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /settings/moods [get]
func (h *SettingsHandler) GetMoods(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	settings, err := h.service.GetMoodSettings(r.Context(), user.ID)
	if err != nil {
		h.logger.Error("get mood settings", zap.String("user_id", user.ID.String()), zap.Error(err))
		problem.InternalError("Failed to load settings").Write(w)
		return
	}

	writeJSON(w, http.StatusOK, settings)
}

// PutMoods handles PUT /v1/settings/moods
// @Summary Save mood options
// @Description Replace the user's mood labels. At most 5 non-empty labels of up to 32 characters.
// @Tags settings
// @Accept json
// @Produce json
// @Param request body domain.MoodSettings true "Mood options"
// @Success 200 {object} domain.MoodSettings
// @Failure 400 {object} problem.Problem "Invalid JSON body"
// @Failure 401 {object} problem.Problem "Missing or invalid identity"
// @Failure 422 {object} problem.Problem "Request body contains invalid fields"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /settings/moods [put]
func (h *SettingsHandler) PutMoods(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req domain.MoodSettings
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	settings, err := h.service.SaveMoodSettings(r.Context(), user.ID, &req)
	if err != nil {
		if errors.Is(err, domain.ErrTooManyMoodOptions) {
			problem.ValidationError("Too many mood options", []problem.FieldError{
				{Field: "options", Message: "must be at most 5"},
			}).Write(w)
			return
		}
		h.logger.Error("save mood settings", zap.String("user_id", user.ID.String()), zap.Error(err))
		problem.InternalError("Failed to save settings").Write(w)
		return
	}

	writeJSON(w, http.StatusOK, settings)
}
