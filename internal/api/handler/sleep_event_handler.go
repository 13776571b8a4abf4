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

type SleepEventHandler struct {
	service service.SleepEventService
	logger  *zap.Logger
}

func NewSleepEventHandler(service service.SleepEventService, logger *zap.Logger) *SleepEventHandler {
	return &SleepEventHandler{service: service, logger: logger}
}

// Create handles POST /v1/sleep-events
// @Summary Record bed or wake
// @Description Append a bed or wake event. Send either timestamp, or date plus timeMinute (minutes after midnight, floored and clamped to 0..1439).
// @Tags sleep-events
// @Accept json
// @Produce json
// @Param request body domain.CreateSleepEventRequest true "Sleep event"
// @Success 201 {object} domain.SleepEventResponse
// @Failure 400 {object} problem.Problem "Invalid JSON body"
// @Failure 401 {object} problem.Problem "Missing or invalid identity"
// @Failure 422 {object} problem.Problem "Request body contains invalid fields"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /sleep-events [post]
func (h *SleepEventHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req domain.CreateSleepEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	fieldErrors := validation.Validate(req)
	if req.Timestamp == "" {
		if req.Date == "" {
			fieldErrors = append(fieldErrors, problem.FieldError{Field: "date", Message: "is required without timestamp"})
		}
		if req.TimeMinute == nil {
			fieldErrors = append(fieldErrors, problem.FieldError{Field: "timeMinute", Message: "is required without timestamp"})
		}
	}
	if fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	event, err := h.service.Record(r.Context(), user.ID, &req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			problem.ValidationError("Request body contains invalid fields", nil).Write(w)
			return
		}
		h.logger.Error("record sleep event", zap.String("user_id", user.ID.String()), zap.Error(err))
		problem.InternalError("Failed to record sleep event").Write(w)
		return
	}

	writeJSON(w, http.StatusCreated, domain.SleepEventResponse{OK: true, Event: *event})
}
