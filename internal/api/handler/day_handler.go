package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/jisook325/tracker/internal/api/validation"
	"github.com/jisook325/tracker/internal/domain"
	"github.com/jisook325/tracker/internal/service"
	"github.com/jisook325/tracker/pkg/daterange"
	"github.com/jisook325/tracker/pkg/problem"
)

type DayHandler struct {
	service service.DayService
	logger  *zap.Logger
}

func NewDayHandler(service service.DayService, logger *zap.Logger) *DayHandler {
	return &DayHandler{service: service, logger: logger}
}

// List handles GET /v1/days
// @Summary Range summary
// @Description Per-day mood and sleep state for a date range, with every bed/wake pairing found in it. Omitted bounds default to the last 30 days through tomorrow.
// @Tags days
// @Produce json
// @Param from query string false "First date (YYYY-MM-DD)" format(date) example(2024-01-01)
// @Param to query string false "Last date (YYYY-MM-DD)" format(date) example(2024-01-31)
// @Success 200 {object} domain.RangeSummary
// @Failure 401 {object} problem.Problem "Missing or invalid identity"
// @Failure 422 {object} problem.Problem "Malformed date bounds"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /days [get]
func (h *DayHandler) List(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")

	var fieldErrors []problem.FieldError
	if from != "" {
		fieldErrors = append(fieldErrors, validation.Var("from", from, "calendardate")...)
	}
	if to != "" {
		fieldErrors = append(fieldErrors, validation.Var("to", to, "calendardate")...)
	}
	if fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	summary, err := h.service.Summary(r.Context(), user.ID, from, to)
	if err != nil {
		h.logger.Error("build range summary", zap.String("user_id", user.ID.String()), zap.Error(err))
		problem.InternalError("Failed to load days").Write(w)
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

// PutMood handles PUT /v1/days/{date}
// @Summary Record mood
// @Description Set the mood for a calendar day, replacing any earlier value. moodDateSource defaults to "today".
// @Tags days
// @Accept json
// @Produce json
// @Param date path string true "Calendar date (YYYY-MM-DD)" format(date) example(2024-01-02)
// @Param request body domain.PutMoodRequest true "Mood"
// @Success 200 {object} domain.PutMoodResponse
// @Failure 400 {object} problem.Problem "Invalid date or JSON body"
// @Failure 401 {object} problem.Problem "Missing or invalid identity"
// @Failure 422 {object} problem.Problem "Request body contains invalid fields"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /days/{date} [put]
func (h *DayHandler) PutMood(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	date := chi.URLParam(r, "date")
	if !daterange.IsDate(date) {
		problem.BadRequest("Date must be YYYY-MM-DD").Write(w)
		return
	}

	var req domain.PutMoodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	entry, err := h.service.PutMood(r.Context(), user.ID, date, &req)
	if err != nil {
		h.logger.Error("put mood", zap.String("user_id", user.ID.String()), zap.String("date", date), zap.Error(err))
		problem.InternalError("Failed to save mood").Write(w)
		return
	}

	writeJSON(w, http.StatusOK, domain.PutMoodResponse{OK: true, Date: entry.Date, Mood: entry.Mood})
}
