package handler

import (
	"net/http"

	"github.com/jisook325/tracker/internal/domain"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Get handles GET /v1/health
// @Summary Authenticated health check
// @Description Confirms the identity headers were accepted and returns the resolved user id.
// @Tags health
// @Produce json
// @Success 200 {object} domain.HealthResponse
// @Failure 401 {object} problem.Problem "Missing or invalid identity"
// @Router /health [get]
func (h *HealthHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, domain.HealthResponse{OK: true, UserID: user.ID})
}
