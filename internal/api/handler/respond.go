package handler

import (
	"encoding/json"
	"net/http"

	"github.com/jisook325/tracker/internal/auth"
	"github.com/jisook325/tracker/internal/domain"
	"github.com/jisook325/tracker/pkg/problem"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// currentUser returns the authenticated user, writing a 401 if the request
// did not pass through the auth middleware.
func currentUser(w http.ResponseWriter, r *http.Request) (*domain.User, bool) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		problem.Unauthorized("Missing user identity").Write(w)
		return nil, false
	}
	return user, true
}
