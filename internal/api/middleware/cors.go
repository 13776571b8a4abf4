package middleware

import (
	"net/http"

	"github.com/go-chi/cors"

	"github.com/jisook325/tracker/internal/auth"
)

// CORS allows browser clients from origins. The identity headers are
// allowed so a proxy in front of the browser can forward them.
func CORS(origins []string) func(http.Handler) http.Handler {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPut, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{
			"Content-Type",
			auth.HeaderMockUser,
			auth.HeaderMockEmail,
			auth.HeaderUserID,
			auth.HeaderUserEmail,
			auth.HeaderUserTS,
			auth.HeaderUserSig,
		},
		MaxAge: 300,
	})
}
