package auth

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/jisook325/tracker/internal/domain"
	"github.com/jisook325/tracker/pkg/problem"
)

type contextKey struct{}

// Ensurer finds or creates the user behind an identity.
type Ensurer interface {
	Ensure(ctx context.Context, externalID, email string) (*domain.User, error)
}

// Authenticator is the HTTP middleware guarding the /v1 routes. With an
// empty secret it runs in mock mode and trusts X-Mock-User.
type Authenticator struct {
	secret    string
	tolerance time.Duration
	ensurer   Ensurer
	logger    *zap.Logger
	now       func() time.Time
}

func New(secret string, tolerance time.Duration, ensurer Ensurer, logger *zap.Logger) *Authenticator {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Authenticator{
		secret:    secret,
		tolerance: tolerance,
		ensurer:   ensurer,
		logger:    logger,
		now:       time.Now,
	}
}

// MockMode reports whether requests are accepted without a signature.
func (a *Authenticator) MockMode() bool {
	return a.secret == ""
}

func (a *Authenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var ident Identity
		if a.MockMode() {
			ident = MockIdentity(r.Header)
		} else {
			var err error
			ident, err = Verify(a.secret, a.tolerance, r.Header, a.now())
			if err != nil {
				a.logger.Debug("rejected request", zap.String("path", r.URL.Path), zap.Error(err))
				problem.Unauthorized("Missing or invalid identity signature").Write(w)
				return
			}
		}

		user, err := a.ensurer.Ensure(r.Context(), ident.ID, ident.Email)
		if err != nil {
			if errors.Is(err, domain.ErrInvalidInput) {
				problem.Unauthorized("Missing user identity").Write(w)
				return
			}
			a.logger.Error("ensure user", zap.String("external_id", ident.ID), zap.Error(err))
			problem.InternalError("Failed to resolve user").Write(w)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
	})
}

func WithUser(ctx context.Context, user *domain.User) context.Context {
	return context.WithValue(ctx, contextKey{}, user)
}

// UserFromContext returns the user stored by the middleware.
func UserFromContext(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(contextKey{}).(*domain.User)
	return user, ok && user != nil
}
