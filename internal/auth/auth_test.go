package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jisook325/tracker/internal/domain"
)

const testSecret = "s3cret"

type fakeEnsurer struct {
	calls []Identity
	err   error
}

func (f *fakeEnsurer) Ensure(ctx context.Context, externalID, email string) (*domain.User, error) {
	f.calls = append(f.calls, Identity{ID: externalID, Email: email})
	if f.err != nil {
		return nil, f.err
	}
	if externalID == "" {
		return nil, domain.ErrInvalidInput
	}
	return &domain.User{ID: uuid.New(), ExternalID: externalID}, nil
}

func TestSignatureIsStable(t *testing.T) {
	a := Signature(testSecret, "u1", "a@example.com", "1700000000000")
	b := Signature(testSecret, "u1", "a@example.com", "1700000000000")
	assert.Equal(t, a, b)
	assert.Len(t, a, 64)
	assert.NotEqual(t, a, Signature(testSecret, "u1", "", "1700000000000"))
	assert.NotEqual(t, a, Signature("other", "u1", "a@example.com", "1700000000000"))
}

func TestVerify(t *testing.T) {
	now := time.UnixMilli(1700000000000)

	tests := []struct {
		name    string
		headers func() http.Header
		wantErr error
	}{
		{
			name:    "valid",
			headers: func() http.Header { return Sign(testSecret, "u1", "a@example.com", now) },
		},
		{
			name:    "valid with empty email",
			headers: func() http.Header { return Sign(testSecret, "u1", "", now) },
		},
		{
			name: "uppercase signature",
			headers: func() http.Header {
				h := Sign(testSecret, "u1", "", now)
				h.Set(HeaderUserSig, strings.ToUpper(h.Get(HeaderUserSig)))
				return h
			},
		},
		{
			name:    "at tolerance edge",
			headers: func() http.Header { return Sign(testSecret, "u1", "", now.Add(-DefaultTolerance)) },
		},
		{
			name:    "too old",
			headers: func() http.Header { return Sign(testSecret, "u1", "", now.Add(-DefaultTolerance-time.Second)) },
			wantErr: ErrExpired,
		},
		{
			name:    "too far in future",
			headers: func() http.Header { return Sign(testSecret, "u1", "", now.Add(DefaultTolerance+time.Second)) },
			wantErr: ErrExpired,
		},
		{
			name:    "wrong secret",
			headers: func() http.Header { return Sign("nope", "u1", "", now) },
			wantErr: ErrBadSignature,
		},
		{
			name: "tampered email",
			headers: func() http.Header {
				h := Sign(testSecret, "u1", "a@example.com", now)
				h.Set(HeaderUserEmail, "b@example.com")
				return h
			},
			wantErr: ErrBadSignature,
		},
		{
			name: "non-numeric timestamp",
			headers: func() http.Header {
				h := Sign(testSecret, "u1", "", now)
				h.Set(HeaderUserTS, "yesterday")
				return h
			},
			wantErr: ErrBadTimestamp,
		},
		{
			name: "missing signature",
			headers: func() http.Header {
				h := Sign(testSecret, "u1", "", now)
				h.Del(HeaderUserSig)
				return h
			},
			wantErr: ErrMissingHeaders,
		},
		{
			name:    "no headers",
			headers: func() http.Header { return http.Header{} },
			wantErr: ErrMissingHeaders,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ident, err := Verify(testSecret, DefaultTolerance, tt.headers(), now)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, domain.ErrUnauthorized)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "u1", ident.ID)
		})
	}
}

func TestMockIdentity(t *testing.T) {
	assert.Equal(t, Identity{ID: DefaultMockUser}, MockIdentity(http.Header{}))

	h := http.Header{}
	h.Set(HeaderMockUser, "dev-7")
	h.Set(HeaderMockEmail, "dev@example.com")
	assert.Equal(t, Identity{ID: "dev-7", Email: "dev@example.com"}, MockIdentity(h))
}

func serve(a *Authenticator, header http.Header) (*httptest.ResponseRecorder, *domain.User) {
	var seen *domain.User
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = UserFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/health", nil)
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	a.Middleware(next).ServeHTTP(rec, req)
	return rec, seen
}

func TestMiddleware_SignedMode(t *testing.T) {
	now := time.UnixMilli(1700000000000)
	ensurer := &fakeEnsurer{}
	a := New(testSecret, 0, ensurer, nil)
	a.now = func() time.Time { return now }
	require.False(t, a.MockMode())

	rec, user := serve(a, Sign(testSecret, "google-1", "a@example.com", now))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	require.NotNil(t, user)
	assert.Equal(t, "google-1", user.ExternalID)
	assert.Equal(t, []Identity{{ID: "google-1", Email: "a@example.com"}}, ensurer.calls)

	rec, user = serve(a, Sign("wrong", "google-1", "", now))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))
	assert.Nil(t, user)
	assert.Len(t, ensurer.calls, 1, "rejected requests must not create users")

	// Mock headers are ignored once a secret is configured.
	h := http.Header{}
	h.Set(HeaderMockUser, "intruder")
	rec, _ = serve(a, h)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMiddleware_MockMode(t *testing.T) {
	ensurer := &fakeEnsurer{}
	a := New("", time.Minute, ensurer, nil)
	require.True(t, a.MockMode())

	rec, user := serve(a, http.Header{})
	assert.Equal(t, http.StatusNoContent, rec.Code)
	require.NotNil(t, user)
	assert.Equal(t, DefaultMockUser, user.ExternalID)
}

func TestMiddleware_EnsureFailure(t *testing.T) {
	ensurer := &fakeEnsurer{err: errors.New("db down")}
	a := New("", 0, ensurer, nil)

	rec, user := serve(a, http.Header{})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Nil(t, user)
}

func TestUserFromContext_Empty(t *testing.T) {
	_, ok := UserFromContext(context.Background())
	assert.False(t, ok)
}
