// Package auth verifies the identity headers forwarded by the edge proxy
// and resolves them to a stored user.
package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/jisook325/tracker/internal/domain"
)

const (
	HeaderUserID    = "X-User-Id"
	HeaderUserEmail = "X-User-Email"
	HeaderUserTS    = "X-User-Ts"
	HeaderUserSig   = "X-User-Sig"

	HeaderMockUser  = "X-Mock-User"
	HeaderMockEmail = "X-Mock-Email"

	// DefaultMockUser is the identity used in mock mode when no
	// X-Mock-User header is sent.
	DefaultMockUser = "mock-user"

	DefaultTolerance = 5 * time.Minute
)

var (
	ErrMissingHeaders = fmt.Errorf("%w: missing identity headers", domain.ErrUnauthorized)
	ErrBadTimestamp   = fmt.Errorf("%w: malformed timestamp", domain.ErrUnauthorized)
	ErrExpired        = fmt.Errorf("%w: timestamp outside tolerance", domain.ErrUnauthorized)
	ErrBadSignature   = fmt.Errorf("%w: signature mismatch", domain.ErrUnauthorized)
)

// Identity is the caller as asserted by the proxy.
type Identity struct {
	ID    string
	Email string
}

// Signature returns the lowercase hex HMAC-SHA256 of "id|email|ts".
func Signature(secret, id, email, ts string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(id + "|" + email + "|" + ts))
	return hex.EncodeToString(mac.Sum(nil))
}

// Sign builds the header set a proxy sends for id at now.
func Sign(secret, id, email string, now time.Time) http.Header {
	ts := strconv.FormatInt(now.UnixMilli(), 10)
	h := make(http.Header)
	h.Set(HeaderUserID, id)
	h.Set(HeaderUserEmail, email)
	h.Set(HeaderUserTS, ts)
	h.Set(HeaderUserSig, Signature(secret, id, email, ts))
	return h
}

// Verify checks signed identity headers against secret. The timestamp must
// be within tolerance of now in either direction.
func Verify(secret string, tolerance time.Duration, h http.Header, now time.Time) (Identity, error) {
	id := h.Get(HeaderUserID)
	email := h.Get(HeaderUserEmail)
	ts := h.Get(HeaderUserTS)
	sig := h.Get(HeaderUserSig)
	if id == "" || ts == "" || sig == "" {
		return Identity{}, ErrMissingHeaders
	}

	ms, err := strconv.ParseInt(ts, 10, 64)
	if err != nil {
		return Identity{}, ErrBadTimestamp
	}
	skew := now.Sub(time.UnixMilli(ms))
	if skew < 0 {
		skew = -skew
	}
	if skew > tolerance {
		return Identity{}, ErrExpired
	}

	want := Signature(secret, id, email, ts)
	if !hmac.Equal([]byte(want), []byte(strings.ToLower(sig))) {
		return Identity{}, ErrBadSignature
	}
	return Identity{ID: id, Email: email}, nil
}

// MockIdentity reads the development identity headers.
func MockIdentity(h http.Header) Identity {
	id := h.Get(HeaderMockUser)
	if id == "" {
		id = DefaultMockUser
	}
	return Identity{ID: id, Email: h.Get(HeaderMockEmail)}
}
