// Package identity resolves the anonymous per-user identifier. Callers are
// identified by a signed cookie carrying a random UUID; a new one is minted
// and set on the response when the request has none. No account, no login —
// the id only has to be stable for the day.
package identity

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/pscheid92/teampulse/internal/metrics"
)

const (
	cookieName       = "teampulse_identity"
	sessionKeyUserID = "user_id"

	// HeaderUserID lets trusted callers (tests, internal tools) pin an
	// identity explicitly, mirroring the cookie-less path.
	HeaderUserID = "X-User-Id"
)

// Resolver issues and reads the identity cookie.
type Resolver struct {
	store *sessions.CookieStore
}

// NewResolver creates a Resolver. maxAge bounds how long a minted identity
// stays valid; secure marks the cookie HTTPS-only.
func NewResolver(secret string, maxAge time.Duration, secure bool) *Resolver {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return &Resolver{store: store}
}

// Resolve returns the caller's stable user id. Order: explicit X-User-Id
// header, then the signed cookie, then a freshly minted UUID persisted via
// Set-Cookie on w. A tampered or expired cookie is treated as absent.
func (r *Resolver) Resolve(req *http.Request, w http.ResponseWriter) (string, error) {
	if id := req.Header.Get(HeaderUserID); id != "" {
		return id, nil
	}

	// Get returns a fresh session alongside the error when the cookie is
	// invalid, so the error only means "mint a new id".
	session, _ := r.store.Get(req, cookieName)
	if id, ok := session.Values[sessionKeyUserID].(string); ok && id != "" {
		return id, nil
	}

	id := uuid.NewString()
	session.Values[sessionKeyUserID] = id
	if err := session.Save(req, w); err != nil {
		return "", fmt.Errorf("failed to save identity cookie: %w", err)
	}

	metrics.IdentityTokensMinted.Inc()
	return id, nil
}
