// internal/auth/session.go
package auth

import (
	"errors"
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/Annany2002/servo-panel/internal/logger"
)

// SessionName is the cookie name used for the page session.
const SessionName = "servo-session"

const sessionMaxAge = 7 * 24 * 60 * 60

var (
	ErrSessionStoreMissing = errors.New("session store missing from request context")
	ErrSessionInvalid      = errors.New("invalid session cookie")
	customLog              = logger.NewLogger()
)

// NewSessionStore builds a cookie store that signs sessions with secret.
// secure marks the cookie HTTPS-only.
func NewSessionStore(secret string, secure bool) *sessions.CookieStore {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   sessionMaxAge,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	customLog.Debugf("Auth: session store ready (cookie %q, secure=%v)", SessionName, secure)
	return store
}

// LoadSession returns the request's session from store. A cookie that fails
// signature checks yields a fresh session and ErrSessionInvalid.
func LoadSession(store sessions.Store, r *http.Request) (*sessions.Session, error) {
	session, err := store.Get(r, SessionName)
	if err != nil {
		customLog.Warnf("LoadSession: rejecting session cookie: %v", err)
		return session, errors.Join(ErrSessionInvalid, err)
	}
	return session, nil
}
