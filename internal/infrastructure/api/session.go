package api

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/irsath0710/clazzy-outfit-advisor/internal/domain/entities"
)

// SessionManager identifies a browser by a random UUID cookie.
type SessionManager struct {
	cookieName string
	ttl        time.Duration
	secure     bool
}

func NewSessionManager(cookieName string, ttl time.Duration, secure bool) *SessionManager {
	return &SessionManager{cookieName: cookieName, ttl: ttl, secure: secure}
}

// Ensure returns the request's session ID, issuing a new cookie when the
// request has none or carries a malformed one. The cookie is refreshed on
// every call so active sessions keep sliding forward.
func (m *SessionManager) Ensure(w http.ResponseWriter, r *http.Request) entities.SessionID {
	id := m.current(r)
	if id == "" {
		id = entities.SessionID(uuid.NewString())
	}

	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    string(id),
		Path:     "/",
		MaxAge:   int(m.ttl.Seconds()),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

func (m *SessionManager) current(r *http.Request) entities.SessionID {
	cookie, err := r.Cookie(m.cookieName)
	if err != nil {
		return ""
	}
	if _, err := uuid.Parse(cookie.Value); err != nil {
		return ""
	}
	return entities.SessionID(cookie.Value)
}
