package identity

import (
	"fmt"
	"net/http"

	"github.com/gorilla/sessions"
)

const (
	sessionName   = "penwall_session"
	sessionUserID = "user_id"

	// MinSessionSecretLength guards against weak cookie signing keys
	MinSessionSecretLength = 32

	sessionMaxAge = 7 * 24 * 60 * 60 // one week, in seconds
)

// SessionManager issues and reads the signed session cookie that carries the
// authenticated actor id. It is the request-scoped half of the identity
// provider: SignIn/SignOut mutate the cookie, CurrentUserID reads it.
type SessionManager struct {
	store *sessions.CookieStore
}

// NewSessionManager creates a session manager backed by a cookie store.
func NewSessionManager(secret string, secure bool) (*SessionManager, error) {
	if len(secret) < MinSessionSecretLength {
		return nil, fmt.Errorf("SESSION_SECRET must be at least %d bytes", MinSessionSecretLength)
	}

	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   sessionMaxAge,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}

	return &SessionManager{store: store}, nil
}

// SignIn stores the actor id in a fresh session cookie.
func (m *SessionManager) SignIn(w http.ResponseWriter, r *http.Request, userID string) error {
	session, err := m.store.New(r, sessionName)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	session.Values[sessionUserID] = userID
	if err := session.Save(r, w); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// SignOut expires the session cookie. Signing out never rolls back mutations
// already accepted under the session.
func (m *SessionManager) SignOut(w http.ResponseWriter, r *http.Request) error {
	session, err := m.store.Get(r, sessionName)
	if err != nil {
		// A corrupt cookie still gets expired
		session, _ = m.store.New(r, sessionName)
	}

	session.Options.MaxAge = -1
	delete(session.Values, sessionUserID)
	if err := session.Save(r, w); err != nil {
		return fmt.Errorf("failed to expire session: %w", err)
	}
	return nil
}

// CurrentUserID returns the signed-in actor id, or "" when the request
// carries no valid session.
func (m *SessionManager) CurrentUserID(r *http.Request) string {
	session, err := m.store.Get(r, sessionName)
	if err != nil {
		return ""
	}

	userID, ok := session.Values[sessionUserID].(string)
	if !ok {
		return ""
	}
	return userID
}
