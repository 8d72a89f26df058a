package auth

import (
	"crypto/subtle"
	"net/http"

	apperrors "cricauction-backend/internal/errors"

	"github.com/gorilla/sessions"
)

const (
	stateSessionName = "cricauction_oauth"
	stateKey         = "state"
	stateMaxAge      = 600
)

// StateStore keeps the OAuth state in a signed cookie between start and callback
type StateStore struct {
	name  string
	store sessions.Store
}

// NewStateStore creates a cookie-backed state store signed with secret
func NewStateStore(secret string, secure bool) *StateStore {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   stateMaxAge,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return &StateStore{name: stateSessionName, store: store}
}

// Save records state for the browser behind r
func (s *StateStore) Save(w http.ResponseWriter, r *http.Request, state string) error {
	session, err := s.store.New(r, s.name)
	if err != nil && session == nil {
		return err
	}
	session.Values[stateKey] = state
	return s.store.Save(r, w, session)
}

// Verify checks state against the stored value and clears it
func (s *StateStore) Verify(w http.ResponseWriter, r *http.Request, state string) error {
	session, err := s.store.Get(r, s.name)
	if err != nil {
		return apperrors.ErrInvalidOAuthState
	}

	stored, _ := session.Values[stateKey].(string)
	if stored == "" || state == "" || subtle.ConstantTimeCompare([]byte(stored), []byte(state)) != 1 {
		return apperrors.ErrInvalidOAuthState
	}

	session.Options.MaxAge = -1
	return s.store.Save(r, w, session)
}
