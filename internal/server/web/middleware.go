package web

import (
	"context"
	"net/http"
	"strings"
	"time"

	"pokedex/internal/server/auth"
	"pokedex/internal/server/models"
)

// sessionCookieName is the cookie carrying the opaque session token.
const sessionCookieName = "session_id"

type ctxKey string

const userIDKey ctxKey = "userID"

// currentSession returns the active session for the request, if any.
func (s *Server) currentSession(r *http.Request) (models.Session, bool) {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return models.Session{}, false
	}
	return s.sessions.Get(cookie.Value)
}

// setSessionCookie attaches the session token to the response.
func (s *Server) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// clearSessionCookie expires the session cookie. Called on every logout exit
// path, even when the session was already gone.
func (s *Server) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
	})
}

// requireAnonymous redirects authenticated visitors to the catalog; the
// login page is for everyone else.
func (s *Server) requireAnonymous(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := s.currentSession(r); ok {
			http.Redirect(w, r, "/catalog", http.StatusFound)
			return
		}
		next(w, r)
	}
}

// requireAuthenticated sends visitors without an active session to the
// login page.
func (s *Server) requireAuthenticated(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := s.currentSession(r)
		if !ok {
			http.Redirect(w, r, "/", http.StatusFound)
			return
		}
		ctx := context.WithValue(r.Context(), userIDKey, sess.UserID)
		next(w, r.WithContext(ctx))
	}
}

// requireBearer guards API routes with an HS256 bearer token.
func (s *Server) requireBearer(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			writeJSONError(w, http.StatusUnauthorized, "missing token")
			return
		}

		userID, err := auth.GetUserIDFromToken(token, s.jwtSecret)
		if err != nil {
			writeJSONError(w, http.StatusUnauthorized, "invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next(w, r.WithContext(ctx))
	}
}
