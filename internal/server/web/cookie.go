package web

import (
	"net/http"
	"time"

	"github.com/dmitrijs2005/hydrohabit/internal/server/auth"
	"github.com/dmitrijs2005/hydrohabit/internal/server/session"
)

const sessionCookieName = "hh_session"

// sessionFromRequest reconstructs the Session from the signed cookie.
// A missing, expired, or forged cookie yields the zero (unauthenticated)
// Session.
func (s *Server) sessionFromRequest(r *http.Request) session.Session {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return session.Session{}
	}

	username, loginToken, err := auth.ParseToken(cookie.Value, s.secretKey)
	if err != nil {
		return session.Session{}
	}

	return session.Session{Authenticated: true, Username: username, LoginToken: loginToken}
}

// setSessionCookie persists sess as a signed HttpOnly cookie.
func (s *Server) setSessionCookie(w http.ResponseWriter, sess session.Session) error {
	tokenString, err := auth.GenerateToken(sess.Username, sess.LoginToken, s.secretKey, s.sessionValidity)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    tokenString,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(s.sessionValidity),
	})

	return nil
}

// clearSessionCookie drops the session cookie.
func (s *Server) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Expires:  time.Unix(0, 0),
	})
}
