package web

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/hydrohabit/internal/common"
	"github.com/dmitrijs2005/hydrohabit/internal/server/models"
	"github.com/dmitrijs2005/hydrohabit/internal/server/services"
)

type trackerView struct {
	Username string
	Summary  services.Summary
	// ProgressPct is Progress as 0–100 for the progress bar width.
	ProgressPct int
}

type historyView struct {
	Username string
	Days     []models.DayTotal
}

type formView struct {
	Error string
}

type tokenView struct {
	Username string
	Token    string
}

// handleHome renders the tracker page with freshly computed daily metrics,
// or redirects unauthenticated visitors to the login form.
func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	sess := s.sessionFromRequest(r)
	if !sess.Authenticated {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	summary, err := s.ctrl.Summary(r.Context(), sess)
	if err != nil {
		s.logger.Error(r.Context(), err.Error())
		http.Error(w, "Storage error", http.StatusInternalServerError)
		return
	}

	view := trackerView{
		Username:    sess.Username,
		Summary:     summary,
		ProgressPct: int(summary.Progress * 100),
	}
	if err := s.templates.ExecuteTemplate(w, "tracker.html", view); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// handleRegister handles both GET (display form) and POST (create the
// record). On success the generated login string is shown exactly once;
// the registrant stays unauthenticated and logs in with it afterwards.
func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		if err := s.templates.ExecuteTemplate(w, "register.html", formView{}); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	sess := s.sessionFromRequest(r)
	username := r.FormValue("username")

	token, err := s.ctrl.Register(r.Context(), sess, username)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorValidation):
			s.renderForm(w, "register.html", "Please enter a username.")
		case errors.Is(err, common.ErrorAlreadyAuthenticated):
			http.Redirect(w, r, "/", http.StatusFound)
		default:
			s.logger.Error(r.Context(), err.Error())
			s.renderForm(w, "register.html", "Failed to store user data. Please try again.")
		}
		return
	}

	if err := s.templates.ExecuteTemplate(w, "token.html", tokenView{Username: username, Token: token}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// handleLogin handles both GET (display form) and POST (validate and bind
// the session). Unknown usernames and wrong login strings produce the same
// message.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		if err := s.templates.ExecuteTemplate(w, "login.html", formView{}); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	sess := s.sessionFromRequest(r)
	username := r.FormValue("username")
	token := r.FormValue("login_string")

	newSess, err := s.ctrl.Login(r.Context(), sess, username, token)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorValidation):
			s.renderForm(w, "login.html", "Please enter both username and login string.")
		case errors.Is(err, common.ErrorUnauthorized):
			s.renderForm(w, "login.html", "Invalid username or login string. Please try again.")
		case errors.Is(err, common.ErrorAlreadyAuthenticated):
			http.Redirect(w, r, "/", http.StatusFound)
		default:
			s.logger.Error(r.Context(), err.Error())
			http.Error(w, "Storage error", http.StatusInternalServerError)
		}
		return
	}

	if err := s.setSessionCookie(w, newSess); err != nil {
		http.Error(w, "Could not create session", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusFound)
}

// handleLogout clears the session cookie and returns to the login form.
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	sess := s.sessionFromRequest(r)
	if sess.Authenticated {
		if _, err := s.ctrl.Logout(sess); err != nil {
			s.logger.Error(r.Context(), err.Error())
		}
	}

	s.clearSessionCookie(w)
	http.Redirect(w, r, "/login", http.StatusFound)
}

// handleSip appends one sip for the bound user and returns to the tracker.
func (s *Server) handleSip(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	sess := s.sessionFromRequest(r)

	if err := s.ctrl.LogSip(r.Context(), sess); err != nil {
		if errors.Is(err, common.ErrorNotAuthenticated) {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		s.logger.Error(r.Context(), err.Error())
		http.Error(w, "Storage error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusFound)
}

// handleHistory shows per-day totals, newest day first.
func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	sess := s.sessionFromRequest(r)
	if !sess.Authenticated {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	days, err := s.ctrl.History(r.Context(), sess)
	if err != nil {
		s.logger.Error(r.Context(), err.Error())
		http.Error(w, "Storage error", http.StatusInternalServerError)
		return
	}

	if err := s.templates.ExecuteTemplate(w, "history.html", historyView{Username: sess.Username, Days: days}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("OK"))
}

func (s *Server) renderForm(w http.ResponseWriter, name, errMsg string) {
	if err := s.templates.ExecuteTemplate(w, name, formView{Error: errMsg}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
