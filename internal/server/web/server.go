// Package web serves the HydroHabit HTML UI: registration, token login,
// the sip tracker, and the per-day history. It persists the interactive
// Session between requests as a signed HttpOnly cookie.
package web

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"net/http"
	"time"

	"github.com/dmitrijs2005/hydrohabit/internal/logging"
	"github.com/dmitrijs2005/hydrohabit/internal/server/session"
)

//go:embed templates/*
var templateFS embed.FS

type Server struct {
	address         string
	logger          logging.Logger
	ctrl            *session.Controller
	secretKey       []byte
	sessionValidity time.Duration
	templates       *template.Template
}

func NewServer(a string, l logging.Logger, ctrl *session.Controller, secretKey string, sessionValidity time.Duration) (*Server, error) {

	templates, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	return &Server{
		address:         a,
		logger:          l.With("module", "web_server"),
		ctrl:            ctrl,
		secretKey:       []byte(secretKey),
		sessionValidity: sessionValidity,
		templates:       templates,
	}, nil
}

func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/", s.handleHome)
	mux.HandleFunc("/register", s.handleRegister)
	mux.HandleFunc("/login", s.handleLogin)
	mux.HandleFunc("/logout", s.handleLogout)
	mux.HandleFunc("/sip", s.handleSip)
	mux.HandleFunc("/history", s.handleHistory)
	mux.HandleFunc("/health", s.handleHealth)

	return mux
}

func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.routes(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
