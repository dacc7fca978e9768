// Package web exposes the coach's single HTTP endpoint with CORS for the
// browser frontend.
package web

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/rs/cors"

	"github.com/dmitrijs2005/hydrohabit/internal/coach/encourage"
	"github.com/dmitrijs2005/hydrohabit/internal/common"
	"github.com/dmitrijs2005/hydrohabit/internal/logging"
)

type Server struct {
	address       string
	logger        logging.Logger
	svc           *encourage.Service
	allowedOrigin string
}

func NewServer(a string, l logging.Logger, svc *encourage.Service, allowedOrigin string) *Server {
	return &Server{
		address:       a,
		logger:        l.With("module", "coach_server"),
		svc:           svc,
		allowedOrigin: allowedOrigin,
	}
}

func (s *Server) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/encouragement", s.handleEncouragement)
	mux.HandleFunc("/health", s.handleHealth)

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{s.allowedOrigin},
		AllowedMethods:   []string{http.MethodGet},
		AllowCredentials: true,
	})

	return c.Handler(mux)
}

// handleEncouragement maps pipeline failures onto status codes: upstream
// (location/weather) failures are 503, generation failures are 500.
func (s *Server) handleEncouragement(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	msg, err := s.svc.Encouragement(r.Context())
	if err != nil {
		s.logger.Error(r.Context(), err.Error())
		switch {
		case errors.Is(err, common.ErrorUpstreamUnavailable):
			writeJSON(w, http.StatusServiceUnavailable,
				map[string]string{"detail": "Could not fetch external weather/location data."})
		default:
			writeJSON(w, http.StatusInternalServerError,
				map[string]string{"detail": "Failed to generate encouragement from AI model."})
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"response": msg})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("OK"))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.handler(),
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
