package web

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dmitrijs2005/hydrohabit/internal/coach/encourage"
	"github.com/dmitrijs2005/hydrohabit/internal/coach/geo"
	"github.com/dmitrijs2005/hydrohabit/internal/coach/weather"
	"github.com/dmitrijs2005/hydrohabit/internal/common"
	"github.com/dmitrijs2005/hydrohabit/internal/logging"
)

type stubLocator struct{ err error }

func (s *stubLocator) Locate(ctx context.Context) (*geo.Location, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &geo.Location{Latitude: 1, Longitude: 2}, nil
}

type stubWeather struct{ err error }

func (s *stubWeather) Current(ctx context.Context, lat, lon float64) (*weather.Reading, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &weather.Reading{TemperatureC: 20, HumidityPct: 50}, nil
}

type stubChat struct {
	msg string
	err error
}

func (s *stubChat) Complete(ctx context.Context, systemPrompt string) (string, error) {
	return s.msg, s.err
}

func newTestHandler(t *testing.T, loc *stubLocator, wth *stubWeather, chat *stubChat) http.Handler {
	t.Helper()
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	svc := encourage.NewService(loc, wth, chat)
	return NewServer(":0", logger, svc, "http://localhost:5173").handler()
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	return body
}

func TestEncouragement_OK(t *testing.T) {
	h := newTestHandler(t, &stubLocator{}, &stubWeather{}, &stubChat{msg: "Drink up!"})

	req := httptest.NewRequest(http.MethodGet, "/encouragement", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d", w.Code)
	}
	if got := decodeBody(t, w)["response"]; got != "Drink up!" {
		t.Fatalf("unexpected response field: %q", got)
	}
}

func TestEncouragement_UpstreamFailureIs503(t *testing.T) {
	upstream := fmt.Errorf("%w: boom", common.ErrorUpstreamUnavailable)
	h := newTestHandler(t, &stubLocator{err: upstream}, &stubWeather{}, &stubChat{})

	req := httptest.NewRequest(http.MethodGet, "/encouragement", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("want 503, got %d", w.Code)
	}
	if got := decodeBody(t, w)["detail"]; got != "Could not fetch external weather/location data." {
		t.Fatalf("unexpected detail: %q", got)
	}
}

func TestEncouragement_GenerationFailureIs500(t *testing.T) {
	h := newTestHandler(t, &stubLocator{}, &stubWeather{}, &stubChat{err: errors.New("model overloaded")})

	req := httptest.NewRequest(http.MethodGet, "/encouragement", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("want 500, got %d", w.Code)
	}
	if got := decodeBody(t, w)["detail"]; got != "Failed to generate encouragement from AI model." {
		t.Fatalf("unexpected detail: %q", got)
	}
}

func TestEncouragement_MethodNotAllowed(t *testing.T) {
	h := newTestHandler(t, &stubLocator{}, &stubWeather{}, &stubChat{})

	req := httptest.NewRequest(http.MethodPost, "/encouragement", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("want 405, got %d", w.Code)
	}
}

func TestCORS_AllowedOriginEchoed(t *testing.T) {
	h := newTestHandler(t, &stubLocator{}, &stubWeather{}, &stubChat{msg: "ok"})

	req := httptest.NewRequest(http.MethodGet, "/encouragement", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Fatalf("want origin echoed, got %q", got)
	}
	if w.Header().Get("Access-Control-Allow-Credentials") != "true" {
		t.Fatalf("credentials not allowed: %v", w.Header())
	}
}

func TestCORS_DisallowedOriginNotEchoed(t *testing.T) {
	h := newTestHandler(t, &stubLocator{}, &stubWeather{}, &stubChat{msg: "ok"})

	req := httptest.NewRequest(http.MethodGet, "/encouragement", nil)
	req.Header.Set("Origin", "http://evil.example")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("disallowed origin must not be echoed, got %q", got)
	}
}

func TestHealth(t *testing.T) {
	h := newTestHandler(t, &stubLocator{}, &stubWeather{}, &stubChat{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != http.StatusOK || w.Body.String() != "OK" {
		t.Fatalf("health: got %d %q", w.Code, w.Body.String())
	}
}
