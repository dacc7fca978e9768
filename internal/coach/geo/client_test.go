package geo

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmitrijs2005/hydrohabit/internal/common"
)

func newFixtureServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestLocate_Success(t *testing.T) {
	srv := newFixtureServer(t, http.StatusOK,
		`{"status":"success","query":"203.0.113.7","lat":56.95,"lon":24.1,"city":"Riga","country":"Latvia"}`)

	c := NewClient(srv.URL, time.Second)
	loc, err := c.Locate(context.Background())
	if err != nil {
		t.Fatalf("Locate error: %v", err)
	}

	if loc.IP != "203.0.113.7" || loc.Latitude != 56.95 || loc.Longitude != 24.1 ||
		loc.City != "Riga" || loc.Country != "Latvia" {
		t.Fatalf("unexpected location: %+v", loc)
	}
}

func TestLocate_Failures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"provider fail status", http.StatusOK, `{"status":"fail","message":"private range"}`},
		{"missing coordinates", http.StatusOK, `{"status":"success","query":"203.0.113.7"}`},
		{"missing longitude", http.StatusOK, `{"status":"success","lat":56.95}`},
		{"http error", http.StatusBadGateway, ``},
		{"malformed body", http.StatusOK, `{not json`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newFixtureServer(t, tt.status, tt.body)

			c := NewClient(srv.URL, time.Second)
			if _, err := c.Locate(context.Background()); !errors.Is(err, common.ErrorUpstreamUnavailable) {
				t.Fatalf("want ErrorUpstreamUnavailable, got %v", err)
			}
		})
	}
}

func TestLocate_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := NewClient(srv.URL, time.Second)
	if _, err := c.Locate(context.Background()); !errors.Is(err, common.ErrorUpstreamUnavailable) {
		t.Fatalf("want ErrorUpstreamUnavailable, got %v", err)
	}
}
