// Package geo resolves the caller's approximate location from its public IP
// via the ip-api.com JSON endpoint.
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/dmitrijs2005/hydrohabit/internal/common"
)

// Location is a validated geolocation result.
type Location struct {
	IP        string
	Latitude  float64
	Longitude float64
	City      string
	Country   string
}

type Client struct {
	endpoint string
	http     *http.Client
}

// NewClient builds a Client for the given endpoint. timeout bounds the whole
// request; a timeout is reported the same way as any other transport error.
func NewClient(endpoint string, timeout time.Duration) *Client {
	return &Client{
		endpoint: endpoint,
		http:     &http.Client{Timeout: timeout},
	}
}

// response mirrors the provider payload. Coordinates are pointers so a
// missing field is distinguishable from zero: provider responses are
// untrusted and validated before use.
type response struct {
	Status  string   `json:"status"`
	Query   string   `json:"query"`
	Lat     *float64 `json:"lat"`
	Lon     *float64 `json:"lon"`
	City    string   `json:"city"`
	Country string   `json:"country"`
}

// Locate fetches and validates the caller's location. Any transport,
// decoding, or validation failure is wrapped as ErrorUpstreamUnavailable.
func (c *Client) Locate(ctx context.Context) (*Location, error) {

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorUpstreamUnavailable, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: geolocation returned %s", common.ErrorUpstreamUnavailable, resp.Status)
	}

	var r response
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorUpstreamUnavailable, err)
	}

	if r.Status != "success" || r.Lat == nil || r.Lon == nil {
		return nil, fmt.Errorf("%w: incomplete geolocation data", common.ErrorUpstreamUnavailable)
	}

	return &Location{
		IP:        r.Query,
		Latitude:  *r.Lat,
		Longitude: *r.Lon,
		City:      r.City,
		Country:   r.Country,
	}, nil
}
