// Package weather fetches current conditions for a coordinate pair from the
// open-meteo forecast API.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/dmitrijs2005/hydrohabit/internal/common"
)

// Reading is a validated set of current conditions.
type Reading struct {
	TemperatureC float64
	HumidityPct  float64
	WeatherCode  int
	WindSpeed    float64
}

type Client struct {
	endpoint string
	http     *http.Client
}

func NewClient(endpoint string, timeout time.Duration) *Client {
	return &Client{
		endpoint: endpoint,
		http:     &http.Client{Timeout: timeout},
	}
}

// currentBlock mirrors the provider's "current" object. Pointer fields let
// validation catch missing values in an untrusted response.
type currentBlock struct {
	Temperature *float64 `json:"temperature_2m"`
	Humidity    *float64 `json:"relative_humidity_2m"`
	WeatherCode *int     `json:"weather_code"`
	WindSpeed   *float64 `json:"wind_speed_10m"`
}

type response struct {
	Current *currentBlock `json:"current"`
}

// Current fetches and validates conditions at (lat, lon). Any transport,
// decoding, or validation failure is wrapped as ErrorUpstreamUnavailable.
func (c *Client) Current(ctx context.Context, lat, lon float64) (*Reading, error) {

	params := url.Values{}
	params.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("longitude", strconv.FormatFloat(lon, 'f', -1, 64))
	params.Set("current", "temperature_2m,relative_humidity_2m,weather_code,wind_speed_10m")
	params.Set("timezone", "auto")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorUpstreamUnavailable, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: weather returned %s", common.ErrorUpstreamUnavailable, resp.Status)
	}

	var r response
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorUpstreamUnavailable, err)
	}

	cur := r.Current
	if cur == nil || cur.Temperature == nil || cur.Humidity == nil {
		return nil, fmt.Errorf("%w: incomplete weather data", common.ErrorUpstreamUnavailable)
	}

	reading := &Reading{
		TemperatureC: *cur.Temperature,
		HumidityPct:  *cur.Humidity,
	}
	if cur.WeatherCode != nil {
		reading.WeatherCode = *cur.WeatherCode
	}
	if cur.WindSpeed != nil {
		reading.WindSpeed = *cur.WindSpeed
	}

	return reading, nil
}
