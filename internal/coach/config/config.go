// Package config handles configuration for the coach component,
// including defaults, JSON overlay, and command-line flags.
package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the HydroHabit coach service.
//
// Fields:
//   - EndpointAddrHTTP: bind address for the coach endpoint.
//   - AllowedOrigin: browser origin allowed by CORS (the frontend dev server).
//   - GeoEndpoint / WeatherEndpoint: the geolocation and weather providers.
//   - OpenAIModel: chat-completion model name.
//   - OpenAIKey: API key, read from the OPENAI_API_KEY environment variable.
//   - RequestTimeout: per-call timeout for all outbound HTTP requests.
type Config struct {
	EndpointAddrHTTP string
	AllowedOrigin    string
	GeoEndpoint      string
	WeatherEndpoint  string
	OpenAIModel      string
	OpenAIKey        string
	RequestTimeout   time.Duration
}

// LoadDefaults populates Config with sensible development defaults.
func (c *Config) LoadDefaults() {
	c.EndpointAddrHTTP = ":8090"
	c.AllowedOrigin = "http://localhost:5173"
	c.GeoEndpoint = "http://ip-api.com/json/"
	c.WeatherEndpoint = "https://api.open-meteo.com/v1/forecast"
	c.OpenAIModel = "gpt-3.5-turbo"
	c.OpenAIKey = os.Getenv("OPENAI_API_KEY")
	c.RequestTimeout = 10 * time.Second
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
