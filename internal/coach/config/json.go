package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/hydrohabit/internal/flagx"
	"github.com/dmitrijs2005/hydrohabit/internal/timex"
)

// JsonConfig is the DTO for reading coach JSON configuration files. The API
// key is deliberately absent: it comes from the environment only.
type JsonConfig struct {
	EndpointAddrHTTP string         `json:"endpoint_addr_http"`
	AllowedOrigin    string         `json:"allowed_origin"`
	GeoEndpoint      string         `json:"geo_endpoint"`
	WeatherEndpoint  string         `json:"weather_endpoint"`
	OpenAIModel      string         `json:"openai_model"`
	RequestTimeout   timex.Duration `json:"request_timeout"`
}

// parseJson loads configuration values from the JSON file named by the
// -c or -config command-line flags. If neither flag is set, no file is
// loaded; read or parse failures panic.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	config.EndpointAddrHTTP = c.EndpointAddrHTTP
	config.AllowedOrigin = c.AllowedOrigin
	config.GeoEndpoint = c.GeoEndpoint
	config.WeatherEndpoint = c.WeatherEndpoint
	config.OpenAIModel = c.OpenAIModel
	config.RequestTimeout = time.Duration(c.RequestTimeout.Duration)
}
