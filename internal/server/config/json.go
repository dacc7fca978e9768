package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/hydrohabit/internal/flagx"
	"github.com/dmitrijs2005/hydrohabit/internal/timex"
)

// JsonConfig defines a configuration structure tailored for JSON
// unmarshalling. It uses timex.Duration for interval fields, which allows
// parsing both string values such as "24h" and integer nanoseconds.
//
// This struct is an intermediate DTO used only for reading JSON
// configuration files; its fields are copied into the runtime Config.
type JsonConfig struct {
	EndpointAddrHTTP        string         `json:"endpoint_addr_http"`
	DatabaseDSN             string         `json:"database_dsn"`
	SecretKey               string         `json:"secret_key"`
	SessionValidityDuration timex.Duration `json:"session_validity_duration"`
}

// parseJson loads configuration values from the JSON file named by the
// -c or -config command-line flags. If neither flag is set, no file is
// loaded. If the file cannot be read or contains invalid JSON, the function
// panics. The caller merges these values with defaults and flags as part of
// the full configuration process.
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
	config.DatabaseDSN = c.DatabaseDSN
	config.SecretKey = c.SecretKey
	config.SessionValidityDuration = time.Duration(c.SessionValidityDuration.Duration)
}
