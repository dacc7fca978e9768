package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/hydrohabit/internal/flagx"
)

// parseFlags populates selected coach Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8090")
//	-o string   allowed CORS origin
//	-g string   geolocation provider endpoint
//	-w string   weather provider endpoint
//	-m string   chat-completion model name
//	-t int      outbound request timeout, seconds
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-o", "-g", "-w", "-m", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "address and port to run server")
	fs.StringVar(&config.AllowedOrigin, "o", config.AllowedOrigin, "allowed CORS origin")
	fs.StringVar(&config.GeoEndpoint, "g", config.GeoEndpoint, "geolocation endpoint")
	fs.StringVar(&config.WeatherEndpoint, "w", config.WeatherEndpoint, "weather endpoint")
	fs.StringVar(&config.OpenAIModel, "m", config.OpenAIModel, "chat model")

	requestTimeout := fs.Int("t", int(config.RequestTimeout.Seconds()), "request_timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.RequestTimeout = time.Duration(*requestTimeout) * time.Second
}
