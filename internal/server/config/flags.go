package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/hydrohabit/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8080")
//	-d string   PostgreSQL DSN
//	-s string   session cookie HMAC secret key
//	-t int      session validity, minutes
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components. The duration
// flag is accepted as an integer in minutes.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-s", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	sessionValidityDuration := fs.Int("t", int(config.SessionValidityDuration.Minutes()), "session_validity_duration (in minutes)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.SessionValidityDuration = time.Duration(*sessionValidityDuration) * time.Minute
}
