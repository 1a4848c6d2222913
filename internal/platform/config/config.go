package config

import (
	"os"
	"time"
)

// Server captures HTTP server level configuration.
type Server struct {
	Addr            string
	ShutdownTimeout time.Duration
	RequestTimeout  time.Duration
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	addr := os.Getenv("SERENITY_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	return Server{
		Addr:            addr,
		ShutdownTimeout: durationEnv("SERENITY_SHUTDOWN_TIMEOUT", 10*time.Second),
		RequestTimeout:  durationEnv("SERENITY_REQUEST_TIMEOUT", 30*time.Second),
	}
}

func durationEnv(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}
	return d
}
