package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const (
	defaultPort            = "8080"
	defaultUpstreamTimeout = 15 * time.Second
	defaultPingMessage     = "ping"
)

// Config holds everything the proxy needs from the environment. main() loads
// .env via godotenv before calling Load, so plain os.Getenv is enough here.
type Config struct {
	// Port the proxy listens on.
	Port string

	// UpstreamBaseURL is the external job-platform API root, e.g.
	// "https://platform.example.com/api/v1". Required.
	UpstreamBaseURL string

	// UpstreamTimeout bounds every outbound call to the platform. The
	// platform default of "no timeout at all" is exactly the latent risk we
	// are avoiding.
	UpstreamTimeout time.Duration

	// PingMessage is returned by GET /api/ping.
	PingMessage string
}

func Load() (Config, error) {
	cfg := Config{
		Port:            getenvDefault("PORT", defaultPort),
		UpstreamBaseURL: strings.TrimSpace(os.Getenv("BACKEND_API_URL")),
		UpstreamTimeout: defaultUpstreamTimeout,
		PingMessage:     getenvDefault("PING_MESSAGE", defaultPingMessage),
	}

	if cfg.UpstreamBaseURL == "" {
		return cfg, errors.New("BACKEND_API_URL must be set")
	}

	if raw := strings.TrimSpace(os.Getenv("UPSTREAM_TIMEOUT_SECONDS")); raw != "" {
		secs, err := strconv.Atoi(raw)
		if err != nil || secs <= 0 {
			return cfg, errors.Errorf("invalid UPSTREAM_TIMEOUT_SECONDS %q", raw)
		}
		cfg.UpstreamTimeout = time.Duration(secs) * time.Second
	}

	return cfg, nil
}

func getenvDefault(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
