package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"go.uber.org/multierr"

	"github.com/hamed0406/deephealth/internal/domain"
)

// Default downstream health endpoints, reachable on the internal network.
const (
	DefaultAnalyticsURL = "https://analytics:8000/health"
	DefaultMonitorURL   = "https://monitor:8080/health"
	DefaultAPIURL       = "https://api:3000/health"
)

type Config struct {
	Addr         string // listen address, all interfaces on 8081 by default
	LogDir       string // logs directory
	LogLevel     string // debug | info | warn | error
	AnalyticsURL string
	MonitorURL   string
	APIURL       string
}

func FromEnv() Config {
	return Config{
		Addr:         getenv("ADDR", "0.0.0.0:8081"),
		LogDir:       getenv("LOG_DIR", "logs"),
		LogLevel:     getenv("LOG_LEVEL", "info"),
		AnalyticsURL: getenv("ANALYTICS_URL", DefaultAnalyticsURL),
		MonitorURL:   getenv("MONITOR_URL", DefaultMonitorURL),
		APIURL:       getenv("API_URL", DefaultAPIURL),
	}
}

// Targets lists the checked services in reporting order.
func (c Config) Targets() []domain.Target {
	return []domain.Target{
		{Name: "analytics-engine", URL: c.AnalyticsURL},
		{Name: "resource-monitor", URL: c.MonitorURL},
		{Name: "orchestrator-api", URL: c.APIURL},
	}
}

// Validate reports every problem at once. A bad target URL is not fatal to
// the server (the check reports it as an error) but preflight rejects it.
func (c Config) Validate() error {
	var err error
	if strings.TrimSpace(c.Addr) == "" {
		err = multierr.Append(err, fmt.Errorf("ADDR is empty"))
	}
	for _, t := range c.Targets() {
		if !isValidHTTPURL(t.URL) {
			err = multierr.Append(err, fmt.Errorf("%s: invalid http(s) url %q", t.Name, t.URL))
		}
	}
	return err
}

func isValidHTTPURL(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return u.Host != ""
}

func getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
