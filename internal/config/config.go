// Package config reads the service configuration from environment variables.
package config

import (
	"time"

	"github.com/bufrsh/cronchirp/internal/monitor"
	"github.com/bufrsh/cronchirp/internal/notifier"
	"github.com/bufrsh/cronchirp/internal/pp"
)

// DefaultBanner is appended after every successful translation.
const DefaultBanner = "\n\n\U0001F426 \x1b[36;1m@bufrsh\x1b[0m "

// Config holds the service configuration.
type Config struct {
	Address         string
	ReadTimeout     time.Duration
	MaxRequestBytes int
	MaxConnections  int
	Banner          string
	CacheExpiration time.Duration
	PingInterval    time.Duration
	Monitor         monitor.Monitor
	Notifier        notifier.Notifier
}

// Default gives the default configuration.
func Default() *Config {
	return &Config{
		Address:         ":6000",
		ReadTimeout:     time.Second * 30,
		MaxRequestBytes: 64,
		MaxConnections:  128,
		Banner:          DefaultBanner,
		CacheExpiration: time.Hour * 6,
		PingInterval:    time.Minute * 5,
		Monitor:         monitor.NewComposed(),
		Notifier:        notifier.NewComposed(),
	}
}

// ReadEnv reads all relevant environment variables and sets up c.
func (c *Config) ReadEnv(ppfmt pp.PP) bool {
	if ppfmt.IsShowing(pp.Info) {
		ppfmt.Infof(pp.EmojiEnvVars, "Reading settings . . .")
		ppfmt = ppfmt.Indent()
	}

	if !ReadString(ppfmt, "ADDRESS", &c.Address) ||
		!ReadNonnegDuration(ppfmt, "READ_TIMEOUT", &c.ReadTimeout) ||
		!ReadPosInt(ppfmt, "MAX_REQUEST_BYTES", &c.MaxRequestBytes) ||
		!ReadPosInt(ppfmt, "MAX_CONNECTIONS", &c.MaxConnections) ||
		!ReadString(ppfmt, "BANNER", &c.Banner) ||
		!ReadNonnegDuration(ppfmt, "CACHE_EXPIRATION", &c.CacheExpiration) ||
		!ReadNonnegDuration(ppfmt, "PING_INTERVAL", &c.PingInterval) ||
		!ReadAndAppendHealthchecksURL(ppfmt, "HEALTHCHECKS", &c.Monitor) ||
		!ReadAndAppendShoutrrrURL(ppfmt, "SHOUTRRR", &c.Notifier) {
		return false
	}

	return true
}
