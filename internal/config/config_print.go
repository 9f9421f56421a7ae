package config

import (
	"fmt"

	"github.com/bufrsh/cronchirp/internal/pp"
)

const itemTitleWidth = 24

// Print prints the Config on the screen.
func (c *Config) Print(ppfmt pp.PP) {
	if !ppfmt.IsShowing(pp.Info) {
		return
	}

	ppfmt.Infof(pp.EmojiEnvVars, "Current settings:")
	ppfmt = ppfmt.Indent()
	inner := ppfmt.Indent()

	section := func(title string) { ppfmt.Infof(pp.EmojiConfig, title) }
	item := func(title string, format string, values ...any) {
		inner.Infof(pp.EmojiBullet, "%-*s %s", itemTitleWidth, title, fmt.Sprintf(format, values...))
	}

	section("Serving:")
	item("Address:", "%s", c.Address)
	item("Read timeout:", "%v", c.ReadTimeout)
	item("Request size limit:", "%d bytes", c.MaxRequestBytes)
	item("Connection limit:", "%d", c.MaxConnections)
	item("Banner:", "%q", c.Banner)

	section("Caching:")
	item("Cache expiration:", "%v", c.CacheExpiration)

	hasMonitors := false
	c.Monitor.Describe(func(service, params string) {
		if !hasMonitors {
			section("Monitors:")
			hasMonitors = true
		}
		item(service+":", "%s", params)
	})
	if hasMonitors {
		item("Ping interval:", "%v", c.PingInterval)
	}

	hasNotifiers := false
	c.Notifier.Describe(func(service, params string) {
		if !hasNotifiers {
			section("Notifiers (via shoutrrr):")
			hasNotifiers = true
		}
		item(service+":", "%s", params)
	})
}
