package config

import (
	"github.com/bufrsh/cronchirp/internal/notifier"
	"github.com/bufrsh/cronchirp/internal/pp"
)

// ReadAndAppendShoutrrrURL reads the shoutrrr URLs separated by the newline.
func ReadAndAppendShoutrrrURL(ppfmt pp.PP, key string, field *notifier.Notifier) bool {
	vals := Getenvs(key)
	if len(vals) == 0 {
		return true
	}

	s, ok := notifier.NewShoutrrr(ppfmt, vals)
	if !ok {
		return false
	}

	// Append the new notifier to the existing list
	*field = notifier.NewComposed(*field, s)
	return true
}
