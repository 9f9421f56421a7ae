//go:build !linux || nocapdrop

package droproot

import (
	"github.com/bufrsh/cronchirp/internal/pp"
)

func tryRaiseCapabilitySETUID() {}
func tryRaiseCapabilitySETGID() {}
func dropCapabilities(ppfmt pp.PP) bool {
	ppfmt.Infof(pp.EmojiDisabled, "Support of Linux capabilities was disabled")
	return true
}
