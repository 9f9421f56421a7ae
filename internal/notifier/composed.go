package notifier

import (
	"context"

	"github.com/bufrsh/cronchirp/internal/pp"
)

type notifiers []Notifier

var _ Notifier = notifiers{}

// NewComposed creates a notifier that sends each message to all of ns.
// Nil notifiers are skipped and nested compositions are flattened.
func NewComposed(ns ...Notifier) Notifier {
	list := make([]Notifier, 0, len(ns))
	for _, n := range ns {
		if n == nil {
			continue
		}
		if nested, composed := n.(notifiers); composed {
			list = append(list, nested...)
		} else {
			list = append(list, n)
		}
	}
	return notifiers(list)
}

// Describe calls [Notifier.Describe] for each notifier in the group with the callback.
func (ns notifiers) Describe(callback func(service, params string)) {
	for _, n := range ns {
		n.Describe(callback)
	}
}

// Send calls [Notifier.Send] for each notifier in the group.
func (ns notifiers) Send(ctx context.Context, ppfmt pp.PP, msg string) bool {
	ok := true
	for _, n := range ns {
		ok = n.Send(ctx, ppfmt, msg) && ok
	}
	return ok
}
