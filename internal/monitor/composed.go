package monitor

import (
	"context"

	"github.com/bufrsh/cronchirp/internal/pp"
)

type monitors []Monitor

var _ Monitor = monitors{}

// NewComposed creates a monitor that relays each ping to all of mons.
// Nil monitors are skipped and nested compositions are flattened.
func NewComposed(mons ...Monitor) Monitor {
	ms := make([]Monitor, 0, len(mons))
	for _, m := range mons {
		if m == nil {
			continue
		}
		if list, composed := m.(monitors); composed {
			ms = append(ms, list...)
		} else {
			ms = append(ms, m)
		}
	}
	return monitors(ms)
}

// Describe calls [Monitor.Describe] for each monitor in the group with the callback.
func (ms monitors) Describe(callback func(service, params string)) {
	for _, m := range ms {
		m.Describe(callback)
	}
}

// Start calls [Monitor.Start] for each monitor in the group.
func (ms monitors) Start(ctx context.Context, ppfmt pp.PP, message string) bool {
	ok := true
	for _, m := range ms {
		ok = m.Start(ctx, ppfmt, message) && ok
	}
	return ok
}

// Success calls [Monitor.Success] for each monitor in the group.
func (ms monitors) Success(ctx context.Context, ppfmt pp.PP, message string) bool {
	ok := true
	for _, m := range ms {
		ok = m.Success(ctx, ppfmt, message) && ok
	}
	return ok
}

// Failure calls [Monitor.Failure] for each monitor in the group.
func (ms monitors) Failure(ctx context.Context, ppfmt pp.PP, message string) bool {
	ok := true
	for _, m := range ms {
		ok = m.Failure(ctx, ppfmt, message) && ok
	}
	return ok
}

// ExitStatus calls [Monitor.ExitStatus] for each monitor in the group.
func (ms monitors) ExitStatus(ctx context.Context, ppfmt pp.PP, code int, message string) bool {
	ok := true
	for _, m := range ms {
		ok = m.ExitStatus(ctx, ppfmt, code, message) && ok
	}
	return ok
}
