// Package fuzzer_test implements the fuzzing interface for OSS-Fuzz.
package fuzzer_test

import (
	"io"
	"testing"

	"github.com/bufrsh/cronchirp/internal/cronexp"
	"github.com/bufrsh/cronchirp/internal/describe"
)

// FuzzParse fuzz tests [cronexp.Parse].
func FuzzParse(f *testing.F) {
	f.Add("* * * * *")
	f.Add("*/15 4-6 1,15 JAN-MAR SUN")
	f.Add("0 0 23 12 6")
	f.Fuzz(func(t *testing.T, input string) {
		expr, err := cronexp.Parse(input)
		if err != nil {
			if _, tagged := cronexp.KindOf(err); !tagged {
				t.Errorf("Parse(%q) returned an untagged error: %v", input, err)
			}
			return
		}
		if expr == nil {
			t.Errorf("Parse(%q) returned neither an expression nor an error", input)
		}
	})
}

// FuzzSchedule fuzz tests the full request path of [describe.Schedule].
func FuzzSchedule(f *testing.F) {
	f.Add("@daily\n")
	f.Add("30 6 * * 1-5\r\n")
	f.Add("@reboot")
	f.Fuzz(func(_ *testing.T, input string) {
		_ = describe.Schedule(io.Discard, input)
	})
}
