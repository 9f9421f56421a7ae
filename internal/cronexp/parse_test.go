package cronexp_test

import (
	"testing"

	"github.com/robfig/cron/v3"
	"github.com/stretchr/testify/require"

	"github.com/bufrsh/cronchirp/internal/cronexp"
)

func at[V any](v V) cronexp.Pattern[V] {
	return cronexp.Pattern[V]{Kind: cronexp.At, Value: v}
}

func every[V any](step int) cronexp.Pattern[V] {
	return cronexp.Pattern[V]{Kind: cronexp.Every, Step: step}
}

func rng[V any](from, to V, step int) cronexp.Pattern[V] {
	return cronexp.Pattern[V]{Kind: cronexp.Range, From: from, To: to, Step: step}
}

func TestParse(t *testing.T) {
	t.Parallel()

	for name, tc := range map[string]struct {
		input      string
		minute     []cronexp.Pattern[int]
		hour       []cronexp.Pattern[int]
		dayOfMonth []cronexp.Pattern[int]
		month      []cronexp.Pattern[string]
		dayOfWeek  []cronexp.Pattern[string]
	}{
		"yearly": {
			"0 0 1 1 *",
			[]cronexp.Pattern[int]{at(0)},
			[]cronexp.Pattern[int]{at(0)},
			[]cronexp.Pattern[int]{at(1)},
			[]cronexp.Pattern[string]{at("JAN")},
			[]cronexp.Pattern[string]{every[string](1)},
		},
		"every-15-minutes": {
			"*/15 * * * *",
			[]cronexp.Pattern[int]{every[int](15)},
			[]cronexp.Pattern[int]{every[int](1)},
			[]cronexp.Pattern[int]{every[int](1)},
			[]cronexp.Pattern[string]{every[string](1)},
			[]cronexp.Pattern[string]{every[string](1)},
		},
		"range-with-step": {
			"5 4 1-5/2 * *",
			[]cronexp.Pattern[int]{at(5)},
			[]cronexp.Pattern[int]{at(4)},
			[]cronexp.Pattern[int]{rng(1, 5, 2)},
			[]cronexp.Pattern[string]{every[string](1)},
			[]cronexp.Pattern[string]{every[string](1)},
		},
		"named-month-range": {
			"0 0 * jan-mar *",
			[]cronexp.Pattern[int]{at(0)},
			[]cronexp.Pattern[int]{at(0)},
			[]cronexp.Pattern[int]{every[int](1)},
			[]cronexp.Pattern[string]{rng("JAN", "MAR", 1)},
			[]cronexp.Pattern[string]{every[string](1)},
		},
		"named-day-case-insensitive": {
			"0 0 * * Sun",
			[]cronexp.Pattern[int]{at(0)},
			[]cronexp.Pattern[int]{at(0)},
			[]cronexp.Pattern[int]{every[int](1)},
			[]cronexp.Pattern[string]{every[string](1)},
			[]cronexp.Pattern[string]{at("SUN")},
		},
		"comma-separated": {
			"1,2,30-40 * * * *",
			[]cronexp.Pattern[int]{at(1), at(2), rng(30, 40, 1)},
			[]cronexp.Pattern[int]{every[int](1)},
			[]cronexp.Pattern[int]{every[int](1)},
			[]cronexp.Pattern[string]{every[string](1)},
			[]cronexp.Pattern[string]{every[string](1)},
		},
		"extra-whitespace": {
			"  0\t0  1   1  *  ",
			[]cronexp.Pattern[int]{at(0)},
			[]cronexp.Pattern[int]{at(0)},
			[]cronexp.Pattern[int]{at(1)},
			[]cronexp.Pattern[string]{at("JAN")},
			[]cronexp.Pattern[string]{every[string](1)},
		},
	} {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			expr, err := cronexp.Parse(tc.input)
			require.NoError(t, err)
			require.Equal(t, tc.minute, expr.Minute.Patterns())
			require.Equal(t, tc.hour, expr.Hour.Patterns())
			require.Equal(t, tc.dayOfMonth, expr.DayOfMonth.Patterns())
			require.Equal(t, tc.month, expr.Month.Patterns())
			require.Equal(t, tc.dayOfWeek, expr.DayOfWeek.Patterns())
		})
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	for name, tc := range map[string]struct {
		input string
		kind  cronexp.ErrorKind
	}{
		"unknown-character":    {"0 0 1 1 %", cronexp.ErrUnknownCharacter},
		"double-asterisk":      {"** * * * *", cronexp.ErrIllegalToken},
		"dash-after-delim":     {"-5 * * * *", cronexp.ErrIllegalToken},
		"double-dash":          {"1--2 * * * *", cronexp.ErrIllegalToken},
		"trailing-dash":        {"0 0 1 1 1-", cronexp.ErrUnexpectedEnd},
		"trailing-slash":       {"0 0 1 1 */", cronexp.ErrUnexpectedEnd},
		"huge-number":          {"99999999999999999999 * * * *", cronexp.ErrNumberParse},
		"alpha-step":           {"*/x * * * *", cronexp.ErrNumberParse},
		"unknown-name":         {"0 0 * xyz *", cronexp.ErrInvalidNamedValue},
		"name-in-minute":       {"mon 0 * * *", cronexp.ErrInvalidNamedValue},
		"descending-range":     {"5 4 3-1 * *", cronexp.ErrInvalidRange},
		"empty-range":          {"5 4 3-3 * *", cronexp.ErrInvalidRange},
		"minute-out-of-domain": {"60 * * * *", cronexp.ErrOutOfDomain},
		"hour-out-of-domain":   {"0 24 * * *", cronexp.ErrOutOfDomain},
		"day-24-rejected":      {"0 0 24 * *", cronexp.ErrOutOfDomain},
		"day-zero-rejected":    {"0 0 0 * *", cronexp.ErrOutOfDomain},
		"month-13":             {"0 0 1 13 *", cronexp.ErrOutOfDomain},
		"weekday-7":            {"0 0 * * 7", cronexp.ErrOutOfDomain},
		"too-few-fields":       {"0 0 1", cronexp.ErrIncompleteExpression},
		"empty":                {"", cronexp.ErrIncompleteExpression},
		"too-many-fields":      {"0 0 1 1 * *", cronexp.ErrBadFieldBoundary},
	} {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			expr, err := cronexp.Parse(tc.input)
			require.Nil(t, expr)
			require.Error(t, err)

			kind, ok := cronexp.KindOf(err)
			require.True(t, ok)
			require.Equal(t, tc.kind, kind)
		})
	}
}

func TestDayOfMonthUpperBound(t *testing.T) {
	t.Parallel()

	// The accepted domain stops at 23; days 24-31 are rejected even
	// though standard crontab accepts them.
	for day := 1; day <= 23; day++ {
		_, err := cronexp.Parse("0 0 " + itoa(day) + " * *")
		require.NoError(t, err, "day %d", day)
	}
	for day := 24; day <= 31; day++ {
		_, err := cronexp.Parse("0 0 " + itoa(day) + " * *")
		kind, ok := cronexp.KindOf(err)
		require.True(t, ok, "day %d", day)
		require.Equal(t, cronexp.ErrOutOfDomain, kind, "day %d", day)
	}
}

func itoa(n int) string {
	if n >= 10 {
		return string([]byte{'0' + byte(n/10), '0' + byte(n%10)})
	}
	return string([]byte{'0' + byte(n)})
}

// Everything this parser accepts should also be a valid standard cron
// expression; cross-check against the reference parser.
func TestAcceptedByStandardCron(t *testing.T) {
	t.Parallel()

	for _, input := range []string{
		"0 0 1 1 *",
		"*/15 * * * *",
		"5 4 1-5/2 * *",
		"0 0 * jan-mar *",
		"0 0 * * Sun",
		"1,2,30-40 * * * *",
		"59 23 23 12 6",
	} {
		input := input
		t.Run(input, func(t *testing.T) {
			t.Parallel()

			_, err := cronexp.Parse(input)
			require.NoError(t, err)

			_, err = cron.ParseStandard(input)
			require.NoError(t, err)
		})
	}
}
