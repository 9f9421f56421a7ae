// Package describe renders parsed CRON expressions as English text.
package describe

import (
	"fmt"
	"io"
	"strings"

	"github.com/bufrsh/cronchirp/internal/cronexp"
)

// shorthands are the @-forms accepted in place of a full expression.
// @reboot is not listed: it short-circuits without parsing.
var shorthands = map[string]string{
	"@yearly":   "0 0 1 1 *",
	"@annually": "0 0 1 1 *",
	"@monthly":  "0 0 1 * *",
	"@weekly":   "0 0 * * 0",
	"@daily":    "0 0 * * *",
	"@hourly":   "0 * * * *",
}

// Schedule translates one request line into a description of when the
// schedule fires, written to w. Only the first line of input is
// interpreted. Parse failures are reported before anything is written;
// once parsing succeeded the only possible failures are write errors.
func Schedule(w io.Writer, input string) error {
	line, _, _ := strings.Cut(input, "\n")
	line = strings.TrimSuffix(line, "\r")

	if line == "@reboot" {
		// nothing to translate
		_, err := io.WriteString(w, "Run after reboot")
		return err
	}
	if expanded, ok := shorthands[line]; ok {
		line = expanded
	}

	expr, err := cronexp.Parse(line)
	if err != nil {
		return err
	}
	return Render(w, expr)
}

// printer accumulates the first write error so rendering logic can
// stay free of per-line error plumbing.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

// twoDigit renders an exact value: zero-padded for numeric fields,
// the three-letter name for month and day-of-week.
func twoDigit[V any](v V) string {
	if n, ok := any(v).(int); ok {
		return fmt.Sprintf("%02d", n)
	}
	return fmt.Sprint(v)
}

// bound renders a range endpoint unpadded.
func bound[V any](v V) string {
	return fmt.Sprint(v)
}

// ordinal gives the suffix for a step count modulo 20, so 21 selects
// the fixed every-phrase and 22 gets "nd".
func ordinal(step int) string {
	switch step % 20 {
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}

func renderField[V any](p *printer, f *cronexp.Field[V]) {
	kind := f.Kind()
	for _, pat := range f.Patterns() {
		switch pat.Kind {
		case cronexp.At:
			p.printf("%s %s\n", kind.AtPhrase(), twoDigit(pat.Value))
		case cronexp.Every:
			if pat.Step%20 == 1 {
				if phrase := kind.EveryPhrase(); phrase != "" {
					p.printf("%s\n", phrase)
				}
			} else {
				p.printf("%s every %d%s %s\n", kind.AtWord(), pat.Step, ordinal(pat.Step), kind.Name())
			}
		case cronexp.Range:
			if pat.Step%20 == 1 {
				p.printf("%s every %s from %s to %s\n",
					kind.AtWord(), kind.Name(), bound(pat.From), bound(pat.To))
			} else {
				p.printf("%s every %d%s %s from %s to %s\n",
					kind.AtWord(), pat.Step, ordinal(pat.Step), kind.Name(), bound(pat.From), bound(pat.To))
			}
		}
	}
}

// Render writes the description of a fully parsed expression to w:
// the "Run" header, the minute/hour section, and the day section
// combined under the POSIX crontab rule (day-of-month/month and
// day-of-week are OR'd together when both are restricted).
func Render(w io.Writer, expr *cronexp.Expression) error {
	p := &printer{w: w}
	p.printf("Run\n")

	minPats, hourPats := expr.Minute.Patterns(), expr.Hour.Patterns()
	if len(minPats) == 1 && len(hourPats) == 1 &&
		minPats[0].Kind == cronexp.At && hourPats[0].Kind == cronexp.At {
		p.printf("at %s:%s\n", twoDigit(hourPats[0].Value), twoDigit(minPats[0].Value))
	} else {
		renderField(p, expr.Minute)
		renderField(p, expr.Hour)
	}

	domPats, monPats := expr.DayOfMonth.Patterns(), expr.Month.Patterns()
	domMonPrinted := false
	if len(domPats) == 1 && len(monPats) == 1 &&
		domPats[0].Kind == cronexp.At && monPats[0].Kind == cronexp.At {
		p.printf("on %s %s\n", monPats[0].Value, twoDigit(domPats[0].Value))
		domMonPrinted = true
	}

	// https://pubs.opengroup.org/onlinepubs/9699919799/utilities/crontab.html
	domMonDefined := expr.DayOfMonth.Defined() || expr.Month.Defined()
	dowDefined := expr.DayOfWeek.Defined()
	switch {
	case domMonDefined && dowDefined:
		if !domMonPrinted {
			renderField(p, expr.DayOfMonth)
			renderField(p, expr.Month)
		}
		p.printf("and\n")
		renderField(p, expr.DayOfWeek)
	case domMonDefined:
		if !domMonPrinted {
			renderField(p, expr.DayOfMonth)
			renderField(p, expr.Month)
		}
	case dowDefined:
		if !domMonPrinted {
			renderField(p, expr.DayOfMonth)
		}
		renderField(p, expr.DayOfWeek)
	default:
		if !domMonPrinted {
			renderField(p, expr.Month)
		}
	}

	return p.err
}
