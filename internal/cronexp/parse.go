// Package cronexp parses five-field CRON expressions.
package cronexp

// Expression is a fully parsed CRON expression: five fields in the
// fixed order minute, hour, day-of-month, month, day-of-week. Each
// parse builds a fresh Expression; nothing is shared across calls.
type Expression struct {
	Minute     *Field[int]
	Hour       *Field[int]
	DayOfMonth *Field[int]
	Month      *Field[string]
	DayOfWeek  *Field[string]
}

// fieldState tracks which field the parser is currently filling.
type fieldState int

const (
	stateMinute fieldState = iota
	stateHour
	stateDayOfMonth
	stateMonth
	stateDayOfWeek
	stateEnd
)

// Parse tokenizes and parses a raw five-field CRON expression. The
// returned error is always a kind-tagged [Error].
func Parse(input string) (*Expression, error) {
	toks, err := tokenize(input)
	if err != nil {
		return nil, err
	}

	expr := &Expression{
		Minute:     newField[int](Minute{}),
		Hour:       newField[int](Hour{}),
		DayOfMonth: newField[int](DayOfMonth{}),
		Month:      newField[string](Month{}),
		DayOfWeek:  newField[string](DayOfWeek{}),
	}

	state := stateMinute
loop:
	for {
		switch toks[0].Type {
		case Delim:
			// condense consecutive delimiters into one
			for toks[0].Type == Delim {
				toks = toks[1:]
			}
			if toks[0].Type == EOF {
				break loop
			}
		case Comma:
			toks = toks[1:]
		case EOF:
			break loop
		default:
			return nil, newError(ErrBadFieldBoundary, "Pattern doesn't start/end on correct token")
		}

		switch state {
		case stateMinute:
			toks, err = expr.Minute.scanPattern(toks)
		case stateHour:
			toks, err = expr.Hour.scanPattern(toks)
		case stateDayOfMonth:
			toks, err = expr.DayOfMonth.scanPattern(toks)
		case stateMonth:
			toks, err = expr.Month.scanPattern(toks)
		case stateDayOfWeek:
			toks, err = expr.DayOfWeek.scanPattern(toks)
		case stateEnd:
			return nil, newError(ErrBadFieldBoundary, "Too many fields in CRON expression")
		}
		if err != nil {
			return nil, err
		}

		if toks[0].Type == Delim || toks[0].Type == EOF {
			state++
		}
	}

	if state != stateEnd {
		return nil, newError(ErrIncompleteExpression, "Incomplete CRON expression")
	}
	return expr, nil
}
