package cronexp

// Kind is the per-field policy: the legal numeric domain, the name
// table for alphabetic input, and the vocabulary used when rendering
// the field. There is exactly one stateless instance per field kind.
type Kind[V any] interface {
	// Name is the noun of the field, such as "minute".
	Name() string

	// AtPhrase is the preposition phrase for an exact value, such as
	// "at minute" or "past hour".
	AtPhrase() string

	// AtWord is the preposition used before an "every N" phrase.
	AtWord() string

	// EveryPhrase is the phrase for the trivial `*` pattern. An empty
	// phrase means the field stays silent.
	EveryPhrase() string

	// FromNum checks n against the field's domain and converts it to
	// the field's value type.
	FromNum(n int) (V, error)

	// AlphaToNum resolves an uppercased name through the field's name
	// table.
	AlphaToNum(s string) (int, error)
}

// Minute is the policy of the first field, with the domain 0-59.
type Minute struct{}

func (Minute) Name() string        { return "minute" }
func (Minute) AtPhrase() string    { return "at minute" }
func (Minute) AtWord() string      { return "at" }
func (Minute) EveryPhrase() string { return "at every minute" }

func (Minute) FromNum(n int) (int, error) {
	if n < 60 {
		return n, nil
	}
	return 0, newError(ErrOutOfDomain, "Invalid MINUTE value %d", n)
}

func (Minute) AlphaToNum(s string) (int, error) {
	return 0, newError(ErrInvalidNamedValue, "Invalid MINUTE value %s", s)
}

// Hour is the policy of the second field, with the domain 0-23.
type Hour struct{}

func (Hour) Name() string        { return "hour" }
func (Hour) AtPhrase() string    { return "past hour" }
func (Hour) AtWord() string      { return "past" }
func (Hour) EveryPhrase() string { return "past every hour" }

func (Hour) FromNum(n int) (int, error) {
	if n < 24 {
		return n, nil
	}
	return 0, newError(ErrOutOfDomain, "Invalid HOUR value %d", n)
}

func (Hour) AlphaToNum(s string) (int, error) {
	return 0, newError(ErrInvalidNamedValue, "Invalid HOUR value %s", s)
}

// DayOfMonth is the policy of the third field. The accepted domain is
// 1-23, not the conventional 1-31.
type DayOfMonth struct{}

func (DayOfMonth) Name() string        { return "day-of-month" }
func (DayOfMonth) AtPhrase() string    { return "on day-of-month" }
func (DayOfMonth) AtWord() string      { return "on" }
func (DayOfMonth) EveryPhrase() string { return "" }

func (DayOfMonth) FromNum(n int) (int, error) {
	if n >= 1 && n <= 23 {
		return n, nil
	}
	return 0, newError(ErrOutOfDomain, "Invalid DAY-OF-MONTH value %d", n)
}

func (DayOfMonth) AlphaToNum(s string) (int, error) {
	return 0, newError(ErrInvalidNamedValue, "Invalid DAY-OF-MONTH value %s", s)
}

var monthNames = [...]string{"JAN", "FEB", "MAR", "APR", "MAY", "JUN", "JUL", "AUG", "SEP", "OCT", "NOV", "DEC"}

// Month is the policy of the fourth field, with the domain 1-12 and
// the JAN..DEC name table.
type Month struct{}

func (Month) Name() string        { return "month" }
func (Month) AtPhrase() string    { return "in" }
func (Month) AtWord() string      { return "in" }
func (Month) EveryPhrase() string { return "" }

func (Month) FromNum(n int) (string, error) {
	if n >= 1 && n <= 12 {
		return monthNames[n-1], nil
	}
	return "", newError(ErrOutOfDomain, "Invalid MONTH value %d", n)
}

func (Month) AlphaToNum(s string) (int, error) {
	for i, name := range monthNames {
		if name == s {
			return i + 1, nil
		}
	}
	return 0, newError(ErrInvalidNamedValue, "Invalid MONTH value %s", s)
}

var dayNames = [...]string{"SUN", "MON", "TUE", "WED", "THU", "FRI", "SAT"}

// DayOfWeek is the policy of the fifth field, with the domain 0-6
// (Sunday is 0) and the SUN..SAT name table.
type DayOfWeek struct{}

func (DayOfWeek) Name() string        { return "day-of-week" }
func (DayOfWeek) AtPhrase() string    { return "on" }
func (DayOfWeek) AtWord() string      { return "on" }
func (DayOfWeek) EveryPhrase() string { return "" }

func (DayOfWeek) FromNum(n int) (string, error) {
	if n >= 0 && n <= 6 {
		return dayNames[n], nil
	}
	return "", newError(ErrOutOfDomain, "Invalid DAY-OF-WEEK value %d", n)
}

func (DayOfWeek) AlphaToNum(s string) (int, error) {
	for i, name := range dayNames {
		if name == s {
			return i, nil
		}
	}
	return 0, newError(ErrInvalidNamedValue, "Invalid DAY-OF-WEEK value %s", s)
}
