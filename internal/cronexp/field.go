package cronexp

import "strconv"

// Field is an ordered sequence of patterns for one schedule dimension.
// Patterns accumulate in left-to-right order of the expression text;
// the order is visible in the rendered output.
type Field[V any] struct {
	kind Kind[V]
	pats []Pattern[V]
}

func newField[V any](kind Kind[V]) *Field[V] {
	return &Field[V]{kind: kind, pats: nil}
}

// Kind returns the field's policy.
func (f *Field[V]) Kind() Kind[V] { return f.kind }

// Patterns returns the field's patterns in insertion order.
func (f *Field[V]) Patterns() []Pattern[V] { return f.pats }

// Defined reports whether the field places any constraint at all,
// that is, whether it holds a pattern other than the trivial `*`.
func (f *Field[V]) Defined() bool {
	for _, p := range f.pats {
		if !p.IsTrivial() {
			return true
		}
	}
	return false
}

// scanNum consumes a maximal run of digit tokens and parses them as a
// base-10 integer, returning the remaining tokens.
func scanNum(toks []Token) ([]Token, int, error) {
	idx := 0
	for toks[idx].Type == Num {
		idx++
	}
	num, err := strconv.Atoi(string(numChars(toks[:idx])))
	if err != nil {
		return nil, 0, newError(ErrNumberParse, "Error parsing a number")
	}
	return toks[idx:], num, nil
}

func numChars(toks []Token) []byte {
	cs := make([]byte, 0, len(toks))
	for _, t := range toks {
		cs = append(cs, t.Char)
	}
	return cs
}

// scanVal consumes one value: a numeric run if one is present,
// otherwise an alphabetic run resolved through the field's name table
// (case-insensitively).
func (f *Field[V]) scanVal(toks []Token) ([]Token, int, error) {
	if toks[0].Type == Num {
		return scanNum(toks)
	}

	idx := 0
	cs := []byte{}
	for toks[idx].Type == Alpha {
		cs = append(cs, upper(toks[idx].Char))
		idx++
	}
	num, err := f.kind.AlphaToNum(string(cs))
	if err != nil {
		return nil, 0, err
	}
	return toks[idx:], num, nil
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}

// scanPattern consumes exactly one comma-delimited pattern, appends it
// to the field, and returns the remaining tokens, positioned at a
// delimiter, comma, or EOF token. The caller loops: after a comma it
// parses another pattern into the same field; after a delimiter or EOF
// the field is complete.
func (f *Field[V]) scanPattern(toks []Token) ([]Token, error) {
	if toks[0].Type == Asterisk {
		switch toks[1].Type {
		case EOF, Delim, Comma:
			f.pats = append(f.pats, everyPattern[V](1))
			return toks[1:], nil
		case Slash:
			rest, num, err := scanNum(toks[2:])
			if err != nil {
				return nil, err
			}
			f.pats = append(f.pats, everyPattern[V](num))
			return rest, nil
		default:
			return nil, newError(ErrIllegalCharAfterAsterisk, "Illegal char after *")
		}
	}

	rest, num1, err := f.scanVal(toks)
	if err != nil {
		return nil, err
	}
	switch rest[0].Type {
	case EOF, Delim, Comma:
		v, err := f.kind.FromNum(num1)
		if err != nil {
			return nil, err
		}
		f.pats = append(f.pats, atPattern(v))
		return rest, nil
	case Dash:
		rest2, num2, err := f.scanVal(rest[1:])
		if err != nil {
			return nil, err
		}
		if num2 <= num1 {
			return nil, newError(ErrInvalidRange,
				"Range start (%d) cannot be bigger than or equal to end (%d)", num1, num2)
		}
		switch rest2[0].Type {
		case EOF, Delim, Comma:
			from, err := f.kind.FromNum(num1)
			if err != nil {
				return nil, err
			}
			to, err := f.kind.FromNum(num2)
			if err != nil {
				return nil, err
			}
			f.pats = append(f.pats, rangePattern(from, to, 1))
			return rest2, nil
		case Slash:
			rest3, step, err := scanNum(rest2[1:])
			if err != nil {
				return nil, err
			}
			from, err := f.kind.FromNum(num1)
			if err != nil {
				return nil, err
			}
			to, err := f.kind.FromNum(num2)
			if err != nil {
				return nil, err
			}
			f.pats = append(f.pats, rangePattern(from, to, step))
			return rest3, nil
		default:
			return nil, newError(ErrInvalidCharAfterRangeEnd, "Invalid char after range end number")
		}
	default:
		return nil, newError(ErrInvalidCharAfterNumber, "Invalid char after number")
	}
}
