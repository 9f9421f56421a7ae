package cronexp

import (
	"errors"
	"fmt"
)

// ErrorKind tags the reason a CRON expression was rejected.
type ErrorKind int

// All the ways a CRON expression can be rejected.
const (
	ErrUnknownCharacter ErrorKind = iota // a byte outside the accepted symbol set
	ErrIllegalToken                      // two adjacent tokens that may not follow each other
	ErrUnexpectedEnd                     // the input ended where it may not
	ErrNumberParse                       // a numeric run that is empty or does not fit an int
	ErrInvalidNamedValue                 // an alphabetic run not in the field's name table
	ErrInvalidRange                      // a range whose end is not strictly after its start
	ErrIllegalCharAfterAsterisk
	ErrInvalidCharAfterNumber
	ErrInvalidCharAfterRangeEnd
	ErrOutOfDomain          // a numeric value outside the field's legal range
	ErrIncompleteExpression // fewer than five fields before the input ended
	ErrBadFieldBoundary     // a field starting or ending on an unexpected token
)

// Error is a rejection of a CRON expression. Kind tags the reason so
// callers can match on it independent of the message wording.
type Error struct {
	Kind    ErrorKind
	Message string
}

// Error returns the display text of the rejection.
func (e Error) Error() string {
	return e.Message
}

func newError(kind ErrorKind, format string, args ...any) Error {
	return Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// KindOf extracts the [ErrorKind] of err; ok is false when err is not
// an [Error].
func KindOf(err error) (kind ErrorKind, ok bool) {
	var e Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}
