package cronexp

// TokenType classifies a single character of a CRON expression.
type TokenType int

// All token types. Delim covers spaces, tabs, carriage returns,
// newlines, and NUL bytes.
const (
	Delim TokenType = iota
	Asterisk
	Comma
	Num
	Dash
	Slash
	Alpha
	EOF
)

// String returns a human-readable name of the token type.
func (t TokenType) String() string {
	switch t {
	case Delim:
		return "delimiter"
	case Asterisk:
		return "asterisk"
	case Comma:
		return "comma"
	case Num:
		return "digit"
	case Dash:
		return "dash"
	case Slash:
		return "slash"
	case Alpha:
		return "letter"
	case EOF:
		return "end of input"
	default:
		return "unknown"
	}
}

// Token is a classified character of a CRON expression. Char is only
// meaningful for Num and Alpha tokens.
type Token struct {
	Type TokenType
	Char byte
}

// classify maps a raw character to a token. The second return value
// reports whether the character belongs to the accepted symbol set.
func classify(c byte) (Token, bool) {
	switch {
	case c == '*':
		return Token{Type: Asterisk}, true
	case c == ',':
		return Token{Type: Comma}, true
	case c >= '0' && c <= '9':
		return Token{Type: Num, Char: c}, true
	case c == '-':
		return Token{Type: Dash}, true
	case c == '/':
		return Token{Type: Slash}, true
	case c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == 0:
		return Token{Type: Delim}, true
	case c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z':
		return Token{Type: Alpha, Char: c}, true
	default:
		return Token{}, false
	}
}

// legalAfter reports whether a token of type t may immediately follow
// a token of type prev.
func (t TokenType) legalAfter(prev TokenType) bool {
	switch t {
	case Asterisk:
		return prev == Delim || prev == Comma
	case Comma:
		return prev == Asterisk || prev == Num || prev == Alpha
	case Num:
		return prev == Delim || prev == Num || prev == Slash || prev == Comma || prev == Dash
	case Dash:
		return prev == Num || prev == Alpha
	case Slash:
		return prev == Num || prev == Asterisk || prev == Alpha
	case Delim, EOF:
		return prev == Delim || prev == Asterisk || prev == Num || prev == Alpha
	case Alpha:
		return prev == Delim || prev == Alpha || prev == Slash || prev == Comma || prev == Dash
	default:
		return false
	}
}
