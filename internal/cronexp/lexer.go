package cronexp

// tokenize converts the raw expression text into a validated token
// stream. The stream starts with a synthetic delimiter (so a pattern
// may legally start at position 0) and ends with an EOF token, which
// is itself subject to the adjacency rule.
func tokenize(input string) ([]Token, error) {
	toks := make([]Token, 0, len(input)+2)
	toks = append(toks, Token{Type: Delim})

	prev := Delim
	for i := 0; i < len(input); i++ {
		tok, ok := classify(input[i])
		if !ok {
			return nil, newError(ErrUnknownCharacter, "Unknown token %#x", input[i])
		}
		if !tok.Type.legalAfter(prev) {
			return nil, newError(ErrIllegalToken, "Illegal token %c", input[i])
		}
		prev = tok.Type
		toks = append(toks, tok)
	}

	if !EOF.legalAfter(prev) {
		return nil, newError(ErrUnexpectedEnd, "Unexpected end of expression")
	}
	return append(toks, Token{Type: EOF}), nil
}
