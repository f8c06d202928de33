package domparser

// Parse parses markup and returns the document's root-level nodes.
// Returns an *UnterminatedTagError, *UnterminatedAttributeValueError,
// *MalformedAttributeError, *MismatchedEndTagError, *StrayEndTagError or
// *UnclosedElementError on failure.
func Parse(src []byte) ([]*Node, error) {
	tz := NewTokenizer(src)
	b := NewBuilder()
	for {
		tok, err := tz.Next()
		if err != nil {
			return nil, err
		}
		if tok.Kind == TokenEOF {
			return b.Finish()
		}
		if err := b.Feed(tok); err != nil {
			return nil, err
		}
	}
}

// ParseString is Parse for string input.
func ParseString(src string) ([]*Node, error) {
	return Parse([]byte(src))
}
