package domparser

import (
	"fmt"
	"strings"
)

// Tokenizer splits markup into tokens. It is a pull iterator: each call to
// Next advances the cursor by exactly one token.
type Tokenizer struct {
	src  []byte
	pos  int // current byte offset
	line int // current line (1-based)
	col  int // current column (1-based)
	err  error
}

// NewTokenizer creates a Tokenizer over src. The tokenizer reads src in place
// and must not outlive modifications to it.
func NewTokenizer(src []byte) *Tokenizer {
	return &Tokenizer{src: src, line: 1, col: 1}
}

// Reset rewinds the tokenizer to the start of its input.
func (t *Tokenizer) Reset() {
	t.pos, t.line, t.col, t.err = 0, 1, 1, nil
}

// Next returns the next token and advances the tokenizer. At the end of input
// it returns a TokenEOF token, and keeps doing so on further calls. After an
// error every call returns that same error.
func (t *Tokenizer) Next() (Token, error) {
	if t.err != nil {
		return Token{}, t.err
	}
	tok, err := t.scan()
	if err != nil {
		t.err = err
		return Token{}, err
	}
	return tok, nil
}

// Tokenize runs a Tokenizer over src and collects every token up to, but not
// including, TokenEOF. On error the tokens scanned so far are returned along
// with it.
func Tokenize(src []byte) ([]Token, error) {
	tz := NewTokenizer(src)
	var tokens []Token
	for {
		tok, err := tz.Next()
		if err != nil {
			return tokens, err
		}
		if tok.Kind == TokenEOF {
			return tokens, nil
		}
		tokens = append(tokens, tok)
	}
}

func (t *Tokenizer) currentPos() Position {
	return Position{Line: t.line, Column: t.col, Offset: t.pos}
}

func (t *Tokenizer) atEnd() bool {
	return t.pos >= len(t.src)
}

func (t *Tokenizer) peek() byte {
	if t.atEnd() {
		return 0
	}
	return t.src[t.pos]
}

func (t *Tokenizer) advance() byte {
	ch := t.src[t.pos]
	t.pos++
	if ch == '\n' {
		t.line++
		t.col = 1
	} else {
		t.col++
	}
	return ch
}

// scanUntil consumes bytes up to, but not including, the first byte in stops.
// It reports false if the input ends first.
func (t *Tokenizer) scanUntil(stops string) (string, bool) {
	start := t.pos
	for !t.atEnd() && strings.IndexByte(stops, t.peek()) < 0 {
		t.advance()
	}
	return string(t.src[start:t.pos]), !t.atEnd()
}

func (t *Tokenizer) skipSpaces() {
	for !t.atEnd() && t.peek() == ' ' {
		t.advance()
	}
}

func (t *Tokenizer) scan() (Token, error) {
	if t.atEnd() {
		return Token{Kind: TokenEOF, Pos: t.currentPos()}, nil
	}
	if t.peek() == '<' {
		return t.scanTag()
	}
	return t.scanText(), nil
}

func (t *Tokenizer) scanText() Token {
	pos := t.currentPos()
	start := t.pos
	for !t.atEnd() && t.peek() != '<' {
		t.advance()
	}
	return Token{Kind: TokenText, Text: string(t.src[start:t.pos]), Pos: pos}
}

func (t *Tokenizer) scanTag() (Token, error) {
	pos := t.currentPos()
	t.advance() // consume <

	if t.peek() == '/' {
		t.advance()
		name, ok := t.scanUntil(">")
		if !ok {
			return Token{}, unterminatedTag(pos)
		}
		t.advance() // consume >
		return Token{Kind: TokenEndTag, Tag: ResolveTag(name), Pos: pos}, nil
	}

	name, ok := t.scanUntil(" >")
	if !ok {
		return Token{}, unterminatedTag(pos)
	}
	tok := Token{Kind: TokenStartTag, Tag: ResolveTag(name), Pos: pos}
	if t.advance() == '>' {
		return tok, nil
	}

	attrs, err := t.scanAttributes(pos)
	if err != nil {
		return Token{}, err
	}
	tok.Attrs = attrs
	return tok, nil
}

// scanAttributes reads name="value" pairs up to and including the closing '>'.
func (t *Tokenizer) scanAttributes(tagPos Position) ([]Attribute, error) {
	var attrs []Attribute
	for {
		t.skipSpaces()
		if t.atEnd() {
			return nil, unterminatedTag(tagPos)
		}
		if t.peek() == '>' {
			t.advance()
			return attrs, nil
		}
		attr, err := t.scanAttribute(tagPos)
		if err != nil {
			return nil, err
		}
		attrs = append(attrs, attr)
	}
}

func (t *Tokenizer) scanAttribute(tagPos Position) (Attribute, error) {
	namePos := t.currentPos()
	name, ok := t.scanUntil("=>")
	if !ok {
		return Attribute{}, unterminatedTag(tagPos)
	}
	if t.peek() == '>' {
		return Attribute{}, &MalformedAttributeError{ParseError{
			Message: fmt.Sprintf("attribute %q has no value", name),
			Pos:     namePos,
		}}
	}
	t.advance() // consume =

	if t.atEnd() {
		return Attribute{}, unterminatedTag(tagPos)
	}
	if t.peek() != '"' {
		return Attribute{}, &MalformedAttributeError{ParseError{
			Message: fmt.Sprintf("value of attribute %q must be quoted", name),
			Pos:     t.currentPos(),
		}}
	}
	quotePos := t.currentPos()
	t.advance() // consume opening "

	value, ok := t.scanUntil(`"`)
	if !ok {
		return Attribute{}, &UnterminatedAttributeValueError{ParseError{
			Message: fmt.Sprintf("unterminated value for attribute %q", name),
			Pos:     quotePos,
		}}
	}
	t.advance() // consume closing "
	return ResolveAttribute(name, value), nil
}

func unterminatedTag(pos Position) *UnterminatedTagError {
	return &UnterminatedTagError{ParseError{
		Message: "unterminated tag: missing '>'",
		Pos:     pos,
	}}
}
