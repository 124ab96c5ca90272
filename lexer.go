package gocalc

import (
	"strconv"
	"unicode"
	"unicode/utf8"
)

// Lexer splits an expression into tokens on demand.
type Lexer struct {
	text string
	pos  int
}

func NewLexer(text string) *Lexer {
	return &Lexer{
		text: text,
	}
}

func (l *Lexer) Pos() int {
	return l.pos
}

func (l *Lexer) peekRune() (rune, int) {
	if l.pos >= len(l.text) {
		return utf8.RuneError, 0
	}
	return utf8.DecodeRuneInString(l.text[l.pos:])
}

func (l *Lexer) SkipWhite() {
	for l.pos < len(l.text) {
		r, n := l.peekRune()
		if !unicode.IsSpace(r) {
			return
		}
		l.pos += n
	}
}

func isDigit(b byte) bool {
	return '0' <= b && b <= '9'
}

func (l *Lexer) scanInteger() (Token, error) {
	start := l.pos
	for l.pos < len(l.text) && isDigit(l.text[l.pos]) {
		l.pos++
	}
	s := l.text[start:l.pos]
	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return Token{}, &Error{
			Kind: ErrRange,
			Pos:  start,
			Msg:  "integer literal out of range: " + s,
		}
	}
	return Token{
		Kind:  TokenInteger,
		Value: i,
		Pos:   start,
	}, nil
}

// Next returns the next token and advances past it. Once the input is
// exhausted every call returns a TokenEOF.
func (l *Lexer) Next() (Token, error) {
	l.SkipWhite()
	if l.pos >= len(l.text) {
		return Token{
			Kind: TokenEOF,
			Pos:  len(l.text),
		}, nil
	}

	if isDigit(l.text[l.pos]) {
		return l.scanInteger()
	}

	r, n := l.peekRune()
	if kind, ok := symbolKinds[r]; ok {
		tok := Token{
			Kind: kind,
			Pos:  l.pos,
		}
		l.pos += n
		return tok, nil
	}
	return Token{}, &Error{
		Kind: ErrInvalidCharacter,
		Pos:  l.pos,
		Char: r,
	}
}
