package gocalc

import (
	"fmt"
)

type TokenKind int

const (
	TokenEOF TokenKind = iota
	TokenInteger
	TokenPlus
	TokenMinus
	TokenMul
	TokenDiv
	TokenLParen
	TokenRParen
)

var tokenNames = [...]string{
	TokenEOF:     "EOF",
	TokenInteger: "INTEGER",
	TokenPlus:    "PLUS",
	TokenMinus:   "MINUS",
	TokenMul:     "MUL",
	TokenDiv:     "DIV",
	TokenLParen:  "LPAREN",
	TokenRParen:  "RPAREN",
}

func (k TokenKind) String() string {
	if k < 0 || int(k) >= len(tokenNames) {
		return fmt.Sprintf("TokenKind(%d)", int(k))
	}
	return tokenNames[k]
}

// Symbol returns the source character of an operator or parenthesis kind,
// or 0 for kinds without one.
func (k TokenKind) Symbol() rune {
	switch k {
	case TokenPlus:
		return '+'
	case TokenMinus:
		return '-'
	case TokenMul:
		return '*'
	case TokenDiv:
		return '/'
	case TokenLParen:
		return '('
	case TokenRParen:
		return ')'
	}
	return 0
}

var symbolKinds = map[rune]TokenKind{
	'+': TokenPlus,
	'-': TokenMinus,
	'*': TokenMul,
	'/': TokenDiv,
	'(': TokenLParen,
	')': TokenRParen,
}

// Token is a classified lexical unit. Value is only meaningful for
// TokenInteger; Pos is the byte offset of the token in the input.
type Token struct {
	Kind  TokenKind
	Value int64
	Pos   int
}

func (t Token) String() string {
	switch t.Kind {
	case TokenInteger:
		return fmt.Sprintf("Token(%v, %d)", t.Kind, t.Value)
	case TokenEOF:
		return fmt.Sprintf("Token(%v)", t.Kind)
	}
	return fmt.Sprintf("Token(%v, %c)", t.Kind, t.Kind.Symbol())
}
