// Package gocalc evaluates integer arithmetic expressions such as
// "2 + 3 * (4 - -1)". Text is split into tokens by a Lexer, a Parser builds
// a syntax tree from them, and Eval walks the tree to a Value.
//
// Each call works on its own Lexer, Parser and tree, so expressions may be
// evaluated from several goroutines at once. Very deep nesting is bounded
// only by the goroutine stack.
package gocalc

type options struct {
	lenient bool
}

type Option func(*options)

// WithLenient accepts input that continues after a complete expression and
// evaluates only that expression.
func WithLenient() Option {
	return func(o *options) {
		o.lenient = true
	}
}

func newParser(text string, opts []Option) (*Parser, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	p, err := NewParser(NewLexer(text))
	if err != nil {
		return nil, err
	}
	if o.lenient {
		p.Lenient()
	}
	return p, nil
}

// Parse returns the syntax tree of text.
func Parse(text string, opts ...Option) (Node, error) {
	p, err := newParser(text, opts)
	if err != nil {
		return nil, err
	}
	return p.Parse()
}

// Evaluate runs the whole pipeline on text.
func Evaluate(text string, opts ...Option) (Value, error) {
	p, err := newParser(text, opts)
	if err != nil {
		return Value{}, err
	}
	return NewInterpreter(p).Interpret()
}
