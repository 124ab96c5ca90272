package gocalc

// Parser builds a syntax tree from the tokens of a Lexer using recursive
// descent. Precedence from low to high: additive, multiplicative, unary.
type Parser struct {
	lexer   *Lexer
	curr    Token
	lenient bool
}

// NewParser reads the first look-ahead token from lx. A tokenizer error on
// that first token is returned here.
func NewParser(lx *Lexer) (*Parser, error) {
	p := &Parser{
		lexer: lx,
	}
	tok, err := lx.Next()
	if err != nil {
		return nil, err
	}
	p.curr = tok
	return p, nil
}

// Lenient makes Parse stop after the first complete expression and ignore
// whatever follows it.
func (p *Parser) Lenient() *Parser {
	p.lenient = true
	return p
}

func (p *Parser) syntaxError(expected string) error {
	return &Error{
		Kind:     ErrSyntax,
		Pos:      p.curr.Pos,
		Expected: expected,
		Got:      p.curr.Kind.String(),
	}
}

func (p *Parser) eat(kind TokenKind) error {
	if p.curr.Kind != kind {
		return p.syntaxError(kind.String())
	}
	tok, err := p.lexer.Next()
	if err != nil {
		return err
	}
	p.curr = tok
	return nil
}

func (p *Parser) Parse() (Node, error) {
	node, err := p.expr()
	if err != nil {
		return nil, err
	}
	if !p.lenient && p.curr.Kind != TokenEOF {
		return nil, p.syntaxError(TokenEOF.String())
	}
	return node, nil
}

func (p *Parser) expr() (Node, error) {
	node, err := p.term()
	if err != nil {
		return nil, err
	}
	for p.curr.Kind == TokenPlus || p.curr.Kind == TokenMinus {
		op := p.curr.Kind
		if err = p.eat(op); err != nil {
			return nil, err
		}
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		node = &BinaryOp{
			Left:  node,
			Op:    op,
			Right: right,
		}
	}
	return node, nil
}

func (p *Parser) term() (Node, error) {
	node, err := p.factor()
	if err != nil {
		return nil, err
	}
	for p.curr.Kind == TokenMul || p.curr.Kind == TokenDiv {
		op := p.curr.Kind
		if err = p.eat(op); err != nil {
			return nil, err
		}
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		node = &BinaryOp{
			Left:  node,
			Op:    op,
			Right: right,
		}
	}
	return node, nil
}

func (p *Parser) factor() (Node, error) {
	tok := p.curr
	switch tok.Kind {
	case TokenPlus, TokenMinus:
		if err := p.eat(tok.Kind); err != nil {
			return nil, err
		}
		operand, err := p.factor()
		if err != nil {
			return nil, err
		}
		return &UnaryOp{
			Op:      tok.Kind,
			Operand: operand,
		}, nil
	case TokenInteger:
		if err := p.eat(TokenInteger); err != nil {
			return nil, err
		}
		return &Number{
			Value: tok.Value,
		}, nil
	case TokenLParen:
		if err := p.eat(TokenLParen); err != nil {
			return nil, err
		}
		node, err := p.expr()
		if err != nil {
			return nil, err
		}
		if err = p.eat(TokenRParen); err != nil {
			return nil, err
		}
		return node, nil
	}
	return nil, p.syntaxError("operand")
}
