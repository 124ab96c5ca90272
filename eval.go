package gocalc

import (
	"fmt"
	"math"

	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("gocalc")

func init() {
	// quiet unless a program installs its own backend level
	logging.SetLevel(logging.WARNING, "gocalc")
}

func internalError(format string, args ...interface{}) error {
	return &Error{
		Kind: ErrInternal,
		Msg:  fmt.Sprintf(format, args...),
	}
}

// floatResult rejects the infinities and NaNs a float operation may produce.
func floatResult(op TokenKind, f float64) (Value, error) {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return Value{}, &Error{
			Kind: ErrRange,
			Msg:  fmt.Sprintf("float overflow in %c", op.Symbol()),
		}
	}
	return FloatValue(f), nil
}

func rangeError(op TokenKind) error {
	return &Error{
		Kind: ErrRange,
		Msg:  fmt.Sprintf("integer overflow in %c", op.Symbol()),
	}
}

// Eval computes the value of a syntax tree. The left operand of a binary
// node is evaluated first, so its error wins over the right one.
func Eval(node Node) (Value, error) {
	switch n := node.(type) {
	case *Number:
		if n == nil {
			return Value{}, internalError("nil number node")
		}
		return IntValue(n.Value), nil
	case *UnaryOp:
		if n == nil {
			return Value{}, internalError("nil unary node")
		}
		v, err := Eval(n.Operand)
		if err != nil {
			return Value{}, err
		}
		return doUnary(n.Op, v)
	case *BinaryOp:
		if n == nil {
			return Value{}, internalError("nil binary node")
		}
		lhs, err := Eval(n.Left)
		if err != nil {
			return Value{}, err
		}
		rhs, err := Eval(n.Right)
		if err != nil {
			return Value{}, err
		}
		return doBinary(n.Op, lhs, rhs)
	}
	return Value{}, internalError("unknown node: %T", node)
}

func doUnary(op TokenKind, v Value) (Value, error) {
	switch op {
	case TokenPlus:
		return v, nil
	case TokenMinus:
		if v.IsFloat() {
			return FloatValue(-v.f), nil
		}
		if v.i == math.MinInt64 {
			return Value{}, rangeError(op)
		}
		return IntValue(-v.i), nil
	}
	return Value{}, internalError("invalid unary operator: %v", op)
}

func doBinary(op TokenKind, lhs, rhs Value) (Value, error) {
	switch op {
	case TokenPlus:
		return doPlus(lhs, rhs)
	case TokenMinus:
		return doMinus(lhs, rhs)
	case TokenMul:
		return doMul(lhs, rhs)
	case TokenDiv:
		return doDiv(lhs, rhs)
	}
	return Value{}, internalError("invalid binary operator: %v", op)
}

func doPlus(lhs, rhs Value) (Value, error) {
	if lhs.IsFloat() || rhs.IsFloat() {
		return floatResult(TokenPlus, lhs.Float() + rhs.Float())
	}
	a, b := lhs.i, rhs.i
	c := a + b
	if (a^c)&(b^c) < 0 {
		return Value{}, rangeError(TokenPlus)
	}
	return IntValue(c), nil
}

func doMinus(lhs, rhs Value) (Value, error) {
	if lhs.IsFloat() || rhs.IsFloat() {
		return floatResult(TokenMinus, lhs.Float() - rhs.Float())
	}
	a, b := lhs.i, rhs.i
	c := a - b
	if (a^b)&(a^c) < 0 {
		return Value{}, rangeError(TokenMinus)
	}
	return IntValue(c), nil
}

func doMul(lhs, rhs Value) (Value, error) {
	if lhs.IsFloat() || rhs.IsFloat() {
		return floatResult(TokenMul, lhs.Float() * rhs.Float())
	}
	a, b := lhs.i, rhs.i
	if a == 0 || b == 0 {
		return IntValue(0), nil
	}
	c := a * b
	if c/b != a || (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return Value{}, rangeError(TokenMul)
	}
	return IntValue(c), nil
}

// doDiv always produces a float quotient, even for exact divisions.
func doDiv(lhs, rhs Value) (Value, error) {
	if rhs.Float() == 0 {
		return Value{}, &Error{Kind: ErrDivisionByZero}
	}
	return floatResult(TokenDiv, lhs.Float() / rhs.Float())
}

// Interpreter evaluates the expression produced by a Parser.
type Interpreter struct {
	parser *Parser
}

func NewInterpreter(p *Parser) *Interpreter {
	return &Interpreter{
		parser: p,
	}
}

func (it *Interpreter) Interpret() (Value, error) {
	node, err := it.parser.Parse()
	if err != nil {
		log.Debugf("parse failed: %v", err)
		return Value{}, err
	}
	log.Debugf("parsed %v", node)
	ret, err := Eval(node)
	if err != nil {
		log.Debugf("eval %v failed: %v", node, err)
		return Value{}, err
	}
	log.Debugf("eval %v = %v", node, ret)
	return ret, nil
}
