package gocalc

import (
	"fmt"
)

// Node is a syntax tree node. The set of implementations is closed:
// *BinaryOp, *UnaryOp and *Number.
type Node interface {
	fmt.Stringer
	node()
}

type BinaryOp struct {
	Left  Node
	Op    TokenKind
	Right Node
}

type UnaryOp struct {
	Op      TokenKind
	Operand Node
}

type Number struct {
	Value int64
}

func (*BinaryOp) node() {}
func (*UnaryOp) node()  {}
func (*Number) node()   {}

func (n *BinaryOp) String() string {
	return fmt.Sprintf("(%c %v %v)", n.Op.Symbol(), n.Left, n.Right)
}

func (n *UnaryOp) String() string {
	return fmt.Sprintf("(%c %v)", n.Op.Symbol(), n.Operand)
}

func (n *Number) String() string {
	return fmt.Sprint(n.Value)
}
