package ast

import (
	"fmt"
	"strconv"
)

// Literal represents an integer literal.
type Literal struct {
	ExprBase

	Value int32
}

func (l *Literal) String() string {
	return strconv.FormatInt(int64(l.Value), 10)
}

// Negate represents an arithmetic negation.
type Negate struct {
	ExprBase

	Operand Expr
}

func (n *Negate) String() string {
	return fmt.Sprintf("(neg %s)", n.Operand)
}

// -----------------------------------------------------------------------------

// OpKind is the kind of a binary operator.
type OpKind int

// Enumeration of binary operator kinds.  There are no greater-than kinds: the
// parser rewrites `a > b` as `b < a` and `a >= b` as `b <= a`.
const (
	OpAdd OpKind = iota
	OpSub
	OpMul
	OpDiv
	OpEq
	OpNe
	OpLt
	OpLe
)

// opSymbols maps operator kinds to their source symbols.
var opSymbols = [...]string{
	OpAdd: "+",
	OpSub: "-",
	OpMul: "*",
	OpDiv: "/",
	OpEq:  "==",
	OpNe:  "!=",
	OpLt:  "<",
	OpLe:  "<=",
}

func (k OpKind) String() string {
	if 0 <= k && int(k) < len(opSymbols) {
		return opSymbols[k]
	}

	return fmt.Sprintf("OpKind(%d)", int(k))
}

// IsComparison returns whether the operator yields a 0/1 truth value.
func (k OpKind) IsComparison() bool {
	return k >= OpEq
}

// BinaryOp represents a binary operator application.
type BinaryOp struct {
	ExprBase

	Op OpKind

	Lhs, Rhs Expr
}

func (bo *BinaryOp) String() string {
	return fmt.Sprintf("(%s %s %s)", bo.Op, bo.Lhs, bo.Rhs)
}
