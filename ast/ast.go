// Package ast defines the expression tree produced by the parser and consumed
// by the code generators.
package ast

import "exprc/report"

// Expr is the interface for all expression nodes.  The set of expression nodes
// is closed: only the types in this package implement it.
type Expr interface {
	// Span returns the text span of the expression.
	Span() *report.TextSpan

	// String returns the expression in a compact prefix form: eg. `(+ 1 2)`.
	String() string

	// expr marks the node as an expression node.
	expr()
}

// ExprBase is the utility base struct for all expression nodes.
type ExprBase struct {
	// The span over which the expression occurs.
	span *report.TextSpan
}

// NewExprBaseOn creates a new expression base with the given span.
func NewExprBaseOn(span *report.TextSpan) ExprBase {
	return ExprBase{span: span}
}

// NewExprBaseOver creates a new expression base spanning over two spans.
func NewExprBaseOver(start, end *report.TextSpan) ExprBase {
	return ExprBase{span: report.NewSpanOver(start, end)}
}

func (eb ExprBase) Span() *report.TextSpan {
	return eb.span
}

func (ExprBase) expr() {}
