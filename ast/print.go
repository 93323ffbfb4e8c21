package ast

import (
	"fmt"
	"io"
	"strings"
)

// Print writes an indented dump of the expression tree to w: one node per
// line, children indented beneath their parent.
func Print(w io.Writer, expr Expr) error {
	return printNode(w, expr, 0)
}

// printNode prints a single node at the given depth.
func printNode(w io.Writer, expr Expr, depth int) error {
	indent := strings.Repeat("  ", depth)

	switch v := expr.(type) {
	case *Literal:
		_, err := fmt.Fprintf(w, "%sLiteral %d @ %s\n", indent, v.Value, v.Span())
		return err
	case *Negate:
		if _, err := fmt.Fprintf(w, "%sNegate @ %s\n", indent, v.Span()); err != nil {
			return err
		}

		return printNode(w, v.Operand, depth+1)
	case *BinaryOp:
		if _, err := fmt.Fprintf(w, "%sBinaryOp %s @ %s\n", indent, v.Op, v.Span()); err != nil {
			return err
		}

		if err := printNode(w, v.Lhs, depth+1); err != nil {
			return err
		}

		return printNode(w, v.Rhs, depth+1)
	}

	return fmt.Errorf("unknown expression node: %T", expr)
}
