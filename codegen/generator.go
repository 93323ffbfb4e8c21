// Package codegen lowers expression trees to textual x86-64 assembly (AT&T
// syntax).  The generated code models a two-register machine: `%eax` is the
// accumulator and `%edi` holds the right operand of a binary operation.  Left
// operands are preserved across the evaluation of right subtrees on the
// machine stack.
package codegen

import (
	"fmt"
	"strings"

	"exprc/ast"
	"exprc/common"
	"exprc/report"
)

// Options configures the textual generator.
type Options struct {
	// Entry is the name of the global entry point symbol.  Defaults to `main`.
	Entry string
}

// Generator is responsible for converting an expression tree into assembly
// text.  It tracks the depth of the simulated operand stack so that it can
// verify every push is matched by a pop.
type Generator struct {
	opts Options

	// out is the buffer the assembly is written into.
	out strings.Builder

	// depth is the current number of values pushed onto the operand stack.
	depth int

	// maxDepth is the largest value depth has taken.
	maxDepth int
}

// NewGenerator creates a new textual generator.
func NewGenerator(opts Options) *Generator {
	if opts.Entry == "" {
		opts.Entry = common.DefaultEntryName
	}

	return &Generator{opts: opts}
}

// Generate converts an expression tree into a complete assembly program.
func Generate(expr ast.Expr, opts Options) (string, error) {
	return NewGenerator(opts).Generate(expr)
}

// Generate converts an expression tree into a complete assembly program: the
// entry point declaration and label, the body of the expression, and the
// return.  The only possible error is an internal invariant violation.
func (g *Generator) Generate(expr ast.Expr) (asm string, err error) {
	defer report.CatchErrors(&err)

	g.out.Reset()
	g.depth = 0
	g.maxDepth = 0

	g.line("  .globl %s", g.opts.Entry)
	g.line("%s:", g.opts.Entry)

	g.genExpr(expr)

	g.line("  ret")

	if g.depth != 0 {
		return "", report.Raise(
			report.InternalInvariantViolation,
			expr.Span(),
			"operand stack depth is %d after generation, expected 0",
			g.depth,
		)
	}

	return g.out.String(), nil
}

// Depth returns the current depth of the simulated operand stack.
func (g *Generator) Depth() int {
	return g.depth
}

// MaxDepth returns the deepest the simulated operand stack has been during the
// last generation.
func (g *Generator) MaxDepth() int {
	return g.maxDepth
}

// -----------------------------------------------------------------------------

// line writes a single line of assembly.
func (g *Generator) line(format string, args ...interface{}) {
	fmt.Fprintf(&g.out, format+"\n", args...)
}

// push pushes the accumulator onto the operand stack.
func (g *Generator) push() {
	g.line("  push %%rax")
	g.depth++

	if g.depth > g.maxDepth {
		g.maxDepth = g.depth
	}
}

// pop pops the top of the operand stack into the given 64-bit register.
func (g *Generator) pop(reg string) {
	g.line("  pop %s", reg)
	g.depth--
}
