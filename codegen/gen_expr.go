package codegen

import (
	"exprc/ast"
	"exprc/report"
)

// genExpr generates an expression.  The value of the expression is left in the
// accumulator.
func (g *Generator) genExpr(expr ast.Expr) {
	switch v := expr.(type) {
	case *ast.Literal:
		g.line("  mov $%d, %%eax", v.Value)
	case *ast.Negate:
		g.genExpr(v.Operand)
		g.line("  neg %%eax")
	case *ast.BinaryOp:
		g.genBinaryOp(v)
	default:
		panic(report.Raise(report.InternalInvariantViolation, nil, "unknown expression node: %T", expr))
	}
}

// setccInstrs maps comparison operators to the instruction which sets `%al`
// from the flags of `cmp`.  The comparisons are signed.
var setccInstrs = map[ast.OpKind]string{
	ast.OpEq: "sete",
	ast.OpNe: "setne",
	ast.OpLt: "setl",
	ast.OpLe: "setle",
}

// genBinaryOp generates a binary operator application.  The right operand is
// evaluated first and saved on the stack while the left operand is evaluated
// into the accumulator; it is then popped into `%edi`.
func (g *Generator) genBinaryOp(bo *ast.BinaryOp) {
	g.genExpr(bo.Rhs)
	g.push()
	g.genExpr(bo.Lhs)
	g.pop("%rdi")

	switch bo.Op {
	case ast.OpAdd:
		g.line("  add %%edi, %%eax")
	case ast.OpSub:
		g.line("  sub %%edi, %%eax")
	case ast.OpMul:
		g.line("  imul %%edi, %%eax")
	case ast.OpDiv:
		// sign extend `%eax` into `%edx:%eax` for the signed division
		g.line("  cdq")
		g.line("  idiv %%edi")
	case ast.OpEq, ast.OpNe, ast.OpLt, ast.OpLe:
		g.line("  cmp %%edi, %%eax")
		g.line("  %s %%al", setccInstrs[bo.Op])
		g.line("  movzb %%al, %%eax")
	default:
		panic(report.Raise(report.InternalInvariantViolation, bo.Span(), "unknown binary operator: %s", bo.Op))
	}
}
