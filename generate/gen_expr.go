package generate

import (
	"exprc/ast"
	"exprc/report"

	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/enum"
	"github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"
)

// genExpr generates an expression and returns the `i32` value it computes.
func (g *Generator) genExpr(expr ast.Expr) value.Value {
	switch v := expr.(type) {
	case *ast.Literal:
		return constant.NewInt(types.I32, int64(v.Value))
	case *ast.Negate:
		// -x => 0 - x
		operand := g.genExpr(v.Operand)
		return g.block.NewSub(constant.NewInt(types.I32, 0), operand)
	case *ast.BinaryOp:
		return g.genBinaryOp(v)
	}

	report.ReportICE("module generation is not supported for %T", expr)
	return nil
}

// icmpPreds maps comparison operators to their signed integer predicates.
var icmpPreds = map[ast.OpKind]enum.IPred{
	ast.OpEq: enum.IPredEQ,
	ast.OpNe: enum.IPredNE,
	ast.OpLt: enum.IPredSLT,
	ast.OpLe: enum.IPredSLE,
}

// genBinaryOp generates a binary operator application.
func (g *Generator) genBinaryOp(bo *ast.BinaryOp) value.Value {
	lhs := g.genExpr(bo.Lhs)
	rhs := g.genExpr(bo.Rhs)

	switch bo.Op {
	case ast.OpAdd:
		return g.block.NewAdd(lhs, rhs)
	case ast.OpSub:
		return g.block.NewSub(lhs, rhs)
	case ast.OpMul:
		return g.block.NewMul(lhs, rhs)
	case ast.OpDiv:
		return g.block.NewSDiv(lhs, rhs)
	case ast.OpEq, ast.OpNe, ast.OpLt, ast.OpLe:
		// comparisons yield an `i1` which is widened to `i32`: booleans are
		// never signed so this is always a zero extension.
		cmp := g.block.NewICmp(icmpPreds[bo.Op], lhs, rhs)
		return g.block.NewZExt(cmp, types.I32)
	}

	report.ReportICE("module generation is not supported for operator %s", bo.Op)
	return nil
}
