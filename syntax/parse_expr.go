package syntax

import (
	"exprc/ast"
)

// expr = equality
func (p *Parser) parseExpr() ast.Expr {
	return p.parseBinOpExpr(0)
}

// -----------------------------------------------------------------------------

// equality = relational {('==' | '!=') relational}
// relational = additive {('<' | '<=' | '>' | '>=') additive}
// additive = multiplicative {('+' | '-') multiplicative}
// multiplicative = unary {('*' | '/') unary}
func (p *Parser) parseBinOpExpr(prec int) ast.Expr {
	if prec == len(precTable) {
		return p.parseUnaryExpr()
	}

	lhs := p.parseBinOpExpr(prec + 1)

	for p.hasOneOf(precTable[prec]...) {
		op := p.tok
		p.next()

		rhs := p.parseBinOpExpr(prec + 1)
		lhs = buildBinaryOp(op, lhs, rhs)
	}

	return lhs
}

// precTable is the operator precedence table for binary operators. The table is
// ordered lowest to highest precedence.  All levels are left associative.
var precTable = [][]int{
	{TOK_EQ, TOK_NEQ},
	{TOK_LT, TOK_LTEQ, TOK_GT, TOK_GTEQ},
	{TOK_PLUS, TOK_MINUS},
	{TOK_STAR, TOK_DIV},
}

// binOpKinds maps binary operator tokens to the operator kind they build.
var binOpKinds = map[int]ast.OpKind{
	TOK_PLUS:  ast.OpAdd,
	TOK_MINUS: ast.OpSub,
	TOK_STAR:  ast.OpMul,
	TOK_DIV:   ast.OpDiv,
	TOK_EQ:    ast.OpEq,
	TOK_NEQ:   ast.OpNe,
	TOK_LT:    ast.OpLt,
	TOK_LTEQ:  ast.OpLe,
	TOK_GT:    ast.OpLt,
	TOK_GTEQ:  ast.OpLe,
}

// buildBinaryOp builds the binary operator node for op.  `a > b` is built as
// `b < a` and `a >= b` as `b <= a`: the operands are swapped, the comparison is
// never negated.  The span always covers the operands in source order.
func buildBinaryOp(op *Token, lhs, rhs ast.Expr) ast.Expr {
	base := ast.NewExprBaseOver(lhs.Span(), rhs.Span())

	if op.Kind == TOK_GT || op.Kind == TOK_GTEQ {
		lhs, rhs = rhs, lhs
	}

	return &ast.BinaryOp{
		ExprBase: base,
		Op:       binOpKinds[op.Kind],
		Lhs:      lhs,
		Rhs:      rhs,
	}
}

// -----------------------------------------------------------------------------

// unary = ('+' | '-') unary | primary
func (p *Parser) parseUnaryExpr() ast.Expr {
	switch p.tok.Kind {
	case TOK_PLUS:
		// unary plus is a no-op
		p.next()
		return p.parseUnaryExpr()
	case TOK_MINUS:
		startTok := p.tok
		p.next()

		operand := p.parseUnaryExpr()
		return &ast.Negate{
			ExprBase: ast.NewExprBaseOver(startTok.Span, operand.Span()),
			Operand:  operand,
		}
	}

	return p.parsePrimary()
}

// primary = '(' expr ')' | 'NUMLIT'
func (p *Parser) parsePrimary() ast.Expr {
	switch p.tok.Kind {
	case TOK_NUMLIT:
		litTok := p.want(TOK_NUMLIT)
		return &ast.Literal{
			ExprBase: ast.NewExprBaseOn(litTok.Span),
			Value:    litTok.IntValue,
		}
	case TOK_LPAREN:
		p.next()

		expr := p.parseExpr()

		if !p.has(TOK_RPAREN) {
			p.error(p.tok, "expected `)`")
		}

		p.next()
		return expr
	}

	p.error(p.tok, "expected an expression")
	return nil
}
