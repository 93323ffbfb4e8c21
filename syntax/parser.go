package syntax

import (
	"exprc/ast"
	"exprc/report"
)

// NOTE: All parsing functions (that are not utility/API functions) are
// commented with the EBNF notation of the grammar they parse.

// Parser is the parser for an expression.  It acts as a state machine that
// moves over the token sequence token by token and decides what to parse based
// on the token it is currently positioned over and its context (implicit from
// the callstack of parsing functions): it is a recursive descent parser.  All
// parsing functions assume that they begin with the parser centered on the
// first token of their production and must consume all tokens (including the
// last) of their production, leaving the parser on the next token.  Parsers
// are created once per token sequence.
type Parser struct {
	// toks is the token sequence being parsed.
	toks []*Token

	// ndx is the index of the token after the current token.
	ndx int

	// tok is the current token the parser is positioned on.
	tok *Token

	// eof is the token the parser moves onto once the sequence is exhausted.
	eof *Token
}

// NewParser creates a new parser for the given token sequence.  The sequence
// must not contain an EOF token: the parser supplies its own.
func NewParser(toks []*Token) *Parser {
	eofSpan := &report.TextSpan{EndCol: 1}
	if len(toks) > 0 {
		last := toks[len(toks)-1].Span
		eofSpan = &report.TextSpan{
			StartLine: last.EndLine,
			StartCol:  last.EndCol,
			EndLine:   last.EndLine,
			EndCol:    last.EndCol + 1,
		}
	}

	return &Parser{
		toks: toks,
		eof:  &Token{Kind: TOK_EOF, Span: eofSpan},
	}
}

// Parse parses a token sequence into an expression tree.
func Parse(toks []*Token) (ast.Expr, error) {
	return NewParser(toks).Parse()
}

// ParseString scans and parses an input string.
func ParseString(input string) (ast.Expr, error) {
	toks, err := Scan(input)
	if err != nil {
		return nil, err
	}

	return Parse(toks)
}

// Parse runs the parser.  Every token must belong to the expression.
func (p *Parser) Parse() (expr ast.Expr, err error) {
	defer report.CatchErrors(&err)

	// move the parser onto the first token
	p.next()

	root := p.parseExpr()

	if !p.has(TOK_EOF) {
		p.error(p.tok, "extra token: `%s`", p.tok.Value)
	}

	return root, nil
}

// -----------------------------------------------------------------------------

// next moves the parser forward one token.
func (p *Parser) next() {
	if p.ndx < len(p.toks) {
		p.tok = p.toks[p.ndx]
		p.ndx++
	} else {
		p.tok = p.eof
	}
}

// has returns true if the parser is on a token of a given kind.
func (p *Parser) has(kind int) bool {
	return p.tok.Kind == kind
}

// hasOneOf returns if the parser's current token kind is one of given kinds.
func (p *Parser) hasOneOf(kinds ...int) bool {
	for _, kind := range kinds {
		if p.tok.Kind == kind {
			return true
		}
	}

	return false
}

// want asserts that the parser is on a token of the given kind, moves the
// parser forward, and returns the asserted token.  The token is rejected if it
// does not match.
func (p *Parser) want(kind int) *Token {
	if !p.has(kind) {
		p.reject()
	}

	tok := p.tok
	p.next()
	return tok
}

// -----------------------------------------------------------------------------

// reject reports an unexpected token error on the current token.
func (p *Parser) reject() {
	if p.has(TOK_EOF) {
		p.error(p.tok, "unexpected end of input")
	}

	p.error(p.tok, "unexpected token: `%s`", p.tok.Value)
}

// error reports a syntax error on the given token.  This function does not
// return: it panics with the error which is caught at the top of the parser.
func (p *Parser) error(tok *Token, msg string, args ...interface{}) {
	panic(report.Raise(report.SyntaxError, tok.Span, msg, args...))
}
