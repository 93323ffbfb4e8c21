package syntax

import "exprc/report"

// Token represents a single lexical token.
type Token struct {
	// The kind of the token.  This must be one of the enumerated token kinds.
	Kind int

	// The string value of the token: the exact source text it was lexed from.
	Value string

	// The integer value of the token.  This is only meaningful for numeric
	// literals.
	IntValue int32

	// The text span over which the token exists.
	Span *report.TextSpan
}

// Enumeration of token kinds.
const (
	TOK_PLUS = iota
	TOK_MINUS
	TOK_STAR
	TOK_DIV

	TOK_EQ
	TOK_NEQ
	TOK_LT
	TOK_GT
	TOK_LTEQ
	TOK_GTEQ

	TOK_LPAREN
	TOK_RPAREN

	// TOK_PUNCT is any other ASCII punctuation character.  No grammar rule
	// accepts it, but it is still a valid token.
	TOK_PUNCT

	TOK_NUMLIT

	TOK_EOF
)
