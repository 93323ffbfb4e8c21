package syntax

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"

	"exprc/report"
)

// Lexer is responsible for tokenizing an expression.  Lexers are single-pass:
// once a token has been produced it cannot be produced again.
type Lexer struct {
	src *bufio.Reader

	// buff holds the runes of the token being lexed.
	buff strings.Builder

	// line and col are the current position; startLine and startCol are the
	// position of the first rune of the token being lexed.
	line, col           int
	startLine, startCol int
}

// NewLexer creates a new lexer for the given source.
func NewLexer(src *bufio.Reader) *Lexer {
	return &Lexer{src: src}
}

// Scan tokenizes the whole input string.  The returned slice does not include
// the EOF token.
func Scan(input string) ([]*Token, error) {
	l := NewLexer(bufio.NewReader(strings.NewReader(input)))

	var toks []*Token
	for {
		tok, err := l.NextToken()
		if err != nil {
			return nil, err
		}

		if tok.Kind == TOK_EOF {
			return toks, nil
		}

		toks = append(toks, tok)
	}
}

// NextToken returns the next token of the input.  Once the input is exhausted,
// every call returns an EOF token.
func (l *Lexer) NextToken() (*Token, error) {
	for {
		c, err := l.peek()
		if err != nil {
			return nil, err
		}

		switch {
		case c == -1:
			l.mark()
			return l.makeToken(TOK_EOF), nil
		case unicode.IsSpace(c):
			if err := l.skip(); err != nil {
				return nil, err
			}
		case isDecimalDigit(c):
			return l.lexIntLit()
		case isPunct(c):
			return l.lexSymbol(c)
		default:
			l.mark()
			if err := l.skip(); err != nil {
				return nil, err
			}

			return nil, report.Raise(report.UnexpectedCharacter, l.getSpan(), "unexpected character: %q", c)
		}
	}
}

// -----------------------------------------------------------------------------

// symbolPatterns maps operator symbols to their token kinds.  Any other ASCII
// punctuation lexes as TOK_PUNCT.
var symbolPatterns = map[string]int{
	"+": TOK_PLUS,
	"-": TOK_MINUS,
	"*": TOK_STAR,
	"/": TOK_DIV,

	"==": TOK_EQ,
	"!=": TOK_NEQ,
	"<":  TOK_LT,
	"<=": TOK_LTEQ,
	">":  TOK_GT,
	">=": TOK_GTEQ,

	"(": TOK_LPAREN,
	")": TOK_RPAREN,
}

// lexSymbol lexes an operator or punctuation symbol beginning with first.
// Symbols are at most two runes long, so a single rune of lookahead decides
// the token.
func (l *Lexer) lexSymbol(first rune) (*Token, error) {
	l.mark()
	if err := l.eat(); err != nil {
		return nil, err
	}

	next, err := l.peek()
	if err != nil {
		return nil, err
	}

	if next != -1 {
		if kind, ok := symbolPatterns[string([]rune{first, next})]; ok {
			if err := l.eat(); err != nil {
				return nil, err
			}

			return l.makeToken(kind), nil
		}
	}

	if kind, ok := symbolPatterns[string(first)]; ok {
		return l.makeToken(kind), nil
	}

	return l.makeToken(TOK_PUNCT), nil
}

// -----------------------------------------------------------------------------

// lexIntLit lexes a run of decimal digits as an integer literal.  The value
// must fit in a signed 32-bit integer: it is never wrapped.
func (l *Lexer) lexIntLit() (*Token, error) {
	l.mark()

	for {
		c, err := l.peek()
		if err != nil {
			return nil, err
		} else if !isDecimalDigit(c) {
			break
		}

		if err := l.eat(); err != nil {
			return nil, err
		}
	}

	tok := l.makeToken(TOK_NUMLIT)

	x, err := strconv.ParseInt(tok.Value, 10, 32)
	if errors.Is(err, strconv.ErrRange) {
		return nil, report.Raise(report.NumericOverflow, tok.Span, "integer literal %s does not fit in 32 bits", tok.Value)
	} else if err != nil {
		return nil, err
	}

	tok.IntValue = int32(x)
	return tok, nil
}

// -----------------------------------------------------------------------------

// mark records the current position as the start of the next token.
func (l *Lexer) mark() {
	l.startLine, l.startCol = l.line, l.col
}

// makeToken builds a token of the given kind from the buffered runes and
// clears the buffer.
func (l *Lexer) makeToken(kind int) *Token {
	tok := &Token{Kind: kind, Value: l.buff.String(), Span: l.getSpan()}
	l.buff.Reset()
	return tok
}

// getSpan returns the span from the marked position to the current one.
func (l *Lexer) getSpan() *report.TextSpan {
	return &report.TextSpan{
		StartLine: l.startLine,
		StartCol:  l.startCol,
		EndLine:   l.line,
		EndCol:    l.col,
	}
}

// -----------------------------------------------------------------------------

// eat consumes the next rune into the token buffer.
func (l *Lexer) eat() error {
	c, err := l.read()
	if c != -1 {
		l.buff.WriteRune(c)
	}

	return err
}

// skip consumes the next rune without buffering it.
func (l *Lexer) skip() error {
	_, err := l.read()
	return err
}

// read consumes the next rune and advances the position.  It returns -1 at
// the end of input.
func (l *Lexer) read() (rune, error) {
	c, _, err := l.src.ReadRune()
	if err == io.EOF {
		return -1, nil
	} else if err != nil {
		return 0, err
	}

	switch c {
	case '\n':
		l.line++
		l.col = 0
	case '\t':
		l.col += 4
	default:
		l.col++
	}

	return c, nil
}

// peek returns the next rune without consuming it.  It returns -1 at the end
// of input.
func (l *Lexer) peek() (rune, error) {
	c, _, err := l.src.ReadRune()
	if err == io.EOF {
		return -1, nil
	} else if err != nil {
		return 0, err
	}

	return c, l.src.UnreadRune()
}

// -----------------------------------------------------------------------------

// isDecimalDigit returns whether c is an ASCII decimal digit.
func isDecimalDigit(c rune) bool {
	return '0' <= c && c <= '9'
}

// isPunct returns whether c is an ASCII punctuation character.
func isPunct(c rune) bool {
	return '!' <= c && c <= '/' || ':' <= c && c <= '@' || '[' <= c && c <= '`' || '{' <= c && c <= '~'
}
