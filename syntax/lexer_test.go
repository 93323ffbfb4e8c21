package syntax

import (
	"bufio"
	"strings"
	"testing"

	"exprc/report"
)

func TestScanTokens(t *testing.T) {
	type tok struct {
		kind  int
		value string
	}

	tests := []struct {
		input string
		want  []tok
	}{
		{"1+2", []tok{{TOK_NUMLIT, "1"}, {TOK_PLUS, "+"}, {TOK_NUMLIT, "2"}}},
		{"(1 + 2) * 3", []tok{
			{TOK_LPAREN, "("}, {TOK_NUMLIT, "1"}, {TOK_PLUS, "+"}, {TOK_NUMLIT, "2"},
			{TOK_RPAREN, ")"}, {TOK_STAR, "*"}, {TOK_NUMLIT, "3"},
		}},
		{"1==2!=3", []tok{
			{TOK_NUMLIT, "1"}, {TOK_EQ, "=="}, {TOK_NUMLIT, "2"}, {TOK_NEQ, "!="}, {TOK_NUMLIT, "3"},
		}},
		{"1<=2>=3<4>5", []tok{
			{TOK_NUMLIT, "1"}, {TOK_LTEQ, "<="}, {TOK_NUMLIT, "2"}, {TOK_GTEQ, ">="},
			{TOK_NUMLIT, "3"}, {TOK_LT, "<"}, {TOK_NUMLIT, "4"}, {TOK_GT, ">"}, {TOK_NUMLIT, "5"},
		}},
		{"10 / -2", []tok{{TOK_NUMLIT, "10"}, {TOK_DIV, "/"}, {TOK_MINUS, "-"}, {TOK_NUMLIT, "2"}}},
		{"10*2-3/-1", []tok{
			{TOK_NUMLIT, "10"}, {TOK_STAR, "*"}, {TOK_NUMLIT, "2"}, {TOK_MINUS, "-"},
			{TOK_NUMLIT, "3"}, {TOK_DIV, "/"}, {TOK_MINUS, "-"}, {TOK_NUMLIT, "1"},
		}},
		{"= = !", []tok{{TOK_PUNCT, "="}, {TOK_PUNCT, "="}, {TOK_PUNCT, "!"}}},
		{"1 $ 2", []tok{{TOK_NUMLIT, "1"}, {TOK_PUNCT, "$"}, {TOK_NUMLIT, "2"}}},
		{"<<=", []tok{{TOK_LT, "<"}, {TOK_LTEQ, "<="}}},
		{" \t\n12\r\n", []tok{{TOK_NUMLIT, "12"}}},
		{"", nil},
		{"   ", nil},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			toks, err := Scan(test.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if len(toks) != len(test.want) {
				t.Fatalf("expected %d tokens, got %d", len(test.want), len(toks))
			}

			for i, want := range test.want {
				if toks[i].Kind != want.kind || toks[i].Value != want.value {
					t.Errorf("token %d: expected (%d, %q), got (%d, %q)", i, want.kind, want.value, toks[i].Kind, toks[i].Value)
				}
			}
		})
	}
}

func TestScanTokenCounts(t *testing.T) {
	for input, want := range map[string]int{
		"1+2":       3,
		"2+2":       3,
		"2+2 / 3":   5,
		"(1+2)*3":   7,
		"1 == 2":    3,
		"10*2-3/-1": 8,
		"5-3-1":     5,
	} {
		toks, err := Scan(input)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", input, err)
		}

		if len(toks) != want {
			t.Errorf("%s: expected %d tokens, got %d", input, want, len(toks))
		}
	}
}

func TestScanLiteralValues(t *testing.T) {
	tests := []struct {
		input string
		want  int32
	}{
		{"0", 0},
		{"007", 7},
		{"42", 42},
		{"2147483647", 2147483647},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			toks, err := Scan(test.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if len(toks) != 1 || toks[0].Kind != TOK_NUMLIT {
				t.Fatalf("expected a single literal, got %v", toks)
			}

			if toks[0].IntValue != test.want {
				t.Errorf("expected %d, got %d", test.want, toks[0].IntValue)
			}
		})
	}
}

func TestScanSpans(t *testing.T) {
	toks, err := Scan("12 <= 3\n(4)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []report.TextSpan{
		{StartLine: 0, StartCol: 0, EndLine: 0, EndCol: 2},
		{StartLine: 0, StartCol: 3, EndLine: 0, EndCol: 5},
		{StartLine: 0, StartCol: 6, EndLine: 0, EndCol: 7},
		{StartLine: 1, StartCol: 0, EndLine: 1, EndCol: 1},
		{StartLine: 1, StartCol: 1, EndLine: 1, EndCol: 2},
		{StartLine: 1, StartCol: 2, EndLine: 1, EndCol: 3},
	}

	if len(toks) != len(want) {
		t.Fatalf("expected %d tokens, got %d", len(want), len(toks))
	}

	for i, span := range want {
		if *toks[i].Span != span {
			t.Errorf("token %d (%q): expected span %+v, got %+v", i, toks[i].Value, span, *toks[i].Span)
		}
	}
}

func TestScanErrors(t *testing.T) {
	tests := []struct {
		input string
		kind  int
		span  report.TextSpan
	}{
		{"2147483648", report.NumericOverflow, report.TextSpan{EndCol: 10}},
		{"1 + 99999999999", report.NumericOverflow, report.TextSpan{StartCol: 4, EndCol: 15}},
		{"1 a", report.UnexpectedCharacter, report.TextSpan{StartCol: 2, EndCol: 3}},
		{"1 é", report.UnexpectedCharacter, report.TextSpan{StartCol: 2, EndCol: 3}},
		{"x", report.UnexpectedCharacter, report.TextSpan{EndCol: 1}},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			_, err := Scan(test.input)
			if !report.IsKind(err, test.kind) {
				t.Fatalf("expected %s, got %v", report.KindName(test.kind), err)
			}

			cerr := err.(*report.CompileError)
			if *cerr.Span != test.span {
				t.Errorf("expected span %+v, got %+v", test.span, *cerr.Span)
			}
		})
	}
}

func TestLexerEOF(t *testing.T) {
	l := NewLexer(bufio.NewReader(strings.NewReader("7")))

	tok, err := l.NextToken()
	if err != nil || tok.Kind != TOK_NUMLIT {
		t.Fatalf("expected literal, got %v (%v)", tok, err)
	}

	// the lexer keeps producing EOF once the input is exhausted
	for i := 0; i < 2; i++ {
		tok, err = l.NextToken()
		if err != nil || tok.Kind != TOK_EOF {
			t.Fatalf("expected EOF, got %v (%v)", tok, err)
		}
	}
}

func FuzzScan(f *testing.F) {
	for _, seed := range []string{"1+2", "(1 + 2) * 3", "1 <= -2 != 3", "1 $ 2", "é", "99999999999"} {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, input string) {
		toks, err := Scan(input)
		if err != nil {
			if !report.IsKind(err, report.UnexpectedCharacter) && !report.IsKind(err, report.NumericOverflow) {
				t.Fatalf("unexpected error kind: %v", err)
			}

			return
		}

		// every non-space character belongs to exactly one token
		var sb strings.Builder
		for _, tok := range toks {
			if tok.Value == "" {
				t.Fatalf("empty token of kind %d", tok.Kind)
			}

			sb.WriteString(tok.Value)
		}

		if want := strings.Join(strings.Fields(input), ""); sb.String() != want {
			t.Fatalf("tokens %q do not cover input %q", sb.String(), want)
		}
	})
}
