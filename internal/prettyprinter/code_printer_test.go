package prettyprinter_test

import (
	"testing"

	"github.com/nanolang/nano/internal/lexer"
	"github.com/nanolang/nano/internal/parser"
	"github.com/nanolang/nano/internal/pipeline"
	"github.com/nanolang/nano/internal/prettyprinter"
)

func parse(t *testing.T, input string) *pipeline.PipelineContext {
	t.Helper()
	ctx := &pipeline.PipelineContext{SourceCode: input}
	ctx = pipeline.New(&lexer.LexerProcessor{}, &parser.ParserProcessor{}).Run(ctx)
	if ctx.HasErrors() {
		t.Fatalf("parse errors for %q: %v", input, ctx.Errors[0])
	}
	return ctx
}

func TestPrint(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"42", "42"},
		{"true", "true"},
		{"[]", "[]"},
		{"x", "x"},
		{"1 + 2 * 3", "1 + 2 * 3"},
		{"(1 + 2) * 3", "(1 + 2) * 3"},
		{"1 :: 2 :: []", "1 :: 2 :: []"},
		{"(1 :: []) == []", "1 :: [] == []"},
		{"a == b && c == d", "a == b && c == d"},
		{"if x < 2 { 1 } else { 2 }", "if x < 2 { 1 } else { 2 }"},
		{"let x = 5 in x + 1", "let x = 5 in x + 1"},
		{`\x -> x + x`, `\x -> x + x`},
		{`(\x -> x + x)(3)`, `(\x -> x + x)(3)`},
		{"f(x)(y)", "f(x)(y)"},
		{"head(1 :: [])", "head(1 :: [])"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := prettyprinter.Print(parse(t, tt.input).AstRoot)
			if got != tt.want {
				t.Errorf("Print = %q, want %q", got, tt.want)
			}
		})
	}
}

// Printed output must parse back to an identical rendering: printing is
// stable under one round trip.
func TestPrintRoundTrip(t *testing.T) {
	inputs := []string{
		"1 + 2 * 3 - 4",
		"(1 + 2) * (4 + 5)",
		"1 :: (2 :: []) :: []",
		"let fact = \\n -> if n == 0 { 1 } else { n * fact(n - 1) } in fact(10)",
		"(\\f -> f(1))(\\x -> x)",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			first := prettyprinter.Print(parse(t, input).AstRoot)
			second := prettyprinter.Print(parse(t, first).AstRoot)
			if first != second {
				t.Errorf("round trip diverged:\n first: %s\nsecond: %s", first, second)
			}
		})
	}
}
