package targets

import (
	"testing"

	"github.com/nanolang/nano/internal/evaluator"
	"github.com/nanolang/nano/internal/lexer"
	"github.com/nanolang/nano/internal/parser"
	"github.com/nanolang/nano/internal/pipeline"
)

// FuzzParser pushes arbitrary input through the lexer and parser and,
// when parsing succeeds, through the evaluator with a small depth
// budget. Nothing on this path may panic; a nil AST must always come
// with at least one diagnostic.
func FuzzParser(f *testing.F) {
	seeds := []string{
		"let fact = \\n -> if n == 0 { 1 } else { n * fact(n - 1) } in fact(10)",
		"(2 + 3) * (4 + 5)",
		"1 :: 3 :: 5 :: []",
		"if true { 1 } else { 2 }",
		"head(tail(1 :: []))",
		"\\x -> x + x",
		"let x = 1 in",
		"((((",
		"1 @ 2",
		"",
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, input string) {
		ctx := &pipeline.PipelineContext{FilePath: "<fuzz>", SourceCode: input}
		ctx = pipeline.New(&lexer.LexerProcessor{}, &parser.ParserProcessor{}).Run(ctx)

		if ctx.AstRoot == nil {
			if len(ctx.Errors) == 0 {
				t.Fatalf("nil AST without diagnostics for %q", input)
			}
			return
		}

		eval := evaluator.New()
		eval.MaxDepth = 200
		result := eval.Eval(ctx.AstRoot, evaluator.NewPreludeEnvironment())
		if result == nil {
			t.Fatalf("evaluator returned nil for %q", input)
		}
		_ = result.Inspect()
	})
}
