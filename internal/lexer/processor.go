package lexer

import (
	"github.com/nanolang/nano/internal/diagnostics"
	"github.com/nanolang/nano/internal/pipeline"
	"github.com/nanolang/nano/internal/token"
)

type LexerProcessor struct{}

func (lp *LexerProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	l := New(ctx.SourceCode)
	ctx.Tokens = l.Tokens()

	for _, tok := range ctx.Tokens {
		if tok.Type == token.ILLEGAL {
			err := diagnostics.NewError(diagnostics.ErrL001, tok, "illegal character %q", tok.Lexeme)
			err.File = ctx.FilePath
			ctx.Errors = append(ctx.Errors, err)
		}
	}

	return ctx
}
