package pipeline

import (
	"github.com/nanolang/nano/internal/ast"
	"github.com/nanolang/nano/internal/diagnostics"
	"github.com/nanolang/nano/internal/token"
)

// PipelineContext is threaded through the stages. Each stage fills in
// its output field and appends any errors it found.
type PipelineContext struct {
	FilePath   string
	SourceCode string

	Tokens  []token.Token
	AstRoot ast.Expression

	Errors []*diagnostics.Error
}

// HasErrors reports whether any stage recorded a diagnostic.
func (ctx *PipelineContext) HasErrors() bool {
	return len(ctx.Errors) > 0
}

// Processor is a single stage of source processing.
type Processor interface {
	Process(ctx *PipelineContext) *PipelineContext
}

// Pipeline represents a sequence of processing stages.
type Pipeline struct {
	processors []Processor
}

func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

// Run executes the pipeline.
func (p *Pipeline) Run(initialCtx *PipelineContext) *PipelineContext {
	ctx := initialCtx
	for _, processor := range p.processors {
		ctx = processor.Process(ctx)
		// Continue on errors so later stages can still contribute
		// diagnostics where they are able to.
	}
	return ctx
}
