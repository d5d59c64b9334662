// Package pipeline wires the external collaborators (lexer, parser) to the
// semantic analysis core through a small chain of Processors
// (Processor.Process(ctx) ctx, folded left to right by a Pipeline).
// Decaf's chain stops at an annotated scope tree plus accumulated
// diagnostics: there is no evaluation or backend stage in this core.
package pipeline

import (
	"github.com/funvibe/decaf/internal/ast"
	"github.com/funvibe/decaf/internal/diagnostics"
	"github.com/funvibe/decaf/internal/parser"
	"github.com/funvibe/decaf/internal/scope"
	"github.com/funvibe/decaf/internal/sema"
)

// Context carries one source file through the pipeline. Each Processor
// reads what it needs off Context and writes its own results back onto it;
// later stages tolerate a nil AstRoot (a failed parse) by becoming no-ops
// rather than panicking.
type Context struct {
	FilePath string
	Source   string

	AstRoot     *ast.Program
	ParseErrors []*parser.Error

	ScopeRoot   *scope.Node
	Diagnostics []*diagnostics.Diagnostic
}

// NewContext seeds a Context for one source file.
func NewContext(filePath, source string) *Context {
	return &Context{FilePath: filePath, Source: source}
}

// Processor is one pipeline stage.
type Processor interface {
	Process(ctx *Context) *Context
}

// Pipeline runs a fixed sequence of Processors over a Context.
type Pipeline struct {
	processors []Processor
}

// New builds a Pipeline from an ordered list of stages.
func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

// Run folds every stage over ctx in order. A stage is never skipped after
// an earlier one fails — parse errors and semantic diagnostics both need to
// reach the driver out of a single Run.
func (p *Pipeline) Run(ctx *Context) *Context {
	for _, proc := range p.processors {
		ctx = proc.Process(ctx)
	}
	return ctx
}

// Standard returns the default two-stage Decaf pipeline: parse, then
// analyze.
func Standard() *Pipeline {
	return New(&ParseProcessor{}, &AnalyzeProcessor{})
}

// ParseProcessor turns Context.Source into an AST, populating ctx.AstRoot.
type ParseProcessor struct{}

func (pp *ParseProcessor) Process(ctx *Context) *Context {
	prog, errs := parser.ParseProgram(ctx.Source)
	ctx.AstRoot = prog
	ctx.ParseErrors = errs
	return ctx
}

// AnalyzeProcessor runs the C4-C8 semantic pipeline over Context.AstRoot.
// A nil AstRoot (a Context no ParseProcessor has filled in; ParseProgram
// itself always returns a Program, even for empty input) leaves
// ScopeRoot/Diagnostics untouched.
type AnalyzeProcessor struct{}

func (ap *AnalyzeProcessor) Process(ctx *Context) *Context {
	if ctx.AstRoot == nil {
		return ctx
	}
	root, diags := sema.Analyze(ctx.AstRoot)
	ctx.ScopeRoot = root
	ctx.Diagnostics = diags
	return ctx
}

// Run is a convenience wrapper around Standard().Run for callers that just
// want one file analyzed end to end.
func Run(filePath, source string) *Context {
	return Standard().Run(NewContext(filePath, source))
}
