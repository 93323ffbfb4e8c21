// Package generate lowers expression trees to LLVM IR modules using the
// `llir/llvm` library.  Each module holds a single function of no parameters
// returning `i32`, built from one basic block in SSA form.
package generate

import (
	"exprc/ast"
	"exprc/common"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/types"
)

// Options configures the module generator.
type Options struct {
	// Entry is the name of the generated function.  Defaults to `main`.
	Entry string

	// SourceFilename is recorded as the module's source filename if set.
	SourceFilename string

	// TargetTriple is recorded as the module's target triple if set.
	TargetTriple string
}

// Generator is responsible for converting an expression tree into an LLVM
// module.  Intermediate values are referenced directly by the instructions that
// consume them so no spilling is ever required.
type Generator struct {
	opts Options

	// mod is the LLVM module being generated.
	mod *ir.Module

	// enclosingFunc is the entry function of the module.
	enclosingFunc *ir.Func

	// block stores the current block being generated.
	block *ir.Block
}

// NewGenerator creates a new module generator.
func NewGenerator(opts Options) *Generator {
	if opts.Entry == "" {
		opts.Entry = common.DefaultEntryName
	}

	return &Generator{opts: opts}
}

// Generate converts an expression tree into a new LLVM module.
func Generate(expr ast.Expr, opts Options) *ir.Module {
	return NewGenerator(opts).Generate(expr)
}

// Generate converts an expression tree into a new LLVM module. This generation
// process is assumed to always succeed: any errors here are considered fatal.
func (g *Generator) Generate(expr ast.Expr) *ir.Module {
	g.mod = ir.NewModule()
	g.mod.SourceFilename = g.opts.SourceFilename
	g.mod.TargetTriple = g.opts.TargetTriple

	g.enclosingFunc = g.mod.NewFunc(g.opts.Entry, types.I32)
	g.block = g.enclosingFunc.NewBlock("entry")

	result := g.genExpr(expr)
	g.block.NewRet(result)

	return g.mod
}
