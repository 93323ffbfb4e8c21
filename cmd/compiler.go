package cmd

import (
	"io"
	"os"
	"path/filepath"
	"strconv"

	"exprc/ast"
	"exprc/codegen"
	"exprc/generate"
	"exprc/report"
	"exprc/syntax"
)

// sourceName is the name recorded as the source of generated modules: the
// expression is read from the command line, not a file.
const sourceName = "<expr>"

// Compiler runs the compilation pipeline over a single expression.
type Compiler struct {
	// src is the source text of the expression.
	src string

	config *BuildConfig

	// outputPath is the path of the output file.  If it is empty, output is
	// written to out.
	outputPath string

	// out is the writer used when there is no output path.
	out io.Writer

	// dumpAST indicates whether the parsed tree should be displayed.
	dumpAST bool
}

// NewCompiler creates a new compiler for the expression src.  The outputPath
// may be empty in which case output is written to out.
func NewCompiler(src string, config *BuildConfig, outputPath string, out io.Writer) *Compiler {
	if outputPath != "" && !filepath.IsAbs(outputPath) {
		outputPath = filepath.Join(config.OutputDir, outputPath)
	}

	return &Compiler{
		src:        src,
		config:     config,
		outputPath: outputPath,
		out:        out,
	}
}

// OutputPath returns the resolved output path of the compiler.  This is empty
// if output is not written to a file.
func (c *Compiler) OutputPath() string {
	return c.outputPath
}

// Analyze scans and parses the expression.  It returns false if either fails.
func (c *Compiler) Analyze() (ast.Expr, bool) {
	report.ReportBeginPhase("Scanning")
	toks, err := syntax.Scan(c.src)
	if err != nil {
		report.ReportError(c.src, err)
		return nil, false
	}
	report.ReportEndPhase()

	report.ReportBeginPhase("Parsing")
	expr, err := syntax.Parse(toks)
	if err != nil {
		report.ReportError(c.src, err)
		return nil, false
	}
	report.ReportEndPhase()

	if c.dumpAST {
		// the tree is diagnostic output: it never goes into the artifact
		if err := ast.Print(os.Stderr, expr); err != nil {
			report.ReportStdError("Error", err)
		}
	}

	return expr, true
}

// GenerateAssembly emits the expression as x86-64 assembly.
func (c *Compiler) GenerateAssembly(expr ast.Expr) bool {
	report.ReportBeginPhase("Generating")
	asm, err := codegen.Generate(expr, codegen.Options{Entry: c.config.Entry})
	if err != nil {
		report.ReportError(c.src, err)
		return false
	}
	report.ReportEndPhase()

	return c.writeOutput(asm)
}

// GenerateLLVM emits the expression as an LLVM IR module.
func (c *Compiler) GenerateLLVM(expr ast.Expr) bool {
	report.ReportBeginPhase("Generating")
	mod := generate.Generate(expr, generate.Options{
		Entry:          c.config.Entry,
		SourceFilename: sourceName,
		TargetTriple:   c.config.TargetTriple,
	})
	report.ReportEndPhase()

	return c.writeOutput(mod.String())
}

// Evaluate computes the value of the expression and writes it to the output.
func (c *Compiler) Evaluate(expr ast.Expr) bool {
	report.ReportBeginPhase("Evaluating")
	value, err := ast.Evaluate(expr)
	if err != nil {
		report.ReportStdError("Evaluation Error", err)
		return false
	}
	report.ReportEndPhase()

	return c.writeOutput(strconv.Itoa(int(value)) + "\n")
}

// -----------------------------------------------------------------------------

// writeOutput writes the compilation output to the output file or writer.
func (c *Compiler) writeOutput(content string) bool {
	if c.outputPath == "" {
		if _, err := io.WriteString(c.out, content); err != nil {
			report.ReportStdError("Output Error", err)
			return false
		}

		return true
	}

	if err := os.MkdirAll(filepath.Dir(c.outputPath), 0755); err != nil {
		report.ReportFatal("failed to create output directory: %s", err)
	}

	writeOutputFile(c.outputPath, content)
	return true
}

// writeOutputFile is used to quickly write an output file for the compiler.
func writeOutputFile(fpath, content string) {
	file, err := os.OpenFile(fpath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		report.ReportFatal("failed to open output file `%s`: %s", fpath, err.Error())
	}
	defer file.Close()

	if _, err = file.WriteString(content); err != nil {
		report.ReportFatal("failed to write output to file `%s`: %s", fpath, err.Error())
	}
}
