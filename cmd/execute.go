package cmd

import (
	"os"
	"path/filepath"

	"exprc/common"
	"exprc/report"

	"github.com/ComedicChimera/olive"
)

// Execute is the main entry point for the `exprc` CLI utility.
func Execute() {
	// set up the argument parser and all its extended commands and arguments
	cli := olive.NewCLI("exprc", "exprc compiles integer expressions to assembly and LLVM IR", true)
	cli.AddSelectorArg("loglevel", "ll", "the compiler log level", false, []string{"silent", "error", "warn", "verbose"})
	cli.AddStringArg("config", "c", "the path to the config file", false)

	asmCmd := cli.AddSubcommand("asm", "compile an expression to x86-64 assembly", true)
	asmCmd.AddPrimaryArg("expression", "the expression to compile", true)
	asmCmd.AddStringArg("output", "o", "the output file path", false)
	asmCmd.AddFlag("dump-ast", "da", "display the parsed expression tree")

	llvmCmd := cli.AddSubcommand("llvm", "compile an expression to an LLVM IR module", true)
	llvmCmd.AddPrimaryArg("expression", "the expression to compile", true)
	llvmCmd.AddStringArg("output", "o", "the output file path", false)
	llvmCmd.AddFlag("dump-ast", "da", "display the parsed expression tree")

	evalCmd := cli.AddSubcommand("eval", "evaluate an expression", true)
	evalCmd.AddPrimaryArg("expression", "the expression to evaluate", true)

	cli.AddSubcommand("version", "print the exprc version", false)

	// run the argument parser
	result, err := olive.ParseArgs(cli, os.Args)
	if err != nil {
		report.ReportFatal(err.Error())
	}

	// the log level given on the command line takes precedence over the one in
	// the config file so the reporter is initialized before the config loads
	if lvlName, ok := result.Arguments["loglevel"].(string); ok && lvlName != "" {
		level, _ := report.LogLevelFromName(lvlName)
		report.InitReporter(level)
	}

	// process the inputed command line
	subcmdName, subResult, _ := result.Subcommand()
	if subcmdName == "version" {
		report.ReportInfo("exprc Version", common.ExprcVersion)
		return
	}

	configPath, _ := result.Arguments["config"].(string)
	config, err := LoadConfig(configPath)
	if err != nil {
		report.ReportFatal(err.Error())
	}

	if config.HasLogLevel {
		report.InitReporter(config.LogLevel)
	}

	switch subcmdName {
	case "asm":
		execCompileCommand(subResult, config, common.AssemblyFileExt)
	case "llvm":
		execCompileCommand(subResult, config, common.LLVMFileExt)
	case "eval":
		execEvalCommand(subResult, config)
	}

	if report.AnyErrors() {
		os.Exit(1)
	}
}

// execCompileCommand executes the `asm` and `llvm` subcommands.  The ext is the
// file extension of the output format.
func execCompileCommand(result *olive.ArgParseResult, config *BuildConfig, ext string) {
	src, _ := result.PrimaryArg()

	outputPath, _ := result.Arguments["output"].(string)
	if outputPath != "" {
		if filepath.Ext(outputPath) == "" {
			outputPath += ext
		}

		// the spinner draws on standard out, which is free once the artifact
		// goes to a file
		report.EnablePhaseDisplay()
	}

	c := NewCompiler(src, config, outputPath, os.Stdout)
	c.dumpAST = result.HasFlag("dump-ast")

	if expr, ok := c.Analyze(); ok {
		if ext == common.AssemblyFileExt {
			c.GenerateAssembly(expr)
		} else {
			c.GenerateLLVM(expr)
		}
	}

	// end whatever the final compilation phase was and display the concluding
	// message of compilation.
	report.ReportEndPhase()
	report.ReportCompilationFinished(c.OutputPath())
}

// execEvalCommand executes the `eval` subcommand.
func execEvalCommand(result *olive.ArgParseResult, config *BuildConfig) {
	src, _ := result.PrimaryArg()

	c := NewCompiler(src, config, "", os.Stdout)
	if expr, ok := c.Analyze(); ok {
		c.Evaluate(expr)
	}
}
