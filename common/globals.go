package common

// ExprcVersion is the current exprc version as a string.
const ExprcVersion string = "0.1.0"

// ConfigFileName is the name of the optional build configuration file looked
// up in the working directory.
const ConfigFileName string = "exprc.toml"

// DefaultEntryName is the name of the synthesized entry point symbol when no
// other name is configured.
const DefaultEntryName string = "main"

// AssemblyFileExt is the file extension used for textual assembly output.
const AssemblyFileExt string = ".s"

// LLVMFileExt is the file extension used for LLVM IR text output.
const LLVMFileExt string = ".ll"
