package main

// Flags are the command line arguments of makeopstr.
type Flags struct {
	Log FlagsLogs `embed:"" prefix:"log-"`

	Header string `arg:"" name:"header-file" help:"C/C++ header declaring enum InstructionOperation and enum OperandType."`
	Output string `arg:"" name:"output-file" optional:"" help:"File to write the tables to. Defaults to standard output."`

	Format Format `default:"array" enum:"array,packed" help:"Table layout: an array of string literals, or one packed string with an offset table."`
	Dump   bool   `help:"Dump the scanned enumerators to standard error."`
}

// FlagsLogs provides logging configuration flags.
type FlagsLogs struct {
	Level  string `default:"warn"   enum:"error,warn,info,debug" help:"Log level."`
	Format string `default:"logfmt" enum:"logfmt,json"           help:"Configure if structured logging as JSON or as logfmt"`
}
