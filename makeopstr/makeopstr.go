// Command makeopstr generates the disassembler's mnemonic and operand name
// tables from the enum InstructionOperation and enum OperandType
// declarations of a C header, so the two never drift apart.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/davecgh/go-spew/spew"
	"github.com/dustin/go-humanize"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

const programName = "makeopstr"

// exit is called by kong once --help has been printed.
var exit = os.Exit

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	flags := Flags{}
	parser, err := kong.New(&flags,
		kong.Name(programName),
		kong.Description("Generate C string tables for the x86 operation and operand enums."),
		kong.Writers(stdout, stderr),
		kong.Exit(exit),
	)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	if _, err := parser.Parse(args); err != nil {
		fmt.Fprintf(stderr, "Usage: %s <header-file> [<output-file>]\n", programName)
		fmt.Fprintf(stderr, "%s: error: %s\n", programName, err)
		return 1
	}

	logger := flags.Log.NewLogger(stderr)
	if err := makeStringTables(logger, flags, stdout, stderr); err != nil {
		level.Error(logger).Log("msg", "failed to generate string tables", "header", flags.Header, "err", err)
		return 1
	}
	return 0
}

func makeStringTables(logger log.Logger, flags Flags, stdout, stderr io.Writer) error {
	tables, err := loadEnumTables(flags.Header)
	if err != nil {
		return fmt.Errorf("failed to load enums: %w", err)
	}
	if err := tables.checkBlocks(); err != nil {
		level.Warn(logger).Log("msg", "emitting empty table", "header", flags.Header, "err", err)
	}
	level.Debug(logger).Log(
		"msg", "scanned header",
		"header", flags.Header,
		"operations", len(tables.Operations),
		"operands", len(tables.Operands),
	)

	if flags.Dump {
		spew.Fdump(stderr, tables)
	}

	n, err := writeOutput(flags.Output, stdout, func(w io.Writer) error {
		return generate(w, tables, flags.Format)
	})
	if err != nil {
		return err
	}

	output := flags.Output
	if output == "" {
		output = "-"
	}
	level.Info(logger).Log("msg", "wrote string tables", "output", output, "format", flags.Format, "bytes", humanize.Bytes(uint64(n)))
	return nil
}
