package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func runMakeopstr(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var outBuf, errBuf bytes.Buffer
	code = run(args, &outBuf, &errBuf)
	return code, outBuf.String(), errBuf.String()
}

func writeHeader(t *testing.T, contents string) string {
	t.Helper()
	filename := filepath.Join(t.TempDir(), "asm.h")
	require.NoError(t, os.WriteFile(filename, []byte(contents), 0o644))
	return filename
}

func TestRun_usage(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "no arguments", args: nil},
		{name: "too many arguments", args: []string{"a.h", "b.h", "c.h"}},
		{name: "unknown format", args: []string{"--format=yaml", "a.h"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, stdout, stderr := runMakeopstr(t, tt.args...)
			require.Equal(t, 1, code)
			require.Empty(t, stdout)
			require.Contains(t, stderr, "Usage: makeopstr <header-file> [<output-file>]\n")
		})
	}
}

func TestRun_stdout(t *testing.T) {
	code, stdout, stderr := runMakeopstr(t, "testdata/asmx86.h")
	require.Equal(t, 0, code, stderr)
	require.Empty(t, stderr)

	want, err := os.ReadFile("testdata/asmx86.golden")
	require.NoError(t, err)
	require.Equal(t, string(want), stdout)
}

func TestRun_outputFile(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "opstr.h")
	code, stdout, stderr := runMakeopstr(t, "--log-level=info", "testdata/asmx86.h", filename)
	require.Equal(t, 0, code, stderr)
	require.Empty(t, stdout)
	require.Contains(t, stderr, "wrote string tables")
	require.Contains(t, stderr, "output="+filename)

	got, err := os.ReadFile(filename)
	require.NoError(t, err)
	want, err := os.ReadFile("testdata/asmx86.golden")
	require.NoError(t, err)
	require.Equal(t, string(want), string(got))
}

func TestRun_example(t *testing.T) {
	header := writeHeader(t, exampleHeader)
	code, stdout, stderr := runMakeopstr(t, header)
	require.Equal(t, 0, code, stderr)
	require.Equal(t, `static const char* operationString[] = {
	"",
	"mov",
	"add"
};
static const char* operandString[] = {
	"",
	"eax"
};
`, stdout)
}

func TestRun_packed(t *testing.T) {
	header := writeHeader(t, exampleHeader)
	code, stdout, stderr := runMakeopstr(t, "--format", "packed", header)
	require.Equal(t, 0, code, stderr)
	require.Equal(t, "static const char operationString[] = \"\\0mov\\0add\\0\";\n"+
		"static const uint8 operationOffsets[] = {0, 1, 5};\n\n"+
		"static const char operandString[] = \"\\0eax\\0\";\n"+
		"static const uint8 operandOffsets[] = {0, 1};\n\n", stdout)
}

func TestRun_missingBlocks(t *testing.T) {
	header := writeHeader(t, "enum SegmentRegister\n{\n\tSEG_ES = 0,\n};\n")
	code, stdout, stderr := runMakeopstr(t, header)
	require.Equal(t, 0, code, stderr)
	require.Equal(t, "static const char* operationString[] = {\n\n};\n"+
		"static const char* operandString[] = {\n\n};\n", stdout)
	require.Contains(t, stderr, "level=warn")
	require.Contains(t, stderr, "no such enum block")
}

func TestRun_missingHeader(t *testing.T) {
	header := filepath.Join(t.TempDir(), "missing.h")
	output := filepath.Join(t.TempDir(), "opstr.h")
	code, stdout, stderr := runMakeopstr(t, header, output)
	require.Equal(t, 1, code)
	require.Empty(t, stdout)
	require.Contains(t, stderr, "level=error")
	require.Contains(t, stderr, header)
	require.NoFileExists(t, output)
}

func TestRun_dump(t *testing.T) {
	header := writeHeader(t, exampleHeader)
	code, _, stderr := runMakeopstr(t, "--dump", header)
	require.Equal(t, 0, code, stderr)
	require.Contains(t, stderr, "Operations:")
	require.Contains(t, stderr, `"mov"`)
}

func TestRun_jsonLogs(t *testing.T) {
	code, _, stderr := runMakeopstr(t, "--log-level=debug", "--log-format=json", "testdata/asmx86.h")
	require.Equal(t, 0, code, stderr)
	require.Contains(t, stderr, `"msg":"scanned header"`)
	require.Contains(t, stderr, `"operations":336`)
	require.Contains(t, stderr, `"operands":157`)
}

func TestRun_longLine(t *testing.T) {
	header := writeHeader(t, "// "+strings.Repeat("x", 70000)+"\n"+exampleHeader)
	code, stdout, stderr := runMakeopstr(t, header)
	require.Equal(t, 0, code, stderr)
	require.Contains(t, stdout, "\t\"mov\",\n")
	require.Contains(t, stdout, "\t\"eax\"\n")
}

func TestRun_readErrorNamesHeader(t *testing.T) {
	dir := t.TempDir()
	code, stdout, stderr := runMakeopstr(t, dir)
	require.Equal(t, 1, code)
	require.Empty(t, stdout)
	require.Contains(t, stderr, "header="+dir)
	require.Contains(t, stderr, "failed to read "+dir)
}

type exitCode int

func TestRun_help(t *testing.T) {
	defer func(old func(int)) { exit = old }(exit)
	exit = func(code int) { panic(exitCode(code)) }

	var stdout, stderr bytes.Buffer
	require.PanicsWithValue(t, exitCode(0), func() {
		run([]string{"--help"}, &stdout, &stderr)
	})
	require.Contains(t, stdout.String(), "Usage: makeopstr <header-file> [<output-file>]")
	require.Contains(t, stdout.String(), "--format")
}
