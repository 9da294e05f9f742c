package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Format selects the layout of the generated C tables.
type Format string

const (
	// FormatArray emits an array of string literals per enum.
	FormatArray Format = "array"
	// FormatPacked emits one NUL-separated string per enum plus an array
	// of offsets into it.
	FormatPacked Format = "packed"
)

type tableWriter interface {
	io.Writer
	io.StringWriter
	io.ByteWriter
}

// generate writes the operation table followed by the operand table.
func generate(w io.Writer, tables *EnumTables, format Format) error {
	bw := bufio.NewWriter(w)

	for _, t := range []struct {
		block  enumBlock
		values []string
	}{
		{operationBlock, tables.Operations},
		{operandBlock, tables.Operands},
	} {
		switch format {
		case FormatArray, "":
			emitTable(bw, t.block.Strings, t.values)
		case FormatPacked:
			emitPackedTable(bw, t.block, t.values)
		default:
			return fmt.Errorf("unsupported table format %q", format)
		}
	}

	return bw.Flush()
}

func emitTable(w tableWriter, name string, values []string) {
	fmt.Fprintf(w, "static const char* %s[] = {\n", name)
	for i, v := range values {
		if i > 0 {
			w.WriteString(",\n")
		}
		fmt.Fprintf(w, "\t\"%s\"", v)
	}
	w.WriteString("\n};\n")
}

func emitPackedTable(w tableWriter, b enumBlock, values []string) {
	blob, offsets := packStrings(values)

	fmt.Fprintf(w, "static const char %s[] = \"", b.Strings)
	for _, c := range blob {
		// Identifiers never start with a digit, so a bare \0 can't run
		// into a following octal escape.
		if c == 0 {
			w.WriteString(`\0`)
			continue
		}
		w.WriteByte(c)
	}
	w.WriteString("\";\n")

	offsetType := "uint8"
	if len(blob) >= 256 {
		offsetType = "uint16"
	}
	strs := make([]string, len(offsets))
	for i, off := range offsets {
		strs[i] = strconv.Itoa(off)
	}
	fmt.Fprintf(w, "static const %s %s[] = {%s};\n\n", offsetType, b.Offsets, strings.Join(strs, ", "))
}

// packStrings lays values out as NUL-terminated strings in a single blob,
// returning the offset of each value. A value that already appears in the
// blob as the tail of an earlier string reuses that storage.
func packStrings(values []string) (blob []byte, offsets []int) {
	offsets = make([]int, 0, len(values))
	for _, v := range values {
		if off := findTerminated(blob, v); off >= 0 {
			offsets = append(offsets, off)
			continue
		}
		offsets = append(offsets, len(blob))
		blob = append(blob, v...)
		blob = append(blob, 0)
	}
	return blob, offsets
}

// findTerminated returns the first offset at which v occurs immediately
// followed by a NUL, or -1.
func findTerminated(blob []byte, v string) int {
	if len(blob) <= len(v) {
		return -1
	}
	for j := 0; j < len(blob)-len(v); j++ {
		if blob[j+len(v)] != 0 {
			continue
		}
		if string(blob[j:j+len(v)]) == v {
			return j
		}
	}
	return -1
}
