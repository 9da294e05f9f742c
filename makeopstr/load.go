package main

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
)

func loadEnumTables(filename string) (*EnumTables, error) {
	r, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	ret, err := scanEnums(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filename, err)
	}
	return ret, nil
}

// scanEnums makes a single pass over a header, collecting the enumerators
// of enum InstructionOperation and enum OperandType.
//
// This is deliberately not a C parser: a block starts at the line naming
// the enum and ends at the next line containing a closing brace.
func scanEnums(r io.Reader) (*EnumTables, error) {
	ret := &EnumTables{}
	mode := modeOutside

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), math.MaxInt)
	for sc.Scan() {
		line := sc.Text()
		switch {
		case mode == modeOutside && isEnumDecl(line, operationBlock):
			mode = modeOperation
			ret.enter(mode)
		case mode == modeOutside && isEnumDecl(line, operandBlock):
			mode = modeOperand
			ret.enter(mode)
		case strings.Contains(line, "}"):
			mode = modeOutside
		case mode != modeOutside && !strings.Contains(line, "{"):
			for _, name := range enumeratorNames(line) {
				ret.add(mode, name)
			}
		}
	}

	return ret, sc.Err()
}

// isEnumDecl matches the line that opens a block. The typedef aliases that
// C headers carry for these enums must not.
func isEnumDecl(line string, b enumBlock) bool {
	return strings.Contains(line, b.marker()) && !strings.Contains(line, "typedef")
}
