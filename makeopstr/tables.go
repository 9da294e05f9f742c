package main

import (
	"errors"
	"fmt"
)

// enumBlock describes one of the two enums we generate string tables for.
type enumBlock struct {
	Enum    string // C enum name
	Strings string // identifier of the generated string table
	Offsets string // identifier of the offset table in packed output
}

var (
	operationBlock = enumBlock{
		Enum:    "InstructionOperation",
		Strings: "operationString",
		Offsets: "operationOffsets",
	}
	operandBlock = enumBlock{
		Enum:    "OperandType",
		Strings: "operandString",
		Offsets: "operandOffsets",
	}
)

// marker is the substring that opens the block in the header.
func (b enumBlock) marker() string {
	return "enum " + b.Enum
}

// scanMode tracks which enum body, if any, the scanner is currently inside.
type scanMode int

const (
	modeOutside scanMode = iota
	modeOperation
	modeOperand
)

var errNoSuchBlock = errors.New("no such enum block")

// EnumTables holds the normalized enumerator names of both enums. Index i
// of each slice is the ordinal of the i-th enumerator in declaration order.
type EnumTables struct {
	Operations []string
	Operands   []string

	sawOperations bool
	sawOperands   bool
}

func (t *EnumTables) enter(mode scanMode) {
	switch mode {
	case modeOperation:
		t.sawOperations = true
	case modeOperand:
		t.sawOperands = true
	}
}

func (t *EnumTables) add(mode scanMode, name string) {
	switch mode {
	case modeOperation:
		t.Operations = append(t.Operations, name)
	case modeOperand:
		t.Operands = append(t.Operands, name)
	}
}

// checkBlocks reports the enum blocks that never appeared in the header.
// A missing block still produces an empty table.
func (t *EnumTables) checkBlocks() error {
	var errs []error
	if !t.sawOperations {
		errs = append(errs, fmt.Errorf("%w: enum %s", errNoSuchBlock, operationBlock.Enum))
	}
	if !t.sawOperands {
		errs = append(errs, fmt.Errorf("%w: enum %s", errNoSuchBlock, operandBlock.Enum))
	}
	return errors.Join(errs...)
}
