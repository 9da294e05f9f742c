package main

import (
	"strings"
)

const regOperandPrefix = "__x86_oper(reg_"

// Enumerators that keep their ordinal slot but have no readable name.
var sentinelNames = map[string]struct{}{
	"invalid": {},
	"none":    {},
	"imm":     {},
	"mem":     {},
}

// enumeratorNames returns the normalized names of the enumerators declared
// on one line of an enum body. Fragments left empty, such as the one after
// a trailing comma, are dropped and take no ordinal slot.
func enumeratorNames(line string) []string {
	var ret []string
	for _, frag := range strings.Split(trimComments(line), ",") {
		name, _ := partition(frag, "=")
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		ret = append(ret, normalizeToken(name))
	}
	return ret
}

// normalizeToken maps an enumerator identifier to the string shown by the
// disassembler.
func normalizeToken(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if _, ok := sentinelNames[name]; ok {
		return ""
	}
	if strings.HasPrefix(name, regOperandPrefix) {
		reg, _ := partition(name[len(regOperandPrefix):], ")")
		return strings.TrimSpace(reg)
	}
	return name
}

// trimComments drops everything from the first slash, which is enough for
// the // comments these headers use.
func trimComments(line string) string {
	slash := strings.IndexByte(line, '/')
	if slash == -1 {
		return line
	}
	return line[:slash]
}

func partition(s string, sep string) (l, r string) {
	idx := strings.Index(s, sep)
	if idx == -1 {
		return s, ""
	}
	return s[:idx], s[idx+len(sep):]
}
