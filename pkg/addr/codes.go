package addr

import (
	mathbits "math/bits"
	"strings"
)

// Code identifies one or more addressing-mode codes as a bit set. A
// single code is the key that pairs an operand with an opcode-table
// column; an operand advertises the set of codes it may satisfy.
type Code uint8

const (
	// INH: the address is inherent in the opcode, e.g. ABX.
	INH Code = 1 << iota
	// INT: pseudo-addressing for an inter-register operand naming
	// registers for the EXG, TFR and CMPR instructions.
	INT
	// IMM: a literal operand immediately follows the opcode. Could be
	// 8-bit (LDA), 16-bit (LDD), or 32-bit (LDQ).
	IMM
	// DIR: an 8-bit offset from the base of the direct page, as
	// defined by the DP register. Also known as just 'Direct'.
	DIR
	// IDX: relative to the address in a base register (an index
	// register or stack pointer).
	IDX
	// EXT: a 16-bit pointer to a memory location. Also known as just
	// 'Extended'.
	EXT
	// REL8: program counter relative, 8-bit offset.
	REL8
	// REL16: program counter relative, 16-bit offset.
	REL16
)

var codeNames = map[Code]string{
	INH:   "INH",
	INT:   "INT",
	IMM:   "IMM",
	DIR:   "DIR",
	IDX:   "IDX",
	EXT:   "EXT",
	REL8:  "REL8",
	REL16: "REL16",
}

// AllCodes lists each individual code, in declaration order.
var AllCodes = []Code{INH, INT, IMM, DIR, IDX, EXT, REL8, REL16}

// Contains reports whether every bit of t is present in c.
func (c Code) Contains(t Code) bool { return c&t == t }

// Intersect returns the codes present in both sets.
func (c Code) Intersect(t Code) Code { return c & t }

// Count returns the number of individual codes in the set.
func (c Code) Count() int { return mathbits.OnesCount8(uint8(c)) }

// Single returns the sole code in the set, or false when the set is
// empty or holds more than one code.
func (c Code) Single() (Code, bool) {
	if c.Count() != 1 {
		return 0, false
	}
	return c, true
}

func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	var parts []string
	for _, single := range AllCodes {
		if c.Contains(single) {
			parts = append(parts, codeNames[single])
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}
