// Package stmt models assembler statements: a mnemonic paired with a
// classified operand, an optional label and an optional comment.
// Construction validates that the operand's advertised mode codes
// intersect the modes the mnemonic supports.
package stmt

import (
	"fmt"

	"github.com/rob-smallshire/asm68/pkg/addr"
	"github.com/rob-smallshire/asm68/pkg/opcode"
	"github.com/rob-smallshire/asm68/pkg/reg"
)

// UnknownMnemonicError reports a mnemonic absent from the opcode
// table.
type UnknownMnemonicError struct {
	Mnemonic Mnemonic
}

func (e *UnknownMnemonicError) Error() string {
	return fmt.Sprintf("no opcode matching mnemonic %v", e.Mnemonic)
}

// ModeError reports an operand whose mode codes share nothing with the
// mnemonic's supported codes.
type ModeError struct {
	Mnemonic Mnemonic
	Operand  addr.Operand
}

func (e *ModeError) Error() string {
	return fmt.Sprintf("invalid %v addressing mode for %v", e.Operand.Codes(), e.Mnemonic)
}

// Host is the view of the assembler that a CALL macro receives.
type Host interface {
	// Origin is the base address of the active fragment.
	Origin() int
	// Pos is the current location counter.
	Pos() int
	// Pass is the zero-based index of the current assembly pass.
	Pass() int
	// LabelAddress looks up a label recorded so far, in this pass or an
	// earlier one.
	LabelAddress(name string) (int, bool)
}

// Macro is the operand of the CALL directive. It runs synchronously
// during assembly; returned statements are assembled in sequence and a
// nil slice is permitted for macros invoked for their side effects.
// The macro must not retain the Host beyond the call.
type Macro func(h Host) ([]Statement, error)

// Codes: a macro operand matches no instruction mode code.
func (Macro) Codes() addr.Code { return 0 }

// Statement is one assembler statement.
type Statement struct {
	Mnemonic Mnemonic
	Operand  addr.Operand
	Label    *addr.Label
	Comment  string
}

// New validates the mnemonic/operand pairing. Directive statements are
// checked against their operand requirements when assembled; for
// instructions the operand's mode codes must intersect the mnemonic's
// opcode-table row.
func New(m Mnemonic, operand addr.Operand, label *addr.Label, comment string) (Statement, error) {
	if m.Zero() {
		return Statement{}, fmt.Errorf("statement requires a mnemonic")
	}
	if operand == nil {
		operand = addr.Inherent{}
	}
	if !IsDirective(m) {
		supported, ok := opcode.Codes(m.Key())
		if !ok {
			return Statement{}, &UnknownMnemonicError{Mnemonic: m}
		}
		if operand.Codes().Intersect(supported) == 0 {
			return Statement{}, &ModeError{Mnemonic: m, Operand: operand}
		}
	}
	return Statement{Mnemonic: m, Operand: operand, Label: label, Comment: comment}, nil
}

func (s Statement) String() string {
	if s.Label != nil {
		return fmt.Sprintf("%v(operand=%v, label=%v)", s.Mnemonic, s.Operand, *s.Label)
	}
	return fmt.Sprintf("%v(operand=%v)", s.Mnemonic, s.Operand)
}

// IsDirective reports whether m is one of ORG, FCB, FDB or CALL.
func IsDirective(m Mnemonic) bool {
	switch m {
	case ORG, FCB, FDB, CALL:
		return true
	}
	return false
}

// InherentRegister resolves the accumulator or special register a
// mnemonic implies, from the trailing uppercase run of its key: LDA
// implies A (width 1), LDD implies D (width 2), LDQ implies Q
// (width 4). The second result is false for mnemonics with no
// inherent register.
func InherentRegister(m Mnemonic) (reg.Register, bool) {
	ending := uppercaseEnding(m.Key())
	if ending == "" || ending == m.Key() {
		return reg.Register{}, false
	}
	return reg.ByName(ending)
}
