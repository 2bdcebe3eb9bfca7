// Package addr defines the addressing-mode operands of the 6809/6309
// instruction set as a closed tagged union. Each variant advertises
// the set of mode codes it may satisfy; the assembler intersects that
// set with the mnemonic's opcode-table row to select an encoding.
//
// Values should be built through the New* constructors, which enforce
// the range and type invariants of each mode.
package addr

import (
	"fmt"

	"github.com/rob-smallshire/asm68/pkg/reg"
)

// RangeError reports an integer outside the permitted range for the
// chosen addressing mode.
type RangeError struct {
	What  string
	Value int64
	Min   int64
	Max   int64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s value %d (0x%X) out of range %d to %d", e.What, e.Value, e.Value, e.Min, e.Max)
}

// Operand is one addressing-mode variant.
type Operand interface {
	// Codes returns the set of mode codes the operand may satisfy.
	Codes() Code
}

// Expr is a value an address or data entry can take: a literal integer
// or a label reference.
type Expr interface {
	isExpr()
}

// Int is a literal integer expression.
type Int int

func (Int) isExpr() {}

func (i Int) String() string { return fmt.Sprintf("%d", int(i)) }

// Inherent is the operand of instructions whose address is implied by
// the opcode; it contributes no operand bytes.
type Inherent struct{}

func (Inherent) Codes() Code { return INH }

func (Inherent) String() string { return "Inherent()" }

// Immediate is a literal operand. Width is 1, 2 or 4 bytes when set,
// or zero when the width is left to be inferred from the mnemonic's
// inherent register.
type Immediate struct {
	Value uint32
	Width int
}

// NewImmediate validates the value against the width: when a width is
// given the value must fit in that many bytes; signed inputs are
// expected to have been converted to unsigned two's-complement form
// first.
func NewImmediate(value int64, width int) (Immediate, error) {
	if width != 0 {
		if width != 1 && width != 2 && width != 4 {
			return Immediate{}, fmt.Errorf("immediate width %d not in 1, 2, 4", width)
		}
		upper := int64(1) << (8 * width)
		if value < 0 || value >= upper {
			return Immediate{}, &RangeError{What: "immediate", Value: value, Min: 0, Max: upper - 1}
		}
	} else if value < 0 || value > 0xFFFFFFFF {
		return Immediate{}, &RangeError{What: "immediate", Value: value, Min: 0, Max: 0xFFFFFFFF}
	}
	return Immediate{Value: uint32(value), Width: width}, nil
}

func (Immediate) Codes() Code { return IMM }

func (i Immediate) String() string { return fmt.Sprintf("Immediate(0x%X, %d)", i.Value, i.Width) }

// Registers is the operand of the inter-register instructions (TFR,
// EXG, CMPR). It advertises IMM as well as INT, but the assembler
// encodes only the INT form: a register operand to an instruction that
// selects IMM, such as PSHS, is rejected.
type Registers []reg.Register

// NewRegisters requires at least one register.
func NewRegisters(rs ...reg.Register) (Registers, error) {
	if len(rs) < 1 {
		return nil, fmt.Errorf("at least one register must be specified")
	}
	return Registers(rs), nil
}

func (Registers) Codes() Code { return IMM | INT }

// Equal reports element-wise equality.
func (r Registers) Equal(o Registers) bool {
	if len(r) != len(o) {
		return false
	}
	for i := range r {
		if r[i] != o[i] {
			return false
		}
	}
	return true
}

// PageDirect addresses a byte within the direct page.
type PageDirect struct {
	Address uint8
}

// NewPageDirect validates the one-byte address.
func NewPageDirect(address int) (PageDirect, error) {
	if address < 0 || address > 0xFF {
		return PageDirect{}, &RangeError{What: "page direct address", Value: int64(address), Min: 0, Max: 0xFF}
	}
	return PageDirect{Address: uint8(address)}, nil
}

func (PageDirect) Codes() Code { return DIR }

func (p PageDirect) String() string { return fmt.Sprintf("PageDirect(0x%02X)", p.Address) }

// ExtendedDirect addresses a memory location by its full 16-bit
// address, given as an integer or a label.
type ExtendedDirect struct {
	Address Expr
}

// NewExtendedDirect validates an integer address; labels resolve
// later through the label table.
func NewExtendedDirect(address Expr) (ExtendedDirect, error) {
	if err := checkExtendedAddress("extended direct address", address); err != nil {
		return ExtendedDirect{}, err
	}
	return ExtendedDirect{Address: address}, nil
}

func (ExtendedDirect) Codes() Code { return EXT }

func (e ExtendedDirect) String() string { return fmt.Sprintf("ExtendedDirect(%v)", e.Address) }

// ExtendedIndirect addresses the memory location pointed to by a
// 16-bit address.
type ExtendedIndirect struct {
	Address Expr
}

// NewExtendedIndirect validates an integer address; labels resolve
// later through the label table.
func NewExtendedIndirect(address Expr) (ExtendedIndirect, error) {
	if err := checkExtendedAddress("extended indirect address", address); err != nil {
		return ExtendedIndirect{}, err
	}
	return ExtendedIndirect{Address: address}, nil
}

func (ExtendedIndirect) Codes() Code { return EXT }

func (e ExtendedIndirect) String() string { return fmt.Sprintf("ExtendedIndirect(%v)", e.Address) }

func checkExtendedAddress(what string, address Expr) error {
	switch a := address.(type) {
	case Int:
		if a < 0 || a > 0xFFFF {
			return &RangeError{What: what, Value: int64(a), Min: 0, Max: 0xFFFF}
		}
		return nil
	case Label:
		return nil
	case nil:
		return fmt.Errorf("integer address or label expected, got nil")
	default:
		return fmt.Errorf("integer address or label expected, got %v", address)
	}
}

// Indexed addresses memory relative to a base register. The offset is
// either a signed 16-bit constant or an accumulator register; a base
// with auto increment/decrement admits only a zero constant offset.
type Indexed struct {
	Base   reg.IndexBase
	Offset int
	// Acc is the accumulator-offset register; the zero Register means
	// the constant Offset is in effect.
	Acc reg.Register
}

// NewIndexed builds a constant-offset indexed operand.
func NewIndexed(base reg.IndexBase, offset int) (Indexed, error) {
	if offset < -32768 || offset > 32767 {
		return Indexed{}, &RangeError{What: "indexed offset", Value: int64(offset), Min: -32768, Max: 32767}
	}
	if _, ok := base.(reg.AutoIncrementedRegister); ok && offset != 0 {
		return Indexed{}, fmt.Errorf("auto post/pre- increment/decrement can only be used with zero offset")
	}
	return Indexed{Base: base, Offset: offset}, nil
}

// NewAccumulatorIndexed builds an accumulator-offset indexed operand.
func NewAccumulatorIndexed(base reg.IndexBase, acc reg.Register) (Indexed, error) {
	if _, ok := base.(reg.AutoIncrementedRegister); ok {
		return Indexed{}, fmt.Errorf("auto post/pre- increment/decrement can only be used with zero offset")
	}
	if acc.Zero() {
		return Indexed{}, fmt.Errorf("accumulator offset register not specified")
	}
	return Indexed{Base: base, Acc: acc}, nil
}

func (Indexed) Codes() Code { return IDX }

func (i Indexed) String() string {
	if !i.Acc.Zero() {
		return fmt.Sprintf("Indexed(base=%v, offset=%v)", i.Base, i.Acc)
	}
	return fmt.Sprintf("Indexed(base=%v, offset=%d)", i.Base, i.Offset)
}

// Relative8 is a pre-computed 8-bit program-counter-relative offset in
// unsigned two's-complement form.
type Relative8 struct {
	Offset uint8
}

// NewRelative8 validates the one-byte offset.
func NewRelative8(offset int) (Relative8, error) {
	if offset < 0 || offset > 0xFF {
		return Relative8{}, &RangeError{What: "relative8 offset", Value: int64(offset), Min: 0, Max: 0xFF}
	}
	return Relative8{Offset: uint8(offset)}, nil
}

func (Relative8) Codes() Code { return REL8 }

// Relative16 is a pre-computed 16-bit program-counter-relative offset
// in unsigned two's-complement form.
type Relative16 struct {
	Offset uint16
}

// NewRelative16 validates the two-byte offset.
func NewRelative16(offset int) (Relative16, error) {
	if offset < 0 || offset > 0xFFFF {
		return Relative16{}, &RangeError{What: "relative16 offset", Value: int64(offset), Min: 0, Max: 0xFFFF}
	}
	return Relative16{Offset: uint16(offset)}, nil
}

func (Relative16) Codes() Code { return REL16 }

// Integers is the operand of the FCB and FDB directives: a sequence of
// integer or label entries. It matches no instruction mode code.
type Integers []Expr

// NewIntegers requires at least one entry, each an integer or label.
func NewIntegers(items ...Expr) (Integers, error) {
	if len(items) < 1 {
		return nil, fmt.Errorf("at least one integer must be provided")
	}
	for _, item := range items {
		switch item.(type) {
		case Int, Label:
		default:
			return nil, fmt.Errorf("entry %v is not an integer or label", item)
		}
	}
	return Integers(items), nil
}

func (Integers) Codes() Code { return 0 }

// Equal reports element-wise equality.
func (n Integers) Equal(o Integers) bool {
	if len(n) != len(o) {
		return false
	}
	for i := range n {
		if n[i] != o[i] {
			return false
		}
	}
	return true
}
