package asm

import (
	"fmt"

	"github.com/rob-smallshire/asm68/pkg/addr"
	"github.com/rob-smallshire/asm68/pkg/bits"
	"github.com/rob-smallshire/asm68/pkg/opcode"
	"github.com/rob-smallshire/asm68/pkg/reg"
	"github.com/rob-smallshire/asm68/pkg/stmt"
)

// rr packs the indexed-addressing base register into post-byte bits
// 5-6.
var rr = map[reg.Register]byte{
	reg.X: 0b00,
	reg.Y: 0b01,
	reg.U: 0b10,
	reg.S: 0b11,
}

// accumulatorOffsetPostByte selects the accumulator-offset indexed
// forms, before the base register bits are folded in.
var accumulatorOffsetPostByte = map[reg.Register]byte{
	reg.A: 0b10000110,
	reg.B: 0b10000101,
	reg.D: 0b10001011,
	reg.E: 0b10000111,
	reg.F: 0b10001010,
	reg.W: 0b10001110,
}

// indexCrementPostByte selects the auto increment/decrement indexed
// forms by delta.
var indexCrementPostByte = map[int]byte{
	+1: 0b10000000,
	+2: 0b10000001,
	-1: 0b10000010,
	-2: 0b10000011,
}

// registerNybbles6809 maps registers to their inter-register operand
// nybble for TFR and EXG.
var registerNybbles6809 = map[reg.Register]byte{
	reg.D:  0b0000,
	reg.X:  0b0001,
	reg.Y:  0b0010,
	reg.U:  0b0011,
	reg.S:  0b0100,
	reg.PC: 0b0101,
	reg.A:  0b1000,
	reg.B:  0b1001,
	reg.CC: 0b1010,
	reg.DP: 0b1011,
}

// registerNybbles6309 extends the nybble map with the 6309 registers
// addressable by TFR, EXG and CMPR.
var registerNybbles6309 = map[reg.Register]byte{
	reg.W: 0b0110,
	reg.V: 0b0111,
	reg.Z: 0b1100,
	reg.E: 0b1110,
	reg.F: 0b1111,
}

var registerNybbles = func() map[reg.Register]byte {
	merged := make(map[reg.Register]byte, len(registerNybbles6809)+len(registerNybbles6309))
	for r, n := range registerNybbles6809 {
		merged[r] = n
	}
	for r, n := range registerNybbles6309 {
		merged[r] = n
	}
	return merged
}()

// assembleInstruction selects the opcode for the statement's mnemonic
// and addressing mode, encodes the operand, and appends both to the
// active fragment.
func (a *Assembler) assembleInstruction(s stmt.Statement) error {
	row, ok := opcode.Lookup(s.Mnemonic.Key())
	if !ok {
		return &stmt.UnknownMnemonicError{Mnemonic: s.Mnemonic}
	}
	var supported addr.Code
	for code := range row {
		supported |= code
	}
	selected, single := s.Operand.Codes().Intersect(supported).Single()
	if !single {
		if s.Operand.Codes().Intersect(supported) == 0 {
			return &stmt.ModeError{Mnemonic: s.Mnemonic, Operand: s.Operand}
		}
		return fmt.Errorf("ambiguous addressing modes %v for %v",
			s.Operand.Codes().Intersect(supported), s.Mnemonic)
	}
	opcodeBytes := row[selected]
	operandBytes, err := a.encodeOperand(s, selected, opcodeBytes)
	if err != nil {
		return err
	}
	a.extend(append(append([]byte{}, opcodeBytes...), operandBytes...))
	return nil
}

// encodeOperand emits the operand bytes for the selected mode code.
func (a *Assembler) encodeOperand(s stmt.Statement, selected addr.Code, opcodeBytes []byte) ([]byte, error) {
	switch operand := s.Operand.(type) {
	case addr.Inherent:
		return nil, nil
	case addr.Immediate:
		return a.encodeImmediate(s, operand)
	case addr.Registers:
		if selected != addr.INT {
			return nil, fmt.Errorf("%v does not support register operands", s.Mnemonic)
		}
		return encodeRegisterPair(operand)
	case addr.PageDirect:
		return []byte{operand.Address}, nil
	case addr.ExtendedDirect:
		return a.encodeExtendedAddress(operand.Address)
	case addr.ExtendedIndirect:
		return nil, fmt.Errorf("%v does not support extended indirect operands", s.Mnemonic)
	case addr.Indexed:
		return encodeIndexed(operand)
	case addr.Relative8:
		return []byte{operand.Offset}, nil
	case addr.Relative16:
		return []byte{bits.Hi(operand.Offset), bits.Lo(operand.Offset)}, nil
	case addr.Label:
		switch selected {
		case addr.REL8:
			return a.encodeRelative(operand, 1, opcodeBytes)
		case addr.REL16:
			return a.encodeRelative(operand, 2, opcodeBytes)
		default:
			return a.encodeLabelAddress(operand)
		}
	default:
		return nil, fmt.Errorf("operand %v could not be assembled", s.Operand)
	}
}

// encodeImmediate emits the literal big-endian, as wide as the
// mnemonic's inherent register (one byte for mnemonics without one).
func (a *Assembler) encodeImmediate(s stmt.Statement, operand addr.Immediate) ([]byte, error) {
	width := 1
	if inherent, ok := stmt.InherentRegister(s.Mnemonic); ok {
		width = inherent.Width()
	}
	if width < 4 && operand.Value >= 1<<(8*width) {
		return nil, &addr.RangeError{
			What:  fmt.Sprintf("%v immediate", s.Mnemonic),
			Value: int64(operand.Value),
			Min:   0,
			Max:   int64(1)<<(8*width) - 1,
		}
	}
	return bits.BigEndian(nil, operand.Value, width), nil
}

// encodeRegisterPair packs a source and target register into the
// inter-register operand byte used by TFR, EXG and CMPR.
func encodeRegisterPair(operand addr.Registers) ([]byte, error) {
	if len(operand) != 2 {
		return nil, fmt.Errorf("inter-register instructions take exactly two registers, got %d", len(operand))
	}
	source, target := operand[0], operand[1]
	sourceNybble, ok := registerNybbles[source]
	if !ok {
		return nil, &InterRegisterError{Register: source, Role: "source"}
	}
	targetNybble, ok := registerNybbles[target]
	if !ok {
		return nil, &InterRegisterError{Register: target, Role: "target"}
	}
	return []byte{sourceNybble<<4 | targetNybble}, nil
}

// encodeExtendedAddress emits a two-byte big-endian address, resolving
// labels through the label table.
func (a *Assembler) encodeExtendedAddress(address addr.Expr) ([]byte, error) {
	switch v := address.(type) {
	case addr.Label:
		return a.encodeLabelAddress(v)
	case addr.Int:
		return []byte{bits.Hi(uint16(v)), bits.Lo(uint16(v))}, nil
	default:
		return nil, fmt.Errorf("extended address %v is not an integer or label", address)
	}
}

// encodeLabelAddress resolves a label to its two-byte address,
// emitting a zero placeholder and requesting another pass when the
// label is not yet defined.
func (a *Assembler) encodeLabelAddress(label addr.Label) ([]byte, error) {
	defer delete(a.unreferenced, label.Name)
	if address, ok := a.labelAddresses[label.Name]; ok {
		delete(a.unresolved, label.Name)
		return []byte{bits.Hi(uint16(address)), bits.Lo(uint16(address))}, nil
	}
	a.morePasses = true
	a.unresolved[label.Name] = true
	return []byte{0, 0}, nil
}

// encodeRelative computes a branch displacement from the end of the
// instruction to the label, in unsigned two's-complement form of the
// operand width.
func (a *Assembler) encodeRelative(label addr.Label, operandLen int, opcodeBytes []byte) ([]byte, error) {
	defer delete(a.unreferenced, label.Name)
	target, ok := a.labelAddresses[label.Name]
	if !ok {
		a.morePasses = true
		a.unresolved[label.Name] = true
		return make([]byte, operandLen), nil
	}
	offset := target - a.pos - len(opcodeBytes) - operandLen
	unsigned, err := bits.TwosComplement(offset, operandLen*8)
	if err != nil {
		return nil, fmt.Errorf("branch to %s: %w", label.Name, err)
	}
	delete(a.unresolved, label.Name)
	return bits.BigEndian(nil, unsigned, operandLen), nil
}

// encodeIndexed emits the indexed-addressing post-byte family:
// accumulator offsets, 5/8/16-bit constant offsets, and the auto
// increment/decrement forms.
func encodeIndexed(operand addr.Indexed) ([]byte, error) {
	switch base := operand.Base.(type) {
	case reg.Register:
		rrBits, ok := rr[base]
		if !ok {
			return nil, fmt.Errorf("cannot use %v as a base register for indexed addressing modes", base)
		}
		if !operand.Acc.Zero() {
			post, ok := accumulatorOffsetPostByte[operand.Acc]
			if !ok {
				return nil, fmt.Errorf("cannot use indexed addressing offset %v with base %v", operand.Acc, base)
			}
			return []byte{post | rrBits<<5}, nil
		}
		offset := operand.Offset
		switch {
		case offset == 0:
			return []byte{0b10000100 | rrBits<<5}, nil
		case -16 <= offset && offset <= 15:
			u, err := bits.TwosComplement(offset, 5)
			if err != nil {
				return nil, err
			}
			return []byte{byte(u) | rrBits<<5}, nil
		case -128 <= offset && offset <= 127:
			u, err := bits.TwosComplement(offset, 8)
			if err != nil {
				return nil, err
			}
			return []byte{0b10001000 | rrBits<<5, byte(u)}, nil
		case -32768 <= offset && offset <= 32767:
			u, err := bits.TwosComplement(offset, 16)
			if err != nil {
				return nil, err
			}
			return []byte{0b10001001 | rrBits<<5, bits.Hi(uint16(u)), bits.Lo(uint16(u))}, nil
		default:
			return nil, &addr.RangeError{What: "indexed offset", Value: int64(offset), Min: -32768, Max: 32767}
		}
	case reg.AutoIncrementedRegister:
		rrBits, ok := rr[base.Register()]
		if !ok {
			return nil, fmt.Errorf("cannot use auto pre-/post- increment or decrement with register %v", base.Register())
		}
		return []byte{indexCrementPostByte[base.Delta()] | rrBits<<5}, nil
	default:
		return nil, fmt.Errorf("cannot use %v as a base register for indexed addressing modes", operand.Base)
	}
}
