// Package asmdsl provides the loosely-typed operand sugar and the
// classifier that resolves it onto the addressing-mode variants, plus
// a fluent builder for statement sequences. Callers who prefer the
// strongly-typed path can construct addr values directly and pass them
// through unchanged.
package asmdsl

import (
	"fmt"

	"github.com/rob-smallshire/asm68/pkg/addr"
	"github.com/rob-smallshire/asm68/pkg/bits"
	"github.com/rob-smallshire/asm68/pkg/reg"
	"github.com/rob-smallshire/asm68/pkg/stmt"
)

// Set is the direct-addressing sugar: a one-element set whose entry is
// an address or label, e.g. Set{0x40}.
type Set []any

// Ind is the indirection sugar: a one-element list wrapping a Set,
// e.g. Ind{Set{0x1234}}.
type Ind []any

// Idx is the indexed-addressing sugar: a one-entry mapping from offset
// to base register, e.g. Idx{B: X} or Idx{-1: X}.
type Idx map[any]any

// Tuple groups registers (for the inter-register instructions) or
// integers and labels (for FCB and FDB).
type Tuple []any

// ShapeError reports an operand descriptor that fits no known shape.
type ShapeError struct {
	Descriptor any
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("unrecognised operand type %v (%T)", e.Descriptor, e.Descriptor)
}

// Classify resolves an operand descriptor into an addressing-mode
// variant:
//
//	nil                      Inherent
//	int                      Immediate, width inferred later
//	[]byte                   Immediate of the byte length
//	bits.U8 ... bits.I32     Immediate of the type's width
//	Set{int}                 PageDirect or ExtendedDirect
//	Set{Label}               ExtendedDirect
//	Ind{Set{...}}            ExtendedIndirect
//	Tuple of registers       Registers
//	Tuple of ints/labels     Integers
//	Idx{offset: base}        Indexed
//	addr.Label               label reference
//	stmt.Macro               forwarded verbatim
//	addr.Operand             forwarded verbatim
func Classify(descriptor any) (addr.Operand, error) {
	switch d := descriptor.(type) {
	case nil:
		return addr.Inherent{}, nil
	case int:
		return addr.NewImmediate(int64(d), 0)
	case []byte:
		if len(d) != 1 && len(d) != 2 && len(d) != 4 {
			return nil, fmt.Errorf("immediate bytes length %d not 1, 2 or 4", len(d))
		}
		var v int64
		for _, b := range d {
			v = v<<8 | int64(b)
		}
		return addr.NewImmediate(v, len(d))
	case bits.U8:
		return addr.NewImmediate(int64(d), 1)
	case bits.U16:
		return addr.NewImmediate(int64(d), 2)
	case bits.U32:
		return addr.NewImmediate(int64(d), 4)
	case bits.I8:
		v, _ := bits.TwosComplement(int(d), 8)
		return addr.NewImmediate(int64(v), 1)
	case bits.I16:
		v, _ := bits.TwosComplement(int(d), 16)
		return addr.NewImmediate(int64(v), 2)
	case bits.I32:
		v, _ := bits.TwosComplement(int(d), 32)
		return addr.NewImmediate(int64(v), 4)
	case Set:
		item, err := single([]any(d), "set")
		if err != nil {
			return nil, err
		}
		return classifyDirect(item)
	case Ind:
		item, err := single([]any(d), "list")
		if err != nil {
			return nil, err
		}
		return classifyIndirect(item)
	case Tuple:
		return classifyTuple(d)
	case Idx:
		return classifyIndexed(d)
	case addr.Label:
		return d, nil
	case stmt.Macro:
		return d, nil
	case func(stmt.Host) ([]stmt.Statement, error):
		return stmt.Macro(d), nil
	case addr.Operand:
		return d, nil
	default:
		return nil, &ShapeError{Descriptor: descriptor}
	}
}

func single(items []any, what string) (any, error) {
	if len(items) != 1 {
		return nil, fmt.Errorf("expected one item in %s, got %d", what, len(items))
	}
	return items[0], nil
}

func classifyDirect(item any) (addr.Operand, error) {
	switch v := item.(type) {
	case int:
		if v < 0 {
			return nil, fmt.Errorf("direct address %d is negative", v)
		}
		if v <= 0xFF {
			return addr.NewPageDirect(v)
		}
		if v <= 0xFFFF {
			return addr.NewExtendedDirect(addr.Int(v))
		}
		return nil, &addr.RangeError{What: "direct address", Value: int64(v), Min: 0, Max: 0xFFFF}
	case bits.U8:
		return addr.NewPageDirect(int(v))
	case bits.U16:
		return addr.NewExtendedDirect(addr.Int(v))
	case addr.Label:
		return addr.NewExtendedDirect(v)
	default:
		return nil, &ShapeError{Descriptor: item}
	}
}

func classifyIndirect(item any) (addr.Operand, error) {
	set, ok := item.(Set)
	if !ok {
		return nil, &ShapeError{Descriptor: item}
	}
	inner, err := single([]any(set), "set")
	if err != nil {
		return nil, err
	}
	switch v := inner.(type) {
	case int:
		if v < 0 {
			return nil, fmt.Errorf("indirect address %d is negative", v)
		}
		if v <= 0xFFFF {
			return addr.NewExtendedIndirect(addr.Int(v))
		}
		return nil, &addr.RangeError{What: "indirect address", Value: int64(v), Min: 0, Max: 0xFFFF}
	case addr.Label:
		return addr.NewExtendedIndirect(v)
	default:
		return nil, &ShapeError{Descriptor: inner}
	}
}

func classifyTuple(items Tuple) (addr.Operand, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("expected at least one item in tuple")
	}
	if _, ok := items[0].(reg.Register); ok {
		rs := make([]reg.Register, 0, len(items))
		for _, item := range items {
			r, ok := item.(reg.Register)
			if !ok {
				return nil, &ShapeError{Descriptor: items}
			}
			rs = append(rs, r)
		}
		return addr.NewRegisters(rs...)
	}
	exprs := make([]addr.Expr, 0, len(items))
	for _, item := range items {
		switch v := item.(type) {
		case int:
			exprs = append(exprs, addr.Int(v))
		case addr.Label:
			exprs = append(exprs, v)
		default:
			return nil, &ShapeError{Descriptor: items}
		}
	}
	return addr.NewIntegers(exprs...)
}

func classifyIndexed(m Idx) (addr.Operand, error) {
	if len(m) != 1 {
		return nil, fmt.Errorf("expected one offset:base entry, got %d", len(m))
	}
	var offset, baseItem any
	for k, v := range m {
		offset, baseItem = k, v
	}
	var base reg.IndexBase
	switch b := baseItem.(type) {
	case reg.Register:
		base = b
	case reg.AutoIncrementedRegister:
		base = b
	default:
		return nil, fmt.Errorf("%v is not a base register", baseItem)
	}
	switch o := offset.(type) {
	case int:
		return addr.NewIndexed(base, o)
	case reg.Register:
		return addr.NewAccumulatorIndexed(base, o)
	default:
		return nil, fmt.Errorf("expected integer or register offset, got %v", offset)
	}
}
