package asmdsl

import (
	"fmt"

	"github.com/rob-smallshire/asm68/pkg/addr"
	"github.com/rob-smallshire/asm68/pkg/asm"
	"github.com/rob-smallshire/asm68/pkg/stmt"
)

// Ref returns a label reference for use as an operand or FDB entry.
// It panics on an invalid name; label names in a program are static,
// so a bad one is a programming error.
func Ref(name string) addr.Label {
	l, err := addr.NewLabel(name)
	if err != nil {
		panic(err)
	}
	return l
}

// PC returns a reference to the reserved program-counter label, which
// the assembler rebinds to the location counter before each statement.
func PC() addr.Label {
	return Ref(asm.ProgramCounterLabelName)
}

// Unit accumulates a statement sequence. Errors are sticky: after the
// first failed statement the remaining calls are ignored and the error
// is reported by Statements.
type Unit struct {
	statements []stmt.Statement
	err        error
}

// New creates an empty unit.
func New() *Unit {
	return &Unit{}
}

// I appends an unlabelled statement. The trailing arguments are an
// optional operand descriptor and an optional comment: with one
// argument a string is a comment and anything else is an operand; with
// two the operand comes first.
func (u *Unit) I(m stmt.Mnemonic, args ...any) *Unit {
	return u.append(m, nil, args)
}

// L appends a labelled statement.
func (u *Unit) L(label string, m stmt.Mnemonic, args ...any) *Unit {
	if u.err != nil {
		return u
	}
	l, err := addr.NewLabel(label)
	if err != nil {
		u.err = err
		return u
	}
	return u.append(m, &l, args)
}

func (u *Unit) append(m stmt.Mnemonic, label *addr.Label, args []any) *Unit {
	if u.err != nil {
		return u
	}
	s, err := u.statement(m, label, args)
	if err != nil {
		u.err = err
		return u
	}
	u.statements = append(u.statements, s)
	return u
}

func (u *Unit) statement(m stmt.Mnemonic, label *addr.Label, args []any) (stmt.Statement, error) {
	var descriptor any
	comment := ""
	switch len(args) {
	case 0:
	case 1:
		if c, ok := args[0].(string); ok {
			comment = c
		} else {
			descriptor = args[0]
		}
	case 2:
		descriptor = args[0]
		c, ok := args[1].(string)
		if !ok {
			return stmt.Statement{}, fmt.Errorf("statement comment must be a string, got %T", args[1])
		}
		comment = c
	default:
		return stmt.Statement{}, fmt.Errorf("unhandled number of statement arguments: %d", len(args))
	}
	operand, err := Classify(descriptor)
	if err != nil {
		return stmt.Statement{}, err
	}
	return stmt.New(m, operand, label, comment)
}

// Err returns the first error recorded while building, if any.
func (u *Unit) Err() error {
	return u.err
}

// Statements returns the accumulated sequence, or the first building
// error.
func (u *Unit) Statements() ([]stmt.Statement, error) {
	if u.err != nil {
		return nil, u.err
	}
	out := make([]stmt.Statement, len(u.statements))
	copy(out, u.statements)
	return out, nil
}
