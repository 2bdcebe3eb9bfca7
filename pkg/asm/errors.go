package asm

import (
	"fmt"
	"strings"

	"github.com/rob-smallshire/asm68/pkg/reg"
)

// TooManyPassesError reports that label resolution failed to converge
// within the pass budget. It carries the names of the labels still
// unresolved and those defined but never referenced, both sorted.
type TooManyPassesError struct {
	Passes                 int
	UnresolvedLabelNames   []string
	UnreferencedLabelNames []string
}

func (e *TooManyPassesError) Error() string {
	return fmt.Sprintf("too many passes (%d); unresolved labels: %s",
		e.Passes, strings.Join(e.UnresolvedLabelNames, ", "))
}

// InterRegisterError reports a register with no 6809/6309 nybble
// mapping used as a TFR, EXG or CMPR operand.
type InterRegisterError struct {
	Register reg.Register
	Role     string
}

func (e *InterRegisterError) Error() string {
	return fmt.Sprintf("cannot use %v as %s register for inter-register instructions",
		e.Register, e.Role)
}

// DuplicateLabelError reports a label whose address would shift
// relative to its first-pass value, detected on pass zero.
type DuplicateLabelError struct {
	Name     string
	Address  int
	Previous int
}

func (e *DuplicateLabelError) Error() string {
	return fmt.Sprintf("label %s already used previously at 0x%04X", e.Name, e.Previous)
}

// FragmentOverlapError reports an ORG directive whose origin falls
// inside an existing code fragment.
type FragmentOverlapError struct {
	Origin int
}

func (e *FragmentOverlapError) Error() string {
	return fmt.Sprintf("origin address 0x%04X lies within existing code fragment", e.Origin)
}
