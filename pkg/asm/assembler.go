// Package asm implements the multi-pass 6809/6309 assembler driver:
// statement iteration, program-counter tracking, origin handling, the
// label table with unresolved/unreferenced bookkeeping, and fragment
// layout across ORG boundaries. The per-operand byte emission lives in
// encode.go.
package asm

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/rob-smallshire/asm68/pkg/addr"
	"github.com/rob-smallshire/asm68/pkg/stmt"
)

// DefaultMaxPasses bounds the fixed-point iteration. Each pass either
// resolves a previously unknown label or reproduces the prior pass, so
// three passes suffice for well-formed programs.
const DefaultMaxPasses = 3

// Config parameterises one assembly run.
type Config struct {
	// Origin is the start address for assembly.
	Origin int
	// MaxPasses caps the multi-pass loop; zero means DefaultMaxPasses.
	MaxPasses int
	// Logger receives unreferenced-label warnings. Nil means silent.
	Logger *slog.Logger
}

// Assemble runs the statements through a fresh assembler and returns
// the address to object-code mapping, one entry per fragment origin.
func Assemble(statements []stmt.Statement, cfg Config) (map[int][]byte, error) {
	a := NewAssembler(cfg)
	if err := a.Assemble(statements); err != nil {
		return nil, err
	}
	return a.ObjectCode(), nil
}

// Assembler holds the mutable state of one assemble invocation. It is
// single-threaded and synchronous; create one per run.
type Assembler struct {
	cfg    Config
	origin int
	pos    int

	// code maps each fragment origin to the byte runs appended while
	// that origin was in force; runs are coalesced at query time.
	code map[int][][]byte

	labelAddresses map[string]int
	unresolved     map[string]bool
	unreferenced   map[string]bool

	morePasses bool
	pass       int
	warnings   []string
}

// NewAssembler creates an assembler positioned at the configured
// origin.
func NewAssembler(cfg Config) *Assembler {
	if cfg.MaxPasses == 0 {
		cfg.MaxPasses = DefaultMaxPasses
	}
	return &Assembler{
		cfg:            cfg,
		origin:         cfg.Origin,
		pos:            cfg.Origin,
		code:           make(map[int][][]byte),
		labelAddresses: make(map[string]int),
		unresolved:     make(map[string]bool),
		unreferenced:   make(map[string]bool),
	}
}

// Origin is the base address of the active fragment.
func (a *Assembler) Origin() int { return a.origin }

// Pos is the current location counter.
func (a *Assembler) Pos() int { return a.pos }

// Pass is the zero-based index of the current pass.
func (a *Assembler) Pass() int { return a.pass }

// LabelAddress looks up a label recorded so far.
func (a *Assembler) LabelAddress(name string) (int, bool) {
	address, ok := a.labelAddresses[name]
	return address, ok
}

// LabelAddresses returns a copy of the label table.
func (a *Assembler) LabelAddresses() map[string]int {
	out := make(map[string]int, len(a.labelAddresses))
	for name, address := range a.labelAddresses {
		out[name] = address
	}
	return out
}

// UnresolvedLabels returns the sorted names of labels referenced but
// not yet defined.
func (a *Assembler) UnresolvedLabels() []string { return sortedNames(a.unresolved) }

// UnreferencedLabels returns the sorted names of labels defined but
// not referenced.
func (a *Assembler) UnreferencedLabels() []string { return sortedNames(a.unreferenced) }

// Warnings returns the warnings accumulated by the last Assemble call.
func (a *Assembler) Warnings() []string {
	out := make([]string, len(a.warnings))
	copy(out, a.warnings)
	return out
}

func sortedNames(set map[string]bool) []string {
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Assemble iterates the statement sequence to a fixed point. Each pass
// rebuilds the fragment map from the configured origin; encoders that
// met an unknown label request another pass. The loop stops when a
// pass completes without such a request, or fails with
// TooManyPassesError when the pass budget is exceeded.
func (a *Assembler) Assemble(statements []stmt.Statement) error {
	a.pass = 0
	a.morePasses = true
	for a.morePasses {
		a.morePasses = false
		a.code = make(map[int][][]byte)
		a.origin = a.cfg.Origin
		a.pos = a.cfg.Origin
		for _, s := range statements {
			if err := a.assembleStatement(s); err != nil {
				return err
			}
		}
		a.pass++
		if a.pass > a.cfg.MaxPasses {
			return &TooManyPassesError{
				Passes:                 a.pass,
				UnresolvedLabelNames:   a.UnresolvedLabels(),
				UnreferencedLabelNames: a.UnreferencedLabels(),
			}
		}
	}
	a.warnAboutUnreferencedLabels()
	return nil
}

func (a *Assembler) warnAboutUnreferencedLabels() {
	a.warnings = a.warnings[:0]
	for _, name := range a.UnreferencedLabels() {
		a.warnings = append(a.warnings, fmt.Sprintf("unreferenced label: %s", name))
		if a.cfg.Logger != nil {
			a.cfg.Logger.Warn("unreferenced label", "label", name)
		}
	}
}

// assembleStatement records the statement's label, then encodes it.
// The reserved "pc" label tracks the location counter so operands can
// reference the instruction's own address.
func (a *Assembler) assembleStatement(s stmt.Statement) error {
	a.labelAddresses[ProgramCounterLabelName] = a.pos
	if err := a.labelStatement(s); err != nil {
		return err
	}
	switch s.Mnemonic {
	case stmt.ORG:
		return a.assembleOrg(s)
	case stmt.FCB:
		return a.assembleFcb(s)
	case stmt.FDB:
		return a.assembleFdb(s)
	case stmt.CALL:
		return a.assembleCall(s)
	default:
		return a.assembleInstruction(s)
	}
}

// ProgramCounterLabelName is the reserved label bound to the current
// location counter before each statement.
const ProgramCounterLabelName = "pc"

// labelStatement applies the label-record rule: a redefinition at a
// different address is an error on pass zero and a request for another
// pass afterwards.
func (a *Assembler) labelStatement(s stmt.Statement) error {
	if s.Label == nil {
		return nil
	}
	name := s.Label.Name
	if previous, ok := a.labelAddresses[name]; ok && previous != a.pos {
		if a.pass == 0 {
			return &DuplicateLabelError{Name: name, Address: a.pos, Previous: previous}
		}
		a.morePasses = true
	}
	a.labelAddresses[name] = a.pos
	a.unreferenced[name] = true
	delete(a.unresolved, name)
	return nil
}

// setOrigin closes the current fragment and opens a new one; the new
// origin must not lie inside any existing fragment.
func (a *Assembler) setOrigin(value int) error {
	a.flatten()
	if a.inExistingFragment(value) {
		return &FragmentOverlapError{Origin: value}
	}
	a.origin = value
	a.pos = value
	return nil
}

func (a *Assembler) inExistingFragment(value int) bool {
	for address, fragments := range a.code {
		if len(fragments) == 0 {
			continue
		}
		if address <= value && value < address+len(fragments[0]) {
			return true
		}
	}
	return false
}

// flatten coalesces each origin's fragment runs into a single run.
func (a *Assembler) flatten() {
	for address, fragments := range a.code {
		if len(fragments) <= 1 {
			continue
		}
		total := 0
		for _, f := range fragments {
			total += len(f)
		}
		joined := make([]byte, 0, total)
		for _, f := range fragments {
			joined = append(joined, f...)
		}
		a.code[address] = [][]byte{joined}
	}
}

// extend appends code to the fragment at the current origin and
// advances the location counter.
func (a *Assembler) extend(code []byte) {
	c := make([]byte, len(code))
	copy(c, code)
	a.code[a.origin] = append(a.code[a.origin], c)
	a.pos += len(c)
}

// ObjectCode returns the coalesced address to bytes mapping.
func (a *Assembler) ObjectCode() map[int][]byte {
	a.flatten()
	out := make(map[int][]byte, len(a.code))
	for address, fragments := range a.code {
		if len(fragments) == 0 {
			out[address] = nil
			continue
		}
		out[address] = fragments[0]
	}
	return out
}

func (a *Assembler) assembleOrg(s stmt.Statement) error {
	imm, ok := s.Operand.(addr.Immediate)
	if !ok {
		return fmt.Errorf("ORG operand must be an immediate value, got %v", s.Operand)
	}
	return a.setOrigin(int(imm.Value))
}

func (a *Assembler) assembleFcb(s stmt.Statement) error {
	items, ok := s.Operand.(addr.Integers)
	if !ok {
		return fmt.Errorf("FCB value must be integers, got %v", s.Operand)
	}
	b := make([]byte, 0, len(items))
	for i, item := range items {
		v, ok := item.(addr.Int)
		if !ok {
			return fmt.Errorf("FCB value %v at index %d is not an integer", item, i)
		}
		if v < 0 || v > 0xFF {
			return fmt.Errorf("FCB value %d at index %d not in range 0-255", v, i)
		}
		b = append(b, byte(v))
	}
	a.extend(b)
	return nil
}

func (a *Assembler) assembleFdb(s stmt.Statement) error {
	items, ok := s.Operand.(addr.Integers)
	if !ok {
		return fmt.Errorf("FDB value must be integers, got %v", s.Operand)
	}
	b := make([]byte, 0, 2*len(items))
	for i, item := range items {
		value, err := a.fdbValue(item, i)
		if err != nil {
			return err
		}
		b = append(b, byte(value>>8), byte(value&0xFF))
	}
	a.extend(b)
	return nil
}

func (a *Assembler) fdbValue(item addr.Expr, index int) (int, error) {
	var value int
	switch v := item.(type) {
	case addr.Label:
		if address, ok := a.labelAddresses[v.Name]; ok {
			value = address
			delete(a.unresolved, v.Name)
		} else {
			a.morePasses = true
			a.unresolved[v.Name] = true
		}
		delete(a.unreferenced, v.Name)
	case addr.Int:
		value = int(v)
	default:
		return 0, fmt.Errorf("FDB value %v at index %d is not an integer or label", item, index)
	}
	if value < 0 || value > 0xFFFF {
		return 0, fmt.Errorf("FDB value %d (0x%04X) at index %d not in range 0-65535", value, value, index)
	}
	return value, nil
}

// assembleCall expands a macro inline. The macro runs synchronously
// with this assembler as its host; returned statements are assembled
// in sequence and errors propagate unchanged.
func (a *Assembler) assembleCall(s stmt.Statement) error {
	macro, ok := s.Operand.(stmt.Macro)
	if !ok {
		return fmt.Errorf("CALL value must be a macro, got %v", s.Operand)
	}
	expanded, err := macro(a)
	if err != nil {
		return err
	}
	for _, es := range expanded {
		if err := a.assembleStatement(es); err != nil {
			return err
		}
	}
	return nil
}
