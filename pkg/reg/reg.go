// Package reg defines the 6809 and 6309 register set. Registers are
// value types compared by name and width; the standard registers are
// build-time constants rather than entries in a process-wide mutable
// table.
package reg

import "fmt"

// widths allowed for a register: one byte (A, B, CC, ...), two bytes
// (D, X, PC, ...) or four bytes (Q).
func validWidth(w int) bool {
	return w == 1 || w == 2 || w == 4
}

// Register is a named CPU register with a byte width.
type Register struct {
	name  string
	width int
}

// New creates a register after validating the name and width. Names
// must be non-empty and uppercase. A name matching one of the standard
// registers must agree with its width.
func New(name string, width int) (Register, error) {
	if len(name) == 0 {
		return Register{}, fmt.Errorf("register name cannot be empty")
	}
	for _, c := range name {
		if c < 'A' || c > 'Z' {
			return Register{}, fmt.Errorf("register name %q is not uppercase letters", name)
		}
	}
	if !validWidth(width) {
		return Register{}, fmt.Errorf("register width %d not one of 1, 2, 4", width)
	}
	if existing, ok := byName[name]; ok && existing.width != width {
		return Register{}, fmt.Errorf(
			"inconsistent register width %d for %s register; previous width was %d",
			width, name, existing.width)
	}
	return Register{name: name, width: width}, nil
}

// Name returns the register's uppercase name.
func (r Register) Name() string { return r.name }

// Width returns the register's width in bytes.
func (r Register) Width() int { return r.width }

// Zero reports whether r is the zero Register, which names no register
// at all.
func (r Register) Zero() bool { return r.name == "" }

func (r Register) String() string { return r.name }

// indexBase marks Register as usable where an indexed-addressing base
// is expected.
func (r Register) indexBase() {}

// IndexBase is the base of an indexed operand: either a plain Register
// or an AutoIncrementedRegister.
type IndexBase interface {
	indexBase()
	String() string
}

// crements are the only deltas the 6809 indexed post-increment and
// pre-decrement forms can express.
var crements = map[int]bool{-2: true, -1: true, +1: true, +2: true}

// AutoIncrementedRegister pairs a register with a post-increment or
// pre-decrement delta for the 6809 auto-indexed forms.
type AutoIncrementedRegister struct {
	register Register
	delta    int
}

// NewAuto validates the delta against the hardware-supported set
// {-2, -1, +1, +2}.
func NewAuto(r Register, delta int) (AutoIncrementedRegister, error) {
	if !crements[delta] {
		return AutoIncrementedRegister{}, fmt.Errorf(
			"auto increment/decrement %+d of %s not one of -2, -1, +1, +2", delta, r.Name())
	}
	return AutoIncrementedRegister{register: r, delta: delta}, nil
}

// Register returns the underlying register.
func (a AutoIncrementedRegister) Register() Register { return a.register }

// Delta returns the increment (positive) or decrement (negative).
func (a AutoIncrementedRegister) Delta() int { return a.delta }

func (a AutoIncrementedRegister) String() string {
	if a.delta >= 0 {
		return fmt.Sprintf("%s%+d", a.register, a.delta)
	}
	return fmt.Sprintf("%+d%s", a.delta, a.register)
}

func (a AutoIncrementedRegister) indexBase() {}

// PostInc is the auto post-increment form r+, advancing by one.
func PostInc(r Register) AutoIncrementedRegister {
	return AutoIncrementedRegister{register: r, delta: +1}
}

// PostInc2 is the double post-increment form r++.
func PostInc2(r Register) AutoIncrementedRegister {
	return AutoIncrementedRegister{register: r, delta: +2}
}

// PreDec is the auto pre-decrement form -r.
func PreDec(r Register) AutoIncrementedRegister {
	return AutoIncrementedRegister{register: r, delta: -1}
}

// PreDec2 is the double pre-decrement form --r.
func PreDec2(r Register) AutoIncrementedRegister {
	return AutoIncrementedRegister{register: r, delta: -2}
}

// The standard 6809 and 6309 registers.
var (
	A   = Register{"A", 1}
	B   = Register{"B", 1}
	D   = Register{"D", 2}
	E   = Register{"E", 1}
	F   = Register{"F", 1}
	W   = Register{"W", 2}
	Q   = Register{"Q", 4}
	X   = Register{"X", 2}
	Y   = Register{"Y", 2}
	U   = Register{"U", 2}
	S   = Register{"S", 2}
	PC  = Register{"PC", 2}
	PCR = Register{"PCR", 2}
	DP  = Register{"DP", 1}
	CC  = Register{"CC", 1}
	MD  = Register{"MD", 1}
	V   = Register{"V", 2}
	Z   = Register{"Z", 2}
)

var byName = map[string]Register{
	"A": A, "B": B, "D": D, "E": E, "F": F, "W": W, "Q": Q,
	"X": X, "Y": Y, "U": U, "S": S,
	"PC": PC, "PCR": PCR, "DP": DP, "CC": CC, "MD": MD,
	"V": V, "Z": Z,
}

// ByName looks up a standard register.
func ByName(name string) (Register, bool) {
	r, ok := byName[name]
	return r, ok
}

// Register groupings.
var (
	// IndexRegisters can serve as indexed-addressing bases.
	IndexRegisters = []Register{X, Y, U, S}

	// Accumulators1 are the one-byte accumulators.
	Accumulators1 = []Register{A, B, E, F}

	// Accumulators2 are the two-byte accumulators.
	Accumulators2 = []Register{D, W}

	// Accumulators4 is the four-byte 6309 accumulator.
	Accumulators4 = []Register{Q}
)

// IsIndexRegister reports whether r can be an indexed-addressing base.
func IsIndexRegister(r Register) bool {
	return r == X || r == Y || r == U || r == S
}
