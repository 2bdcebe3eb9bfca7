package asm_test

import (
	"encoding/hex"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/rob-smallshire/asm68/pkg/addr"
	"github.com/rob-smallshire/asm68/pkg/asm"
	"github.com/rob-smallshire/asm68/pkg/asmdsl"
	"github.com/rob-smallshire/asm68/pkg/reg"
	"github.com/rob-smallshire/asm68/pkg/stmt"
)

// fromHex decodes "96 40" style byte strings.
func fromHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(strings.ReplaceAll(s, " ", ""))
	if err != nil {
		t.Fatalf("bad hex %q: %v", s, err)
	}
	return b
}

// checkObjectCode assembles a single statement at origin zero and
// compares the emitted bytes.
func checkObjectCode(t *testing.T, wantHex string, m stmt.Mnemonic, descriptor any) {
	t.Helper()
	u := asmdsl.New()
	u.I(m, descriptor)
	statements, err := u.Statements()
	if err != nil {
		t.Fatalf("%v %v: %v", m, descriptor, err)
	}
	blocks, err := asm.Assemble(statements, asm.Config{})
	if err != nil {
		t.Fatalf("%v %v: %v", m, descriptor, err)
	}
	if diff := cmp.Diff(fromHex(t, wantHex), blocks[0]); diff != "" {
		t.Errorf("%v %v mismatch (-want +got):\n%s", m, descriptor, diff)
	}
}

// assembleError assembles a single statement and returns the expected
// failure.
func assembleError(t *testing.T, m stmt.Mnemonic, descriptor any) error {
	t.Helper()
	u := asmdsl.New()
	u.I(m, descriptor)
	statements, err := u.Statements()
	if err != nil {
		t.Fatalf("%v %v: building failed early: %v", m, descriptor, err)
	}
	_, err = asm.Assemble(statements, asm.Config{})
	if err == nil {
		t.Fatalf("%v %v: expected error", m, descriptor)
	}
	return err
}

func TestAdcaAddressingModes(t *testing.T) {
	checkObjectCode(t, "89 34", stmt.ADCA, 0x34)
	checkObjectCode(t, "99 34", stmt.ADCA, asmdsl.Set{0x34})
	checkObjectCode(t, "A9 84", stmt.ADCA, asmdsl.Idx{0: reg.X})
	checkObjectCode(t, "B9 12 34", stmt.ADCA, asmdsl.Set{0x1234})
}

func TestImmediateWidths(t *testing.T) {
	checkObjectCode(t, "86 10", stmt.LDA, 0x10)
	checkObjectCode(t, "CC 12 34", stmt.LDD, 0x1234)
	checkObjectCode(t, "8E 00 50", stmt.LDX, 0x50)
	checkObjectCode(t, "10 8E 00 42", stmt.LDY, 0x42)
	checkObjectCode(t, "CD 01 02 03 04", stmt.LDQ, 0x01020304)
}

func TestImmediateOverflow(t *testing.T) {
	err := assembleError(t, stmt.LDA, 0x100)
	var rangeErr *addr.RangeError
	if !errors.As(err, &rangeErr) {
		t.Errorf("expected RangeError, got %v", err)
	}
}

// TestIndexedOffsetBoundaries checks the 5/8/16-bit post-byte form
// boundaries.
func TestIndexedOffsetBoundaries(t *testing.T) {
	tests := []struct {
		offset int
		want   string
	}{
		{0, "A6 84"},
		{15, "A6 0F"},
		{-1, "A6 1F"},
		{-16, "A6 10"},
		{16, "A6 88 10"},
		{-17, "A6 88 EF"},
		{127, "A6 88 7F"},
		{-128, "A6 88 80"},
		{128, "A6 89 00 80"},
		{-129, "A6 89 FF 7F"},
		{32767, "A6 89 7F FF"},
		{-32768, "A6 89 80 00"},
	}
	for _, tc := range tests {
		checkObjectCode(t, tc.want, stmt.LDA, asmdsl.Idx{tc.offset: reg.X})
	}
}

func TestIndexedBaseRegisters(t *testing.T) {
	checkObjectCode(t, "A6 84", stmt.LDA, asmdsl.Idx{0: reg.X})
	checkObjectCode(t, "A6 A4", stmt.LDA, asmdsl.Idx{0: reg.Y})
	checkObjectCode(t, "A6 C4", stmt.LDA, asmdsl.Idx{0: reg.U})
	checkObjectCode(t, "A6 E4", stmt.LDA, asmdsl.Idx{0: reg.S})
}

func TestIndexedAccumulatorOffsets(t *testing.T) {
	checkObjectCode(t, "A6 86", stmt.LDA, asmdsl.Idx{reg.A: reg.X})
	checkObjectCode(t, "A6 85", stmt.LDA, asmdsl.Idx{reg.B: reg.X})
	checkObjectCode(t, "A6 8B", stmt.LDA, asmdsl.Idx{reg.D: reg.X})
	checkObjectCode(t, "A6 87", stmt.LDA, asmdsl.Idx{reg.E: reg.X})
	checkObjectCode(t, "A6 8A", stmt.LDA, asmdsl.Idx{reg.F: reg.X})
	checkObjectCode(t, "A6 8E", stmt.LDA, asmdsl.Idx{reg.W: reg.X})
	checkObjectCode(t, "A6 CB", stmt.LDA, asmdsl.Idx{reg.D: reg.U})
}

func TestIndexedAutoIncrementDecrement(t *testing.T) {
	checkObjectCode(t, "A6 80", stmt.LDA, asmdsl.Idx{0: reg.PostInc(reg.X)})
	checkObjectCode(t, "A6 81", stmt.LDA, asmdsl.Idx{0: reg.PostInc2(reg.X)})
	checkObjectCode(t, "A6 82", stmt.LDA, asmdsl.Idx{0: reg.PreDec(reg.X)})
	checkObjectCode(t, "A6 83", stmt.LDA, asmdsl.Idx{0: reg.PreDec2(reg.X)})
	checkObjectCode(t, "A6 A0", stmt.LDA, asmdsl.Idx{0: reg.PostInc(reg.Y)})
	checkObjectCode(t, "AB 80", stmt.ADDA, asmdsl.Idx{0: reg.PostInc(reg.X)})
}

func TestIndexedErrors(t *testing.T) {
	// A non-index base register.
	assembleError(t, stmt.LDA, asmdsl.Idx{reg.B: reg.A})
	// An index register as the offset.
	assembleError(t, stmt.LDA, asmdsl.Idx{reg.Y: reg.X})
	// Auto increment of a non-index register.
	assembleError(t, stmt.LDA, asmdsl.Idx{0: reg.PostInc(reg.A)})
}

func TestRegisterPairEncoding(t *testing.T) {
	checkObjectCode(t, "1F 88", stmt.TFR, asmdsl.Tuple{reg.A, reg.A})
	checkObjectCode(t, "1F 89", stmt.TFR, asmdsl.Tuple{reg.A, reg.B})
	checkObjectCode(t, "1F 12", stmt.TFR, asmdsl.Tuple{reg.X, reg.Y})
	checkObjectCode(t, "1E 88", stmt.EXG, asmdsl.Tuple{reg.A, reg.A})
	checkObjectCode(t, "1E 89", stmt.EXG, asmdsl.Tuple{reg.A, reg.B})
	checkObjectCode(t, "1E 12", stmt.EXG, asmdsl.Tuple{reg.X, reg.Y})
	checkObjectCode(t, "10 37 88", stmt.CMPR, asmdsl.Tuple{reg.A, reg.A})
	checkObjectCode(t, "10 37 89", stmt.CMPR, asmdsl.Tuple{reg.A, reg.B})
	checkObjectCode(t, "10 37 12", stmt.CMPR, asmdsl.Tuple{reg.X, reg.Y})
	// 6309 registers have nybbles too.
	checkObjectCode(t, "1F 66", stmt.TFR, asmdsl.Tuple{reg.W, reg.W})
	checkObjectCode(t, "1F 7C", stmt.TFR, asmdsl.Tuple{reg.V, reg.Z})
	checkObjectCode(t, "1F EF", stmt.TFR, asmdsl.Tuple{reg.E, reg.F})
}

func TestInterRegisterErrors(t *testing.T) {
	tests := []struct {
		name string
		m    stmt.Mnemonic
		pair asmdsl.Tuple
		want reg.Register
	}{
		{"tfr md source", stmt.TFR, asmdsl.Tuple{reg.MD, reg.A}, reg.MD},
		{"tfr q target", stmt.TFR, asmdsl.Tuple{reg.S, reg.Q}, reg.Q},
		{"exg md source", stmt.EXG, asmdsl.Tuple{reg.MD, reg.A}, reg.MD},
		{"exg q target", stmt.EXG, asmdsl.Tuple{reg.S, reg.Q}, reg.Q},
		{"cmpr md source", stmt.CMPR, asmdsl.Tuple{reg.MD, reg.A}, reg.MD},
		{"cmpr q target", stmt.CMPR, asmdsl.Tuple{reg.S, reg.Q}, reg.Q},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := assembleError(t, tc.m, tc.pair)
			var irErr *asm.InterRegisterError
			if !errors.As(err, &irErr) {
				t.Fatalf("expected InterRegisterError, got %v", err)
			}
			if irErr.Register != tc.want {
				t.Errorf("error carries %v, want %v", irErr.Register, tc.want)
			}
		})
	}
}

func TestPrecomputedRelativeOperands(t *testing.T) {
	s, err := stmt.New(stmt.BRA, addr.Relative8{Offset: 0xFE}, nil, "")
	if err != nil {
		t.Fatal(err)
	}
	blocks, err := asm.Assemble([]stmt.Statement{s}, asm.Config{})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(fromHex(t, "20 FE"), blocks[0]); diff != "" {
		t.Errorf("BRA mismatch (-want +got):\n%s", diff)
	}

	s, err = stmt.New(stmt.LBRA, addr.Relative16{Offset: 0xFFF3}, nil, "")
	if err != nil {
		t.Fatal(err)
	}
	blocks, err = asm.Assemble([]stmt.Statement{s}, asm.Config{})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(fromHex(t, "16 FF F3"), blocks[0]); diff != "" {
		t.Errorf("LBRA mismatch (-want +got):\n%s", diff)
	}
}

func TestExtendedIndirectIsUnsupported(t *testing.T) {
	assembleError(t, stmt.LDA, asmdsl.Ind{asmdsl.Set{0x1234}})
}
