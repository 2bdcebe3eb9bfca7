package stmt

import (
	"errors"
	"testing"

	"github.com/rob-smallshire/asm68/pkg/addr"
	"github.com/rob-smallshire/asm68/pkg/reg"
)

func TestNewValidatesAddressingModes(t *testing.T) {
	tests := []struct {
		name    string
		m       Mnemonic
		operand addr.Operand
		wantErr bool
	}{
		{"lda immediate", LDA, addr.Immediate{Value: 0x10}, false},
		{"lda page direct", LDA, addr.PageDirect{Address: 0x40}, false},
		{"lda inherent", LDA, addr.Inherent{}, true},
		{"swi inherent", SWI, addr.Inherent{}, false},
		{"swi immediate", SWI, addr.Immediate{Value: 1}, true},
		{"bne label", BNE, addr.Label{Name: "loop"}, false},
		{"bne page direct", BNE, addr.PageDirect{Address: 0x40}, true},
		{"tfr registers", TFR, addr.Registers{reg.A, reg.B}, false},
		{"lea indexed", LEAX, addr.Indexed{Base: reg.X}, false},
		{"lea immediate", LEAX, addr.Immediate{Value: 1}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.m, tc.operand, nil, "")
			if tc.wantErr {
				var modeErr *ModeError
				if !errors.As(err, &modeErr) {
					t.Fatalf("expected ModeError, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
		})
	}
}

func TestNewNilOperandIsInherent(t *testing.T) {
	s, err := New(SWI, nil, nil, "")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := s.Operand.(addr.Inherent); !ok {
		t.Errorf("nil operand: got %T want Inherent", s.Operand)
	}
}

func TestNewUnknownMnemonic(t *testing.T) {
	m, err := NewMnemonic("frob")
	if err != nil {
		t.Fatal(err)
	}
	_, err = New(m, addr.Inherent{}, nil, "")
	var unknown *UnknownMnemonicError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownMnemonicError, got %v", err)
	}
	if unknown.Mnemonic != m {
		t.Errorf("error carries %v, want %v", unknown.Mnemonic, m)
	}
}

func TestDirectivesSkipModeValidation(t *testing.T) {
	for _, m := range []Mnemonic{ORG, FCB, FDB, CALL} {
		if !IsDirective(m) {
			t.Errorf("IsDirective(%v): got false", m)
		}
		if _, err := New(m, addr.Immediate{Value: 0x50}, nil, ""); err != nil {
			t.Errorf("New(%v): %v", m, err)
		}
	}
	if IsDirective(LDA) {
		t.Error("IsDirective(LDA): got true")
	}
}

func TestNewMnemonic(t *testing.T) {
	if _, err := NewMnemonic(""); err == nil {
		t.Error("empty key should fail")
	}
	if _, err := NewMnemonic("2up"); err == nil {
		t.Error("key starting with a digit should fail")
	}
	m, err := NewMnemonic("ldA")
	if err != nil {
		t.Fatal(err)
	}
	if m.Key() != "ldA" || m.String() != "LDA" {
		t.Errorf("got key %q display %q", m.Key(), m.String())
	}
}

func TestInherentRegister(t *testing.T) {
	tests := []struct {
		m    Mnemonic
		want reg.Register
		ok   bool
	}{
		{LDA, reg.A, true},
		{LDB, reg.B, true},
		{LDD, reg.D, true},
		{LDQ, reg.Q, true},
		{LDW, reg.W, true},
		{ANDCC, reg.CC, true},
		{LDMD, reg.MD, true},
		{CMPX, reg.X, true},
		{PSHS, reg.S, true},
		{SWI, reg.Register{}, false},
		{SWI2, reg.Register{}, false},
		{CWAI, reg.Register{}, false},
		{BNE, reg.Register{}, false},
	}
	for _, tc := range tests {
		got, ok := InherentRegister(tc.m)
		if ok != tc.ok || got != tc.want {
			t.Errorf("InherentRegister(%v): got %v, %t want %v, %t", tc.m, got, ok, tc.want, tc.ok)
		}
	}
}

func TestStatementString(t *testing.T) {
	label, _ := addr.NewLabel("loop")
	s, err := New(LDA, addr.PageDirect{Address: 0x40}, &label, "GET DATA")
	if err != nil {
		t.Fatal(err)
	}
	if got := s.String(); got != "LDA(operand=PageDirect(0x40), label=loop)" {
		t.Errorf("String(): got %q", got)
	}
}
