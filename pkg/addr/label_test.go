package addr

import "testing"

func TestNewLabel(t *testing.T) {
	tests := []struct {
		name    string
		wantErr bool
	}{
		{"loop", false},
		{"SQTAB", false},
		{"label_2", false},
		{"pc", false},
		{"", true},
		{"_hidden", true},
		{"2start", true},
		{"has space", true},
		{"func", true}, // host-language keyword
		{"range", true},
	}
	for _, tc := range tests {
		l, err := NewLabel(tc.name)
		if tc.wantErr {
			if err == nil {
				t.Errorf("NewLabel(%q): expected error, got %v", tc.name, l)
			}
			continue
		}
		if err != nil {
			t.Errorf("NewLabel(%q): %v", tc.name, err)
			continue
		}
		if l.Name != tc.name {
			t.Errorf("NewLabel(%q): got %q", tc.name, l.Name)
		}
	}
}

func TestLabelEquality(t *testing.T) {
	a, _ := NewLabel("loop")
	b, _ := NewLabel("loop")
	c, _ := NewLabel("done")
	if a != b {
		t.Error("labels with equal names must be equal")
	}
	if a == c {
		t.Error("labels with different names must differ")
	}
}
