package export

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestWriteBin(t *testing.T) {
	blocks := map[int][]byte{
		0: {0x96, 0x40, 0x3F},
	}
	var buf bytes.Buffer
	if err := WriteBin(&buf, blocks, Window{}, 1); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]byte{0x96, 0x40, 0x3F}, buf.Bytes()); diff != "" {
		t.Errorf("WriteBin mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteBinRepeat(t *testing.T) {
	blocks := map[int][]byte{0: {0xAA, 0xBB}}
	var buf bytes.Buffer
	if err := WriteBin(&buf, blocks, Window{}, 3); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]byte{0xAA, 0xBB, 0xAA, 0xBB, 0xAA, 0xBB}, buf.Bytes()); diff != "" {
		t.Errorf("repeat mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteBinUnionOfFragmentsWithFill(t *testing.T) {
	blocks := map[int][]byte{
		0x00: {0x96, 0x40},
		0x05: {0x3F},
	}
	var buf bytes.Buffer
	if err := WriteBin(&buf, blocks, Window{Fill: 0x12}, 1); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]byte{0x96, 0x40, 0x12, 0x12, 0x12, 0x3F}, buf.Bytes()); diff != "" {
		t.Errorf("union mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteBinRejectsZeroRepeat(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteBin(&buf, nil, Window{}, 0); err == nil {
		t.Error("expected error")
	}
}

func TestExportFormats(t *testing.T) {
	if diff := cmp.Diff([]string{"bin"}, Formats()); diff != "" {
		t.Errorf("Formats mismatch (-want +got):\n%s", diff)
	}
	var buf bytes.Buffer
	if err := Export(&buf, "bin", map[int][]byte{0: {1}}, Window{}, 1); err != nil {
		t.Errorf("Export(bin): %v", err)
	}
	for _, format := range []string{"hex", "srec", "elf"} {
		if err := Export(&buf, format, nil, Window{}, 1); err == nil {
			t.Errorf("Export(%s): expected unsupported-format error", format)
		}
	}
}
