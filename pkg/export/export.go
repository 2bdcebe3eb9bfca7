package export

import (
	"fmt"
	"io"
	"sort"
)

// An Exporter writes assembled fragments to a sink in one output
// format. Writing is sequential and blocking.
type Exporter func(w io.Writer, blocks map[int][]byte, window Window, repeat int) error

// exporters registers the wired output formats; Export rejects every
// other name, "hex" and "srec" included, as unsupported.
var exporters = map[string]Exporter{
	"bin": WriteBin,
}

// Export writes blocks in the named format.
func Export(w io.Writer, format string, blocks map[int][]byte, window Window, repeat int) error {
	exporter, ok := exporters[format]
	if !ok {
		return fmt.Errorf("unsupported export format %q", format)
	}
	return exporter(w, blocks, window, repeat)
}

// Formats lists the wired format names, sorted.
func Formats() []string {
	names := make([]string, 0, len(exporters))
	for name := range exporters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// WriteBin writes the raw bytes of the window covering the union of
// the fragments, repeated back to back. Repeating is useful for
// doubling up an image, say a 16 K image into a 32 K EPROM.
func WriteBin(w io.Writer, blocks map[int][]byte, window Window, repeat int) error {
	if repeat < 1 {
		return fmt.Errorf("repeat count %d is less than one", repeat)
	}
	contiguous, err := NewContiguousBytes(blocks, window)
	if err != nil {
		return err
	}
	image := contiguous.ToBytes()
	for i := 0; i < repeat; i++ {
		if _, err := w.Write(image); err != nil {
			return err
		}
	}
	return nil
}
