// Package export flattens the assembler's address to fragment mapping
// into contiguous images and writes them out. The only wired format is
// raw binary; any other name, hex and S-record included, is rejected.
package export

import (
	"fmt"
	"sort"
)

// Window bounds the exported address range. Nil bounds default to the
// tightest fit around the fragments (or zero when there are none).
type Window struct {
	// Start is the inclusive first address.
	Start *int
	// Stop is the exclusive last address.
	Stop *int
	// Fill is the value of addresses no fragment covers.
	Fill byte
}

// ContiguousBytes is a read-only mapping from address to byte over
// [start, stop), built from non-overlapping fragments plus a fill
// byte.
type ContiguousBytes struct {
	addresses []int
	blocks    [][]byte
	start     int
	stop      int
	fill      byte
}

// NewContiguousBytes validates the fragments against the window: the
// fragments must not overlap and must lie wholly within it.
func NewContiguousBytes(blocks map[int][]byte, w Window) (*ContiguousBytes, error) {
	c := &ContiguousBytes{fill: w.Fill}
	for address := range blocks {
		c.addresses = append(c.addresses, address)
	}
	sort.Ints(c.addresses)
	for _, address := range c.addresses {
		if n := len(c.blocks); n > 0 {
			previous := c.addresses[n-1]
			stopOfPrevious := previous + len(c.blocks[n-1])
			if address < stopOfPrevious {
				return nil, fmt.Errorf(
					"block at address 0x%04X with length %d overlaps block at address 0x%04X",
					previous, len(c.blocks[n-1]), address)
			}
		}
		c.blocks = append(c.blocks, blocks[address])
	}

	if len(c.addresses) != 0 {
		startOfFirst := c.addresses[0]
		stopOfLast := c.addresses[len(c.addresses)-1] + len(c.blocks[len(c.blocks)-1])
		c.start, c.stop = startOfFirst, stopOfLast
		if w.Start != nil {
			c.start = *w.Start
		}
		if w.Stop != nil {
			c.stop = *w.Stop
		}
		if c.start > startOfFirst {
			return nil, fmt.Errorf("start address 0x%04X is after the beginning of the first block", c.start)
		}
		if c.stop < stopOfLast {
			return nil, fmt.Errorf("stop address 0x%04X is before the end of the last block", c.stop)
		}
	} else {
		if w.Start != nil {
			c.start = *w.Start
		}
		c.stop = c.start
		if w.Stop != nil {
			c.stop = *w.Stop
		}
	}

	if c.start < 0 {
		return nil, fmt.Errorf("start address %d is not non-negative", c.start)
	}
	if c.stop < c.start {
		return nil, fmt.Errorf("stop address %d is before start address %d", c.stop, c.start)
	}
	return c, nil
}

// Start is the inclusive first address of the window.
func (c *ContiguousBytes) Start() int { return c.start }

// Stop is the exclusive last address of the window.
func (c *ContiguousBytes) Stop() int { return c.stop }

// Len is the window size in bytes.
func (c *ContiguousBytes) Len() int { return c.stop - c.start }

// At returns the byte at an address: the fragment byte where covered,
// the fill byte elsewhere within the window, and false outside it.
func (c *ContiguousBytes) At(address int) (byte, bool) {
	if address < c.start || address >= c.stop {
		return 0, false
	}
	i := sort.SearchInts(c.addresses, address+1)
	if i > 0 {
		blockAddress := c.addresses[i-1]
		block := c.blocks[i-1]
		if address < blockAddress+len(block) {
			return block[address-blockAddress], true
		}
	}
	return c.fill, true
}

// ToBytes renders the full window.
func (c *ContiguousBytes) ToBytes() []byte {
	out := make([]byte, 0, c.Len())
	for address := c.start; address < c.stop; address++ {
		b, _ := c.At(address)
		out = append(out, b)
	}
	return out
}
