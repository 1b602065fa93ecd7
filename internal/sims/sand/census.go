package sand

import (
	"encoding/binary"
	"hash/fnv"

	"github.com/kamstrup/intmap"
)

// Census is a per-kind particle count taken at one instant.
type Census struct {
	counts *intmap.Map[Kind, int]
	total  int
}

// Census counts the particles of every kind in one grid scan.
func (w *World) Census() Census {
	c := Census{counts: intmap.New[Kind, int](kindCount)}
	for _, p := range w.grid.Cells() {
		if p.empty() {
			continue
		}
		n, _ := c.counts.Get(p.Kind)
		c.counts.Put(p.Kind, n+1)
		c.total++
	}
	return c
}

// Of returns the number of particles of kind k.
func (c Census) Of(k Kind) int {
	if c.counts == nil {
		return 0
	}
	n, _ := c.counts.Get(k)
	return n
}

// Total returns the number of occupied cells.
func (c Census) Total() int { return c.total }

// Fingerprint hashes kind, colour and lifetime of every cell. Two worlds with
// equal fingerprints are, for all practical purposes, identical.
func (w *World) Fingerprint() uint64 {
	h := fnv.New64a()
	var buf [9]byte
	for _, p := range w.grid.Cells() {
		buf[0] = byte(p.Kind)
		buf[1], buf[2], buf[3], buf[4] = p.Color.R, p.Color.G, p.Color.B, p.Color.A
		binary.LittleEndian.PutUint32(buf[5:], uint32(int32(p.Life)))
		h.Write(buf[:])
	}
	return h.Sum64()
}
