package space

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Digest fingerprints the subtree: identity fields, every metric value and the
// shape of the children. Two analyses of the same input produce equal digests.
func (n *Node) Digest() uint64 {
	d := xxhash.New()
	n.digest(d)
	return d.Sum64()
}

func (n *Node) digest(d *xxhash.Digest) {
	var buf [8]byte
	putInt := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		_, _ = d.Write(buf[:])
	}

	if n.hasName {
		putInt(uint64(len(n.name)) + 1)
		_, _ = d.WriteString(n.name)
	} else {
		putInt(0)
	}
	putInt(uint64(n.kind))
	putInt(uint64(n.startLine))
	putInt(uint64(n.endLine))
	for _, g := range n.metrics.Groups() {
		for _, v := range g.Values {
			putInt(math.Float64bits(v.Value))
		}
	}

	putInt(uint64(len(n.children)))
	for _, c := range n.children {
		c.digest(d)
	}
}
