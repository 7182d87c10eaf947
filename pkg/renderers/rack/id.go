package rack

import (
	"math/rand"
	"time"
)

// IDSource yields module and cable identifiers for one document. Identifiers
// must stay below 2^53 so they survive a round trip through a double-precision
// JSON reader without losing bits.
type IDSource interface {
	Next() uint64
}

const (
	idHighBits = 32
	idLowBits  = 21
)

type randIDs struct {
	r *rand.Rand
}

// NewRandomIDs returns the production identifier source: two independently
// drawn random components combined into a 53-bit value. Collisions within a
// document are accepted as negligible risk rather than actively checked.
func NewRandomIDs() IDSource {
	return NewSeededIDs(time.Now().UnixNano())
}

// NewSeededIDs returns a deterministic identifier source for reproducible
// documents; tests and callers that want stable output inject one.
func NewSeededIDs(seed int64) IDSource {
	return &randIDs{r: rand.New(rand.NewSource(seed))}
}

func (s *randIDs) Next() uint64 {
	hi := uint64(s.r.Uint32())
	lo := uint64(s.r.Int63n(1 << idLowBits))
	id := hi<<idLowBits | lo
	if id == 0 {
		id = 1
	}
	return id
}
