package engine

import (
	crand "crypto/rand"
	"encoding/binary"
	"time"

	"github.com/minoterm/minoterm/tetromino"
)

// PreviewLength is the fixed length of the next-piece queue.
const PreviewLength = 7

// Randomizer produces the piece sequence with a 7-bag shuffle over a
// xorshift32 generator. The same seed always yields the same infinite
// sequence.
type Randomizer struct {
	state uint32
	bag   []tetromino.Type
	queue []tetromino.Type
}

// DeriveSeed returns a non-zero seed from OS entropy, falling back to the
// wall clock. Seed 0 is invalid for xorshift and never returned.
func DeriveSeed() uint32 {
	var buf [4]byte
	if _, err := crand.Read(buf[:]); err == nil {
		if s := binary.LittleEndian.Uint32(buf[:]); s != 0 {
			return s
		}
	}
	s := uint32(time.Now().UnixNano())
	if s == 0 {
		s = 1
	}
	return s
}

// NewRandomizer creates a randomizer and pre-fills the preview queue.
// A zero seed is replaced by a derived one.
func NewRandomizer(seed uint32) *Randomizer {
	if seed == 0 {
		seed = DeriveSeed()
	}
	r := &Randomizer{state: seed}
	for len(r.queue) < PreviewLength {
		r.feedQueue()
	}
	return r
}

// xorshift32 advances the generator state.
func xorshift32(s uint32) uint32 {
	s ^= s << 13
	s ^= s >> 17
	s ^= s << 5
	return s
}

// next draws one value and advances the state.
func (r *Randomizer) next() uint32 {
	r.state = xorshift32(r.state)
	return r.state
}

// shuffle permutes the seven types: draw, reduce modulo the remaining count,
// rotate the remainder left by that many positions, emit the new head.
func (r *Randomizer) shuffle(items []tetromino.Type) []tetromino.Type {
	out := make([]tetromino.Type, 0, len(items))
	for len(items) > 1 {
		v := int(int32(r.next()))
		if v < 0 {
			v = -v
		}
		k := v % len(items)
		rotated := make([]tetromino.Type, 0, len(items))
		rotated = append(rotated, items[k:]...)
		rotated = append(rotated, items[:k]...)
		out = append(out, rotated[0])
		items = rotated[1:]
	}
	return append(out, items[0])
}

// fillBag refills the bag with a fresh permutation of all seven types.
func (r *Randomizer) fillBag() {
	items := make([]tetromino.Type, len(tetromino.Types))
	copy(items, tetromino.Types[:])
	r.bag = r.shuffle(items)
}

// feedQueue moves one piece from the bag front to the queue tail.
func (r *Randomizer) feedQueue() {
	if len(r.bag) == 0 {
		r.fillBag()
	}
	r.queue = append(r.queue, r.bag[0])
	r.bag = r.bag[1:]
}

// Next consumes the head of the preview queue and replenishes it, keeping
// the queue length invariant.
func (r *Randomizer) Next() tetromino.Type {
	t := r.queue[0]
	r.queue = r.queue[1:]
	r.feedQueue()
	return t
}

// Preview returns a copy of the next-piece queue, head first.
func (r *Randomizer) Preview() []tetromino.Type {
	out := make([]tetromino.Type, len(r.queue))
	copy(out, r.queue)
	return out
}
