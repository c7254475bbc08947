// Package clock supplies the registry's logical clock: a monotonic height
// sampled once per committed mutation.
package clock

import "sync/atomic"

// Clock returns the current logical height.
type Clock interface {
	Height() uint64
}

// Sequence advances by one on every read, so each committed mutation gets
// a distinct, strictly increasing height.
type Sequence struct {
	last atomic.Uint64
}

// NewSequence starts counting after start; the first Height is start+1.
func NewSequence(start uint64) *Sequence {
	s := &Sequence{}
	s.last.Store(start)
	return s
}

func (s *Sequence) Height() uint64 {
	return s.last.Add(1)
}

// Manual is a test clock that only moves when told to.
type Manual struct {
	height atomic.Uint64
}

func NewManual(height uint64) *Manual {
	m := &Manual{}
	m.height.Store(height)
	return m
}

func (m *Manual) Height() uint64 { return m.height.Load() }

func (m *Manual) Set(height uint64) { m.height.Store(height) }

func (m *Manual) Advance(n uint64) { m.height.Add(n) }
