package clock

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSequence(t *testing.T) {
	s := NewSequence(10)
	assert.Equal(t, uint64(11), s.Height())
	assert.Equal(t, uint64(12), s.Height())
}

func TestSequence_ConcurrentReadsAreDistinct(t *testing.T) {
	s := NewSequence(0)
	seen := make(chan uint64, 100)
	var wg sync.WaitGroup
	for range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			seen <- s.Height()
		}()
	}
	wg.Wait()
	close(seen)

	unique := map[uint64]bool{}
	for h := range seen {
		unique[h] = true
	}
	assert.Len(t, unique, 100)
}

func TestManual(t *testing.T) {
	m := NewManual(5)
	assert.Equal(t, uint64(5), m.Height())
	assert.Equal(t, uint64(5), m.Height())
	m.Advance(3)
	assert.Equal(t, uint64(8), m.Height())
	m.Set(1)
	assert.Equal(t, uint64(1), m.Height())
}
