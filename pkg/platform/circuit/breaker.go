// Package circuit provides a consecutive-failure circuit breaker for
// dependencies that have an in-process fallback.
//
// After N consecutive primary failures the breaker opens and callers switch
// to their fallback. While open, callers keep probing the primary; after M
// consecutive successes the breaker closes again.
package circuit

import "sync"

// State is the breaker position.
type State int

const (
	StateClosed State = iota
	StateOpen
)

func (s State) String() string {
	if s == StateOpen {
		return "open"
	}
	return "closed"
}

// StateChange reports a transition caused by a Record call.
type StateChange struct {
	Opened bool
	Closed bool
}

// Breaker is safe for concurrent use.
type Breaker struct {
	name             string
	mu               sync.Mutex
	state            State
	failureCount     int
	successCount     int
	failureThreshold int
	successThreshold int
}

// Option configures a Breaker.
type Option func(*Breaker)

// WithFailureThreshold sets the consecutive failures that open the breaker.
func WithFailureThreshold(n int) Option {
	return func(b *Breaker) {
		if n > 0 {
			b.failureThreshold = n
		}
	}
}

// WithSuccessThreshold sets the consecutive successes that close an open breaker.
func WithSuccessThreshold(n int) Option {
	return func(b *Breaker) {
		if n > 0 {
			b.successThreshold = n
		}
	}
}

// New creates a closed breaker. Defaults: open after 5 failures, close after 3 successes.
func New(name string, opts ...Option) *Breaker {
	b := &Breaker{
		name:             name,
		state:            StateClosed,
		failureThreshold: 5,
		successThreshold: 3,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *Breaker) Name() string { return b.name }

func (b *Breaker) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

func (b *Breaker) IsOpen() bool {
	return b.State() == StateOpen
}

// RecordFailure counts a primary failure. useFallback is true when the
// breaker is open after recording.
func (b *Breaker) RecordFailure() (useFallback bool, change StateChange) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failureCount++
	b.successCount = 0
	if b.state == StateOpen {
		return true, StateChange{}
	}
	if b.failureCount >= b.failureThreshold {
		b.state = StateOpen
		return true, StateChange{Opened: true}
	}
	return false, StateChange{}
}

// RecordSuccess counts a primary success. usePrimary is true when the
// breaker is closed after recording.
func (b *Breaker) RecordSuccess() (usePrimary bool, change StateChange) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.state == StateOpen {
		b.successCount++
		if b.successCount >= b.successThreshold {
			b.state = StateClosed
			b.failureCount = 0
			b.successCount = 0
			return true, StateChange{Closed: true}
		}
		return false, StateChange{}
	}
	b.failureCount = 0
	return true, StateChange{}
}

// Reset closes the breaker and clears counters.
func (b *Breaker) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.state = StateClosed
	b.failureCount = 0
	b.successCount = 0
}
