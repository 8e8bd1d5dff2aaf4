package translate

import (
	"math"
	"time"
)

const (
	backoffFloor  = 200 * time.Millisecond
	backoffFactor = 1.5
)

// backoffState carries the delay for one per-mirror retry sequence. Each
// next() yields the current delay and grows it by backoffFactor, rounded to
// whole milliseconds.
type backoffState struct {
	delay time.Duration
}

func newBackoffState(base time.Duration) *backoffState {
	if base < backoffFloor {
		base = backoffFloor
	}
	return &backoffState{delay: base}
}

func (b *backoffState) next() time.Duration {
	delay := b.delay
	grownMs := math.Round(float64(b.delay.Milliseconds()) * backoffFactor)
	b.delay = time.Duration(grownMs) * time.Millisecond
	return delay
}
