package host

import "time"

// maxCatchUp bounds the ticks run for one long frame.
const maxCatchUp = 10

// Ticker converts frame time into fixed-rate host ticks.
type Ticker struct {
	step time.Duration
	acc  time.Duration
}

// NewTicker returns a ticker firing rate times per second. rate <= 0 means 20.
func NewTicker(rate int) *Ticker {
	if rate <= 0 {
		rate = 20
	}
	return &Ticker{step: time.Second / time.Duration(rate)}
}

// Step returns the tick period.
func (t *Ticker) Step() time.Duration { return t.step }

// Advance adds dt and returns how many ticks are due. Time beyond maxCatchUp
// ticks is dropped.
func (t *Ticker) Advance(dt time.Duration) int {
	t.acc += dt
	n := int(t.acc / t.step)
	t.acc -= time.Duration(n) * t.step
	if n > maxCatchUp {
		n = maxCatchUp
		t.acc = 0
	}
	return n
}

// Run advances by dt and dispatches the due ticks to b.
func (t *Ticker) Run(b *Bridge, dt time.Duration) {
	for range t.Advance(dt) {
		b.OnTick()
	}
}
