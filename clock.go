package reactor

import "time"

// clock reports monotonic milliseconds relative to an anchor captured
// once at construction, mirroring the anchor-plus-elapsed-offset idiom
// used for monotonic timing rather than repeatedly querying a named
// clock source.
type clock struct {
	anchor time.Time
}

func newClock() clock {
	return clock{anchor: time.Now()}
}

// nowMS returns the number of milliseconds elapsed since the clock was
// created.
func (c clock) nowMS() int64 {
	return time.Since(c.anchor).Milliseconds()
}
