package reactor

// Metrics tracks plain counters for a Reactor. Unlike the concurrent,
// multi-goroutine metrics this was trimmed from, a single Metrics
// instance is only ever touched from the loop goroutine, so no locking
// is needed.
type Metrics struct {
	Ticks        uint64
	Dispatched   uint64
	DeadlinesHit uint64
	Cancelled    uint64
	PollErrors   uint64
}

func newMetrics() *Metrics {
	return &Metrics{}
}
