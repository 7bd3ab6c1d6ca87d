package reactor

// Semaphore is a counting semaphore integrated with a Reactor: waiters
// queue FIFO and are posted synchronously, in arrival order, as the
// counter permits.
type Semaphore struct {
	rx      *Reactor
	count   int
	waiters []Handler
}

// NewSemaphore creates a semaphore with the given initial counter value.
func NewSemaphore(rx *Reactor, initial int) *Semaphore {
	return &Semaphore{rx: rx, count: initial}
}

// Wait runs handler once the counter permits: immediately (via a
// synchronous post) if the counter is positive, otherwise it queues
// handler behind any earlier waiters until a matching Signal arrives.
func (s *Semaphore) Wait(handler Handler) Status {
	if s.count > 0 {
		s.count--
		return s.rx.Post(handler)
	}
	s.waiters = append(s.waiters, handler)
	return StatusOK
}

// Signal releases one waiter: the oldest queued handler is posted if
// any are waiting, otherwise the counter is incremented.
func (s *Semaphore) Signal() Status {
	if len(s.waiters) > 0 {
		h := s.waiters[0]
		s.waiters = s.waiters[1:]
		return s.rx.Post(h)
	}
	s.count++
	return StatusOK
}
