//go:build linux || darwin

package reactor

import (
	"time"

	"golang.org/x/sys/unix"
)

// Reactor is the event service: the loop, the lifecycle state machine,
// and the enqueue/dequeue/cleanup protocol that keeps the poll vector,
// the event directory, and the timed-event heap mutually consistent.
type Reactor struct {
	st      state
	clock   clock
	dir     *directory
	poll    *pollVector
	timed   *indexedHeap[timedEvent]
	delayed *indexedHeap[delayedPost]
	posts   *postRing
	logger  Logger
	metrics *Metrics
}

// timedEvent is a timed-event heap record: a deadline, a pointer to the
// caller's "remaining" slot, and a back-pointer to the owning node and
// kind so the swap/index callback can keep the record's heapIdx in
// sync.
type timedEvent struct {
	deadline  int64
	remaining *int64
	node      *eventNode
	kind      Kind
}

// delayedPost is a delayed-post heap record: independent of the event
// directory, so it carries no back-index.
type delayedPost struct {
	deadline int64
	handler  Handler
	status   *Status
}

// New creates a reactor in the ready state with empty containers.
func New(opts ...Option) *Reactor {
	cfg := resolveOptions(opts)
	rx := &Reactor{
		st:      stateReady,
		clock:   newClock(),
		dir:     newDirectory(),
		poll:    newPollVector(cfg.pollCapacity),
		posts:   newPostRing(cfg.postCapacity),
		logger:  cfg.logger,
		metrics: newMetrics(),
	}
	rx.timed = newIndexedHeap(
		func(a, b *timedEvent) bool { return a.deadline < b.deadline },
		func(item *timedEvent, i int) {
			if rec := item.node.recordFor(item.kind); rec != nil {
				rec.heapIdx = i
			}
		},
	)
	rx.delayed = newIndexedHeap(
		func(a, b *delayedPost) bool { return a.deadline < b.deadline },
		func(item *delayedPost, i int) {},
	)
	return rx
}

// Metrics returns the reactor's plain counters.
func (rx *Reactor) Metrics() *Metrics { return rx.metrics }

// Destroy releases every node, heap entry, and buffer. The caller must
// not call Destroy while Run is executing.
func (rx *Reactor) Destroy() {
	rx.dir = newDirectory()
	rx.poll = newPollVector(0)
	rx.timed.items = nil
	rx.delayed.items = nil
	rx.posts = newPostRing(1)
}

// Run executes the main loop until every container is empty or the
// service is stopped. It returns StatusInvalid if the service is done,
// StatusInProgress if already running or stopping, StatusStopped if a
// stop was requested during the run, or StatusOK otherwise.
func (rx *Reactor) Run() Status {
	switch rx.st {
	case stateDone:
		return StatusInvalid
	case stateRunning, stateStopping:
		return StatusInProgress
	}
	rx.st = stateRunning
	for rx.poll.Len() > 0 || rx.delayed.Len() > 0 || rx.posts.Len() > 0 {
		rx.drainPosts()
		if rx.st == stateStopping {
			rx.stopDrain()
			break
		}
		if rx.poll.Len() == 0 && rx.delayed.Len() == 0 {
			continue
		}
		rx.tick()
	}
	result := StatusOK
	if rx.st == stateStopping {
		result = StatusStopped
	}
	rx.st = stateDone
	return result
}

// Stop requests a graceful stop. Only valid while running.
func (rx *Reactor) Stop() Status {
	switch rx.st {
	case stateRunning:
		rx.st = stateStopping
		rx.logger.Log(LogEntry{Level: LevelInfo, Message: "stop requested"})
		return StatusOK
	case stateStopping:
		return StatusInProgress
	default:
		return StatusNoEntry
	}
}

// Reset returns a done (or already-ready) service to the ready state.
func (rx *Reactor) Reset() Status {
	switch rx.st {
	case stateRunning, stateStopping:
		return StatusInProgress
	default:
		rx.st = stateReady
		return StatusOK
	}
}

// drainPosts runs every synchronous post in FIFO order, including any
// further posts enqueued by those handlers, until the ring is empty.
func (rx *Reactor) drainPosts() {
	for !rx.posts.Empty() {
		h := rx.posts.Pop()
		if h != nil {
			h()
		}
	}
}

// tick performs one wait-and-dispatch cycle of the main loop.
func (rx *Reactor) tick() {
	deadline, isTimed, have := rx.nextDeadline()
	timeoutMs := -1
	if have {
		now := rx.clock.nowMS()
		timeoutMs = int(deadline - now)
		if timeoutMs < 0 {
			timeoutMs = 0
		}
	}
	t0 := time.Now()
	n, err := rx.poll.Poll(timeoutMs)
	waited := time.Since(t0)
	rx.metrics.Ticks++
	if err != nil {
		rx.logger.Log(LogEntry{Level: LevelWarn, Message: "poll failed", Err: err})
		rx.metrics.PollErrors++
		rx.st = stateStopping
		return
	}
	if n == 0 {
		if have {
			rx.fireEarliest(isTimed)
		}
		return
	}
	if have && waited.Milliseconds() >= int64(timeoutMs) {
		fireAlso := !isTimed || !rx.earliestTimedKindReady()
		if fireAlso {
			rx.fireEarliest(isTimed)
		}
	}
	rx.dispatchReady()
}

// nextDeadline returns the minimum of the timed-event heap top and the
// delayed-post heap top, and which one it was.
func (rx *Reactor) nextDeadline() (deadline int64, isTimed bool, ok bool) {
	te := rx.timed.Top()
	de := rx.delayed.Top()
	switch {
	case te == nil && de == nil:
		return 0, false, false
	case te == nil:
		return de.deadline, false, true
	case de == nil:
		return te.deadline, true, true
	case te.deadline <= de.deadline:
		return te.deadline, true, true
	default:
		return de.deadline, false, true
	}
}

func (rx *Reactor) earliestTimedKindReady() bool {
	te := rx.timed.Top()
	if te == nil {
		return false
	}
	entry := rx.poll.At(te.node.pollIdx)
	return kindReadyBits(entry.Revents, te.kind)
}

func kindReadyBits(revents int16, kind Kind) bool {
	switch kind {
	case Read:
		return revents&(readReadyMask|unix.POLLERR) != 0
	case Write:
		return revents&writeReadyMask != 0
	case Exceptional:
		return revents&exceptionalMask != 0
	default:
		return false
	}
}

// fireEarliest fires the earliest deadline picked by nextDeadline.
func (rx *Reactor) fireEarliest(isTimed bool) {
	if !isTimed {
		post := rx.delayed.Pop()
		if post.status != nil {
			*post.status = StatusOK
		}
		rx.logger.Log(LogEntry{Level: LevelDebug, Message: "delayed post fired", Status: StatusOK})
		if post.handler != nil {
			post.handler()
		}
		return
	}
	te := *rx.timed.Top()
	now := rx.clock.nowMS()
	handler := rx.dequeue(te.node, te.kind, now, StatusTimeout)
	rx.metrics.DeadlinesHit++
	if te.node.empty() {
		rx.cleanup(te.node)
	}
	if handler != nil {
		handler()
	}
}

// dispatchReady iterates the poll vector by index, firing every kind
// signalled on each non-zero ready mask in fixed order: exceptional,
// readable, writable.
func (rx *Reactor) dispatchReady() {
	now := rx.clock.nowMS()
	i := 0
	for i < rx.poll.Len() {
		entry := rx.poll.At(i)
		revents := entry.Revents
		if revents == 0 {
			i++
			continue
		}
		fd := int(entry.Fd)
		entry.Revents = 0
		node, ok := rx.dir.get(fd)
		if !ok {
			i++
			continue
		}
		if int(revents)&unix.POLLNVAL != 0 {
			rx.fireAllInvalid(node, now)
		} else {
			if revents&unix.POLLPRI != 0 {
				rx.fireKindIfPending(node, Exceptional, now, StatusOK)
			}
			readPending := node.pending(Read)
			writePending := node.pending(Write)
			readReady := revents&readReadyMask != 0 || (revents == unix.POLLERR && readPending && writePending)
			if readReady {
				rx.fireKindIfPending(node, Read, now, StatusOK)
			}
			if revents&writeReadyMask != 0 {
				rx.fireKindIfPending(node, Write, now, StatusOK)
			}
		}
		if node.empty() {
			rx.cleanup(node)
		} else {
			i++
		}
	}
}

func (rx *Reactor) fireAllInvalid(n *eventNode, now int64) {
	for _, kind := range [3]Kind{Exceptional, Read, Write} {
		if !n.pending(kind) {
			continue
		}
		h := rx.dequeue(n, kind, now, StatusInvalid)
		if h != nil {
			h()
		}
	}
}

func (rx *Reactor) fireKindIfPending(n *eventNode, kind Kind, now int64, status Status) {
	if !n.pending(kind) {
		return
	}
	h := rx.dequeue(n, kind, now, status)
	rx.metrics.Dispatched++
	if h != nil {
		h()
	}
}

// dequeue implements the dequeue protocol: locate and vacate the
// record, remove any timed-heap entry (writing the remaining time),
// clear the kind's poll-vector interest bits, write the status, and
// return the handler.
func (rx *Reactor) dequeue(n *eventNode, kind Kind, now int64, status Status) Handler {
	rec := n.vacate(kind)
	if rec.heapIdx != noHeapIndex {
		entry := rx.timed.At(rec.heapIdx)
		if entry.remaining != nil {
			*entry.remaining = maxInt64(0, entry.deadline-now)
		}
		rx.timed.RemoveAt(rec.heapIdx)
	}
	rx.clearPollBits(n, kind)
	if rec.status != nil {
		*rec.status = status
	}
	rx.logger.Log(LogEntry{Level: LevelDebug, Message: "dequeue", FD: n.fd, Kind: kind, Status: status})
	return rec.handler
}

func (rx *Reactor) clearPollBits(n *eventNode, kind Kind) {
	entry := rx.poll.At(n.pollIdx)
	var clearBits uint32
	switch kind {
	case Read:
		clearBits = readClearMask
	case Write:
		clearBits = writeClearMask
	case Exceptional:
		clearBits = exceptionalClearMask
	}
	entry.Events &^= int16(clearBits)
	if n.tag != Read && n.tag != Write {
		entry.Events &^= int16(unix.POLLERR)
	}
}

// cleanup extracts n from the directory and unordered-removes its
// poll-vector entry, fixing up whichever node moved into n's old slot.
func (rx *Reactor) cleanup(n *eventNode) {
	movedFd, moved := rx.poll.RemoveSwap(n.pollIdx)
	if moved {
		if movedNode, ok := rx.dir.get(movedFd); ok {
			movedNode.pollIdx = n.pollIdx
		}
	}
	rx.dir.delete(n.fd)
	rx.logger.Log(LogEntry{Level: LevelDebug, Message: "cleanup", FD: n.fd})
}

// stopDrain invokes every pending handler exactly once with status
// stopped, then frees every container.
func (rx *Reactor) stopDrain() {
	rx.logger.Log(LogEntry{Level: LevelWarn, Message: "stop drain", Status: StatusStopped})
	for rx.delayed.Len() > 0 {
		post := rx.delayed.Pop()
		if post.status != nil {
			*post.status = StatusStopped
		}
		if post.handler != nil {
			post.handler()
		}
	}
	now := rx.clock.nowMS()
	rx.dir.walk(func(n *eventNode) {
		rx.drainNode(n, now)
	})
	rx.timed.items = nil
	rx.poll = newPollVector(0)
	rx.dir = newDirectory()
}

func (rx *Reactor) drainNode(n *eventNode, now int64) {
	fire := func(rec *eventRecord) {
		if rec == nil || rec.vacant() {
			return
		}
		if rec.heapIdx != noHeapIndex {
			entry := rx.timed.At(rec.heapIdx)
			if entry.remaining != nil {
				*entry.remaining = maxInt64(0, entry.deadline-now)
			}
		}
		if rec.status != nil {
			*rec.status = StatusStopped
		}
		h := rec.handler
		if h != nil {
			h()
		}
	}
	fire(n.ex)
	if n.tag != noneKind {
		fire(&n.main)
	}
	fire(n.aux)
}

func maxInt64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}
