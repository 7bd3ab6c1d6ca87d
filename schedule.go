//go:build linux || darwin

package reactor

// Sched enqueues handler to run once fd becomes ready for kind. status,
// if non-nil, receives the completion status immediately before handler
// runs.
func (rx *Reactor) Sched(fd int, kind Kind, handler Handler, status *Status) Status {
	return rx.schedInternal(fd, kind, handler, status, false, 0, nil)
}

// SchedTimeout is Sched with an attached deadline: if fd does not
// become ready for kind within ms milliseconds, handler runs with
// status timeout and *remaining is set to 0. remaining, if non-nil,
// also receives the positive time left when the operation completes
// early.
func (rx *Reactor) SchedTimeout(fd int, kind Kind, handler Handler, status *Status, remaining *int64, ms int64) Status {
	return rx.schedInternal(fd, kind, handler, status, true, ms, remaining)
}

func (rx *Reactor) schedInternal(fd int, kind Kind, handler Handler, status *Status, timed bool, ms int64, remaining *int64) Status {
	if rx.st != stateReady && rx.st != stateRunning {
		return StatusStopped
	}
	if handler == nil || kind == noneKind || kind > Exceptional {
		return StatusInvalid
	}
	node, exists := rx.dir.get(fd)
	if !exists {
		node = newEventNode(fd)
	}
	if node.pending(kind) {
		return StatusInProgress
	}
	rec := rx.place(node, kind)
	*rec = eventRecord{handler: handler, status: status, heapIdx: noHeapIndex, kind: kind}
	if !exists {
		node.pollIdx = rx.poll.Add(fd, 0)
		rx.dir.put(node)
	}
	rx.updatePollMask(node)
	if timed {
		now := rx.clock.nowMS()
		rx.timed.Push(timedEvent{deadline: now + ms, remaining: remaining, node: node, kind: kind})
	}
	rx.logger.Log(LogEntry{Level: LevelDebug, Message: "enqueue", FD: fd, Kind: kind, Status: StatusOK})
	return StatusOK
}

// place applies the inline-plus-lazy storage policy: it returns the
// record to populate for kind on n, allocating or reusing an auxiliary/
// exceptional slot as needed. A vacated slot of the other shape is
// stolen and repurposed; a live one never is.
func (rx *Reactor) place(n *eventNode, kind Kind) *eventRecord {
	if kind == Exceptional {
		if n.ex != nil {
			return n.ex
		}
		if n.aux != nil && n.aux.vacant() {
			n.ex = n.aux
			n.aux = nil
			return n.ex
		}
		n.ex = &eventRecord{heapIdx: noHeapIndex}
		return n.ex
	}
	if n.tag == noneKind {
		n.tag = kind
		return &n.main
	}
	if n.tag == kind {
		return &n.main
	}
	if n.aux != nil {
		return n.aux
	}
	if n.ex != nil && n.ex.vacant() {
		n.aux = n.ex
		n.ex = nil
		return n.aux
	}
	n.aux = &eventRecord{heapIdx: noHeapIndex}
	return n.aux
}

func (rx *Reactor) updatePollMask(n *eventNode) {
	entry := rx.poll.At(n.pollIdx)
	entry.Events = int16(n.interestMask())
}

// Cancel removes the pending operation for (fd, kind), invoking its
// handler synchronously with status cancelled. Requires the service to
// be running.
func (rx *Reactor) Cancel(fd int, kind Kind) Status {
	if rx.st != stateRunning {
		return StatusInvalid
	}
	node, ok := rx.dir.get(fd)
	if !ok {
		return StatusNoEntry
	}
	if !node.pending(kind) {
		return StatusNoEntry
	}
	now := rx.clock.nowMS()
	h := rx.dequeue(node, kind, now, StatusCancelled)
	rx.metrics.Cancelled++
	if h != nil {
		h()
	}
	if node.empty() {
		rx.cleanup(node)
	}
	return StatusOK
}

// Post appends handler to the synchronous post queue, to run before the
// next poll wait.
func (rx *Reactor) Post(handler Handler) Status {
	if rx.st != stateRunning && rx.st != stateReady {
		return StatusStopped
	}
	if handler == nil {
		return StatusInvalid
	}
	rx.posts.Push(handler)
	return StatusOK
}

// PostDelay schedules handler to run after ms milliseconds, independent
// of any descriptor.
func (rx *Reactor) PostDelay(handler Handler, status *Status, ms int64) Status {
	if handler == nil || ms < 0 {
		return StatusInvalid
	}
	if rx.st == stateStopping || rx.st == stateDone {
		return StatusStopped
	}
	now := rx.clock.nowMS()
	rx.delayed.Push(delayedPost{deadline: now + ms, handler: handler, status: status})
	return StatusOK
}
