// Package reactor provides a single-threaded asynchronous I/O runtime
// for POSIX-like systems: a reactor that multiplexes file descriptors,
// dispatches completion handlers, schedules delayed and timed
// callbacks, and supports explicit cancellation and graceful shutdown.
//
// # Architecture
//
// The reactor is built around a [Reactor] core that owns four
// containers kept mutually consistent by the enqueue/dequeue/cleanup
// protocol: the event directory (fd → node), the poll vector passed to
// the multiplexer, the timed-event heap, and the delayed-post heap. A
// synchronous post queue lets handlers schedule work to run before the
// next poll wait without touching the multiplexer at all.
//
// Higher-level helpers ([AsyncReadSome], [AsyncWriteSome], [AsyncRead],
// [AsyncWrite], [AsyncAccept], [AsyncConnect], [Semaphore],
// [NewTaskGroup], [Coro]) are thin collaborators: the I/O helpers are
// built on [Reactor.Sched], [Semaphore] on [Reactor.Post], and
// [NewTaskGroup] and [Coro] make no reactor call at all. None of them
// touch the reactor's internals directly.
//
// # Platform support
//
// Descriptor multiplexing uses level-triggered poll(2) via
// golang.org/x/sys/unix, available on Linux and Darwin.
//
// # Thread safety
//
// The reactor is strictly single-threaded cooperative: exactly one
// goroutine ever runs [Reactor.Run], and handlers run to completion
// without preemption. [Reactor.Post], [Reactor.Sched],
// [Reactor.SchedTimeout], [Reactor.Cancel], [Reactor.Stop] and
// [Reactor.PostDelay] are only safe to call from that same goroutine —
// typically from within a handler. Cross-goroutine wakeup is out of
// scope; callers that need it should post through their own
// synchronization primitive into a handler that then calls the
// reactor.
//
// # Usage
//
//	rx := reactor.New()
//	var status reactor.Status
//	if st := rx.Sched(fd, reactor.Read, func() {
//	    fmt.Println("fd is readable:", status)
//	}, &status); !st.OK() {
//	    log.Fatal(st)
//	}
//	if res := rx.Run(); !res.OK() {
//	    log.Fatal(res)
//	}
//
// # Error taxonomy
//
// Every scheduling, lifecycle and I/O helper operation in this package
// returns a [Status] drawn from one closed taxonomy (ok/timeout/cancelled/stopped/invalid/no-entry/
// no-memory/in-progress/sysfail/eof). Enqueue-time errors are returned
// synchronously; completion-time errors are written to the caller's
// status slot immediately before its handler is invoked.
package reactor
