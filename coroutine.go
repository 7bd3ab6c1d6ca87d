package reactor

// coroDone is the resume label meaning the coroutine has finished.
const coroDone = -1

// Coro threads a small integer resume label across handler invocations,
// the explicit-state-machine equivalent of the label-based await
// idiom: a handler body switches on Label(), calls Resume with the
// label to arrive at on its next invocation, and returns. The reactor
// has no special knowledge of Coro; it is ordinary captured state.
type Coro struct {
	label int
}

// Label returns the resume point the coroutine is at.
func (c *Coro) Label() int { return c.label }

// Resume sets the label the coroutine will resume at on its next
// invocation.
func (c *Coro) Resume(label int) { c.label = label }

// Finish marks the coroutine as done; Done reports true thereafter.
func (c *Coro) Finish() { c.label = coroDone }

// Done reports whether Finish has been called.
func (c *Coro) Done() bool { return c.label == coroDone }
