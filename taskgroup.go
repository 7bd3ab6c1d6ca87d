package reactor

// NewTaskGroup returns a handler that counts down from n and invokes
// done after it has itself been invoked n times. It is the fan-in
// combinator used to join several independently scheduled operations
// into a single completion.
func NewTaskGroup(n int, done Handler) Handler {
	remaining := n
	return func() {
		remaining--
		if remaining == 0 && done != nil {
			done()
		}
	}
}
