//go:build linux || darwin

package reactor

import (
	"golang.org/x/sys/unix"
)

// Poll bit masks, named exactly as the data model calls for. Enqueue
// uses the wider per-kind mask (including POLLERR for read/write);
// dequeue clears only the narrower mask, leaving POLLERR in place
// unless both read and write are being cleared together.
const (
	readMask        = unix.POLLIN | unix.POLLHUP | unix.POLLRDNORM | unix.POLLRDBAND | unix.POLLERR
	writeMask       = unix.POLLOUT | unix.POLLWRNORM | unix.POLLWRBAND | unix.POLLERR
	exceptionalMask = unix.POLLPRI

	readClearMask        = unix.POLLIN | unix.POLLHUP | unix.POLLRDNORM | unix.POLLRDBAND
	writeClearMask       = unix.POLLOUT | unix.POLLWRNORM | unix.POLLWRBAND
	exceptionalClearMask = unix.POLLPRI

	readReadyMask  = unix.POLLIN | unix.POLLHUP | unix.POLLRDBAND | unix.POLLRDNORM
	writeReadyMask = unix.POLLOUT | unix.POLLWRNORM | unix.POLLWRBAND
)

// pollVector is the growable contiguous sequence of (descriptor,
// interest, ready) triples passed to poll(2). Removal is unordered:
// the last entry is swapped into the vacated slot.
type pollVector struct {
	fds []unix.PollFd
}

func newPollVector(capacity int) *pollVector {
	return &pollVector{fds: make([]unix.PollFd, 0, capacity)}
}

func (v *pollVector) Len() int { return len(v.fds) }

// Add appends a new entry and returns its index.
func (v *pollVector) Add(fd int, events uint32) int {
	v.fds = append(v.fds, unix.PollFd{Fd: int32(fd), Events: int16(events)})
	return len(v.fds) - 1
}

func (v *pollVector) At(i int) *unix.PollFd { return &v.fds[i] }

// RemoveSwap removes the entry at i by swapping the last entry into its
// place (unless i is already last) and shrinking the slice by one. It
// reports the descriptor of the entry that moved into i, and whether a
// move actually happened (false when i was the last element).
func (v *pollVector) RemoveSwap(i int) (movedFd int, moved bool) {
	last := len(v.fds) - 1
	if i != last {
		v.fds[i] = v.fds[last]
		movedFd = int(v.fds[i].Fd)
		moved = true
	}
	v.fds = v.fds[:last]
	return movedFd, moved
}

// Poll waits up to timeoutMs (negative means indefinitely) for any
// descriptor to become ready. It returns the number of ready
// descriptors, or an error if the underlying syscall failed for a
// reason other than interruption.
func (v *pollVector) Poll(timeoutMs int) (int, error) {
	for {
		n, err := unix.Poll(v.fds, timeoutMs)
		if err == unix.EINTR {
			continue
		}
		return n, err
	}
}
