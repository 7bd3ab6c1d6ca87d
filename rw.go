//go:build linux || darwin

package reactor

import "golang.org/x/sys/unix"

// AsyncReadSome schedules a single read attempt on fd once it is
// readable: done is called with whatever byte count the one underlying
// read(2) call produced (possibly less than len(buf)), StatusEOF on
// end of stream, or StatusSysFail on error.
func AsyncReadSome(rx *Reactor, fd int, buf []byte, done func(n int, status Status)) Status {
	return rx.Sched(fd, Read, func() {
		n, err := unix.Read(fd, buf)
		switch {
		case err != nil:
			done(0, StatusSysFail)
		case n == 0:
			done(0, StatusEOF)
		default:
			done(n, StatusOK)
		}
	}, nil)
}

// AsyncWriteSome is AsyncReadSome's write counterpart: a single
// write(2) attempt once fd is writable.
func AsyncWriteSome(rx *Reactor, fd int, buf []byte, done func(n int, status Status)) Status {
	return rx.Sched(fd, Write, func() {
		n, err := unix.Write(fd, buf)
		if err != nil {
			done(0, StatusSysFail)
			return
		}
		done(n, StatusOK)
	}, nil)
}

// AsyncRead reschedules itself until exactly len(buf) bytes have been
// read, end of stream is reached, or a read fails — unlike
// AsyncReadSome, which accepts whatever one attempt transfers.
func AsyncRead(rx *Reactor, fd int, buf []byte, done func(n int, status Status)) Status {
	var total int
	var attempt Handler
	attempt = func() {
		n, err := unix.Read(fd, buf[total:])
		if err != nil {
			done(total, StatusSysFail)
			return
		}
		if n == 0 {
			done(total, StatusEOF)
			return
		}
		total += n
		if total >= len(buf) {
			done(total, StatusOK)
			return
		}
		if st := rx.Sched(fd, Read, attempt, nil); !st.OK() {
			done(total, st)
		}
	}
	return rx.Sched(fd, Read, attempt, nil)
}

// AsyncWrite is AsyncRead's write counterpart: it loops until exactly
// len(buf) bytes have been written or a write fails.
func AsyncWrite(rx *Reactor, fd int, buf []byte, done func(n int, status Status)) Status {
	var total int
	var attempt Handler
	attempt = func() {
		n, err := unix.Write(fd, buf[total:])
		if err != nil {
			done(total, StatusSysFail)
			return
		}
		total += n
		if total >= len(buf) {
			done(total, StatusOK)
			return
		}
		if st := rx.Sched(fd, Write, attempt, nil); !st.OK() {
			done(total, st)
		}
	}
	return rx.Sched(fd, Write, attempt, nil)
}
