//go:build linux || darwin

package reactor

import "golang.org/x/sys/unix"

// AsyncAccept schedules a readable wait on listenFd and accepts one
// connection once it fires. The accepted socket is returned
// non-blocking and close-on-exec.
func AsyncAccept(rx *Reactor, listenFd int, done func(connFd int, status Status)) Status {
	return rx.Sched(listenFd, Read, func() {
		connFd, _, err := unix.Accept4(listenFd, unix.SOCK_NONBLOCK|unix.SOCK_CLOEXEC)
		if err != nil {
			done(-1, StatusSysFail)
			return
		}
		done(connFd, StatusOK)
	}, nil)
}

// AsyncConnect sets fd non-blocking and initiates a connect to addr. A
// connect that completes immediately invokes done synchronously;
// otherwise a writable wait is scheduled and completion is resolved via
// SO_ERROR once fd becomes writable.
func AsyncConnect(rx *Reactor, fd int, addr unix.Sockaddr, done func(status Status)) Status {
	if err := unix.SetNonblock(fd, true); err != nil {
		done(StatusSysFail)
		return StatusSysFail
	}
	err := unix.Connect(fd, addr)
	if err == nil {
		done(StatusOK)
		return StatusOK
	}
	if err != unix.EINPROGRESS {
		done(StatusSysFail)
		return StatusSysFail
	}
	return rx.Sched(fd, Write, func() {
		errno, gerr := unix.GetsockoptInt(fd, unix.SOL_SOCKET, unix.SO_ERROR)
		if gerr != nil || errno != 0 {
			done(StatusSysFail)
			return
		}
		done(StatusOK)
	}, nil)
}
