//go:build linux || darwin

package reactor

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestAsyncAcceptAndConnectOverUnixSocket(t *testing.T) {
	sockPath := filepath.Join(t.TempDir(), "reactor-test.sock")

	listenFd, err := unix.Socket(unix.AF_UNIX, unix.SOCK_STREAM, 0)
	require.NoError(t, err)
	t.Cleanup(func() { unix.Close(listenFd) })
	require.NoError(t, unix.Bind(listenFd, &unix.SockaddrUnix{Name: sockPath}))
	require.NoError(t, unix.Listen(listenFd, 1))
	require.NoError(t, unix.SetNonblock(listenFd, true))

	clientFd, err := unix.Socket(unix.AF_UNIX, unix.SOCK_STREAM, 0)
	require.NoError(t, err)
	t.Cleanup(func() { unix.Close(clientFd) })

	rx := New()
	var acceptedFd int
	var acceptStatus, connectStatus Status
	var accepted, connected bool

	require.Equal(t, StatusOK, AsyncAccept(rx, listenFd, func(fd int, st Status) {
		acceptedFd, acceptStatus, accepted = fd, st, true
		if fd >= 0 {
			t.Cleanup(func() { unix.Close(fd) })
		}
		if connected {
			rx.Stop()
		}
	}))
	require.Equal(t, StatusOK, AsyncConnect(rx, clientFd, &unix.SockaddrUnix{Name: sockPath}, func(st Status) {
		connectStatus, connected = st, true
		if accepted {
			rx.Stop()
		}
	}))

	res := rx.Run()
	require.Equal(t, StatusStopped, res)
	require.Equal(t, StatusOK, acceptStatus)
	require.Equal(t, StatusOK, connectStatus)
	require.GreaterOrEqual(t, acceptedFd, 0)
}
