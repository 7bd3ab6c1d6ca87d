package reactor

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSemaphoreWaitRunsImmediatelyWhenPositive(t *testing.T) {
	rx := New()
	sem := NewSemaphore(rx, 1)
	var fired bool
	require.Equal(t, StatusOK, sem.Wait(func() { fired = true }))
	rx.drainPosts()
	require.True(t, fired)
}

func TestSemaphoreWaitersReleaseInFIFOOrder(t *testing.T) {
	rx := New()
	sem := NewSemaphore(rx, 0)
	var order []int
	require.Equal(t, StatusOK, sem.Wait(func() { order = append(order, 1) }))
	require.Equal(t, StatusOK, sem.Wait(func() { order = append(order, 2) }))
	require.Equal(t, StatusOK, sem.Wait(func() { order = append(order, 3) }))
	rx.drainPosts()
	require.Empty(t, order, "no waiter runs before a matching Signal")

	require.Equal(t, StatusOK, sem.Signal())
	rx.drainPosts()
	require.Equal(t, []int{1}, order)

	require.Equal(t, StatusOK, sem.Signal())
	require.Equal(t, StatusOK, sem.Signal())
	rx.drainPosts()
	require.Equal(t, []int{1, 2, 3}, order)
}

func TestSemaphoreSignalWithNoWaitersIncrementsCounter(t *testing.T) {
	rx := New()
	sem := NewSemaphore(rx, 0)
	require.Equal(t, StatusOK, sem.Signal())
	var fired bool
	require.Equal(t, StatusOK, sem.Wait(func() { fired = true }))
	rx.drainPosts()
	require.True(t, fired)
}
