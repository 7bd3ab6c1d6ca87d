package reactor

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDirectoryGetPutDelete(t *testing.T) {
	d := newDirectory()
	_, ok := d.get(3)
	require.False(t, ok)

	n := newEventNode(3)
	d.put(n)
	got, ok := d.get(3)
	require.True(t, ok)
	require.Same(t, n, got)
	require.Equal(t, 1, d.len())

	d.delete(3)
	_, ok = d.get(3)
	require.False(t, ok)
	require.Equal(t, 0, d.len())
}

func TestDirectoryWalkVisitsInInsertionOrder(t *testing.T) {
	d := newDirectory()
	order := []int{5, 2, 9, 1}
	for _, fd := range order {
		d.put(newEventNode(fd))
	}
	var visited []int
	d.walk(func(n *eventNode) { visited = append(visited, n.fd) })
	require.Equal(t, order, visited)
}
