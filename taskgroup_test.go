package reactor

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTaskGroupFiresOnlyAfterAllCompletions(t *testing.T) {
	var done bool
	tg := NewTaskGroup(3, func() { done = true })
	tg()
	require.False(t, done)
	tg()
	require.False(t, done)
	tg()
	require.True(t, done)
}

func TestTaskGroupWithNilDoneDoesNotPanic(t *testing.T) {
	tg := NewTaskGroup(1, nil)
	require.NotPanics(t, func() { tg() })
}
