package reactor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStatusStringExhaustive(t *testing.T) {
	all := []Status{
		StatusOK, StatusTimeout, StatusCancelled, StatusStopped, StatusInvalid,
		StatusNoEntry, StatusNoMemory, StatusInProgress, StatusSysFail, StatusEOF,
	}
	seen := map[string]bool{}
	for _, s := range all {
		str := s.String()
		require.NotEmpty(t, str, "status %d must format to a non-empty string", s)
		require.False(t, seen[str], "duplicate status string %q", str)
		seen[str] = true
	}
}

func TestStatusOK(t *testing.T) {
	require.True(t, StatusOK.OK())
	for _, s := range []Status{StatusTimeout, StatusCancelled, StatusStopped, StatusInvalid, StatusEOF} {
		require.False(t, s.OK())
	}
}

func TestStatusIsError(t *testing.T) {
	var err error = StatusCancelled
	require.True(t, errors.Is(err, StatusCancelled))
	require.False(t, errors.Is(err, StatusTimeout))
}
