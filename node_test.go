package reactor

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEventNodeVacatePromotesAuxIntoMain(t *testing.T) {
	n := newEventNode(3)
	n.tag = Read
	n.main = eventRecord{handler: func() {}, heapIdx: noHeapIndex, kind: Read}
	n.aux = &eventRecord{handler: func() {}, heapIdx: noHeapIndex, kind: Write}

	rec := n.vacate(Read)
	require.NotNil(t, rec.handler)
	require.Equal(t, Write, n.tag)
	require.Equal(t, Write, n.main.kind)
	require.True(t, n.aux.vacant())
}

func TestEventNodeVacateWithNoAuxResetsTag(t *testing.T) {
	n := newEventNode(3)
	n.tag = Write
	n.main = eventRecord{handler: func() {}, heapIdx: noHeapIndex, kind: Write}

	n.vacate(Write)
	require.Equal(t, noneKind, n.tag)
	require.True(t, n.main.vacant())
}

func TestEventNodeExceptionalIndependentOfMain(t *testing.T) {
	n := newEventNode(3)
	n.tag = Read
	n.main = eventRecord{handler: func() {}, kind: Read, heapIdx: noHeapIndex}
	n.ex = &eventRecord{handler: func() {}, kind: Exceptional, heapIdx: noHeapIndex}

	require.Equal(t, uint32(readMask|exceptionalMask), n.interestMask())
	n.vacate(Exceptional)
	require.Equal(t, uint32(readMask), n.interestMask())
	require.True(t, n.pending(Read))
	require.False(t, n.pending(Exceptional))
}

func TestEventNodeEmpty(t *testing.T) {
	n := newEventNode(3)
	require.True(t, n.empty())
	n.tag = Read
	n.main = eventRecord{handler: func() {}, kind: Read, heapIdx: noHeapIndex}
	require.False(t, n.empty())
}
