package reactor

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// directory is the ordered map keyed by descriptor. The source uses a
// red-black tree; this uses an insertion-ordered hash map instead,
// which gives O(1) amortised Get/Set/Delete — at least as good as the
// tree's O(log N) — since nothing here depends on key-sorted iteration,
// only on poll-vector order for dispatch.
type directory struct {
	nodes *orderedmap.OrderedMap[int, *eventNode]
}

func newDirectory() *directory {
	return &directory{nodes: orderedmap.New[int, *eventNode]()}
}

func (d *directory) get(fd int) (*eventNode, bool) {
	return d.nodes.Get(fd)
}

func (d *directory) put(n *eventNode) {
	d.nodes.Set(n.fd, n)
}

func (d *directory) delete(fd int) {
	d.nodes.Delete(fd)
}

func (d *directory) len() int {
	return d.nodes.Len()
}

// walk visits every node. fn must not mutate the directory.
func (d *directory) walk(fn func(n *eventNode)) {
	for pair := d.nodes.Oldest(); pair != nil; pair = pair.Next() {
		fn(pair.Value)
	}
}
