package graph

import "github.com/hupe1980/provgraph/core"

// PathCounter hands out path ids. It holds the next unused id.
type PathCounter struct {
	next core.PathID
}

// NewPathCounter returns a counter whose first id is start.
// A start of 0 is treated as core.FirstPathID.
func NewPathCounter(start core.PathID) *PathCounter {
	if start == 0 {
		start = core.FirstPathID
	}
	return &PathCounter{next: start}
}

// Peek returns the next unused id without consuming it.
func (c *PathCounter) Peek() core.PathID { return c.next }

// Next consumes and returns the next unused id.
func (c *PathCounter) Next() core.PathID {
	id := c.next
	c.next++
	return id
}

// Set moves the counter to id. Ids of 0 are ignored.
//
// Set may move the counter backwards; Graph guards the invariant on its own
// by calling Reserve for every id it stores.
func (c *PathCounter) Set(id core.PathID) {
	if id == 0 {
		return
	}
	c.next = id
}

// Reserve makes sure id will never be handed out again.
func (c *PathCounter) Reserve(id core.PathID) {
	if id >= c.next {
		c.next = id + 1
	}
}
