// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package unrolled

// chunk is a fixed-capacity circular buffer holding a contiguous run of list elements.
//
// Logical slot i (0 <= i < occupied) lives at data[(start+i) % len(data)].
type chunk[T any] struct {
	// neighbors in the chain, owned by the List
	prev, next *chunk[T]

	data []T

	// physical index of the logically first element
	start int
	// number of filled slots
	occupied int
}

func newChunk[T any](capacity int) *chunk[T] {
	return &chunk[T]{
		data: make([]T, capacity),
	}
}

func (c *chunk[T]) full() bool {
	return c.occupied == len(c.data)
}

func (c *chunk[T]) empty() bool {
	return c.occupied == 0
}

// index maps logical slot i to the physical index in data.
func (c *chunk[T]) index(i int) int {
	i += c.start
	if i >= len(c.data) {
		i -= len(c.data)
	}

	return i
}

func (c *chunk[T]) pushFront(item T) {
	c.start--
	if c.start < 0 {
		c.start += len(c.data)
	}

	c.data[c.start] = item
	c.occupied++
}

func (c *chunk[T]) pushBack(item T) {
	c.data[c.index(c.occupied)] = item
	c.occupied++
}

func (c *chunk[T]) popFront() T {
	var zero T

	item := c.data[c.start]
	c.data[c.start] = zero

	c.start = c.index(1)
	c.occupied--

	return item
}

func (c *chunk[T]) popBack() T {
	var zero T

	i := c.index(c.occupied - 1)

	item := c.data[i]
	c.data[i] = zero

	c.occupied--

	return item
}

func (c *chunk[T]) front() T {
	return c.data[c.start]
}

func (c *chunk[T]) back() T {
	return c.data[c.index(c.occupied-1)]
}

// release drops the storage and the links, so that neither elements nor neighbors
// are retained through a stale chunk pointer.
func (c *chunk[T]) release() {
	clear(c.data)

	c.data = nil
	c.prev, c.next = nil, nil
	c.start, c.occupied = 0, 0
}
