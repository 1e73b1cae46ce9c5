// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package unrolled

import (
	"github.com/siderolabs/gen/optional"
	"go.uber.org/zap"
)

// PushFront inserts item at the front of the List.
//
// A new chunk is linked before the head if the head chunk is full.
func (l *List[T]) PushFront(item T) error {
	if err := l.checkItem(item); err != nil {
		return err
	}

	if l.head == nil || l.head.full() {
		c := newChunk[T](l.opt.ChunkCapacity)

		if l.head == nil {
			l.tail = c
		} else {
			c.next = l.head
			l.head.prev = c
		}

		l.head = c
		l.numChunks++

		l.debug("allocated head chunk", zap.Int("chunks", l.numChunks))
	}

	l.head.pushFront(item)
	l.count++

	return nil
}

// PushBack inserts item at the back of the List.
//
// A new chunk is linked after the tail if the tail chunk is full.
func (l *List[T]) PushBack(item T) error {
	if err := l.checkItem(item); err != nil {
		return err
	}

	if l.tail == nil || l.tail.full() {
		c := newChunk[T](l.opt.ChunkCapacity)

		if l.tail == nil {
			l.head = c
		} else {
			c.prev = l.tail
			l.tail.next = c
		}

		l.tail = c
		l.numChunks++

		l.debug("allocated tail chunk", zap.Int("chunks", l.numChunks))
	}

	l.tail.pushBack(item)
	l.count++

	return nil
}

// PopFront removes and returns the first element of the List.
func (l *List[T]) PopFront() (T, error) {
	var zero T

	if err := l.checkNonEmpty(); err != nil {
		return zero, err
	}

	// lazily drop chunks drained by previous calls
	for l.head.empty() && l.head != l.tail {
		l.retireHead()
	}

	item := l.head.popFront()
	l.count--

	if l.opt.Retirement == RetireImmediate && l.head.empty() && l.head != l.tail {
		l.retireHead()
	}

	return item, nil
}

// PopBack removes and returns the last element of the List.
func (l *List[T]) PopBack() (T, error) {
	var zero T

	if err := l.checkNonEmpty(); err != nil {
		return zero, err
	}

	for l.tail.empty() && l.head != l.tail {
		l.retireTail()
	}

	item := l.tail.popBack()
	l.count--

	if l.opt.Retirement == RetireImmediate && l.tail.empty() && l.head != l.tail {
		l.retireTail()
	}

	return item, nil
}

// PeekFront returns the first element of the List without removing it.
func (l *List[T]) PeekFront() (T, error) {
	var zero T

	if err := l.checkNonEmpty(); err != nil {
		return zero, err
	}

	return l.frontChunk().front(), nil
}

// PeekBack returns the last element of the List without removing it.
func (l *List[T]) PeekBack() (T, error) {
	var zero T

	if err := l.checkNonEmpty(); err != nil {
		return zero, err
	}

	return l.backChunk().back(), nil
}

// Front returns the first element of the List, if any.
//
// Front never fails: nil, closed and empty lists report no value.
func (l *List[T]) Front() optional.Optional[T] {
	item, err := l.PeekFront()
	if err != nil {
		return optional.None[T]()
	}

	return optional.Some(item)
}

// Back returns the last element of the List, if any.
func (l *List[T]) Back() optional.Optional[T] {
	item, err := l.PeekBack()
	if err != nil {
		return optional.None[T]()
	}

	return optional.Some(item)
}

func (l *List[T]) checkNonEmpty() error {
	if err := l.check(); err != nil {
		return err
	}

	if l.count == 0 {
		return ErrEmpty
	}

	return nil
}

// frontChunk returns the first non-empty chunk, skipping a drained head awaiting retirement.
//
// frontChunk should be called only on a non-empty List.
func (l *List[T]) frontChunk() *chunk[T] {
	c := l.head
	for c.empty() {
		c = c.next
	}

	return c
}

// backChunk is the mirror of frontChunk.
func (l *List[T]) backChunk() *chunk[T] {
	c := l.tail
	for c.empty() {
		c = c.prev
	}

	return c
}

func (l *List[T]) retireHead() {
	c := l.head

	l.head = c.next
	l.head.prev = nil
	l.numChunks--

	c.release()

	l.debug("retired head chunk", zap.Int("chunks", l.numChunks))
}

func (l *List[T]) retireTail() {
	c := l.tail

	l.tail = c.prev
	l.tail.next = nil
	l.numChunks--

	c.release()

	l.debug("retired tail chunk", zap.Int("chunks", l.numChunks))
}
