// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package unrolled provides a double-ended sequence built from a chain of fixed-capacity chunks.
//
// Each chunk is a small circular buffer, so pushes and pops at either end are O(1)
// amortized without allocating per element, while positional access walks the chain.
package unrolled

import (
	"fmt"
	"reflect"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// List implements an unrolled doubly linked list with stack, queue and deque semantics.
//
// List is not safe for concurrent use: callers sharing a List between goroutines
// should serialize access externally.
type List[T any] struct {
	// chunk chain, head.prev == nil, tail.next == nil
	head, tail *chunk[T]

	// list options
	opt Options

	// number of elements across all chunks
	count int

	// number of chunks linked
	numChunks int

	// kind of T when T can hold nil, used to reject nil items
	nilKind reflect.Kind
	nilable bool

	closed bool
}

// New creates an empty List with specified options.
func New[T any](opts ...OptionFunc) (*List[T], error) {
	l := &List[T]{
		opt: defaultOptions(),
	}

	for _, o := range opts {
		if err := o(&l.opt); err != nil {
			return nil, err
		}
	}

	switch kind := reflect.TypeFor[T]().Kind(); kind { //nolint:exhaustive
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func, reflect.Interface, reflect.Slice, reflect.UnsafePointer:
		l.nilKind = kind
		l.nilable = true
	}

	return l, nil
}

// Close releases all chunks held by the List.
//
// The List can't be used after Close, all operations return ErrClosed.
func (l *List[T]) Close() error {
	if l == nil {
		return ErrInvalidArgument
	}

	if l.closed {
		return nil
	}

	l.closed = true

	released := l.numChunks

	for c := l.head; c != nil; {
		next := c.next
		c.release()
		c = next
	}

	l.head, l.tail = nil, nil
	l.count, l.numChunks = 0, 0

	l.debug("released list", zap.Int("chunks", released))

	return nil
}

// Len returns the number of elements in the List.
func (l *List[T]) Len() int {
	if l == nil {
		return 0
	}

	return l.count
}

// NumChunks returns the number of chunks currently linked.
func (l *List[T]) NumChunks() int {
	if l == nil {
		return 0
	}

	return l.numChunks
}

// ChunkCapacity returns the number of element slots in each chunk.
func (l *List[T]) ChunkCapacity() int {
	if l == nil {
		return 0
	}

	return l.opt.ChunkCapacity
}

// Capacity returns the number of element slots allocated for the List.
func (l *List[T]) Capacity() int {
	return l.NumChunks() * l.ChunkCapacity()
}

// Get returns the element at the given index.
//
// Get walks the chunk chain from the head, so it runs in O(n).
func (l *List[T]) Get(index int) (T, error) {
	var zero T

	c, i, err := l.locate(index)
	if err != nil {
		return zero, err
	}

	return c.data[c.index(i)], nil
}

// Set replaces the element at the given index.
func (l *List[T]) Set(index int, item T) error {
	if err := l.checkItem(item); err != nil {
		return err
	}

	c, i, err := l.locate(index)
	if err != nil {
		return err
	}

	c.data[c.index(i)] = item

	return nil
}

// locate finds the chunk holding the element at index and its logical slot in the chunk.
func (l *List[T]) locate(index int) (*chunk[T], int, error) {
	if err := l.check(); err != nil {
		return nil, 0, err
	}

	if index < 0 || index >= l.count {
		return nil, 0, fmt.Errorf("index %d with length %d: %w", index, l.count, ErrIndexOutOfRange)
	}

	for c := l.head; c != nil; c = c.next {
		if index < c.occupied {
			return c, index, nil
		}

		index -= c.occupied
	}

	// count is the sum of occupied over the chain
	panic("unrolled: element count out of sync with chunks")
}

func (l *List[T]) check() error {
	if l == nil {
		return ErrInvalidArgument
	}

	if l.closed {
		return ErrClosed
	}

	return nil
}

func (l *List[T]) checkItem(item T) error {
	if err := l.check(); err != nil {
		return err
	}

	if !l.nilable {
		return nil
	}

	var isNil bool

	if l.nilKind == reflect.Interface {
		isNil = any(item) == nil
	} else {
		isNil = reflect.ValueOf(item).IsNil()
	}

	if isNil {
		return fmt.Errorf("nil item: %w", ErrInvalidArgument)
	}

	return nil
}

func (l *List[T]) debug(msg string, fields ...zap.Field) {
	if ce := l.opt.Logger.Check(zapcore.DebugLevel, msg); ce != nil {
		ce.Write(append(fields, zap.Int("len", l.count), zap.Int("chunk_capacity", l.opt.ChunkCapacity))...)
	}
}
