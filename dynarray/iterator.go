package dynarray

import "github.com/emirpasic/gods/v2/containers"

var _ containers.IteratorWithIndex[int] = (*Iterator[int])(nil)

// Iterator is a stateful forward iterator over an Array. It starts before
// the first element; call Next to advance.
type Iterator[T comparable] struct {
	arr   *Array[T]
	index int
}

// Iterator returns an iterator positioned before the first element.
func (a *Array[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{arr: a, index: -1}
}

// Next moves to the next element and reports whether one exists.
func (it *Iterator[T]) Next() bool {
	if it.index < it.arr.count {
		it.index++
	}
	return it.index < it.arr.count
}

// Value returns the current element.
func (it *Iterator[T]) Value() T {
	return it.arr.items[it.index]
}

// Index returns the current position.
func (it *Iterator[T]) Index() int {
	return it.index
}

// Begin resets the iterator to its initial state.
func (it *Iterator[T]) Begin() {
	it.index = -1
}

// First moves to the first element and reports whether one exists.
func (it *Iterator[T]) First() bool {
	it.Begin()
	return it.Next()
}

// NextTo advances to the next element satisfying f.
func (it *Iterator[T]) NextTo(f func(index int, value T) bool) bool {
	for it.Next() {
		if f(it.index, it.Value()) {
			return true
		}
	}
	return false
}
