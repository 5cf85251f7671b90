package dynarray

import (
	"fmt"
	"iter"
	"reflect"
	"strings"

	"github.com/emirpasic/gods/v2/containers"
)

// DefaultCapacity is the capacity of an Array built with New.
const DefaultCapacity = 4

var _ containers.Container[int] = (*Array[int])(nil)

// Observer is notified whenever an Array reallocates its storage.
type Observer interface {
	OnGrow(from, to int)
}

// Array is a contiguous, growable sequence of T.
//
// The zero value is an empty array with no storage; the first Add allocates
// DefaultCapacity slots. Until then Cap reports 0.
//
// When T is an interface type, every stored and searched value must have a
// comparable dynamic type: == on two interfaces holding, say, []int panics.
type Array[T comparable] struct {
	items    []T
	count    int
	nillable bool
	observer Observer
}

// New returns an empty Array with DefaultCapacity.
func New[T comparable]() *Array[T] {
	a, _ := WithCapacity[T](DefaultCapacity)
	return a
}

// WithCapacity returns an empty Array able to hold capacity elements before
// its first reallocation.
func WithCapacity[T comparable](capacity int) (*Array[T], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity must be positive, got %d", ErrInvalidArgument, capacity)
	}
	return &Array[T]{
		items:    make([]T, capacity),
		nillable: nillable(reflect.TypeFor[T]().Kind()),
	}, nil
}

// From builds an Array with DefaultCapacity and appends items in order.
func From[T comparable](items ...T) (*Array[T], error) {
	a := New[T]()
	for _, item := range items {
		if err := a.Add(item); err != nil {
			return nil, err
		}
	}
	return a, nil
}

func nillable(k reflect.Kind) bool {
	switch k {
	case reflect.Pointer, reflect.Interface, reflect.Chan, reflect.UnsafePointer:
		return true
	}
	return false
}

// SetObserver registers o for growth notifications. A nil o removes it.
func (a *Array[T]) SetObserver(o Observer) {
	a.observer = o
}

func (a *Array[T]) checkItem(item T) error {
	canBeNil := a.nillable
	if a.items == nil {
		canBeNil = nillable(reflect.TypeFor[T]().Kind())
	}
	var zero T
	if canBeNil && item == zero {
		return fmt.Errorf("%w: nil item", ErrInvalidArgument)
	}
	return nil
}

// Len returns the number of live elements.
func (a *Array[T]) Len() int { return a.count }

// Cap returns the number of allocated slots.
func (a *Array[T]) Cap() int { return len(a.items) }

// Add appends item. Storage doubles once the append fills the last slot.
func (a *Array[T]) Add(item T) error {
	if err := a.checkItem(item); err != nil {
		return err
	}
	if a.items == nil {
		a.items = make([]T, DefaultCapacity)
		a.nillable = nillable(reflect.TypeFor[T]().Kind())
	}

	a.items[a.count] = item
	a.count++

	if a.count == len(a.items) {
		a.grow(2 * len(a.items))
	}
	return nil
}

func (a *Array[T]) grow(size int) {
	from := len(a.items)
	next := make([]T, size)
	copy(next, a.items[:a.count])
	a.items = next

	if a.observer != nil {
		a.observer.OnGrow(from, size)
	}
}

// Remove deletes the first element equal to item, shifting later elements
// left by one. It reports whether an element was removed.
func (a *Array[T]) Remove(item T) (bool, error) {
	i, err := a.IndexOf(item)
	if err != nil || i < 0 {
		return false, err
	}

	copy(a.items[i:a.count], a.items[i+1:a.count])
	a.count--

	var zero T
	a.items[a.count] = zero
	return true, nil
}

// IndexOf returns the lowest index holding item, or -1.
func (a *Array[T]) IndexOf(item T) (int, error) {
	if err := a.checkItem(item); err != nil {
		return -1, err
	}

	for i := 0; i < a.count; i++ {
		if a.items[i] == item {
			return i, nil
		}
	}
	return -1, nil
}

// Contains reports whether item is present.
func (a *Array[T]) Contains(item T) (bool, error) {
	i, err := a.IndexOf(item)
	if err != nil {
		return false, err
	}
	return i >= 0, nil
}

// First returns the element at index 0.
func (a *Array[T]) First() (T, error) {
	if a.count == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return a.items[0], nil
}

// Last returns the most recently appended live element.
func (a *Array[T]) Last() (T, error) {
	if a.count == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return a.items[a.count-1], nil
}

// At returns the element at index.
func (a *Array[T]) At(index int) (T, error) {
	if index < 0 || index >= a.count {
		var zero T
		return zero, &IndexError{Index: index, Count: a.count}
	}
	return a.items[index], nil
}

// All yields the live elements in order. The bound is the length at the
// start of each traversal.
func (a *Array[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		n := a.count
		for i := 0; i < n; i++ {
			if !yield(a.items[i]) {
				return
			}
		}
	}
}

// Enumerate is All with indices.
func (a *Array[T]) Enumerate() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		n := a.count
		for i := 0; i < n; i++ {
			if !yield(i, a.items[i]) {
				return
			}
		}
	}
}

// Empty reports whether there are no live elements.
func (a *Array[T]) Empty() bool { return a.count == 0 }

// Size is Len, for the gods container interface.
func (a *Array[T]) Size() int { return a.count }

// Clear drops every element. Capacity is kept.
func (a *Array[T]) Clear() {
	clear(a.items[:a.count])
	a.count = 0
}

// Values returns a copy of the live elements.
func (a *Array[T]) Values() []T {
	out := make([]T, a.count)
	copy(out, a.items[:a.count])
	return out
}

func (a *Array[T]) String() string {
	var b strings.Builder
	b.WriteString("DynamicArray\n")
	for i := 0; i < a.count; i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v", a.items[i])
	}
	return b.String()
}
