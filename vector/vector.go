// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package vector implements a growable contiguous container with an explicit
// element lifecycle.
//
// A Vector owns one backing array. Slots [0, Len) hold live elements, slots
// [Len, Cap) are raw storage holding the zero value of T, which is never
// observed as an element. Elements are constructed by copying (see Cloner)
// and destroyed by releasing (see Releaser) and then clearing their slot.
// Moving an element between buffers neither copies nor releases it.
//
//	data  0        Len            Cap
//	      |live....|zero..........|
package vector

import "iter"

// Cloner is implemented by element types which need a deep copy.
// When T implements Cloner[T], its Clone method is used wherever the
// vector copies an element. Otherwise elements are copied by assignment.
type Cloner[T any] interface {
	Clone() T
}

// Releaser is implemented by element types holding resources, which
// must be freed when the element is destroyed. Release is called once for
// every live element destroyed by Pop, Clear, Free, Assign or MoveFrom.
// It may be implemented with a value or a pointer receiver.
type Releaser interface {
	Release()
}

// Vector is a growable sequence of T. The zero value is an empty vector.
// A Vector must not be copied by value after first use: use Clone or Take.
// Vectors are not safe for concurrent use.
type Vector[T any] struct {
	data []T // len(data) is the capacity.
	size int
}

// New returns a vector of exactly count elements, each one a copy of value.
// It panics if count is negative.
func New[T any](count int, value T) *Vector[T] {
	v := &Vector[T]{data: make([]T, count)}
	for ; v.size < count; v.size++ {
		v.data[v.size] = copyOf(value)
	}
	return v
}

// Take returns a vector owning src's storage and elements, and leaves src empty,
// with no storage.
func Take[T any](src *Vector[T]) *Vector[T] {
	v := &Vector[T]{data: src.data, size: src.size}
	src.data, src.size = nil, 0
	return v
}

// Clone returns a deep copy of v, with the same capacity.
// If copying an element panics, elements copied so far are released and the
// panic propagates; v is not modified.
func (v *Vector[T]) Clone() *Vector[T] {
	c := &Vector[T]{data: make([]T, len(v.data))}
	defer func() {
		if c.size < v.size { // unwinding from a panic in Clone.
			c.Free()
		}
	}()
	for ; c.size < v.size; c.size++ {
		c.data[c.size] = copyOf(v.data[c.size])
	}
	return c
}

// Assign makes v a deep copy of src. The copy is built first and then swapped in,
// so v stays unchanged if copying panics. The previous elements of v are released.
func (v *Vector[T]) Assign(src *Vector[T]) {
	if v == src {
		return
	}
	tmp := src.Clone()
	v.Swap(tmp)
	tmp.Free()
}

// MoveFrom releases v's elements and storage, then takes over src's ones,
// leaving src empty, with no storage.
func (v *Vector[T]) MoveFrom(src *Vector[T]) {
	if v == src {
		return
	}
	v.Free()
	v.data, v.size = src.data, src.size
	src.data, src.size = nil, 0
}

// Swap exchanges the contents of two vectors.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.data, other.data = other.data, v.data
	v.size, other.size = other.size, v.size
}

// At returns the element at index i.
// The index is not checked against Len: the caller must ensure 0 <= i < Len.
// Indices within [Len, Cap) return the zero value of T, greater ones panic.
func (v *Vector[T]) At(i int) T {
	return v.data[i]
}

// Ref returns a pointer to the element at index i. The pointer is invalidated
// by any operation which reallocates the storage.
// As with At, i must be within [0, Len).
func (v *Vector[T]) Ref(i int) *T {
	return &v.data[i]
}

// Set replaces the element at index i with x. The replaced element is not released.
// As with At, i must be within [0, Len).
func (v *Vector[T]) Set(i int, x T) {
	v.data[i] = x
}

// Back returns the last element. The vector must not be empty.
func (v *Vector[T]) Back() T {
	return v.data[v.size-1]
}

// Push appends a copy of x (see Cloner).
// When the vector is full, the storage grows to 2*Cap+1 first.
func (v *Vector[T]) Push(x T) {
	if v.size == len(v.data) {
		v.reallocate(2*len(v.data) + 1)
	}
	v.data[v.size] = copyOf(x)
	v.size++
}

// Pop destroys the last element. Pop on an empty vector does nothing.
func (v *Vector[T]) Pop() {
	if v.size == 0 {
		return
	}
	v.size--
	release(&v.data[v.size])
}

// Reserve grows the storage to exactly n slots, unless it already has at least n.
func (v *Vector[T]) Reserve(n int) {
	if n > len(v.data) {
		v.reallocate(n)
	}
}

// ShrinkToFit reduces the storage to exactly Len slots.
func (v *Vector[T]) ShrinkToFit() {
	if len(v.data) > v.size {
		v.reallocate(v.size)
	}
}

// Clear destroys all elements, keeping the storage.
func (v *Vector[T]) Clear() {
	for v.size > 0 {
		v.size--
		release(&v.data[v.size])
	}
}

// Free destroys all elements and drops the storage.
func (v *Vector[T]) Free() {
	v.Clear()
	v.data = nil
}

// Len returns the number of elements.
func (v *Vector[T]) Len() int {
	return v.size
}

// Cap returns the number of slots in the storage.
func (v *Vector[T]) Cap() int {
	return len(v.data)
}

// Empty returns true if the vector has no elements.
func (v *Vector[T]) Empty() bool {
	return v.size == 0
}

// Data returns the live elements. The slice shares the vector's storage,
// and is invalidated by any operation which reallocates it.
func (v *Vector[T]) Data() []T {
	return v.data[:v.size:v.size]
}

// All returns an iterator over indices and elements, in order.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, v.data[i]) {
				return
			}
		}
	}
}

// Values returns an iterator over elements, in order.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(v.data[i]) {
				return
			}
		}
	}
}

// reallocate moves live elements into new storage of exactly n slots.
// Elements past n are released.
func (v *Vector[T]) reallocate(n int) {
	for v.size > n {
		v.size--
		release(&v.data[v.size])
	}
	data := make([]T, n)
	var zero T
	for i := 0; i < v.size; i++ {
		data[i] = v.data[i]
		v.data[i] = zero
	}
	v.data = data
}

func copyOf[T any](x T) T {
	if c, ok := any(x).(Cloner[T]); ok {
		return c.Clone()
	}
	return x
}

func release[T any](p *T) {
	if r, ok := any(p).(Releaser); ok {
		r.Release()
	} else if r, ok := any(*p).(Releaser); ok {
		r.Release()
	}
	var zero T
	*p = zero
}
