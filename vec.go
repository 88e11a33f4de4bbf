// Copyright 2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package nonempty

import (
	"fmt"
	"iter"
	"slices"

	"buf.build/go/nonempty/internal/debug"
	"buf.build/go/nonempty/internal/xunsafe"
)

// Vec is a growable vector guaranteed to hold at least one element.
//
// It wraps exactly one backing slice, which it owns exclusively;
// len(backing slice) >= 1 holds before and after every exported
// operation. Undocumented methods behave exactly like their slice or
// [slices] counterparts.
//
// The zero Vec is invalid. Construct one with [New], [FromSlice],
// [Collect], a [Builder], or [FromRawParts].
type Vec[T any] struct {
	raw []T
}

// New returns a Vec holding first followed by rest.
//
// The signature is the invariant: there is no way to call New without
// supplying an element.
func New[T any](first T, rest ...T) Vec[T] {
	raw := make([]T, 0, 1+len(rest))
	raw = append(raw, first)
	raw = append(raw, rest...)
	return Vec[T]{raw}
}

// FromSlice wraps s without copying. It reports false iff s is empty.
//
// This is the primary fallible constructor. The Vec takes ownership of
// s; the caller must not retain its own reference to it.
func FromSlice[T any](s []T) (Vec[T], bool) {
	if len(s) == 0 {
		return Vec[T]{}, false
	}
	return Vec[T]{s}, true
}

// FromRawParts assembles a Vec directly from a pointer, a length, and a
// capacity, trusting the caller completely.
//
// The caller must guarantee that ptr is valid for cap elements, that
// the first len elements are initialized, and that 0 < len <= cap.
// None of this is re-verified; violating it is undefined behavior.
func FromRawParts[T any](ptr *T, len, cap int) Vec[T] {
	debug.Assert(len > 0, "FromRawParts with len = %d", len)
	debug.Assert(len <= cap, "FromRawParts with len = %d, cap = %d", len, cap)
	return Vec[T]{xunsafe.Slice2(ptr, len, cap)}
}

// check asserts the invariant in debug builds. A failure means the Vec
// was produced by something other than a constructor.
func (v Vec[T]) check() {
	debug.Assert(len(v.raw) > 0, "zero-length Vec; use a constructor")
}

// Len returns the number of elements. It is always at least 1.
func (v Vec[T]) Len() int {
	v.check()
	return len(v.raw)
}

// Cap returns the capacity of the backing slice.
func (v Vec[T]) Cap() int {
	return cap(v.raw)
}

// Get returns the element at index n.
func (v Vec[T]) Get(n int) T {
	return v.raw[n]
}

// Set replaces the element at index n.
func (v *Vec[T]) Set(n int, x T) {
	v.raw[n] = x
}

// First returns the first element. It always exists.
func (v Vec[T]) First() T {
	v.check()
	return v.raw[0]
}

// Last returns the last element. It always exists.
func (v Vec[T]) Last() T {
	v.check()
	return v.raw[len(v.raw)-1]
}

// Slice returns the backing slice.
//
// The caller may read and write elements through it but must not grow
// or shrink it; the returned header is a view, and length changes made
// through it do not carry back into the Vec.
func (v Vec[T]) Slice() []T {
	return v.raw
}

// Ptr returns a pointer to the first element.
func (v Vec[T]) Ptr() *T {
	v.check()
	return &v.raw[0]
}

// Push appends x.
func (v *Vec[T]) Push(x T) {
	v.raw = append(v.raw, x)
}

// Insert inserts x at index n, shifting everything at and after n.
func (v *Vec[T]) Insert(n int, x T) {
	v.raw = slices.Insert(v.raw, n, x)
}

// Append appends every element of elems.
func (v *Vec[T]) Append(elems ...T) {
	v.raw = append(v.raw, elems...)
}

// AppendVec appends every element of other.
//
// Other is taken by value as a transfer of ownership: the caller must
// not use other afterwards, since both values would alias one backing
// slice until the next reallocation.
func (v *Vec[T]) AppendVec(other Vec[T]) {
	v.raw = append(v.raw, other.raw...)
}

// Extend appends every value produced by seq.
func (v *Vec[T]) Extend(seq iter.Seq[T]) {
	for x := range seq {
		v.raw = append(v.raw, x)
	}
}

// Grow reserves capacity for at least n more elements.
func (v *Vec[T]) Grow(n int) {
	v.raw = slices.Grow(v.raw, n)
}

// Clip drops excess capacity. The length, and so the invariant, is
// unaffected.
func (v *Vec[T]) Clip() {
	v.raw = slices.Clip(v.raw)
}

// Equal reports whether a and b hold the same elements in the same
// order.
func Equal[T comparable](a, b Vec[T]) bool {
	return slices.Equal(a.raw, b.raw)
}

// EqualFunc is like [Equal] but compares elements with eq.
func EqualFunc[T, U any](a Vec[T], b Vec[U], eq func(T, U) bool) bool {
	return slices.EqualFunc(a.raw, b.raw, eq)
}

// String implements [fmt.Stringer].
func (v Vec[T]) String() string {
	return fmt.Sprint(v.raw)
}
