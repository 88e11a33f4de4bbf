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

import "slices"

// Builder accumulates elements for a [Vec], typically after
// pre-reserving capacity with [NewBuilder].
//
// A Vec can never be observed at length zero, so "make an empty vector
// with capacity n, then push" cannot be expressed on Vec itself.
// Builder is that intermediate state as its own type: it is allowed to
// be empty because it is not a Vec, and it only becomes one, via
// [Builder.Vec], once it holds something.
//
// The zero Builder is ready to use.
type Builder[T any] struct {
	raw []T
}

// NewBuilder returns a Builder with capacity for n elements
// pre-reserved.
func NewBuilder[T any](n int) Builder[T] {
	return Builder[T]{make([]T, 0, n)}
}

// Push appends x.
func (b *Builder[T]) Push(x T) {
	b.raw = append(b.raw, x)
}

// Append appends every element of elems.
func (b *Builder[T]) Append(elems ...T) {
	b.raw = append(b.raw, elems...)
}

// Grow reserves capacity for at least n more elements.
func (b *Builder[T]) Grow(n int) {
	b.raw = slices.Grow(b.raw, n)
}

// Len returns the number of elements pushed so far. Unlike [Vec.Len],
// it may be zero.
func (b *Builder[T]) Len() int {
	return len(b.raw)
}

// Vec hands the accumulated elements off as a Vec, without copying. It
// reports false, handing nothing off, if the Builder is still empty.
//
// After a successful handoff the Builder is reset to empty rather than
// left aliasing the Vec's backing slice.
func (b *Builder[T]) Vec() (Vec[T], bool) {
	v, ok := FromSlice(b.raw)
	if ok {
		b.raw = nil
	}
	return v, ok
}
