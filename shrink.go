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
	"slices"

	"buf.build/go/nonempty/internal/debug"
	"buf.build/go/nonempty/internal/xunsafe"
)

// Pop removes and returns the last element, except when it is the only
// element: then it returns a false ok-value and leaves the Vec
// untouched.
//
// Unlike [Vec.Remove], Pop never panics on a singleton, so it can be
// called in a loop to drain a Vec down to its first element.
func (v *Vec[T]) Pop() (T, bool) {
	v.check()
	var zero T
	if len(v.raw) < 2 {
		return zero, false
	}
	last := len(v.raw) - 1
	x := v.raw[last]
	v.raw[last] = zero
	v.raw = v.raw[:last]
	return x, true
}

// Remove removes and returns the element at index n, shifting
// everything after it down.
//
// Removing the only remaining element is a caller bug: Remove panics
// if Len() == 1, before touching any state.
func (v *Vec[T]) Remove(n int) T {
	v.check()
	if len(v.raw) == 1 {
		panic("nonempty: Remove of the only remaining element")
	}
	x := v.raw[n]
	v.raw = slices.Delete(v.raw, n, n+1)
	return x
}

// SwapRemove removes and returns the element at index n, moving the
// last element into its place instead of shifting. It does not preserve
// order but runs in constant time.
//
// Like [Vec.Remove], it panics if Len() == 1.
func (v *Vec[T]) SwapRemove(n int) T {
	v.check()
	if len(v.raw) == 1 {
		panic("nonempty: SwapRemove of the only remaining element")
	}
	x := v.raw[n]
	last := len(v.raw) - 1
	v.raw[n] = v.raw[last]
	var zero T
	v.raw[last] = zero
	v.raw = v.raw[:last]
	return x
}

// Truncate shrinks the Vec to n elements. It is a no-op if n >= Len().
//
// n must be at least 1; Truncate panics otherwise, before touching any
// state. There is no way to truncate a Vec to empty.
func (v *Vec[T]) Truncate(n int) {
	v.check()
	if n < 1 {
		panic("nonempty: Truncate to zero length")
	}
	if n >= len(v.raw) {
		return
	}
	clear(v.raw[n:])
	v.raw = v.raw[:n]
}

// Retain removes every element for which keep returns false, in place
// and preserving order.
//
// A predicate that rejects every element is a caller bug and panics:
// the result would be empty, and there is no empty Vec to leave behind.
// The panic fires before the shorter length is committed, so a
// recovered Vec still has its original length (with elements possibly
// reordered within it).
func (v *Vec[T]) Retain(keep func(T) bool) {
	v.check()
	kept := 0
	for _, x := range v.raw {
		if keep(x) {
			v.raw[kept] = x
			kept++
		}
	}
	if kept == 0 {
		panic("nonempty: Retain predicate rejected every element")
	}
	clear(v.raw[kept:])
	v.raw = v.raw[:kept]
}

// SplitOff removes the elements from index at onward and returns them
// as a plain, possibly-empty slice, leaving the first at elements in
// the Vec.
//
// at must be between 1 and Len(); SplitOff panics otherwise. An at of
// zero would split the Vec down to empty.
func (v *Vec[T]) SplitOff(at int) []T {
	v.check()
	if at < 1 {
		panic("nonempty: SplitOff at index zero")
	}
	tail := slices.Clone(v.raw[at:])
	clear(v.raw[at:])
	v.raw = v.raw[:at]
	return tail
}

// SetLen sets the length of the backing slice directly, trusting the
// caller completely.
//
// The caller must guarantee 0 < n <= Cap() and that the first n
// elements are initialized. None of this is re-verified; violating it
// is undefined behavior.
func (v *Vec[T]) SetLen(n int) {
	debug.Assert(n > 0, "SetLen(%d)", n)
	debug.Assert(n <= cap(v.raw), "SetLen(%d) with Cap() = %d", n, cap(v.raw))
	v.raw = xunsafe.SetLen(v.raw, n)
}
