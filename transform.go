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
	"iter"
	"slices"
)

// Map returns a new Vec produced by applying f to every element of v.
//
// The result has the same length as v, so non-emptiness is preserved
// by construction.
func Map[T, U any](v Vec[T], f func(T) U) Vec[U] {
	v.check()
	out := make([]U, len(v.raw))
	for i, x := range v.raw {
		out[i] = f(x)
	}
	return Vec[U]{out}
}

// MapInPlace replaces every element with f applied to it. The length
// and the backing slice identity are unchanged.
func (v *Vec[T]) MapInPlace(f func(T) T) {
	for i, x := range v.raw {
		v.raw[i] = f(x)
	}
}

// Splice replaces the elements in [i, j) with the values produced by
// repl, which may be nil, and returns the removed elements.
//
// Splice is forwarded to the backing slice unchecked: replacing every
// element with an empty sequence leaves the Vec empty and therefore
// invalid. The replacement length cannot be known without consuming
// repl, so the invariant is the caller's responsibility here, unlike
// everywhere else in the API.
func (v *Vec[T]) Splice(i, j int, repl iter.Seq[T]) []T {
	removed := slices.Clone(v.raw[i:j])
	tail := slices.Clone(v.raw[j:])
	clear(v.raw[i:])
	v.raw = v.raw[:i]
	if repl != nil {
		for x := range repl {
			v.raw = append(v.raw, x)
		}
	}
	v.raw = append(v.raw, tail...)
	return removed
}

// Resize grows or shrinks the Vec to n elements, appending copies of
// fill as needed.
//
// n must be at least 1; Resize panics otherwise, before touching any
// state.
func (v *Vec[T]) Resize(n int, fill T) {
	v.ResizeFunc(n, func() T { return fill })
}

// ResizeFunc is like [Vec.Resize] but appends successive results of
// fill instead of copies of one value.
func (v *Vec[T]) ResizeFunc(n int, fill func() T) {
	v.check()
	if n < 1 {
		panic("nonempty: Resize to zero length")
	}
	if n <= len(v.raw) {
		v.Truncate(n)
		return
	}
	v.raw = slices.Grow(v.raw, n-len(v.raw))
	for len(v.raw) < n {
		v.raw = append(v.raw, fill())
	}
}

// Compact removes consecutive runs of equal elements from v, keeping
// the first of each run. At least that first element always survives,
// so the invariant is never at risk.
func Compact[T comparable](v *Vec[T]) {
	v.raw = slices.Compact(v.raw)
}

// CompactFunc is like [Compact] but uses eq to compare elements.
func (v *Vec[T]) CompactFunc(eq func(a, b T) bool) {
	v.raw = slices.CompactFunc(v.raw, eq)
}
