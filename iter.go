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

// All returns an iterator over index-element pairs, in order. Each call
// yields at least one pair.
func (v Vec[T]) All() iter.Seq2[int, T] {
	v.check()
	return slices.All(v.raw)
}

// Values returns an iterator over the elements, in order.
func (v Vec[T]) Values() iter.Seq[T] {
	v.check()
	return slices.Values(v.raw)
}

// Backward returns an iterator over index-element pairs, from last to
// first.
func (v Vec[T]) Backward() iter.Seq2[int, T] {
	v.check()
	return slices.Backward(v.raw)
}

// Collect consumes seq and wraps the result. It reports false iff seq
// produced nothing.
//
// Collect is the generic fallible builder: it lets code that works over
// arbitrary sequences construct a Vec without special-casing emptiness.
func Collect[T any](seq iter.Seq[T]) (Vec[T], bool) {
	return FromSlice(slices.Collect(seq))
}
