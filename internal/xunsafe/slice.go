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

package xunsafe

import "unsafe"

// Slice is like [unsafe.Slice], but isn't as branchy.
func Slice[P ~*E, E any](p P, len int) []E {
	return Slice2(p, len, len)
}

// Slice2 is like [unsafe.Slice], but allows specifying length and
// capacity separately.
func Slice2[P ~*E, E any](p P, len, cap int) []E {
	return unsafe.Slice((*E)(p), cap)[:len]
}

// SetLen sets the length of s directly, without bounds checks beyond
// the capacity already recorded in its header.
//
// The caller must guarantee 0 <= n <= cap(s) and that any newly exposed
// elements are initialized.
func SetLen[S ~[]E, E any](s S, n int) S {
	return S(unsafe.Slice(unsafe.SliceData([]E(s)), cap(s))[:n])
}
