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

	"github.com/tiendc/go-deepcopy"
)

// Clone returns a copy of v with a fresh backing slice. Elements are
// copied shallowly, as by the built-in copy.
func (v Vec[T]) Clone() Vec[T] {
	v.check()
	return Vec[T]{slices.Clone(v.raw)}
}

// DeepClone returns a copy of v in which the elements themselves are
// recursively copied, so the result shares no pointers, slices, or
// maps with v.
func (v Vec[T]) DeepClone() (Vec[T], error) {
	v.check()
	var out []T
	if err := deepcopy.Copy(&out, &v.raw); err != nil {
		return Vec[T]{}, err
	}
	return Vec[T]{out}, nil
}
