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

package nonempty_test

import (
	"iter"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"buf.build/go/nonempty"
)

func TestIterators(t *testing.T) {
	t.Parallel()

	v := nonempty.New("a", "b", "c")

	assert.Equal(t, []string{"a", "b", "c"}, slices.Collect(v.Values()))

	var idx []int
	for i, x := range v.All() {
		idx = append(idx, i)
		assert.Equal(t, v.Get(i), x)
	}
	assert.Equal(t, []int{0, 1, 2}, idx)

	idx = idx[:0]
	for i := range v.Backward() {
		idx = append(idx, i)
	}
	assert.Equal(t, []int{2, 1, 0}, idx)
}

func TestIteratorsRestart(t *testing.T) {
	t.Parallel()

	v := nonempty.New(1, 2, 3)
	seq := v.Values()

	// Each fresh range over the sequence starts over.
	for range 2 {
		assert.Equal(t, []int{1, 2, 3}, slices.Collect(seq))
	}
}

func TestCollect(t *testing.T) {
	t.Parallel()

	v, ok := nonempty.Collect(slices.Values([]int{1, 2, 3}))
	require.True(t, ok)
	assert.Equal(t, []int{1, 2, 3}, v.Slice())

	_, ok = nonempty.Collect(slices.Values([]int(nil)))
	assert.False(t, ok)

	empty := iter.Seq[int](func(func(int) bool) {})
	_, ok = nonempty.Collect(empty)
	assert.False(t, ok)
}
