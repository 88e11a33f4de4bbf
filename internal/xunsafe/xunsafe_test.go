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

package xunsafe_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"buf.build/go/nonempty/internal/xunsafe"
)

func TestPointer(t *testing.T) {
	t.Parallel()

	s := []int32{10, 20, 30}
	p := &s[0]

	assert.Equal(t, &s[2], xunsafe.Add(p, 2))
	assert.Equal(t, int32(30), xunsafe.Load(p, 2))

	xunsafe.Store(p, 1, 99)
	assert.Equal(t, int32(99), s[1])
}

func TestSlice(t *testing.T) {
	t.Parallel()

	s := []int{1, 2, 3, 4}
	p := &s[0]

	assert.Equal(t, s, xunsafe.Slice(p, 4))

	half := xunsafe.Slice2(p, 2, 4)
	assert.Equal(t, []int{1, 2}, half)
	assert.Equal(t, 4, cap(half))
}

func TestSetLen(t *testing.T) {
	t.Parallel()

	s := []int{1, 2, 3, 4}
	short := s[:2]

	grown := xunsafe.SetLen(short, 4)
	assert.Equal(t, s, grown)
	assert.Equal(t, []int{1}, xunsafe.SetLen(s, 1))
}
