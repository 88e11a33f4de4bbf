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
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrEmpty is reported, wrapped, by operations that received an empty
// sequence where at least one element was required. It is the
// recoverable counterpart to the panics raised by [Vec.Remove] and
// friends: an empty document or input stream is an ordinary runtime
// condition, not a caller bug.
var ErrEmpty = errors.New("nonempty: empty sequence")

// MarshalJSON implements [json.Marshaler]. A Vec marshals exactly like
// its backing slice.
func (v Vec[T]) MarshalJSON() ([]byte, error) {
	v.check()
	return json.Marshal(v.raw)
}

// UnmarshalJSON implements [json.Unmarshaler]. Unmarshaling an empty
// array (or JSON null) fails with an error wrapping [ErrEmpty].
func (v *Vec[T]) UnmarshalJSON(data []byte) error {
	var raw []T
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw) == 0 {
		return fmt.Errorf("cannot unmarshal into Vec: %w", ErrEmpty)
	}
	v.raw = raw
	return nil
}

// MarshalYAML implements [yaml.Marshaler].
func (v Vec[T]) MarshalYAML() (any, error) {
	v.check()
	return v.raw, nil
}

// UnmarshalYAML implements [yaml.Unmarshaler]. Unmarshaling an empty
// sequence fails with an error wrapping [ErrEmpty].
func (v *Vec[T]) UnmarshalYAML(node *yaml.Node) error {
	var raw []T
	if err := node.Decode(&raw); err != nil {
		return err
	}
	if len(raw) == 0 {
		return fmt.Errorf("cannot unmarshal into Vec: %w", ErrEmpty)
	}
	v.raw = raw
	return nil
}
