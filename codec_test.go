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
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"buf.build/go/nonempty"
)

func TestJSON(t *testing.T) {
	t.Parallel()

	v := nonempty.New("a", "b")
	data, err := json.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, `["a","b"]`, string(data))

	var out nonempty.Vec[string]
	require.NoError(t, json.Unmarshal(data, &out))
	assert.True(t, nonempty.Equal(v, out))
}

func TestJSONEmpty(t *testing.T) {
	t.Parallel()

	for _, doc := range []string{`[]`, `null`} {
		var out nonempty.Vec[int]
		err := json.Unmarshal([]byte(doc), &out)
		assert.ErrorIs(t, err, nonempty.ErrEmpty, "doc: %s", doc)
	}
}

func TestYAML(t *testing.T) {
	t.Parallel()

	v := nonempty.New(1, 2, 3)
	data, err := yaml.Marshal(v)
	require.NoError(t, err)
	assert.YAMLEq(t, "- 1\n- 2\n- 3\n", string(data))

	var out nonempty.Vec[int]
	require.NoError(t, yaml.Unmarshal(data, &out))
	assert.True(t, nonempty.Equal(v, out))
}

func TestYAMLEmpty(t *testing.T) {
	t.Parallel()

	var out nonempty.Vec[int]
	err := yaml.Unmarshal([]byte("[]\n"), &out)
	assert.ErrorIs(t, err, nonempty.ErrEmpty)
}

func TestYAMLInConfigStruct(t *testing.T) {
	t.Parallel()

	type config struct {
		Recipients nonempty.Vec[string] `yaml:"recipients"`
	}

	var cfg config
	require.NoError(t, yaml.Unmarshal([]byte(
		"recipients:\n  - ops@example.com\n  - dev@example.com\n",
	), &cfg))
	assert.Equal(t, []string{"ops@example.com", "dev@example.com"},
		cfg.Recipients.Slice())

	err := yaml.Unmarshal([]byte("recipients: []\n"), &cfg)
	assert.ErrorIs(t, err, nonempty.ErrEmpty)
}
