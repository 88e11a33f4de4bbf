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

// Package xunsafe provides a more convenient interface for performing
// unsafe operations than Go's built-in package unsafe.
package xunsafe

import "unsafe"

// Add adds the given offset to p, scaled by the size of E.
func Add[P ~*E, E any](p P, n int) P {
	var z E
	return P(unsafe.Add(unsafe.Pointer(p), uintptr(n)*unsafe.Sizeof(z)))
}

// Load loads the value at the given index relative to p.
func Load[P ~*E, E any](p P, n int) E {
	return *Add(p, n)
}

// Store stores a value at the given index relative to p.
func Store[P ~*E, E any](p P, n int, v E) {
	*Add(p, n) = v
}
