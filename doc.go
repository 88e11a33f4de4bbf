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

// Package nonempty provides [Vec], a growable slice-backed vector that
// always contains at least one element.
//
// Vec exists for callers whose domain rules say "this list is never
// empty" (a message must have at least one recipient, a pipeline at
// least one stage). Instead of re-checking emptiness at every use site,
// the rule lives in the type: every constructor either receives an
// element up front ([New]) or reports failure on empty input
// ([FromSlice], [Collect]), and every operation that could drain the
// vector either refuses the call or degrades gracefully.
//
// # Failure Tiers
//
// The API distinguishes three kinds of "it would have become empty":
//
//   - Empty input to a constructor or to unmarshaling is an ordinary
//     runtime condition, reported as a false ok-value or an error
//     wrapping [ErrEmpty].
//   - Removing the last remaining element ([Vec.Remove],
//     [Vec.SwapRemove], a [Vec.Retain] predicate that rejects
//     everything, [Vec.Truncate] or [Vec.SplitOff] targeting length
//     zero) is a caller bug and panics. There is no empty Vec value to
//     return.
//   - [Vec.Pop] on a single-element vector returns a false ok-value and
//     leaves the vector untouched, so it is safe to call in a loop to
//     drain a vector down to one element.
//
// # Caveats
//
// The zero Vec is invalid; values must come from a constructor. Vec is
// a single-owner, unsynchronized container: share it across goroutines
// only behind external locking, like a plain slice. [Vec.Splice] is the
// one operation that is forwarded unchecked and can, in principle,
// empty the vector; see its documentation.
//
// Building the package with the debug tag enables invariant assertions
// at operation entry.
package nonempty
