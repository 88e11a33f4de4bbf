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
	"io"
	"slices"
)

// Writer adapts a Vec[byte] into a byte sink. Every write appends to
// the vector, so writes only ever grow it and the invariant is never
// at risk.
//
// Writer exists because Go methods cannot be defined for a single
// instantiation of a generic type; it is the moral equivalent of
// implementing [io.Writer] on Vec[byte] itself.
type Writer struct {
	v *Vec[byte]
}

var (
	_ io.Writer       = (*Writer)(nil)
	_ io.StringWriter = (*Writer)(nil)
	_ io.ByteWriter   = (*Writer)(nil)
	_ io.ReaderFrom   = (*Writer)(nil)
)

// NewWriter returns a Writer that appends to v.
func NewWriter(v *Vec[byte]) *Writer {
	return &Writer{v}
}

// Write implements [io.Writer]. It appends p and never fails.
func (w *Writer) Write(p []byte) (int, error) {
	w.v.raw = append(w.v.raw, p...)
	return len(p), nil
}

// WriteString implements [io.StringWriter].
func (w *Writer) WriteString(s string) (int, error) {
	w.v.raw = append(w.v.raw, s...)
	return len(s), nil
}

// WriteByte implements [io.ByteWriter].
func (w *Writer) WriteByte(c byte) error {
	w.v.raw = append(w.v.raw, c)
	return nil
}

// readChunk is the minimum amount of spare capacity made available to
// each Read in [Writer.ReadFrom].
const readChunk = 512

// ReadFrom implements [io.ReaderFrom]. It appends everything r
// produces until EOF, surfacing any other read error unchanged and
// without retrying.
func (w *Writer) ReadFrom(r io.Reader) (int64, error) {
	var total int64
	for {
		raw := w.v.raw
		if cap(raw)-len(raw) < readChunk {
			raw = slices.Grow(raw, readChunk)
		}
		n, err := r.Read(raw[len(raw):cap(raw)])
		w.v.raw = raw[:len(raw)+n]
		total += int64(n)
		if err == io.EOF {
			return total, nil
		}
		if err != nil {
			return total, err
		}
	}
}
