// Copyright 2014 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

package trie

import "fmt"

// NibbleSlice is a view over a byte buffer as a sequence of 4-bit nibbles,
// starting at offset nibbles into buf. It never copies; Mid shares buf with
// its parent.
type NibbleSlice struct {
	buf    []byte
	offset int
}

// NewNibbleSlice builds a NibbleSlice over buf starting at the given nibble
// offset. offset must be in [0, 2*len(buf)].
func NewNibbleSlice(buf []byte, offset int) NibbleSlice {
	if offset < 0 || offset > 2*len(buf) {
		panic(fmt.Errorf("nibble offset %d out of range for %d-byte buffer", offset, len(buf)))
	}
	return NibbleSlice{buf: buf, offset: offset}
}

// keyNibbles builds the NibbleSlice used as the traversal cursor for a raw
// lookup key: every nibble of the key, no terminator, no padding.
func keyNibbles(key []byte) NibbleSlice {
	return NewNibbleSlice(key, 0)
}

// Len returns the number of nibbles remaining in the slice.
func (s NibbleSlice) Len() int {
	return 2*len(s.buf) - s.offset
}

// IsEmpty reports whether the slice has zero remaining nibbles.
func (s NibbleSlice) IsEmpty() bool {
	return s.Len() == 0
}

// At returns the i-th remaining nibble, i in [0, Len()).
func (s NibbleSlice) At(i int) byte {
	if i < 0 || i >= s.Len() {
		panic(fmt.Errorf("nibble index %d out of range (len %d)", i, s.Len()))
	}
	pos := s.offset + i
	b := s.buf[pos/2]
	if pos%2 == 0 {
		return b >> 4
	}
	return b & 0x0f
}

// Equal reports whether a and b have the same length and nibbles.
func (a NibbleSlice) Equal(b NibbleSlice) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i := 0; i < a.Len(); i++ {
		if a.At(i) != b.At(i) {
			return false
		}
	}
	return true
}

// StartsWith reports whether s begins with every nibble of prefix.
func (s NibbleSlice) StartsWith(prefix NibbleSlice) bool {
	if s.Len() < prefix.Len() {
		return false
	}
	for i := 0; i < prefix.Len(); i++ {
		if s.At(i) != prefix.At(i) {
			return false
		}
	}
	return true
}

// Mid returns the slice with the leading n nibbles dropped, sharing buf.
func (s NibbleSlice) Mid(n int) NibbleSlice {
	if n < 0 || n > s.Len() {
		panic(fmt.Errorf("nibble mid(%d) out of range (len %d)", n, s.Len()))
	}
	return NibbleSlice{buf: s.buf, offset: s.offset + n}
}

func (s NibbleSlice) String() string {
	out := make([]byte, s.Len())
	for i := range out {
		out[i] = "0123456789abcdef"[s.At(i)]
	}
	return string(out)
}
