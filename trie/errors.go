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

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// MissingNodeError is returned when a hash handle encountered during
// traversal has no corresponding entry in the proof set.
type MissingNodeError struct {
	NodeHash common.Hash
	Path     []byte
}

func (e *MissingNodeError) Error() string {
	return fmt.Sprintf("missing proof node %x for path %x", e.NodeHash, e.Path)
}

// DecodeError is returned when a raw proof node's bytes do not parse under
// the expected encoding.
type DecodeError struct {
	Reason string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("trie node decode error: %s", e.Reason)
}

func newDecodeError(format string, args ...interface{}) *DecodeError {
	return &DecodeError{Reason: fmt.Sprintf(format, args...)}
}

// InvalidChildProofError is returned when a child-trie lookup resolves to
// the zero digest (or to absence), and so cannot name a child root.
type InvalidChildProofError struct {
	ChildInfo []byte
}

func (e *InvalidChildProofError) Error() string {
	return fmt.Sprintf("invalid child trie proof for child info %x", e.ChildInfo)
}
