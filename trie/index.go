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
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// proofIndex is a content-addressed view over an unordered proof: each raw
// node, keyed by its own Keccak256 digest. It is built once at the start
// of a Verify* call and discarded at return; nothing about it is shared
// across calls.
type proofIndex struct {
	byHash map[common.Hash][]byte
}

func newProofIndex(proof [][]byte) *proofIndex {
	idx := &proofIndex{byHash: make(map[common.Hash][]byte, len(proof))}
	for _, raw := range proof {
		idx.byHash[crypto.Keccak256Hash(raw)] = raw
	}
	return idx
}

// get resolves a hash handle to its raw node bytes. It panics a
// *MissingNodeError if no proof entry matches, consistent with the
// panic-and-recover decode idiom used throughout this package.
func (idx *proofIndex) get(hash common.Hash, path []byte) []byte {
	raw, ok := idx.byHash[hash]
	if !ok {
		panic(&MissingNodeError{NodeHash: hash, Path: path})
	}
	return raw
}

// load resolves a child handle to raw node bytes: inline handles return
// their embedded payload directly, hash handles delegate to get.
func (idx *proofIndex) load(handle ChildHandle, path []byte) []byte {
	if handle.Inline {
		return handle.InlineBytes
	}
	return idx.get(handle.Hash, path)
}
