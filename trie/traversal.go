// Copyright 2015 The go-ethereum Authors
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

import "github.com/ethereum/go-ethereum/common"

// MaxTrieDepth bounds per-key traversal: beyond this many decode+lookup
// iterations, a key is treated as absent rather than walked further. It
// protects lookup against a proof whose node graph cycles or chains
// beyond any real trie's depth.
const MaxTrieDepth = 50

// Decoder maps one raw proof node's bytes to its tagged DecodedNode under
// a single trie encoding (Ethereum or Substrate).
type Decoder interface {
	DecodeNode(raw []byte) DecodedNode
}

// lookup walks the trie named by root through idx using decoder d,
// resolving key. It returns the value bytes, or nil if key is absent
// under root — either because no such key exists, or because the walk
// exceeded MaxTrieDepth before resolving one way or the other. Both are
// observably "absent"; the caller cannot and need not distinguish them.
//
// lookup panics on malformed proof nodes or on a hash handle missing from
// idx; callers recover these into returned errors at the exported
// boundary.
func lookup(idx *proofIndex, d Decoder, root common.Hash, key []byte) []byte {
	current := d.DecodeNode(idx.get(root, nil))
	k := keyNibbles(key)
	var path []byte // nibbles consumed so far, for error context only

	advance := func(n int) {
		for i := 0; i < n; i++ {
			path = append(path, k.At(i))
		}
		k = k.Mid(n)
	}

	for depth := 0; depth < MaxTrieDepth; depth++ {
		switch current.Kind {
		case KindEmpty:
			return nil

		case KindLeaf:
			if current.Key.Equal(k) {
				return idx.load(*current.Value, path)
			}
			return nil

		case KindExtension:
			if !k.StartsWith(current.Key) {
				return nil
			}
			advance(current.Key.Len())
			current = d.DecodeNode(idx.load(*current.Child, path))

		case KindBranch:
			if k.IsEmpty() {
				if current.Value == nil {
					return nil
				}
				return idx.load(*current.Value, path)
			}
			i := k.At(0)
			if current.Children[i] == nil {
				return nil
			}
			advance(1)
			current = d.DecodeNode(idx.load(*current.Children[i], path))

		case KindNibbledBranch:
			if !k.StartsWith(current.Key) {
				return nil
			}
			if k.Len() == current.Key.Len() {
				if current.Value == nil {
					return nil
				}
				return idx.load(*current.Value, path)
			}
			i := k.At(current.Key.Len())
			if current.Children[i] == nil {
				return nil
			}
			advance(current.Key.Len() + 1)
			current = d.DecodeNode(idx.load(*current.Children[i], path))

		default:
			panic(newDecodeError("trie traversal: unrecognised node kind %v", current.Kind))
		}
	}
	// Depth bound exceeded: the proof cannot assert presence within the
	// bound, so the key is treated as absent rather than the walk
	// diverging further.
	return nil
}
