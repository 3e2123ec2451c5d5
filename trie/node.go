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

import "github.com/ethereum/go-ethereum/common"

// NodeKind discriminates the decoded node variants. Extension and Branch
// are Ethereum-only; NibbledBranch is Substrate-only. Rather than a class
// hierarchy per variant, a DecodedNode carries every field and leaves the
// ones its own Kind doesn't use unset.
type NodeKind int

const (
	KindEmpty NodeKind = iota
	KindLeaf
	KindExtension
	KindBranch
	KindNibbledBranch
)

func (k NodeKind) String() string {
	switch k {
	case KindEmpty:
		return "Empty"
	case KindLeaf:
		return "Leaf"
	case KindExtension:
		return "Extension"
	case KindBranch:
		return "Branch"
	case KindNibbledBranch:
		return "NibbledBranch"
	default:
		return "Unknown"
	}
}

// ChildHandle names a child node either by its 32-byte hash, requiring a
// proof-set lookup to resolve, or by raw bytes embedded inline in the
// parent's own encoding, requiring none.
type ChildHandle struct {
	Inline      bool
	InlineBytes []byte
	Hash        common.Hash
}

func inlineHandle(raw []byte) ChildHandle {
	return ChildHandle{Inline: true, InlineBytes: raw}
}

func hashHandle(h common.Hash) ChildHandle {
	return ChildHandle{Inline: false, Hash: h}
}

// DecodedNode is the tagged result of decoding one raw proof node under
// either trie encoding.
//
//   - Empty: no other field meaningful.
//   - Leaf: Key, Value.
//   - Extension (Ethereum): Key, Child.
//   - Branch (Ethereum): Children, Value.
//   - NibbledBranch (Substrate): Key, Children, Value.
type DecodedNode struct {
	Kind     NodeKind
	Key      NibbleSlice
	Value    *ChildHandle
	Child    *ChildHandle
	Children [16]*ChildHandle
}
