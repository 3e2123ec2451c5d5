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
	"github.com/ethereum/go-ethereum/rlp"
)

// ethereumDecoder decodes nodes of the Ethereum hex-prefix trie (RLP
// framing, EIP-1188 compact key encoding).
type ethereumDecoder struct{}

var _ Decoder = ethereumDecoder{}

// emptyNodeRLP is the RLP encoding of the empty string, go-ethereum's
// representation of an empty trie node.
var emptyNodeRLP = []byte{0x80}

func (ethereumDecoder) DecodeNode(raw []byte) DecodedNode {
	if len(raw) == 1 && raw[0] == emptyNodeRLP[0] {
		return DecodedNode{Kind: KindEmpty}
	}
	elems, _, err := rlp.SplitList(raw)
	if err != nil {
		panic(newDecodeError("ethereum node: not an RLP list: %v", err))
	}
	switch c, _ := rlp.CountValues(elems); c {
	case 2:
		return decodeEthereumShort(elems)
	case 17:
		return decodeEthereumFull(elems)
	default:
		panic(newDecodeError("ethereum node: invalid RLP list length %d", c))
	}
}

// decodeEthereumShort decodes a 2-item RLP list into a Leaf or an
// Extension, distinguished by the hex-prefix header nibble in the first
// item, per spec's hex-prefix table:
//
//	00 = extension, even length   10 = leaf, even length
//	01 = extension, odd length    11 = leaf, odd length
func decodeEthereumShort(elems []byte) DecodedNode {
	kbuf, rest, err := rlp.SplitString(elems)
	if err != nil {
		panic(newDecodeError("ethereum short node: bad key string: %v", err))
	}
	if len(kbuf) == 0 {
		panic(newDecodeError("ethereum short node: empty hex-prefix key"))
	}
	header := kbuf[0]
	isLeaf := header&0x20 != 0
	isOdd := header&0x10 != 0
	offset := 2
	if isOdd {
		offset = 1
	}
	key := NewNibbleSlice(kbuf, offset)

	if isLeaf {
		valBuf, _, err := rlp.SplitString(rest)
		if err != nil {
			panic(newDecodeError("ethereum leaf: bad value string: %v", err))
		}
		value := inlineHandle(valBuf)
		return DecodedNode{Kind: KindLeaf, Key: key, Value: &value}
	}
	child, _ := decodeEthereumRef(rest)
	if child == nil {
		panic(newDecodeError("ethereum extension: missing child reference"))
	}
	return DecodedNode{Kind: KindExtension, Key: key, Child: child}
}

// decodeEthereumFull decodes a 17-item RLP list into a Branch: items 0..15
// are child handles, item 16 is the optional terminal value.
func decodeEthereumFull(elems []byte) DecodedNode {
	n := DecodedNode{Kind: KindBranch}
	rest := elems
	for i := 0; i < 16; i++ {
		var child *ChildHandle
		child, rest = decodeEthereumRef(rest)
		n.Children[i] = child
	}
	valBuf, _, err := rlp.SplitString(rest)
	if err != nil {
		panic(newDecodeError("ethereum branch: bad value string: %v", err))
	}
	if len(valBuf) > 0 {
		value := inlineHandle(valBuf)
		n.Value = &value
	}
	return n
}

// decodeEthereumRef parses one RLP-encoded child reference from the head
// of buf: an empty string (absent), a 32-byte string (hash handle), or an
// inline RLP list (inline handle, smaller than a hash by construction). It
// returns the handle and the bytes remaining after it.
func decodeEthereumRef(buf []byte) (*ChildHandle, []byte) {
	kind, val, rest, err := rlp.Split(buf)
	if err != nil {
		panic(newDecodeError("ethereum node: bad child reference: %v", err))
	}
	switch {
	case kind == rlp.List:
		size := len(buf) - len(rest)
		if size > common.HashLength {
			panic(newDecodeError("ethereum node: oversized embedded node (%d bytes)", size))
		}
		h := inlineHandle(buf[:size])
		return &h, rest
	case kind == rlp.String && len(val) == 0:
		return nil, rest
	case kind == rlp.String && len(val) == common.HashLength:
		h := hashHandle(common.BytesToHash(val))
		return &h, rest
	default:
		panic(newDecodeError("ethereum node: invalid child string size %d", len(val)))
	}
}
