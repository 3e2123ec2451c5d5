// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package trie

import (
	"bytes"
	"encoding/binary"

	"github.com/ChainSafe/gossamer/pkg/scale"
	"github.com/ethereum/go-ethereum/common"
)

// substrateDecoder decodes nodes of the Substrate (Parity) trie: a header
// byte carrying the node variant and the start of a nibble-count varint,
// followed by the key nibbles and SCALE-framed value/child payloads.
type substrateDecoder struct{}

var _ Decoder = substrateDecoder{}

const (
	headerMaskEmpty         = 0x00
	headerMaskLeaf          = 0x40 // 01xx_xxxx
	headerMaskBranchNoValue = 0x80 // 10xx_xxxx
	headerMaskBranchValue   = 0xc0 // 11xx_xxxx
	headerTypeMask          = 0xc0
	headerNibbleCountMask   = 0x3f
)

func (substrateDecoder) DecodeNode(raw []byte) DecodedNode {
	if len(raw) == 0 {
		panic(newDecodeError("substrate node: empty input"))
	}
	header := raw[0]
	if header == headerMaskEmpty {
		return DecodedNode{Kind: KindEmpty}
	}

	nibbleCount, cursor := decodeSubstrateNibbleCount(raw)
	keyBytes := (nibbleCount + 1) / 2
	if cursor+keyBytes > len(raw) {
		panic(newDecodeError("substrate node: key payload runs past end of input"))
	}
	keyOffset := 0
	if nibbleCount%2 == 1 {
		keyOffset = 1
	}
	key := NewNibbleSlice(raw[cursor:cursor+keyBytes], keyOffset)
	cursor += keyBytes

	switch header & headerTypeMask {
	case headerMaskLeaf:
		value, _ := decodeScaleBytes(raw, cursor)
		v := inlineHandle(value)
		return DecodedNode{Kind: KindLeaf, Key: key, Value: &v}
	case headerMaskBranchNoValue, headerMaskBranchValue:
		return decodeSubstrateBranch(raw, cursor, key, header&headerTypeMask == headerMaskBranchValue)
	default:
		panic(newDecodeError("substrate node: unrecognised header byte 0x%02x", header))
	}
}

// decodeSubstrateNibbleCount reads the header byte's low 6 bits as the
// start of the nibble-count varint: if those bits saturate at 0x3f,
// subsequent bytes each add up to 255 until one below 255 terminates the
// count. Returns the nibble count and the offset of the first byte past
// the header/varint.
func decodeSubstrateNibbleCount(raw []byte) (count, cursor int) {
	count = int(raw[0] & headerNibbleCountMask)
	cursor = 1
	if count < headerNibbleCountMask {
		return count, cursor
	}
	for {
		if cursor >= len(raw) {
			panic(newDecodeError("substrate node: truncated nibble-count varint"))
		}
		b := raw[cursor]
		cursor++
		count += int(b)
		if b < 255 {
			break
		}
	}
	return count, cursor
}

// decodeSubstrateBranch reads the 2-byte little-endian child bitmap,
// optional value, and per-bit child handles of a NibbledBranch.
func decodeSubstrateBranch(raw []byte, cursor int, key NibbleSlice, hasValue bool) DecodedNode {
	if cursor+2 > len(raw) {
		panic(newDecodeError("substrate branch: truncated child bitmap"))
	}
	bitmap := binary.LittleEndian.Uint16(raw[cursor : cursor+2])
	cursor += 2

	n := DecodedNode{Kind: KindNibbledBranch, Key: key}
	if hasValue {
		var value []byte
		value, cursor = decodeScaleBytes(raw, cursor)
		v := inlineHandle(value)
		n.Value = &v
	}
	for i := 0; i < 16; i++ {
		if bitmap&(1<<uint(i)) == 0 {
			continue
		}
		var childBytes []byte
		childBytes, cursor = decodeScaleBytes(raw, cursor)
		if len(childBytes) == common.HashLength {
			h := hashHandle(common.BytesToHash(childBytes))
			n.Children[i] = &h
		} else {
			h := inlineHandle(childBytes)
			n.Children[i] = &h
		}
	}
	return n
}

// decodeScaleBytes SCALE-decodes a compact-length-prefixed Vec<u8> from
// raw starting at cursor, returning the bytes and the offset past them.
// The number of bytes consumed is read back off the decoder's reader
// rather than recomputed, so the compact-length framing stays entirely
// the codec's concern.
func decodeScaleBytes(raw []byte, cursor int) (value []byte, next int) {
	reader := bytes.NewReader(raw[cursor:])
	before := reader.Len()
	if err := scale.NewDecoder(reader).Decode(&value); err != nil {
		panic(newDecodeError("substrate node: bad SCALE byte vector: %v", err))
	}
	consumed := before - reader.Len()
	return value, cursor + consumed
}
