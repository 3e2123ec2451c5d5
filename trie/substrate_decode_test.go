package trie

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
)

// scaleCompactBytes SCALE-encodes b as a compact-length-prefixed Vec<u8>,
// restricted to the single-byte length mode (b shorter than 64 bytes),
// which is all these tests need.
func scaleCompactBytes(b []byte) []byte {
	if len(b) >= 64 {
		panic("scaleCompactBytes: fixture helper only supports short vectors")
	}
	return append([]byte{byte(len(b) << 2)}, b...)
}

func TestSubstrateDecoder_Empty(t *testing.T) {
	assert := assert.New(t)
	n := substrateDecoder{}.DecodeNode([]byte{headerMaskEmpty})
	assert.Equal(KindEmpty, n.Kind)
}

func TestSubstrateDecoder_LeafOddNibbleCount(t *testing.T) {
	assert := assert.New(t)
	// header: leaf (01), nibble count 1 -> 0x41; key byte packs nibble 0x5
	// in its low nibble (odd count, padding nibble is the high one).
	raw := append([]byte{headerMaskLeaf | 0x01, 0x05}, scaleCompactBytes([]byte("v"))...)

	n := substrateDecoder{}.DecodeNode(raw)
	assert.Equal(KindLeaf, n.Kind)
	assert.Equal(1, n.Key.Len())
	assert.Equal(byte(0x5), n.Key.At(0))
	assert.True(n.Value.Inline)
	assert.Equal([]byte("v"), n.Value.InlineBytes)
}

func TestSubstrateDecoder_LeafEvenNibbleCount(t *testing.T) {
	assert := assert.New(t)
	raw := append([]byte{headerMaskLeaf | 0x02, 0xab}, scaleCompactBytes([]byte("val"))...)

	n := substrateDecoder{}.DecodeNode(raw)
	assert.Equal(KindLeaf, n.Kind)
	assert.Equal(2, n.Key.Len())
	assert.Equal(byte(0xa), n.Key.At(0))
	assert.Equal(byte(0xb), n.Key.At(1))
	assert.Equal([]byte("val"), n.Value.InlineBytes)
}

func TestSubstrateDecoder_NibbledBranchWithValue(t *testing.T) {
	assert := assert.New(t)

	bitmap := make([]byte, 2)
	binary.LittleEndian.PutUint16(bitmap, (1<<3)|(1<<9))

	childHash := common.BytesToHash(bytes.Repeat([]byte{0x11}, 32))
	raw := []byte{headerMaskBranchValue | 0x00} // 0 nibbles in branch key
	raw = append(raw, bitmap...)
	raw = append(raw, scaleCompactBytes([]byte("branch-value"))...)
	raw = append(raw, scaleCompactBytes(childHash[:])...) // child at bit 3
	raw = append(raw, scaleCompactBytes([]byte("inline-child"))...) // child at bit 9

	n := substrateDecoder{}.DecodeNode(raw)
	assert.Equal(KindNibbledBranch, n.Kind)
	assert.Equal(0, n.Key.Len())
	assert.NotNil(n.Value)
	assert.Equal([]byte("branch-value"), n.Value.InlineBytes)

	assert.NotNil(n.Children[3])
	assert.False(n.Children[3].Inline)
	assert.Equal(childHash, n.Children[3].Hash)

	assert.NotNil(n.Children[9])
	assert.True(n.Children[9].Inline)
	assert.Equal([]byte("inline-child"), n.Children[9].InlineBytes)

	for i := 0; i < 16; i++ {
		if i == 3 || i == 9 {
			continue
		}
		assert.Nil(n.Children[i])
	}
}

func TestSubstrateDecoder_NibbledBranchWithoutValue(t *testing.T) {
	assert := assert.New(t)

	bitmap := make([]byte, 2)
	binary.LittleEndian.PutUint16(bitmap, 1<<0)

	raw := []byte{headerMaskBranchNoValue | 0x01, 0x02} // 1 nibble key, nibble 2
	raw = append(raw, bitmap...)
	raw = append(raw, scaleCompactBytes([]byte("only-child"))...)

	n := substrateDecoder{}.DecodeNode(raw)
	assert.Equal(KindNibbledBranch, n.Kind)
	assert.Equal(1, n.Key.Len())
	assert.Equal(byte(0x2), n.Key.At(0))
	assert.Nil(n.Value)
	assert.NotNil(n.Children[0])
	assert.Equal([]byte("only-child"), n.Children[0].InlineBytes)
}

func TestSubstrateDecoder_LongNibbleCountVarint(t *testing.T) {
	assert := assert.New(t)
	// 0x3f saturates the header's inline count; +60 more via one varint
	// byte (<255) yields a total of 63+60=123 nibbles -> 62 key bytes.
	nibbleCount := 63 + 60
	keyBytes := make([]byte, (nibbleCount+1)/2)
	raw := []byte{headerMaskLeaf | headerNibbleCountMask, 60}
	raw = append(raw, keyBytes...)
	raw = append(raw, scaleCompactBytes([]byte("x"))...)

	n := substrateDecoder{}.DecodeNode(raw)
	assert.Equal(KindLeaf, n.Kind)
	assert.Equal(nibbleCount, n.Key.Len())
}

func TestSubstrateDecoder_RejectsTruncatedBitmap(t *testing.T) {
	assert := assert.New(t)
	raw := []byte{headerMaskBranchNoValue | 0x00, 0x01}
	assert.Panics(func() { substrateDecoder{}.DecodeNode(raw) })
}
