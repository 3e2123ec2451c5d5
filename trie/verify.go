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

// Package trie verifies Merkle-Patricia trie inclusion/exclusion proofs
// against a trusted root hash, for both the Ethereum hex-prefix trie and
// the Substrate trie. It is stateless: every exported function takes its
// complete input (root, proof, keys) and returns a fresh result with no
// shared state between calls.
package trie

import "github.com/ethereum/go-ethereum/common"

// VerifyEthereumProof resolves each of keys against root using the
// Ethereum hex-prefix trie encoding, consulting proof — an unordered bag
// of RLP-encoded nodes — to walk from root down to each key's value.
//
// The returned slice has the same length as keys; position i holds the
// value for keys[i], or nil if keys[i] is absent under root. A non-nil
// error means the proof itself was insufficient or malformed (a required
// node was missing, or a node's bytes did not parse); it is never
// returned merely because a key is absent.
func VerifyEthereumProof(root common.Hash, proof [][]byte, keys [][]byte) (values [][]byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = recoverVerifyError(r)
		}
	}()
	idx := newProofIndex(proof)
	d := ethereumDecoder{}
	values = make([][]byte, len(keys))
	for i, key := range keys {
		values[i] = lookup(idx, d, root, key)
	}
	return values, nil
}

// VerifySubstrateProof resolves each of keys against root using the
// Substrate trie encoding, consulting proof — an unordered bag of
// SCALE-framed nodes — to walk from root down to each key's value. Return
// semantics are identical to VerifyEthereumProof.
func VerifySubstrateProof(root common.Hash, proof [][]byte, keys [][]byte) (values [][]byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = recoverVerifyError(r)
		}
	}()
	idx := newProofIndex(proof)
	d := substrateDecoder{}
	values = make([][]byte, len(keys))
	for i, key := range keys {
		values[i] = lookup(idx, d, root, key)
	}
	return values, nil
}

// ReadChildProofCheck verifies keys under a Substrate child trie. It
// first resolves the child trie's own root by looking up the well-known
// child-storage key under the parent root, then re-runs the Substrate
// traversal for keys under that child root — reusing the same proof set
// for both lookups, since a single proof is expected to carry both
// tries' nodes.
//
// If the parent-trie lookup yields no value, or an all-zero digest, the
// child proof is invalid and an *InvalidChildProofError is returned;
// no per-key lookups are attempted in that case.
func ReadChildProofCheck(root common.Hash, proof [][]byte, keys [][]byte, childInfo []byte) (values [][]byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = recoverVerifyError(r)
		}
	}()
	idx := newProofIndex(proof)
	childRoot := resolveChildRoot(idx, root, childInfo)
	d := substrateDecoder{}
	values = make([][]byte, len(keys))
	for i, key := range keys {
		values[i] = lookup(idx, d, childRoot, key)
	}
	return values, nil
}

// recoverVerifyError converts a panic raised by the decode/traversal
// layer — always one of *MissingNodeError, *DecodeError, or
// *InvalidChildProofError — into a returned error. Any other panic value
// is a programming error and is re-raised.
func recoverVerifyError(recovered interface{}) error {
	if recovered == nil {
		return nil
	}
	switch e := recovered.(type) {
	case *MissingNodeError:
		return e
	case *DecodeError:
		return e
	case *InvalidChildProofError:
		return e
	default:
		panic(recovered)
	}
}
