// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package trie

import "github.com/ethereum/go-ethereum/common"

// childStoragePrefix names the well-known parent-trie key under which a
// child trie's root digest is stored, per Substrate's storage layout:
// ":child_storage:default:" followed by the child's own identifying info.
const childStoragePrefix = ":child_storage:default:"

// resolveChildRoot runs the Substrate traversal for the well-known
// child-root key and interprets the resulting value as a 32-byte digest.
// A zero digest (including absence) is not a valid child root; it panics
// *InvalidChildProofError, matching the panic-at-decode idiom the rest of
// this package uses rather than threading an error return through a call
// site that is never reached on the failure path anyway.
func resolveChildRoot(idx *proofIndex, root common.Hash, childInfo []byte) common.Hash {
	key := append([]byte(childStoragePrefix), childInfo...)
	value := lookup(idx, substrateDecoder{}, root, key)
	childRoot := common.BytesToHash(value)
	if childRoot == (common.Hash{}) {
		panic(&InvalidChildProofError{ChildInfo: childInfo})
	}
	return childRoot
}
