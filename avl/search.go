// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// internal: locate the node holding a key, nil if absent
func (tree *Tree) search(key Item) *Node {
	p := tree.root
	for nil != p {
		switch p.key.Compare(key) {
		case +1: // p.key > key
			p = p.left
		case -1: // p.key < key
			p = p.right
		default:
			return p
		}
	}
	return nil
}

// Get - fetch the value stored under a key
//
// returns nil and false if the key is not present
func (tree *Tree) Get(key Item) (interface{}, bool) {
	p := tree.search(key)
	if nil == p {
		return nil, false
	}
	return p.value, true
}

// Contains - true if a key is present in the tree
func (tree *Tree) Contains(key Item) bool {
	return nil != tree.search(key)
}

// Min - the node with the lowest key, nil if the tree is empty
func (tree *Tree) Min() *Node {
	return tree.root.first()
}

// Max - the node with the highest key, nil if the tree is empty
func (tree *Tree) Max() *Node {
	return tree.root.last()
}
