// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Tree - type to hold the root node of a tree
type Tree struct {
	root  *Node
	count int
}

// Entry - one key/value pair
type Entry struct {
	Key   Item
	Value interface{}
}

// New - create an initially empty tree
func New() *Tree {
	return &Tree{
		root:  nil,
		count: 0,
	}
}

// NewFromEntries - build a tree from a sequence of key/value pairs
//
// duplicate keys resolve last-write-wins, identical to repeated
// Insert calls
func NewFromEntries(entries []Entry) *Tree {
	tree := New()
	for _, e := range entries {
		tree.Insert(e.Key, e.Value)
	}
	return tree
}

// IsEmpty - true if tree contains no data
func (tree *Tree) IsEmpty() bool {
	return 0 == tree.count
}

// Count - number of nodes currently in the tree
func (tree *Tree) Count() int {
	return tree.count
}

// Root - return the root node of the tree
//
// for diagnostic use only
func (tree *Tree) Root() *Node {
	return tree.root
}
