// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - insert a key/value pair into the tree
//
// if an equal key is already present its value is overwritten in
// place and the previous value is returned with true; the node keeps
// its identity and position and no rebalancing occurs.  Otherwise a
// new leaf is linked below the last node visited during descent and
// the tree is rebalanced from that node upward.
func (tree *Tree) Insert(key Item, value interface{}) (interface{}, bool) {
	var parent *Node
	pp := &tree.root
	for nil != *pp {
		p := *pp
		switch p.key.Compare(key) {
		case +1: // p.key > key
			parent = p
			pp = &p.left
		case -1: // p.key < key
			parent = p
			pp = &p.right
		default:
			previous := p.value
			p.value = value
			return previous, true
		}
	}

	p := newNode(key, value)
	p.up = parent
	*pp = p
	tree.count += 1

	// no-op when the tree was empty before this insertion
	tree.rebalance(parent, true)

	return nil, false
}
