// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// the three variants of the two-children successor splice
type spliceCase int

const (
	spliceDirectRight   spliceCase = iota // successor is the removed node's right child
	spliceLeafSuccessor                   // successor is a deeper leaf
	spliceRightSubtree                    // deeper successor with its own right child
)

// classify the splice needed to remove a two-children node q whose
// in-order successor is s
func successorCase(q *Node, s *Node) spliceCase {
	if s == q.right {
		return spliceDirectRight
	}
	if nil == s.right {
		return spliceLeafSuccessor
	}
	return spliceRightSubtree
}

// Remove - remove a key from the tree
//
// returns the removed value and true, or nil and false if the key is
// not present (a normal outcome, not an error)
func (tree *Tree) Remove(key Item) (interface{}, bool) {
	q := tree.search(key)
	if nil == q {
		return nil, false
	}
	value := q.value
	tree.detach(q)
	tree.count -= 1
	freeNode(q) // return deleted node to pool
	return value, true
}

// unlink a live node from the tree and rebalance
//
// dispatches on the number of children; the walk after a removal
// always continues to the root
func (tree *Tree) detach(q *Node) {
	pp := tree.slot(q)

	switch {
	case nil == q.left && nil == q.right: // leaf
		*pp = nil
		tree.rebalance(q.up, false)

	case nil == q.right: // only a left child: promote it
		q.left.up = q.up
		*pp = q.left
		tree.rebalance(q.up, false)

	case nil == q.left: // only a right child: promote it
		q.right.up = q.up
		*pp = q.right
		tree.rebalance(q.up, false)

	default: // two children: replace q by its in-order successor
		tree.spliceSuccessor(q, pp)
	}
}

// replace a two-children node q, held in slot pp, by the leftmost
// node of its right sub-tree
//
// the successor can have at most a right child, which is promoted
// into the successor's old position when the successor is not q's
// direct right child
func (tree *Tree) spliceSuccessor(q *Node, pp **Node) {
	s := q.right.first()
	start := s // where the upward rebalance walk begins

	switch successorCase(q, s) {
	case spliceDirectRight:
		// s absorbs q's left sub-tree and keeps its own right
		// sub-tree; rebalance from s in its new position
		s.left = q.left
		s.left.up = s
		s.up = q.up
		*pp = s

	case spliceLeafSuccessor, spliceRightSubtree:
		sp := s.up
		if sp.left != s {
			fault.Panicf("avl: successor %v is not the left child of %v", s.key, sp.key)
		}
		sp.left = s.right // nil for the leaf variant
		if nil != s.right {
			s.right.up = sp
		}

		s.left = q.left
		s.left.up = s
		s.right = q.right
		s.right.up = s
		s.up = q.up
		*pp = s

		// rebalance from the successor's original parent, now
		// the deepest node whose height can have changed
		start = sp
	}

	tree.rebalance(start, false)
}
