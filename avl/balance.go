// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// slot - obtain the owning reference that holds a node: either the
// root slot or the parent's left/right child slot
//
// rotation rewires ownership so it must go through this slot, never
// through a borrowed pointer; a node that cannot be located from its
// recorded parent indicates a corrupted tree and is fatal
func (tree *Tree) slot(p *Node) **Node {
	if nil == p.up {
		if tree.root != p {
			fault.Panicf("avl: node %v has no parent but is not the root", p.key)
		}
		return &tree.root
	}
	switch p {
	case p.up.left:
		return &p.up.left
	case p.up.right:
		return &p.up.right
	}
	fault.Panicf("avl: node %v is not a child of its recorded parent %v", p.key, p.up.key)
	return nil // not reached
}

// apply the rotation selected by the taller child's balance factor
//
//	node balance  child balance  action
//	    -2           0 or -1     rotate left
//	    -2             +1        rotate right then left
//	    +2           0 or +1     rotate right
//	    +2             -1        rotate left then right
func rebalanceSlot(pp **Node) {
	p := *pp
	switch b := p.balanceFactor(); {
	case -2 >= b: // right heavy
		if 1 == p.right.balanceFactor() {
			rotateRightLeft(pp)
		} else {
			rotateLeft(pp)
		}
	case 2 <= b: // left heavy
		if -1 == p.left.balanceFactor() {
			rotateLeftRight(pp)
		} else {
			rotateRight(pp)
		}
	}
}

// rebalance - walk from a just mutated node up to the root,
// recomputing heights and rotating wherever a balance factor reaches
// ±2
//
// after an insert the walk stops at the first node whose balance
// factor returns to zero, and after at most one rotation: the height
// increase has been absorbed and nothing above can have changed.
// After a remove neither exit is valid: a removal can shrink heights
// at several levels without zeroing the balance factor of the first
// fixed node, so every ancestor up to the root must be examined.
func (tree *Tree) rebalance(p *Node, insertion bool) {
	for nil != p {
		p.updateHeight()
		b := p.balanceFactor()
		if insertion && 0 == b {
			return
		}
		if -2 >= b || 2 <= b {
			pp := tree.slot(p)
			rebalanceSlot(pp)
			p = *pp
			if insertion {
				return
			}
		}
		p = p.up
	}
}
