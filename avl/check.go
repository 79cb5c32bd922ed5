// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
)

// Consistency checkers used by tests and diagnostics.  Each verifies
// one of the invariants every public mutation must preserve.

// CheckUp - check the up pointers for consistency
func (tree *Tree) CheckUp() bool {
	return checkUp(tree.root, nil)
}

// internal: consistency checker
func checkUp(p *Node, up *Node) bool {
	if nil == p {
		return true
	}
	if p.up != up {
		fmt.Printf("fail at node: %v   actual: %v  expected: %v\n", p.key, p.up, up)
		return false
	}
	if !checkUp(p.left, p) {
		return false
	}
	return checkUp(p.right, p)
}

// CheckHeights - verify every cached height against its sub-trees
func (tree *Tree) CheckHeights() bool {
	return checkHeights(tree.root)
}

func checkHeights(p *Node) bool {
	if nil == p {
		return true
	}
	h := p.leftHeight()
	if r := p.rightHeight(); r > h {
		h = r
	}
	if p.height != 1+h {
		fmt.Printf("height fail at node: %v   actual: %d  expected: %d\n", p.key, p.height, 1+h)
		return false
	}
	return checkHeights(p.left) && checkHeights(p.right)
}

// CheckBalance - verify every balance factor is within tolerance
func (tree *Tree) CheckBalance() bool {
	return checkBalance(tree.root)
}

func checkBalance(p *Node) bool {
	if nil == p {
		return true
	}
	if b := p.balanceFactor(); b < -1 || b > 1 {
		fmt.Printf("balance fail at node: %v   factor: %d\n", p.key, b)
		return false
	}
	return checkBalance(p.left) && checkBalance(p.right)
}

// CheckOrder - verify the binary search tree ordering of the keys
func (tree *Tree) CheckOrder() bool {
	return checkOrder(tree.root, nil, nil)
}

func checkOrder(p *Node, lower Item, upper Item) bool {
	if nil == p {
		return true
	}
	if nil != lower && p.key.Compare(lower) <= 0 {
		fmt.Printf("order fail at node: %v   not above: %v\n", p.key, lower)
		return false
	}
	if nil != upper && p.key.Compare(upper) >= 0 {
		fmt.Printf("order fail at node: %v   not below: %v\n", p.key, upper)
		return false
	}
	return checkOrder(p.left, lower, p.key) && checkOrder(p.right, p.key, upper)
}

// CheckCounts - verify the stored count against a full traversal
func (tree *Tree) CheckCounts() bool {
	n := 0
	for p := tree.First(); nil != p; p = p.Next() {
		n += 1
	}
	if n != tree.count {
		fmt.Printf("count fail: traversed: %d  stored: %d\n", n, tree.count)
		return false
	}
	return true
}
