// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Item - a key must implement the Compare function
type Item interface {
	Compare(interface{}) int // for left/right ordering of items
}

// Node - a node in the tree
//
// The node owns its left and right sub-trees; the up pointer is a
// non-owning back-reference used only for navigation and is kept
// consistent by every structural mutation.
type Node struct {
	left   *Node       // left sub-tree
	right  *Node       // right sub-tree
	up     *Node       // points to parent node
	key    Item        // key part for ordering
	value  interface{} // value part for data storage
	height uint        // 1 + max(sub-tree heights); leaf = 1
}

// height of the left sub-tree, zero if absent
func (p *Node) leftHeight() uint {
	if nil == p.left {
		return 0
	}
	return p.left.height
}

// height of the right sub-tree, zero if absent
func (p *Node) rightHeight() uint {
	if nil == p.right {
		return 0
	}
	return p.right.height
}

// recompute the cached height from the sub-tree heights
func (p *Node) updateHeight() {
	h := p.leftHeight()
	if r := p.rightHeight(); r > h {
		h = r
	}
	p.height = 1 + h
}

// balance factor: left height - right height
func (p *Node) balanceFactor() int {
	return int(p.leftHeight()) - int(p.rightHeight())
}

// internal: lowest node in a sub-tree
func (p *Node) first() *Node {
	if nil == p {
		return nil
	}
	for nil != p.left {
		p = p.left
	}
	return p
}

// internal: highest node in a sub-tree
func (p *Node) last() *Node {
	if nil == p {
		return nil
	}
	for nil != p.right {
		p = p.right
	}
	return p
}

// Key - read the key from a node item
func (p *Node) Key() Item {
	return p.key
}

// Value - read the value from a node item
func (p *Node) Value() interface{} {
	return p.value
}

// Parent - return parent node of a node
func (p *Node) Parent() *Node {
	return p.up
}

// Left - the root of the left sub-tree, nil if absent
func (p *Node) Left() *Node {
	return p.left
}

// Right - the root of the right sub-tree, nil if absent
func (p *Node) Right() *Node {
	return p.right
}

// Height - the cached height of the sub-tree rooted at this node
func (p *Node) Height() uint {
	return p.height
}

// Depth - get the depth of a node
func (p *Node) Depth() uint {
	count := uint(0)
	parent := p.up
	for nil != parent {
		count += 1
		parent = parent.up
	}
	return count
}
