// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Rotations re-root the sub-tree held in an owning slot while
// preserving the in-order key sequence.  All of them take the slot as
// **Node because the slot itself must be redirected to the new
// sub-tree root.  Heights are recomputed child first, then the new
// parent.

// single left rotation: the right child becomes the sub-tree root
//
// a no-op if there is no right child to promote
func rotateLeft(pp **Node) {
	p := *pp
	if nil == p || nil == p.right {
		return
	}
	p1 := p.right

	p.right = p1.left
	if nil != p.right {
		p.right.up = p
	}

	p1.up = p.up
	p1.left = p
	p.up = p1

	p.updateHeight()
	p1.updateHeight()

	*pp = p1
}

// single right rotation: the left child becomes the sub-tree root
//
// a no-op if there is no left child to promote
func rotateRight(pp **Node) {
	p := *pp
	if nil == p || nil == p.left {
		return
	}
	p1 := p.left

	p.left = p1.right
	if nil != p.left {
		p.left.up = p
	}

	p1.up = p.up
	p1.right = p
	p.up = p1

	p.updateHeight()
	p1.updateHeight()

	*pp = p1
}

// double rotation for a right-heavy node whose right child is
// left-heavy: rotate the right child right, then the root left
func rotateRightLeft(pp **Node) {
	if nil != *pp {
		rotateRight(&(*pp).right)
		rotateLeft(pp)
	}
}

// double rotation for a left-heavy node whose left child is
// right-heavy: rotate the left child left, then the root right
func rotateLeftRight(pp **Node) {
	if nil != *pp {
		rotateLeft(&(*pp).left)
		rotateRight(pp)
	}
}
