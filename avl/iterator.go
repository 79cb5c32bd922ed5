// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// First - return the node with the lowest key value
func (tree *Tree) First() *Node {
	return tree.root.first()
}

// Last - return the node with the highest key value
func (tree *Tree) Last() *Node {
	return tree.root.last()
}

// Next - given a node, return the node with the next highest key
// value or nil if no more nodes
//
// uses only the parent back-references: either the leftmost node of
// the right sub-tree, or the first ancestor that holds the current
// chain as its left child
func (p *Node) Next() *Node {
	if nil != p.right {
		return p.right.first()
	}
	for nil != p.up && p == p.up.right {
		p = p.up
	}
	return p.up
}

// Prev - given a node, return the node with the next lowest key
// value or nil if no more nodes
func (p *Node) Prev() *Node {
	if nil != p.left {
		return p.left.last()
	}
	for nil != p.up && p == p.up.left {
		p = p.up
	}
	return p.up
}

// iteration state shared by all of the read-only projections
//
// the walk is lazy and single-pass; mutating the tree while an
// iterator is live is forbidden
type iterator struct {
	next *Node
}

// advance, returning the node just passed
func (it *iterator) step() *Node {
	p := it.next
	if nil != p {
		it.next = p.Next()
	}
	return p
}

// Iterator - in-order iteration producing key/value entries
type Iterator struct {
	iterator
}

// KeyIterator - in-order iteration producing keys only
type KeyIterator struct {
	iterator
}

// ValueIterator - in-order iteration producing values only
type ValueIterator struct {
	iterator
}

// NodeIterator - in-order iteration over the raw nodes
//
// for diagnostic and introspection use
type NodeIterator struct {
	iterator
}

// Iter - iterate key/value pairs in key order
func (tree *Tree) Iter() *Iterator {
	return &Iterator{iterator{next: tree.root.first()}}
}

// Keys - iterate keys in order
func (tree *Tree) Keys() *KeyIterator {
	return &KeyIterator{iterator{next: tree.root.first()}}
}

// Values - iterate values in key order
func (tree *Tree) Values() *ValueIterator {
	return &ValueIterator{iterator{next: tree.root.first()}}
}

// Nodes - iterate the nodes themselves in key order
func (tree *Tree) Nodes() *NodeIterator {
	return &NodeIterator{iterator{next: tree.root.first()}}
}

// Next - the next entry, false when iteration is finished
func (it *Iterator) Next() (Entry, bool) {
	p := it.step()
	if nil == p {
		return Entry{}, false
	}
	return Entry{Key: p.key, Value: p.value}, true
}

// Next - the next key, false when iteration is finished
func (it *KeyIterator) Next() (Item, bool) {
	p := it.step()
	if nil == p {
		return nil, false
	}
	return p.key, true
}

// Next - the next value, false when iteration is finished
func (it *ValueIterator) Next() (interface{}, bool) {
	p := it.step()
	if nil == p {
		return nil, false
	}
	return p.value, true
}

// Next - the next node, nil when iteration is finished
func (it *NodeIterator) Next() *Node {
	return it.step()
}

// DrainIterator - consuming in-order iteration
//
// the tree is emptied immediately and its nodes are released one by
// one as entries are produced.  Parent pointers of detached nodes are
// no longer valid, so the walk keeps the leftmost chain of the
// remaining sub-trees on an explicit stack instead.
type DrainIterator struct {
	stack []*Node
}

// Drain - consume the tree, yielding its entries in key order
//
// the tree is empty once Drain returns; the iterator owns all former
// nodes
func (tree *Tree) Drain() *DrainIterator {
	it := &DrainIterator{}
	it.pushLeftChain(tree.root)
	tree.root = nil
	tree.count = 0
	return it
}

// stack the path from p down to its leftmost descendant
func (it *DrainIterator) pushLeftChain(p *Node) {
	for nil != p {
		it.stack = append(it.stack, p)
		p = p.left
	}
}

// Next - the next entry, false when the iterator is exhausted
func (it *DrainIterator) Next() (Entry, bool) {
	n := len(it.stack)
	if 0 == n {
		return Entry{}, false
	}
	p := it.stack[n-1]
	it.stack = it.stack[:n-1]
	it.pushLeftChain(p.right)

	e := Entry{Key: p.key, Value: p.value}
	freeNode(p)
	return e, true
}
