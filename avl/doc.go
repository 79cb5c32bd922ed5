// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree with the addition of parent
// pointers to allow iteration through the nodes without an explicit
// stack or recursion
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.  Iteration must not overlap any insert or remove.
//
// Each node caches its own height; the balance factor of a node is
// the left sub-tree height minus the right sub-tree height and is
// kept in the range -1…+1 by rotations performed while walking from
// the point of a mutation back up towards the root.
//
// This version allows for data associated with key, which can be
// overwritten by an insert with the same key.  The overwrite happens
// in place: the node keeps its identity and position and no
// rebalancing occurs.
package avl
