// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package bloom - a small fixed-size approximate membership filter
//
// Contains reports true for every item that was inserted (no false
// negatives) and may report true for items that were never inserted
// (false positives).  The filter is completely independent of any
// other data structure in this module.
//
// Not thread safe: apply the same external locking discipline as for
// any other single mutable resource.
package bloom
