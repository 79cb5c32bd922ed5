// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bloom

import (
	"github.com/spaolacci/murmur3"
)

// filter geometry
const (
	filterBits  = 512 // total bits in the block
	wordBits    = 64
	filterWords = filterBits / wordBits
)

// Filter - a fixed 512 bit membership filter probed by the two
// halves of a 128 bit murmur3 hash
//
// the zero value is an empty filter ready for use
type Filter struct {
	bits [filterWords]uint64
}

// New - create an empty filter
func New() *Filter {
	return &Filter{}
}

// the two probe positions for an item
func probes(item []byte) (uint64, uint64) {
	h1, h2 := murmur3.Sum128(item)
	return h1 % filterBits, h2 % filterBits
}

// Insert - add an item to the filter
func (f *Filter) Insert(item []byte) {
	b1, b2 := probes(item)
	f.bits[b1/wordBits] |= 1 << (b1 % wordBits)
	f.bits[b2/wordBits] |= 1 << (b2 % wordBits)
}

// Contains - membership test
//
// false is definite; true may be a false positive
func (f *Filter) Contains(item []byte) bool {
	b1, b2 := probes(item)
	if 0 == f.bits[b1/wordBits]&(1<<(b1%wordBits)) {
		return false
	}
	return 0 != f.bits[b2/wordBits]&(1<<(b2%wordBits))
}

// Clear - remove all items
func (f *Filter) Clear() {
	f.bits = [filterWords]uint64{}
}
