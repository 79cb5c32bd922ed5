// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bloom_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avltree/bloom"
)

// every inserted item must be reported present
func TestNoFalseNegatives(t *testing.T) {
	f := bloom.New()

	items := make([][]byte, 40)
	for i := range items {
		items[i] = []byte(fmt.Sprintf("item-%04d", i))
		f.Insert(items[i])
	}

	for i, item := range items {
		assert.True(t, f.Contains(item), "false negative for item %d", i)
	}
}

// the zero value is an empty filter ready for use
func TestZeroValue(t *testing.T) {
	var f bloom.Filter

	assert.False(t, f.Contains([]byte("anything")), "empty filter reported membership")

	f.Insert([]byte("anything"))
	assert.True(t, f.Contains([]byte("anything")), "inserted item missing")
}

func TestClear(t *testing.T) {
	f := bloom.New()

	f.Insert([]byte("hello"))
	f.Insert([]byte("world"))
	assert.True(t, f.Contains([]byte("hello")), "inserted item missing")
	assert.True(t, f.Contains([]byte("world")), "inserted item missing")

	f.Clear()

	assert.False(t, f.Contains([]byte("hello")), "item survived clear")
	assert.False(t, f.Contains([]byte("world")), "item survived clear")

	// reusable after clearing
	f.Insert([]byte("again"))
	assert.True(t, f.Contains([]byte("again")), "insert after clear failed")
}

// false positives are allowed but an empty filter has none, and a
// lightly loaded filter rejects most absent items
func TestMostlyRejectsAbsent(t *testing.T) {
	f := bloom.New()
	f.Insert([]byte("only-item"))

	rejected := 0
	const probes = 1000
	for i := 0; i < probes; i += 1 {
		if !f.Contains([]byte(fmt.Sprintf("absent-%04d", i))) {
			rejected += 1
		}
	}

	// with 2 of 512 bits set the false positive rate is tiny; allow
	// a generous margin so the test is not sensitive to hash details
	if rejected < probes*9/10 {
		t.Fatalf("rejected only %d of %d absent items", rejected, probes)
	}
}
