// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// avl-dump - build a tree from key=value arguments and display it
//
// demonstration tool: inserts the arguments in order, applies any
// requested removals, then lists the entries in key order together
// with some tree diagnostics.  Inserted keys are also recorded in a
// membership filter which --probe consults before the tree.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/bloom"
	"github.com/bitmark-inc/avltree/fault"
)

// key type for the tree
type stringKey string

// Compare - string ordering for the AVL interface
func (s stringKey) Compare(q interface{}) int {
	return strings.Compare(string(s), string(q.(stringKey)))
}

func (s stringKey) String() string {
	return string(s)
}

func main() {
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "remove", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'r'},
		{Long: "probe", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'p'},
		{Long: "log-dir", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'l'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: option parse error: %s", program, err)
	}

	if len(options["help"]) > 0 || 0 == len(arguments) {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--remove=KEY]… [--probe=KEY]… [--log-dir=DIR] key=value…", program)
	}

	verbose := len(options["verbose"]) > 0

	logDir := "."
	if len(options["log-dir"]) > 0 {
		logDir = options["log-dir"][0]
	}

	// start logging
	err = logger.Initialise(logger.Configuration{
		Directory: logDir,
		File:      "avl-dump.log",
		Size:      1048576,
		Count:     10,
		Console:   verbose,
		Levels: map[string]string{
			logger.DefaultTag: "info",
		},
	})
	if nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// last resort logging channel for consistency failures
	if err := fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	log := logger.New("main")
	log.Info("starting…")

	tree := avl.New()
	filter := bloom.New()

	for _, arg := range arguments {
		s := strings.SplitN(arg, "=", 2)
		if 2 != len(s) || "" == s[0] {
			exitwithstatus.Message("%s: argument not in key=value form: %q", program, arg)
		}
		key := stringKey(s[0])
		if previous, replaced := tree.Insert(key, s[1]); replaced {
			log.Infof("overwrite: %s: %q → %q", key, previous, s[1])
		}
		filter.Insert([]byte(s[0]))
	}

	for _, r := range options["remove"] {
		if value, removed := tree.Remove(stringKey(r)); removed {
			log.Infof("removed: %s: %q", r, value)
		} else {
			log.Warnf("remove: %s: not present", r)
		}
	}

	out := os.Stdout

	fmt.Fprintf(out, "entries: %d\n", tree.Count())
	if !tree.IsEmpty() {
		fmt.Fprintf(out, "min: %v  max: %v\n", tree.Min().Key(), tree.Max().Key())
	}

	iter := tree.Iter()
	for e, ok := iter.Next(); ok; e, ok = iter.Next() {
		fmt.Fprintf(out, "  %v → %v\n", e.Key, e.Value)
	}

	// the filter answers from insert history, the tree from its
	// current contents: a removed key stays "maybe" in the filter
	for _, p := range options["probe"] {
		maybe := filter.Contains([]byte(p))
		_, present := tree.Get(stringKey(p))
		fmt.Fprintf(out, "probe: %s  filter: %v  tree: %v\n", p, maybe, present)
	}

	if verbose {
		depth := tree.Print(true)
		log.Infof("depth: %d", depth)
	}

	if !tree.CheckUp() || !tree.CheckHeights() || !tree.CheckBalance() || !tree.CheckOrder() || !tree.CheckCounts() {
		fault.Panic("avl-dump: tree failed consistency check")
	}

	log.Info("finished")
}
