// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"strings"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/multiset"
	"github.com/bitmark-inc/multiset/fault"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// a string value for the multiset
type stringItem string

// Compare - string ordering for the multiset interface
func (s stringItem) Compare(x interface{}) int {
	return strings.Compare(string(s), string(x.(stringItem)))
}

func (s stringItem) String() string {
	return string(s)
}

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "delete", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'd'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if err != nil {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--delete=value]… value…", program)
	}

	if len(arguments) < 1 {
		exitwithstatus.Message("%s: at least 1 value is required", program)
	}

	// internal logger
	logging := logger.Configuration{
		Directory: ".",
		File:      "mset-dump.log",
		Size:      1048576,
		Count:     10,
		Console:   true,
		Levels: map[string]string{
			logger.DefaultTag: "info",
		},
	}

	// start logging
	if err = logger.Initialise(logging); err != nil {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); err != nil {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)

	// ------------------
	// start of real main
	// ------------------

	tree := multiset.New()

	for _, arg := range arguments {
		tree.Insert(stringItem(arg))
	}
	log.Infof("inserted: %d values", len(arguments))

	for _, d := range options["delete"] {
		if !tree.Delete(stringItem(d)) {
			log.Warnf("delete: %q not present", d)
		}
	}

	if err := tree.CheckConsistent(); err != nil {
		exitwithstatus.Message("%s: inconsistent tree: %s", program, err)
	}

	depth := tree.Print(true)
	log.Infof("depth: %d", depth)
	log.Infof("stored values: %d  distinct: %d", tree.Count(), tree.Nodes())
	if !tree.IsEmpty() {
		log.Infof("minimum: %v  maximum: %v", tree.Min(), tree.Max())
	}

	if len(options["verbose"]) > 0 {
		it := tree.Iter()
		for value, ok := it.Next(); ok; value, ok = it.Next() {
			log.Infof("value: %v", value)
		}
	}
}
