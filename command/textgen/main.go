// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"

	"github.com/bitmark-inc/treelab/keygen"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

const (
	defaultSize  = 10240
	defaultStyle = "russian"
)

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "size", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'n'},
		{Long: "style", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 's'},
		{Long: "seed", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'r'},
		{Long: "output", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'o'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 || len(arguments) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--version] [--size=BYTES] [--style=russian|technical] [--seed=N] [--output=FILE]", program)
	}

	size := defaultSize
	if s := last(options["size"]); "" != s {
		size, err = strconv.Atoi(s)
		if nil != err || size <= 0 {
			exitwithstatus.Message("%s: invalid size: %q", program, s)
		}
	}

	styleName := defaultStyle
	if s := last(options["style"]); "" != s {
		styleName = s
	}
	style, err := keygen.ParseStyle(styleName)
	if nil != err {
		exitwithstatus.Message("%s: style: %q error: %s", program, styleName, err)
	}

	seed := time.Now().UnixNano()
	if s := last(options["seed"]); "" != s {
		seed, err = strconv.ParseInt(s, 10, 64)
		if nil != err {
			exitwithstatus.Message("%s: invalid seed: %q", program, s)
		}
	}

	var out io.Writer = os.Stdout
	if name := last(options["output"]); "" != name && "-" != name {
		f, err := os.Create(name)
		if nil != err {
			exitwithstatus.Message("%s: create: %q error: %s", program, name, err)
		}
		defer f.Close()
		out = f
	}

	n, err := keygen.Text(out, size, style, rand.New(rand.NewSource(seed)))
	if nil != err {
		exitwithstatus.Message("%s: generate error: %s", program, err)
	}
	if n < size {
		exitwithstatus.Message("%s: short output: %d of %d bytes", program, n, size)
	}
}

// the final occurrence of a repeated option
func last(values []string) string {
	if 0 == len(values) {
		return ""
	}
	return values[len(values)-1]
}
