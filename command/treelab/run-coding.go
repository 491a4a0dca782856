// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/treelab/coding"
	"github.com/bitmark-inc/treelab/experiment"
)

func codingFlags() []cli.Flag {
	return []cli.Flag{
		cli.IntFlag{
			Name:  "minimum",
			Value: -1,
			Usage: " smallest acceptable input `BYTES` [configuration value if negative]",
		},
		cli.IntFlag{
			Name:  "sample",
			Value: 0,
			Usage: " leading `BYTES` to encode",
		},
		cli.IntFlag{
			Name:  "symbols",
			Value: 0,
			Usage: " code table rows to show `COUNT`",
		},
	}
}

func runShannon(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	text, config, err := codingInput(c, m)
	if nil != err {
		return err
	}

	_, tables, err := m.lab.Shannon(text, config)
	if nil != err {
		return err
	}
	return emit(m, tables...)
}

func runFano(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name := c.String("method")
	if "" == name {
		name = m.config.Coding.Method
	}
	method, err := coding.ParseMethod(name)
	if nil != err {
		return err
	}

	text, config, err := codingInput(c, m)
	if nil != err {
		return err
	}

	_, tables, err := m.lab.Fano(text, method, config)
	if nil != err {
		return err
	}
	return emit(m, tables...)
}

// the whole input file and the limits to apply to it
func codingInput(c *cli.Context, m *metadata) ([]byte, experiment.CodingConfig, error) {

	config := experiment.CodingConfig{
		Minimum: m.config.Coding.Minimum,
		Sample:  positiveOr(c.Int("sample"), m.config.Coding.Sample),
		Symbols: positiveOr(c.Int("symbols"), m.config.Coding.Symbols),
	}
	if n := c.Int("minimum"); n >= 0 {
		config.Minimum = n
	}

	if 1 != c.NArg() {
		return nil, config, fmt.Errorf("exactly one FILE is required, %d were given", c.NArg())
	}
	fileName := c.Args().Get(0)

	if m.verbose {
		fmt.Fprintf(m.e, "reading: %s\n", fileName)
	}

	var text []byte
	var err error
	if "-" == fileName {
		text, err = io.ReadAll(os.Stdin)
	} else {
		text, err = os.ReadFile(fileName)
	}
	return text, config, err
}
