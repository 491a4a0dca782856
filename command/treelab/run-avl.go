// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/treelab/keygen"
	"github.com/bitmark-inc/treelab/report"
)

func runAVL(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	random := keygen.NewRandom(m.config.Keys.Minimum, m.config.Keys.Maximum, m.config.Seed)

	keys, err := parseIntegers(c.String("keys"))
	if nil != err {
		return err
	}
	if 0 == len(keys) {
		keys, err = random.Keys(positiveOr(c.Int("count"), m.config.Keys.Count))
		if nil != err {
			return err
		}
	}

	deletes, err := parseIntegers(c.String("delete"))
	if nil != err {
		return err
	}
	if 0 == len(deletes) {
		n := c.Int("deletes")
		if n < 0 {
			n = m.config.Keys.Deletes
		}
		deletes = pick(random, keys, n)
	}

	// the drawing is only useful next to a text table
	var w io.Writer
	if report.Text == m.format {
		w = m.w
	}

	_, t, err := m.lab.BuildAVL(w, keys, deletes)
	if nil != err {
		return err
	}
	return emit(m, t)
}

// n keys chosen at random from keys, without repeats
func pick(random *keygen.Random, keys []int, n int) []int {
	if n <= 0 {
		return nil
	}
	chosen := append([]int(nil), keys...)
	random.Shuffle(chosen)
	return chosen[:min(n, len(chosen))]
}
