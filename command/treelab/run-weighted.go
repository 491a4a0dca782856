// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"slices"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/treelab/experiment"
	"github.com/bitmark-inc/treelab/keygen"
	"github.com/bitmark-inc/treelab/report"
)

func runWeighted(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	keys, err := parseIntegers(c.String("keys"))
	if nil != err {
		return err
	}
	weights, err := parseIntegers(c.String("weights"))
	if nil != err {
		return err
	}

	random := keygen.NewRandom(m.config.Keys.Minimum, m.config.Keys.Maximum, m.config.Seed)
	if 0 == len(keys) {
		keys, err = random.Keys(m.config.Weighted.Count)
		if nil != err {
			return err
		}
		slices.Sort(keys)
	}
	if 0 == len(weights) {
		weights, err = random.Weights(len(keys), m.config.Weighted.Limit)
		if nil != err {
			return err
		}
	}

	_, matrices, t, err := m.lab.Weighted(keys, weights)
	if nil != err {
		return err
	}

	tables := []*report.Table{t}
	if c.Bool("matrices") {
		tables = append(tables,
			experiment.MatrixTable("AW", matrices.AW),
			experiment.MatrixTable("AP", matrices.AP),
			experiment.MatrixTable("AR", matrices.AR),
		)
	}
	return emit(m, tables...)
}
