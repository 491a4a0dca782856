// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/treelab/experiment"
	"github.com/bitmark-inc/treelab/keygen"
)

func runRotations(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	config := experiment.RotationConfig{
		Operations: positiveOr(c.Int("operations"), m.config.Rotations.Operations),
		Rounds:     positiveOr(c.Int("rounds"), m.config.Rotations.Rounds),
	}

	// every key of every round is distinct so widen a range that is
	// too narrow to keep the sampling fast
	total := config.Operations * config.Rounds
	minimum := m.config.Keys.Minimum
	maximum := m.config.Keys.Maximum
	if maximum-minimum+1 < 2*total {
		maximum = minimum + 2*total - 1
	}

	if m.verbose {
		fmt.Fprintf(m.e, "rounds: %d  operations: %d  keys: [%d, %d]\n", config.Rounds, config.Operations, minimum, maximum)
	}

	_, t, err := m.lab.Rotations(keygen.NewRandom(minimum, maximum, m.config.Seed), config)
	if nil != err {
		return err
	}
	return emit(m, t)
}
