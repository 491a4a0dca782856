// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/treelab/configuration"
	"github.com/bitmark-inc/treelab/keygen"
)

func runCompare(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	source, err := keySource(c.String("order"), m.config)
	if nil != err {
		return err
	}

	_, t, err := m.lab.Compare(source, positiveOr(c.Int("count"), m.config.Keys.Count))
	if nil != err {
		return err
	}
	return emit(m, t)
}

// the key source for an arrival order
func keySource(order string, config *configuration.Configuration) (keygen.Source, error) {
	switch order {
	case orderRandom, "":
		return keygen.NewRandom(config.Keys.Minimum, config.Keys.Maximum, config.Seed), nil
	case orderIncreasing:
		return keygen.Increasing(config.Keys.Minimum), nil
	case orderDecreasing:
		return keygen.Decreasing(config.Keys.Maximum), nil
	default:
		return nil, fmt.Errorf("order: %q can only be %s/%s/%s", order, orderRandom, orderIncreasing, orderDecreasing)
	}
}
