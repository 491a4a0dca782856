// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"slices"
	"time"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/treelab/fault"
	"github.com/bitmark-inc/treelab/report"
	"github.com/bitmark-inc/treelab/storage"
)

func runHistory(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if !storage.IsOpen() {
		return fault.ErrDatabaseNotOpen
	}

	kind := c.Args().Get(0)
	if !slices.Contains(kinds, kind) {
		return fmt.Errorf("kind: %q can only be %s", kind, kindList())
	}

	records, err := storage.Reports(kind, c.Int("limit"))
	if nil != err {
		return err
	}
	if 0 == len(records) {
		return fault.ErrNotFoundReport
	}

	if m.verbose {
		fmt.Fprintf(m.e, "%s: %d archived, showing %d\n", kind, storage.ReportCount(kind), len(records))
	}

	for i, r := range records {
		t, err := report.Decode(r.Data)
		if nil != err {
			return err
		}
		if report.Text == m.format {
			if i > 0 {
				fmt.Fprintln(m.w)
			}
			fmt.Fprintf(m.w, "archived: %s\n", r.Timestamp.Local().Format(time.RFC3339))
		}
		if err := report.Write(m.w, t, m.format); nil != err {
			return err
		}
	}
	return nil
}
