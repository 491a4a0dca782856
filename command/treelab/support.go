// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/treelab/configuration"
	"github.com/bitmark-inc/treelab/experiment"
	"github.com/bitmark-inc/treelab/fault"
	"github.com/bitmark-inc/treelab/report"
	"github.com/bitmark-inc/treelab/storage"
)

const (
	orderRandom     = "random"
	orderIncreasing = "increasing"
	orderDecreasing = "decreasing"
)

// every kind that can be archived
var kinds = []string{
	experiment.KindAVL,
	experiment.KindRotations,
	experiment.KindCompare,
	experiment.KindWeighted,
	experiment.KindShannon,
	experiment.KindFano,
}

func kindList() string {
	return strings.Join(kinds, "|")
}

// read the configuration, start logging and open the archive
func setup(c *cli.Context) (*metadata, error) {

	e := c.App.ErrWriter
	verbose := c.GlobalBool("verbose")

	m := &metadata{
		verbose: verbose,
		e:       e,
		w:       c.App.Writer,
	}

	file := c.GlobalString("config-file")
	if "" == file {
		dir, err := os.Getwd()
		if nil != err {
			return nil, err
		}
		m.config = configuration.Default(dir)
	} else {
		if verbose {
			fmt.Fprintf(e, "reading config file: %s\n", file)
		}
		config, err := configuration.Get(file)
		if nil != err {
			return nil, err
		}
		m.config = config

		if err := logger.Initialise(config.Logging); nil != err {
			return nil, err
		}
		m.logging = true
		if err := fault.Initialise(); nil != err {
			return nil, err
		}
		m.log = logger.New("treelab")
		if nil != m.log {
			m.log.Infof("starting: version: %s  config: %q", version, file)
		}
	}

	if s := c.GlobalString("format"); "" != s {
		m.config.Format = s
	}
	format, err := report.ParseFormat(m.config.Format)
	if nil != err {
		return nil, err
	}
	m.format = format

	if seed := c.GlobalInt64("seed"); 0 != seed {
		m.config.Seed = seed
	}

	var progress io.Writer
	if c.GlobalBool("progress") || m.config.Progress {
		progress = e
	}
	m.lab = experiment.New(m.log, progress)

	if "" != m.config.Archive {
		if verbose {
			fmt.Fprintf(e, "archive: %s\n", m.config.Archive)
		}
		if err := storage.Initialise(m.config.Archive, storage.ReadWrite); nil != err {
			return nil, err
		}
	}

	return m, nil
}

// record a failed command in the log before the log is closed
func logged(action cli.ActionFunc) cli.ActionFunc {
	return func(c *cli.Context) error {
		err := action(c)
		if nil == err {
			return nil
		}
		if m, ok := c.App.Metadata["config"].(*metadata); ok && m.logging {
			fault.Criticalf("%s: %s", c.Command.Name, err)
		}
		return err
	}
}

// write tables in the selected format and archive them when an
// archive is open
func emit(m *metadata, tables ...*report.Table) error {
	timestamp := time.Now()

	for i, t := range tables {
		if i > 0 && report.Text == m.format {
			fmt.Fprintln(m.w)
		}
		if err := report.Write(m.w, t, m.format); nil != err {
			return err
		}

		if !storage.IsOpen() {
			continue
		}
		data, err := report.Encode(t)
		if nil != err {
			return err
		}

		// distinct keys for tables emitted together
		ts := timestamp.Add(time.Duration(i))
		if err := storage.StoreReport(t.Kind, ts, data); nil != err {
			return err
		}
		if m.verbose {
			fmt.Fprintf(m.e, "archived: %s  %s\n", t.Kind, ts.UTC().Format(time.RFC3339Nano))
		}
	}
	return nil
}

// parse a comma or space separated list of integers
func parseIntegers(s string) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return ',' == r || ' ' == r || '\t' == r
	})
	values := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if nil != err {
			return nil, fmt.Errorf("invalid integer: %q", f)
		}
		values = append(values, n)
	}
	return values, nil
}

// use the flag value when positive, otherwise the configured value
func positiveOr(value int, fallback int) int {
	if value > 0 {
		return value
	}
	return fallback
}
