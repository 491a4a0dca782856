// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/treelab/configuration"
	"github.com/bitmark-inc/treelab/experiment"
	"github.com/bitmark-inc/treelab/fault"
	"github.com/bitmark-inc/treelab/report"
	"github.com/bitmark-inc/treelab/storage"
)

type metadata struct {
	config  *configuration.Configuration
	format  report.Format
	verbose bool
	logging bool
	log     *logger.L
	lab     *experiment.Experiment
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	app := cli.NewApp()
	app.Name = "treelab"
	app.Usage = "search tree and entropy coding laboratory"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config-file, c",
			Value: "",
			Usage: " configuration `FILE` [defaults if omitted]",
		},
		cli.StringFlag{
			Name:  "format, f",
			Value: "",
			Usage: " output `FORMAT` [table|json|yaml]",
		},
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.BoolFlag{
			Name:  "progress, p",
			Usage: " show progress of long workloads",
		},
		cli.Int64Flag{
			Name:  "seed, s",
			Value: 0,
			Usage: " random `SEED` [configuration value if zero]",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "avl",
			Usage:     "build an AVL tree, print it, then delete keys",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "keys, k",
					Value: "",
					Usage: " comma separated `KEYS` to insert [random if omitted]",
				},
				cli.IntFlag{
					Name:  "count, n",
					Value: 0,
					Usage: " number of random keys `COUNT`",
				},
				cli.StringFlag{
					Name:  "delete, d",
					Value: "",
					Usage: " comma separated `KEYS` to delete",
				},
				cli.IntFlag{
					Name:  "deletes, D",
					Value: -1,
					Usage: " number of inserted keys to delete at random `COUNT`",
				},
			},
			Action: logged(runAVL),
		},
		{
			Name:      "rotations",
			Usage:     "count AVL rotations over repeated insert/delete rounds",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "operations, n",
					Value: 0,
					Usage: " insertions and deletions per round `COUNT`",
				},
				cli.IntFlag{
					Name:  "rounds, r",
					Value: 0,
					Usage: " number of rounds `COUNT`",
				},
			},
			Action: logged(runRotations),
		},
		{
			Name:      "compare",
			Usage:     "compare ISDP, random, AVL and DBD trees built from the same keys",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "count, n",
					Value: 0,
					Usage: " number of keys `COUNT`",
				},
				cli.StringFlag{
					Name:  "order, o",
					Value: orderRandom,
					Usage: " key `ORDER` [random|increasing|decreasing]",
				},
			},
			Action: logged(runCompare),
		},
		{
			Name:      "weighted",
			Usage:     "compare the optimal weighted tree with the A1 and A2 heuristics",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "keys, k",
					Value: "",
					Usage: " comma separated ascending `KEYS` [random if omitted]",
				},
				cli.StringFlag{
					Name:  "weights, w",
					Value: "",
					Usage: " comma separated `WEIGHTS`, one per key",
				},
				cli.BoolFlag{
					Name:  "matrices, m",
					Usage: " also show the AW, AP and AR matrices",
				},
			},
			Action: logged(runWeighted),
		},
		{
			Name:      "shannon",
			Usage:     "Shannon code of a file",
			ArgsUsage: "FILE\n   (FILE = - for standard input)",
			Flags:     codingFlags(),
			Action:    logged(runShannon),
		},
		{
			Name:      "fano",
			Usage:     "Fano code of a file",
			ArgsUsage: "FILE\n   (FILE = - for standard input)",
			Flags: append(codingFlags(),
				cli.StringFlag{
					Name:  "method, M",
					Value: "",
					Usage: " split `METHOD` [classic|a2|entropy]",
				},
			),
			Action: logged(runFano),
		},
		{
			Name:      "history",
			Usage:     "show archived reports of one kind, newest first",
			ArgsUsage: "KIND\n   (KIND = " + kindList() + ")",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "limit, l",
					Value: 1,
					Usage: " number of reports `COUNT` [0 for all]",
				},
			},
			Action: logged(runHistory),
		},
		{
			Name:  "version",
			Usage: "display treelab version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// read the configuration
	app.Before = func(c *cli.Context) error {

		// to suppress reading config file if certain commands
		command := c.Args().Get(0)
		if "" == command || "version" == command || "help" == command || "h" == command {
			return nil
		}

		m, err := setup(c)
		if nil != err {
			return err
		}
		c.App.Metadata["config"] = m
		return nil
	}

	// close the archive and flush the log
	app.After = func(c *cli.Context) error {
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok {
			return nil
		}
		storage.Finalise()
		if m.logging {
			fault.Finalise()
			if nil != m.log {
				m.log.Infof("finished")
			}
			logger.Finalise()
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		exitwithstatus.Message("%s: terminated with error: %s", app.Name, err)
	}
}
