// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/treelab/coding"
	"github.com/bitmark-inc/treelab/fault"
	"github.com/bitmark-inc/treelab/report"
	"github.com/bitmark-inc/treelab/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file
	defaultArchive       = "" // no archive

	defaultLogDirectory = "log"
	defaultLogFile      = "treelab.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultSeed = 1

	defaultKeyCount   = 1000
	defaultKeyMinimum = 1
	defaultKeyMaximum = 100000
	defaultDeletes    = 100

	defaultOperations = 10000
	defaultRounds     = 10

	defaultWeightCount = 10
	defaultWeightLimit = 100

	defaultCodingMinimum = 10240
	defaultCodingSample  = 100
	defaultCodingSymbols = 0
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

// KeyConfiguration - random key workloads
type KeyConfiguration struct {
	Count   int `gluamapper:"count" json:"count"`
	Minimum int `gluamapper:"minimum" json:"minimum"`
	Maximum int `gluamapper:"maximum" json:"maximum"`
	Deletes int `gluamapper:"deletes" json:"deletes"`
}

// RotationConfiguration - the rotation counting workload
type RotationConfiguration struct {
	Operations int `gluamapper:"operations" json:"operations"`
	Rounds     int `gluamapper:"rounds" json:"rounds"`
}

// WeightedConfiguration - the weighted tree workload
type WeightedConfiguration struct {
	Count int `gluamapper:"count" json:"count"`
	Limit int `gluamapper:"limit" json:"limit"`
}

// CodingConfiguration - the entropy coding workloads
type CodingConfiguration struct {
	Minimum int    `gluamapper:"minimum" json:"minimum"`
	Sample  int    `gluamapper:"sample" json:"sample"`
	Symbols int    `gluamapper:"symbols" json:"symbols"`
	Method  string `gluamapper:"method" json:"method"`
}

// Configuration - everything the treelab command reads from its
// configuration file
type Configuration struct {
	DataDirectory string                `gluamapper:"data_directory" json:"data_directory"`
	Archive       string                `gluamapper:"archive" json:"archive"`
	Format        string                `gluamapper:"format" json:"format"`
	Seed          int64                 `gluamapper:"seed" json:"seed"`
	Progress      bool                  `gluamapper:"progress" json:"progress"`
	Keys          KeyConfiguration      `gluamapper:"keys" json:"keys"`
	Rotations     RotationConfiguration `gluamapper:"rotations" json:"rotations"`
	Weighted      WeightedConfiguration `gluamapper:"weighted" json:"weighted"`
	Coding        CodingConfiguration   `gluamapper:"coding" json:"coding"`
	Logging       logger.Configuration  `gluamapper:"logging" json:"logging"`
}

// Default - configuration used when no file is given, relative paths
// are against the data directory
func Default(dataDirectory string) *Configuration {
	return &Configuration{
		DataDirectory: dataDirectory,
		Archive:       defaultArchive,
		Format:        report.Text.String(),
		Seed:          defaultSeed,
		Progress:      false,

		Keys: KeyConfiguration{
			Count:   defaultKeyCount,
			Minimum: defaultKeyMinimum,
			Maximum: defaultKeyMaximum,
			Deletes: defaultDeletes,
		},
		Rotations: RotationConfiguration{
			Operations: defaultOperations,
			Rounds:     defaultRounds,
		},
		Weighted: WeightedConfiguration{
			Count: defaultWeightCount,
			Limit: defaultWeightLimit,
		},
		Coding: CodingConfiguration{
			Minimum: defaultCodingMinimum,
			Sample:  defaultCodingSample,
			Symbols: defaultCodingSymbols,
			Method:  coding.Classic.String(),
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    maps.Clone(defaultLogLevels),
		},
	}
}

// Get - will read decode and verify the configuration
func Get(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}
	if !util.EnsureFileExists(configurationFileName) {
		return nil, fault.ErrNotFoundConfigFile
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := Default(defaultDataDirectory)

	if err := ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("%w: %q", fault.ErrInvalidDataDirectory, options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	}
	options.DataDirectory = filepath.Clean(options.DataDirectory)

	if err := options.Finish(); nil != err {
		return nil, err
	}

	// done
	return options, nil
}

// Finish - validate the values and expand every path against the
// data directory, creating the directories that do not exist
func (c *Configuration) Finish() error {

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(c.DataDirectory); nil != err {
		return err
	} else if !fileInfo.IsDir() {
		return fmt.Errorf("%w: %q is not a directory", fault.ErrInvalidDataDirectory, c.DataDirectory)
	}

	c.Format = strings.ToLower(c.Format)
	if _, err := report.ParseFormat(c.Format); nil != err {
		return err
	}
	c.Coding.Method = strings.ToLower(c.Coding.Method)
	if _, err := coding.ParseMethod(c.Coding.Method); nil != err {
		return err
	}

	// counts must be positive, anything else takes its default
	positive := []struct {
		value    *int
		fallback int
	}{
		{&c.Keys.Count, defaultKeyCount},
		{&c.Rotations.Operations, defaultOperations},
		{&c.Rotations.Rounds, defaultRounds},
		{&c.Weighted.Count, defaultWeightCount},
		{&c.Weighted.Limit, defaultWeightLimit},
	}
	for _, p := range positive {
		if *p.value <= 0 {
			*p.value = p.fallback
		}
	}
	if c.Keys.Deletes < 0 {
		c.Keys.Deletes = 0
	}
	if c.Keys.Maximum-c.Keys.Minimum+1 < c.Keys.Count {
		return fault.ErrKeyRangeTooSmall
	}

	// optional absolute paths i.e. blank or an absolute path
	optionalAbsolute := []*string{
		&c.Archive,
	}
	for _, f := range optionalAbsolute {
		if "" != *f {
			*f = util.EnsureAbsolute(c.DataDirectory, *f)
		}
	}

	// fail if any of these are not simple file names i.e. must
	// not contain path seperator
	switch filepath.Dir(c.Logging.File) {
	case "", ".":
	default:
		return fmt.Errorf("%w: %q", fault.ErrInvalidFileName, c.Logging.File)
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&c.Logging.Directory,
	} {
		*d = util.EnsureAbsolute(c.DataDirectory, *d)
		if err := os.MkdirAll(*d, 0700); nil != err {
			return err
		}
	}

	return nil
}
