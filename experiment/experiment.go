// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package experiment

import (
	"io"

	"github.com/bitmark-inc/logger"
	"github.com/schollz/progressbar/v3"
)

// report kinds, also used as archive keys
const (
	KindAVL       = "avl"
	KindRotations = "rotations"
	KindCompare   = "compare"
	KindWeighted  = "weighted"
	KindShannon   = "shannon"
	KindFano      = "fano"
)

// Experiment - shared context of the workloads
type Experiment struct {
	log      *logger.L
	progress io.Writer
}

// New - create an experiment runner
//
// progress receives a progress bar for long workloads, nil for none
func New(log *logger.L, progress io.Writer) *Experiment {
	return &Experiment{
		log:      log,
		progress: progress,
	}
}

// a bar that does nothing when progress is disabled
type bar struct {
	b *progressbar.ProgressBar
	w io.Writer
}

func (e *Experiment) newBar(total int, description string) *bar {
	if nil == e.progress {
		return &bar{}
	}
	return &bar{
		w: e.progress,
		b: progressbar.NewOptions(total,
			progressbar.OptionSetWriter(e.progress),
			progressbar.OptionSetDescription(description),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowCount(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "=",
				SaucerHead:    ">",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
		),
	}
}

func (b *bar) add(n int) {
	if nil != b.b {
		_ = b.b.Add(n)
	}
}

func (b *bar) finish() {
	if nil != b.b {
		_ = b.b.Finish()
		_, _ = io.WriteString(b.w, "\n")
	}
}

func (e *Experiment) debugf(format string, arguments ...interface{}) {
	if nil != e.log {
		e.log.Debugf(format, arguments...)
	}
}

func (e *Experiment) infof(format string, arguments ...interface{}) {
	if nil != e.log {
		e.log.Infof(format, arguments...)
	}
}

func (e *Experiment) errorf(format string, arguments ...interface{}) {
	if nil != e.log {
		e.log.Errorf(format, arguments...)
	}
}
