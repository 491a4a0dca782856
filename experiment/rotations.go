// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package experiment

import (
	"fmt"

	"github.com/bitmark-inc/treelab/avl"
	"github.com/bitmark-inc/treelab/fault"
	"github.com/bitmark-inc/treelab/keygen"
	"github.com/bitmark-inc/treelab/report"
)

// expected rotations per operation for random keys
const (
	ExpectedInsertRatio = 0.5
	ExpectedDeleteRatio = 0.2
)

// RotationConfig - size of the rotation workload
type RotationConfig struct {
	Operations int // keys inserted then deleted in each round
	Rounds     int
}

// RotationResult - accumulated rotation counts
type RotationResult struct {
	Stats       avl.Stats `json:"stats"`
	InsertRatio float64   `json:"insertRatio"`
	DeleteRatio float64   `json:"deleteRatio"`
}

// Rotations - for each round insert Operations fresh keys into an AVL
// tree and delete them again, counting rotations
func (e *Experiment) Rotations(source keygen.Source, config RotationConfig) (*RotationResult, *report.Table, error) {
	if config.Operations <= 0 || config.Rounds <= 0 {
		return nil, nil, fault.ErrInvalidCount
	}

	keys, err := source.Keys(config.Operations * config.Rounds)
	if nil != err {
		return nil, nil, err
	}
	if len(keys) != config.Operations*config.Rounds {
		return nil, nil, fault.ErrInvalidCount
	}

	tree := avl.New[int]()
	b := e.newBar(2*len(keys), "rotations")

	for round := 0; round < config.Rounds; round += 1 {
		batch := keys[round*config.Operations : (round+1)*config.Operations]

		for _, key := range batch {
			tree.Insert(key)
			b.add(1)
		}
		if err := tree.Check(); nil != err {
			e.errorf("round: %d  after insert: %s", round, err)
			return nil, nil, err
		}

		for _, key := range batch {
			tree.Delete(key)
			b.add(1)
		}
		if err := tree.Check(); nil != err {
			e.errorf("round: %d  after delete: %s", round, err)
			return nil, nil, err
		}
		e.debugf("round: %d  stats: %+v", round, tree.Stats())
	}
	b.finish()

	stats := tree.Stats()
	result := &RotationResult{
		Stats:       stats,
		InsertRatio: stats.InsertRatio(),
		DeleteRatio: stats.DeleteRatio(),
	}

	// each insertion rotates at most once
	if stats.InsertRotations() > stats.Insertions {
		e.errorf("insert rotations: %d > insertions: %d", stats.InsertRotations(), stats.Insertions)
		return nil, nil, fault.ErrRotationRatioExceeded
	}

	e.infof("insert ratio: %.3f  delete ratio: %.3f", result.InsertRatio, result.DeleteRatio)

	t := report.New(KindRotations,
		fmt.Sprintf("AVL rotations: %d rounds of %d operations", config.Rounds, config.Operations),
		"operation", "count", "single", "double", "per operation", "expected",
	)
	t.Add("insert", stats.Insertions, stats.InsertSingle, stats.InsertDouble, result.InsertRatio, ExpectedInsertRatio)
	t.Add("delete", stats.Deletions, stats.DeleteSingle, stats.DeleteDouble, result.DeleteRatio, ExpectedDeleteRatio)
	t.Note("insertions per rotation: %.2f", perRotation(stats.Insertions, stats.InsertRotations()))
	t.Note("deletions per rotation: %.2f", perRotation(stats.Deletions, stats.DeleteRotations()))

	return result, t, nil
}

func perRotation(operations uint64, rotations uint64) float64 {
	if 0 == rotations {
		return 0
	}
	return float64(operations) / float64(rotations)
}
