// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keygen

import (
	"math/rand"

	"github.com/bitmark-inc/treelab/fault"
)

//go:generate mockgen -source=keygen.go -destination=mocks/keygen.go -package=mocks

// Source - anything that can supply n integer keys
type Source interface {
	Keys(n int) ([]int, error)
}

// Random - unique keys drawn uniformly from [Minimum, Maximum]
type Random struct {
	Minimum int
	Maximum int
	rng     *rand.Rand
}

// NewRandom - seeded random key source
func NewRandom(minimum int, maximum int, seed int64) *Random {
	return &Random{
		Minimum: minimum,
		Maximum: maximum,
		rng:     rand.New(rand.NewSource(seed)),
	}
}

// Keys - n distinct keys in arrival order
func (r *Random) Keys(n int) ([]int, error) {
	if n < 0 {
		return nil, fault.ErrInvalidCount
	}
	if r.Maximum < r.Minimum {
		return nil, fault.ErrEmptyKeyRange
	}
	span := r.Maximum - r.Minimum + 1
	if n > span {
		return nil, fault.ErrKeyRangeTooSmall
	}

	used := make(map[int]struct{}, n)
	keys := make([]int, 0, n)
	for len(keys) < n {
		key := r.Minimum + r.rng.Intn(span)
		if _, ok := used[key]; ok {
			continue
		}
		used[key] = struct{}{}
		keys = append(keys, key)
	}
	return keys, nil
}

// Weights - n weights drawn uniformly from [1, limit]
func (r *Random) Weights(n int, limit int) ([]int, error) {
	if n < 0 {
		return nil, fault.ErrInvalidCount
	}
	if limit < 1 {
		return nil, fault.ErrEmptyKeyRange
	}
	weights := make([]int, n)
	for i := range weights {
		weights[i] = 1 + r.rng.Intn(limit)
	}
	return weights, nil
}

// Shuffle - permute keys in place
func (r *Random) Shuffle(keys []int) {
	r.rng.Shuffle(len(keys), func(i, j int) {
		keys[i], keys[j] = keys[j], keys[i]
	})
}

// Sequence - arithmetic progression of keys
type Sequence struct {
	Start int
	Step  int
}

// Increasing - start, start+1, ...
func Increasing(start int) *Sequence {
	return &Sequence{Start: start, Step: 1}
}

// Decreasing - start, start-1, ...
func Decreasing(start int) *Sequence {
	return &Sequence{Start: start, Step: -1}
}

// Keys - the first n terms
func (s *Sequence) Keys(n int) ([]int, error) {
	if n < 0 {
		return nil, fault.ErrInvalidCount
	}
	keys := make([]int, n)
	for i := range keys {
		keys[i] = s.Start + i*s.Step
	}
	return keys, nil
}
