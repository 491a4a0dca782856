// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package optimal

import (
	"cmp"

	"github.com/bitmark-inc/treelab/fault"
)

// Matrices - the (n+1)×(n+1) tables of the Knuth construction, only
// the upper triangle j >= i is meaningful
//
//	AW[i][j]  total weight of keys i+1 .. j
//	AP[i][j]  weighted path length of the optimal tree on those keys
//	AR[i][j]  1-based index of the root of that tree
type Matrices struct {
	AW [][]int `json:"aw"`
	AP [][]int `json:"ap"`
	AR [][]int `json:"ar"`
}

// N - number of keys
func (m *Matrices) N() int {
	return len(m.AW) - 1
}

// Ratio - AP[0][n] / AW[0][n], the weighted average height of the
// optimal tree
func (m *Matrices) Ratio() float64 {
	n := m.N()
	if n <= 0 || 0 == m.AW[0][n] {
		return 0
	}
	return float64(m.AP[0][n]) / float64(m.AW[0][n])
}

func square(n int) [][]int {
	rows := make([][]int, n)
	for i := range rows {
		rows[i] = make([]int, n)
	}
	return rows
}

// Knuth - build the optimal search tree for strictly ascending keys
// with the corresponding weights
func Knuth[K cmp.Ordered](keys []K, weights []int) (*Tree[K], *Matrices, error) {
	if err := validate(keys, weights); nil != err {
		return nil, nil, err
	}
	for i := 1; i < len(keys); i += 1 {
		if keys[i-1] >= keys[i] {
			return nil, nil, fault.ErrUnsortedKeys
		}
	}

	n := len(keys)
	m := &Matrices{
		AW: square(n + 1),
		AP: square(n + 1),
		AR: square(n + 1),
	}

	for i := 0; i <= n; i += 1 {
		for j := i + 1; j <= n; j += 1 {
			m.AW[i][j] = m.AW[i][j-1] + weights[j-1]
		}
	}

	for i := 0; i < n; i += 1 {
		j := i + 1
		m.AP[i][j] = m.AW[i][j]
		m.AR[i][j] = j
	}

	for h := 2; h <= n; h += 1 {
		for i := 0; i <= n-h; i += 1 {
			j := i + h
			r := m.AR[i][j-1]
			least := m.AP[i][r-1] + m.AP[r][j]
			for k := r + 1; k <= m.AR[i+1][j]; k += 1 {
				if x := m.AP[i][k-1] + m.AP[k][j]; x < least {
					r = k
					least = x
				}
			}
			m.AP[i][j] = least + m.AW[i][j]
			m.AR[i][j] = r
		}
	}

	tree := &Tree[K]{
		root:  knuthBuild(keys, weights, m.AR, 0, n),
		count: n,
	}
	return tree, m, nil
}

// internal: subtree for keys l+1 .. r
func knuthBuild[K cmp.Ordered](keys []K, weights []int, ar [][]int, l int, r int) *node[K] {
	if l >= r {
		return nil
	}
	k := ar[l][r]
	return &node[K]{
		key:    keys[k-1],
		weight: weights[k-1],
		left:   knuthBuild(keys, weights, ar, l, k-1),
		right:  knuthBuild(keys, weights, ar, k, r),
	}
}
