// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package optimal

import (
	"cmp"
	"slices"
)

type item[K cmp.Ordered] struct {
	key    K
	weight int
}

func items[K cmp.Ordered](keys []K, weights []int) []item[K] {
	s := make([]item[K], len(keys))
	for i := range keys {
		s[i] = item[K]{key: keys[i], weight: weights[i]}
	}
	return s
}

// A1 - insert keys into a search tree heaviest first, ties keep input
// order and equal keys descend to the right
func A1[K cmp.Ordered](keys []K, weights []int) (*Tree[K], error) {
	if err := validate(keys, weights); nil != err {
		return nil, err
	}
	s := items(keys, weights)
	slices.SortStableFunc(s, func(a, b item[K]) int {
		return cmp.Compare(b.weight, a.weight)
	})

	tree := &Tree[K]{}
	for _, it := range s {
		pp := &tree.root
		for nil != *pp {
			if it.key < (*pp).key {
				pp = &(*pp).left
			} else {
				pp = &(*pp).right
			}
		}
		*pp = &node[K]{key: it.key, weight: it.weight}
		tree.count += 1
	}
	return tree, nil
}

// A2 - sort by key then root each range at the first key whose
// cumulative weight crosses half of the range total
func A2[K cmp.Ordered](keys []K, weights []int) (*Tree[K], error) {
	if err := validate(keys, weights); nil != err {
		return nil, err
	}
	s := items(keys, weights)
	slices.SortStableFunc(s, func(a, b item[K]) int {
		return cmp.Compare(a.key, b.key)
	})
	return &Tree[K]{
		root:  a2(s, 0, len(s)-1),
		count: len(s),
	}, nil
}

func a2[K cmp.Ordered](s []item[K], l int, r int) *node[K] {
	if l > r {
		return nil
	}
	if l == r {
		return &node[K]{key: s[l].key, weight: s[l].weight}
	}

	total := 0
	for i := l; i <= r; i += 1 {
		total += s[i].weight
	}
	half := total / 2

	root := l
	sum := 0
	for i := l; i <= r; i += 1 {
		if sum < half && sum+s[i].weight > half {
			root = i
			break
		}
		sum += s[i].weight
	}

	return &node[K]{
		key:    s[root].key,
		weight: s[root].weight,
		left:   a2(s, l, root-1),
		right:  a2(s, root+1, r),
	}
}
