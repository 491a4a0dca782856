// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coding

import (
	"bufio"
	"cmp"
	"io"
	"slices"

	"github.com/bitmark-inc/treelab/fault"
)

// Frequencies - occurrence count of every byte value
type Frequencies struct {
	Counts [256]int
	Total  int
}

// Symbol - a byte with its occurrence count and probability
type Symbol struct {
	Value       byte    `json:"value"`
	Count       int     `json:"count"`
	Probability float64 `json:"probability"`
}

// CountFrequencies - read the stream to EOF counting bytes
func CountFrequencies(r io.Reader) (*Frequencies, error) {
	f := &Frequencies{}
	br := bufio.NewReader(r)
	for {
		b, err := br.ReadByte()
		if io.EOF == err {
			return f, nil
		}
		if nil != err {
			return nil, err
		}
		f.Counts[b] += 1
		f.Total += 1
	}
}

// RequireMinimum - error if fewer than minimum bytes were counted
func (f *Frequencies) RequireMinimum(minimum int) error {
	if f.Total < minimum {
		return fault.ErrInputTooSmall
	}
	return nil
}

// Symbols - every byte that occurred, highest probability first, ties
// in ascending byte order
func (f *Frequencies) Symbols() []Symbol {
	symbols := make([]Symbol, 0, 256)
	if 0 == f.Total {
		return symbols
	}
	for i, n := range f.Counts {
		if 0 == n {
			continue
		}
		symbols = append(symbols, Symbol{
			Value:       byte(i),
			Count:       n,
			Probability: float64(n) / float64(f.Total),
		})
	}
	slices.SortStableFunc(symbols, func(a, b Symbol) int {
		return cmp.Compare(b.Count, a.Count)
	})
	return symbols
}
