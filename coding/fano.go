// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coding

import (
	"math"
	"strings"

	"github.com/bitmark-inc/treelab/fault"
)

// Method - the rule used to split a range of symbols in two
type Method int

// split rules
const (
	Classic  Method = iota // move the boundary left while the left sum is not smaller
	MedianA2               // first symbol whose cumulative sum crosses half
	Entropy                // boundary minimising the entropy lost by the split
)

var methodNames = map[Method]string{
	Classic:  "classic",
	MedianA2: "a2",
	Entropy:  "entropy",
}

// String - name of a method
func (m Method) String() string {
	if s, ok := methodNames[m]; ok {
		return s
	}
	return "*unknown*"
}

// ParseMethod - method from its name
func ParseMethod(s string) (Method, error) {
	for m, name := range methodNames {
		if strings.EqualFold(name, s) {
			return m, nil
		}
	}
	return 0, fault.ErrInvalidFanoMethod
}

// Methods - all methods in a fixed order
func Methods() []Method {
	return []Method{Classic, MedianA2, Entropy}
}

// Fano - recursively divide the symbols, ordered by descending
// probability, into a '0' group and a '1' group
func Fano(symbols []Symbol, method Method) (Code, error) {
	var median func([]Symbol, int, int) int
	switch method {
	case Classic:
		median = medianClassic
	case MedianA2:
		median = medianA2
	case Entropy:
		median = medianEntropy
	default:
		return nil, fault.ErrInvalidFanoMethod
	}

	if 0 == len(symbols) {
		return nil, fault.ErrNoSymbols
	}
	if 1 == len(symbols) {
		return single(symbols[0]), nil
	}

	bits := make([][]byte, len(symbols))
	var split func(l int, r int)
	split = func(l int, r int) {
		if l >= r {
			return
		}
		// the left group must end before r so both halves are non-empty
		m := min(max(median(symbols, l, r), l), r-1)
		for i := l; i <= r; i += 1 {
			if i <= m {
				bits[i] = append(bits[i], '0')
			} else {
				bits[i] = append(bits[i], '1')
			}
		}
		split(l, m)
		split(m+1, r)
	}
	split(0, len(symbols)-1)

	code := make(Code, len(symbols))
	for i, s := range symbols {
		code[i] = Codeword{
			Symbol:      s.Value,
			Probability: s.Probability,
			Bits:        string(bits[i]),
		}
	}
	return code, nil
}

// the last index of the left group
func medianClassic(s []Symbol, l int, r int) int {
	left := 0.0
	for i := l; i < r; i += 1 {
		left += s[i].Probability
	}
	right := s[r].Probability
	m := r
	for left >= right && m > l {
		m -= 1
		left -= s[m].Probability
		right += s[m].Probability
	}
	return m
}

func medianA2(s []Symbol, l int, r int) int {
	total := 0.0
	for i := l; i <= r; i += 1 {
		total += s[i].Probability
	}
	half := total / 2

	sum := 0.0
	for i := l; i <= r; i += 1 {
		previous := sum
		sum += s[i].Probability
		if previous < half && sum > half {
			return i
		}
	}
	return l
}

func medianEntropy(s []Symbol, l int, r int) int {
	total := 0.0
	for i := l; i <= r; i += 1 {
		total += s[i].Probability
	}
	whole := plogp(total)

	best := l
	least := math.Inf(1)
	left := 0.0
	for i := l; i < r; i += 1 {
		left += s[i].Probability
		loss := whole - (plogp(left) + plogp(total-left))
		if loss < least {
			least = loss
			best = i
		}
	}
	return best
}

func plogp(p float64) float64 {
	if p <= 0 {
		return 0
	}
	return -p * math.Log2(p)
}
