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

// Shannon - cumulative probability code: symbol i receives the first
// ceil(-log2 p) binary digits of the sum of the probabilities before it
//
// symbols must be ordered by descending probability as returned by
// Frequencies.Symbols.  When every symbol carries its count the digits
// are computed exactly from the counts.
func Shannon(symbols []Symbol) (Code, error) {
	if 0 == len(symbols) {
		return nil, fault.ErrNoSymbols
	}
	if 1 == len(symbols) {
		return single(symbols[0]), nil
	}

	total := 0
	for _, s := range symbols {
		if s.Count <= 0 {
			total = 0
			break
		}
		total += s.Count
	}

	code := make(Code, len(symbols))
	cumulative := 0
	q := 0.0
	for i, s := range symbols {
		var bits string
		if 0 != total {
			bits = exactDigits(cumulative, total, countLength(s.Count, total))
			cumulative += s.Count
		} else {
			bits = floatDigits(q, ShannonLength(s.Probability))
			q += s.Probability
		}
		code[i] = Codeword{
			Symbol:      s.Value,
			Probability: s.Probability,
			Bits:        bits,
		}
	}
	return code, nil
}

// ShannonLength - ceil(-log2 p), zero for a non-positive probability
func ShannonLength(p float64) int {
	if p <= 0 {
		return 0
	}
	return int(math.Ceil(-math.Log2(p)))
}

// smallest l with count × 2^l >= total, i.e. ceil(-log2(count/total))
func countLength(count int, total int) int {
	l := 0
	for c := count; c < total; c *= 2 {
		l += 1
	}
	return l
}

// binary digits of numerator/denominator
func exactDigits(numerator int, denominator int, length int) string {
	var b strings.Builder
	for j := 0; j < length; j += 1 {
		numerator *= 2
		if numerator >= denominator {
			b.WriteByte('1')
			numerator -= denominator
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}

func floatDigits(fraction float64, length int) string {
	var b strings.Builder
	for j := 0; j < length; j += 1 {
		fraction *= 2
		if fraction >= 1 {
			b.WriteByte('1')
			fraction -= 1
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}

// a lone symbol still needs one bit per occurrence
func single(s Symbol) Code {
	return Code{{Symbol: s.Value, Probability: s.Probability, Bits: "0"}}
}
