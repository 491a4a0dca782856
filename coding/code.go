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

// Codeword - the bit string assigned to one symbol
type Codeword struct {
	Symbol      byte    `json:"symbol"`
	Probability float64 `json:"probability"`
	Bits        string  `json:"bits"`
}

// Code - a prefix code, highest probability first
type Code []Codeword

// Entropy - Shannon entropy of the symbol distribution in bits
func (c Code) Entropy() float64 {
	h := 0.0
	for _, w := range c {
		if w.Probability > 0 {
			h -= w.Probability * math.Log2(w.Probability)
		}
	}
	return h
}

// AverageLength - expected codeword length in bits per symbol
func (c Code) AverageLength() float64 {
	l := 0.0
	for _, w := range c {
		l += w.Probability * float64(len(w.Bits))
	}
	return l
}

// KraftSum - Σ 2^-length, at most one for any prefix code
func (c Code) KraftSum() float64 {
	k := 0.0
	for _, w := range c {
		k += math.Ldexp(1, -len(w.Bits))
	}
	return k
}

// Redundancy - average length minus entropy
func (c Code) Redundancy() float64 {
	return c.AverageLength() - c.Entropy()
}

// RelativeRedundancy - redundancy as a percentage of the average length
func (c Code) RelativeRedundancy() float64 {
	l := c.AverageLength()
	if 0 == l {
		return 0
	}
	return (l - c.Entropy()) / l * 100
}

// TotalProbability - sum of all symbol probabilities, one up to rounding
func (c Code) TotalProbability() float64 {
	p := 0.0
	for _, w := range c {
		p += w.Probability
	}
	return p
}

// IsPrefixFree - no codeword is a prefix of another
func (c Code) IsPrefixFree() bool {
	for i := range c {
		for j := range c {
			if i != j && strings.HasPrefix(c[j].Bits, c[i].Bits) {
				return false
			}
		}
	}
	return true
}

// Lookup - codeword for a symbol
func (c Code) Lookup(symbol byte) (string, bool) {
	for _, w := range c {
		if w.Symbol == symbol {
			return w.Bits, true
		}
	}
	return "", false
}

// Encode - concatenate the codewords of each byte of text
func (c Code) Encode(text []byte) (string, error) {
	table := make(map[byte]string, len(c))
	for _, w := range c {
		table[w.Symbol] = w.Bits
	}
	var b strings.Builder
	for _, s := range text {
		bits, ok := table[s]
		if !ok {
			return "", fault.ErrSymbolNotInCode
		}
		b.WriteString(bits)
	}
	return b.String(), nil
}

// Decode - split a bit string back into symbols
func (c Code) Decode(bits string) ([]byte, error) {
	table := make(map[string]byte, len(c))
	for _, w := range c {
		table[w.Bits] = w.Symbol
	}

	text := []byte{}
	start := 0
	for i := 1; i <= len(bits); i += 1 {
		if s, ok := table[bits[start:i]]; ok {
			text = append(text, s)
			start = i
		}
	}
	if start != len(bits) {
		return nil, fault.ErrUndecodableBits
	}
	return text, nil
}

// CompressionRatio - original size in bits over encoded size in bits
func CompressionRatio(originalBytes int, encodedBits int) float64 {
	if 0 == encodedBits {
		return 0
	}
	return float64(8*originalBytes) / float64(encodedBits)
}
