// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package experiment

import (
	"bytes"
	"fmt"

	"github.com/bitmark-inc/treelab/coding"
	"github.com/bitmark-inc/treelab/report"
)

// CodingConfig - parameters of the coding workloads
type CodingConfig struct {
	Minimum int // smallest acceptable input in bytes, zero for no limit
	Sample  int // leading bytes of the input to encode
	Symbols int // code table rows to show, zero for all
}

// CodingResult - a code and its quality measures
type CodingResult struct {
	Name               string      `json:"name"`
	Code               coding.Code `json:"code"`
	Entropy            float64     `json:"entropy"`
	AverageLength      float64     `json:"averageLength"`
	KraftSum           float64     `json:"kraftSum"`
	Redundancy         float64     `json:"redundancy"`
	RelativeRedundancy float64     `json:"relativeRedundancy"`
	SampleBits         string      `json:"sampleBits"`
	CompressionRatio   float64     `json:"compressionRatio"`
}

func symbolsOf(text []byte, minimum int) ([]coding.Symbol, error) {
	f, err := coding.CountFrequencies(bytes.NewReader(text))
	if nil != err {
		return nil, err
	}
	if err := f.RequireMinimum(minimum); nil != err {
		return nil, err
	}
	return f.Symbols(), nil
}

// Shannon - build the Shannon code of text and describe it
func (e *Experiment) Shannon(text []byte, config CodingConfig) (*CodingResult, []*report.Table, error) {
	symbols, err := symbolsOf(text, config.Minimum)
	if nil != err {
		return nil, nil, err
	}
	code, err := coding.Shannon(symbols)
	if nil != err {
		return nil, nil, err
	}
	return e.describe(KindShannon, "Shannon", code, text, config)
}

// Fano - build the Fano code of text with one split method and
// describe it together with a comparison of all methods
func (e *Experiment) Fano(text []byte, method coding.Method, config CodingConfig) (*CodingResult, []*report.Table, error) {
	symbols, err := symbolsOf(text, config.Minimum)
	if nil != err {
		return nil, nil, err
	}
	code, err := coding.Fano(symbols, method)
	if nil != err {
		return nil, nil, err
	}
	result, tables, err := e.describe(KindFano, "Fano "+method.String(), code, text, config)
	if nil != err {
		return nil, nil, err
	}

	comparison := report.New(KindFano, "Fano split methods",
		"method", "average length", "redundancy", "efficiency %",
	)
	for _, m := range coding.Methods() {
		c, err := coding.Fano(symbols, m)
		if nil != err {
			return nil, nil, err
		}
		efficiency := 0.0
		if l := c.AverageLength(); l > 0 {
			efficiency = c.Entropy() / l * 100
		}
		comparison.Add(m.String(), c.AverageLength(), c.Redundancy(), efficiency)
	}
	return result, append(tables, comparison), nil
}

func (e *Experiment) describe(kind string, name string, code coding.Code, text []byte, config CodingConfig) (*CodingResult, []*report.Table, error) {
	sample := text
	if config.Sample > 0 && len(sample) > config.Sample {
		sample = sample[:config.Sample]
	}
	bits, err := code.Encode(sample)
	if nil != err {
		return nil, nil, err
	}

	result := &CodingResult{
		Name:               name,
		Code:               code,
		Entropy:            code.Entropy(),
		AverageLength:      code.AverageLength(),
		KraftSum:           code.KraftSum(),
		Redundancy:         code.Redundancy(),
		RelativeRedundancy: code.RelativeRedundancy(),
		SampleBits:         bits,
		CompressionRatio:   coding.CompressionRatio(len(sample), len(bits)),
	}
	e.infof("%s: symbols: %d  entropy: %f  average length: %f", name, len(code), result.Entropy, result.AverageLength)

	codeTable := report.New(kind, name+" code", "symbol", "probability", "codeword", "length")
	for i, w := range code {
		if config.Symbols > 0 && i >= config.Symbols {
			codeTable.Note("... %d more symbols", len(code)-i)
			break
		}
		codeTable.Add(SymbolName(w.Symbol), fmt.Sprintf("%.6f", w.Probability), w.Bits, len(w.Bits))
	}
	codeTable.Note("total probability: %.6f", code.TotalProbability())

	summary := report.New(kind, name+" summary", "measure", "value")
	summary.Add("Kraft sum", fmt.Sprintf("%.6f", result.KraftSum))
	summary.Add("entropy", fmt.Sprintf("%.6f", result.Entropy))
	summary.Add("average length", fmt.Sprintf("%.6f", result.AverageLength))
	summary.Add("redundancy", fmt.Sprintf("%.6f", result.Redundancy))
	summary.Add("relative redundancy %", result.RelativeRedundancy)
	summary.Add("sample bytes", len(sample))
	summary.Add("sample bits", len(bits))
	summary.Add("compression ratio", fmt.Sprintf("%.3f", result.CompressionRatio))

	return result, []*report.Table{codeTable, summary}, nil
}

// SymbolName - printable form of a byte
func SymbolName(b byte) string {
	switch {
	case ' ' == b:
		return "' '"
	case '\n' == b:
		return "\\n"
	case b > ' ' && b < 0x7f:
		return string(rune(b))
	default:
		return fmt.Sprintf("0x%02x", b)
	}
}
