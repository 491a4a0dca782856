// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coding_test

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/treelab/coding"
	"github.com/bitmark-inc/treelab/fault"
)

func symbolsOf(t *testing.T, text string) []coding.Symbol {
	f, err := coding.CountFrequencies(strings.NewReader(text))
	require.NoError(t, err)
	return f.Symbols()
}

func bitsOf(code coding.Code) []string {
	s := make([]string, len(code))
	for i, w := range code {
		s[i] = w.Bits
	}
	return s
}

func TestCountFrequencies(t *testing.T) {
	f, err := coding.CountFrequencies(strings.NewReader("abracadabra"))
	require.NoError(t, err)
	assert.Equal(t, 11, f.Total)
	assert.Equal(t, 5, f.Counts['a'])
	assert.Equal(t, 2, f.Counts['r'])

	symbols := f.Symbols()
	values := []byte{}
	for _, s := range symbols {
		values = append(values, s.Value)
	}
	assert.Equal(t, []byte("abrcd"), values, "descending count, ties by byte value")
	assert.InDelta(t, 5.0/11.0, symbols[0].Probability, 1e-12)

	assert.NoError(t, f.RequireMinimum(11))
	assert.ErrorIs(t, f.RequireMinimum(12), fault.ErrInputTooSmall)
}

func TestShannon(t *testing.T) {
	code, err := coding.Shannon(symbolsOf(t, "aaaabbc"))
	require.NoError(t, err)

	assert.Equal(t, []string{"0", "10", "110"}, bitsOf(code))
	assert.InDelta(t, 11.0/7.0, code.AverageLength(), 1e-12)
	assert.InDelta(t, 0.875, code.KraftSum(), 1e-12)
	assert.InDelta(t, 1.0, code.TotalProbability(), 1e-12)
	assert.True(t, code.IsPrefixFree())
	assert.Equal(t, 3, coding.ShannonLength(1.0/7.0))
	assert.Equal(t, 0, coding.ShannonLength(0))
}

func TestFanoMethods(t *testing.T) {
	symbols := symbolsOf(t, "aaaabbc")
	for _, method := range coding.Methods() {
		code, err := coding.Fano(symbols, method)
		require.NoError(t, err, method.String())
		assert.Equal(t, []string{"0", "10", "11"}, bitsOf(code), method.String())
		assert.InDelta(t, 1.0, code.KraftSum(), 1e-12, method.String())
		assert.InDelta(t, 10.0/7.0, code.AverageLength(), 1e-12, method.String())
	}

	_, err := coding.Fano(symbols, coding.Method(42))
	assert.ErrorIs(t, err, fault.ErrInvalidFanoMethod)
}

func TestParseMethod(t *testing.T) {
	for _, method := range coding.Methods() {
		m, err := coding.ParseMethod(strings.ToUpper(method.String()))
		require.NoError(t, err)
		assert.Equal(t, method, m)
	}
	_, err := coding.ParseMethod("huffman")
	assert.ErrorIs(t, err, fault.ErrInvalidFanoMethod)
	assert.Equal(t, "*unknown*", coding.Method(-1).String())
}

func TestSingleSymbol(t *testing.T) {
	symbols := symbolsOf(t, "zzzz")
	shannon, err := coding.Shannon(symbols)
	require.NoError(t, err)
	fano, err := coding.Fano(symbols, coding.Classic)
	require.NoError(t, err)

	for _, code := range []coding.Code{shannon, fano} {
		assert.Equal(t, []string{"0"}, bitsOf(code))
		assert.Equal(t, 0.0, code.Entropy())
		bits, err := code.Encode([]byte("zzzz"))
		require.NoError(t, err)
		assert.Equal(t, "0000", bits)
	}
}

func TestEmptyInput(t *testing.T) {
	_, err := coding.Shannon(nil)
	assert.ErrorIs(t, err, fault.ErrNoSymbols)
	_, err = coding.Fano([]coding.Symbol{}, coding.Entropy)
	assert.ErrorIs(t, err, fault.ErrNoSymbols)
}

func TestEncodeDecode(t *testing.T) {
	code, err := coding.Fano(symbolsOf(t, "aaaabbc"), coding.Classic)
	require.NoError(t, err)

	bits, err := code.Encode([]byte("abca"))
	require.NoError(t, err)
	assert.Equal(t, "010110", bits)

	text, err := code.Decode(bits)
	require.NoError(t, err)
	assert.Equal(t, []byte("abca"), text)

	_, err = code.Encode([]byte("abd"))
	assert.ErrorIs(t, err, fault.ErrSymbolNotInCode)

	_, err = code.Decode("01")
	assert.ErrorIs(t, err, fault.ErrUndecodableBits)

	assert.InDelta(t, 32.0/6.0, coding.CompressionRatio(4, 6), 1e-12)
	assert.Equal(t, 0.0, coding.CompressionRatio(4, 0))
}

func TestRandomTextProperties(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	alphabet := []byte("eeeeeeetttttaaaoooinnshrdlu ,.")
	var b bytes.Buffer
	for i := 0; i < 20000; i += 1 {
		b.WriteByte(alphabet[r.Intn(len(alphabet))])
	}
	text := b.Bytes()

	f, err := coding.CountFrequencies(bytes.NewReader(text))
	require.NoError(t, err)
	symbols := f.Symbols()

	codes := map[string]coding.Code{}
	codes["shannon"], err = coding.Shannon(symbols)
	require.NoError(t, err)
	for _, method := range coding.Methods() {
		codes[method.String()], err = coding.Fano(symbols, method)
		require.NoError(t, err)
	}

	for name, code := range codes {
		h := code.Entropy()
		l := code.AverageLength()
		assert.True(t, code.IsPrefixFree(), "%s: prefix free", name)
		assert.LessOrEqual(t, code.KraftSum(), 1.0+1e-12, "%s: kraft", name)
		assert.GreaterOrEqual(t, l, h-1e-12, "%s: average length below entropy", name)
		assert.InDelta(t, l-h, code.Redundancy(), 1e-12, name)
		assert.InDelta(t, (l-h)/l*100, code.RelativeRedundancy(), 1e-9, name)

		bits, err := code.Encode(text)
		require.NoError(t, err, name)
		decoded, err := code.Decode(bits)
		require.NoError(t, err, name)
		assert.Equal(t, text, decoded, "%s: round trip", name)
	}
	assert.Less(t, codes["shannon"].AverageLength(), codes["shannon"].Entropy()+1, "shannon bound")
}

func TestShannonFromProbabilities(t *testing.T) {
	symbols := []coding.Symbol{
		{Value: 'x', Probability: 0.5},
		{Value: 'y', Probability: 0.25},
		{Value: 'z', Probability: 0.25},
	}
	code, err := coding.Shannon(symbols)
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "10", "11"}, bitsOf(code))
	assert.InDelta(t, 0.0, code.Redundancy(), 1e-12, "dyadic distribution")

	bits, ok := code.Lookup('y')
	assert.True(t, ok)
	assert.Equal(t, "10", bits)
	_, ok = code.Lookup('w')
	assert.False(t, ok)
}
