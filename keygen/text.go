// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keygen

import (
	"bufio"
	"io"
	"math/rand"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/bitmark-inc/treelab/fault"
)

// Style - kind of generated text
type Style int

// text styles
const (
	Literary Style = iota
	Technical
)

var styleNames = map[Style]string{
	Literary:  "russian",
	Technical: "technical",
}

// String - name of a style
func (s Style) String() string {
	if name, ok := styleNames[s]; ok {
		return name
	}
	return "*unknown*"
}

// ParseStyle - style from its name
func ParseStyle(s string) (Style, error) {
	for style, name := range styleNames {
		if strings.EqualFold(name, s) {
			return style, nil
		}
	}
	return 0, fault.ErrInvalidTextStyle
}

// letters in order of decreasing frequency in Russian text
var letters = []rune("оеаинтсрвлкмдпуяыьгзбчйхжшюцщэфъ")

var letterFrequencies = []float64{
	0.109, 0.087, 0.080, 0.073, 0.067, 0.063, 0.055, 0.047, 0.045, 0.039,
	0.035, 0.032, 0.030, 0.028, 0.026, 0.024, 0.021, 0.019, 0.018, 0.017,
	0.016, 0.015, 0.014, 0.013, 0.012, 0.011, 0.010, 0.009, 0.008, 0.007,
	0.006, 0.005, 0.004,
}

var pangrams = []string{
	"В чащах юга жил бы цитрус? Да, но фальшивый экземпляр!",
	"Широкая электрификация южных губерний даст мощный толчок развитию сельского хозяйства.",
	"Съешь же ещё этих мягких французских булок, да выпей чаю.",
	"Эх, чужак! Общий съём цен шляп (юфть) вдрызг!",
	"Флегматичная эта верблюдица жуёт у подъезда засыхающий горький шиповник.",
	"Аэрофотосъёмка ландшафта уже выявила земли богачей и процветающих крестьян.",
}

var nouns = []string{
	"алгоритм", "программа", "компилятор", "интерфейс", "база данных",
	"сервер", "клиент", "фреймворк", "библиотека", "функция",
	"переменная", "константа", "массив", "структура", "объект",
	"класс", "метод", "параметр", "аргумент", "имплементация",
	"инкапсуляция", "наследование", "полиморфизм",
}

var verbs = []string{
	"выполняет", "обрабатывает", "генерирует", "создает", "удаляет",
	"изменяет", "проверяет", "анализирует", "оптимизирует", "компилирует",
}

// Text - write at least size bytes of UTF-8 text in the given style,
// returns the number of bytes written
func Text(w io.Writer, size int, style Style, rng *rand.Rand) (int, error) {
	g := &generator{
		w:   bufio.NewWriter(w),
		rng: rng,
	}

	switch style {
	case Literary:
		g.literary(size)
	case Technical:
		g.technical(size)
	default:
		return 0, fault.ErrInvalidTextStyle
	}

	if nil != g.err {
		return g.n, g.err
	}
	return g.n, g.w.Flush()
}

type generator struct {
	w   *bufio.Writer
	rng *rand.Rand
	n   int
	err error
}

func (g *generator) write(s string) {
	if nil != g.err {
		return
	}
	n, err := g.w.WriteString(s)
	g.n += n
	g.err = err
}

func (g *generator) letter() rune {
	x := g.rng.Float64()
	cumulative := 0.0
	for i, f := range letterFrequencies {
		cumulative += f
		if x <= cumulative {
			return letters[i]
		}
	}
	return letters[0]
}

func capitalise(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

// pangrams mixed with sentences of letters drawn by frequency
func (g *generator) literary(size int) {
	endings := []string{". ", "! ", "? "}
	sentences := 0
	for g.n < size && nil == g.err {
		if 0 == g.rng.Intn(3) && sentences < 50 {
			g.write(pangrams[g.rng.Intn(len(pangrams))])
			g.write(" ")
		} else {
			length := 10 + g.rng.Intn(20)
			var b strings.Builder
			b.WriteRune(unicode.ToUpper(letters[g.rng.Intn(len(letters)-8)]))
			for i := 1; i < length; i += 1 {
				b.WriteRune(g.letter())
			}
			b.WriteString(endings[g.rng.Intn(len(endings))])
			g.write(b.String())
		}
		sentences += 1

		if 0 == sentences%(5+g.rng.Intn(6)) {
			g.write("\n\n")
		}
	}
}

// paragraphs of noun verb noun... sentences
func (g *generator) technical(size int) {
	for g.n < size && nil == g.err {
		sentences := 3 + g.rng.Intn(4)
		for s := 0; s < sentences; s += 1 {
			words := 5 + g.rng.Intn(6)
			for i := 0; i < words; i += 1 {
				switch i {
				case 0:
					g.write(capitalise(nouns[g.rng.Intn(len(nouns))]))
				case 1:
					g.write(verbs[g.rng.Intn(len(verbs))])
				default:
					g.write(nouns[g.rng.Intn(len(nouns))])
				}
				if i < words-1 {
					g.write(" ")
				}
			}
			g.write(". ")
		}
		g.write("\n\n")
	}
}
