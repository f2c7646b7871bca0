// Package generator picks the target words for a typing test.
package generator

import (
	"math/rand"
	"time"
	"unicode"
)

// Options controls word selection and decoration.
type Options struct {
	Count      int
	CapsPct    float64
	PunctPct   float64
	PunctSet   []rune
	Weak       map[rune]struct{}
	WeakFactor float64
}

// Generator produces randomized target words.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator with a fixed seed.
func New(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// NewRandom returns a Generator seeded with the current time.
func NewRandom() *Generator {
	return New(time.Now().UnixNano())
}

// Generate selects opts.Count words. With a non-empty weak set, words
// containing weak runes are favoured by opts.WeakFactor per occurrence.
func (g *Generator) Generate(words []string, opts Options) []string {
	if len(words) == 0 || opts.Count <= 0 {
		return nil
	}
	pick := g.uniform(len(words))
	if len(opts.Weak) > 0 && opts.WeakFactor > 0 {
		pick = g.weighted(weights(words, opts.Weak, opts.WeakFactor))
	}

	result := make([]string, 0, opts.Count)
	for i := 0; i < opts.Count; i++ {
		word := words[pick()]
		word = applyCaps(g.rnd, word, opts.CapsPct)
		word = applyPunct(g.rnd, word, opts.PunctPct, opts.PunctSet)
		result = append(result, word)
	}
	return result
}

func (g *Generator) uniform(n int) func() int {
	return func() int { return g.rnd.Intn(n) }
}

func (g *Generator) weighted(ws []float64) func() int {
	total := 0.0
	for _, w := range ws {
		total += w
	}
	return func() int {
		r := g.rnd.Float64() * total
		acc := 0.0
		for j, w := range ws {
			acc += w
			if r <= acc {
				return j
			}
		}
		return len(ws) - 1
	}
}

func weights(words []string, weak map[rune]struct{}, factor float64) []float64 {
	out := make([]float64, len(words))
	for i, word := range words {
		weakCount := 0
		for _, r := range word {
			if _, ok := weak[unicode.ToLower(r)]; ok {
				weakCount++
			}
		}
		out[i] = 1.0 + float64(weakCount)*factor
	}
	return out
}

func applyCaps(rnd *rand.Rand, word string, capsPct float64) string {
	if capsPct <= 0 || rnd.Float64() > capsPct {
		return word
	}
	runes := []rune(word)
	if len(runes) == 0 {
		return word
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

func applyPunct(rnd *rand.Rand, word string, punctPct float64, punctSet []rune) string {
	if punctPct <= 0 || len(punctSet) == 0 || rnd.Float64() > punctPct {
		return word
	}
	return word + string(punctSet[rnd.Intn(len(punctSet))])
}
