// Package prompt supplies the randomized text a round asks the user to
// reproduce.
package prompt

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
	"unicode"
)

// Source produces the prompt for each new round. Next never returns an
// empty string without an error.
type Source interface {
	Next() (string, error)
}

// Static is a fixed prompt, used by tests and the --text flag.
type Static string

// Next implements Source.
func (s Static) Next() (string, error) {
	if len(s) == 0 {
		return "", fmt.Errorf("static prompt is empty")
	}
	return string(s), nil
}

// Options control prompt generation.
type Options struct {
	Words    int
	CapsPct  float64
	PunctPct float64
	PunctSet []rune
}

// WordListSource builds prompts from randomly chosen words of a loaded
// word list.
type WordListSource struct {
	words []string
	opts  Options
	rnd   *rand.Rand
}

// NewWordListSource returns a Source seeded with the current time.
func NewWordListSource(words []string, opts Options) (*WordListSource, error) {
	return newWordListSource(words, opts, rand.New(rand.NewSource(time.Now().UnixNano())))
}

func newWordListSource(words []string, opts Options, rnd *rand.Rand) (*WordListSource, error) {
	if len(words) == 0 {
		return nil, fmt.Errorf("word list is empty")
	}
	if opts.Words <= 0 {
		return nil, fmt.Errorf("prompt word count must be > 0")
	}
	return &WordListSource{words: words, opts: opts, rnd: rnd}, nil
}

// Next implements Source. Words are selected uniformly; caps and
// punctuation rules are applied per word.
func (s *WordListSource) Next() (string, error) {
	picked := make([]string, 0, s.opts.Words)
	for i := 0; i < s.opts.Words; i++ {
		word := s.words[s.rnd.Intn(len(s.words))]
		word = applyCaps(s.rnd, word, s.opts.CapsPct)
		word = applyPunct(s.rnd, word, s.opts.PunctPct, s.opts.PunctSet)
		picked = append(picked, word)
	}
	return strings.Join(picked, " "), nil
}

func applyCaps(rnd *rand.Rand, word string, capsPct float64) string {
	if capsPct <= 0 {
		return word
	}
	if rnd.Float64() > capsPct {
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
	if punctPct <= 0 || len(punctSet) == 0 {
		return word
	}
	if rnd.Float64() > punctPct {
		return word
	}
	punct := punctSet[rnd.Intn(len(punctSet))]
	return word + string(punct)
}
