package analyzer

import (
	"strings"
)

// Tokenizer splits text on whitespace and lowercases every word. Punctuation
// stays attached, so "chimera?" and "chimera" are different words.
type Tokenizer struct{}

// NewTokenizer creates a new Tokenizer.
func NewTokenizer() *Tokenizer {
	return &Tokenizer{}
}

// Tokenize splits text into lowercase words, keeping duplicates and order.
func (t *Tokenizer) Tokenize(text string) []string {
	words := strings.Fields(text)
	for i, word := range words {
		words[i] = strings.ToLower(word)
	}
	return words
}

// WordSet returns the unique lowercase words of text.
func (t *Tokenizer) WordSet(text string) map[string]struct{} {
	words := t.Tokenize(text)
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// Overlap counts the words present in both sets.
func Overlap(a, b map[string]struct{}) int {
	if len(a) > len(b) {
		a, b = b, a
	}
	n := 0
	for w := range a {
		if _, ok := b[w]; ok {
			n++
		}
	}
	return n
}
