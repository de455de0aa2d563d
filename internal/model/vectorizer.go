package model

import (
	"math"
	"strings"
	"unicode"
)

// Vectorize transforms raw text into the sparse TF-IDF vector the classifier
// was trained on: lowercase, tokens of two or more word characters, n-grams
// in the artifact's range, term frequency times idf, l2-normalized. Terms
// outside the frozen vocabulary are ignored. Empty text yields the zero
// vector.
func (a *Artifact) Vectorize(text string) map[int]float64 {
	tokens := vectorTokens(text)
	vec := make(map[int]float64)
	for n := a.NgramMin; n <= a.NgramMax; n++ {
		for i := 0; i+n <= len(tokens); i++ {
			gram := strings.Join(tokens[i:i+n], " ")
			if idx, ok := a.Vocabulary[gram]; ok {
				vec[idx]++
			}
		}
	}

	var sumSquares float64
	for idx := range vec {
		vec[idx] *= a.IDF[idx]
		sumSquares += vec[idx] * vec[idx]
	}
	if sumSquares > 0 {
		norm := math.Sqrt(sumSquares)
		for idx := range vec {
			vec[idx] /= norm
		}
	}
	return vec
}

// vectorTokens mirrors the training tokenizer: runs of letters, digits and
// underscores, two or more characters long.
func vectorTokens(text string) []string {
	var tokens []string
	var b strings.Builder
	flush := func() {
		if b.Len() >= 2 {
			tokens = append(tokens, b.String())
		}
		b.Reset()
	}
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			b.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()
	return tokens
}
