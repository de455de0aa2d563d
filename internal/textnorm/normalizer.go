package textnorm

import (
	"strings"
	"unicode"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
)

// Normalizer lowercases, tokenizes and lemmatizes free text. It carries no
// per-request state and is safe for concurrent use.
type Normalizer struct {
	lemmatizer *golem.Lemmatizer
}

// New builds a Normalizer backed by the English lemma dictionary.
func New() (*Normalizer, error) {
	lemmatizer, err := golem.New(en.New())
	if err != nil {
		return nil, err
	}
	return &Normalizer{lemmatizer: lemmatizer}, nil
}

// Normalize returns the lowercased, lemmatized token sequence for text.
// Empty or whitespace-only input yields an empty sequence.
func (n *Normalizer) Normalize(text string) []string {
	tokens := Tokenize(text)
	for i, tok := range tokens {
		tokens[i] = n.lemma(tok)
	}
	return tokens
}

// NormalizeJoined returns the normalized tokens joined by single spaces.
func (n *Normalizer) NormalizeJoined(text string) string {
	return strings.Join(n.Normalize(text), " ")
}

func (n *Normalizer) lemma(token string) string {
	if lemma := n.lemmatizer.Lemma(token); lemma != "" {
		return lemma
	}
	return token
}

// Tokenize splits lowercased text on word boundaries. Runs of letters and
// digits form tokens; "+" and "#" stay inside tokens so names like "c++" and
// "c#" survive, and "." or "/" stay only between alphanumerics ("node.js",
// "ci/cd").
func Tokenize(text string) []string {
	runes := []rune(strings.ToLower(text))
	var tokens []string
	var b strings.Builder
	flush := func() {
		if b.Len() > 0 {
			tokens = append(tokens, b.String())
			b.Reset()
		}
	}
	for i, r := range runes {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '+' || r == '#':
			b.WriteRune(r)
		case (r == '.' || r == '/') && i > 0 && i+1 < len(runes) && isAlnum(runes[i-1]) && isAlnum(runes[i+1]):
			b.WriteRune(r)
		default:
			flush()
		}
	}
	flush()
	return tokens
}

func isAlnum(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
