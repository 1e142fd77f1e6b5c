package feature

import (
	"regexp"
	"strings"
)

// wordRegex matches tokens of two or more word characters, the same token
// shape scikit-style vectorizers use.
var wordRegex = regexp.MustCompile(`[a-z0-9_]{2,}`)

// Tokenize lowercases text, extracts word tokens, and drops stop words.
func Tokenize(text string) []string {
	raw := wordRegex.FindAllString(strings.ToLower(text), -1)
	out := make([]string, 0, len(raw))
	for _, tok := range raw {
		if _, stop := stopWords[tok]; stop {
			continue
		}
		out = append(out, tok)
	}
	return out
}

// NGrams expands a token stream into unigrams plus space-joined bigrams, so
// phrases like "machine learning" survive as single terms.
func NGrams(tokens []string) []string {
	if len(tokens) == 0 {
		return nil
	}
	out := make([]string, 0, 2*len(tokens)-1)
	out = append(out, tokens...)
	for i := 0; i+1 < len(tokens); i++ {
		out = append(out, tokens[i]+" "+tokens[i+1])
	}
	return out
}
