package testutil

import "github.com/example/go-txt2anki/internal/morph"

// Surfaces projects tokens onto their surface strings, in order.
func Surfaces(tokens []morph.Token) []string {
	out := make([]string, 0, len(tokens))
	for _, token := range tokens {
		out = append(out, token.Surface)
	}
	return out
}

// PartsOfSpeech projects tokens onto their primary POS tags, in order.
func PartsOfSpeech(tokens []morph.Token) []string {
	out := make([]string, 0, len(tokens))
	for _, token := range tokens {
		out = append(out, token.PartOfSpeech)
	}
	return out
}
