package morph

// Filter removes tokens from an analysis result. Implementations must be
// stateless pure functions over the token slice: they may drop tokens but
// never mutate or reorder them, and they are safe to share across tokenizer
// instances.
type Filter interface {
	Apply(tokens []Token) []Token
}

// Dictionary POS tags the built-in filters match against. Matching is exact:
// a dictionary that spells these tags differently will pass its tokens
// through unfiltered.
const (
	particleTag            = "助詞"
	supplementarySymbolTag = "補助記号"
)

// punctuationGlyphs is the closed set of Japanese and ASCII punctuation
// surfaces dropped by PunctuationFilter.
var punctuationGlyphs = map[string]struct{}{
	"。": {}, "、": {}, "！": {}, "？": {},
	"「": {}, "」": {}, "『": {}, "』": {},
	"（": {}, "）": {}, "【": {}, "】": {},
	"・": {}, "ー": {}, "～": {}, "…": {}, "‥": {},
	".": {}, ",": {}, "!": {}, "?": {},
	`"`: {}, "'": {}, "(": {}, ")": {},
	"[": {}, "]": {}, "{": {}, "}": {},
	"-": {}, "_": {}, ":": {}, ";": {},
	"/": {}, `\`: {}, "|": {},
}

// ParticleFilter drops Japanese particles (助詞): は, が, を, に and the rest
// of the grammatical markers that vocabulary extraction has no use for.
type ParticleFilter struct{}

// Apply returns tokens with all particle tokens removed.
func (ParticleFilter) Apply(tokens []Token) []Token {
	out := make([]Token, 0, len(tokens))
	for _, t := range tokens {
		if t.PartOfSpeech == particleTag {
			continue
		}
		out = append(out, t)
	}
	return out
}

// PunctuationFilter drops punctuation tokens: any token whose surface is one
// of the known punctuation glyphs, plus anything the dictionary tags as a
// supplementary symbol (補助記号).
type PunctuationFilter struct{}

// Apply returns tokens with all punctuation tokens removed.
func (PunctuationFilter) Apply(tokens []Token) []Token {
	out := make([]Token, 0, len(tokens))
	for _, t := range tokens {
		if _, punct := punctuationGlyphs[t.Surface]; punct {
			continue
		}
		if t.PartOfSpeech == supplementarySymbolTag {
			continue
		}
		out = append(out, t)
	}
	return out
}
