// Package morph defines the morpheme token model shared by the tokenizer
// façade, the token filters, and the CLI output layer.
package morph

// Token is a single morpheme extracted from Japanese text, together with the
// linguistic metadata the analyzer assigned to it. Tokens are plain values:
// they are created once per analysis call, filters may drop them, and nothing
// mutates them afterwards.
type Token struct {
	// Surface is the literal text span as it appeared in the input,
	// e.g. 食べた for the inflected form of 食べる.
	Surface string `json:"surface"`

	// Reading is the katakana reading assigned by the analyzer. Empty when
	// the dictionary has no reading for the morpheme (rare, unknown words).
	Reading string `json:"reading,omitempty"`

	// Pronunciation is the analyzer's pronunciation field, which differs
	// from Reading where long vowels and particles are pronounced
	// differently than written (は → ワ).
	Pronunciation string `json:"pronunciation,omitempty"`

	// PartOfSpeech is the primary grammatical category tag. The tagset is
	// defined by the analyzer's dictionary and is treated as an open-ended
	// flat string, not an enum.
	PartOfSpeech string `json:"part_of_speech"`

	// BaseForm is the dictionary (lemma) form. May be empty when the
	// analyzer could not determine one, typically for unknown words.
	BaseForm string `json:"base_form,omitempty"`

	// NormalizedForm is the canonical orthographic form of the morpheme.
	NormalizedForm string `json:"normalized_form"`

	// Features holds the full dictionary feature row: POS subcategories,
	// conjugation type and form, and whatever else the dictionary carries.
	// Length and layout depend on the dictionary.
	Features []string `json:"features,omitempty"`

	// Position is the character (rune) offset of Surface in the original
	// text. Within one analysis call positions are non-decreasing.
	Position int `json:"position"`
}

// DictionaryForm returns the canonical uninflected form used for vocabulary
// lookup: BaseForm when the dictionary knows one, Surface otherwise. It is
// recomputed on every call rather than stored.
func (t Token) DictionaryForm() string {
	if t.BaseForm != "" {
		return t.BaseForm
	}
	return t.Surface
}
