package text

import (
	"bytes"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

// legacyEncodings are the candidates considered for input that is not valid
// UTF-8. Order breaks score ties, with Shift_JIS first as the most common
// legacy encoding for Japanese text files.
var legacyEncodings = []struct {
	name string
	enc  encoding.Encoding
}{
	{"Shift_JIS", japanese.ShiftJIS},
	{"EUC-JP", japanese.EUCJP},
	{"ISO-2022-JP", japanese.ISO2022JP},
}

// GuessEncoding tries to identify the legacy Japanese encoding of data so
// that decode errors can tell the user what to convert from. Every candidate
// that decodes data cleanly is scored by how much Japanese the result
// contains, and the best scoring name wins. The second result is false when
// no candidate fits.
//
// ISO-2022-JP is pure 7-bit and passes UTF-8 validation, so it is sniffed by
// its escape sequences even when data is valid UTF-8.
func GuessEncoding(data []byte) (string, bool) {
	if utf8.Valid(data) {
		if bytes.Contains(data, []byte{0x1b, '$'}) {
			if decoded, ok := decodeClean(japanese.ISO2022JP, data); ok && japaneseScore(decoded) > 0 {
				return "ISO-2022-JP", true
			}
		}
		return "", false
	}

	var (
		best      string
		bestScore int
	)
	for _, candidate := range legacyEncodings {
		decoded, ok := decodeClean(candidate.enc, data)
		if !ok {
			continue
		}
		if score := japaneseScore(decoded); score > bestScore {
			best, bestScore = candidate.name, score
		}
	}
	return best, best != ""
}

// decodeClean decodes data and reports whether the result is usable.
// Decoders substitute U+FFFD rather than failing, so a clean decode has none.
func decodeClean(enc encoding.Encoding, data []byte) (string, bool) {
	decoded, _, err := transform.Bytes(enc.NewDecoder(), data)
	if err != nil {
		return "", false
	}
	if bytes.ContainsRune(decoded, utf8.RuneError) {
		return "", false
	}
	return string(decoded), true
}

// japaneseScore counts hiragana, katakana and kanji runes. Halfwidth katakana
// is ignored: EUC-JP bytes misread as Shift_JIS decode into little else, and
// counting them would hand Shift_JIS every guess.
func japaneseScore(s string) int {
	n := 0
	for _, r := range s {
		if r >= '｡' && r <= 'ﾟ' {
			continue
		}
		if unicode.In(r, unicode.Hiragana, unicode.Katakana, unicode.Han) {
			n++
		}
	}
	return n
}
