// Package text holds the pure validation helpers the tokenizer façade runs
// before handing input to the analyzer: Japanese-script detection, the
// binary-content heuristic, and legacy-encoding guessing. All functions are
// stateless and independently testable; thresholds live here as constants.
package text

import "unicode"

// ContainsJapanese reports whether s contains at least one Japanese
// character: hiragana, katakana or kanji, plus the long-vowel mark ー and the
// iteration mark 々 which occur inside words without belonging to the script
// ranges. This is a presence test, not a ratio check.
func ContainsJapanese(s string) bool {
	for _, r := range s {
		if unicode.In(r, unicode.Hiragana, unicode.Katakana, unicode.Han) || r == 'ー' || r == '々' {
			return true
		}
	}
	return false
}
