package tokenize

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ikawaha/kagome-dict/dict"
	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome-dict/uni"
)

// DefaultDict is the dictionary variant used when none is selected.
const DefaultDict = "ipa"

// dictVariant is one built-in system dictionary. Both flavors are compiled
// into the binary; the shrink flavor omits the per-morpheme feature strings,
// so readings and base forms come back empty with it.
type dictVariant struct {
	full   func() *dict.Dict
	shrink func() *dict.Dict
	note   string
}

var dictVariants = map[string]dictVariant{
	"ipa": {full: ipa.Dict, shrink: ipa.DictShrink, note: "IPADIC, the common general-purpose dictionary"},
	"uni": {full: uni.Dict, shrink: uni.DictShrink, note: "UniDic, shorter units and richer features"},
}

// Variants returns the built-in dictionary variant names, sorted.
func Variants() []string {
	names := make([]string, 0, len(dictVariants))
	for name := range dictVariants {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// VariantNote returns a one-line description of a built-in variant, or the
// empty string for unknown names.
func VariantNote(name string) string { return dictVariants[name].note }

// loadDict resolves the dictionary selection. An explicit file path wins
// over a variant name, which covers NEologd-style dictionaries compiled
// outside this module.
func loadDict(name, path string, shrink bool) (*dict.Dict, error) {
	if path != "" {
		load := dict.LoadDictFile
		if shrink {
			load = dict.LoadShrink
		}
		d, err := load(path)
		if err != nil {
			return nil, &InitError{Dict: path, Err: err}
		}
		return d, nil
	}

	v, ok := dictVariants[name]
	if !ok {
		return nil, &InitError{
			Dict: name,
			Err:  fmt.Errorf("unknown variant (available: %s)", strings.Join(Variants(), ", ")),
		}
	}
	if shrink {
		return v.shrink(), nil
	}
	return v.full(), nil
}
