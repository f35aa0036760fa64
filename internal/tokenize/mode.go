package tokenize

import (
	"fmt"
	"strings"

	"github.com/ikawaha/kagome/v2/tokenizer"
)

// Mode selects how aggressively the analyzer splits compound expressions.
type Mode int

const (
	// ModeCoarse keeps compounds whole (kagome's Normal segmentation).
	ModeCoarse Mode = iota + 1
	// ModeBalanced splits long compounds while keeping short ones intact
	// (kagome's Search segmentation).
	ModeBalanced
	// ModeFine splits into the smallest units kagome supports; unknown
	// words decompose per character (kagome's Extended segmentation).
	ModeFine
)

// DefaultMode is used when no mode is configured.
const DefaultMode = ModeBalanced

// ParseMode maps a user-supplied spelling onto a Mode. The kagome names
// normal, search and extended are accepted as aliases. Empty input selects
// DefaultMode.
func ParseMode(raw string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return DefaultMode, nil
	case "coarse", "normal":
		return ModeCoarse, nil
	case "balanced", "search":
		return ModeBalanced, nil
	case "fine", "extended":
		return ModeFine, nil
	default:
		return 0, fmt.Errorf("invalid mode %q (expected coarse|balanced|fine)", raw)
	}
}

func (m Mode) String() string {
	switch m {
	case ModeCoarse:
		return "coarse"
	case ModeBalanced:
		return "balanced"
	case ModeFine:
		return "fine"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// kagomeMode translates m for the analyzer. Values outside the defined
// constants use the balanced segmentation.
func (m Mode) kagomeMode() tokenizer.TokenizeMode {
	switch m {
	case ModeCoarse:
		return tokenizer.Normal
	case ModeFine:
		return tokenizer.Extended
	default:
		return tokenizer.Search
	}
}
