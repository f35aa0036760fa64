// Package tokenize wraps the kagome morphological analyzer behind a small
// façade: dictionary selection, input validation, token conversion and an
// ordered filter pipeline over the analyzer's output.
package tokenize

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ikawaha/kagome-dict/dict"
	"github.com/ikawaha/kagome/v2/tokenizer"
	"github.com/rs/zerolog"

	"github.com/example/go-txt2anki/internal/morph"
	"github.com/example/go-txt2anki/internal/text"
)

// Logger for this package. Defaults to a no-op; the CLI installs a real one.
var Logger = zerolog.Nop()

// Tokenizer owns a kagome analyzer session and the registered filter
// pipeline. It is not safe for concurrent use: filter registration is not
// synchronized with in-flight calls. Use one instance per goroutine or add
// external locking.
type Tokenizer struct {
	analyzer        *tokenizer.Tokenizer
	mode            Mode
	dictName        string
	requireJapanese bool
	filters         []morph.Filter
}

// Options adjusts a single tokenization call. The zero value keeps the
// defaults: fail on unconvertible morphemes and run the filter pipeline.
type Options struct {
	// AllowPartial skips morphemes that cannot be converted instead of
	// failing the whole call.
	AllowPartial bool
	// SkipFilters returns the converted tokens without running the
	// registered filters.
	SkipFilters bool
}

// Option configures a Tokenizer at construction time.
type Option func(*settings)

type settings struct {
	mode            Mode
	dictName        string
	dictPath        string
	userDictPath    string
	shrink          bool
	requireJapanese bool
	filters         []morph.Filter
}

// WithMode selects the segmentation granularity.
func WithMode(m Mode) Option { return func(s *settings) { s.mode = m } }

// WithDict selects a built-in dictionary variant by name.
func WithDict(name string) Option { return func(s *settings) { s.dictName = name } }

// WithShrink selects the reduced-feature build of the chosen dictionary.
func WithShrink() Option { return func(s *settings) { s.shrink = true } }

// WithDictFile loads a compiled dictionary from path instead of a built-in
// variant.
func WithDictFile(path string) Option { return func(s *settings) { s.dictPath = path } }

// WithUserDict adds a kagome user dictionary so domain terms segment as
// single morphemes.
func WithUserDict(path string) Option { return func(s *settings) { s.userDictPath = path } }

// WithoutJapaneseCheck disables the requirement that input contain at least
// one Japanese character.
func WithoutJapaneseCheck() Option { return func(s *settings) { s.requireJapanese = false } }

// WithFilters appends filters to the initial pipeline, in order.
func WithFilters(filters ...morph.Filter) Option {
	return func(s *settings) { s.filters = append(s.filters, filters...) }
}

// New builds a Tokenizer, eagerly loading the dictionary and the analyzer
// session. A failure here leaves no usable instance.
func New(opts ...Option) (*Tokenizer, error) {
	s := settings{
		mode:            DefaultMode,
		dictName:        DefaultDict,
		requireJapanese: true,
	}
	for _, opt := range opts {
		opt(&s)
	}

	d, err := loadDict(s.dictName, s.dictPath, s.shrink)
	if err != nil {
		return nil, err
	}

	kopts := []tokenizer.Option{tokenizer.OmitBosEos()}
	if s.userDictPath != "" {
		udict, err := dict.NewUserDict(s.userDictPath)
		if err != nil {
			return nil, &InitError{Dict: s.dictLabel(), Err: fmt.Errorf("user dictionary %s: %w", s.userDictPath, err)}
		}
		kopts = append(kopts, tokenizer.UserDict(udict))
	}

	analyzer, err := tokenizer.New(d, kopts...)
	if err != nil {
		return nil, &InitError{Dict: s.dictLabel(), Err: err}
	}

	Logger.Debug().
		Str("dict", s.dictLabel()).
		Stringer("mode", s.mode).
		Bool("shrink", s.shrink).
		Msg("tokenizer ready")

	return &Tokenizer{
		analyzer:        analyzer,
		mode:            s.mode,
		dictName:        s.dictLabel(),
		requireJapanese: s.requireJapanese,
		filters:         s.filters,
	}, nil
}

func (s settings) dictLabel() string {
	if s.dictPath != "" {
		return s.dictPath
	}
	return s.dictName
}

// Mode returns the configured segmentation granularity.
func (t *Tokenizer) Mode() Mode { return t.mode }

// DictName returns the dictionary variant name or file path in use.
func (t *Tokenizer) DictName() string { return t.dictName }

// AddFilter appends f to the pipeline. It affects subsequent calls only.
func (t *Tokenizer) AddFilter(f morph.Filter) { t.filters = append(t.filters, f) }

// SetFilters replaces the whole pipeline.
func (t *Tokenizer) SetFilters(filters ...morph.Filter) {
	t.filters = append([]morph.Filter(nil), filters...)
}

// ClearFilters removes every registered filter.
func (t *Tokenizer) ClearFilters() { t.filters = nil }

// Filters returns a copy of the registered pipeline, in application order.
func (t *Tokenizer) Filters() []morph.Filter {
	return append([]morph.Filter(nil), t.filters...)
}

// Tokenize analyzes input with the default per-call options.
func (t *Tokenizer) Tokenize(input string) ([]morph.Token, error) {
	return t.TokenizeWith(input, Options{})
}

// TokenizeWith analyzes input and returns its morphemes in input order.
// Empty or whitespace-only input returns an empty result without touching
// the analyzer.
func (t *Tokenizer) TokenizeWith(input string, opts Options) ([]morph.Token, error) {
	if strings.TrimSpace(input) == "" {
		return []morph.Token{}, nil
	}

	if t.requireJapanese && !text.ContainsJapanese(input) {
		return nil, &TokenizeError{Offset: -1, Err: ErrNoJapanese}
	}

	ktoks := t.analyzer.Analyze(input, t.mode.kagomeMode())

	tokens := make([]morph.Token, 0, len(ktoks))
	for _, kt := range ktoks {
		if kt.Class == tokenizer.DUMMY {
			continue
		}
		tok, err := convertToken(kt)
		if err != nil {
			if opts.AllowPartial {
				Logger.Debug().
					Str("surface", kt.Surface).
					Int("offset", kt.Start).
					Err(err).
					Msg("skipping morpheme")
				continue
			}
			return nil, &TokenizeError{Surface: kt.Surface, Offset: kt.Start, Err: err}
		}
		tokens = append(tokens, tok)
	}

	if !opts.SkipFilters {
		for _, f := range t.filters {
			tokens = f.Apply(tokens)
		}
	}

	return tokens, nil
}

// convertToken maps one kagome token onto the façade's Token. The analyzer
// reports absent grammatical detail either through its accessors' ok result
// or with the * placeholder; both become the empty string here so
// DictionaryForm can fall back to the surface.
func convertToken(kt tokenizer.Token) (morph.Token, error) {
	if kt.Surface == "" {
		return morph.Token{}, errors.New("empty surface")
	}

	pos := kt.POS()
	if len(pos) == 0 {
		return morph.Token{}, errors.New("no part-of-speech data")
	}

	baseForm, _ := kt.BaseForm()
	baseForm = normalizeFeature(baseForm)
	reading, _ := kt.Reading()
	pron, _ := kt.Pronunciation()

	normalized := baseForm
	if normalized == "" {
		normalized = kt.Surface
	}

	return morph.Token{
		Surface:        kt.Surface,
		Reading:        normalizeFeature(reading),
		Pronunciation:  normalizeFeature(pron),
		PartOfSpeech:   pos[0],
		BaseForm:       baseForm,
		NormalizedForm: normalized,
		Features:       kt.Features(),
		Position:       kt.Start,
	}, nil
}

// normalizeFeature maps the dictionary's "no value" placeholder to empty.
func normalizeFeature(v string) string {
	if v == "*" {
		return ""
	}
	return v
}
