package tokenize

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/example/go-txt2anki/internal/morph"
	"github.com/example/go-txt2anki/internal/text"
)

// TokenizeFile reads and analyzes the file at path with the default per-call
// options.
func (t *Tokenizer) TokenizeFile(path string) ([]morph.Token, error) {
	return t.TokenizeFileWith(path, Options{})
}

// TokenizeFileWith validates and reads the file at path, then analyzes its
// content like TokenizeWith. Unlike direct text input, a file that is empty
// or whitespace-only is an error.
func (t *Tokenizer) TokenizeFileWith(path string, opts Options) ([]morph.Token, error) {
	info, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, &FileError{Path: path, Reason: ReasonNotFound, Err: err}
	case errors.Is(err, fs.ErrPermission):
		return nil, &FileError{Path: path, Reason: ReasonPermission, Err: err}
	case err != nil:
		return nil, &FileError{Path: path, Reason: ReasonRead, Err: err}
	case !info.Mode().IsRegular():
		return nil, &FileError{Path: path, Reason: ReasonNotAFile}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return nil, &FileError{Path: path, Reason: ReasonPermission, Err: err}
		}
		return nil, &FileError{Path: path, Reason: ReasonRead, Err: err}
	}

	sample := data
	if len(sample) > text.BinarySampleSize {
		sample = sample[:text.BinarySampleSize]
	}
	if text.LooksBinary(sample) {
		return nil, &FileError{Path: path, Reason: ReasonBinary}
	}

	if !utf8.Valid(data) {
		enc, _ := text.GuessEncoding(data)
		return nil, &FileError{Path: path, Reason: ReasonEncoding, Encoding: enc}
	}

	content := string(data)
	if strings.TrimSpace(content) == "" {
		return nil, &FileError{Path: path, Reason: ReasonEmpty}
	}

	tokens, err := t.TokenizeWith(content, opts)
	if err != nil {
		var terr *TokenizeError
		if errors.As(err, &terr) {
			// An ISO-2022-JP file is valid UTF-8 bytewise and only
			// reveals itself by containing no Japanese.
			if errors.Is(terr.Err, ErrNoJapanese) {
				if enc, ok := text.GuessEncoding(data); ok {
					return nil, &FileError{Path: path, Reason: ReasonEncoding, Encoding: enc, Err: err}
				}
			}
			return nil, fmt.Errorf("file %s: %w", path, err)
		}
		return nil, &FileError{Path: path, Err: err}
	}

	Logger.Debug().Str("path", path).Int("tokens", len(tokens)).Msg("tokenized file")

	return tokens, nil
}
