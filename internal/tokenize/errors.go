package tokenize

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoJapanese is wrapped by TokenizeError when input contains no Japanese
// characters and the Japanese-content requirement is active.
var ErrNoJapanese = errors.New("no Japanese characters in input")

// InitError reports that the analyzer or its dictionary could not be loaded.
// It is fatal for the instance under construction.
type InitError struct {
	Dict string // variant name or dictionary file path
	Err  error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("initialize tokenizer: dictionary %s: %v", e.Dict, e.Err)
}

func (e *InitError) Unwrap() error { return e.Err }

// Hints returns remediation suggestions for display alongside the error.
func (e *InitError) Hints() []string {
	return []string{
		"built-in dictionary variants: " + strings.Join(Variants(), ", "),
		"a dictionary compiled with the kagome tooling can be supplied by path",
	}
}

// TokenizeError reports that text could not be tokenized: the input failed
// the Japanese-content check, or a morpheme could not be converted and
// partial results were not allowed.
type TokenizeError struct {
	Surface string // offending morpheme, when the failure is per-morpheme
	Offset  int    // rune offset of Surface in the input, -1 when unknown
	Err     error
}

func (e *TokenizeError) Error() string {
	if e.Surface != "" {
		return fmt.Sprintf("tokenize: morpheme %q at offset %d: %v", e.Surface, e.Offset, e.Err)
	}
	return fmt.Sprintf("tokenize: %v", e.Err)
}

func (e *TokenizeError) Unwrap() error { return e.Err }

// Hints returns remediation suggestions for display alongside the error.
func (e *TokenizeError) Hints() []string {
	if errors.Is(e.Err, ErrNoJapanese) {
		return []string{
			"check that the input is Japanese text",
			"disable the Japanese-content requirement to tokenize anyway",
		}
	}
	return []string{
		"allow partial results to skip unconvertible morphemes",
		"try a different granularity mode",
	}
}

// FileReason classifies a file processing failure.
type FileReason int

const (
	ReasonNotFound FileReason = iota + 1
	ReasonNotAFile
	ReasonPermission
	ReasonBinary
	ReasonEmpty
	ReasonEncoding
	ReasonRead
)

// FileError reports a file processing failure. Reason discriminates the
// failure class; Encoding names the guessed legacy encoding when Reason is
// ReasonEncoding and a guess was possible.
type FileError struct {
	Path     string
	Reason   FileReason
	Encoding string
	Err      error
}

func (e *FileError) Error() string {
	switch e.Reason {
	case ReasonNotFound:
		return fmt.Sprintf("file %s: not found", e.Path)
	case ReasonNotAFile:
		return fmt.Sprintf("file %s: not a file", e.Path)
	case ReasonPermission:
		return fmt.Sprintf("file %s: permission denied", e.Path)
	case ReasonBinary:
		return fmt.Sprintf("file %s: binary content", e.Path)
	case ReasonEmpty:
		return fmt.Sprintf("file %s: empty or whitespace only", e.Path)
	case ReasonEncoding:
		if e.Encoding != "" {
			return fmt.Sprintf("file %s: not valid UTF-8 (looks like %s)", e.Path, e.Encoding)
		}
		return fmt.Sprintf("file %s: not valid UTF-8", e.Path)
	case ReasonRead:
		return fmt.Sprintf("file %s: read failed: %v", e.Path, e.Err)
	default:
		return fmt.Sprintf("file %s: %v", e.Path, e.Err)
	}
}

func (e *FileError) Unwrap() error { return e.Err }

// Hints returns remediation suggestions for display alongside the error.
func (e *FileError) Hints() []string {
	switch e.Reason {
	case ReasonNotFound:
		return []string{"check the path for typos and confirm the file exists"}
	case ReasonNotAFile:
		return []string{"pass a regular text file, not a directory"}
	case ReasonPermission:
		return []string{"check the file's read permissions"}
	case ReasonBinary:
		return []string{"this looks like a binary file; supply plain UTF-8 text"}
	case ReasonEmpty:
		return []string{"the file has no content to tokenize"}
	case ReasonEncoding:
		if e.Encoding != "" {
			return []string{fmt.Sprintf("convert the file first, e.g.: iconv -f %s -t UTF-8 FILE", e.Encoding)}
		}
		return []string{"convert the file to UTF-8"}
	default:
		return nil
	}
}
