package tokenize

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"

	"github.com/example/go-txt2anki/internal/testutil"
)

func TestTokenizeFile_Succeeds(t *testing.T) {
	tok := newTestTokenizer(t)
	path := testutil.WriteFile(t, t.TempDir(), "input.txt",
		[]byte("私は学生です。\n今日は良い天気です。\n"))

	tokens, err := tok.TokenizeFile(path)
	require.NoError(t, err)
	assert.NotEmpty(t, tokens)
	assert.True(t, hasPOS(tokens, "助詞"))
}

func TestTokenizeFile_NotFound(t *testing.T) {
	tok := newTestTokenizer(t)
	path := filepath.Join(t.TempDir(), "missing.txt")

	_, err := tok.TokenizeFile(path)
	require.Error(t, err)

	var ferr *FileError
	require.ErrorAs(t, err, &ferr)
	assert.Equal(t, ReasonNotFound, ferr.Reason)
	assert.Contains(t, err.Error(), path)
	assert.NotEmpty(t, ferr.Hints())
}

func TestTokenizeFile_Directory(t *testing.T) {
	tok := newTestTokenizer(t)
	dir := t.TempDir()

	_, err := tok.TokenizeFile(dir)
	require.Error(t, err)

	var ferr *FileError
	require.ErrorAs(t, err, &ferr)
	assert.Equal(t, ReasonNotAFile, ferr.Reason)
	assert.Contains(t, err.Error(), "not a file")
}

func TestTokenizeFile_Binary(t *testing.T) {
	tok := newTestTokenizer(t)
	path := testutil.WriteFile(t, t.TempDir(), "blob.bin",
		[]byte{0x00, 0x01, 0x02, 0x03, 0xff, 0xfe})

	_, err := tok.TokenizeFile(path)
	require.Error(t, err)

	var ferr *FileError
	require.ErrorAs(t, err, &ferr)
	assert.Equal(t, ReasonBinary, ferr.Reason)
	assert.Contains(t, err.Error(), "binary")
}

// Blank input is fine as a string but an error as a file; both sides of that
// contrast are pinned here and in TestTokenize_EmptyInput.
func TestTokenizeFile_Empty(t *testing.T) {
	tok := newTestTokenizer(t)
	dir := t.TempDir()

	for name, content := range map[string][]byte{
		"empty.txt":      {},
		"whitespace.txt": []byte("  \n\t \n"),
	} {
		path := testutil.WriteFile(t, dir, name, content)

		_, err := tok.TokenizeFile(path)
		require.Error(t, err, name)

		var ferr *FileError
		require.ErrorAs(t, err, &ferr, name)
		assert.Equal(t, ReasonEmpty, ferr.Reason, name)
		assert.Contains(t, err.Error(), "empty", name)
	}
}

func TestTokenizeFile_LegacyEncoding(t *testing.T) {
	tok := newTestTokenizer(t)

	body, _, err := transform.Bytes(japanese.ShiftJIS.NewEncoder(), []byte("私は学生です。"))
	require.NoError(t, err)
	path := testutil.WriteFile(t, t.TempDir(), "sjis.txt", body)

	_, err = tok.TokenizeFile(path)
	require.Error(t, err)

	var ferr *FileError
	require.ErrorAs(t, err, &ferr)
	assert.Equal(t, ReasonEncoding, ferr.Reason)
	assert.Equal(t, "Shift_JIS", ferr.Encoding)
	require.NotEmpty(t, ferr.Hints())
	assert.Contains(t, ferr.Hints()[0], "iconv")
}

func TestTokenizeFile_ISO2022JP(t *testing.T) {
	tok := newTestTokenizer(t)

	body, _, err := transform.Bytes(japanese.ISO2022JP.NewEncoder(), []byte("こんにちは"))
	require.NoError(t, err)
	path := testutil.WriteFile(t, t.TempDir(), "jis.txt", body)

	_, err = tok.TokenizeFile(path)
	require.Error(t, err)

	var ferr *FileError
	require.ErrorAs(t, err, &ferr)
	assert.Equal(t, ReasonEncoding, ferr.Reason)
	assert.Equal(t, "ISO-2022-JP", ferr.Encoding)
}

func TestTokenizeFile_WrapsTokenizeError(t *testing.T) {
	tok := newTestTokenizer(t)
	path := testutil.WriteFile(t, t.TempDir(), "english.txt", []byte("just english text\n"))

	_, err := tok.TokenizeFile(path)
	require.Error(t, err)

	var terr *TokenizeError
	require.ErrorAs(t, err, &terr, "inner tokenize error should stay inspectable")
	assert.ErrorIs(t, err, ErrNoJapanese)
	assert.Contains(t, err.Error(), path)
}
