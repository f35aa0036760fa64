package text

import (
	"bytes"
	"testing"
)

func TestLooksBinary(t *testing.T) {
	tests := []struct {
		name   string
		sample []byte
		want   bool
	}{
		{
			name:   "empty sample",
			sample: nil,
			want:   false,
		},
		{
			name:   "plain ascii",
			sample: []byte("hello world\n"),
			want:   false,
		},
		{
			name:   "utf8 japanese",
			sample: []byte("私は学生です。\n今日は良い天気です。"),
			want:   false,
		},
		{
			name:   "allowed control characters",
			sample: []byte("col1\tcol2\r\nrow\f\x1b[0m"),
			want:   false,
		},
		{
			name:   "null byte anywhere",
			sample: []byte("mostly text\x00more text"),
			want:   true,
		},
		{
			name:   "null byte at start",
			sample: append([]byte{0x00}, bytes.Repeat([]byte("a"), 100)...),
			want:   true,
		},
		{
			name:   "exactly thirty percent non printable",
			sample: []byte{0x01, 0x02, 0x03, 'a', 'b', 'c', 'd', 'e', 'f', 'g'},
			want:   false,
		},
		{
			name:   "just over thirty percent non printable",
			sample: []byte{0x01, 0x02, 0x03, 0x04, 'a', 'b', 'c', 'd', 'e', 'f'},
			want:   true,
		},
		{
			name:   "png header",
			sample: []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a},
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LooksBinary(tt.sample); got != tt.want {
				t.Errorf("LooksBinary(%v) = %v; want %v", tt.sample, got, tt.want)
			}
		})
	}
}

// The PNG header above slips past the ratio check because high bytes
// count as printable; the null-byte rule is what catches real binaries.
func TestLooksBinaryCatchesTypicalBinaries(t *testing.T) {
	elf := []byte{0x7f, 'E', 'L', 'F', 0x02, 0x01, 0x01, 0x00}
	if !LooksBinary(elf) {
		t.Error("LooksBinary should flag an ELF header via its null byte")
	}
}
