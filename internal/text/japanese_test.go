package text

import "testing"

func TestContainsJapanese(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{
			name:  "hiragana",
			input: "こんにちは",
			want:  true,
		},
		{
			name:  "katakana",
			input: "コーヒー",
			want:  true,
		},
		{
			name:  "kanji",
			input: "天気",
			want:  true,
		},
		{
			name:  "mixed scripts",
			input: "私はコーヒーを飲みます。",
			want:  true,
		},
		{
			name:  "single japanese rune in ascii text",
			input: "the word 猫 means cat",
			want:  true,
		},
		{
			name:  "iteration mark",
			input: "人々",
			want:  true,
		},
		{
			name:  "ascii only",
			input: "hello world",
			want:  false,
		},
		{
			name:  "digits and punctuation",
			input: "12345 !?",
			want:  false,
		},
		{
			name:  "japanese punctuation only",
			input: "。、！？",
			want:  false,
		},
		{
			name:  "korean text",
			input: "안녕하세요",
			want:  false,
		},
		{
			name:  "empty string",
			input: "",
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ContainsJapanese(tt.input); got != tt.want {
				t.Errorf("ContainsJapanese(%q) = %v; want %v", tt.input, got, tt.want)
			}
		})
	}
}
