package morph

import "testing"

func TestDictionaryForm(t *testing.T) {
	tests := []struct {
		name  string
		token Token
		want  string
	}{
		{
			name: "prefers base form when present",
			token: Token{
				Surface:      "食べた",
				Reading:      "タベタ",
				PartOfSpeech: "動詞",
				BaseForm:     "食べる",
			},
			want: "食べる",
		},
		{
			name: "falls back to surface when base form is empty",
			token: Token{
				Surface:      "こんにちは",
				Reading:      "コンニチハ",
				PartOfSpeech: "感動詞",
			},
			want: "こんにちは",
		},
		{
			name:  "zero value yields empty string",
			token: Token{},
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.token.DictionaryForm(); got != tt.want {
				t.Errorf("DictionaryForm() = %q; want %q", got, tt.want)
			}
		})
	}
}

func TestDictionaryForm_TracksBaseFormChanges(t *testing.T) {
	tok := Token{Surface: "食べ"}

	if got := tok.DictionaryForm(); got != "食べ" {
		t.Fatalf("DictionaryForm() = %q; want surface fallback %q", got, "食べ")
	}

	tok.BaseForm = "食べる"

	// Recomputed, not cached at construction time.
	if got := tok.DictionaryForm(); got != "食べる" {
		t.Errorf("DictionaryForm() after BaseForm update = %q; want %q", got, "食べる")
	}
}
