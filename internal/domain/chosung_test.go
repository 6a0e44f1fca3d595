package domain

import (
	"reflect"
	"testing"
)

func TestChosung(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  PhoneticKey
	}{
		{name: "two syllables", input: "사과", want: PhoneticKey{"ㅅ", "ㄱ"}},
		{name: "first syllable of block", input: "가", want: PhoneticKey{"ㄱ"}},
		{name: "last syllable of block", input: "힣", want: PhoneticKey{"ㅎ"}},
		{name: "double consonants", input: "까따빠싸짜", want: PhoneticKey{"ㄲ", "ㄸ", "ㅃ", "ㅆ", "ㅉ"}},
		{name: "space preserved", input: "가는 말", want: PhoneticKey{"ㄱ", "ㄴ", " ", "ㅁ"}},
		{name: "latin dropped", input: "a사b", want: PhoneticKey{"ㅅ"}},
		{name: "bare jamo dropped", input: "ㄱㅏ", want: nil},
		{name: "digits and punctuation dropped", input: "1,사!", want: PhoneticKey{"ㅅ"}},
		{name: "tab is not a space", input: "가\t나", want: PhoneticKey{"ㄱ", "ㄴ"}},
		{name: "empty", input: "", want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Chosung(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Chosung(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestChosung_Deterministic(t *testing.T) {
	t.Parallel()

	inputs := []string{"사과", "가는 말이 고와야 오는 말이 곱다", "컴퓨터", ""}
	for _, in := range inputs {
		first := Chosung(in)
		for range 5 {
			if got := Chosung(in); !reflect.DeepEqual(got, first) {
				t.Fatalf("Chosung(%q) not deterministic: %q vs %q", in, got, first)
			}
		}
	}
}

func TestChosung_OneSymbolPerSyllableOrSpace(t *testing.T) {
	t.Parallel()

	in := "가 나다 라"
	got := Chosung(in)
	if len(got) != 6 {
		t.Fatalf("expected 6 symbols, got %d (%q)", len(got), got)
	}
	if got.String() != "ㄱ ㄴㄷ ㄹ" {
		t.Errorf("String() = %q", got.String())
	}
}

func TestPhoneticKey_IsEmpty(t *testing.T) {
	t.Parallel()

	if !Chosung("abc").IsEmpty() {
		t.Error("non-Hangul text should produce an empty key")
	}
	if Chosung("가").IsEmpty() {
		t.Error("Hangul text should produce a non-empty key")
	}
}
