package domain

const (
	syllableFirst = 0xAC00
	syllableLast  = 0xD7A3 // syllableFirst + 11172 - 1
	syllableGroup = 588    // 21 vowels * 28 finals
)

// chosungTable lists the 19 leading consonants in code point order.
var chosungTable = [19]string{
	"ㄱ", "ㄲ", "ㄴ", "ㄷ", "ㄸ", "ㄹ", "ㅁ", "ㅂ", "ㅃ", "ㅅ", "ㅆ",
	"ㅇ", "ㅈ", "ㅉ", "ㅊ", "ㅋ", "ㅌ", "ㅍ", "ㅎ",
}

// Chosung returns the leading-consonant skeleton of text.
// Precomposed syllables map to their leading consonant, plain spaces are
// kept, and every other character is dropped.
func Chosung(text string) PhoneticKey {
	var key PhoneticKey
	for _, r := range text {
		switch {
		case r >= syllableFirst && r <= syllableLast:
			key = append(key, chosungTable[(r-syllableFirst)/syllableGroup])
		case r == ' ':
			key = append(key, " ")
		}
	}
	return key
}
