package krdict

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/chosung-quiz/internal/domain"
)

const channelEntry = `{
  "channel": {
    "total": 4,
    "item": [
      {"word_info": {"word": "사과", "word_unit": "단어", "word_type": "고유어",
        "pos_info": [{"comm_pattern_info": [{"sense_info": [{"definition_original": "사과나무의 열매."}]}]}]}},
      {"word_info": {"word": "사자", "word_unit": "단어", "word_type": "한자어",
        "pos_info": [{"comm_pattern_info": [{"sense_info": [{"definition": "only primary"}]}]}]}},
      {"word_info": {"word": "컴퓨터", "word_unit": "단어", "word_type": "외래어",
        "pos_info": [{"comm_pattern_info": [{"sense_info": [{"definition_original": "전자 계산기."}]}]}]}},
      {"word_info": {"word": "낮말은 새가 듣는다", "word_unit": "속담",
        "pos_info": [{"comm_pattern_info": [{"sense_info": [{"definition": "아무도 안 듣는 데서라도 말조심해야 한다는 말."}]}]}]}}
    ]
  }
}`

func TestParseCandidates_ChannelItem(t *testing.T) {
	candidates, stats, err := ParseCandidates([]byte(channelEntry))
	require.NoError(t, err)

	require.Len(t, candidates, 3)

	assert.Equal(t, "사과", candidates[0].Word)
	assert.Equal(t, "사과나무의 열매.", candidates[0].Hint)
	assert.Equal(t, domain.PhoneticKey{"ㅅ", "ㄱ"}, candidates[0].Key)

	assert.Equal(t, "사자", candidates[1].Word)
	assert.Equal(t, domain.PlaceholderHint, candidates[1].Hint)

	proverb := candidates[2]
	assert.Equal(t, "낮말은 새가 듣는다", proverb.Word)
	assert.Equal(t, domain.ProverbHintPrefix+"아무도 안 듣는 데서라도 말조심해야 한다는 말.", proverb.Hint)
	assert.Equal(t, "ㄴㅁㅇ ㅅㄱ ㄷㄴㄷ", proverb.Key.String())

	assert.Equal(t, 4, stats.Items)
	assert.Equal(t, 1, stats.Rejected)
	assert.Equal(t, 3, stats.Candidates)
}

func TestParseCandidates_ItemsAndBareArray(t *testing.T) {
	item := `{"word_info": {"word": "나무", "word_unit": "단어", "word_type": "고유어"}}`

	tests := []struct {
		name string
		data string
	}{
		{"items field", `{"items": [` + item + `]}`},
		{"bare array", `[` + item + `]`},
		{"channel item preferred", `{"channel": {"item": [` + item + `]}, "items": []}`},
		{"leading bom", "\ufeff[" + item + "]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidates, _, err := ParseCandidates([]byte(tt.data))
			require.NoError(t, err)
			require.Len(t, candidates, 1)
			assert.Equal(t, "나무", candidates[0].Word)
			assert.Equal(t, domain.PlaceholderHint, candidates[0].Hint)
		})
	}
}

func TestParseCandidates_MalformedItemsSkipped(t *testing.T) {
	data := `[
      1,
      "text",
      {"no_word_info": true},
      {"word_info": "not an object"},
      {"word_info": {"word": "바다", "word_unit": "단어"}}
    ]`

	candidates, stats, err := ParseCandidates([]byte(data))
	require.NoError(t, err)

	require.Len(t, candidates, 1)
	assert.Equal(t, "바다", candidates[0].Word)
	assert.Equal(t, 5, stats.Items)
	assert.Equal(t, 4, stats.MalformedItems)
}

func TestParseCandidates_WrongFieldTypesKeepWord(t *testing.T) {
	data := `[
      {"word_info": {"word": "사과", "word_unit": "단어", "word_type": 3,
        "pos_info": [{"comm_pattern_info": [{"sense_info": [
          {"definition_original": 12},
          {"definition_original": "사과나무의 열매."}
        ]}]}]}},
      {"word_info": {"word": "나무", "word_unit": "단어", "pos_info": {"not": "a list"}}},
      {"word_info": {"word": 42, "word_unit": "단어"}}
    ]`

	candidates, stats, err := ParseCandidates([]byte(data))
	require.NoError(t, err)

	require.Len(t, candidates, 2)
	assert.Equal(t, "사과", candidates[0].Word)
	assert.Equal(t, "사과나무의 열매.", candidates[0].Hint)
	assert.Equal(t, "나무", candidates[1].Word)
	assert.Equal(t, domain.PlaceholderHint, candidates[1].Hint)
	assert.Equal(t, 3, stats.Items)
	assert.Zero(t, stats.MalformedItems)
	assert.Equal(t, 1, stats.Rejected)
}

func TestParseCandidates_Rejections(t *testing.T) {
	data := `[
      {"word_info": {"word": "가_나", "word_unit": "단어"}},
      {"word_info": {"word": "가", "word_unit": "단어"}},
      {"word_info": {"word": "가나다라마바사아자차카", "word_unit": "단어"}},
      {"word_info": {"word": "apple", "word_unit": "단어"}},
      {"word_info": {"word": "말 많은 집", "word_unit": "속담"}}
    ]`

	candidates, stats, err := ParseCandidates([]byte(data))
	require.NoError(t, err)

	assert.Empty(t, candidates)
	assert.Equal(t, 5, stats.Rejected)
}

func TestParseCandidates_InvalidEntry(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", `{"channel": `},
		{"empty", ``},
		{"object without list", `{"channel": {"item": {"word_info": {}}}}`},
		{"scalar", `42`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ParseCandidates([]byte(tt.data))
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrEntryParse))
		})
	}
}

func TestParseMatches(t *testing.T) {
	data := `[
      {"word_info": {"word": "사과", "word_unit": "단어",
        "pos_info": [{"comm_pattern_info": [{"sense_info": [{"definition_original": "열매"}]}]}]}},
      {"word_info": {"word": "사-자", "word_unit": "단어"}},
      {"word_info": {"word": "Sample", "word_unit": "단어"}},
      {"word_info": {"word": "나무", "word_unit": "단어"}},
      {"word_info": {"word": "  ", "word_unit": "단어"}}
    ]`

	hits, _, err := ParseMatches([]byte(data), "사")
	require.NoError(t, err)
	assert.Equal(t, []domain.SearchHit{
		{Word: "사과", Hint: "열매"},
		{Word: "사-자", Hint: domain.PlaceholderHint},
	}, hits)

	hits, _, err = ParseMatches([]byte(data), "SAM")
	require.NoError(t, err)
	assert.Equal(t, []domain.SearchHit{{Word: "Sample", Hint: domain.PlaceholderHint}}, hits)
}
