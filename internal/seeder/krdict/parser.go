package krdict

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/heartmarshall/chosung-quiz/internal/domain"
)

// itemPaths are tried in order; the first one holding an array wins.
var itemPaths = []string{"channel.item", "items"}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ParseCandidates turns one archive entry into quiz candidates.
// Items that fail to decode, have no word_info, fail the good-word filter or
// yield an empty chosung key are skipped and counted in Stats.
// Returns domain.ErrEntryParse if the entry is not a JSON document with an item list.
func ParseCandidates(data []byte) ([]domain.Candidate, Stats, error) {
	var stats Stats

	items, err := locateItems(data)
	if err != nil {
		return nil, stats, err
	}

	var candidates []domain.Candidate
	for _, item := range items {
		stats.Items++

		info, ok := parseItem(item)
		if !ok {
			stats.MalformedItems++
			continue
		}

		c, ok := toCandidate(info)
		if !ok {
			stats.Rejected++
			continue
		}
		candidates = append(candidates, c)
	}

	stats.Candidates = len(candidates)
	return candidates, stats, nil
}

// ParseMatches returns every item whose word contains query, case-insensitively.
// The good-word filter is not applied; a missing hint becomes the placeholder.
func ParseMatches(data []byte, query string) ([]domain.SearchHit, Stats, error) {
	var stats Stats

	items, err := locateItems(data)
	if err != nil {
		return nil, stats, err
	}

	var hits []domain.SearchHit
	for _, item := range items {
		stats.Items++

		info, ok := parseItem(item)
		if !ok {
			stats.MalformedItems++
			continue
		}

		word := strings.TrimSpace(info.Word)
		if word == "" || !domain.ContainsFold(word, query) {
			stats.Rejected++
			continue
		}

		hint := ExtractHint(info.POSInfo, info.WordUnit)
		if hint == "" {
			hint = domain.PlaceholderHint
		}
		hits = append(hits, domain.SearchHit{Word: word, Hint: hint})
	}

	stats.Candidates = len(hits)
	return hits, stats, nil
}

// locateItems decodes the entry as UTF-8 JSON and returns its item list.
func locateItems(data []byte) ([]gjson.Result, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	data = bytes.ToValidUTF8(data, []byte("\uFFFD"))

	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: invalid json", domain.ErrEntryParse)
	}

	doc := gjson.ParseBytes(data)
	for _, path := range itemPaths {
		if r := doc.Get(path); r.IsArray() {
			return r.Array(), nil
		}
	}
	if doc.IsArray() {
		return doc.Array(), nil
	}

	return nil, fmt.Errorf("%w: no item list", domain.ErrEntryParse)
}

// parseItem reads a single item. Items without a word_info object are
// malformed. Fields of the wrong JSON type read as empty, so one bad
// sense does not drop the word.
func parseItem(item gjson.Result) (*rawWordInfo, bool) {
	if !item.IsObject() {
		return nil, false
	}
	wi := item.Get("word_info")
	if !wi.IsObject() {
		return nil, false
	}

	info := &rawWordInfo{
		Word:     stringField(wi, "word"),
		WordUnit: stringField(wi, "word_unit"),
		WordType: stringField(wi, "word_type"),
	}
	eachElement(wi, "pos_info", func(pos gjson.Result) {
		var p rawPOSInfo
		eachElement(pos, "comm_pattern_info", func(pattern gjson.Result) {
			var rp rawPattern
			eachElement(pattern, "sense_info", func(sense gjson.Result) {
				rp.SenseInfo = append(rp.SenseInfo, rawSense{
					Definition:         stringField(sense, "definition"),
					DefinitionOriginal: stringField(sense, "definition_original"),
				})
			})
			p.CommPatternInfo = append(p.CommPatternInfo, rp)
		})
		info.POSInfo = append(info.POSInfo, p)
	})
	return info, true
}

// stringField returns the string at path, or "" for any other JSON type.
func stringField(r gjson.Result, path string) string {
	v := r.Get(path)
	if v.Type != gjson.String {
		return ""
	}
	return v.Str
}

// eachElement calls fn for every element of the array at path.
// A missing field or a non-array value yields nothing.
func eachElement(r gjson.Result, path string, fn func(gjson.Result)) {
	v := r.Get(path)
	if !v.IsArray() {
		return
	}
	for _, el := range v.Array() {
		fn(el)
	}
}

// toCandidate applies the good-word filter and chosung extraction.
// The filter sees the extracted hint before placeholder substitution, so
// proverbs without a usable definition are dropped.
func toCandidate(info *rawWordInfo) (domain.Candidate, bool) {
	hint := ExtractHint(info.POSInfo, info.WordUnit)

	if !domain.IsGoodWord(info.Word, hint, info.WordUnit, info.WordType) {
		return domain.Candidate{}, false
	}

	word := strings.TrimSpace(info.Word)
	key := domain.Chosung(word)
	if key.IsEmpty() {
		return domain.Candidate{}, false
	}

	if hint == "" {
		hint = domain.PlaceholderHint
	}

	return domain.Candidate{Word: word, Hint: hint, Key: key}, true
}
