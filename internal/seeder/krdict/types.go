// Package krdict parses Korean dictionary archive entries into quiz candidates.
// Pure functions: entry bytes in, domain structs out. No I/O.
package krdict

// rawWordInfo holds the word_info fields of one archive item.
type rawWordInfo struct {
	Word     string
	WordUnit string
	WordType string
	POSInfo  []rawPOSInfo
}

// rawPOSInfo holds one part-of-speech block.
type rawPOSInfo struct {
	CommPatternInfo []rawPattern
}

// rawPattern holds one pattern block.
type rawPattern struct {
	SenseInfo []rawSense
}

// rawSense holds one sense with its two definition fields.
type rawSense struct {
	Definition         string
	DefinitionOriginal string
}

// Stats holds per-entry parser statistics for logging.
type Stats struct {
	Items          int
	MalformedItems int
	Rejected       int
	Candidates     int
}
