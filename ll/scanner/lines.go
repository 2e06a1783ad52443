package scanner

import (
	"sort"
	"unicode/utf8"

	"github.com/npillmayer/predict"
)

// LineIndex translates byte offsets of a text to line/column positions.
// Newline offsets are collected once, lookups use binary search.
type LineIndex struct {
	source   string
	text     string
	newlines []int // byte offsets of '\n'
}

// NewLineIndex scans text for newlines.
func NewLineIndex(source string, text string) *LineIndex {
	li := &LineIndex{source: source, text: text}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			li.newlines = append(li.newlines, i)
		}
	}
	return li
}

// Position returns the 1-based line and column of a byte offset. Columns count runes.
// Offsets behind the end of the text are clamped to the end of the text.
func (li *LineIndex) Position(offset int) predict.Position {
	if offset > len(li.text) {
		offset = len(li.text)
	}
	line := sort.SearchInts(li.newlines, offset) // number of newlines before offset
	lineStart := 0
	if line > 0 {
		lineStart = li.newlines[line-1] + 1
	}
	return predict.Position{
		Source: li.source,
		Line:   line + 1,
		Col:    utf8.RuneCountInString(li.text[lineStart:offset]) + 1,
	}
}
