/*
Package segment splits text into word-like spans and locates the word
under the caret.

Two segmenter implementations satisfy the same wordhood contract: a
UAX#29 word-boundary segmenter and a regex fallback matching runs of
letters, combining marks, apostrophes and hyphens. Both exclude pure
punctuation and whitespace runs, so for ASCII text they agree on what
counts as a word. All offsets and lengths are rune counts, never bytes.
*/
package segment

import (
	"regexp"

	"github.com/rivo/uniseg"

	"github.com/GendByteMaster/lexiserve/internal/textutil"
)

// Segment is one word-like span inside a text snapshot.
type Segment struct {
	Text   string
	Start  int // rune offset
	Length int // rune count
}

// Selection is a caret or selection range in rune offsets.
// End == Start denotes a bare caret.
type Selection struct {
	Start int
	End   int
}

// ActiveWord is the word segment containing the caret plus the typed
// prefix from the segment start up to the caret.
type ActiveWord struct {
	Word   string
	Start  int
	End    int
	Prefix string
}

// Segmenter produces word segments for a text snapshot.
type Segmenter interface {
	Words(text string) []Segment
}

// New returns the default segmenter, which uses Unicode word boundaries.
func New() Segmenter {
	return &UnicodeSegmenter{}
}

// NewWithFallback returns the Unicode segmenter, or the regex fallback
// when unicodeRules is false. The fallback exists for callers on inputs
// where boundary tables are unwanted, and for exercising the contract in
// tests.
func NewWithFallback(unicodeRules bool) Segmenter {
	if unicodeRules {
		return &UnicodeSegmenter{}
	}
	return &RegexSegmenter{}
}

// UnicodeSegmenter breaks text on UAX#29 word boundaries.
type UnicodeSegmenter struct{}

// Words returns the word-like segments of text in order.
func (s *UnicodeSegmenter) Words(text string) []Segment {
	var segs []Segment
	state := -1
	offset := 0
	rest := text
	for len(rest) > 0 {
		var word string
		word, rest, state = uniseg.FirstWordInString(rest, state)
		runes := []rune(word)
		if isWordLike(runes) {
			segs = append(segs, Segment{Text: word, Start: offset, Length: len(runes)})
		}
		offset += len(runes)
	}
	return segs
}

// wordRE mirrors the word class of the Unicode path for the fallback.
var wordRE = regexp.MustCompile(`[\p{L}\p{M}'-]+`)

// RegexSegmenter is the fallback word splitter, applied greedily
// left-to-right, non-overlapping.
type RegexSegmenter struct{}

// Words returns the regex-matched word segments of text in order.
func (s *RegexSegmenter) Words(text string) []Segment {
	var segs []Segment
	runes := []rune(text)
	// FindAllStringIndex yields byte offsets; walk runes alongside to
	// keep Segment offsets in codepoints.
	byteToRune := make(map[int]int, len(runes)+1)
	b := 0
	for i, r := range runes {
		byteToRune[b] = i
		b += len(string(r))
	}
	byteToRune[b] = len(runes)

	for _, loc := range wordRE.FindAllStringIndex(text, -1) {
		start := byteToRune[loc[0]]
		end := byteToRune[loc[1]]
		match := text[loc[0]:loc[1]]
		if !isWordLike([]rune(match)) {
			continue
		}
		segs = append(segs, Segment{Text: match, Start: start, Length: end - start})
	}
	return segs
}

// isWordLike requires at least one letter or combining mark, so bare
// apostrophe or hyphen runs are not words under either implementation.
func isWordLike(runes []rune) bool {
	for _, r := range runes {
		if !textutil.IsWordRune(r) {
			return false
		}
	}
	for _, r := range runes {
		if r != '\'' && r != '-' {
			return true
		}
	}
	return false
}

// LocateActiveWord finds the segment containing a zero-length caret and
// derives the typed prefix. It returns false when the selection is not a
// caret, no word-class rune is adjacent to the caret, no segment spans
// the caret, or the prefix would be empty (caret at the word start).
func LocateActiveWord(text string, sel Selection, segs []Segment) (ActiveWord, bool) {
	if sel.Start != sel.End {
		return ActiveWord{}, false
	}
	caret := sel.Start
	runes := []rune(text)
	if caret < 0 || caret > len(runes) {
		return ActiveWord{}, false
	}

	adjacent := false
	if caret > 0 && textutil.IsWordRune(runes[caret-1]) {
		adjacent = true
	}
	if caret < len(runes) && textutil.IsWordRune(runes[caret]) {
		adjacent = true
	}
	if !adjacent {
		return ActiveWord{}, false
	}

	seg, ok := pickSegment(caret, segs)
	if !ok {
		return ActiveWord{}, false
	}
	if caret <= seg.Start {
		// No typed prefix yet.
		return ActiveWord{}, false
	}
	prefix := string(runes[seg.Start:caret])
	return ActiveWord{
		Word:   seg.Text,
		Start:  seg.Start,
		End:    seg.Start + seg.Length,
		Prefix: prefix,
	}, true
}

// pickSegment prefers a segment with start < caret <= end, then one
// starting exactly at the caret, then one ending exactly at the caret.
func pickSegment(caret int, segs []Segment) (Segment, bool) {
	for _, s := range segs {
		if s.Start < caret && caret <= s.Start+s.Length {
			return s, true
		}
	}
	for _, s := range segs {
		if s.Start == caret {
			return s, true
		}
	}
	for _, s := range segs {
		if s.Start+s.Length == caret {
			return s, true
		}
	}
	return Segment{}, false
}
