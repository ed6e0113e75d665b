package segment

import "github.com/rivo/uniseg"

// Sentences splits text on UAX#29 sentence boundaries. Offsets are rune
// offsets into the original text; surrounding whitespace is kept so a
// caller can map spans back into the document.
func Sentences(text string) []Segment {
	var segs []Segment
	state := -1
	offset := 0
	rest := text
	for len(rest) > 0 {
		var sentence string
		sentence, rest, state = uniseg.FirstSentenceInString(rest, state)
		runes := []rune(sentence)
		segs = append(segs, Segment{Text: sentence, Start: offset, Length: len(runes)})
		offset += len(runes)
	}
	return segs
}
