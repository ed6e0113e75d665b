package segment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnicodeSegmenter_Words(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []Segment
	}{
		{
			name: "plain sentence",
			text: "the quick fox",
			want: []Segment{
				{Text: "the", Start: 0, Length: 3},
				{Text: "quick", Start: 4, Length: 5},
				{Text: "fox", Start: 10, Length: 3},
			},
		},
		{
			name: "punctuation is not a word",
			text: "hi, there!",
			want: []Segment{
				{Text: "hi", Start: 0, Length: 2},
				{Text: "there", Start: 4, Length: 5},
			},
		},
		{
			name: "apostrophe stays inside the word",
			text: "don't stop",
			want: []Segment{
				{Text: "don't", Start: 0, Length: 5},
				{Text: "stop", Start: 6, Length: 4},
			},
		},
		{
			name: "offsets are rune counts for non-ASCII",
			text: "años más",
			want: []Segment{
				{Text: "años", Start: 0, Length: 4},
				{Text: "más", Start: 5, Length: 3},
			},
		},
		{
			name: "empty text",
			text: "",
			want: nil,
		},
		{
			name: "whitespace only",
			text: "   \t\n",
			want: nil,
		},
	}

	seg := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, seg.Words(tt.text))
		})
	}
}

func TestSegmenters_AgreeOnASCII(t *testing.T) {
	texts := []string{
		"the quick brown fox jumps",
		"hello, world! it's fine - really",
		"one  two\tthree",
		"a",
		"... --- ...",
	}

	unicodeSeg := NewWithFallback(true)
	regexSeg := NewWithFallback(false)
	for _, text := range texts {
		assert.Equal(t, unicodeSeg.Words(text), regexSeg.Words(text), "text %q", text)
	}
}

func TestLocateActiveWord(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		caret  int
		want   ActiveWord
		wantOK bool
	}{
		{
			name:   "caret mid-word",
			text:   "the quick fo",
			caret:  11,
			want:   ActiveWord{Word: "fo", Start: 10, End: 12, Prefix: "f"},
			wantOK: true,
		},
		{
			name:   "caret at word end",
			text:   "the quick fo",
			caret:  12,
			want:   ActiveWord{Word: "fo", Start: 10, End: 12, Prefix: "fo"},
			wantOK: true,
		},
		{
			name:   "caret just after trailing space",
			text:   "the quick ",
			caret:  10,
			wantOK: false,
		},
		{
			name:   "caret at word start has no prefix",
			text:   "the quick",
			caret:  4,
			wantOK: false,
		},
		{
			name:   "caret between punctuation",
			text:   "hi, there",
			caret:  3,
			wantOK: false,
		},
		{
			name:   "caret in empty text",
			text:   "",
			caret:  0,
			wantOK: false,
		},
		{
			name:   "non-ASCII offsets",
			text:   "más añ",
			caret:  6,
			want:   ActiveWord{Word: "añ", Start: 4, End: 6, Prefix: "añ"},
			wantOK: true,
		},
	}

	seg := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := Selection{Start: tt.caret, End: tt.caret}
			got, ok := LocateActiveWord(tt.text, sel, seg.Words(tt.text))
			require.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestLocateActiveWord_RangeSelectionIsNotACaret(t *testing.T) {
	seg := New()
	text := "the quick fox"
	_, ok := LocateActiveWord(text, Selection{Start: 4, End: 9}, seg.Words(text))
	assert.False(t, ok)
}

func TestLocateActiveWord_PrefixMatchesTextSlice(t *testing.T) {
	seg := New()
	text := "the quick brown fox"
	runes := []rune(text)
	for caret := 0; caret <= len(runes); caret++ {
		active, ok := LocateActiveWord(text, Selection{Start: caret, End: caret}, seg.Words(text))
		if !ok {
			continue
		}
		assert.Equal(t, string(runes[active.Start:caret]), active.Prefix, "caret %d", caret)
		assert.NotEmpty(t, active.Prefix, "caret %d", caret)
	}
}
