package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/GendByteMaster/lexiserve/pkg/segment"
)

func TestApply(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		active     segment.ActiveWord
		suggestion string
		wantText   string
		wantCaret  int
	}{
		{
			name:       "replace trailing partial word",
			text:       "the quick fo",
			active:     segment.ActiveWord{Word: "fo", Start: 10, End: 12, Prefix: "fo"},
			suggestion: "fox",
			wantText:   "the quick fox",
			wantCaret:  13,
		},
		{
			name:       "replace mid-text word keeps the tail",
			text:       "the qick fox",
			active:     segment.ActiveWord{Word: "qick", Start: 4, End: 8, Prefix: "qick"},
			suggestion: "quick",
			wantText:   "the quick fox",
			wantCaret:  9,
		},
		{
			name:       "shorter replacement",
			text:       "a lengthy word",
			active:     segment.ActiveWord{Word: "lengthy", Start: 2, End: 9, Prefix: "lengthy"},
			suggestion: "long",
			wantText:   "a long word",
			wantCaret:  6,
		},
		{
			name:       "caret counts runes not bytes",
			text:       "un pjaro canta",
			active:     segment.ActiveWord{Word: "pjaro", Start: 3, End: 8, Prefix: "pjaro"},
			suggestion: "pájaro",
			wantText:   "un pájaro canta",
			wantCaret:  9,
		},
		{
			name:       "replace whole text",
			text:       "teh",
			active:     segment.ActiveWord{Word: "teh", Start: 0, End: 3, Prefix: "teh"},
			suggestion: "the",
			wantText:   "the",
			wantCaret:  3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotText, gotCaret := Apply(tt.text, tt.active, tt.suggestion)
			assert.Equal(t, tt.wantText, gotText)
			assert.Equal(t, tt.wantCaret, gotCaret)
		})
	}
}

func TestApply_OutOfRangeSpanLeavesTextAlone(t *testing.T) {
	text := "short"
	gotText, gotCaret := Apply(text, segment.ActiveWord{Start: 2, End: 99}, "anything")
	assert.Equal(t, text, gotText)
	assert.Equal(t, len([]rune(text)), gotCaret)
}
