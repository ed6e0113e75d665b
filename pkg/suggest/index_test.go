package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndex_Lookup(t *testing.T) {
	// Word lists are frequency-ranked, so lookup order follows list
	// position, not alphabetical order.
	words := []string{"the", "form", "fox", "focus", "forest", "Fox"}
	idx := NewIndex(words, "en")

	tests := []struct {
		name   string
		prefix string
		limit  int
		want   []string
	}{
		{
			name:   "list order preserved",
			prefix: "fo",
			limit:  10,
			want:   []string{"form", "fox", "focus", "forest"},
		},
		{
			name:   "limit caps results",
			prefix: "fo",
			limit:  2,
			want:   []string{"form", "fox"},
		},
		{
			name:   "case-insensitive prefix",
			prefix: "FO",
			limit:  10,
			want:   []string{"form", "fox", "focus", "forest"},
		},
		{
			name:   "exact word is its own completion",
			prefix: "forest",
			limit:  10,
			want:   []string{"forest"},
		},
		{
			name:   "no matches",
			prefix: "zzz",
			limit:  10,
			want:   nil,
		},
		{
			name:   "zero limit",
			prefix: "fo",
			limit:  0,
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, idx.Lookup(tt.prefix, tt.limit))
		})
	}
}

func TestIndex_DedupByNormalizedForm(t *testing.T) {
	idx := NewIndex([]string{"Fox", "fox", "FOX"}, "en")

	got := idx.Lookup("fo", 10)

	// First-seen casing wins; later case variants collapse into it.
	assert.Equal(t, []string{"Fox"}, got)
}

func TestIndex_Len(t *testing.T) {
	idx := NewIndex([]string{"a", "b", "c"}, "en")
	assert.Equal(t, 3, idx.Len())

	empty := NewIndex(nil, "en")
	assert.Equal(t, 0, empty.Len())
	assert.Nil(t, empty.Lookup("a", 5))
}
