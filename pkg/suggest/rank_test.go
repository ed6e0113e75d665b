package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GendByteMaster/lexiserve/internal/textutil"
	"github.com/GendByteMaster/lexiserve/pkg/segment"
	"github.com/GendByteMaster/lexiserve/pkg/spell"
)

func buildTable(t *testing.T, text string) *FrequencyTable {
	t.Helper()
	return BuildFrequencyTable(text, segment.New(), textutil.NewNormalizer("en"))
}

func TestRanker_FrequencyOnly(t *testing.T) {
	// "form" twice, "fox" and "focus" once each; the active word "fo"
	// must never suggest itself.
	table := buildTable(t, "form fox form focus fo")
	active := segment.ActiveWord{Word: "fo", Start: 20, End: 22, Prefix: "fo"}

	got := NewRanker("en", 3, 0, 0).Rank(active, table, nil, nil)

	assert.Equal(t, []string{"form", "focus", "fox"}, got)
}

func TestRanker_FrequencyTieBreakIsAlphabetical(t *testing.T) {
	table := buildTable(t, "fox focus form fo")
	active := segment.ActiveWord{Word: "fo", Start: 14, End: 16, Prefix: "fo"}

	got := NewRanker("en", 3, 0, 0).Rank(active, table, nil, nil)

	assert.Equal(t, []string{"focus", "form", "fox"}, got)
}

func TestRanker_Deterministic(t *testing.T) {
	table := buildTable(t, "apple apply apt ap appoint approach")
	active := segment.ActiveWord{Word: "ap", Start: 15, End: 17, Prefix: "ap"}
	ranker := NewRanker("en", 3, 0, 0)

	first := ranker.Rank(active, table, nil, nil)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, ranker.Rank(active, table, nil, nil))
	}
}

func TestRanker_LimitCap(t *testing.T) {
	table := buildTable(t, "can cane candy canal canon cannon ca")
	active := segment.ActiveWord{Word: "ca", Start: 33, End: 35, Prefix: "ca"}

	got := NewRanker("en", 3, 0, 0).Rank(active, table, nil, nil)

	assert.Len(t, got, 3)
}

func TestRanker_IndexOutranksFrequency(t *testing.T) {
	index := NewIndex([]string{"forest", "fortune"}, "en")
	table := buildTable(t, "fox fox fox fo")
	active := segment.ActiveWord{Word: "fo", Start: 12, End: 14, Prefix: "fo"}

	got := NewRanker("en", 3, 0, 0).Rank(active, table, index, nil)

	assert.Equal(t, []string{"forest", "fortune", "fox"}, got)
}

func TestRanker_SpellOutranksEverything(t *testing.T) {
	checker, err := spell.NewFromWords([]string{"receive", "recipe"}, "abcdefghijklmnopqrstuvwxyz")
	require.NoError(t, err)
	index := NewIndex([]string{"recieve"}, "en")
	table := buildTable(t, "recieve")
	active := segment.ActiveWord{Word: "recieve", Start: 0, End: 7, Prefix: "recieve"}

	got := NewRanker("en", 3, 0, 0).Rank(active, table, index, checker)

	// The prefix streams can only produce the misspelling itself, which
	// is excluded as the active word, so everything here is a correction.
	require.NotEmpty(t, got)
	assert.Subset(t, []string{"receive", "recipe"}, got)
	assert.Contains(t, got, "receive")
	assert.NotContains(t, got, "recieve")
}

func TestRanker_SpellBeforeFrequency(t *testing.T) {
	checker, err := spell.NewFromWords([]string{"receive"}, "abcdefghijklmnopqrstuvwxyz")
	require.NoError(t, err)
	// Caret sits three runes into the misspelling, so the frequency
	// stream matches on "rec" while the spell stream corrects the whole
	// word.
	table := buildTable(t, "recall recall recieve")
	active := segment.ActiveWord{Word: "recieve", Start: 14, End: 21, Prefix: "rec"}

	got := NewRanker("en", 3, 0, 0).Rank(active, table, nil, checker)

	assert.Equal(t, []string{"receive", "recall"}, got)
}

func TestRanker_CorrectWordGetsNoSpellStream(t *testing.T) {
	checker, err := spell.NewFromWords([]string{"fox", "form"}, "abcdefghijklmnopqrstuvwxyz")
	require.NoError(t, err)
	table := buildTable(t, "form fox")
	active := segment.ActiveWord{Word: "fox", Start: 5, End: 8, Prefix: "fox"}

	got := NewRanker("en", 3, 0, 0).Rank(active, table, nil, checker)

	// "fox" is spelled correctly, so only the frequency stream runs and
	// the prefix "fox" matches nothing else.
	assert.Empty(t, got)
}

func TestRanker_ShortWordSkipsSpellStream(t *testing.T) {
	checker, err := spell.NewFromWords([]string{"of", "on"}, "abcdefghijklmnopqrstuvwxyz")
	require.NoError(t, err)
	table := buildTable(t, "of on fo")
	active := segment.ActiveWord{Word: "fo", Start: 6, End: 8, Prefix: "fo"}

	got := NewRanker("en", 3, 0, 0).Rank(active, table, nil, checker)

	// Two runes is under the spell gate; "fo" would otherwise correct.
	assert.Empty(t, got)
}

func TestRanker_ShortPrefixSkipsIndexStream(t *testing.T) {
	index := NewIndex([]string{"fox", "form"}, "en")
	active := segment.ActiveWord{Word: "fat", Start: 0, End: 3, Prefix: "f"}

	got := NewRanker("en", 3, 0, 0).Rank(active, buildTable(t, "fat"), index, nil)

	assert.Empty(t, got)
}

func TestRanker_DedupAcrossStreams(t *testing.T) {
	index := NewIndex([]string{"form", "fox"}, "en")
	table := buildTable(t, "Form form fo")
	active := segment.ActiveWord{Word: "fo", Start: 10, End: 12, Prefix: "fo"}

	got := NewRanker("en", 3, 0, 0).Rank(active, table, index, nil)

	// "form" arrives from both the index and the document; it shows once.
	assert.Equal(t, []string{"form", "fox"}, got)
}

func TestRanker_ConfiguredGates(t *testing.T) {
	checker, err := spell.NewFromWords([]string{"receive"}, "abcdefghijklmnopqrstuvwxyz")
	require.NoError(t, err)
	index := NewIndex([]string{"recall", "record"}, "en")
	active := segment.ActiveWord{Word: "recieve", Start: 0, End: 7, Prefix: "rec"}
	table := buildTable(t, "recieve")

	t.Run("defaults admit both streams", func(t *testing.T) {
		got := NewRanker("en", 3, 0, 0).Rank(active, table, index, checker)
		assert.Equal(t, []string{"receive", "recall", "record"}, got)
	})

	t.Run("raised min prefix closes the index stream", func(t *testing.T) {
		got := NewRanker("en", 3, 4, 0).Rank(active, table, index, checker)
		assert.Equal(t, []string{"receive"}, got)
	})

	t.Run("raised min spell length closes the spell stream", func(t *testing.T) {
		got := NewRanker("en", 3, 0, 8).Rank(active, table, index, checker)
		assert.Equal(t, []string{"recall", "record"}, got)
	})
}
