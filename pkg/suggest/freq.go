package suggest

import (
	"github.com/GendByteMaster/lexiserve/internal/textutil"
	"github.com/GendByteMaster/lexiserve/pkg/segment"
)

// WordCount pairs a display form with its occurrence count.
type WordCount struct {
	Display string
	Count   int
}

// FrequencyTable maps normalized words to their in-document counts.
// Tables are rebuilt wholesale on every text change and never mutated
// in place afterwards.
type FrequencyTable struct {
	counts map[string]WordCount
}

// BuildFrequencyTable segments text and counts each word by its
// normalized form. The first occurrence fixes the display form.
func BuildFrequencyTable(text string, seg segment.Segmenter, norm *textutil.Normalizer) *FrequencyTable {
	table := &FrequencyTable{counts: make(map[string]WordCount)}
	for _, s := range seg.Words(text) {
		key := norm.Key(s.Text)
		if key == "" {
			continue
		}
		entry, ok := table.counts[key]
		if !ok {
			entry = WordCount{Display: s.Text}
		}
		entry.Count++
		table.counts[key] = entry
	}
	return table
}

// Get returns the count entry for a normalized key.
func (t *FrequencyTable) Get(key string) (WordCount, bool) {
	e, ok := t.counts[key]
	return e, ok
}

// Len returns the number of distinct normalized words.
func (t *FrequencyTable) Len() int {
	return len(t.counts)
}

// Each calls fn for every (key, entry) pair in unspecified order.
func (t *FrequencyTable) Each(fn func(key string, wc WordCount)) {
	for k, wc := range t.counts {
		fn(k, wc)
	}
}
