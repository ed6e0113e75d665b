package insight

import (
	"sort"
	"strings"

	"github.com/GendByteMaster/lexiserve/internal/textutil"
	"github.com/GendByteMaster/lexiserve/pkg/segment"
	"github.com/GendByteMaster/lexiserve/pkg/suggest"
)

// stopwords are never offered as document-mined related words; high
// frequency function words carry no lexical relation to the focus word.
var stopwords = map[string]bool{
	"the": true, "a": true, "an": true, "and": true, "or": true,
	"of": true, "to": true, "in": true, "on": true, "at": true,
	"is": true, "are": true, "was": true, "were": true, "be": true,
	"it": true, "its": true, "this": true, "that": true, "as": true,
	"for": true, "with": true, "by": true, "from": true, "but": true,
}

// mineExamples returns the sentences of text containing the focus word.
// A sentence contains the word iff word-segmenting it yields a segment
// whose normalized form equals the normalized focus word.
func mineExamples(text, focusKey string, seg segment.Segmenter, norm *textutil.Normalizer) []string {
	if text == "" || focusKey == "" {
		return nil
	}
	var out []string
	for _, sentence := range segment.Sentences(text) {
		for _, w := range seg.Words(sentence.Text) {
			if norm.Key(w.Text) == focusKey {
				out = append(out, strings.TrimSpace(sentence.Text))
				break
			}
		}
	}
	return out
}

// mineRelated ranks the document's other words by frequency descending,
// ties broken by locale-aware lexicographic order of the display form.
// The focus word and stopwords are excluded.
func mineRelated(text, focusKey, langTag string, seg segment.Segmenter, norm *textutil.Normalizer) []string {
	if text == "" {
		return nil
	}
	table := suggest.BuildFrequencyTable(text, seg, norm)

	var cands []suggest.WordCount
	table.Each(func(key string, wc suggest.WordCount) {
		if key == focusKey || stopwords[key] {
			return
		}
		cands = append(cands, wc)
	})

	coll := textutil.NewCollator(langTag)
	sort.Slice(cands, func(i, j int) bool {
		if cands[i].Count != cands[j].Count {
			return cands[i].Count > cands[j].Count
		}
		return coll.CompareString(cands[i].Display, cands[j].Display) < 0
	})

	out := make([]string, 0, len(cands))
	for _, c := range cands {
		out = append(out, c.Display)
	}
	return out
}
