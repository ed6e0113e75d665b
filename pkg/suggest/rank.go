package suggest

import (
	"sort"
	"strings"

	"github.com/GendByteMaster/lexiserve/internal/textutil"
	"github.com/GendByteMaster/lexiserve/pkg/segment"
	"github.com/GendByteMaster/lexiserve/pkg/spell"
)

// Default stream gates. Inputs shorter than these produce noise rather
// than help.
const (
	DefaultLimit      = 3
	MinCompletePrefix = 2
	MinSpellLength    = 3
)

// Ranker merges the three candidate streams for one language.
type Ranker struct {
	langTag        string
	limit          int
	minPrefix      int
	minSpellLength int
}

// NewRanker creates a ranker for a language tag. Non-positive limit and
// gate values select the package defaults.
func NewRanker(langTag string, limit, minPrefix, minSpellLength int) *Ranker {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if minPrefix <= 0 {
		minPrefix = MinCompletePrefix
	}
	if minSpellLength <= 0 {
		minSpellLength = MinSpellLength
	}
	return &Ranker{
		langTag:        langTag,
		limit:          limit,
		minPrefix:      minPrefix,
		minSpellLength: minSpellLength,
	}
}

// Rank produces the merged, deduplicated, length-bounded suggestion list
// for the active word. Index and checker may be nil; their streams then
// contribute nothing. Given identical inputs the output is identical:
// every ordering step below is deterministic.
//
// Stream priority is spell-correction, then dictionary index, then
// document frequency: authoritative corrections outrank curated
// vocabulary, which outranks ad-hoc in-document repetition.
func (r *Ranker) Rank(active segment.ActiveWord, table *FrequencyTable, index *Index, checker *spell.Checker) []string {
	norm := textutil.NewNormalizer(r.langTag)
	activeKey := norm.Key(active.Word)

	spellStream := r.spellStream(active, checker)
	indexStream := r.indexStream(active, index)
	freqStream := r.frequencyStream(active, table, norm)

	seen := make(map[string]bool, r.limit)
	var out []string
	for _, stream := range [][]string{spellStream, indexStream, freqStream} {
		for _, cand := range stream {
			key := norm.Key(cand)
			if key == activeKey || seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, cand)
			if len(out) >= r.limit {
				return out
			}
		}
	}
	return out
}

// spellStream offers corrections only for words long enough to carry
// signal and only when the checker flags the word as misspelled.
func (r *Ranker) spellStream(active segment.ActiveWord, checker *spell.Checker) []string {
	if checker == nil || len([]rune(active.Word)) < r.minSpellLength {
		return nil
	}
	if checker.Check(active.Word) {
		return nil
	}
	sugs := checker.Suggest(active.Word)
	if len(sugs) > r.limit {
		sugs = sugs[:r.limit]
	}
	return sugs
}

func (r *Ranker) indexStream(active segment.ActiveWord, index *Index) []string {
	if index == nil || len([]rune(active.Prefix)) < r.minPrefix {
		return nil
	}
	return index.Lookup(active.Prefix, r.limit)
}

// frequencyStream ranks in-document words sharing the typed prefix by
// occurrence count, ties broken by locale-aware case-insensitive order
// of the display form. The active word itself is never a candidate.
func (r *Ranker) frequencyStream(active segment.ActiveWord, table *FrequencyTable, norm *textutil.Normalizer) []string {
	if table == nil {
		return nil
	}
	prefixKey := norm.Key(active.Prefix)
	activeKey := norm.Key(active.Word)
	if prefixKey == "" {
		return nil
	}

	var cands []WordCount
	table.Each(func(key string, wc WordCount) {
		if key == activeKey || !strings.HasPrefix(key, prefixKey) {
			return
		}
		cands = append(cands, wc)
	})

	coll := textutil.NewCollator(r.langTag)
	sort.Slice(cands, func(i, j int) bool {
		if cands[i].Count != cands[j].Count {
			return cands[i].Count > cands[j].Count
		}
		return coll.CompareString(cands[i].Display, cands[j].Display) < 0
	})

	out := make([]string, 0, min(len(cands), r.limit))
	for _, c := range cands {
		out = append(out, c.Display)
		if len(out) >= r.limit {
			break
		}
	}
	return out
}
