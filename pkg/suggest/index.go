/*
Package suggest implements the ranking and merge engine for typing
suggestions. Candidates come from three streams: spell-checker
corrections, a prefix index built over a dictionary pack's word list,
and the frequency table of the document being edited. Streams are merged
in decreasing order of confidence and deduplicated by normalized form.
*/
package suggest

import (
	"sort"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"

	"github.com/GendByteMaster/lexiserve/internal/textutil"
)

// Index is a case-insensitive prefix index over an ordered word list.
// The trie maps folded keys to positions in the list, so results come
// back in list order (packs are frequency-ranked) with original casing.
type Index struct {
	words []string
	trie  *patricia.Trie
	norm  *textutil.Normalizer
}

// NewIndex builds an index from an ordered word list. Building is a pure
// function of the list; indexes are immutable afterwards.
func NewIndex(words []string, langTag string) *Index {
	idx := &Index{
		words: words,
		trie:  patricia.NewTrie(),
		norm:  textutil.NewNormalizer(langTag),
	}
	for i, w := range words {
		key := patricia.Prefix(idx.norm.Key(w))
		if item := idx.trie.Get(key); item != nil {
			idx.trie.Set(key, append(item.([]int), i))
		} else {
			idx.trie.Insert(key, []int{i})
		}
	}
	return idx
}

// Len returns the number of indexed words.
func (idx *Index) Len() int {
	return len(idx.words)
}

// Lookup returns up to limit display words whose normalized form starts
// with the normalized prefix, in word-list order, deduplicated by
// normalized form in first-seen order.
func (idx *Index) Lookup(prefix string, limit int) []string {
	if limit <= 0 {
		return nil
	}
	folded := idx.norm.Key(prefix)

	var positions []int
	err := idx.trie.VisitSubtree(patricia.Prefix(folded), func(p patricia.Prefix, item patricia.Item) error {
		positions = append(positions, item.([]int)...)
		return nil
	})
	if err != nil {
		log.Errorf("Error visiting index subtree: %v", err)
		return nil
	}
	sort.Ints(positions)

	seen := make(map[string]bool, limit)
	var out []string
	for _, pos := range positions {
		word := idx.words[pos]
		key := idx.norm.Key(word)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, word)
		if len(out) >= limit {
			break
		}
	}
	return out
}
