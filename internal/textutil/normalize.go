// Package textutil holds Unicode normalization and locale ordering helpers
// shared by the suggestion and insight packages.
package textutil

import (
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Normalizer folds words into canonical lookup keys for one language:
// NFC composition followed by locale-aware lowercasing.
type Normalizer struct {
	tag language.Tag
}

// NewNormalizer builds a normalizer for the given BCP 47 tag.
// Unparseable tags fall back to the und locale, which still lowercases.
func NewNormalizer(langTag string) *Normalizer {
	tag, err := language.Parse(langTag)
	if err != nil {
		tag = language.Und
	}
	return &Normalizer{tag: tag}
}

// Key returns the canonical dedup/lookup form of word.
func (n *Normalizer) Key(word string) string {
	// cases.Caser carries transform state, so build one per call.
	return cases.Lower(n.tag).String(norm.NFC.String(word))
}

// NewCollator returns a case-insensitive collator for locale-aware
// lexicographic tie-breaks. Collators are not goroutine-safe; callers
// construct one per ranking pass.
func NewCollator(langTag string) *collate.Collator {
	tag, err := language.Parse(langTag)
	if err != nil {
		tag = language.Und
	}
	return collate.New(tag, collate.IgnoreCase)
}

// IsWordRune reports whether r belongs to the word class used by the
// segmenter fallback: letters, combining marks, apostrophe and hyphen.
func IsWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsMark(r) || r == '\'' || r == '-'
}

// IsLatinWord reports whether every letter in word is Latin script.
// Used to decide fallback-language compatibility for remote lookups.
func IsLatinWord(word string) bool {
	hasLetter := false
	for _, r := range word {
		if !unicode.IsLetter(r) {
			continue
		}
		hasLetter = true
		if !unicode.Is(unicode.Latin, r) {
			return false
		}
	}
	return hasLetter
}
