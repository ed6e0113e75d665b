/*
Package spell wraps a per-language spell-checking capability built from
hunspell-style affix/dictionary data. The affix file is consumed as an
opaque input; the word list is taken from the .dic file and fed into a
bloom-filter spellchecker for membership tests and edit-distance
suggestions.
*/
package spell

import (
	"strings"

	"github.com/charmbracelet/log"
	"github.com/f1monkey/spellchecker"
)

// suggestionPool is how many raw candidates we pull from the checker
// before the ranking engine trims to its own limit.
const suggestionPool = 8

// Checker answers "is this word spelled correctly" and proposes
// corrections for words that are not.
type Checker struct {
	sc *spellchecker.Spellchecker
}

// NewFromDic builds a checker for one language from a hunspell-style
// affix/dictionary pair. aff is accepted for interface completeness but
// not interpreted; dic supplies the word list.
func NewFromDic(aff, dic []byte, alphabet string) (*Checker, error) {
	sc, err := spellchecker.New(alphabet, spellchecker.WithMaxErrors(2))
	if err != nil {
		return nil, err
	}
	_ = aff

	allowed := make(map[rune]bool, len(alphabet))
	for _, r := range alphabet {
		allowed[r] = true
	}

	added := 0
	for _, line := range strings.Split(string(dic), "\n") {
		word := parseDicLine(line)
		if word == "" {
			continue
		}
		word = strings.ToLower(word)
		if !runesAllowed(word, allowed) {
			continue
		}
		sc.Add(word)
		added++
	}
	log.Debugf("Spell checker loaded %d words", added)
	return &Checker{sc: sc}, nil
}

// NewFromWords builds a checker directly from a word list, used by tests
// and by callers that already hold a vocabulary.
func NewFromWords(words []string, alphabet string) (*Checker, error) {
	sc, err := spellchecker.New(alphabet, spellchecker.WithMaxErrors(2))
	if err != nil {
		return nil, err
	}
	for _, w := range words {
		sc.Add(strings.ToLower(w))
	}
	return &Checker{sc: sc}, nil
}

// Check reports whether word is known to the dictionary.
// Unknown-case inputs are folded before the membership test.
func (c *Checker) Check(word string) bool {
	return c.sc.IsCorrect(strings.ToLower(word))
}

// Suggest returns correction candidates for a misspelled word, best
// first. Errors from the underlying checker degrade to no suggestions.
func (c *Checker) Suggest(word string) []string {
	out, err := c.sc.Suggest(strings.ToLower(word), suggestionPool)
	if err != nil {
		log.Debugf("Spell suggest for %q failed: %v", word, err)
		return nil
	}
	return out
}

// parseDicLine extracts the word from one .dic line: the optional count
// header, comments and affix flags after '/' are all dropped.
func parseDicLine(line string) string {
	line = strings.TrimSpace(line)
	if line == "" || line[0] == '#' {
		return ""
	}
	// Header line: bare word count.
	if strings.IndexFunc(line, func(r rune) bool { return r < '0' || r > '9' }) == -1 {
		return ""
	}
	if i := strings.IndexByte(line, '/'); i >= 0 {
		line = line[:i]
	}
	// Morphological fields after a tab.
	if i := strings.IndexByte(line, '\t'); i >= 0 {
		line = line[:i]
	}
	return strings.TrimSpace(line)
}

func runesAllowed(word string, allowed map[rune]bool) bool {
	for _, r := range word {
		if !allowed[r] {
			return false
		}
	}
	return word != ""
}
