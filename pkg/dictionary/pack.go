/*
Package dictionary models the bundled dictionary pack: a versioned JSON
document carrying a ranked word list plus per-word lexical entries. Packs
are produced offline (see cmd/packgen) from raw lexical dumps and are
immutable once parsed.
*/
package dictionary

import (
	"encoding/json"
	"fmt"

	"github.com/GendByteMaster/lexiserve/internal/textutil"
)

// Per-entry caps applied both when building and when parsing a pack.
const (
	MaxDefinitions = 6
	MaxExamples    = 6
	MaxRelated     = 12
)

// Entry holds the lexical record for one word.
type Entry struct {
	Word         string   `json:"word"`
	Definitions  []string `json:"definitions,omitempty"`
	Examples     []string `json:"examples,omitempty"`
	Related      []string `json:"related,omitempty"`
	PartOfSpeech string   `json:"partOfSpeech,omitempty"`
}

// Pack is one language's dictionary pack.
type Pack struct {
	Version  int              `json:"version"`
	Language string           `json:"language"`
	Words    []string         `json:"words"`
	Entries  map[string]Entry `json:"entries"`
}

// CurrentVersion is the pack format this build reads and writes.
const CurrentVersion = 1

// ParsePack decodes and validates a pack document. Entry keys are
// re-normalized on load so lookups are stable regardless of how the pack
// was produced.
func ParsePack(data []byte) (*Pack, error) {
	var p Pack
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decoding pack: %w", err)
	}
	if p.Version <= 0 || p.Version > CurrentVersion {
		return nil, fmt.Errorf("unsupported pack version %d", p.Version)
	}
	if p.Language == "" {
		return nil, fmt.Errorf("pack has no language code")
	}
	norm := textutil.NewNormalizer(p.Language)
	entries := make(map[string]Entry, len(p.Entries))
	for key, e := range p.Entries {
		k := norm.Key(key)
		if e.Word == "" {
			e.Word = key
		}
		e.Definitions = capList(e.Definitions, MaxDefinitions)
		e.Examples = capList(e.Examples, MaxExamples)
		e.Related = capList(e.Related, MaxRelated)
		entries[k] = e
	}
	p.Entries = entries
	return &p, nil
}

// Lookup returns the entry for an already-normalized word key.
func (p *Pack) Lookup(normalizedWord string) (Entry, bool) {
	e, ok := p.Entries[normalizedWord]
	return e, ok
}

// WordList returns the pack's ordered word list, falling back to the
// entry keys when the list is empty. Suggestion indexes are built from
// this.
func (p *Pack) WordList() []string {
	if len(p.Words) > 0 {
		return p.Words
	}
	out := make([]string, 0, len(p.Entries))
	for key := range p.Entries {
		out = append(out, key)
	}
	return out
}

// Encode serializes the pack to its JSON wire form.
func (p *Pack) Encode() ([]byte, error) {
	return json.Marshal(p)
}

func capList(list []string, max int) []string {
	if len(list) > max {
		return list[:max]
	}
	return list
}
