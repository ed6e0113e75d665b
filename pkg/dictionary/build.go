package dictionary

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/GendByteMaster/lexiserve/internal/textutil"
)

// dumpRecord is one line of a raw lexical dump: line-delimited JSON in
// the wiktextract layout, one record per word sense group.
type dumpRecord struct {
	Word     string      `json:"word"`
	LangCode string      `json:"lang_code"`
	Pos      string      `json:"pos"`
	Senses   []dumpSense `json:"senses"`
}

type dumpSense struct {
	Glosses   []string `json:"glosses"`
	Examples  []string `json:"examples"`
	Synonyms  []string `json:"synonyms"`
	Antonyms  []string `json:"antonyms"`
	Hypernyms []string `json:"hypernyms"`
	Hyponyms  []string `json:"hyponyms"`
}

// BuildPack reads a raw lexical dump and assembles a pack for one
// language. Records for other languages are skipped; malformed lines are
// logged and skipped rather than aborting the whole build. Definitions,
// examples and related words are capped per entry and entries are
// deduplicated by normalized word key, first record winning the display
// form.
func BuildPack(r io.Reader, langCode string) (*Pack, error) {
	norm := textutil.NewNormalizer(langCode)
	pack := &Pack{
		Version:  CurrentVersion,
		Language: langCode,
		Entries:  make(map[string]Entry),
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var rec dumpRecord
		if err := json.Unmarshal(line, &rec); err != nil {
			log.Warnf("Skipping malformed dump line %d: %v", lineNo, err)
			continue
		}
		if rec.LangCode != langCode || rec.Word == "" {
			continue
		}
		key := norm.Key(rec.Word)
		entry, seen := pack.Entries[key]
		if !seen {
			entry = Entry{Word: rec.Word, PartOfSpeech: rec.Pos}
			pack.Words = append(pack.Words, rec.Word)
		}
		for _, sense := range rec.Senses {
			entry.Definitions = appendCapped(entry.Definitions, sense.Glosses, MaxDefinitions)
			entry.Examples = appendCapped(entry.Examples, sense.Examples, MaxExamples)
			related := make([]string, 0,
				len(sense.Synonyms)+len(sense.Antonyms)+len(sense.Hypernyms)+len(sense.Hyponyms))
			related = append(related, sense.Synonyms...)
			related = append(related, sense.Antonyms...)
			related = append(related, sense.Hypernyms...)
			related = append(related, sense.Hyponyms...)
			entry.Related = appendCapped(entry.Related, related, MaxRelated)
		}
		pack.Entries[key] = entry
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading dump: %w", err)
	}
	log.Debugf("Built %s pack: %d entries from %d lines", langCode, len(pack.Entries), lineNo)
	return pack, nil
}

// appendCapped appends items up to the cap, dropping duplicates and
// empty strings.
func appendCapped(dst, src []string, max int) []string {
	for _, s := range src {
		if len(dst) >= max {
			break
		}
		if s == "" {
			continue
		}
		dup := false
		for _, have := range dst {
			if have == s {
				dup = true
				break
			}
		}
		if !dup {
			dst = append(dst, s)
		}
	}
	return dst
}
