package insight

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/GendByteMaster/lexiserve/pkg/dictionary"
	"github.com/GendByteMaster/lexiserve/pkg/resource"
)

// Default remote endpoints. Both clients go through the injected
// Fetcher, so these are only ever templates.
const (
	DefaultDictBaseURL = "https://api.dictionaryapi.dev/api/v2/entries"
	DefaultRelatedURL  = "https://api.datamuse.com/words?ml=%s&max=%d"
	DefaultExamplesURL = "https://api.datamuse.com/sentences?word=%s&max=%d"
)

// DictClient looks a word up against a remote dictionary API.
type DictClient struct {
	fetcher resource.Fetcher
	baseURL string
}

// NewDictClient creates a remote dictionary client. baseURL == ""
// selects the default endpoint.
func NewDictClient(fetcher resource.Fetcher, baseURL string) *DictClient {
	if baseURL == "" {
		baseURL = DefaultDictBaseURL
	}
	return &DictClient{fetcher: fetcher, baseURL: baseURL}
}

// remoteEntry mirrors the dictionaryapi.dev response shape.
type remoteEntry struct {
	Word     string `json:"word"`
	Meanings []struct {
		PartOfSpeech string `json:"partOfSpeech"`
		Definitions  []struct {
			Definition string   `json:"definition"`
			Example    string   `json:"example"`
			Synonyms   []string `json:"synonyms"`
			Antonyms   []string `json:"antonyms"`
		} `json:"definitions"`
		Synonyms []string `json:"synonyms"`
		Antonyms []string `json:"antonyms"`
	} `json:"meanings"`
}

// Lookup fetches and flattens the remote record for (lang, word) into a
// pack-shaped entry with the usual per-entry caps.
func (c *DictClient) Lookup(ctx context.Context, lang, word string) (dictionary.Entry, error) {
	u := fmt.Sprintf("%s/%s/%s", c.baseURL, url.PathEscape(lang), url.PathEscape(word))
	body, err := c.fetcher.Fetch(ctx, u)
	if err != nil {
		return dictionary.Entry{}, fmt.Errorf("remote lookup %s/%s: %w", lang, word, err)
	}
	var raw []remoteEntry
	if err := json.Unmarshal(body, &raw); err != nil {
		return dictionary.Entry{}, fmt.Errorf("decoding remote entry for %q: %w", word, err)
	}
	if len(raw) == 0 {
		return dictionary.Entry{}, fmt.Errorf("no remote entry for %q", word)
	}

	entry := dictionary.Entry{Word: raw[0].Word}
	if entry.Word == "" {
		entry.Word = word
	}
	for _, re := range raw {
		for _, m := range re.Meanings {
			if entry.PartOfSpeech == "" {
				entry.PartOfSpeech = m.PartOfSpeech
			}
			for _, d := range m.Definitions {
				entry.Definitions = appendBounded(entry.Definitions, d.Definition, dictionary.MaxDefinitions)
				entry.Examples = appendBounded(entry.Examples, d.Example, dictionary.MaxExamples)
				for _, s := range d.Synonyms {
					entry.Related = appendBounded(entry.Related, s, dictionary.MaxRelated)
				}
				for _, a := range d.Antonyms {
					entry.Related = appendBounded(entry.Related, a, dictionary.MaxRelated)
				}
			}
			for _, s := range m.Synonyms {
				entry.Related = appendBounded(entry.Related, s, dictionary.MaxRelated)
			}
			for _, a := range m.Antonyms {
				entry.Related = appendBounded(entry.Related, a, dictionary.MaxRelated)
			}
		}
	}
	if len(entry.Definitions) == 0 {
		return dictionary.Entry{}, fmt.Errorf("remote entry for %q has no definitions", word)
	}
	return entry, nil
}

// AssocClient queries word-association services for supplementary
// related words and example sentences. All of its failures are
// transient by contract and swallowed by the caller.
type AssocClient struct {
	fetcher     resource.Fetcher
	relatedURL  string
	examplesURL string
}

// NewAssocClient creates an association client; empty templates select
// the defaults.
func NewAssocClient(fetcher resource.Fetcher, relatedURL, examplesURL string) *AssocClient {
	if relatedURL == "" {
		relatedURL = DefaultRelatedURL
	}
	if examplesURL == "" {
		examplesURL = DefaultExamplesURL
	}
	return &AssocClient{fetcher: fetcher, relatedURL: relatedURL, examplesURL: examplesURL}
}

// assocItem is the datamuse-style response element.
type assocItem struct {
	Word string `json:"word"`
	Text string `json:"text"`
}

// Related returns up to max associated words for word.
func (c *AssocClient) Related(ctx context.Context, word string, max int) ([]string, error) {
	return c.query(ctx, fmt.Sprintf(c.relatedURL, url.QueryEscape(word), max))
}

// Examples returns up to max example sentences for word.
func (c *AssocClient) Examples(ctx context.Context, word string, max int) ([]string, error) {
	return c.query(ctx, fmt.Sprintf(c.examplesURL, url.QueryEscape(word), max))
}

func (c *AssocClient) query(ctx context.Context, u string) ([]string, error) {
	body, err := c.fetcher.Fetch(ctx, u)
	if err != nil {
		return nil, err
	}
	var items []assocItem
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, fmt.Errorf("decoding association response: %w", err)
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		if it.Word != "" {
			out = append(out, it.Word)
		} else if it.Text != "" {
			out = append(out, it.Text)
		}
	}
	return out, nil
}

func appendBounded(dst []string, s string, max int) []string {
	if s == "" || len(dst) >= max {
		return dst
	}
	for _, have := range dst {
		if have == s {
			return dst
		}
	}
	return append(dst, s)
}
