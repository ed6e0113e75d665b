package insight

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cannedFetcher returns one fixed body or error for every URL and
// remembers the last URL requested.
type cannedFetcher struct {
	body    string
	err     error
	lastURL string
}

func (f *cannedFetcher) Fetch(_ context.Context, url string) ([]byte, error) {
	f.lastURL = url
	if f.err != nil {
		return nil, f.err
	}
	return []byte(f.body), nil
}

func TestDictClient_LookupFlattensMeanings(t *testing.T) {
	fetcher := &cannedFetcher{body: `[{
		"word": "run",
		"meanings": [
			{
				"partOfSpeech": "verb",
				"definitions": [
					{"definition": "to move fast", "example": "she runs daily", "synonyms": ["sprint"]},
					{"definition": "to operate", "example": ""}
				],
				"synonyms": ["dash"],
				"antonyms": ["walk"]
			},
			{
				"partOfSpeech": "noun",
				"definitions": [{"definition": "a jog"}]
			}
		]
	}]`}
	client := NewDictClient(fetcher, "https://dict.test/entries")

	entry, err := client.Lookup(context.Background(), "en", "run")

	require.NoError(t, err)
	assert.Equal(t, "https://dict.test/entries/en/run", fetcher.lastURL)
	assert.Equal(t, "run", entry.Word)
	assert.Equal(t, "verb", entry.PartOfSpeech, "first meaning wins the part of speech")
	assert.Equal(t, []string{"to move fast", "to operate", "a jog"}, entry.Definitions)
	assert.Equal(t, []string{"she runs daily"}, entry.Examples)
	assert.Equal(t, []string{"sprint", "dash", "walk"}, entry.Related)
}

func TestDictClient_LookupErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		err  error
	}{
		{name: "fetch failure", err: errors.New("boom")},
		{name: "not json", body: `<html>404</html>`},
		{name: "empty array", body: `[]`},
		{name: "no definitions", body: `[{"word": "x", "meanings": []}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := NewDictClient(&cannedFetcher{body: tt.body, err: tt.err}, "https://dict.test")
			_, err := client.Lookup(context.Background(), "en", "x")
			assert.Error(t, err)
		})
	}
}

func TestAssocClient_RelatedAndExamples(t *testing.T) {
	fetcher := &cannedFetcher{body: `[
		{"word": "quick"},
		{"word": "fast"},
		{"text": "a swift reply"},
		{}
	]`}
	client := NewAssocClient(fetcher, "https://assoc.test/words?ml=%s&max=%d", "https://assoc.test/sentences?word=%s&max=%d")

	related, err := client.Related(context.Background(), "swift", 5)
	require.NoError(t, err)
	assert.Equal(t, "https://assoc.test/words?ml=swift&max=5", fetcher.lastURL)
	assert.Equal(t, []string{"quick", "fast", "a swift reply"}, related)

	_, err = client.Examples(context.Background(), "swift", 2)
	require.NoError(t, err)
	assert.Equal(t, "https://assoc.test/sentences?word=swift&max=2", fetcher.lastURL)
}
