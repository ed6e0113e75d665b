/*
Package insight resolves rich lexical information for a focused word:
definition and part of speech, example sentences and related words. The
resolver blends the bundled dictionary pack with best-effort remote
lookups, falls back to English when the requested language yields
nothing and the word's script allows it, and mines the surrounding
document for examples and related words.

Every resolution is keyed by (word, language). Starting a new resolution
supersedes the previous one: results arriving for a stale key are
dropped, never committed.
*/
package insight

import "github.com/GendByteMaster/lexiserve/pkg/dictionary"

// Status is the lifecycle of a resolution or enrichment section.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusReady
	StatusError
	// StatusEmpty marks an enrichment section that finished with no
	// items from any source.
	StatusEmpty
)

// String returns the lowercase status name used in IPC responses.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	case StatusError:
		return "error"
	case StatusEmpty:
		return "empty"
	}
	return "unknown"
}

// NoticeKind distinguishes the two user-visible degradations.
type NoticeKind int

const (
	// NoticeUnavailable: no lexical data could be fetched for the word;
	// whatever the local pack had (possibly nothing beyond the word
	// itself) is being shown.
	NoticeUnavailable NoticeKind = iota
	// NoticeFallback: the displayed entry comes from the fallback
	// language because the requested language failed.
	NoticeFallback
)

// Notice is an explanatory message attached to a degraded record.
type Notice struct {
	Kind    NoticeKind
	Message string
}

// Section is one enrichment stream (examples or related words) with its
// own independent status.
type Section struct {
	Status Status
	Items  []string
}

// Record is the resolved insight state for one (word, language) key.
type Record struct {
	Status   Status
	Word     string
	Language string
	Entry    *dictionary.Entry
	Notice   *Notice
	Examples Section
	Related  Section
}
