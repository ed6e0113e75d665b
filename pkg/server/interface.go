/*
Package server implements msgpack IPC for the typing-assist engine.

The server provides a minimal request/response interface over
stdin/stdout using binary msgpack encoding. Clients send one message per
operation; every message carries an ID echoed back on the response.

Suggestion requests carry the text snapshot, the caret and a language
tag:

	{"id": "req_001", "op": "suggest", "t": "the quick fo", "sel": [12, 12], "lang": "en"}

The server answers with the ranked merge of spell corrections,
dictionary completions and in-document words:

	{"id": "req_001", "s": ["fox", "focus", "form"], "c": 3, "ms": 2}

Apply requests commit an accepted suggestion and return the new text
plus the caret position after the inserted word. Insight requests
resolve a focused word into definitions, examples and related words,
blocking until the record settles; degraded outcomes arrive as notice
strings, never as errors.
*/
package server

// Request is the envelope for every incoming message. Op selects the
// operation: "suggest", "apply", "insight" or "health".
type Request struct {
	ID         string `msgpack:"id"`
	Op         string `msgpack:"op"`
	Text       string `msgpack:"t,omitempty"`
	Selection  []int  `msgpack:"sel,omitempty"`
	Lang       string `msgpack:"lang,omitempty"`
	Word       string `msgpack:"w,omitempty"`
	Suggestion string `msgpack:"s,omitempty"`
	Limit      int    `msgpack:"l,omitempty"`
}

// SuggestResponse carries the ranked suggestion list.
type SuggestResponse struct {
	ID          string   `msgpack:"id"`
	Suggestions []string `msgpack:"s"`
	Count       int      `msgpack:"c"`
	TimeTaken   int64    `msgpack:"ms"`
}

// ApplyResponse carries the mutated text and the new caret.
type ApplyResponse struct {
	ID    string `msgpack:"id"`
	Text  string `msgpack:"t"`
	Caret int    `msgpack:"c"`
}

// InsightResponse flattens a resolved insight record for the wire.
type InsightResponse struct {
	ID             string   `msgpack:"id"`
	Status         string   `msgpack:"status"`
	Word           string   `msgpack:"w"`
	Language       string   `msgpack:"lang"`
	PartOfSpeech   string   `msgpack:"pos,omitempty"`
	Definitions    []string `msgpack:"defs,omitempty"`
	Examples       []string `msgpack:"ex,omitempty"`
	ExamplesStatus string   `msgpack:"ex_status"`
	Related        []string `msgpack:"rel,omitempty"`
	RelatedStatus  string   `msgpack:"rel_status"`
	Notice         string   `msgpack:"notice,omitempty"`
	NoticeKind     string   `msgpack:"notice_kind,omitempty"`
	TimeTaken      int64    `msgpack:"ms"`
}

// HealthResponse signals readiness.
type HealthResponse struct {
	ID     string `msgpack:"id"`
	Status string `msgpack:"status"`
}

// ErrorResponse holds basic error information for failed requests.
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
