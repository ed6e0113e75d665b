/*
Package resource fetches and memoizes per-language lexical resources:
dictionary packs, suggestion indexes and spell-checkers.

Each (resource kind, base language) pair gets exactly one load for the
process lifetime. Concurrent requesters for the same key share a single
in-flight fetch, and failures memoize as "unavailable" rather than
propagating: missing dictionary or spelling data is an expected degraded
mode, not an error. The cache is append-only and never evicted; it is
bounded by the number of supported languages.
*/
package resource

import (
	"context"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/GendByteMaster/lexiserve/pkg/dictionary"
	"github.com/GendByteMaster/lexiserve/pkg/langres"
	"github.com/GendByteMaster/lexiserve/pkg/spell"
	"github.com/GendByteMaster/lexiserve/pkg/suggest"
)

type resourceKind int

const (
	kindPack resourceKind = iota
	kindIndex
	kindSpell
)

type slotKey struct {
	kind resourceKind
	lang string
}

// slot is a once-computed result cell. done closes when the value is
// final; val/ok are written exactly once before that.
type slot struct {
	done chan struct{}
	val  any
	ok   bool
}

// Loader memoizes resource loads per (kind, base language) key. Pass an
// explicit Loader rather than sharing globals so tests can construct
// isolated instances.
type Loader struct {
	fetcher Fetcher

	mu    sync.Mutex
	slots map[slotKey]*slot
}

// NewLoader creates a loader over the given fetch capability.
func NewLoader(fetcher Fetcher) *Loader {
	return &Loader{
		fetcher: fetcher,
		slots:   make(map[slotKey]*slot),
	}
}

// Pack resolves the dictionary pack for a language tag. The second
// return is false when the language is unsupported or the pack could
// not be fetched or parsed.
func (l *Loader) Pack(ctx context.Context, tag string) (*dictionary.Pack, bool) {
	v, ok := l.load(ctx, kindPack, tag, l.fillPack)
	if !ok {
		return nil, false
	}
	return v.(*dictionary.Pack), true
}

// Index resolves the suggestion index for a language tag, building it
// from the language's pack word list on first use.
func (l *Loader) Index(ctx context.Context, tag string) (*suggest.Index, bool) {
	v, ok := l.load(ctx, kindIndex, tag, l.fillIndex)
	if !ok {
		return nil, false
	}
	return v.(*suggest.Index), true
}

// Spell resolves the spell-checker for a language tag from its
// affix/dictionary data.
func (l *Loader) Spell(ctx context.Context, tag string) (*spell.Checker, bool) {
	v, ok := l.load(ctx, kindSpell, tag, l.fillSpell)
	if !ok {
		return nil, false
	}
	return v.(*spell.Checker), true
}

// TryPack is the non-blocking variant of Pack: it kicks off the load on
// first call but reports false until the slot has settled. Suggestion
// ranking uses these so a keystroke never waits on the network.
func (l *Loader) TryPack(tag string) (*dictionary.Pack, bool) {
	v, ok := l.peek(kindPack, tag, l.fillPack)
	if !ok {
		return nil, false
	}
	return v.(*dictionary.Pack), true
}

// TryIndex is the non-blocking variant of Index.
func (l *Loader) TryIndex(tag string) (*suggest.Index, bool) {
	v, ok := l.peek(kindIndex, tag, l.fillIndex)
	if !ok {
		return nil, false
	}
	return v.(*suggest.Index), true
}

// TrySpell is the non-blocking variant of Spell.
func (l *Loader) TrySpell(tag string) (*spell.Checker, bool) {
	v, ok := l.peek(kindSpell, tag, l.fillSpell)
	if !ok {
		return nil, false
	}
	return v.(*spell.Checker), true
}

// load returns the memoized slot for (kind, base code), creating and
// filling it on first request. Fill work runs detached from the
// requester's context: a caller abandoning its wait must not poison the
// shared slot for later requesters.
func (l *Loader) load(ctx context.Context, kind resourceKind, tag string,
	fill func(base string) (any, bool)) (any, bool) {

	base := langres.BaseCode(tag)
	if base == "" {
		return nil, false
	}
	key := slotKey{kind: kind, lang: base}

	l.mu.Lock()
	s, exists := l.slots[key]
	if !exists {
		s = &slot{done: make(chan struct{})}
		l.slots[key] = s
		go func() {
			s.val, s.ok = fill(base)
			close(s.done)
		}()
	}
	l.mu.Unlock()

	select {
	case <-s.done:
		return s.val, s.ok
	case <-ctx.Done():
		return nil, false
	}
}

// peek mirrors load without blocking: absent slots are created and
// filled in the background, pending slots read as unavailable.
func (l *Loader) peek(kind resourceKind, tag string, fill func(base string) (any, bool)) (any, bool) {
	base := langres.BaseCode(tag)
	if base == "" {
		return nil, false
	}
	key := slotKey{kind: kind, lang: base}

	l.mu.Lock()
	s, exists := l.slots[key]
	if !exists {
		s = &slot{done: make(chan struct{})}
		l.slots[key] = s
		go func() {
			s.val, s.ok = fill(base)
			close(s.done)
		}()
	}
	l.mu.Unlock()

	select {
	case <-s.done:
		return s.val, s.ok
	default:
		return nil, false
	}
}

func (l *Loader) fillPack(base string) (any, bool) {
	res, ok := langres.Lookup(base)
	if !ok || res.PackURL == "" {
		log.Debugf("No dictionary pack configured for %q", base)
		return nil, false
	}
	body, err := l.fetcher.Fetch(context.Background(), res.PackURL)
	if err != nil {
		log.Warnf("Fetching %s pack failed: %v", base, err)
		return nil, false
	}
	pack, err := dictionary.ParsePack(body)
	if err != nil {
		log.Warnf("Parsing %s pack failed: %v", base, err)
		return nil, false
	}
	log.Debugf("Loaded %s pack: %d entries", base, len(pack.Entries))
	return pack, true
}

func (l *Loader) fillIndex(base string) (any, bool) {
	pack, ok := l.Pack(context.Background(), base)
	if !ok {
		return nil, false
	}
	words := pack.WordList()
	if len(words) == 0 {
		return nil, false
	}
	idx := suggest.NewIndex(words, base)
	log.Debugf("Built %s suggestion index: %d words", base, idx.Len())
	return idx, true
}

func (l *Loader) fillSpell(base string) (any, bool) {
	res, ok := langres.Lookup(base)
	if !ok || res.AffURL == "" || res.DicURL == "" {
		log.Debugf("No spell data configured for %q", base)
		return nil, false
	}
	aff, err := l.fetcher.Fetch(context.Background(), res.AffURL)
	if err != nil {
		log.Warnf("Fetching %s affix data failed: %v", base, err)
		return nil, false
	}
	dic, err := l.fetcher.Fetch(context.Background(), res.DicURL)
	if err != nil {
		log.Warnf("Fetching %s dictionary data failed: %v", base, err)
		return nil, false
	}
	checker, err := spell.NewFromDic(aff, dic, res.Alphabet)
	if err != nil {
		log.Warnf("Building %s spell checker failed: %v", base, err)
		return nil, false
	}
	return checker, true
}
