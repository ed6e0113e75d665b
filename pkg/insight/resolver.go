package insight

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/log"

	"github.com/GendByteMaster/lexiserve/internal/textutil"
	"github.com/GendByteMaster/lexiserve/pkg/dictionary"
	"github.com/GendByteMaster/lexiserve/pkg/langres"
	"github.com/GendByteMaster/lexiserve/pkg/resource"
	"github.com/GendByteMaster/lexiserve/pkg/segment"
)

// Enrichment target limits.
const (
	DefaultExampleLimit = 3
	DefaultRelatedLimit = 8
)

type memoKey struct {
	lang string
	word string
}

// Resolver resolves insight records. One Resolver serves one logical
// request stream: each Resolve call supersedes the previous one, and
// commits for superseded generations are dropped.
type Resolver struct {
	loader *resource.Loader
	dict   *DictClient
	assoc  *AssocClient
	seg    segment.Segmenter

	bareEntryAsMissing bool
	exampleLimit       int
	relatedLimit       int

	gen atomic.Uint64
	mu  sync.Mutex // serializes state commits and callbacks

	memoMu sync.Mutex
	memo   map[memoKey]dictionary.Entry
}

// Option adjusts resolver policy.
type Option func(*Resolver)

// WithBarePackEntryAsMissing makes a pack entry without definitions
// count as "no entry" instead of a degraded Ready record.
func WithBarePackEntryAsMissing(v bool) Option {
	return func(r *Resolver) { r.bareEntryAsMissing = v }
}

// WithLimits overrides the example/related enrichment targets.
func WithLimits(examples, related int) Option {
	return func(r *Resolver) {
		if examples > 0 {
			r.exampleLimit = examples
		}
		if related > 0 {
			r.relatedLimit = related
		}
	}
}

// WithClients injects custom remote clients, mainly for tests.
func WithClients(dict *DictClient, assoc *AssocClient) Option {
	return func(r *Resolver) {
		r.dict = dict
		r.assoc = assoc
	}
}

// NewResolver wires a resolver over the resource loader and the injected
// fetch capability.
func NewResolver(loader *resource.Loader, fetcher resource.Fetcher, opts ...Option) *Resolver {
	r := &Resolver{
		loader:       loader,
		dict:         NewDictClient(fetcher, ""),
		assoc:        NewAssocClient(fetcher, "", ""),
		seg:          segment.New(),
		exampleLimit: DefaultExampleLimit,
		relatedLimit: DefaultRelatedLimit,
		memo:         make(map[memoKey]dictionary.Entry),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve starts an asynchronous resolution for (word, langTag) and
// reports state transitions through fn. A later Resolve call cancels
// this one logically: its remaining transitions are never delivered.
func (r *Resolver) Resolve(ctx context.Context, word, langTag, fullText string, fn func(Record)) {
	gen := r.gen.Add(1)

	resolved := resolveLanguage(langTag)
	norm := textutil.NewNormalizer(resolved)
	focusKey := norm.Key(word)

	state := Record{
		Status:   StatusLoading,
		Word:     word,
		Language: resolved,
		Examples: Section{Status: StatusLoading},
		Related:  Section{Status: StatusLoading},
	}

	// commit applies a mutation and delivers a snapshot, unless this
	// resolution has been superseded.
	commit := func(mutate func(*Record)) bool {
		r.mu.Lock()
		defer r.mu.Unlock()
		if gen != r.gen.Load() {
			return false
		}
		mutate(&state)
		fn(cloneRecord(state))
		return true
	}

	commit(func(*Record) {})

	go func() {
		r.resolvePrimary(ctx, commit, resolved, word, focusKey)

		var entrySnapshot *dictionary.Entry
		r.mu.Lock()
		if gen == r.gen.Load() && state.Entry != nil {
			e := *state.Entry
			entrySnapshot = &e
		}
		r.mu.Unlock()

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			r.enrichExamples(ctx, commit, entrySnapshot, fullText, word, focusKey, resolved, norm)
		}()
		go func() {
			defer wg.Done()
			r.enrichRelated(ctx, commit, entrySnapshot, fullText, word, focusKey, resolved, norm)
		}()
		wg.Wait()
	}()
}

// ResolveSync runs Resolve and blocks until the record and both
// enrichment sections settle, or ctx is done. Used by the IPC server
// and by callers without a subscription surface.
func (r *Resolver) ResolveSync(ctx context.Context, word, langTag, fullText string) Record {
	updates := make(chan Record, 16)
	r.Resolve(ctx, word, langTag, fullText, func(rec Record) {
		select {
		case updates <- rec:
		default:
		}
	})
	var last Record
	for {
		select {
		case rec := <-updates:
			last = rec
			if settled(rec) {
				return rec
			}
		case <-ctx.Done():
			return last
		}
	}
}

func settled(rec Record) bool {
	primary := rec.Status == StatusReady || rec.Status == StatusError
	ex := rec.Examples.Status != StatusLoading && rec.Examples.Status != StatusIdle
	rel := rec.Related.Status != StatusLoading && rec.Related.Status != StatusIdle
	return primary && ex && rel
}

// resolvePrimary walks the resolution chain: local pack, memo cache,
// remote lookup, fallback-language remote lookup, then the final policy
// step choosing between Error and degraded Ready.
func (r *Resolver) resolvePrimary(ctx context.Context, commit func(func(*Record)) bool,
	resolved, word, focusKey string) {

	var packEntry *dictionary.Entry
	if pack, ok := r.loader.Pack(ctx, resolved); ok {
		if e, found := pack.Lookup(focusKey); found {
			if !(r.bareEntryAsMissing && len(e.Definitions) == 0) {
				entry := e
				packEntry = &entry
				commit(func(rec *Record) {
					rec.Status = StatusReady
					rec.Entry = cloneEntry(entry)
				})
			}
		}
	}
	// A pack entry with definitions is authoritative; one without
	// definitions keeps the record Ready but still tries remote
	// augmentation.
	if packEntry != nil && len(packEntry.Definitions) > 0 {
		return
	}

	if cached, ok := r.memoGet(resolved, focusKey); ok {
		commit(func(rec *Record) {
			rec.Status = StatusReady
			rec.Entry = cloneEntry(mergeEntries(packEntry, cached))
		})
		return
	}

	remote, err := r.dict.Lookup(ctx, resolved, focusKey)
	if err == nil {
		r.memoPut(resolved, focusKey, remote)
		commit(func(rec *Record) {
			rec.Status = StatusReady
			rec.Entry = cloneEntry(mergeEntries(packEntry, remote))
		})
		return
	}
	log.Debugf("Remote lookup %s/%q failed: %v", resolved, word, err)

	if resolved != langres.Fallback && textutil.IsLatinWord(word) {
		fbEntry, fbErr := r.dict.Lookup(ctx, langres.Fallback, focusKey)
		if fbErr == nil {
			r.memoPut(resolved, focusKey, fbEntry)
			commit(func(rec *Record) {
				rec.Status = StatusReady
				rec.Entry = cloneEntry(mergeEntries(packEntry, fbEntry))
				rec.Notice = &Notice{
					Kind:    NoticeFallback,
					Message: fmt.Sprintf("No %s entry found; showing %s instead", resolved, langres.Fallback),
				}
			})
			return
		}
		log.Debugf("Fallback lookup for %q failed: %v", word, fbErr)
	}

	if packEntry != nil {
		// Keep the pack-only record, flag the missing definitions.
		commit(func(rec *Record) {
			rec.Notice = &Notice{
				Kind:    NoticeUnavailable,
				Message: fmt.Sprintf("No definition available for %q", word),
			}
		})
		return
	}
	commit(func(rec *Record) {
		rec.Status = StatusError
		rec.Notice = &Notice{
			Kind:    NoticeUnavailable,
			Message: fmt.Sprintf("No entry found for %q", word),
		}
	})
}

// enrichExamples assembles the example list: pack/remote entry examples
// first, then document sentences containing the word, then at most one
// supplementary association request when still under the target.
func (r *Resolver) enrichExamples(ctx context.Context, commit func(func(*Record)) bool,
	entry *dictionary.Entry, fullText, word, focusKey, resolved string, norm *textutil.Normalizer) {

	var seeds []string
	if entry != nil {
		seeds = append(seeds, entry.Examples...)
	}
	seeds = append(seeds, mineExamples(fullText, focusKey, r.seg, norm)...)
	items := dedupCapped(seeds, norm, r.exampleLimit)

	if len(items) < r.exampleLimit && resolved == langres.Fallback && textutil.IsLatinWord(word) {
		sup, err := r.assoc.Examples(ctx, focusKey, r.exampleLimit)
		if err != nil {
			// Transient by contract; the assembled list stands.
			log.Debugf("Supplementary examples for %q failed: %v", word, err)
		} else {
			items = dedupCapped(append(items, sup...), norm, r.exampleLimit)
		}
	}

	commit(func(rec *Record) {
		rec.Examples = sectionFor(items)
	})
}

// enrichRelated mirrors enrichExamples for related words, seeding from
// the entry's related list and the document's frequency ranking.
func (r *Resolver) enrichRelated(ctx context.Context, commit func(func(*Record)) bool,
	entry *dictionary.Entry, fullText, word, focusKey, resolved string, norm *textutil.Normalizer) {

	var seeds []string
	if entry != nil {
		seeds = append(seeds, entry.Related...)
	}
	seeds = append(seeds, mineRelated(fullText, focusKey, resolved, r.seg, norm)...)
	items := dedupCapped(seeds, norm, r.relatedLimit)

	if len(items) < r.relatedLimit && resolved == langres.Fallback && textutil.IsLatinWord(word) {
		sup, err := r.assoc.Related(ctx, focusKey, r.relatedLimit)
		if err != nil {
			log.Debugf("Supplementary related words for %q failed: %v", word, err)
		} else {
			items = dedupCapped(append(items, sup...), norm, r.relatedLimit)
		}
	}

	commit(func(rec *Record) {
		rec.Related = sectionFor(items)
	})
}

func sectionFor(items []string) Section {
	if len(items) == 0 {
		return Section{Status: StatusEmpty}
	}
	return Section{Status: StatusReady, Items: items}
}

// resolveLanguage normalizes the requested tag and maps it onto the
// supported table when possible: a supported base code replaces any
// regional variant. Unsupported tags keep their normalized full form so
// remote lookups can still degrade gracefully; an absent tag means the
// fallback language.
func resolveLanguage(langTag string) string {
	tag := langres.NormalizeTag(langTag)
	if tag == "" {
		return langres.Fallback
	}
	if base := langres.BaseCode(tag); langres.Supported(base) {
		return base
	}
	return tag
}

func (r *Resolver) memoGet(lang, word string) (dictionary.Entry, bool) {
	r.memoMu.Lock()
	defer r.memoMu.Unlock()
	e, ok := r.memo[memoKey{lang: lang, word: word}]
	return e, ok
}

func (r *Resolver) memoPut(lang, word string, e dictionary.Entry) {
	r.memoMu.Lock()
	defer r.memoMu.Unlock()
	key := memoKey{lang: lang, word: word}
	if _, exists := r.memo[key]; !exists {
		r.memo[key] = e
	}
}

// mergeEntries overlays a remote entry onto an optional pack entry:
// remote definitions win, examples and related lists are unioned under
// the pack caps.
func mergeEntries(pack *dictionary.Entry, remote dictionary.Entry) dictionary.Entry {
	if pack == nil {
		return remote
	}
	out := *pack
	if len(remote.Definitions) > 0 {
		out.Definitions = remote.Definitions
	}
	if out.PartOfSpeech == "" {
		out.PartOfSpeech = remote.PartOfSpeech
	}
	for _, ex := range remote.Examples {
		out.Examples = appendBounded(out.Examples, ex, dictionary.MaxExamples)
	}
	for _, rel := range remote.Related {
		out.Related = appendBounded(out.Related, rel, dictionary.MaxRelated)
	}
	return out
}

func cloneEntry(e dictionary.Entry) *dictionary.Entry {
	out := e
	out.Definitions = append([]string(nil), e.Definitions...)
	out.Examples = append([]string(nil), e.Examples...)
	out.Related = append([]string(nil), e.Related...)
	return &out
}

func cloneRecord(rec Record) Record {
	out := rec
	if rec.Entry != nil {
		out.Entry = cloneEntry(*rec.Entry)
	}
	if rec.Notice != nil {
		n := *rec.Notice
		out.Notice = &n
	}
	out.Examples.Items = append([]string(nil), rec.Examples.Items...)
	out.Related.Items = append([]string(nil), rec.Related.Items...)
	return out
}

// dedupCapped removes duplicates by normalized form, preserving first
// occurrence, and caps the result.
func dedupCapped(items []string, norm *textutil.Normalizer, max int) []string {
	seen := make(map[string]bool, len(items))
	var out []string
	for _, it := range items {
		if it == "" {
			continue
		}
		key := norm.Key(it)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, it)
		if len(out) >= max {
			break
		}
	}
	return out
}
