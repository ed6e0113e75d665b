/*
Package assist is the facade the UI shell talks to. It wires the word
segmenter, the resource loader, the suggestion ranking engine and the
insight resolver behind three operations: compute suggestions for the
caret, apply an accepted suggestion, and resolve insights for a focused
word.

The shell supplies the raw text, the caret/selection and a language tag
on every call; the engine owns all caches.
*/
package assist

import (
	"context"

	"github.com/GendByteMaster/lexiserve/internal/textutil"
	"github.com/GendByteMaster/lexiserve/pkg/config"
	"github.com/GendByteMaster/lexiserve/pkg/insight"
	"github.com/GendByteMaster/lexiserve/pkg/resource"
	"github.com/GendByteMaster/lexiserve/pkg/segment"
	"github.com/GendByteMaster/lexiserve/pkg/suggest"
)

// Engine bundles the typing-assist subsystems behind one handle.
type Engine struct {
	cfg      *config.Config
	loader   *resource.Loader
	seg      segment.Segmenter
	resolver *insight.Resolver
}

// New creates an engine over the injected fetch capability. cfg == nil
// selects the defaults.
func New(cfg *config.Config, fetcher resource.Fetcher) *Engine {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	loader := resource.NewLoader(fetcher)
	return &Engine{
		cfg:    cfg,
		loader: loader,
		seg:    segment.New(),
		resolver: insight.NewResolver(loader, fetcher,
			insight.WithLimits(cfg.Insight.ExampleLimit, cfg.Insight.RelatedLimit),
			insight.WithBarePackEntryAsMissing(cfg.Insight.TreatBarePackEntryAsMissing),
		),
	}
}

// Loader exposes the resource loader, mainly so a host can warm caches.
func (e *Engine) Loader() *resource.Loader {
	return e.loader
}

// ActiveWord locates the word under the caret for the current snapshot.
func (e *Engine) ActiveWord(text string, sel segment.Selection) (segment.ActiveWord, bool) {
	return segment.LocateActiveWord(text, sel, e.seg.Words(text))
}

// ComputeSuggestions returns the ranked suggestion list for the caret
// position. It never blocks on resource loading: languages whose index
// or spell data is still in flight simply contribute nothing yet, and
// the loads are kicked off for the next keystroke.
func (e *Engine) ComputeSuggestions(text string, sel segment.Selection, lang string) []string {
	active, ok := e.ActiveWord(text, sel)
	if !ok {
		return nil
	}

	norm := textutil.NewNormalizer(lang)
	table := suggest.BuildFrequencyTable(text, e.seg, norm)

	index, _ := e.loader.TryIndex(lang)
	checker, _ := e.loader.TrySpell(lang)

	ranker := suggest.NewRanker(lang, e.cfg.Suggest.Limit,
		e.cfg.Suggest.MinPrefix, e.cfg.Suggest.MinSpellLength)
	return ranker.Rank(active, table, index, checker)
}

// ApplySuggestion commits an accepted suggestion: one text replacement,
// one caret move.
func (e *Engine) ApplySuggestion(text string, active segment.ActiveWord, suggestion string) (string, int) {
	return suggest.Apply(text, active, suggestion)
}

// ResolveInsights starts an asynchronous insight resolution for the
// focused word and streams state transitions to fn. A subsequent call
// supersedes this one.
func (e *Engine) ResolveInsights(ctx context.Context, word, lang, fullText string, fn func(insight.Record)) {
	e.resolver.Resolve(ctx, word, lang, fullText, fn)
}

// ResolveInsightsSync blocks until the record settles; used by the IPC
// server where each request wants one final answer.
func (e *Engine) ResolveInsightsSync(ctx context.Context, word, lang, fullText string) insight.Record {
	return e.resolver.ResolveSync(ctx, word, lang, fullText)
}

// Warm starts background loads for a language's resources so the first
// keystrokes already have an index and spell-checker.
func (e *Engine) Warm(lang string) {
	e.loader.TryPack(lang)
	e.loader.TryIndex(lang)
	e.loader.TrySpell(lang)
}
