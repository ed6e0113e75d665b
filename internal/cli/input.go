// Package cli implements the interactive debug interface for the assist
// engine. It is intended for testing features before they reach server
// mode, not for end users.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/GendByteMaster/lexiserve/pkg/assist"
	"github.com/GendByteMaster/lexiserve/pkg/segment"
)

// InputHandler reads lines from stdin and prints suggestions or insight
// records. A plain line is treated as the text buffer with the caret at
// its end; ":i <word>" resolves insights for a word against the last
// entered text.
type InputHandler struct {
	engine   *assist.Engine
	lang     string
	lastText string
}

// NewInputHandler creates a handler for one language.
func NewInputHandler(engine *assist.Engine, lang string) *InputHandler {
	return &InputHandler{engine: engine, lang: lang}
}

// Start runs the read loop until EOF.
func (h *InputHandler) Start() error {
	fmt.Printf("lang=%s  type text for suggestions, ':i <word>' for insights, Ctrl+D to quit\n", h.lang)
	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			continue
		}
		if word, ok := strings.CutPrefix(line, ":i "); ok {
			h.showInsights(strings.TrimSpace(word))
			continue
		}
		h.showSuggestions(line)
	}
}

func (h *InputHandler) showSuggestions(text string) {
	h.lastText = text
	caret := len([]rune(text))
	start := time.Now()
	suggestions := h.engine.ComputeSuggestions(text, segment.Selection{Start: caret, End: caret}, h.lang)
	elapsed := time.Since(start)

	if len(suggestions) == 0 {
		fmt.Println("  (no suggestions)")
		return
	}
	for i, s := range suggestions {
		fmt.Printf("  %d. %s\n", i+1, s)
	}
	log.Debugf("%d suggestions in %v", len(suggestions), elapsed)
}

func (h *InputHandler) showInsights(word string) {
	if word == "" {
		fmt.Println("  usage: :i <word>")
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	rec := h.engine.ResolveInsightsSync(ctx, word, h.lang, h.lastText)

	fmt.Printf("  %s [%s] status=%s\n", rec.Word, rec.Language, rec.Status)
	if rec.Entry != nil {
		if rec.Entry.PartOfSpeech != "" {
			fmt.Printf("  /%s/\n", rec.Entry.PartOfSpeech)
		}
		for _, d := range rec.Entry.Definitions {
			fmt.Printf("  - %s\n", d)
		}
	}
	if rec.Notice != nil {
		fmt.Printf("  note: %s\n", rec.Notice.Message)
	}
	if len(rec.Examples.Items) > 0 {
		fmt.Println("  examples:")
		for _, ex := range rec.Examples.Items {
			fmt.Printf("    %s\n", ex)
		}
	}
	if len(rec.Related.Items) > 0 {
		fmt.Printf("  related: %s\n", strings.Join(rec.Related.Items, ", "))
	}
}
