package suggest

import "github.com/GendByteMaster/lexiserve/pkg/segment"

// Apply replaces the active word's span with the accepted suggestion and
// returns the new text plus the caret position directly after the
// inserted word. The replacement is computed in one pass so the caller
// can commit a single buffer mutation and a single caret update.
func Apply(text string, active segment.ActiveWord, suggestion string) (string, int) {
	runes := []rune(text)
	start, end := active.Start, active.End
	if start < 0 || end > len(runes) || start > end {
		return text, len(runes)
	}
	ins := []rune(suggestion)
	out := make([]rune, 0, len(runes)-(end-start)+len(ins))
	out = append(out, runes[:start]...)
	out = append(out, ins...)
	out = append(out, runes[end:]...)
	return string(out), start + len(ins)
}
