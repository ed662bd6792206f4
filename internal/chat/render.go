package chat

import (
	"regexp"
	"strings"
)

// The assistant writes lightweight markup: **bold**, *italic*, and literal
// newlines. Bold must be matched before italic so a double-asterisk span is
// never half-eaten by the single-asterisk rule.
var (
	boldPattern   = regexp.MustCompile(`\*\*(.*?)\*\*`)
	italicPattern = regexp.MustCompile(`\*(.*?)\*`)
)

// Renderer converts assistant markup into display text. The style hooks are
// injected so the TUI can back them with lipgloss while tests use plain
// markers. Output is trusted as-is by the caller, which is why Render is only
// ever applied to assistant-originated text, never to user text.
type Renderer struct {
	Bold   func(string) string
	Italic func(string) string
}

// Render transforms raw assistant text into its display form.
func (r *Renderer) Render(raw string) string {
	text := strings.ReplaceAll(raw, "\r\n", "\n")
	text = boldPattern.ReplaceAllStringFunc(text, func(match string) string {
		return r.bold(match[2 : len(match)-2])
	})
	text = italicPattern.ReplaceAllStringFunc(text, func(match string) string {
		return r.italic(match[1 : len(match)-1])
	})
	return text
}

func (r *Renderer) bold(inner string) string {
	if r == nil || r.Bold == nil {
		return inner
	}
	return r.Bold(inner)
}

func (r *Renderer) italic(inner string) string {
	if r == nil || r.Italic == nil {
		return inner
	}
	return r.Italic(inner)
}
