package main

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

// mdRenderer renders assistant markdown to terminal-formatted output.
var (
	mdRenderer      *glamour.TermRenderer
	mdRendererMu    sync.Mutex
	mdRendererWidth int
)

// initMarkdownRenderer initializes the glamour renderer at the given width.
// A fixed style is used so the renderer never queries the terminal while
// bubbletea owns the input stream.
func initMarkdownRenderer(width int) {
	if width <= 0 {
		width = 80
	}

	mdRendererMu.Lock()
	defer mdRendererMu.Unlock()

	if width == mdRendererWidth && mdRenderer != nil {
		return
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return
	}

	mdRenderer = r
	mdRendererWidth = width
}

// renderMarkdown converts markdown text to terminal-formatted output,
// falling back to the raw text when no renderer is available.
func renderMarkdown(text string) string {
	mdRendererMu.Lock()
	r := mdRenderer
	mdRendererMu.Unlock()

	if r == nil {
		return text
	}

	out, err := r.Render(text)
	if err != nil {
		return text
	}

	return strings.TrimRight(out, "\n")
}
