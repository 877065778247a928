package ui

import (
	"os"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"
)

// Highlighter provides syntax highlighting for descriptor previews
type Highlighter struct {
	style *chroma.Style
	lexer chroma.Lexer
}

// NewHighlighter creates a highlighter for ini-style desktop entries
func NewHighlighter() *Highlighter {
	return &Highlighter{
		style: styles.Get("catppuccin-mocha"),
		lexer: lexers.Get("ini"),
	}
}

// HighlightLine highlights a single line of a desktop entry
func (h *Highlighter) HighlightLine(line string) string {
	if h.lexer == nil {
		return line
	}

	iterator, err := h.lexer.Tokenise(nil, line)
	if err != nil {
		return line
	}

	var result strings.Builder
	for token := iterator(); token != chroma.EOF; token = iterator() {
		style := h.style.Get(token.Type)

		if style.Colour.IsSet() {
			styled := lipgloss.NewStyle().Foreground(lipgloss.Color(style.Colour.String()))
			if style.Bold == chroma.Yes {
				styled = styled.Bold(true)
			}
			result.WriteString(styled.Render(token.Value))
		} else {
			result.WriteString(token.Value)
		}
	}
	return result.String()
}

// Preview renders a descriptor file for the finder preview pane: a styled
// header line followed by the highlighted file contents. Unreadable files
// degrade to a short notice rather than an error.
func Preview(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return MutedStyle.Render("no preview: " + path)
	}

	h := NewHighlighter()
	var out strings.Builder
	out.WriteString(HeaderStyle.Render(path) + "\n\n")
	for _, line := range strings.Split(strings.TrimRight(string(data), "\n"), "\n") {
		out.WriteString(h.HighlightLine(line) + "\n")
	}
	return out.String()
}
