package views

import (
	"fmt"
	"strings"
	"sync"

	"prodtable/internal/catalog"
	"prodtable/internal/logging"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

type rendererKey struct {
	style string
	width int
}

// Cache Glamour renderers by style and width to avoid expensive re-creation
var rendererCache sync.Map // map[rendererKey]*glamour.TermRenderer

func getRenderer(style string, width int) (*glamour.TermRenderer, error) {
	key := rendererKey{style: style, width: width}
	if cached, ok := rendererCache.Load(key); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	rendererCache.Store(key, renderer)
	return renderer, nil
}

// DetailMarkdown is the markdown source of the detail pane for p.
func DetailMarkdown(p catalog.Product) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n", p.Name)
	fmt.Fprintf(&b, "**Price** %s · **Quality** %d/%d\n\n", p.Price, p.Quality, catalog.MaxQuality)
	if p.Description != "" {
		b.WriteString(p.Description)
		b.WriteString("\n")
	}
	return b.String()
}

// RenderDetail renders the focused product's details with glamour, falling
// back to the raw markdown if the renderer cannot be built.
func RenderDetail(p catalog.Product, style string, width int) string {
	if width < 10 {
		width = 10
	}
	md := DetailMarkdown(p)
	renderer, err := getRenderer(style, width)
	if err != nil {
		logging.Logger.Error("glamour renderer", "style", style, "error", err)
		return md
	}
	out, err := renderer.Render(md)
	if err != nil {
		logging.Logger.Error("render detail", "product", p.ID, "error", err)
		return md
	}
	return strings.TrimSpace(out)
}

// EmptyDetail is shown when no row is focused.
func EmptyDetail() string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Italic(true).
		Render("No product selected")
}
