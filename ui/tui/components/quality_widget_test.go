package components

import (
	"strings"
	"testing"

	"prodtable/internal/catalog"
	"prodtable/internal/output"

	"github.com/charmbracelet/x/ansi"
)

func TestQualityWidgetPush(t *testing.T) {
	w := NewQualityWidget(30, 7)
	w.Push(output.BuildSummary(catalog.Mock()))

	if w.Summary.Count != 5 {
		t.Errorf("Expected 5 products, got %d", w.Summary.Count)
	}
	view := ansi.Strip(w.View())
	if !strings.Contains(view, "5 products") || !strings.Contains(view, "mean 3.00") {
		t.Errorf("Expected caption in view, got %q", view)
	}
}

func TestQualityWidgetResize(t *testing.T) {
	w := NewQualityWidget(30, 7)
	w.Resize(40, 9)

	if w.Width != 40 || w.Height != 9 {
		t.Errorf("Expected 40x9, got %dx%d", w.Width, w.Height)
	}
}
